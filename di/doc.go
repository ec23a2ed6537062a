// Package di wires a configuration store into an Fx dependency-injection
// container.
//
// NewModule builds a named Fx module that provides both the *confroot.Store
// and the loaded configuration value to the graph, so downstream constructors
// can depend on the typed configuration directly:
//
//	app := fx.New(
//	    di.NewModule("config", confroot.Options[AppConfig]{File: "app.yaml"}),
//	    fx.Invoke(func(cfg AppConfig) {
//	        // cfg is loaded, validated, and cached.
//	    }),
//	)
//
// Validators passed to NewModule are registered on the store before the
// first load, in the order given.
package di
