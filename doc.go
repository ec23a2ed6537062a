// Package confroot provides a project-rooted static configuration store.
//
// A Store locates the project root by walking upward from the working
// directory until it finds the marker directory, loads a single
// configuration file from that root, runs it through an ordered chain of
// validators, and caches the validated result for the rest of the process.
// Two file formats are supported: a data format (YAML, which also covers
// JSON documents) and a script format (Starlark, evaluated hermetically).
//
// # Loading and caching
//
// Load resolves the root, dispatches on the configured file name's
// extension, and caches the validated configuration: a second Load returns
// the cached value without touching the filesystem. Reload deliberately
// bypasses the cache, re-reading and re-validating the exact file a prior
// Load succeeded on. Reset clears all cached state, which is mainly useful
// in tests.
//
// # Validators
//
// Validators are typed functions registered before the first Load:
//
//	store.Register(func(c AppConfig) (AppConfig, error) {
//	    if c.Port == 0 {
//	        c.Port = 8080
//	    }
//	    return c, nil
//	})
//
// They run in registration order, each receiving the output of the
// previous one; the first error aborts the chain and surfaces unwrapped.
//
// # Defaults
//
// When the configuration file is absent and Options.Default is set, Load
// returns that default exactly as given. The default never passes through
// the validator pipeline and never populates the cache, so a later Load
// probes the filesystem again and picks the file up once it appears.
//
// # Example
//
// A typical setup:
//
//	type AppConfig struct {
//	    Host string `yaml:"host"`
//	    Port int    `yaml:"port"`
//	}
//
//	store, err := confroot.New(confroot.Options[AppConfig]{
//	    File:    "app.yaml",
//	    Default: &AppConfig{Host: "localhost", Port: 8080},
//	})
package confroot
