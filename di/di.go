package di

import (
	"errors"
	"log/slog"

	"github.com/0xalexb/confroot"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// ErrEmptyName is returned when a module is created with an empty name.
var ErrEmptyName = errors.New("empty module name")

// NewModule creates an Fx module that provides a configuration store and its
// loaded configuration. The store is built from options at graph construction
// time; validators are registered in the order given, before the first load.
// The loaded T is provided lazily, so it is only read when something in the
// graph depends on it.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule[T any](name string, options confroot.Options[T], validators ...confroot.Validator[T]) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(func() (*confroot.Store[T], error) {
			store, err := confroot.New(options)
			if err != nil {
				return nil, err
			}

			for _, validator := range validators {
				store.Register(validator)
			}

			return store, nil
		}),
		fx.Provide(func(store *confroot.Store[T]) (T, error) {
			return store.Load()
		}),
	)
}

// WithLogger directs Fx's own lifecycle events to the given slog logger,
// keeping the container's output on the same structured stream as the
// application's.
//
//nolint:ireturn // fx.Option is the standard return type for Fx options
func WithLogger(logger *slog.Logger) fx.Option {
	return fx.WithLogger(func() fxevent.Logger {
		return &fxevent.SlogLogger{Logger: logger}
	})
}
