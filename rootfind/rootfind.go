// Package rootfind locates the project root directory by walking upward
// from a base directory until it finds a directory containing the marker
// directory. The discovered root is cached on the Resolver, so repeated
// lookups never touch the filesystem again until Reset is called.
package rootfind

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DefaultMarker is the directory name that identifies the project root.
// It is the package manager's install directory inside a module.
const DefaultMarker = "vendor"

// ErrNotFound is returned when no ancestor directory contains the marker.
var ErrNotFound = errors.New("project root not found")

// Config holds the configuration for a Resolver.
type Config struct {
	// Marker is the directory name whose presence identifies the root.
	// Defaults to DefaultMarker.
	Marker string
	// BaseDir is the directory the upward walk starts from. When empty,
	// the process working directory at resolve time is used.
	BaseDir string
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() {
	if c.Marker == "" {
		c.Marker = DefaultMarker
	}
}

// Resolver finds and caches the project root.
// The zero value is not usable; create one with New.
type Resolver struct {
	config Config

	mu   sync.Mutex
	root string
}

// New creates a Resolver with the given config, applying defaults.
func New(config Config) *Resolver {
	config.SetDefaults()

	return &Resolver{config: config} //nolint:exhaustruct // cache starts empty
}

// Root returns the project root, resolving it on the first call and serving
// the cached value afterwards. It is the blocking variant of RootContext.
func (r *Resolver) Root() (string, error) {
	return r.RootContext(context.Background())
}

// RootContext returns the project root, walking upward from the base
// directory until a directory containing the marker directory is found.
// The context is checked between directory probes, so a cancelled context
// aborts the walk. Both Root and RootContext share the same cache: whichever
// resolves first populates it for the other.
func (r *Resolver) RootContext(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.root != "" {
		return r.root, nil
	}

	base := r.config.BaseDir

	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determining working directory: %w", err)
		}

		base = wd
	}

	dir, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("resolving base directory %q: %w", base, err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("root resolution aborted: %w", err)
		}

		marker := filepath.Join(dir, r.config.Marker)

		info, err := os.Stat(marker)
		if err == nil && info.IsDir() {
			r.root = dir

			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %q directory in %q or any parent", ErrNotFound, r.config.Marker, base)
		}

		dir = parent
	}
}

// Reset clears the cached root so the next call resolves from scratch.
// It exists for tests and for callers that move the working directory.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.root = ""
}
