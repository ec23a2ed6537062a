package confroot

import (
	"fmt"
	"log/slog"

	yamldecode "github.com/0xalexb/confroot/decode/yaml"
	"github.com/0xalexb/confroot/rootfind"
	starlarkscript "github.com/0xalexb/confroot/script/starlark"
)

// Options holds the static configuration of a Store. File is required;
// everything else has a working default.
type Options[T any] struct {
	// File is the configuration file name Load searches for in the
	// resolved project root, e.g. "app.yaml" or "app.star".
	File string

	// Default is the fallback configuration returned when the target file
	// is absent. It is returned exactly as set here: it never passes
	// through the validator pipeline and does not populate the cache.
	// When nil, a missing file makes the load fail instead.
	Default *T

	// Section optionally names a colon-separated subtree of the document
	// to decode ("api:permissions"). Empty means the whole document.
	Section string

	// Marker overrides the root marker directory name used when building
	// the default resolver. Ignored when Resolver is set.
	Marker string

	// Resolver overrides project-root resolution, e.g. with a fixed base
	// directory in tests. When nil, a resolver walking up from the process
	// working directory is built from Marker.
	Resolver *rootfind.Resolver

	// Decoder decodes data-format documents. Defaults to the YAML decoder.
	Decoder Decoder

	// Evaluator evaluates script-format files. Defaults to the Starlark
	// evaluator.
	Evaluator Evaluator

	// Logger receives load, cache, and fallback events. Defaults to
	// slog.Default(); logging.NewLogger builds a suitable JSON logger.
	Logger *slog.Logger
}

// SetDefaults fills in the default collaborators for any that are unset.
func (o *Options[T]) SetDefaults() {
	if o.Resolver == nil {
		o.Resolver = rootfind.New(rootfind.Config{Marker: o.Marker, BaseDir: ""})
	}

	if o.Decoder == nil {
		o.Decoder = yamldecode.NewDecoder()
	}

	if o.Evaluator == nil {
		o.Evaluator = starlarkscript.NewEvaluator()
	}

	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// Validate validates the Options.
func (o *Options[T]) Validate() error {
	if o.File == "" {
		return fmt.Errorf("%w: file name must not be empty", ErrInvalidArgument)
	}

	return nil
}
