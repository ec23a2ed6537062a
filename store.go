package confroot

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/confroot/fsutil"
)

const (
	// DataExt is the extension of data-format configuration files.
	DataExt = ".yaml"
	// ScriptExt is the extension of script-format configuration files.
	ScriptExt = ".star"
)

// Map is the untyped configuration document type, for callers that want the
// raw key/value structure instead of a typed configuration struct.
type Map = map[string]any

// Decoder deserializes a data-format document into target. A non-empty
// section names a colon-separated subtree ("api:permissions") to decode
// instead of the whole document.
type Decoder interface {
	Decode(data []byte, target any, section string) error
}

// Evaluator executes a script-format configuration source and returns the
// values it exports. The filename is for diagnostics only.
type Evaluator interface {
	Eval(filename string, src []byte) (map[string]any, error)
}

// Store loads, validates, and caches one configuration of type T.
// Create it with New; the zero value is not usable.
//
// A Store is safe for concurrent use. All cached state is per-instance, so
// independent configurations in one process never collide.
type Store[T any] struct {
	options Options[T]

	mu         sync.RWMutex
	pipeline   pipeline[T]
	cached     *T
	loadedFile string
}

// New creates a Store from the given options, applying defaults and
// validating them.
func New[T any](options Options[T]) (*Store[T], error) {
	options.SetDefaults()

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid store options: %w", err)
	}

	store := &Store[T]{options: options} //nolint:exhaustruct // cache starts empty

	return store, nil
}

// Register appends a validator to the pipeline and returns the store, so
// registrations chain. Validators run in registration order on every load.
// Registering nil records an error that surfaces on the next load or
// validation instead of panicking here.
func (s *Store[T]) Register(validator Validator[T]) *Store[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pipeline.register(validator)

	return s
}

// Validate runs cfg through the registered validator chain. With no
// validators registered it returns cfg unchanged.
func (s *Store[T]) Validate(cfg T) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.pipeline.validate(cfg)
}

// Load returns the configuration. A cached value from a previous successful
// load is returned as-is, with no filesystem access and no re-validation.
// Otherwise Load dispatches on the configured file name's extension, resolves
// the project root, and loads root/File through the matching loader.
func (s *Store[T]) Load() (T, error) {
	var zero T

	if err := s.pending(); err != nil {
		return zero, err
	}

	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()

	if cached != nil {
		s.options.Logger.Debug("serving cached configuration", slog.String("file", s.options.File))

		return *cached, nil
	}

	load, err := s.loaderFor(s.options.File)
	if err != nil {
		return zero, err
	}

	root, err := s.options.Resolver.Root()
	if err != nil {
		return zero, err
	}

	return load(filepath.Join(root, s.options.File))
}

// Reload ignores any cached value and re-runs the full load-and-validate
// sequence against the exact file a prior Load succeeded on, refreshing the
// cache. It fails with ErrNothingToReload if no load has succeeded yet.
func (s *Store[T]) Reload() (T, error) {
	var zero T

	if err := s.pending(); err != nil {
		return zero, err
	}

	s.mu.RLock()
	path := s.loadedFile
	s.mu.RUnlock()

	if path == "" {
		return zero, fmt.Errorf("%w: no configuration file has been loaded", ErrNothingToReload)
	}

	load, err := s.loaderFor(path)
	if err != nil {
		return zero, err
	}

	return load(path)
}

// LoadData loads a data-format configuration file at path. If the file is
// absent the configured default is returned, or ErrNotFound without one. On
// success the validated configuration is cached and path is recorded for
// Reload; a failed load leaves previously cached state untouched.
func (s *Store[T]) LoadData(path string) (T, error) {
	var zero T

	if err := s.checkPath(path, DataExt); err != nil {
		return zero, err
	}

	if err := fsutil.PathExists(path); err != nil {
		return s.fallback(path, err)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return zero, fmt.Errorf("%w: reading %q: %w", ErrLoadFailed, path, err)
	}

	var cfg T

	if err := s.options.Decoder.Decode(data, &cfg, s.options.Section); err != nil {
		return zero, fmt.Errorf("%w: decoding %q: %w", ErrLoadFailed, path, err)
	}

	return s.finish(path, cfg)
}

// LoadScript loads a script-format configuration file at path. The script is
// evaluated hermetically, its exported values are encoded and decoded through
// the configured Decoder (so sections and typed targets behave exactly as in
// LoadData), and the result runs through the validator pipeline. Absence,
// caching, and failure semantics match LoadData.
func (s *Store[T]) LoadScript(path string) (T, error) {
	var zero T

	if err := s.checkPath(path, ScriptExt); err != nil {
		return zero, err
	}

	if err := fsutil.PathExists(path); err != nil {
		return s.fallback(path, err)
	}

	src, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return zero, fmt.Errorf("%w: reading %q: %w", ErrLoadFailed, path, err)
	}

	values, err := s.options.Evaluator.Eval(filepath.Base(path), src)
	if err != nil {
		return zero, fmt.Errorf("%w: evaluating %q: %w", ErrLoadFailed, path, err)
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		return zero, fmt.Errorf("%w: encoding values of %q: %w", ErrLoadFailed, path, err)
	}

	var cfg T

	if err := s.options.Decoder.Decode(data, &cfg, s.options.Section); err != nil {
		return zero, fmt.Errorf("%w: decoding values of %q: %w", ErrLoadFailed, path, err)
	}

	return s.finish(path, cfg)
}

// Root resolves and returns the project root directory.
func (s *Store[T]) Root() (string, error) {
	return s.options.Resolver.Root()
}

// LoadedFile returns the path of the most recently successfully loaded
// configuration file, or "" if no load has succeeded yet.
func (s *Store[T]) LoadedFile() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadedFile
}

// Reset clears the cached configuration, the loaded-file reference, and the
// resolver's cached root, so the next Load starts from scratch. Registered
// validators persist: registration is configuration, not cache.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	s.cached = nil
	s.loadedFile = ""
	s.mu.Unlock()

	s.options.Resolver.Reset()
}

// loaderFor dispatches on the file name's extension, case-insensitively.
func (s *Store[T]) loaderFor(name string) (func(string) (T, error), error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case DataExt:
		return s.LoadData, nil
	case ScriptExt:
		return s.LoadScript, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

func (s *Store[T]) checkPath(path, ext string) error {
	if err := s.pending(); err != nil {
		return err
	}

	if path == "" {
		return fmt.Errorf("%w: path must not be empty", ErrInvalidArgument)
	}

	if !strings.EqualFold(filepath.Ext(path), ext) {
		return fmt.Errorf("%w: %q is not a %s file", ErrInvalidFormat, path, ext)
	}

	return nil
}

func (s *Store[T]) pending() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.pipeline.pending()
}

// fallback resolves the file-absent case: the configured default as-is, or
// ErrNotFound wrapping the existence failure. The default never touches the
// pipeline or the cache.
func (s *Store[T]) fallback(path string, cause error) (T, error) {
	if s.options.Default != nil {
		s.options.Logger.Info("configuration file absent, using default", slog.String("file", path))

		return *s.options.Default, nil
	}

	var zero T

	return zero, fmt.Errorf("%w: %q: %w", ErrNotFound, path, cause)
}

// finish validates cfg and, only on success, commits it to the cache along
// with the loaded-file reference.
func (s *Store[T]) finish(path string, cfg T) (T, error) {
	validated, err := s.Validate(cfg)
	if err != nil {
		var zero T

		return zero, err
	}

	s.mu.Lock()
	s.cached = &validated
	s.loadedFile = path
	s.mu.Unlock()

	s.options.Logger.Info("configuration loaded", slog.String("file", path))

	return validated, nil
}
