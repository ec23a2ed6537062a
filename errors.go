package confroot

import "errors"

// ErrInvalidArgument is returned when a public operation receives a
// malformed input, such as an empty path or a nil validator.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotFound is returned when the configuration file is absent and no
// default configuration is set.
var ErrNotFound = errors.New("configuration file not found")

// ErrInvalidFormat is returned when a loader is given a path whose extension
// does not match the loader's format.
var ErrInvalidFormat = errors.New("invalid file format")

// ErrUnsupportedFormat is returned when the file to load has an extension
// that matches neither supported format.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrLoadFailed is returned when a present file cannot be read, decoded, or
// evaluated.
var ErrLoadFailed = errors.New("configuration load failed")

// ErrInvalidState is returned when the validator registry has been
// corrupted. This is a defensive check and should not occur in practice.
var ErrInvalidState = errors.New("invalid validator registry")

// ErrNothingToReload is returned when Reload is called before any
// configuration file has been loaded successfully.
var ErrNothingToReload = errors.New("nothing to reload")
