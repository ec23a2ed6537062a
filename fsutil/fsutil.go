// Package fsutil provides the existence and creation helpers the
// configuration loaders build on: probing paths, probing whole sets of
// paths concurrently, and creating directories or files that are allowed
// to already exist.
package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidArgument is returned when a helper receives a malformed argument.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotAccessible is returned when a path's existence check fails.
var ErrNotAccessible = errors.New("path not accessible")

// ErrCreateFailed is returned when a directory or file cannot be created.
var ErrCreateFailed = errors.New("create failed")

const (
	dirMode  = 0o755
	fileMode = 0o600
)

// PathExists reports whether path is accessible. It returns nil on success,
// ErrInvalidArgument for an empty path, and ErrNotAccessible wrapping the
// underlying error otherwise.
func PathExists(path string) error {
	if path == "" {
		return fmt.Errorf("%w: path must not be empty", ErrInvalidArgument)
	}

	_, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrNotAccessible, path, err)
	}

	return nil
}

// AllPathsExist checks every path concurrently and succeeds only if all of
// them are accessible. Every check runs to completion; the returned error is
// the first one observed, and which path's error surfaces when several fail
// at once is not deterministic.
func AllPathsExist(paths ...string) error {
	group := new(errgroup.Group)

	for _, path := range paths {
		group.Go(func() error {
			return PathExists(path)
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("checking paths: %w", err)
	}

	return nil
}

// EnsureDirectory succeeds if the directory already exists and otherwise
// creates it together with any missing ancestors.
func EnsureDirectory(path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(path, dirMode); err != nil {
		return fmt.Errorf("%w: directory %q: %w", ErrCreateFailed, path, err)
	}

	return nil
}

// EnsureFile succeeds if the file already exists, leaving its content
// untouched. Otherwise it ensures the parent directory via EnsureDirectory
// and writes content to a new file.
func EnsureFile(path, content string) error {
	if path == "" {
		return fmt.Errorf("%w: path must not be empty", ErrInvalidArgument)
	}

	if err := PathExists(path); err == nil {
		return nil
	}

	if err := EnsureDirectory(filepath.Dir(path)); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(content), fileMode); err != nil {
		return fmt.Errorf("%w: file %q: %w", ErrCreateFailed, path, err)
	}

	return nil
}
