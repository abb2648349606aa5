// Package embedded gives the rest of the module access to the data files
// embedded by the root package (default scene, default config).
//
// //go:embed can only reach files below the declaring package, so the
// embed.FS lives in the root package (embed.go) and is handed over here with
// Init before anything is loaded.
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Prefix is the path prefix of every embedded resource.
const Prefix = "data/"

var errNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	dataFS      fs.FS
	initialized bool
)

// Init installs the embedded data filesystem.
// Must be called at the start of main(), before any resource is loaded.
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized reports whether Init has been called.
func IsInitialized() bool {
	return initialized
}

// normalize converts a resource path to the slash form used by embed.FS and
// checks the prefix.
func normalize(path string) (string, error) {
	if !initialized {
		return "", errNotInitialized
	}
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	if !strings.HasPrefix(path, Prefix) {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with '%s')", path, Prefix)
	}
	return path, nil
}

// Open opens an embedded file. The path must start with "data/".
func Open(path string) (fs.File, error) {
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return dataFS.Open(path)
}

// ReadFile reads an embedded file. The path must start with "data/".
func ReadFile(path string) ([]byte, error) {
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists reports whether path names an embedded file.
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob matches embedded files. The pattern must start with "data/".
func Glob(pattern string) ([]string, error) {
	pattern, err := normalize(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(dataFS, pattern)
}
