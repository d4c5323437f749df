// Package levels provides the level sources a game session loads from and
// restarts against: files on disk and a small set of built-in levels
// embedded in the binary.
package levels

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"
)

//go:embed data/*.txt
var builtin embed.FS

// LoadError describes a level source that could not be read. It wraps the
// underlying cause unchanged.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load level %q: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Source supplies level text. Restart re-reads the source rather than
// replaying the first snapshot, matching a fresh load.
type Source interface {
	// Name identifies the source in messages and the UI.
	Name() string
	// Read returns the level text, or a *LoadError.
	Read() (string, error)
}

// FileSource reads a level from a file on disk.
type FileSource struct {
	Path string
}

func (f FileSource) Name() string {
	return f.Path
}

func (f FileSource) Read() (string, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return "", &LoadError{Name: f.Path, Err: err}
	}
	return string(b), nil
}

// BuiltinSource reads one of the levels embedded in the binary.
type BuiltinSource struct {
	name string
}

// Builtin returns the embedded level with the given name.
func Builtin(name string) BuiltinSource {
	return BuiltinSource{name: name}
}

func (b BuiltinSource) Name() string {
	return b.name
}

func (b BuiltinSource) Read() (string, error) {
	data, err := builtin.ReadFile("data/" + b.name + ".txt")
	if err != nil {
		return "", &LoadError{Name: b.name, Err: err}
	}
	return string(data), nil
}

// Names returns the names of all built-in levels, sorted.
func Names() []string {
	entries, err := builtin.ReadDir("data")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

// Resolve picks a source for a level argument: a built-in level when the
// name matches one, otherwise a file path.
func Resolve(arg string) Source {
	for _, name := range Names() {
		if name == arg {
			return Builtin(arg)
		}
	}
	return FileSource{Path: arg}
}
