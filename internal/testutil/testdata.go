// Package testutil provides shared fixtures for tests.
//
// Sample inputs and scenarios live in the repository's top-level testdata
// directory. Paths returned here are absolute, so they work from any package.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// root is the repository root, two levels above this file.
var root = func() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		panic("testutil: cannot locate source file")
	}
	return filepath.Join(filepath.Dir(file), "..", "..")
}()

// InputPath returns the path of a sample puzzle input, e.g. "day5.txt".
func InputPath(name string) string {
	return filepath.Join(root, "testdata", "inputs", name)
}

// ScenarioPath returns the path of a scenario file or, with no name, of the
// scenarios directory.
func ScenarioPath(name ...string) string {
	return filepath.Join(append([]string{root, "testdata", "scenarios"}, name...)...)
}

// ReadInput returns the contents of a sample puzzle input, failing t if it
// cannot be read.
func ReadInput(t testing.TB, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(InputPath(name))
	if err != nil {
		t.Fatalf("read sample %s: %v", name, err)
	}
	return data
}
