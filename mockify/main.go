// mockify generates a CppUTest mock source file from a C header.
// Install it with `go install github.com/toejough/mockify/mockify@latest` and run
// `mockify <header.h> <output-dir>`; the mock is written to <output-dir>/mock_<header>.cpp.
// Every stub needs review: search the output for FIXME, CHECKME and WRITEME.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/toejough/mockify/mockify/run"
)

// main is the entry point of the mockify tool.
func main() {
	if os.Args == nil {
		return
	}

	err := run.Run(os.Args, os.Getenv, run.Deps{
		FS:        &realFileSystem{},
		Formatter: &realFormatter{},
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Now:       time.Now,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// realFileSystem implements FileSystem using os package.
type realFileSystem struct{}

// MkdirAll creates the directory path and any missing parents.
func (fs *realFileSystem) MkdirAll(path string, perm os.FileMode) error {
	err := os.MkdirAll(path, perm)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	return nil
}

// ReadFile reads the file named by name and returns the contents.
func (fs *realFileSystem) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}

	return data, nil
}

// Stat describes the named file.
func (fs *realFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name) //nolint:wrapcheck // callers only test for existence
}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}

// realFormatter runs formatter executables as child processes sharing our terminal.
type realFormatter struct{}

// LookPath searches PATH for the executable.
func (f *realFormatter) LookPath(name string) (string, error) {
	return exec.LookPath(name) //nolint:wrapcheck // a miss just means "not installed"
}

// Run runs the executable and waits for it to finish.
func (f *realFormatter) Run(path string, args ...string) error {
	cmd := exec.Command(path, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
