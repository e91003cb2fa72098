package run_test

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"testing"
	"time"

	"github.com/toejough/mockify/mockify/run"
)

// MockFileSystem is an in-memory run.FileSystem. Writing a file registers its directory.
type MockFileSystem struct {
	files    map[string][]byte
	dirs     map[string]bool
	readErr  error
	writeErr error
}

func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (m *MockFileSystem) MkdirAll(name string, _ os.FileMode) error {
	for dir := name; dir != "." && dir != "/"; dir = path.Dir(dir) {
		m.dirs[dir] = true
	}

	return nil
}

func (m *MockFileSystem) ReadFile(name string) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}

	content, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("failed to read file %s: %w", name, fs.ErrNotExist)
	}

	return content, nil
}

func (m *MockFileSystem) Stat(name string) (fs.FileInfo, error) {
	if m.dirs[name] {
		return mockFileInfo{name: path.Base(name), dir: true}, nil
	}

	if _, ok := m.files[name]; ok {
		return mockFileInfo{name: path.Base(name)}, nil
	}

	return nil, fs.ErrNotExist
}

func (m *MockFileSystem) WriteFile(name string, data []byte, _ os.FileMode) error {
	if m.writeErr != nil {
		return m.writeErr
	}

	m.files[name] = data

	return nil
}

// harness bundles the collaborators of one Run call.
type harness struct {
	fs        *MockFileSystem
	formatter *mockFormatter
	stdin     *strings.Reader
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	env       map[string]string
}

func newHarness() *harness {
	return &harness{
		fs:        NewMockFileSystem(),
		formatter: &mockFormatter{},
		stdin:     strings.NewReader(""),
		stdout:    &bytes.Buffer{},
		stderr:    &bytes.Buffer{},
		env:       map[string]string{"SOURCE_DATE_EPOCH": "1577836800"},
	}
}

func (h *harness) getEnv(key string) string {
	return h.env[key]
}

func (h *harness) run(args ...string) error {
	return run.Run(append([]string{"mockify"}, args...), h.getEnv, run.Deps{
		FS:        h.fs,
		Formatter: h.formatter,
		Stdin:     h.stdin,
		Stdout:    h.stdout,
		Stderr:    h.stderr,
		Now:       func() time.Time { return time.Date(2031, time.March, 1, 0, 0, 0, 0, time.UTC) },
	})
}

// written returns the content Run wrote to name, failing the test if it wrote nothing there.
func (h *harness) written(t *testing.T, name string) string {
	t.Helper()

	content, ok := h.fs.files[name]
	if !ok {
		t.Fatalf("Expected %s to be created", name)
	}

	return string(content)
}

type mockFileInfo struct {
	name string
	dir  bool
}

func (i mockFileInfo) IsDir() bool        { return i.dir }
func (i mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i mockFileInfo) Mode() fs.FileMode  { return 0 }
func (i mockFileInfo) Name() string       { return i.name }
func (i mockFileInfo) Size() int64        { return 0 }
func (i mockFileInfo) Sys() any           { return nil }

// mockFormatter records formatter runs. It is found on PATH only when installed is set.
type mockFormatter struct {
	installed bool
	runErr    error
	runs      [][]string
}

func (f *mockFormatter) LookPath(name string) (string, error) {
	if !f.installed {
		return "", errors.New("executable file not found in $PATH")
	}

	return "/usr/bin/" + name, nil
}

func (f *mockFormatter) Run(exe string, args ...string) error {
	f.runs = append(f.runs, append([]string{exe}, args...))

	return f.runErr
}
