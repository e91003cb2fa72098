// Package load validates the input header path, reads the header and derives the mock file path.
package load

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Exported constants.
const (
	// MockPrefix is prepended to the header's stem to name the generated file.
	MockPrefix = "mock_"
	// MockExt is the generated file's extension.
	MockExt = ".cpp"
)

// Exported variables.
var (
	// ErrNotHeader is returned for inputs that don't end in ".h" (any case).
	ErrNotHeader = errors.New("not a C header file")
)

// Header is a loaded input file.
type Header struct {
	Path string // as given on the command line
	Name string // base name, used in the generated #include
	Text string
}

// Reader reads whole files.
type Reader interface {
	ReadFile(name string) ([]byte, error)
}

// IsHeader reports whether path names a C header.
func IsHeader(path string) bool {
	return strings.HasSuffix(strings.ToLower(filepath.Base(path)), ".h")
}

// MockPath returns where the mock for inputPath goes inside outputDir: <outputDir>/mock_<stem>.cpp.
func MockPath(inputPath, outputDir string) string {
	name := filepath.Base(inputPath)
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	return filepath.Join(outputDir, MockPrefix+stem+MockExt)
}

// ReadHeader checks the extension and reads the whole header.
func ReadHeader(reader Reader, path string) (Header, error) {
	if !IsHeader(path) {
		return Header{}, fmt.Errorf("%w: %s", ErrNotHeader, path)
	}

	data, err := reader.ReadFile(path)
	if err != nil {
		return Header{}, fmt.Errorf("failed to read header %s: %w", path, err)
	}

	return Header{
		Path: path,
		Name: filepath.Base(path),
		Text: string(data),
	}, nil
}
