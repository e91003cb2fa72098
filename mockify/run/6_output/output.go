// Package output writes the generated mock file: directory preparation, the overwrite prompt, the write
// itself and the optional formatter pass.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
)

// FileSystem is what output needs from the disk.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// Formatter reflows a generated file in place.
type Formatter interface {
	// LookPath resolves the executable on PATH; an error means it isn't installed.
	LookPath(name string) (string, error)
	// Run runs the resolved executable with args and waits for it.
	Run(path string, args ...string) error
}

// ConfirmOverwrite asks whether to replace an existing mock file. Only a line reading "y" (any case)
// confirms; anything else, including an empty line or end of input, declines.
func ConfirmOverwrite(in io.Reader, out io.Writer, path string) bool {
	_, _ = fmt.Fprintf(out, "'%s' exists, overwrite (y/N)? \n", path)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false
	}

	return strings.ToLower(strings.TrimRight(line, "\r\n")) == "y"
}

// Exists reports whether path exists.
func Exists(fileSys FileSystem, path string) bool {
	_, err := fileSys.Stat(path)

	return err == nil
}

// Format runs the named formatter over path when it can be found on PATH. A missing formatter is
// skipped silently; a failing one is reported as a warning and the generated file is kept as written.
func Format(formatter Formatter, name string, args []string, path string, out io.Writer, logger *slog.Logger) {
	if name == "" {
		logger.Debug("formatting disabled")
		return
	}

	exe, err := formatter.LookPath(name)
	if err != nil {
		logger.Debug("formatter not found", "formatter", name, "error", err)
		return
	}

	_, _ = fmt.Fprintf(out, "Running %s on \"%s\"\n", name, path)

	err = formatter.Run(exe, append(append([]string(nil), args...), path)...)
	if err != nil {
		_, _ = fmt.Fprintf(out, "Warning: %s failed on %s: %v\n", name, path, err)
	}
}

// PrepareDir creates dir when it is missing. If dir is a regular file it only warns; the write then
// fails with its own error.
func PrepareDir(fileSys FileSystem, dir string, out io.Writer) error {
	info, err := fileSys.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			_, _ = fmt.Fprintf(out, "%s already exists as a file\n", dir)
		}

		return nil
	}

	err = fileSys.MkdirAll(dir, dirPermissions)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", dir, err)
	}

	return nil
}

// WriteGeneratedCode writes the mock file and tells the operator what to review.
func WriteGeneratedCode(code string, path string, fileWriter FileSystem, out io.Writer) error {
	err := fileWriter.WriteFile(path, []byte(code), generatedFilePermissions)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(out, "Wrote output to \"%s\"\n", path)
	_, _ = fmt.Fprintln(out, "Make sure to review output file and search for FIXME, CHECKME, and WRITEME")

	return nil
}

// unexported constants.
const (
	dirPermissions           = 0o755
	generatedFilePermissions = 0o644
)
