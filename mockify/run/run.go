// Package run implements the main logic for the mockify tool in a testable way.
package run

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/alexflint/go-arg"

	config "github.com/toejough/mockify/mockify/run/1_config"
	load "github.com/toejough/mockify/mockify/run/2_load"
	detect "github.com/toejough/mockify/mockify/run/3_detect"
	generate "github.com/toejough/mockify/mockify/run/5_generate"
	output "github.com/toejough/mockify/mockify/run/6_output"
)

// Interfaces - Public

// FileSystem interface for mocking.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	Stat(name string) (fs.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// Structs - Public

// Deps are the collaborators a run talks to.
type Deps struct {
	FS        FileSystem
	Formatter output.Formatter
	Stdin     io.Reader // answers the overwrite prompt
	Stdout    io.Writer // operator messages
	Stderr    io.Writer // developer logs
	Now       func() time.Time
}

// Functions - Public

// Run executes the mockify tool logic. It takes command-line arguments, an environment variable getter and the
// collaborators in deps. On success the mock for the input header is written to <output-dir>/mock_<stem>.cpp.
// The early stops (a missing argument, a non-header input, a declined overwrite) are printed and reported as success;
// only I/O and configuration failures return an error.
func Run(args []string, getEnv func(string) string, deps Deps) error {
	err := run(args, getEnv, deps)
	if errors.Is(err, errStopped) {
		return nil
	}

	return err
}

// Structs - Private

// cliArgs defines the command-line arguments for the generator. Neither positional is required by the parser so a
// missing one gets mockify's own message instead of a usage error.
type cliArgs struct {
	Input  string `arg:"positional" help:"location of header file to generate mock from"`
	Output string `arg:"positional" help:"directory to put generated mock file"`
}

// Description is shown at the top of --help.
func (cliArgs) Description() string {
	return "auto-generate CppUTest mock file for a given header file"
}

// Variables - Private

var (
	errStopped = errors.New("stopped")
)

// Functions - Private

// buildMock renders the whole mock file for header, printing each declaration's diagnostic as it goes.
func buildMock(header load.Header, year int, out io.Writer, logger *slog.Logger) string {
	includes := detect.Includes(header.Text)
	logger.Debug("detected includes", "includes", includes)

	builder := generate.NewFileBuilder(generate.NewTemplateRegistry(), generate.HeaderData{
		Year:      year,
		InputFile: header.Name,
		Includes:  includes,
	})

	for decl := range detect.Declarations(header.Text) {
		logger.Debug("matched declaration", "declaration", decl)

		diag := builder.Add(decl)
		if diag != nil {
			_, _ = fmt.Fprintln(out, diag.Error())
		}
	}

	logger.Debug("rendered stubs", "count", builder.Len())

	return builder.String()
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// parseArgs parses command-line arguments into cliArgs. --help prints usage to out and stops.
func parseArgs(args []string, out io.Writer) (cliArgs, error) {
	var parsed cliArgs

	parser, err := arg.NewParser(arg.Config{Program: "mockify"}, &parsed)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to create argument parser: %w", err)
	}

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	err = parser.Parse(cmdArgs)
	if errors.Is(err, arg.ErrHelp) {
		parser.WriteHelp(out)

		return cliArgs{}, errStopped
	}

	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return parsed, nil
}

func run(args []string, getEnv func(string) string, deps Deps) error {
	out := deps.Stdout

	parsed, err := parseArgs(args, out)
	if err != nil {
		return err
	}

	err = validateArgs(parsed, out)
	if err != nil {
		return err
	}

	cfg, err := config.Load(deps.FS, getEnv)
	if err != nil {
		return err
	}

	logger, err := newLogger(deps.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	err = output.PrepareDir(deps.FS, parsed.Output, out)
	if err != nil {
		return err
	}

	header, err := load.ReadHeader(deps.FS, parsed.Input)
	if errors.Is(err, load.ErrNotHeader) {
		_, _ = fmt.Fprintf(out, "The provided input file \"%s\" is not a C header file.\n", parsed.Input)

		return errStopped
	}

	if err != nil {
		return err
	}

	mockPath := load.MockPath(header.Path, parsed.Output)
	logger.Debug("resolved paths", "input", header.Path, "output", mockPath)

	if output.Exists(deps.FS, mockPath) && !output.ConfirmOverwrite(deps.Stdin, out, mockPath) {
		_, _ = fmt.Fprintf(out, "Output file \"%s\" already exists. Aborting.\n", mockPath)

		return errStopped
	}

	code := buildMock(header, config.Year(getEnv, deps.Now), out, logger)

	err = output.WriteGeneratedCode(code, mockPath, deps.FS, out)
	if err != nil {
		return err
	}

	output.Format(deps.Formatter, cfg.Formatter, cfg.FormatterArgs, mockPath, out, logger)

	return nil
}

func validateArgs(parsed cliArgs, out io.Writer) error {
	if parsed.Input == "" {
		_, _ = fmt.Fprintln(out, "No input file specified")

		return errStopped
	}

	if parsed.Output == "" {
		_, _ = fmt.Fprintln(out, "No output location specified")

		return errStopped
	}

	return nil
}
