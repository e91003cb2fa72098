package config_test

import (
	"fmt"
	"io/fs"
	"log/slog"
	"testing"
	"time"

	. "github.com/onsi/gomega"

	config "github.com/toejough/mockify/mockify/run/1_config"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		files   map[string]string
		env     map[string]string
		want    config.Config
		wantErr bool
	}{
		{
			name: "no file gives defaults",
			want: config.Default(),
		},
		{
			name: "file overrides defaults",
			files: map[string]string{
				"mockify.toml": "formatter = \"astyle\"\nformatter_args = [\"-n\"]\nlog_level = \"debug\"\n",
			},
			want: config.Config{Formatter: "astyle", FormatterArgs: []string{"-n"}, LogLevel: "debug"},
		},
		{
			name:  "empty formatter in file disables formatting",
			files: map[string]string{"mockify.toml": "formatter = \"\"\n"},
			want:  config.Config{Formatter: "", FormatterArgs: []string{"-i"}, LogLevel: "warn"},
		},
		{
			name:  "explicit path via env",
			files: map[string]string{"/etc/mockify.toml": "log_level = \"info\"\n"},
			env:   map[string]string{config.EnvConfig: "/etc/mockify.toml"},
			want:  config.Config{Formatter: "clang-format", FormatterArgs: []string{"-i"}, LogLevel: "info"},
		},
		{
			name:    "explicit path that does not exist",
			env:     map[string]string{config.EnvConfig: "/nowhere.toml"},
			wantErr: true,
		},
		{
			name: "env overrides file",
			files: map[string]string{
				"mockify.toml": "formatter = \"astyle\"\nlog_level = \"debug\"\n",
			},
			env: map[string]string{
				config.EnvFormatter: "clang-format-18",
				config.EnvLogLevel:  "error",
			},
			want: config.Config{Formatter: "clang-format-18", FormatterArgs: []string{"-i"}, LogLevel: "error"},
		},
		{
			name:    "malformed toml",
			files:   map[string]string{"mockify.toml": "formatter = [\n"},
			wantErr: true,
		},
		{
			name:    "unknown log level",
			env:     map[string]string{config.EnvLogLevel: "loud"},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			got, err := config.Load(mapReader(testCase.files), mapEnv(testCase.env))
			if testCase.wantErr {
				g.Expect(err).To(HaveOccurred())
				return
			}

			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(got).To(Equal(testCase.want))
		})
	}
}

func TestLoad_ReadError(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := config.Load(failingReader{}, mapEnv(nil))
	g.Expect(err).To(MatchError(ContainSubstring("permission denied")))
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: " error ", want: slog.LevelError},
	}

	for _, testCase := range tests {
		t.Run(testCase.in, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			got, err := config.ParseLevel(testCase.in)
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(got).To(Equal(testCase.want))
		})
	}
}

func TestYear(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	now := func() time.Time { return time.Date(2031, time.March, 1, 0, 0, 0, 0, time.UTC) }

	g.Expect(config.Year(mapEnv(nil), now)).To(Equal(2031))
	g.Expect(config.Year(mapEnv(map[string]string{config.EnvSourceDateEpoch: "1577836800"}), now)).To(Equal(2020))
	g.Expect(config.Year(mapEnv(map[string]string{config.EnvSourceDateEpoch: "soon"}), now)).To(Equal(2031))
}

type failingReader struct{}

func (failingReader) ReadFile(string) ([]byte, error) {
	return nil, fs.ErrPermission
}

type mapReader map[string]string

func (m mapReader) ReadFile(name string) ([]byte, error) {
	content, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", name, fs.ErrNotExist)
	}

	return []byte(content), nil
}

func mapEnv(env map[string]string) func(string) string {
	return func(key string) string {
		return env[key]
	}
}
