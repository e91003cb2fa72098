package detect_test

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	detect "github.com/toejough/mockify/mockify/run/3_detect"
)

// FuzzMatch tests Match with coverage-guided fuzzing.
// Property: a match is a ';'-terminated piece of the line that matches again on its own, to the same parts.
func FuzzMatch(f *testing.F) {
	f.Fuzz(rapid.MakeFuzz(func(t *rapid.T) {
		line := rapid.OneOf(
			rapid.StringMatching(`[ \t]{0,2}(extern )?[a-z_]{1,6}( [a-z_]{1,6})? \*{0,2}[a-z_]{1,6}\([a-z_ *,\[\]0-9.]{0,20}\);[ a-z/]{0,6}`),
			rapid.String(),
		).Draw(t, "line")

		parts, ok := detect.Match(line)
		if !ok {
			return
		}

		if !strings.HasSuffix(parts.Text, ");") || !strings.Contains(line, parts.Text) {
			t.Fatalf("Match(%q).Text = %q, want a ');'-terminated piece of the line", line, parts.Text)
		}

		again, ok := detect.Match(parts.Text)
		if !ok || again != parts {
			t.Fatalf("Match(%q) = %+v, %v; want %+v", parts.Text, again, ok, parts)
		}
	}))
}
