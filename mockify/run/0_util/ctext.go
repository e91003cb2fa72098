// Package ctext provides small text helpers shared by the declaration matcher, parser and renderer.
package ctext

import (
	"strings"
)

// ChopTerminator removes the trailing semicolon (and any whitespace after it) from a declaration.
func ChopTerminator(decl string) string {
	trimmed := strings.TrimRightFunc(decl, isSpace)

	return strings.TrimSuffix(trimmed, ";")
}

// CountPointers returns the number of '*' characters in a C type spelling.
func CountPointers(typ string) int {
	return strings.Count(typ, "*")
}

// HasPointer reports whether a C type spelling contains any '*'.
func HasPointer(typ string) bool {
	return strings.Contains(typ, "*")
}

// NormalizeSpace collapses every run of whitespace to a single space and trims the ends.
// A space touching '(', ')', ',' or '*' is dropped, so "char * f( int a )" and
// "char *f(int a)" normalise to the same text.
func NormalizeSpace(s string) string {
	fields := strings.Fields(s)
	joined := strings.Join(fields, " ")

	var buf strings.Builder

	for i := 0; i < len(joined); i++ {
		c := joined[i]
		if c == ' ' {
			prev := joined[i-1]
			next := joined[i+1]

			if isTight(prev) || isTight(next) {
				continue
			}
		}

		buf.WriteByte(c)
	}

	return buf.String()
}

// StripCR removes carriage returns left behind by mixed line endings.
func StripCR(s string) string {
	return strings.ReplaceAll(s, "\r", "")
}

// unexported functions.

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func isTight(c byte) bool {
	return c == '(' || c == ')' || c == ',' || c == '*'
}
