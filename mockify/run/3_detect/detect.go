// Package detect finds single-line C function prototypes and the standard headers a header relies on.
//
// Matching is textual on purpose: a prototype is recognised by its shape on one line, not by parsing C.
// Multi-line prototypes, definitions with bodies, function pointer parameters and macros are skipped
// without complaint.
package detect

import (
	"iter"
	"regexp"
	"strings"
)

// Parts is a declaration split into the pieces the renderer needs.
type Parts struct {
	Text       string // the declaration from extern/return type through ';'
	ReturnType string // raw, including trailing whitespace and '*'s
	Name       string
	ArgList    string // raw, may contain '\r'
}

// Declarations yields every prototype in header, in order. The sequence is lazy and can be ranged over
// more than once.
func Declarations(header string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(header) {
			parts, ok := Match(line)
			if !ok {
				continue
			}

			if !yield(parts.Text) {
				return
			}
		}
	}
}

// Includes returns the standard include lines the header's text calls for, in table order, each once.
func Includes(header string) []string {
	var found []string

	seen := make(map[string]bool, len(includeRules))

	for _, rule := range includeRules {
		if seen[rule.line] {
			continue
		}

		if rule.pattern.MatchString(header) {
			seen[rule.line] = true

			found = append(found, rule.line)
		}
	}

	return found
}

// Match matches one line (or one previously matched declaration) against the prototype shape.
func Match(line string) (Parts, bool) {
	groups := declRe.FindStringSubmatch(line)
	if groups == nil {
		return Parts{}, false
	}

	return Parts{
		Text:       groups[declRe.SubexpIndex("decl")],
		ReturnType: groups[declRe.SubexpIndex("return_type")],
		Name:       groups[declRe.SubexpIndex("func_name")],
		ArgList:    groups[declRe.SubexpIndex("arg_list")],
	}, true
}

// unexported variables.
var (
	//nolint:gochecknoglobals // compiled once
	declRe = regexp.MustCompile(
		`^[ \t]*(?P<decl>(?:extern +)?` +
			`(?P<return_type>(?:[\w*]+[ \t]+)+\**)` +
			`(?P<func_name>\w+)[ \t]*\(` +
			`(?P<arg_list>[\w* \t\r,\[\]+\-/.]+)?` +
			`\);)`,
	)
	//nolint:gochecknoglobals // static lookup table; order is the emission order
	includeRules = []includeRule{
		{pattern: regexp.MustCompile(`bool`), line: "#include <stdbool.h>"},
		{pattern: regexp.MustCompile(`u?int\d+_t`), line: "#include <stdint.h>"},
		{pattern: regexp.MustCompile(`size_t`), line: "#include <stddef.h>"},
		{pattern: regexp.MustCompile(`FILE`), line: "#include <stdio.h>"},
	}
)

// unexported types.

type includeRule struct {
	pattern *regexp.Regexp
	line    string
}
