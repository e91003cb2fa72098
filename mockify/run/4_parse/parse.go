// Package parse splits a matched prototype into return type, name and parameters.
//
// Parsing either succeeds with a Declaration or fails with a *ParseError; the error carries everything
// needed to render a placeholder stub, so callers never have to recover from a panic.
package parse

import (
	"fmt"
	"regexp"
	"strings"

	ctext "github.com/toejough/mockify/mockify/run/0_util"
	detect "github.com/toejough/mockify/mockify/run/3_detect"
)

// Declaration is a successfully parsed prototype.
type Declaration struct {
	Text       string
	ReturnType string // trimmed; empty for void
	Name       string
	ArgList    string // carriage returns removed
	Params     []Parameter
	Signature  string // <return type><name>(<arg list>), spaced as written
}

// Parameter is one comma-separated argument.
type Parameter struct {
	Type    string // e.g. "unsigned long", "const char"
	Pointer string // the run of '*' between type and name, possibly empty
	Name    string
}

// ParseError explains why a declaration couldn't be parsed.
type ParseError struct {
	Signature string
	Message   string
}

// Error returns the operator-facing diagnostic.
func (e *ParseError) Error() string {
	return e.Message
}

// HasReturn reports whether the function returns a value.
func (d Declaration) HasReturn() bool {
	return d.ReturnType != ""
}

// IsPointer reports whether the parameter was declared with at least one '*'.
func (p Parameter) IsPointer() bool {
	return p.Pointer != ""
}

// Parse parses one declaration as yielded by detect.Declarations.
func Parse(text string) (Declaration, error) {
	parts, ok := detect.Match(text)
	if !ok {
		return Declaration{}, &ParseError{
			Signature: ctext.ChopTerminator(strings.TrimSpace(text)),
			Message:   "Could not parse function declaration",
		}
	}

	argList := ctext.StripCR(parts.ArgList)
	signature := parts.ReturnType + parts.Name + "(" + argList + ")"

	params, badPiece, ok := parseParams(argList)
	if !ok {
		return Declaration{}, &ParseError{
			Signature: signature,
			Message: fmt.Sprintf(
				"Problem parsing parameter \"%s\" in \"%s\"", badPiece, strings.TrimSpace(argList),
			),
		}
	}

	returnType := strings.TrimSpace(parts.ReturnType)
	if returnType == "void" {
		returnType = ""
	}

	return Declaration{
		Text:       parts.Text,
		ReturnType: returnType,
		Name:       parts.Name,
		ArgList:    argList,
		Params:     params,
		Signature:  signature,
	}, nil
}

// unexported variables.
var (
	//nolint:gochecknoglobals // compiled once
	paramRe = regexp.MustCompile(`(?P<type>\w[\s\w]*?)\s*(?:(?P<ptr>\**)\s*|\s+)(?P<name>\w+)$`)
)

// unexported functions.

// parseParams splits on every comma, so nested parentheses or brackets are not supported. On failure it
// returns the offending piece.
func parseParams(argList string) ([]Parameter, string, bool) {
	trimmed := strings.TrimSpace(argList)
	if trimmed == "" || trimmed == "void" {
		return nil, "", true
	}

	pieces := strings.Split(argList, ",")
	params := make([]Parameter, 0, len(pieces))

	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)

		groups := paramRe.FindStringSubmatch(piece)
		if groups == nil {
			return nil, piece, false
		}

		params = append(params, Parameter{
			Type:    groups[paramRe.SubexpIndex("type")],
			Pointer: groups[paramRe.SubexpIndex("ptr")],
			Name:    groups[paramRe.SubexpIndex("name")],
		})
	}

	return params, "", true
}
