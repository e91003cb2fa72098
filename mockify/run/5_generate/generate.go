// Package generate renders CppUTest mock stubs and the mock file around them.
package generate

import (
	"bytes"
	"errors"
	"strings"

	parse "github.com/toejough/mockify/mockify/run/4_parse"
)

// FileBuilder accumulates the generated mock file: the header first, then one stub per declaration.
type FileBuilder struct {
	registry *TemplateRegistry
	buf      bytes.Buffer
	stubs    int
}

// HeaderData fills the file header template.
type HeaderData struct {
	Year      int
	InputFile string   // base name of the header being mocked
	Includes  []string // detected standard include lines, already deduplicated
}

// NewFileBuilder starts a mock file with its header.
func NewFileBuilder(registry *TemplateRegistry, header HeaderData) *FileBuilder {
	builder := &FileBuilder{registry: registry}

	registry.WriteHeader(&builder.buf, struct {
		Year      int
		InputFile string
		Includes  string
	}{
		Year:      header.Year,
		InputFile: header.InputFile,
		Includes:  strings.Join(header.Includes, "\n"),
	})

	return builder
}

// Add renders one declaration and appends it, separated by blank lines. A non-nil error is the
// declaration's diagnostic; a FIXME stub was appended in its place and the builder is still usable.
func (b *FileBuilder) Add(decl string) error {
	stub, diag := Render(b.registry, decl)

	b.buf.WriteString("\n")
	b.buf.WriteString(stub)
	b.buf.WriteString("\n")
	b.stubs++

	return diag
}

// Len is the number of stubs added so far.
func (b *FileBuilder) Len() int {
	return b.stubs
}

// String returns the file content built so far.
func (b *FileBuilder) String() string {
	return b.buf.String()
}

// Render renders the stub for one declaration. It never fails outward: when the declaration can't be
// parsed, the returned stub is the FIXME placeholder and the error says why.
func Render(registry *TemplateRegistry, decl string) (string, error) {
	parsed, err := parse.Parse(decl)
	if err != nil {
		var parseErr *parse.ParseError
		if !errors.As(err, &parseErr) {
			parseErr = &parse.ParseError{Signature: decl, Message: err.Error()}
		}

		return RenderFallback(registry, parseErr), parseErr
	}

	return RenderDeclaration(registry, parsed), nil
}

// RenderDeclaration renders the stub for a parsed declaration.
func RenderDeclaration(registry *TemplateRegistry, decl parse.Declaration) string {
	params := make([]string, 0, len(decl.Params))
	for _, param := range decl.Params {
		params = append(params, ParamCall(param))
	}

	var buf bytes.Buffer

	if !decl.HasReturn() {
		registry.WriteVoidStub(&buf, stubData{Signature: decl.Signature, Params: params})

		return buf.String()
	}

	data := stubData{
		Signature: decl.Signature,
		Params:    params,
		Accessor:  ReturnAccessor(decl.ReturnType),
	}
	if NeedsCast(decl.ReturnType) {
		data.Cast = "(" + decl.ReturnType + ")"
	}

	registry.WriteValueStub(&buf, data)

	return buf.String()
}

// RenderFallback renders the FIXME placeholder stub for a declaration that couldn't be parsed.
func RenderFallback(registry *TemplateRegistry, parseErr *parse.ParseError) string {
	var buf bytes.Buffer

	registry.WriteFixmeStub(&buf, stubData{Signature: parseErr.Signature})

	return buf.String()
}

// unexported types.

type stubData struct {
	Signature string
	Params    []string
	Cast      string
	Accessor  string
}
