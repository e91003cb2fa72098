package generate

import (
	"bytes"
	"fmt"
	"text/template"
)

// TemplateRegistry holds the parsed templates for the mock file.
// Create a registry using NewTemplateRegistry() to initialize all templates.
type TemplateRegistry struct {
	headerTmpl    *template.Template
	voidStubTmpl  *template.Template
	valueStubTmpl *template.Template
	fixmeStubTmpl *template.Template
}

// NewTemplateRegistry creates and initializes a new template registry with all templates parsed.
// Templates are hardcoded constants, so parsing cannot fail at runtime.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		headerTmpl:    template.Must(template.New("header").Parse(headerTemplate)),
		voidStubTmpl:  template.Must(template.New("voidStub").Parse(voidStubTemplate)),
		valueStubTmpl: template.Must(template.New("valueStub").Parse(valueStubTemplate)),
		fixmeStubTmpl: template.Must(template.New("fixmeStub").Parse(fixmeStubTemplate)),
	}
}

// WriteFixmeStub writes the placeholder stub for a declaration that couldn't be parsed.
func (r *TemplateRegistry) WriteFixmeStub(buf *bytes.Buffer, data any) {
	err := r.fixmeStubTmpl.Execute(buf, data)
	if err != nil {
		panic(fmt.Sprintf("failed to execute fixmeStub template: %v", err))
	}
}

// WriteHeader writes the file banner, CppUTest includes and the extern "C" block.
func (r *TemplateRegistry) WriteHeader(buf *bytes.Buffer, data any) {
	err := r.headerTmpl.Execute(buf, data)
	if err != nil {
		panic(fmt.Sprintf("failed to execute header template: %v", err))
	}
}

// WriteValueStub writes a stub that returns a configured-or-default value.
func (r *TemplateRegistry) WriteValueStub(buf *bytes.Buffer, data any) {
	err := r.valueStubTmpl.Execute(buf, data)
	if err != nil {
		panic(fmt.Sprintf("failed to execute valueStub template: %v", err))
	}
}

// WriteVoidStub writes a stub that only records the call.
func (r *TemplateRegistry) WriteVoidStub(buf *bytes.Buffer, data any) {
	err := r.voidStubTmpl.Execute(buf, data)
	if err != nil {
		panic(fmt.Sprintf("failed to execute voidStub template: %v", err))
	}
}

// unexported constants.
const (
	headerTemplate = `//! @file
//! @copyright Copyright {{.Year}}. All Rights Reserved
//!
//! @details

#include "CppUTest/TestHarness.h"
#include "CppUTestExt/MockSupport.h"

extern "C" {
#include "{{.InputFile}}"
{{.Includes}}
}

`
	voidStubTemplate = `{{.Signature}} {
  mock().actualCall(__func__){{range .Params}}
    {{.}}{{end}};
}`
	valueStubTemplate = `{{.Signature}} {
  return {{.Cast}}mock().actualCall(__func__){{range .Params}}
    {{.}}{{end}}
    .{{.Accessor}};
}`
	fixmeStubTemplate = `{{.Signature}}
{
  FIXME
}`
)
