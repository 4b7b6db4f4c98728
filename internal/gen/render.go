package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// Paths of the generated files, relative to the output directory
// (the testlib package root).
const (
	HeaderPath  = "include/testlib.h"
	ExportsPath = "exports.go"
	HarnessPath = "harness.go"
)

// Rendered maps a generated file's relative path to its contents.
type Rendered map[string][]byte

const headerTmpl = `/* Code generated by fixturegen. DO NOT EDIT. */

#ifndef TYPED_CTYPES_TESTLIB_H
#define TYPED_CTYPES_TESTLIB_H

#include <stdint.h>
{{range .Types}}
typedef struct {{.StructName}} {
    {{.CType}} a;
    {{.CType}} b;
} {{.StructName}};
{{end}}
{{- range .Types}}
void {{.SwapSymbol}}({{.StructName}} *s);
{{- end}}
{{range .Types}}
{{.CType}} {{.SubSymbol}}({{.CType}} x, {{.CType}} y);
{{- end}}

#endif /* TYPED_CTYPES_TESTLIB_H */
`

const exportsTmpl = `// Code generated by fixturegen. DO NOT EDIT.

//go:build cgo

package main

/*
#include "include/testlib.h"
*/
import "C"

import "github.com/runfalk/typed-ctypes/internal/fixture"
{{range .Types}}
//export {{.SwapSymbol}}
func {{.SwapSymbol}}(s *C.{{.StructName}}) {
	fixture.Swap(&s.a, &s.b)
}
{{end}}
{{- range .Types}}
//export {{.SubSymbol}}
func {{.SubSymbol}}(x, y {{.CgoType}}) {{.CgoType}} {
	return fixture.Sub(x, y)
}
{{end}}`

const harnessTmpl = `// Code generated by fixturegen. DO NOT EDIT.

//go:build cgo

package main

/*
#include "include/testlib.h"
*/
import "C"
{{range .Types}}
// {{.SwapShim}} calls {{.SwapSymbol}} through the C-ABI boundary.
func {{.SwapShim}}(a, b {{.GoType}}) ({{.GoType}}, {{.GoType}}) {
	s := C.{{.StructName}}{a: {{.CgoType}}(a), b: {{.CgoType}}(b)}
	C.{{.SwapSymbol}}(&s)
	return {{.GoType}}(s.a), {{.GoType}}(s.b)
}
{{end}}
{{- range .Types}}
// {{.SubShim}} calls {{.SubSymbol}} through the C-ABI boundary.
func {{.SubShim}}(x, y {{.GoType}}) {{.GoType}} {
	return {{.GoType}}(C.{{.SubSymbol}}({{.CgoType}}(x), {{.CgoType}}(y)))
}
{{end}}`

// Render produces the three generated sources from the manifest. Go sources
// are run through go/format so the output is stable under gofmt.
func Render(m *Manifest) (Rendered, error) {
	files := Rendered{}

	header, err := execute("header", headerTmpl, m)
	if err != nil {
		return nil, err
	}
	files[HeaderPath] = header

	for path, tmpl := range map[string]string{
		ExportsPath: exportsTmpl,
		HarnessPath: harnessTmpl,
	} {
		raw, err := execute(path, tmpl, m)
		if err != nil {
			return nil, err
		}
		src, err := format.Source(raw)
		if err != nil {
			return nil, fmt.Errorf("format %s: %w", path, err)
		}
		files[path] = src
	}
	return files, nil
}

func execute(name, tmpl string, m *Manifest) ([]byte, error) {
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("parse %s template: %w", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, m); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
