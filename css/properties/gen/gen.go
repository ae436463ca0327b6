// Generates the mapping between the KnownProp enum and the CSS names.
package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"sort"
	"strings"
	"unicode"
)

const out = "props_gen.go"

func main() {
	props, err := parseConstants("properties.go")
	if err != nil {
		panic(err)
	}
	code, err := generate(props)
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile(out, code, 0o644); err != nil {
		panic(err)
	}
	fmt.Println("Generated", out)
}

type prop struct {
	varName  string
	propName string // in CSS form
}

func kebabCase(s string) string {
	var out strings.Builder
	for i, r := range s {
		if i != 0 && unicode.IsUpper(r) {
			out.WriteRune('-')
		}
		out.WriteRune(unicode.ToLower(r))
	}
	return out.String()
}

// parseConstants returns the members of the KnownProp enum, in
// declaration order, without the blank first value and the NbProps sentinel.
func parseConstants(filename string) ([]prop, error) {
	file, err := parser.ParseFile(token.NewFileSet(), filename, nil, 0)
	if err != nil {
		return nil, err
	}
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST || len(gen.Specs) == 0 {
			continue
		}
		// the enum starts with `_ KnownProp = iota`
		first := gen.Specs[0].(*ast.ValueSpec)
		if ident, ok := first.Type.(*ast.Ident); !ok || ident.Name != "KnownProp" {
			continue
		}
		var out []prop
		for _, spec := range gen.Specs {
			for _, name := range spec.(*ast.ValueSpec).Names {
				if name.Name == "_" || name.Name == "NbProps" {
					continue
				}
				out = append(out, prop{name.Name, kebabCase(strings.TrimPrefix(name.Name, "P"))})
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("KnownProp enum not found in %s", filename)
}

func generate(props []prop) ([]byte, error) {
	sorted := append([]prop(nil), props...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].propName < sorted[j].propName })

	var code bytes.Buffer
	code.WriteString("package properties\n\n// Code generated from properties/properties.go DO NOT EDIT\n\n")
	code.WriteString("var propsNames = [...]string{\n")
	for _, item := range sorted {
		fmt.Fprintf(&code, "%s: %q,\n", item.varName, item.propName)
	}
	code.WriteString("}\n\n// PropsFromNames maps CSS property names to internal enum tags.\nvar PropsFromNames = map[string]KnownProp{\n")
	for _, item := range sorted {
		fmt.Fprintf(&code, "%q: %s,\n", item.propName, item.varName)
	}
	code.WriteString("}\n")
	return format.Source(code.Bytes())
}
