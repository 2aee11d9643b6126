package gen

import (
	"text/template"

	"lensgen/internal/analyze"
	"lensgen/internal/diagnostic"
)

// enumFileData holds all data needed for the variant accessor template.
type enumFileData struct {
	PackageName      string
	Imports          []importSpec
	TypeName         string
	TagType          string
	GenerateComments bool
	Variants         []variantData
}

// variantData represents one variant's accessor surface.
type variantData struct {
	// Name is the case-normalized (exported) variant name.
	Name string
	// TagConst is the tag constant identifying the variant.
	TagConst string
	// Field is the payload field on the tagged union.
	Field string
	// Payload is the payload type in Go syntax.
	Payload string
}

// VariantAccessors emits the tagged union definition and per-variant
// Is/As/AsMut/Set/Map methods for an enum shape.
//
// Every variant must be a tuple variant with exactly one field. Variants are
// classified up front; the first violation rejects the whole type with a
// diagnostic and no output. A zero-variant enum is a valid degenerate input
// and emits only the (method-free) type.
func (g *Generator) VariantAccessors(shape analyze.Shape) (*GeneratedFile, error) {
	e, ok := shape.(*analyze.EnumShape)
	if !ok {
		return nil, g.reject(diagnostic.CodeNotAnEnum, diagnostic.MsgNotAnEnum,
			shape.ID().Name, "")
	}

	for _, v := range e.Variants {
		switch {
		case v.Kind == analyze.VariantKindUnit:
			return nil, g.reject(diagnostic.CodeUnitVariant, diagnostic.MsgUnitVariant,
				e.TypeID.Name, v.Name)

		case v.Kind == analyze.VariantKindNamedFields:
			return nil, g.reject(diagnostic.CodeNamedVariant, diagnostic.MsgNamedVariant,
				e.TypeID.Name, v.Name)

		case v.Arity != 1:
			return nil, g.reject(diagnostic.CodeMultiFieldTuple, diagnostic.MsgMultiFieldTuple,
				e.TypeID.Name, v.Name)
		}
	}

	// Enum shapes only come from schemas, so the type itself is always
	// generated and lives in the configured package.
	data := &enumFileData{
		PackageName:      g.config.PackageName,
		TypeName:         e.TypeID.Name,
		TagType:          lowerFirst(e.TypeID.Name) + "Tag",
		GenerateComments: g.config.GenerateComments,
	}

	imports := map[string]importSpec{}

	for _, v := range e.Variants {
		name := upperFirst(v.Name)

		data.Variants = append(data.Variants, variantData{
			Name:     name,
			TagConst: data.TagType + name,
			Field:    lowerFirst(name) + "Val",
			Payload:  v.Payload,
		})

		for _, imp := range v.Imports {
			imports[imp] = importSpec{Path: imp}
		}
	}

	data.Imports = sortedImports(imports)

	return g.render(enumTemplate, filename(e.TypeID), data)
}

var enumTemplate = template.Must(template.New("enum").Parse(`// Code generated by lensgen. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
// {{.TagType}} discriminates the variants of {{.TypeName}}.
type {{.TagType}} uint8
{{if .Variants}}
const (
{{range $i, $v := .Variants}}	{{$v.TagConst}}{{if eq $i 0}} {{$.TagType}} = iota{{end}}
{{end}})
{{end}}
{{if .GenerateComments}}// {{.TypeName}} is a tagged union. The zero value is the first variant with a
// zero payload.
{{end}}type {{.TypeName}} struct {
	tag {{.TagType}}
{{range .Variants}}	{{.Field}} {{.Payload}}
{{end}}}
{{range .Variants}}
{{if $.GenerateComments}}// New{{$.TypeName}}{{.Name}} constructs a {{$.TypeName}} holding the {{.Name}} variant.
{{end}}func New{{$.TypeName}}{{.Name}}(p {{.Payload}}) {{$.TypeName}} {
	return {{$.TypeName}}{tag: {{.TagConst}}, {{.Field}}: p}
}

{{if $.GenerateComments}}// Is{{.Name}} reports whether m currently holds the {{.Name}} variant.
{{end}}func (m *{{$.TypeName}}) Is{{.Name}}() bool {
	return m.tag == {{.TagConst}}
}

{{if $.GenerateComments}}// As{{.Name}} returns the {{.Name}} payload if m holds that variant.
{{end}}func (m *{{$.TypeName}}) As{{.Name}}() ({{.Payload}}, bool) {
	if m.tag != {{.TagConst}} {
		var zero {{.Payload}}
		return zero, false
	}
	return m.{{.Field}}, true
}

{{if $.GenerateComments}}// As{{.Name}}Mut returns a mutable pointer to the {{.Name}} payload, or nil
// if m holds a different variant.
{{end}}func (m *{{$.TypeName}}) As{{.Name}}Mut() *{{.Payload}} {
	if m.tag != {{.TagConst}} {
		return nil
	}
	return &m.{{.Field}}
}

{{if $.GenerateComments}}// Set{{.Name}} overwrites m with the {{.Name}} variant holding p. Any
// previous payload of a different variant is discarded.
{{end}}func (m *{{$.TypeName}}) Set{{.Name}}(p {{.Payload}}) {
	*m = {{$.TypeName}}{tag: {{.TagConst}}, {{.Field}}: p}
}

{{if $.GenerateComments}}// Map{{.Name}} applies f to the payload if m holds the {{.Name}} variant and
// does nothing otherwise.
{{end}}func (m *{{$.TypeName}}) Map{{.Name}}(f func(*{{.Payload}})) {
	if m.tag == {{.TagConst}} {
		f(&m.{{.Field}})
	}
}
{{end}}`))
