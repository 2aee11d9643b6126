package gen

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"lensgen/internal/analyze"
	"lensgen/internal/diagnostic"
)

// structFileData holds all data needed for the struct accessor template.
type structFileData struct {
	PackageName      string
	Imports          []importSpec
	TypeName         string
	TypeDef          string
	UseOffsets       bool
	GenerateComments bool
	Fields           []structFieldData
}

// structFieldData represents one field's accessor surface.
type structFieldData struct {
	// AccName is the accessor constructor name (AccCity, Acc0).
	AccName string
	// WithName is the replace-and-rebuild method name (WithCity, With0).
	WithName string
	// FieldRef is the Go selector for the field on the struct (City, F0).
	FieldRef string
	// Type is the field type in Go syntax.
	Type string
}

// StructAccessors emits the accessor surface for a struct shape: one Acc*
// constructor and one With* method per field, in declaration order.
//
// Unit structs and non-struct shapes are rejected with a diagnostic and no
// output.
func (g *Generator) StructAccessors(shape analyze.Shape) (*GeneratedFile, error) {
	s, ok := shape.(*analyze.StructShape)
	if !ok {
		return nil, g.reject(diagnostic.CodeNotAStruct, diagnostic.MsgNotAStruct,
			shape.ID().Name, "")
	}

	switch s.Kind {
	case analyze.StructKindInvalid:
		return nil, g.reject(diagnostic.CodeNotAStruct, diagnostic.MsgNotAStruct,
			s.TypeID.Name, "")

	case analyze.StructKindUnit:
		return nil, g.reject(diagnostic.CodeUnitStruct, diagnostic.MsgUnitStruct,
			s.TypeID.Name, "")
	}

	data := &structFileData{
		PackageName:      g.packageNameFor(s.TypeID, s.Declared),
		TypeName:         s.TypeID.Name,
		UseOffsets:       g.config.UseOffsets,
		GenerateComments: g.config.GenerateComments,
	}

	imports := map[string]importSpec{}
	lens := g.lensImport()
	imports[lens.Path] = lens

	if g.config.UseOffsets {
		imports["unsafe"] = importSpec{Path: "unsafe"}
	}

	for _, f := range s.Fields {
		field := structFieldData{Type: f.Type}

		if s.Kind == analyze.StructKindPositional {
			idx := strconv.Itoa(f.Index)
			field.AccName = "Acc" + idx
			field.WithName = "With" + idx
			field.FieldRef = "F" + idx
		} else {
			name := upperFirst(f.Name)
			field.AccName = "Acc" + name
			field.WithName = "With" + name
			field.FieldRef = f.Name
		}

		for _, imp := range f.Imports {
			imports[imp] = importSpec{Path: imp}
		}

		data.Fields = append(data.Fields, field)
	}

	if s.Declared {
		data.TypeDef = structDef(s)
	}

	data.Imports = sortedImports(imports)

	return g.render(structTemplate, filename(s.TypeID), data)
}

// structDef renders the type definition for a schema-declared struct shape.
func structDef(s *analyze.StructShape) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("type %s struct {\n", s.TypeID.Name))

	for _, f := range s.Fields {
		name := f.Name
		if s.Kind == analyze.StructKindPositional {
			name = "F" + strconv.Itoa(f.Index)
		}

		sb.WriteString(fmt.Sprintf("\t%s %s\n", name, f.Type))
	}

	sb.WriteString("}\n")

	return sb.String()
}

var structTemplate = template.Must(template.New("struct").Parse(`// Code generated by lensgen. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{if .TypeDef}}
{{.TypeDef}}
{{end}}
{{range .Fields}}
{{if $.GenerateComments}}// {{.AccName}} returns an accessor focusing the {{.FieldRef}} field of {{$.TypeName}}.
{{end}}func ({{$.TypeName}}) {{.AccName}}() lens.Accessor[{{$.TypeName}}, {{.Type}}] {
{{if $.UseOffsets}}	return lens.UnsafeFromOffset[{{$.TypeName}}, {{.Type}}](unsafe.Offsetof({{$.TypeName}}{}.{{.FieldRef}}))
{{else}}	return lens.FromFunc(func(root *{{$.TypeName}}) *{{.Type}} { return &root.{{.FieldRef}} })
{{end}}}

{{if $.GenerateComments}}// {{.WithName}} returns t with the {{.FieldRef}} field replaced by v. Every
// other field is moved into the result unchanged.
{{end}}func (t {{$.TypeName}}) {{.WithName}}(v {{.Type}}) {{$.TypeName}} {
	t.{{.FieldRef}} = v
	return t
}
{{end}}`))
