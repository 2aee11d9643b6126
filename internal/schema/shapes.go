package schema

import (
	"lensgen/internal/analyze"
	"lensgen/internal/common"
)

// Shapes converts a validated schema file into generator input shapes, in
// declaration order.
func Shapes(sf *File) []analyze.Shape {
	var shapes []analyze.Shape

	for i := range sf.Types {
		td := &sf.Types[i]

		id := analyze.TypeID{PkgPath: sf.PkgPath, Name: td.Name}

		switch {
		case td.Enum != nil:
			shapes = append(shapes, enumShape(id, td.Enum))

		case td.Struct != nil:
			shapes = append(shapes, structShape(id, td.Struct))
		}
	}

	return shapes
}

func structShape(id analyze.TypeID, sd *StructDecl) *analyze.StructShape {
	shape := &analyze.StructShape{
		TypeID:   id,
		Declared: true,
	}

	switch {
	case len(sd.Positional) > 0:
		shape.Kind = analyze.StructKindPositional
		for i, typ := range sd.Positional {
			shape.Fields = append(shape.Fields, analyze.FieldInfo{
				Index: i,
				Type:  typ,
			})
		}

	case len(sd.Fields) > 0:
		shape.Kind = analyze.StructKindNamed
		for i, fd := range sd.Fields {
			field := analyze.FieldInfo{
				Name:  fd.Name,
				Index: i,
				Type:  fd.Type,
			}
			if fd.Import != "" {
				field.Imports = []string{fd.Import}
			}

			shape.Fields = append(shape.Fields, field)
		}

	default:
		shape.Kind = analyze.StructKindUnit
	}

	return shape
}

func enumShape(id analyze.TypeID, ed *EnumDecl) *analyze.EnumShape {
	shape := &analyze.EnumShape{TypeID: id}

	for i := range ed.Variants {
		vd := &ed.Variants[i]

		info := analyze.VariantInfo{Name: vd.Name}

		switch {
		case len(vd.Tuple) > 0:
			info.Kind = analyze.VariantKindTuple
			info.Arity = len(vd.Tuple)

			if payload, ok := common.First(vd.Tuple); ok && common.IsSingle(vd.Tuple) {
				info.Payload = payload
				if vd.Import != "" {
					info.Imports = []string{vd.Import}
				}
			}

		case len(vd.Fields) > 0:
			info.Kind = analyze.VariantKindNamedFields

		default:
			// Bare variants and explicit unit: true are both unit.
			info.Kind = analyze.VariantKindUnit
		}

		shape.Variants = append(shape.Variants, info)
	}

	return shape
}
