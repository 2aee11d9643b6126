package schema

import (
	"fmt"

	"lensgen/internal/diagnostic"
)

// Validate validates a schema file structurally.
//
// Shape-level rejections (unit structs, unsupported variant shapes) are NOT
// checked here; those belong to the generators, which own the fixed rejection
// messages. Validate only catches declarations that have no well-defined
// shape at all.
func Validate(sf *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if sf == nil {
		res.AddError("schema_is_nil", "schema file is nil", "", "")
		return res
	}

	seen := map[string]struct{}{}

	for i := range sf.Types {
		td := &sf.Types[i]

		if td.Name == "" {
			res.AddError("missing_type_name",
				fmt.Sprintf("type #%d has no name", i), "", "")
			continue
		}

		if _, ok := seen[td.Name]; ok {
			res.AddError("duplicate_type",
				fmt.Sprintf("duplicate type %q", td.Name), td.Name, "")
			continue
		}

		seen[td.Name] = struct{}{}

		switch {
		case td.Struct == nil && td.Enum == nil:
			res.AddError("missing_shape",
				fmt.Sprintf("type %q declares neither struct nor enum", td.Name), td.Name, "")

		case td.Struct != nil && td.Enum != nil:
			res.AddError("conflicting_shape",
				fmt.Sprintf("type %q declares both struct and enum", td.Name), td.Name, "")
		}

		if td.Struct != nil && len(td.Struct.Positional) > 0 && len(td.Struct.Fields) > 0 {
			res.AddError("conflicting_fields",
				fmt.Sprintf("type %q declares both positional and named fields", td.Name), td.Name, "")
		}

		if td.Enum != nil {
			validateVariants(res, td)
		}
	}

	return res
}

// validateVariants checks each variant declares at most one shape form.
func validateVariants(res *diagnostic.Diagnostics, td *TypeDecl) {
	seen := map[string]struct{}{}

	for i := range td.Enum.Variants {
		vd := &td.Enum.Variants[i]

		if vd.Name == "" {
			res.AddError("missing_variant_name",
				fmt.Sprintf("variant #%d of %q has no name", i, td.Name), td.Name, "")
			continue
		}

		if _, ok := seen[vd.Name]; ok {
			res.AddError("duplicate_variant",
				fmt.Sprintf("duplicate variant %q", vd.Name), td.Name, vd.Name)
			continue
		}

		seen[vd.Name] = struct{}{}

		forms := 0
		if vd.Unit {
			forms++
		}
		if len(vd.Tuple) > 0 {
			forms++
		}
		if len(vd.Fields) > 0 {
			forms++
		}

		if forms > 1 {
			res.AddError("conflicting_variant",
				fmt.Sprintf("variant %q declares more than one shape form", vd.Name), td.Name, vd.Name)
		}
	}
}
