package analyze

import (
	"fmt"
	"go/types"
	"sort"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and extracts struct shapes from them.
type Analyzer struct {
	pkgs []*packages.Package
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// LoadPackages loads the specified packages.
// Patterns are standard Go package patterns (e.g., "./store", "lensgen/examples/user").
func (a *Analyzer) LoadPackages(patterns ...string) error {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("package errors: %v", errs)
	}

	a.pkgs = append(a.pkgs, pkgs...)

	return nil
}

// StructShape extracts the shape of the named type from the loaded packages.
// The shape is rendered relative to the type's own package, since generated
// accessor methods must live alongside the type.
//
// A named type that is not a struct yields a shape of kind
// [StructKindInvalid]; classifying and rejecting it is the generator's job,
// not the loader's.
func (a *Analyzer) StructShape(name string) (*StructShape, error) {
	for _, pkg := range a.pkgs {
		obj := pkg.Types.Scope().Lookup(name)
		if obj == nil {
			continue
		}

		typeName, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}

		return a.shapeOf(pkg, typeName), nil
	}

	return nil, fmt.Errorf("type %q not found in loaded packages", name)
}

// shapeOf builds a StructShape for a named type.
func (a *Analyzer) shapeOf(pkg *packages.Package, typeName *types.TypeName) *StructShape {
	shape := &StructShape{
		TypeID: TypeID{
			PkgPath: pkg.PkgPath,
			Name:    typeName.Name(),
		},
	}

	st, ok := typeName.Type().Underlying().(*types.Struct)
	if !ok {
		shape.Kind = StructKindInvalid
		return shape
	}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		// Accessors are public API; unexported fields stay private.
		if !field.Exported() {
			continue
		}

		typeStr, imports := renderType(field.Type(), pkg.PkgPath)

		shape.Fields = append(shape.Fields, FieldInfo{
			Name:    field.Name(),
			Index:   i,
			Type:    typeStr,
			Imports: imports,
		})
	}

	if len(shape.Fields) == 0 {
		shape.Kind = StructKindUnit
	} else {
		shape.Kind = StructKindNamed
	}

	return shape
}

// renderType renders t in Go syntax as seen from inside selfPkg, and returns
// the import paths the expression needs.
func renderType(t types.Type, selfPkg string) (string, []string) {
	seen := make(map[string]struct{})

	qualifier := func(p *types.Package) string {
		if p.Path() == selfPkg {
			return ""
		}

		seen[p.Path()] = struct{}{}

		return p.Name()
	}

	typeStr := types.TypeString(t, qualifier)

	var imports []string
	for path := range seen {
		imports = append(imports, path)
	}

	sort.Strings(imports)

	return typeStr, imports
}
