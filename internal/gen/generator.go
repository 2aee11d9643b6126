package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"sort"
	"strings"
	"text/template"

	"lensgen/internal/analyze"
	"lensgen/internal/common"
	"lensgen/internal/diagnostic"
)

// DefaultLensImportPath is the import path of the accessor runtime.
const DefaultLensImportPath = "lensgen/lens"

// Config holds configuration for code generation.
type Config struct {
	// PackageName is the package generated files for schema-declared types
	// belong to. Shapes loaded from Go source always generate into the
	// type's own package, since methods must live there.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// LensImportPath is the import path of the lens runtime.
	LensImportPath string
	// UseOffsets emits offset-based accessor constructors (via
	// unsafe.Offsetof) instead of projection functions.
	UseOffsets bool
	// GenerateComments enables doc comments on generated methods.
	GenerateComments bool
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		PackageName:      "accessors",
		OutputDir:        "./generated",
		LensImportPath:   DefaultLensImportPath,
		GenerateComments: true,
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "address_accessors.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generator generates accessor code from type shapes.
type Generator struct {
	config Config
	diags  diagnostic.Diagnostics
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	if config.LensImportPath == "" {
		config.LensImportPath = DefaultLensImportPath
	}

	return &Generator{config: config}
}

// Diagnostics returns the diagnostics collected so far.
func (g *Generator) Diagnostics() *diagnostic.Diagnostics {
	return &g.diags
}

// Generate derives accessors for every shape: struct accessors for struct
// shapes, variant accessors for enum shapes.
//
// Any rejection blocks the whole run: no files are returned and the combined
// diagnostic error is reported, so a dependent build fails instead of
// silently degrading.
func (g *Generator) Generate(shapes []analyze.Shape) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, shape := range shapes {
		var (
			file *GeneratedFile
			err  error
		)

		switch shape.(type) {
		case *analyze.EnumShape:
			file, err = g.VariantAccessors(shape)
		default:
			file, err = g.StructAccessors(shape)
		}

		if err != nil {
			continue // recorded in diagnostics; keep classifying the rest
		}

		if file != nil {
			files = append(files, *file)
		}
	}

	if g.diags.HasErrors() {
		return nil, g.diags.Error()
	}

	return files, nil
}

// reject records an error diagnostic and returns it as an error.
func (g *Generator) reject(code, message, typeName, subject string) error {
	g.diags.AddError(code, message, typeName, subject)

	if subject != "" {
		return fmt.Errorf("%s.%s: %s", typeName, subject, message)
	}

	return fmt.Errorf("%s: %s", typeName, message)
}

// packageNameFor resolves the package a shape's output belongs to.
func (g *Generator) packageNameFor(id analyze.TypeID, declared bool) string {
	if !declared && id.PkgPath != "" {
		return common.PkgAlias(id.PkgPath)
	}

	return g.config.PackageName
}

// importSpec represents a single import in a generated file.
type importSpec struct {
	Alias string
	Path  string
}

// lensImport returns the runtime import, aliased to "lens" when the path base
// differs so templates can always use the lens. selector.
func (g *Generator) lensImport() importSpec {
	spec := importSpec{Path: g.config.LensImportPath}
	if path.Base(spec.Path) != "lens" {
		spec.Alias = "lens"
	}

	return spec
}

// sortedImports flattens an import set into a deterministic slice.
func sortedImports(imports map[string]importSpec) []importSpec {
	out := make([]importSpec, 0, len(imports))
	for _, imp := range imports {
		out = append(out, imp)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}

// render executes tmpl and formats the result. On a formatting failure the
// raw output is kept in a debug sidecar next to the intended output.
func (g *Generator) render(tmpl *template.Template, filename string, data any) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

// filename derives the output file name for a type.
func filename(id analyze.TypeID) string {
	return strings.ToLower(id.Name) + "_accessors.go"
}

func upperFirst(s string) string {
	if s == "" {
		return ""
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

func lowerFirst(s string) string {
	if s == "" {
		return ""
	}

	return strings.ToLower(s[:1]) + s[1:]
}
