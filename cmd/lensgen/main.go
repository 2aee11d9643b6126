// Package main provides the CLI entrypoint for lensgen.
//
// lensgen is a codegen tool that:
//   - Parses Go packages (AST + go/types) to understand struct shapes
//   - Loads YAML type schemas declaring structs and tagged unions (enums)
//   - Generates field accessors (Acc*/With*) and variant accessors
//     (Is/As/AsMut/Set/Map) over the lens runtime
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"lensgen/internal/analyze"
	"lensgen/internal/diagnostic"
	"lensgen/internal/gen"
	"lensgen/internal/schema"
)

var cli struct {
	Gen   GenCmd   `cmd:"" help:"Generate accessor code from a schema and/or Go packages."`
	Check CheckCmd `cmd:"" help:"Validate inputs and classify shapes without writing files."`
}

// shapeFlags are the input-selection flags shared by gen and check.
type shapeFlags struct {
	Schema   string   `help:"Path to a YAML type schema." type:"existingfile"`
	Packages []string `help:"Go package patterns to load struct shapes from." short:"p" name:"package"`
	Types    []string `help:"Named types in the loaded packages to derive accessors for." short:"t" name:"type"`
}

// GenCmd generates accessor source files.
type GenCmd struct {
	shapeFlags
	Out        string `help:"Output directory." default:"./generated"`
	PkgName    string `help:"Package name for schema-generated files." default:"accessors"`
	LensPath   string `help:"Import path of the lens runtime." default:"lensgen/lens"`
	Offsets    bool   `help:"Emit offset-based accessors via unsafe.Offsetof."`
	NoComments bool   `help:"Suppress doc comments on generated code."`
}

// Run executes the gen command.
func (cmd *GenCmd) Run() error {
	shapes, err := collectShapes(&cmd.shapeFlags)
	if err != nil {
		return err
	}

	g := gen.NewGenerator(gen.Config{
		PackageName:      cmd.PkgName,
		OutputDir:        cmd.Out,
		LensImportPath:   cmd.LensPath,
		UseOffsets:       cmd.Offsets,
		GenerateComments: !cmd.NoComments,
	})

	files, err := g.Generate(shapes)
	printDiagnostics(g.Diagnostics())

	if err != nil {
		return fmt.Errorf("generation failed")
	}

	if err := gen.WriteFiles(files, cmd.Out); err != nil {
		return err
	}

	fmt.Printf("wrote %d file(s) to %s\n", len(files), cmd.Out)

	return nil
}

// CheckCmd validates shapes and reports what would be generated.
type CheckCmd struct {
	shapeFlags
}

// Run executes the check command.
func (cmd *CheckCmd) Run() error {
	shapes, err := collectShapes(&cmd.shapeFlags)
	if err != nil {
		return err
	}

	g := gen.NewGenerator(gen.Config{GenerateComments: true})

	files, err := g.Generate(shapes)
	printDiagnostics(g.Diagnostics())

	if err != nil {
		return fmt.Errorf("check failed")
	}

	for _, f := range files {
		fmt.Printf("ok: %s\n", f.Filename)
	}

	return nil
}

// collectShapes gathers generator input from the schema and/or Go packages.
func collectShapes(flags *shapeFlags) ([]analyze.Shape, error) {
	var shapes []analyze.Shape

	if flags.Schema != "" {
		sf, err := schema.LoadFile(flags.Schema)
		if err != nil {
			return nil, err
		}

		diags := schema.Validate(sf)
		printDiagnostics(diags)

		if err := diags.Error(); err != nil {
			return nil, fmt.Errorf("invalid schema")
		}

		shapes = append(shapes, schema.Shapes(sf)...)
	}

	if len(flags.Types) > 0 {
		if len(flags.Packages) == 0 {
			return nil, fmt.Errorf("--type requires at least one --package pattern")
		}

		a := analyze.NewAnalyzer()
		if err := a.LoadPackages(flags.Packages...); err != nil {
			return nil, err
		}

		for _, name := range flags.Types {
			shape, err := a.StructShape(name)
			if err != nil {
				return nil, err
			}

			shapes = append(shapes, shape)
		}
	}

	if len(shapes) == 0 {
		return nil, fmt.Errorf("nothing to do: provide --schema and/or --package with --type")
	}

	return shapes, nil
}

// printDiagnostics renders diagnostics to stderr, errors red, warnings yellow.
func printDiagnostics(diags *diagnostic.Diagnostics) {
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	for _, w := range diags.Warnings {
		yellow.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	for _, e := range diags.Errors {
		red.Fprintf(os.Stderr, "error: %s\n", e)
	}
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("lensgen"),
		kong.Description("Derive composable field accessors and variant accessors from type shapes."),
		kong.UsageOnError(),
	)

	ctx.FatalIfErrorf(ctx.Run())
}
