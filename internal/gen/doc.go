// Package gen provides deterministic Go code generation for field accessors
// and variant accessors.
//
// Generation approach uses text/template + go/format for readable output.
//
// Codegen patterns:
//   - Per-field accessor constructors (Acc*) over the lens runtime
//   - Per-field replace-and-rebuild methods (With*)
//   - Tagged-union definitions with per-variant Is/As/AsMut/Set/Map methods
//
// Output is a pure function of the input shape: field and variant order is
// declaration order, imports are sorted, names are derived mechanically.
// Unsupported shapes produce a structured diagnostic and no output for the
// whole type.
package gen
