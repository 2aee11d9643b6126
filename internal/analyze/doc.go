// Package analyze provides the structural type descriptions the accessor
// generators consume, and a loader that builds them from real Go packages
// (AST + go/types via golang.org/x/tools/go/packages).
//
// Shapes can also be built directly (by hand in tests, or from a YAML schema
// by internal/schema); the generators do not care where a shape came from.
package analyze
