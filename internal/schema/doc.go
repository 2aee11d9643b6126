// Package schema loads YAML type schemas describing structs and enums the
// generator must define and derive accessors for.
//
// Schemas complement the Go-package loader in internal/analyze: Go source can
// only describe named-field structs, while a schema can also declare
// positional structs and tagged unions (enums). Both paths produce the same
// analyze shapes.
package schema
