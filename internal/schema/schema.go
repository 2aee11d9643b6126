package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// File is the root of a parsed type schema.
type File struct {
	// Version of the schema format. Defaults to "1".
	Version string `yaml:"version"`
	// Package is the Go package name generated files belong to.
	Package string `yaml:"package"`
	// PkgPath is the import path of the generated package. Optional; used
	// only for shape identity in diagnostics.
	PkgPath string `yaml:"pkgpath"`
	// Types are the declared types, in order.
	Types []TypeDecl `yaml:"types"`
}

// TypeDecl declares one type. Exactly one of Struct or Enum must be set.
type TypeDecl struct {
	Name   string      `yaml:"name"`
	Struct *StructDecl `yaml:"struct"`
	Enum   *EnumDecl   `yaml:"enum"`
}

// StructDecl declares a struct shape. At most one of Positional or Fields may
// be set; neither means a unit struct.
type StructDecl struct {
	// Positional lists field types for an index-addressed struct.
	Positional TypeList `yaml:"positional"`
	// Fields lists named fields.
	Fields []FieldDecl `yaml:"fields"`
}

// FieldDecl declares one named field.
type FieldDecl struct {
	Name string `yaml:"name"`
	// Type is the field type in Go syntax, e.g. "string" or "time.Time".
	Type string `yaml:"type"`
	// Import is the import path Type needs, if any.
	Import string `yaml:"import"`
}

// EnumDecl declares a tagged union shape.
type EnumDecl struct {
	Variants []VariantDecl `yaml:"variants"`
}

// VariantDecl declares one enum variant. A variant with no shape keys is a
// unit variant; at most one of Unit, Tuple, or Fields may be set.
type VariantDecl struct {
	Name string `yaml:"name"`
	// Unit marks an explicit payload-free variant.
	Unit bool `yaml:"unit"`
	// Tuple lists unnamed payload types.
	Tuple TypeList `yaml:"tuple"`
	// Import is the import path the tuple payload type needs, if any.
	Import string `yaml:"import"`
	// Fields lists named payload fields.
	Fields []FieldDecl `yaml:"fields"`
}

// TypeList is a list of Go type expressions. In YAML it accepts either a
// single scalar or a sequence.
type TypeList []string

// UnmarshalYAML implements custom YAML unmarshaling for TypeList.
// Accepts either a single string or an array of strings.
func (l *TypeList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*l = TypeList{str}
		} else {
			*l = TypeList{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*l = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for TypeList.
// Outputs a single string if length is 1, otherwise an array.
func (l TypeList) MarshalYAML() (any, error) {
	if len(l) == 1 {
		return l[0], nil
	}

	return []string(l), nil
}
