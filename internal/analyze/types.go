package analyze

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "lensgen/examples/user"
	Name    string // e.g., "Address"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Shape is a structural description of a type, consumed by the generators.
// The two implementations are [StructShape] and [EnumShape].
type Shape interface {
	ID() TypeID
	shape()
}

// StructKind classifies a struct shape.
type StructKind int

const (
	StructKindInvalid    StructKind = iota // named type that is not a struct
	StructKindNamed                        // struct with named fields
	StructKindPositional                   // struct with index-addressed fields
	StructKindUnit                         // struct with no fields
)

// String returns a human-readable representation of the StructKind.
func (k StructKind) String() string {
	switch k {
	case StructKindNamed:
		return "named"
	case StructKindPositional:
		return "positional"
	case StructKindUnit:
		return "unit"
	default:
		return "invalid"
	}
}

// StructShape describes a struct's field list.
type StructShape struct {
	TypeID TypeID
	Kind   StructKind
	Fields []FieldInfo
	// Declared is true for schema-declared shapes, where the generator must
	// also emit the type definition itself.
	Declared bool
}

// ID implements Shape.
func (s *StructShape) ID() TypeID { return s.TypeID }

func (s *StructShape) shape() {}

// FieldInfo describes one struct field.
type FieldInfo struct {
	// Name is the field name; empty for positional fields.
	Name string
	// Index is the field's position in declaration order.
	Index int
	// Type is the field type in Go syntax, qualified for the package the
	// accessors are generated into.
	Type string
	// Imports lists the import paths the type expression needs.
	Imports []string
}

// EnumShape describes a tagged union's variant list.
type EnumShape struct {
	TypeID   TypeID
	Variants []VariantInfo
}

// ID implements Shape.
func (e *EnumShape) ID() TypeID { return e.TypeID }

func (e *EnumShape) shape() {}

// VariantKind classifies a variant's payload shape.
type VariantKind int

const (
	VariantKindUnit        VariantKind = iota // no payload
	VariantKindTuple                          // unnamed payload fields
	VariantKindNamedFields                    // named payload fields
)

// String returns a human-readable representation of the VariantKind.
func (k VariantKind) String() string {
	switch k {
	case VariantKindUnit:
		return "unit"
	case VariantKindTuple:
		return "tuple"
	case VariantKindNamedFields:
		return "named"
	default:
		return "unknown"
	}
}

// VariantInfo describes one variant of an enum shape.
type VariantInfo struct {
	Name string
	Kind VariantKind
	// Arity is the number of payload fields for tuple variants.
	Arity int
	// Payload is the payload type in Go syntax, set only for single-field
	// tuple variants.
	Payload string
	// Imports lists the import paths the payload type needs.
	Imports []string
}
