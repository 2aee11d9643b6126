package gen

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lensgen/internal/analyze"
	"lensgen/internal/diagnostic"
)

func msgShape() *analyze.EnumShape {
	return &analyze.EnumShape{
		TypeID: analyze.TypeID{Name: "Msg"},
		Variants: []analyze.VariantInfo{
			{Name: "Int", Kind: analyze.VariantKindTuple, Arity: 1, Payload: "int32"},
			{Name: "Text", Kind: analyze.VariantKindTuple, Arity: 1, Payload: "string"},
		},
	}
}

func TestVariantAccessors_SingleFieldTupleVariants(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()
	config.PackageName = "message"

	g := NewGenerator(config)

	file, err := g.VariantAccessors(msgShape())
	require.NoError(t, err)
	require.NotNil(t, file)

	assert.Equal(t, "msg_accessors.go", file.Filename)

	content := string(file.Content)
	parseOK(t, file.Content)

	assert.Contains(t, content, "package message")
	assert.Contains(t, content, "type msgTag uint8")
	assert.Contains(t, content, "msgTagInt msgTag = iota")
	assert.Contains(t, content, "msgTagText")
	assert.Contains(t, content, "type Msg struct")
	assert.Contains(t, content, "intVal  int32")

	for _, method := range []string{
		"func NewMsgInt(p int32) Msg",
		"func (m *Msg) IsInt() bool",
		"func (m *Msg) AsInt() (int32, bool)",
		"func (m *Msg) AsIntMut() *int32",
		"func (m *Msg) SetInt(p int32)",
		"func (m *Msg) MapInt(f func(*int32))",
		"func NewMsgText(p string) Msg",
		"func (m *Msg) IsText() bool",
		"func (m *Msg) AsText() (string, bool)",
		"func (m *Msg) AsTextMut() *string",
		"func (m *Msg) SetText(p string)",
		"func (m *Msg) MapText(f func(*string))",
	} {
		assert.Contains(t, content, method)
	}
}

func TestVariantAccessors_CaseNormalizesVariantNames(t *testing.T) {
	t.Parallel()

	shape := &analyze.EnumShape{
		TypeID: analyze.TypeID{Name: "Signal"},
		Variants: []analyze.VariantInfo{
			{Name: "ping", Kind: analyze.VariantKindTuple, Arity: 1, Payload: "uint64"},
		},
	}

	g := NewGenerator(DefaultConfig())

	file, err := g.VariantAccessors(shape)
	require.NoError(t, err)

	content := string(file.Content)
	parseOK(t, file.Content)

	assert.Contains(t, content, "func (m *Signal) IsPing() bool")
	assert.Contains(t, content, "pingVal uint64")
}

func TestVariantAccessors_Deterministic(t *testing.T) {
	t.Parallel()

	g := NewGenerator(DefaultConfig())

	first, err := g.VariantAccessors(msgShape())
	require.NoError(t, err)

	second, err := g.VariantAccessors(msgShape())
	require.NoError(t, err)

	assert.Equal(t, string(first.Content), string(second.Content))
}

func TestVariantAccessors_ZeroVariantEnum(t *testing.T) {
	t.Parallel()

	shape := &analyze.EnumShape{
		TypeID: analyze.TypeID{Name: "Never"},
	}

	g := NewGenerator(DefaultConfig())

	file, err := g.VariantAccessors(shape)
	require.NoError(t, err)
	require.NotNil(t, file)

	content := string(file.Content)
	parseOK(t, file.Content)

	// Degenerate but valid: the type exists, the accessor surface is empty.
	assert.Contains(t, content, "type Never struct")
	assert.NotContains(t, content, "func (m *Never)")
	assert.False(t, g.Diagnostics().HasErrors())
}

func TestVariantAccessors_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		variants []analyze.VariantInfo
		code     string
		message  string
		subject  string
	}{
		{
			name: "unit variant",
			variants: []analyze.VariantInfo{
				{Name: "Ping", Kind: analyze.VariantKindUnit},
			},
			code:    diagnostic.CodeUnitVariant,
			message: diagnostic.MsgUnitVariant,
			subject: "Ping",
		},
		{
			name: "multi-field tuple variant",
			variants: []analyze.VariantInfo{
				{Name: "Pair", Kind: analyze.VariantKindTuple, Arity: 2},
			},
			code:    diagnostic.CodeMultiFieldTuple,
			message: diagnostic.MsgMultiFieldTuple,
			subject: "Pair",
		},
		{
			name: "named-field variant",
			variants: []analyze.VariantInfo{
				{Name: "Point", Kind: analyze.VariantKindNamedFields},
			},
			code:    diagnostic.CodeNamedVariant,
			message: diagnostic.MsgNamedVariant,
			subject: "Point",
		},
		{
			name: "first violation wins",
			variants: []analyze.VariantInfo{
				{Name: "Ok", Kind: analyze.VariantKindTuple, Arity: 1, Payload: "int32"},
				{Name: "Ping", Kind: analyze.VariantKindUnit},
				{Name: "Point", Kind: analyze.VariantKindNamedFields},
			},
			code:    diagnostic.CodeUnitVariant,
			message: diagnostic.MsgUnitVariant,
			subject: "Ping",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			shape := &analyze.EnumShape{
				TypeID:   analyze.TypeID{Name: "Bad"},
				Variants: tt.variants,
			}

			g := NewGenerator(DefaultConfig())

			file, err := g.VariantAccessors(shape)
			require.Error(t, err, spew.Sdump(g.Diagnostics()))
			assert.Nil(t, file)
			assert.ErrorContains(t, err, tt.message)

			diags := g.Diagnostics()
			require.Len(t, diags.Errors, 1)
			assert.Equal(t, tt.code, diags.Errors[0].Code)
			assert.Equal(t, tt.message, diags.Errors[0].Message)
			assert.Equal(t, "Bad", diags.Errors[0].TypeName)
			assert.Equal(t, tt.subject, diags.Errors[0].Subject)
		})
	}
}

func TestVariantAccessors_RejectsNonEnum(t *testing.T) {
	t.Parallel()

	g := NewGenerator(DefaultConfig())

	file, err := g.VariantAccessors(addressShape())
	require.Error(t, err)
	assert.Nil(t, file)
	assert.ErrorContains(t, err, diagnostic.MsgNotAnEnum)

	diags := g.Diagnostics()
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeNotAnEnum, diags.Errors[0].Code)
	assert.Equal(t, diagnostic.MsgNotAnEnum, diags.Errors[0].Message)
}

func TestGenerate_RejectionBlocksAllOutput(t *testing.T) {
	t.Parallel()

	shapes := []analyze.Shape{
		addressShape(),
		&analyze.EnumShape{
			TypeID: analyze.TypeID{Name: "Bad"},
			Variants: []analyze.VariantInfo{
				{Name: "Ping", Kind: analyze.VariantKindUnit},
			},
		},
	}

	g := NewGenerator(DefaultConfig())

	files, err := g.Generate(shapes)
	require.Error(t, err)
	assert.Nil(t, files)
	assert.True(t, g.Diagnostics().HasErrors())
}

func TestGenerate_MixedShapes(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()
	config.PackageName = "message"

	g := NewGenerator(config)

	files, err := g.Generate([]analyze.Shape{addressShape(), msgShape()})
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "address_accessors.go", files[0].Filename)
	assert.Equal(t, "msg_accessors.go", files[1].Filename)

	assert.True(t, strings.Contains(string(files[1].Content), "SetText"))
}
