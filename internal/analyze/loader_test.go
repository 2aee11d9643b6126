package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_StructShape(t *testing.T) {
	analyzer := NewAnalyzer()
	err := analyzer.LoadPackages("lensgen/examples/user")
	require.NoError(t, err)

	shape, err := analyzer.StructShape("Address")
	require.NoError(t, err)

	assert.Equal(t, TypeID{PkgPath: "lensgen/examples/user", Name: "Address"}, shape.TypeID)
	assert.Equal(t, StructKindNamed, shape.Kind)
	assert.False(t, shape.Declared)

	require.Len(t, shape.Fields, 2)
	assert.Equal(t, "City", shape.Fields[0].Name)
	assert.Equal(t, "string", shape.Fields[0].Type)
	assert.Equal(t, 0, shape.Fields[0].Index)
	assert.Equal(t, "Zip", shape.Fields[1].Name)
	assert.Equal(t, "uint32", shape.Fields[1].Type)
}

func TestAnalyzer_SamePackageTypesAreUnqualified(t *testing.T) {
	analyzer := NewAnalyzer()
	err := analyzer.LoadPackages("lensgen/examples/user")
	require.NoError(t, err)

	shape, err := analyzer.StructShape("User")
	require.NoError(t, err)

	require.Len(t, shape.Fields, 2)
	assert.Equal(t, "Profile", shape.Fields[0].Type)
	assert.Empty(t, shape.Fields[0].Imports)
	assert.Equal(t, "Settings", shape.Fields[1].Type)
}

func TestAnalyzer_SliceFields(t *testing.T) {
	analyzer := NewAnalyzer()
	err := analyzer.LoadPackages("lensgen/examples/user")
	require.NoError(t, err)

	shape, err := analyzer.StructShape("Bag")
	require.NoError(t, err)

	require.Len(t, shape.Fields, 1)
	assert.Equal(t, "Items", shape.Fields[0].Name)
	assert.Equal(t, "[]int32", shape.Fields[0].Type)
}

func TestAnalyzer_NonStructIsInvalidKind(t *testing.T) {
	analyzer := NewAnalyzer()
	err := analyzer.LoadPackages("lensgen/examples/user")
	require.NoError(t, err)

	shape, err := analyzer.StructShape("Tag")
	require.NoError(t, err)

	assert.Equal(t, StructKindInvalid, shape.Kind)
	assert.Empty(t, shape.Fields)
}

func TestAnalyzer_TypeNotFound(t *testing.T) {
	analyzer := NewAnalyzer()
	err := analyzer.LoadPackages("lensgen/examples/user")
	require.NoError(t, err)

	_, err = analyzer.StructShape("NoSuchType")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchType")
}
