package openapi

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNullable(t *testing.T) {
	baseTypes := []string{"string", "number", "integer", "boolean", "array", "object"}

	for _, typ := range baseTypes {
		flag := &openapi3.Schema{Type: &openapi3.Types{typ}, Nullable: true}
		assert.True(t, IsNullable(flag), "3.0 nullable flag with type %q", typ)

		list := &openapi3.Schema{Type: &openapi3.Types{typ, "null"}}
		assert.True(t, IsNullable(list), "3.1 null in type list with type %q", typ)

		plain := &openapi3.Schema{Type: &openapi3.Types{typ}}
		assert.False(t, IsNullable(plain), "no marker with type %q", typ)
	}

	assert.False(t, IsNullable(nil))
	assert.False(t, IsNullable(&openapi3.Schema{}), "untyped schema without marker")
	assert.True(t, IsNullable(&openapi3.Schema{Type: &openapi3.Types{"null"}}))
}

func TestBaseType(t *testing.T) {
	assert.Nil(t, BaseType(nil))
	assert.Nil(t, BaseType(&openapi3.Schema{}), "absent type yields no base type")
	assert.Nil(t, BaseType(&openapi3.Schema{Type: &openapi3.Types{"null"}}))

	got := BaseType(&openapi3.Schema{Type: &openapi3.Types{"string", "null"}})
	require.NotNil(t, got)
	assert.Equal(t, []string{"string"}, got.Slice())

	got = BaseType(&openapi3.Schema{Type: &openapi3.Types{"integer"}})
	require.NotNil(t, got)
	assert.Equal(t, []string{"integer"}, got.Slice())
}

func TestHasType(t *testing.T) {
	s := &openapi3.Schema{Type: &openapi3.Types{"string", "null"}}
	assert.True(t, HasType(s, "string"))
	assert.False(t, HasType(s, "null"), "null is nullability, not a base type")
	assert.False(t, HasType(nil, "string"))
	assert.False(t, HasType(&openapi3.Schema{}, "string"))
}
