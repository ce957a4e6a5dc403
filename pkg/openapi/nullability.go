package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// The two dialects encode nullability differently: 3.0 carries a side-channel
// `nullable: true` flag next to a single type string, while 3.1 lists "null"
// as one of possibly several entries in the type array. These helpers fold
// both encodings into one boolean + base-type pair.

// IsNullable reports whether a schema admits null under either dialect's
// encoding. A nil schema or a schema without either marker is not nullable.
func IsNullable(s *openapi3.Schema) bool {
	if s == nil {
		return false
	}
	if s.Nullable {
		return true
	}
	if s.Type != nil {
		for _, t := range s.Type.Slice() {
			if t == openapi3.TypeNull {
				return true
			}
		}
	}
	return false
}

// BaseType returns the schema's declared type with any "null" entry stripped.
// A schema with no type (structural-only, e.g. a pure oneOf) or a type list
// of just "null" yields nil.
func BaseType(s *openapi3.Schema) *openapi3.Types {
	if s == nil || s.Type == nil {
		return nil
	}
	out := make(openapi3.Types, 0, len(s.Type.Slice()))
	for _, t := range s.Type.Slice() {
		if t != openapi3.TypeNull {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return &out
}

// HasType reports whether the schema's base type includes typ.
func HasType(s *openapi3.Schema, typ string) bool {
	base := BaseType(s)
	if base == nil {
		return false
	}
	for _, t := range base.Slice() {
		if t == typ {
			return true
		}
	}
	return false
}
