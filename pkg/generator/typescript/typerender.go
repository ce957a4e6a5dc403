package typescript

import (
	"strings"

	"github.com/blimu-dev/packages-sub001/pkg/ir"
)

// RenderOptions configures type rendering for one client.
type RenderOptions struct {
	// PredefinedTypes holds component names that render as bare imported
	// identifiers instead of Schema.<Name> references. Substitution applies
	// at every nesting level: array items, object properties, union branches.
	PredefinedTypes map[string]struct{}
}

// SchemaType renders an IR schema into a TypeScript type expression.
func SchemaType(s ir.IRSchema, opts RenderOptions) string {
	// Base type string without nullability; append null later
	var t string
	switch s.Kind {
	case ir.IRKindString:
		if s.Format == "binary" {
			t = "Blob"
		} else {
			t = "string"
		}
	case ir.IRKindNumber, ir.IRKindInteger:
		t = "number"
	case ir.IRKindBoolean:
		t = "boolean"
	case ir.IRKindNull:
		t = "null"
	case ir.IRKindRef:
		switch {
		case s.Ref == "":
			t = "unknown"
		case opts.isPredefined(s.Ref):
			t = s.Ref
		default:
			t = "Schema." + s.Ref
		}
	case ir.IRKindArray:
		if s.Items != nil {
			inner := SchemaType(*s.Items, opts)
			// Unions and intersections need parentheses before []
			if strings.Contains(inner, " | ") || strings.Contains(inner, " & ") {
				inner = "(" + inner + ")"
			}
			t = inner + "[]"
		} else {
			t = "unknown[]"
		}
	case ir.IRKindOneOf:
		t = joinBranches(s.OneOf, " | ", opts)
	case ir.IRKindAnyOf:
		t = joinBranches(s.AnyOf, " | ", opts)
	case ir.IRKindAllOf:
		t = joinBranches(s.AllOf, " & ", opts)
	case ir.IRKindEnum:
		t = enumUnion(s)
	case ir.IRKindObject:
		t = objectType(s, opts)
	default:
		t = "unknown"
	}
	if s.Nullable && t != "null" {
		t += " | null"
	}
	return t
}

func (o RenderOptions) isPredefined(name string) bool {
	_, ok := o.PredefinedTypes[name]
	return ok
}

func joinBranches(subs []*ir.IRSchema, sep string, opts RenderOptions) string {
	parts := make([]string, 0, len(subs))
	for _, sub := range subs {
		if sub == nil {
			continue
		}
		parts = append(parts, SchemaType(*sub, opts))
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, sep)
}

// enumUnion inlines an enum as a literal union. Named enums are normally
// reached through refs; this covers anonymous ones.
func enumUnion(s ir.IRSchema) string {
	if len(s.EnumValues) == 0 {
		return "unknown"
	}
	vals := make([]string, 0, len(s.EnumValues))
	switch s.EnumBase {
	case ir.IRKindNumber, ir.IRKindInteger:
		vals = append(vals, s.EnumValues...)
	case ir.IRKindBoolean:
		for _, v := range s.EnumValues {
			if v == "true" || v == "false" {
				vals = append(vals, v)
			} else {
				vals = append(vals, `"`+v+`"`)
			}
		}
	default:
		for _, v := range s.EnumValues {
			vals = append(vals, `"`+v+`"`)
		}
	}
	return strings.Join(vals, " | ")
}

func objectType(s ir.IRSchema, opts RenderOptions) string {
	if len(s.Properties) == 0 {
		if s.AdditionalProperties != nil {
			return "Record<string, " + SchemaType(*s.AdditionalProperties, opts) + ">"
		}
		return "Record<string, unknown>"
	}
	parts := make([]string, 0, len(s.Properties))
	for _, f := range s.Properties {
		ft := "unknown"
		if f.Type != nil {
			ft = SchemaType(*f.Type, opts)
		}
		name := quotePropertyName(f.Name)
		if f.Required {
			parts = append(parts, name+": "+ft)
		} else {
			parts = append(parts, name+"?: "+ft)
		}
	}
	return "{" + strings.Join(parts, "; ") + "}"
}

// quotePropertyName quotes property names that are not valid TS identifiers
func quotePropertyName(name string) string {
	needsQuoting := len(name) == 0
	for _, char := range name {
		if !((char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') || char == '_' || char == '$') {
			needsQuoting = true
			break
		}
	}
	if len(name) > 0 && name[0] >= '0' && name[0] <= '9' {
		needsQuoting = true
	}
	if needsQuoting {
		return `"` + name + `"`
	}
	return name
}

// ResponseType renders an operation's success response type; content-free
// responses are void.
func ResponseType(op ir.IROperation, opts RenderOptions) string {
	if op.Response.Schema.Kind == "" {
		return "void"
	}
	return SchemaType(op.Response.Schema, opts)
}
