package generator

import (
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/blimu-dev/packages-sub001/pkg/ir"
	"github.com/blimu-dev/packages-sub001/pkg/openapi"
	"github.com/blimu-dev/packages-sub001/pkg/utils"
)

var toPascal = utils.ToPascalCaseAdvanced

// schemaConverter turns OpenAPI schema nodes into IR schemas. Component
// references become bare names before any IR node is built, so downstream
// consumers never re-resolve. Inline enums found inside named components are
// lifted into named model defs so generators can emit them as standalone
// types.
type schemaConverter struct {
	doc  *openapi3.T
	defs []ir.IRModelDef
	seen map[string]struct{}
}

func newSchemaConverter(doc *openapi3.T) *schemaConverter {
	return &schemaConverter{doc: doc, seen: map[string]struct{}{}}
}

// convert maps one schema node outside any named context. Unresolvable
// references and untyped nodes degrade to IRKindUnknown; conversion never
// fails.
func (c *schemaConverter) convert(sr *openapi3.SchemaRef) ir.IRSchema {
	return c.convertNamed(sr, "", "", false)
}

// convertNamed maps a schema node encountered while walking the named
// component parent. parent/prop/arrayItem seed the synthetic name given to
// inline enums lifted into model defs; an empty parent disables lifting.
func (c *schemaConverter) convertNamed(sr *openapi3.SchemaRef, parent, prop string, arrayItem bool) ir.IRSchema {
	if sr == nil {
		return ir.IRSchema{Kind: ir.IRKindUnknown}
	}
	if sr.Ref != "" {
		name, ok := openapi.ComponentName(sr.Ref)
		if !ok {
			// Pointer outside the component schema namespace
			return ir.IRSchema{Kind: ir.IRKindUnknown}
		}
		if _, ok := openapi.ResolveRef(c.doc, sr.Ref); !ok {
			// Dangling component or reference cycle
			return ir.IRSchema{Kind: ir.IRKindUnknown}
		}
		return ir.IRSchema{Kind: ir.IRKindRef, Ref: name}
	}
	s := sr.Value
	if s == nil {
		return ir.IRSchema{Kind: ir.IRKindUnknown}
	}

	nullable := openapi.IsNullable(s)
	var disc *ir.IRDiscriminator
	if s.Discriminator != nil {
		disc = &ir.IRDiscriminator{PropertyName: s.Discriminator.PropertyName, Mapping: s.Discriminator.Mapping}
	}

	if len(s.OneOf) > 0 {
		return ir.IRSchema{Kind: ir.IRKindOneOf, OneOf: c.convertList(s.OneOf, parent, prop), Nullable: nullable, Discriminator: disc}
	}
	if len(s.AnyOf) > 0 {
		return ir.IRSchema{Kind: ir.IRKindAnyOf, AnyOf: c.convertList(s.AnyOf, parent, prop), Nullable: nullable, Discriminator: disc}
	}
	if len(s.AllOf) > 0 {
		return ir.IRSchema{Kind: ir.IRKindAllOf, AllOf: c.convertList(s.AllOf, parent, prop), Nullable: nullable, Discriminator: disc}
	}

	if len(s.Enum) > 0 {
		enum := enumSchema(s, nullable, disc)
		// Only nested inline enums are lifted; a top-level component enum is
		// already a named model.
		if parent == "" || (prop == "" && !arrayItem) {
			return enum
		}
		name := nestedName(parent, prop, arrayItem)
		if _, dup := c.seen[name]; !dup {
			c.seen[name] = struct{}{}
			c.defs = append(c.defs, ir.IRModelDef{Name: name, Schema: enum, Annotations: extractAnnotations(sr)})
		}
		return ir.IRSchema{Kind: ir.IRKindRef, Ref: name, Nullable: nullable}
	}

	if s.Type != nil && openapi.BaseType(s) == nil && nullable {
		// Type list of just "null"
		return ir.IRSchema{Kind: ir.IRKindNull}
	}

	switch {
	case openapi.HasType(s, openapi3.TypeArray):
		item := c.convertNamed(s.Items, parent, prop, true)
		return ir.IRSchema{Kind: ir.IRKindArray, Items: &item, Nullable: nullable, Discriminator: disc}
	case openapi.HasType(s, openapi3.TypeObject):
		return c.convertObject(s, parent, prop, nullable, disc)
	case openapi.HasType(s, openapi3.TypeString):
		return ir.IRSchema{Kind: ir.IRKindString, Nullable: nullable, Format: s.Format, Discriminator: disc}
	case openapi.HasType(s, openapi3.TypeInteger):
		return ir.IRSchema{Kind: ir.IRKindInteger, Nullable: nullable, Discriminator: disc}
	case openapi.HasType(s, openapi3.TypeNumber):
		return ir.IRSchema{Kind: ir.IRKindNumber, Nullable: nullable, Discriminator: disc}
	case openapi.HasType(s, openapi3.TypeBoolean):
		return ir.IRSchema{Kind: ir.IRKindBoolean, Nullable: nullable, Discriminator: disc}
	}
	return ir.IRSchema{Kind: ir.IRKindUnknown, Nullable: nullable, Discriminator: disc}
}

func (c *schemaConverter) convertList(refs openapi3.SchemaRefs, parent, prop string) []*ir.IRSchema {
	out := make([]*ir.IRSchema, 0, len(refs))
	for _, sub := range refs {
		sc := c.convertNamed(sub, parent, prop, false)
		out = append(out, &sc)
	}
	return out
}

func (c *schemaConverter) convertObject(s *openapi3.Schema, parent, prop string, nullable bool, disc *ir.IRDiscriminator) ir.IRSchema {
	// Properties in deterministic order
	names := make([]string, 0, len(s.Properties))
	for n := range s.Properties {
		names = append(names, n)
	}
	sort.Strings(names)

	fields := make([]ir.IRField, 0, len(names))
	for _, n := range names {
		pr := s.Properties[n]
		fieldType := c.convertNamed(pr, parent, childProp(prop, n), false)
		fields = append(fields, ir.IRField{
			Name:        n,
			Type:        &fieldType,
			Required:    isRequired(s.Required, n),
			Annotations: extractAnnotations(pr),
		})
	}

	var addl *ir.IRSchema
	if s.AdditionalProperties.Schema != nil {
		ap := c.convertNamed(s.AdditionalProperties.Schema, parent, childProp(prop, "Properties"), false)
		addl = &ap
	}
	return ir.IRSchema{Kind: ir.IRKindObject, Properties: fields, AdditionalProperties: addl, Nullable: nullable, Discriminator: disc}
}

func isRequired(required []string, name string) bool {
	for _, r := range required {
		if r == name {
			return true
		}
	}
	return false
}

// nestedName builds the synthetic model name for an inline schema:
// Parent, Parent_Prop, Parent_Prop_Item.
func nestedName(parent, prop string, arrayItem bool) string {
	name := parent
	if prop != "" {
		name += "_" + toPascal(prop)
	}
	if arrayItem {
		name += "_Item"
	}
	return name
}

func childProp(prop, name string) string {
	if prop == "" {
		return name
	}
	return prop + "_" + toPascal(name)
}

func enumSchema(s *openapi3.Schema, nullable bool, disc *ir.IRDiscriminator) ir.IRSchema {
	vals := make([]string, 0, len(s.Enum))
	for _, v := range s.Enum {
		vals = append(vals, fmt.Sprint(v))
	}
	return ir.IRSchema{
		Kind:          ir.IRKindEnum,
		EnumValues:    vals,
		EnumRaw:       s.Enum,
		EnumBase:      inferEnumBaseKind(s),
		Nullable:      nullable,
		Discriminator: disc,
	}
}

// inferEnumBaseKind infers the base kind for an enum, preferring the declared
// type and falling back to the first enum value's dynamic type.
func inferEnumBaseKind(s *openapi3.Schema) ir.IRSchemaKind {
	switch {
	case openapi.HasType(s, openapi3.TypeString):
		return ir.IRKindString
	case openapi.HasType(s, openapi3.TypeInteger):
		return ir.IRKindInteger
	case openapi.HasType(s, openapi3.TypeNumber):
		return ir.IRKindNumber
	case openapi.HasType(s, openapi3.TypeBoolean):
		return ir.IRKindBoolean
	}
	if len(s.Enum) > 0 {
		switch s.Enum[0].(type) {
		case string:
			return ir.IRKindString
		case int, int32, int64:
			return ir.IRKindInteger
		case float32, float64:
			return ir.IRKindNumber
		case bool:
			return ir.IRKindBoolean
		}
	}
	return ir.IRKindUnknown
}

// extractAnnotations extracts annotations from a schema reference
func extractAnnotations(sr *openapi3.SchemaRef) ir.IRAnnotations {
	var a ir.IRAnnotations
	if sr == nil || sr.Value == nil {
		return a
	}
	s := sr.Value
	a.Title = s.Title
	a.Description = s.Description
	a.Deprecated = s.Deprecated
	a.ReadOnly = s.ReadOnly
	a.WriteOnly = s.WriteOnly
	a.Default = s.Default
	if s.Example != nil {
		a.Examples = []any{s.Example}
	}
	return a
}
