package openapi

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const componentSchemaPrefix = "#/components/schemas/"

// ComponentName extracts the component schema name out of a reference
// expression. Only references into the document's own component namespace
// are accepted; anything else reports false.
func ComponentName(ref string) (string, bool) {
	if !strings.HasPrefix(ref, componentSchemaPrefix) {
		return "", false
	}
	name := strings.TrimPrefix(ref, componentSchemaPrefix)
	if name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return name, true
}

// ResolveRef resolves a "#/components/schemas/Name" reference expression to
// its concrete schema, transparently following chains of references. A chain
// that revisits a component (a reference cycle) resolves to not-found instead
// of looping. Missing components and malformed pointers also report false;
// callers degrade to an unknown schema rather than aborting.
func ResolveRef(doc *openapi3.T, ref string) (*openapi3.SchemaRef, bool) {
	name, ok := ComponentName(ref)
	if !ok {
		return nil, false
	}
	seen := map[string]struct{}{}
	for {
		if _, dup := seen[name]; dup {
			return nil, false
		}
		seen[name] = struct{}{}
		if doc == nil || doc.Components == nil || doc.Components.Schemas == nil {
			return nil, false
		}
		sr, ok := doc.Components.Schemas[name]
		if !ok || sr == nil {
			return nil, false
		}
		if sr.Ref == "" {
			return sr, true
		}
		name, ok = ComponentName(sr.Ref)
		if !ok {
			return nil, false
		}
	}
}

// ResolveSchema returns the concrete schema behind a possibly-referencing
// SchemaRef. Non-reference inputs resolve to themselves.
func ResolveSchema(doc *openapi3.T, sr *openapi3.SchemaRef) (*openapi3.SchemaRef, bool) {
	if sr == nil {
		return nil, false
	}
	if sr.Ref == "" {
		return sr, true
	}
	return ResolveRef(doc, sr.Ref)
}
