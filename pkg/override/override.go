// Package override rewrites placeholder component schemas in a raw OpenAPI
// document, attaching enumerations sourced from the customer's project
// configuration. It runs on the unparsed document, before IR building, so the
// injected enums are visible to every downstream stage.
package override

import (
	"strconv"

	"github.com/mohae/deepcopy"

	"github.com/blimu-dev/packages-sub001/pkg/projectconfig"
)

// Placeholder component names eligible for enum injection. Arbitrary scalar
// schemas are never auto-enumerated.
const (
	PlaceholderResourceType    = "ResourceType"
	PlaceholderEntitlementType = "EntitlementType"
	PlaceholderPlanType        = "PlanType"
	PlaceholderLimitType       = "LimitType"
	PlaceholderUsageLimitType  = "UsageLimitType"
)

var scalarTypes = map[string]struct{}{
	"string":  {},
	"number":  {},
	"integer": {},
	"boolean": {},
}

// Apply returns a deep copy of the raw document in which each recognized
// placeholder schema that (a) exists, (b) is not a $ref, and (c) declares a
// scalar primitive type gets an enum of the corresponding extracted values,
// coerced to the declared primitive. Everything else is left untouched, and
// the input document is never mutated.
func Apply(doc map[string]any, types projectconfig.ExtractedTypes) map[string]any {
	if doc == nil {
		return nil
	}
	out := deepcopy.Copy(doc).(map[string]any)

	schemas := componentSchemas(out)
	if schemas == nil {
		return out
	}

	for name, values := range map[string][]string{
		PlaceholderResourceType:    types.ResourceTypes,
		PlaceholderEntitlementType: types.EntitlementTypes,
		PlaceholderPlanType:        types.PlanTypes,
		PlaceholderLimitType:       types.LimitTypes,
		PlaceholderUsageLimitType:  types.UsageLimitTypes,
	} {
		if values == nil {
			continue
		}
		injectEnum(schemas, name, values)
	}
	return out
}

func componentSchemas(doc map[string]any) map[string]any {
	components, ok := doc["components"].(map[string]any)
	if !ok {
		return nil
	}
	schemas, ok := components["schemas"].(map[string]any)
	if !ok {
		return nil
	}
	return schemas
}

func injectEnum(schemas map[string]any, name string, values []string) {
	node, ok := schemas[name].(map[string]any)
	if !ok {
		return
	}
	if _, isRef := node["$ref"]; isRef {
		return
	}
	typ, _ := node["type"].(string)
	if _, scalar := scalarTypes[typ]; !scalar {
		return
	}
	node["enum"] = coerceValues(values, typ)
}

// coerceValues converts string identifiers to the placeholder's declared
// primitive: "true" becomes a bool for boolean, numeric strings parse for
// number/integer, and strings pass through unchanged. Values that do not
// parse as the declared primitive pass through as strings.
func coerceValues(values []string, typ string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		switch typ {
		case "boolean":
			if v == "true" || v == "false" {
				out = append(out, v == "true")
				continue
			}
		case "integer":
			if n, err := strconv.Atoi(v); err == nil {
				out = append(out, n)
				continue
			}
		case "number":
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				out = append(out, f)
				continue
			}
		}
		out = append(out, v)
	}
	return out
}
