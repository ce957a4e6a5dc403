package typescript

import (
	"strings"

	"github.com/blimu-dev/packages-sub001/pkg/ir"
)

// Query-key tuple types describe the ordered argument list that uniquely
// identifies one operation invocation for caching. A tuple starts with the
// path's static-segment literal, then one slot per path parameter, then the
// body and query slots. Optional body/query fan out into a union of tuple
// variants.

// QueryKeyBase returns the TS string-literal token for an operation's cache
// key: the path template with parameter placeholders removed and the static
// segments joined, e.g. "/workspaces/{a}/resources/{b}" -> "'workspaces/resources'".
func QueryKeyBase(op ir.IROperation) string {
	parts := strings.Split(op.Path, "/")
	baseParts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			continue
		}
		baseParts = append(baseParts, p)
	}
	return "'" + strings.Join(baseParts, "/") + "'"
}

// QueryKeyTupleTypes returns every tuple-type variant of an operation's cache
// key. The body slot is unconditional when the body is required; the query
// slot is unconditional only when query params exist, none is optional, and
// the body slot is not itself optional. When both body and query are
// independently optional the variants enumerate in fixed order: bare, +query,
// +body, +body+query. Consumers position-index into this union; the order is
// a contract.
func QueryKeyTupleTypes(op ir.IROperation, methodName string, opts RenderOptions) []string {
	slots := []string{QueryKeyBase(op)}
	for _, p := range op.PathParams {
		slots = append(slots, SchemaType(p.Schema, opts))
	}

	hasBody := op.RequestBody != nil
	bodyRequired := hasBody && op.RequestBody.Required
	var bodyType string
	if hasBody {
		bodyType = SchemaType(op.RequestBody.Schema, opts)
	}

	hasQuery := len(op.QueryParams) > 0
	queryType := "Schema." + QueryTypeName(op, methodName)
	queryHasOptional := false
	for _, q := range op.QueryParams {
		if !q.Required {
			queryHasOptional = true
			break
		}
	}

	bodyOptional := hasBody && !bodyRequired
	queryUnconditional := hasQuery && !queryHasOptional && !bodyOptional

	if bodyRequired {
		slots = append(slots, bodyType)
	}
	if queryUnconditional {
		slots = append(slots, queryType)
	}

	queryOptional := hasQuery && !queryUnconditional
	switch {
	case bodyOptional && queryOptional:
		return []string{
			tuple(slots),
			tuple(with(slots, queryType)),
			tuple(with(slots, bodyType)),
			tuple(with(slots, bodyType, queryType)),
		}
	case bodyOptional:
		return []string{
			tuple(slots),
			tuple(with(slots, bodyType)),
		}
	case queryOptional:
		return []string{
			tuple(slots),
			tuple(with(slots, queryType)),
		}
	default:
		return []string{tuple(slots)}
	}
}

// QueryKeyType joins the tuple variants into the operation's cache-key type.
func QueryKeyType(op ir.IROperation, methodName string, opts RenderOptions) string {
	return strings.Join(QueryKeyTupleTypes(op, methodName, opts), " | ")
}

func tuple(parts []string) string {
	return "[" + strings.Join(parts, ", ") + "]"
}

func with(parts []string, extra ...string) []string {
	out := make([]string, 0, len(parts)+len(extra))
	out = append(out, parts...)
	return append(out, extra...)
}
