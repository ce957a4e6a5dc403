package typescript

import (
	"strings"

	"github.com/blimu-dev/packages-sub001/pkg/ir"
	"github.com/blimu-dev/packages-sub001/pkg/utils"
)

// MethodName derives the SDK method name for an operation: a cleaned
// operationId when present, REST-style heuristics otherwise.
func MethodName(op ir.IROperation) string {
	if parsed := parseOperationID(op.OperationID); parsed != "" {
		return utils.ToCamelCase(parsed)
	}
	return deriveMethodName(op)
}

// parseOperationID strips any prefix up to and including "Controller_",
// a convention of NestJS-produced specs.
func parseOperationID(opID string) string {
	if idx := strings.Index(opID, "Controller_"); idx >= 0 {
		return opID[idx+len("Controller_"):]
	}
	return opID
}

// deriveMethodName creates method names using basic REST-style heuristics:
// GET /brands -> list, GET /brands/{id} -> retrieve, POST -> create,
// PUT|PATCH -> update, DELETE -> delete.
func deriveMethodName(op ir.IROperation) string {
	hasID := strings.Contains(op.Path, "{") && strings.Contains(op.Path, "}")
	switch op.Method {
	case "GET":
		if hasID {
			return "retrieve"
		}
		return "list"
	case "POST":
		return "create"
	case "PUT", "PATCH":
		return "update"
	case "DELETE":
		return "delete"
	default:
		return strings.ToLower(op.Method)
	}
}

// QueryTypeName names the generated query-parameters interface for an
// operation, e.g. tag "users" + method "list" -> "UsersListQuery".
func QueryTypeName(op ir.IROperation, methodName string) string {
	return utils.ToPascalCase(op.Tag) + utils.ToPascalCase(methodName) + "Query"
}

// PathTemplate converts an OpenAPI path into a TypeScript template literal:
// /foo/{id} -> `/foo/${encodeURIComponent(id)}`.
func PathTemplate(op ir.IROperation) string {
	path := op.Path
	var b strings.Builder
	b.WriteString("`")
	for i := 0; i < len(path); i++ {
		if path[i] == '{' {
			j := i + 1
			for j < len(path) && path[j] != '}' {
				j++
			}
			if j < len(path) {
				b.WriteString("${encodeURIComponent(")
				b.WriteString(path[i+1 : j])
				b.WriteString(")}")
				i = j
				continue
			}
		}
		b.WriteByte(path[i])
	}
	b.WriteString("`")
	return b.String()
}
