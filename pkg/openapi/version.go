package openapi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Dialect identifies which OpenAPI schema dialect a document uses. The two
// supported dialects differ in how they encode nullability and types, so
// downstream stages branch on this instead of the raw version string.
type Dialect string

const (
	Dialect30      Dialect = "3.0"
	Dialect31      Dialect = "3.1"
	DialectUnknown Dialect = "unknown"
)

// ErrUnsupportedVersion is returned when a document declares an OpenAPI
// version outside the supported 3.0/3.1 range. This aborts the whole run.
var ErrUnsupportedVersion = errors.New("unsupported OpenAPI version")

// DetectVersion classifies a declared version string into a dialect.
// It is a pure classification: unrecognized input yields DialectUnknown
// rather than an error.
func DetectVersion(version string) Dialect {
	switch {
	case strings.HasPrefix(version, "3.0"):
		return Dialect30
	case strings.HasPrefix(version, "3.1"):
		return Dialect31
	default:
		return DialectUnknown
	}
}

// Supported reports whether the dialect can be processed by the pipeline.
func (d Dialect) Supported() bool {
	return d == Dialect30 || d == Dialect31
}

// CheckVersion returns ErrUnsupportedVersion (wrapped with the declared
// version) when the document's dialect is not supported.
func CheckVersion(doc *openapi3.T) error {
	if d := DetectVersion(doc.OpenAPI); !d.Supported() {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, doc.OpenAPI)
	}
	return nil
}
