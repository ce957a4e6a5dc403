package ir

// StreamingFormat classifies a streaming response body.
type StreamingFormat string

const (
	// StreamSSE is a text/event-stream response.
	StreamSSE StreamingFormat = "sse"
	// StreamNDJSON is an application/x-ndjson response.
	StreamNDJSON StreamingFormat = "ndjson"
	// StreamChunked is any other declared streaming media type.
	StreamChunked StreamingFormat = "chunked"
)

// IROperation represents a single API operation (endpoint + method)
type IROperation struct {
	OperationID string
	Method      string
	Path        string
	Tag         string
	// OriginalTags preserves the full tag list from the spec; Tag is its first
	// entry (or "default" for untagged operations).
	OriginalTags []string
	Summary      string
	Description  string
	Deprecated   bool
	PathParams   []IRParam
	QueryParams  []IRParam
	RequestBody  *IRRequestBody
	Response     IRResponse
}

// IRService represents a group of operations, typically grouped by tag
type IRService struct {
	Tag        string
	Operations []IROperation
}

// IR represents the complete intermediate representation of an OpenAPI spec
type IR struct {
	Services        []IRService
	SecuritySchemes []IRSecurityScheme
	// ModelDefs holds a language-agnostic structured representation of components schemas
	ModelDefs []IRModelDef
}

// IRParam represents a parameter (path or query)
type IRParam struct {
	Name     string
	Required bool
	Schema   IRSchema
	// Description from the OpenAPI parameter
	Description string
}

// IRRequestBody represents a request body
type IRRequestBody struct {
	ContentType string
	Required    bool
	Schema      IRSchema
}

// IRResponse represents the success response of an operation
type IRResponse struct {
	ContentType string
	Schema      IRSchema
	// Description contains the response description chosen for this operation
	Description string
	// IsStreaming is set when the response content type is a streaming media
	// type; StreamingFormat then says which decoder the runtime client needs.
	IsStreaming     bool
	StreamingFormat StreamingFormat
}

// IRModelDef represents a named model (typically a component or a generated inline type)
// with a structured schema that is language-agnostic.
type IRModelDef struct {
	Name        string
	Schema      IRSchema
	Annotations IRAnnotations
}

// IRAnnotations captures non-structural metadata that some generators may render.
type IRAnnotations struct {
	Title       string
	Description string
	Deprecated  bool
	ReadOnly    bool
	WriteOnly   bool
	Default     any
	Examples    []any
}

// IRSchemaKind represents the kind of schema
type IRSchemaKind string

const (
	IRKindUnknown IRSchemaKind = "unknown"
	IRKindString  IRSchemaKind = "string"
	IRKindNumber  IRSchemaKind = "number"
	IRKindInteger IRSchemaKind = "integer"
	IRKindBoolean IRSchemaKind = "boolean"
	IRKindNull    IRSchemaKind = "null"
	IRKindArray   IRSchemaKind = "array"
	IRKindObject  IRSchemaKind = "object"
	IRKindEnum    IRSchemaKind = "enum"
	IRKindRef     IRSchemaKind = "ref"
	IRKindOneOf   IRSchemaKind = "oneOf"
	IRKindAnyOf   IRSchemaKind = "anyOf"
	IRKindAllOf   IRSchemaKind = "allOf"
)

// IRSchema models a JSON Schema (as used by OpenAPI 3.0 and 3.1) shape in a
// language-agnostic way. References are resolved to bare component names
// before IR construction; a Ref node never carries a raw JSON pointer.
type IRSchema struct {
	Kind     IRSchemaKind
	Nullable bool
	Format   string

	// Object
	Properties           []IRField
	AdditionalProperties *IRSchema // typed maps; nil when absent

	// Array
	Items *IRSchema

	// Enum
	EnumValues []string     // stringified values for portability
	EnumRaw    []any        // original values preserving type where possible
	EnumBase   IRSchemaKind // underlying base kind: string, number, integer, boolean, unknown

	// Ref (component name)
	Ref string

	// Compositions
	OneOf []*IRSchema
	AnyOf []*IRSchema
	AllOf []*IRSchema

	// Polymorphism
	Discriminator *IRDiscriminator
}

// IRField represents a field in an object schema
type IRField struct {
	Name     string
	Type     *IRSchema
	Required bool
	// Pass-through annotations commonly used by generators
	Annotations IRAnnotations
}

// IRDiscriminator represents polymorphism discriminator information
type IRDiscriminator struct {
	PropertyName string
	Mapping      map[string]string
}

// IRSecurityScheme captures a simplified view of OpenAPI security schemes
// sufficient for SDK generation.
type IRSecurityScheme struct {
	// Key is the name of the security scheme in components.securitySchemes
	Key string
	// Type is one of: http, apiKey, oauth2, openIdConnect
	Type string
	// Scheme is used when Type is http (e.g., "basic", "bearer")
	Scheme string
	// In is used when Type is apiKey (e.g., "header", "query", "cookie")
	In string
	// Name is used when Type is apiKey; it is the header/query/cookie name
	Name string
	// BearerFormat may be provided for bearer tokens
	BearerFormat string
}
