package generator

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/blimu-dev/packages-sub001/pkg/config"
	"github.com/blimu-dev/packages-sub001/pkg/ir"
)

// defaultTag groups operations that declare no tags. Untagged operations must
// never abort generation.
const defaultTag = "default"

var httpMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD", "TRACE"}

func pathOperations(item *openapi3.PathItem) []*openapi3.Operation {
	return []*openapi3.Operation{
		item.Get, item.Post, item.Put, item.Patch,
		item.Delete, item.Options, item.Head, item.Trace,
	}
}

// buildIR creates the full IR from an OpenAPI document. Tag filtering happens
// later, per client.
func (s *Service) buildIR(doc *openapi3.T) (ir.IR, error) {
	conv := newSchemaConverter(doc)

	result := s.buildIRFromDoc(doc, conv)
	result.SecuritySchemes = collectSecuritySchemes(doc)
	result.ModelDefs = buildStructuredModels(doc, conv)

	return result, nil
}

// filterIR filters the IR based on client configuration
func (s *Service) filterIR(fullIR ir.IR, client config.Client) (ir.IR, error) {
	include, exclude, err := compileTagFilters(client.IncludeTags, client.ExcludeTags)
	if err != nil {
		return ir.IR{}, err
	}

	// Filter services and operations based on their original tags
	filteredServices := make([]ir.IRService, 0)
	for _, service := range fullIR.Services {
		filteredOps := make([]ir.IROperation, 0)
		for _, op := range service.Operations {
			if shouldIncludeOperation(op.OriginalTags, include, exclude) {
				filteredOps = append(filteredOps, op)
			}
		}
		if len(filteredOps) > 0 {
			filteredService := service
			filteredService.Operations = filteredOps
			filteredServices = append(filteredServices, filteredService)
		}
	}

	filteredIR := ir.IR{
		Services:        filteredServices,
		SecuritySchemes: fullIR.SecuritySchemes,
	}
	filteredIR.ModelDefs = filterUnusedModelDefs(filteredIR, fullIR.ModelDefs)

	return filteredIR, nil
}

// compileTagFilters compiles regex patterns for tag filtering
func compileTagFilters(include, exclude []string) ([]*regexp.Regexp, []*regexp.Regexp, error) {
	inc := make([]*regexp.Regexp, 0, len(include))
	for _, p := range include {
		r, err := regexp.Compile(p)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid includeTags pattern %q: %w", p, err)
		}
		inc = append(inc, r)
	}
	exc := make([]*regexp.Regexp, 0, len(exclude))
	for _, p := range exclude {
		r, err := regexp.Compile(p)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid excludeTags pattern %q: %w", p, err)
		}
		exc = append(exc, r)
	}
	return inc, exc, nil
}

// shouldIncludeOperation determines if an operation should be included based on its original tags
func shouldIncludeOperation(originalTags []string, include, exclude []*regexp.Regexp) bool {
	included := len(include) == 0

	// Included if ANY tag matches ANY include pattern
	if len(include) > 0 {
		for _, tag := range originalTags {
			for _, r := range include {
				if r.MatchString(tag) {
					included = true
					break
				}
			}
			if included {
				break
			}
		}
	}
	if !included {
		return false
	}

	// Excluded if ANY tag matches ANY exclude pattern
	for _, tag := range originalTags {
		for _, r := range exclude {
			if r.MatchString(tag) {
				return false
			}
		}
	}

	return true
}

// buildIRFromDoc walks every path+method pair and produces one IROperation
// each, grouped into services by primary tag.
func (s *Service) buildIRFromDoc(doc *openapi3.T, conv *schemaConverter) ir.IR {
	servicesMap := map[string]*ir.IRService{}

	addOp := func(tag string, op *openapi3.Operation, method, path string) {
		if _, ok := servicesMap[tag]; !ok {
			servicesMap[tag] = &ir.IRService{Tag: tag}
		}

		pathParams, queryParams := collectParams(conv, op, path)

		originalTags := make([]string, len(op.Tags))
		copy(originalTags, op.Tags)
		if len(originalTags) == 0 {
			originalTags = []string{defaultTag}
		}

		servicesMap[tag].Operations = append(servicesMap[tag].Operations, ir.IROperation{
			OperationID:  op.OperationID,
			Method:       method,
			Path:         path,
			Tag:          tag,
			OriginalTags: originalTags,
			Summary:      op.Summary,
			Description:  op.Description,
			Deprecated:   op.Deprecated,
			PathParams:   pathParams,
			QueryParams:  queryParams,
			RequestBody:  extractRequestBody(conv, op),
			Response:     s.extractResponse(conv, op),
		})
	}

	if doc.Paths != nil {
		for path, item := range doc.Paths.Map() {
			for i, op := range pathOperations(item) {
				if op == nil {
					continue
				}
				tag := defaultTag
				if len(op.Tags) > 0 {
					tag = op.Tags[0]
				}
				addOp(tag, op, httpMethods[i], path)
			}
		}
	}

	// Sort services and operations for determinism
	services := make([]ir.IRService, 0, len(servicesMap))
	for _, svc := range servicesMap {
		sort.Slice(svc.Operations, func(i, j int) bool {
			if svc.Operations[i].Path == svc.Operations[j].Path {
				return svc.Operations[i].Method < svc.Operations[j].Method
			}
			return svc.Operations[i].Path < svc.Operations[j].Path
		})
		services = append(services, *svc)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].Tag < services[j].Tag })
	return ir.IR{Services: services}
}

// collectParams extracts parameters from an operation. Path parameters keep
// their left-to-right order of appearance in the path template; query
// parameters sort by name for determinism.
func collectParams(conv *schemaConverter, op *openapi3.Operation, path string) (pathParams, queryParams []ir.IRParam) {
	for _, pr := range op.Parameters {
		if pr == nil || pr.Value == nil {
			continue
		}
		p := pr.Value
		param := ir.IRParam{
			Name:        p.Name,
			Required:    p.Required,
			Schema:      conv.convert(p.Schema),
			Description: p.Description,
		}
		switch p.In {
		case openapi3.ParameterInPath:
			pathParams = append(pathParams, param)
		case openapi3.ParameterInQuery:
			queryParams = append(queryParams, param)
		}
	}
	pathParams = orderByPath(path, pathParams)
	sort.Slice(queryParams, func(i, j int) bool { return queryParams[i].Name < queryParams[j].Name })
	return
}

// orderByPath reorders path parameters to match their placeholder order in
// the path template. Parameters declared but absent from the template keep
// their declaration order at the tail.
func orderByPath(path string, params []ir.IRParam) []ir.IRParam {
	if len(params) < 2 {
		return params
	}
	index := map[string]int{}
	for i, p := range params {
		index[p.Name] = i
	}
	ordered := make([]ir.IRParam, 0, len(params))
	taken := make([]bool, len(params))
	for _, name := range pathPlaceholders(path) {
		if i, ok := index[name]; ok && !taken[i] {
			ordered = append(ordered, params[i])
			taken[i] = true
		}
	}
	for i, p := range params {
		if !taken[i] {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

// pathPlaceholders returns the {param} names in template order.
func pathPlaceholders(path string) []string {
	var names []string
	for i := 0; i < len(path); i++ {
		if path[i] != '{' {
			continue
		}
		j := i + 1
		for j < len(path) && path[j] != '}' {
			j++
		}
		if j < len(path) {
			names = append(names, path[i+1:j])
			i = j
		}
	}
	return names
}

// extractRequestBody extracts request body information, preferring JSON
func extractRequestBody(conv *schemaConverter, op *openapi3.Operation) *ir.IRRequestBody {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	rb := op.RequestBody.Value
	if media, ok := rb.Content["application/json"]; ok {
		return &ir.IRRequestBody{
			ContentType: "application/json",
			Schema:      conv.convert(media.Schema),
			Required:    rb.Required,
		}
	}
	if media, ok := rb.Content["application/x-www-form-urlencoded"]; ok {
		return &ir.IRRequestBody{
			ContentType: "application/x-www-form-urlencoded",
			Schema:      conv.convert(media.Schema),
			Required:    rb.Required,
		}
	}
	if _, ok := rb.Content["multipart/form-data"]; ok {
		return &ir.IRRequestBody{
			ContentType: "multipart/form-data",
			Schema:      ir.IRSchema{Kind: ir.IRKindUnknown},
			Required:    rb.Required,
		}
	}
	// Fallback to the first declared media type, in deterministic order
	for _, ct := range sortedKeys(rb.Content) {
		return &ir.IRRequestBody{
			ContentType: ct,
			Schema:      conv.convert(rb.Content[ct].Schema),
			Required:    rb.Required,
		}
	}
	return nil
}

// classifyStreaming maps a response content type to a streaming format.
// text/event-stream and application/x-ndjson are always streaming; anything
// in the configured streaming media list is a generic chunked stream.
func (s *Service) classifyStreaming(contentType string) (ir.StreamingFormat, bool) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	switch ct {
	case "text/event-stream":
		return ir.StreamSSE, true
	case "application/x-ndjson", "application/ndjson":
		return ir.StreamNDJSON, true
	}
	for _, m := range s.streamingMedia {
		if ct == strings.ToLower(strings.TrimSpace(m)) {
			return ir.StreamChunked, true
		}
	}
	return "", false
}

// extractResponse picks the operation's success response: 200 or 201 first,
// then any other 2xx. 204 and content-free responses yield a zero schema.
func (s *Service) extractResponse(conv *schemaConverter, op *openapi3.Operation) ir.IRResponse {
	if op.Responses == nil {
		return ir.IRResponse{}
	}
	codes := op.Responses.Map()

	for _, code := range []string{"200", "201"} {
		if rr, ok := codes[code]; ok && rr != nil && rr.Value != nil {
			return s.responseFromContent(conv, rr.Value)
		}
	}
	// Any other 2xx, in deterministic order
	for _, code := range sortedKeys(codes) {
		if len(code) != 3 || code[0] != '2' {
			continue
		}
		rr := codes[code]
		if rr == nil || rr.Value == nil {
			continue
		}
		if code == "204" {
			return ir.IRResponse{Description: responseDescription(rr.Value)}
		}
		return s.responseFromContent(conv, rr.Value)
	}
	return ir.IRResponse{}
}

func (s *Service) responseFromContent(conv *schemaConverter, resp *openapi3.Response) ir.IRResponse {
	desc := responseDescription(resp)

	if media, ok := resp.Content["application/json"]; ok {
		return ir.IRResponse{
			ContentType: "application/json",
			Schema:      conv.convert(media.Schema),
			Description: desc,
		}
	}
	// A declared streaming media type wins over other non-JSON content
	for _, ct := range sortedKeys(resp.Content) {
		if format, ok := s.classifyStreaming(ct); ok {
			return ir.IRResponse{
				ContentType:     ct,
				Schema:          conv.convert(resp.Content[ct].Schema),
				Description:     desc,
				IsStreaming:     true,
				StreamingFormat: format,
			}
		}
	}
	for _, ct := range sortedKeys(resp.Content) {
		return ir.IRResponse{
			ContentType: ct,
			Schema:      conv.convert(resp.Content[ct].Schema),
			Description: desc,
		}
	}
	return ir.IRResponse{Description: desc}
}

func responseDescription(resp *openapi3.Response) string {
	if resp.Description != nil {
		return *resp.Description
	}
	return ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// collectSecuritySchemes extracts security scheme information
func collectSecuritySchemes(doc *openapi3.T) []ir.IRSecurityScheme {
	if doc.Components == nil || doc.Components.SecuritySchemes == nil {
		return nil
	}
	out := make([]ir.IRSecurityScheme, 0, len(doc.Components.SecuritySchemes))
	for _, name := range sortedKeys(doc.Components.SecuritySchemes) {
		sr := doc.Components.SecuritySchemes[name]
		if sr == nil || sr.Value == nil {
			continue
		}
		sec := sr.Value
		sc := ir.IRSecurityScheme{Key: name, Type: sec.Type}
		switch sec.Type {
		case "http":
			sc.Scheme = sec.Scheme
			sc.BearerFormat = sec.BearerFormat
		case "apiKey":
			sc.In = string(sec.In)
			sc.Name = sec.Name
		}
		out = append(out, sc)
	}
	return out
}

// buildStructuredModels converts components.schemas into language-agnostic
// model defs, appending any inline enum defs the converter lifted out.
func buildStructuredModels(doc *openapi3.T, conv *schemaConverter) []ir.IRModelDef {
	out := []ir.IRModelDef{}
	if doc.Components == nil || doc.Components.Schemas == nil {
		return append(out, conv.defs...)
	}
	names := sortedKeys(doc.Components.Schemas)

	// Reserve component names so lifted inline defs never collide with them
	for _, name := range names {
		conv.seen[name] = struct{}{}
	}

	for _, name := range names {
		sr := doc.Components.Schemas[name]
		out = append(out, ir.IRModelDef{
			Name:        name,
			Schema:      conv.convertNamed(sr, name, "", false),
			Annotations: extractAnnotations(sr),
		})
	}
	return append(out, conv.defs...)
}

// filterUnusedModelDefs removes model defs not reachable from any operation
// of the filtered IR, following refs transitively with cycle protection.
func filterUnusedModelDefs(filteredIR ir.IR, allModelDefs []ir.IRModelDef) []ir.IRModelDef {
	modelDefMap := make(map[string]ir.IRModelDef, len(allModelDefs))
	for _, md := range allModelDefs {
		modelDefMap[md.Name] = md
	}

	referenced := make(map[string]bool)
	visited := make(map[string]bool)

	var collectRefs func(schema ir.IRSchema)
	collectRefs = func(schema ir.IRSchema) {
		if schema.Kind == ir.IRKindRef && schema.Ref != "" {
			referenced[schema.Ref] = true
			if !visited[schema.Ref] {
				visited[schema.Ref] = true
				if md, ok := modelDefMap[schema.Ref]; ok {
					collectRefs(md.Schema)
				}
			}
		}
		if schema.Items != nil {
			collectRefs(*schema.Items)
		}
		if schema.AdditionalProperties != nil {
			collectRefs(*schema.AdditionalProperties)
		}
		for _, sub := range schema.OneOf {
			if sub != nil {
				collectRefs(*sub)
			}
		}
		for _, sub := range schema.AnyOf {
			if sub != nil {
				collectRefs(*sub)
			}
		}
		for _, sub := range schema.AllOf {
			if sub != nil {
				collectRefs(*sub)
			}
		}
		for _, field := range schema.Properties {
			if field.Type != nil {
				collectRefs(*field.Type)
			}
		}
	}

	for _, service := range filteredIR.Services {
		for _, op := range service.Operations {
			for _, param := range op.PathParams {
				collectRefs(param.Schema)
			}
			for _, param := range op.QueryParams {
				collectRefs(param.Schema)
			}
			if op.RequestBody != nil {
				collectRefs(op.RequestBody.Schema)
			}
			collectRefs(op.Response.Schema)
		}
	}

	filtered := make([]ir.IRModelDef, 0, len(allModelDefs))
	for _, md := range allModelDefs {
		if referenced[md.Name] {
			filtered = append(filtered, md)
		}
	}
	return filtered
}
