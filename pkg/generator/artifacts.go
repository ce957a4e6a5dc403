package generator

import (
	"github.com/blimu-dev/packages-sub001/pkg/config"
	"github.com/blimu-dev/packages-sub001/pkg/generator/typescript"
	"github.com/blimu-dev/packages-sub001/pkg/ir"
)

// Artifacts are the computed type-expression strings for one client, handed
// to the template-rendering collaborator alongside the filtered IR.
type Artifacts struct {
	Services []ServiceArtifact `json:"services"`
	Models   []ModelArtifact   `json:"models"`
}

// ServiceArtifact groups one tag's operation artifacts.
type ServiceArtifact struct {
	Tag        string              `json:"tag"`
	Operations []OperationArtifact `json:"operations"`
}

// ModelArtifact is one named model with its rendered type expression.
type ModelArtifact struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// OperationArtifact carries everything the rendering step needs to emit one
// SDK method.
type OperationArtifact struct {
	OperationID  string             `json:"operationId,omitempty"`
	Method       string             `json:"method"`
	Path         string             `json:"path"`
	PathTemplate string             `json:"pathTemplate"`
	MethodName   string             `json:"methodName"`
	PathParams   []ParamArtifact    `json:"pathParams,omitempty"`
	QueryType    string             `json:"queryType,omitempty"`
	BodyType     string             `json:"bodyType,omitempty"`
	BodyRequired bool               `json:"bodyRequired,omitempty"`
	ResponseType string             `json:"responseType"`
	Streaming    ir.StreamingFormat `json:"streaming,omitempty"`
	QueryKeyType string             `json:"queryKeyType,omitempty"`
}

// ParamArtifact is one path parameter with its rendered type.
type ParamArtifact struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// BuildArtifacts computes the rendered strings for every operation and model
// of a client's filtered IR.
func BuildArtifacts(client config.Client, in ir.IR) Artifacts {
	opts := typescript.RenderOptions{PredefinedTypes: client.PredefinedTypeNames()}

	out := Artifacts{}
	for _, svc := range in.Services {
		sa := ServiceArtifact{Tag: svc.Tag}
		for _, op := range svc.Operations {
			sa.Operations = append(sa.Operations, buildOperationArtifact(client, op, opts))
		}
		out.Services = append(out.Services, sa)
	}
	for _, md := range in.ModelDefs {
		out.Models = append(out.Models, ModelArtifact{
			Name: md.Name,
			Type: typescript.SchemaType(md.Schema, opts),
		})
	}
	return out
}

func buildOperationArtifact(client config.Client, op ir.IROperation, opts typescript.RenderOptions) OperationArtifact {
	method := typescript.MethodName(op)
	oa := OperationArtifact{
		OperationID:  op.OperationID,
		Method:       op.Method,
		Path:         op.Path,
		PathTemplate: typescript.PathTemplate(op),
		MethodName:   method,
		ResponseType: typescript.ResponseType(op, opts),
	}
	for _, p := range op.PathParams {
		oa.PathParams = append(oa.PathParams, ParamArtifact{
			Name:     p.Name,
			Type:     typescript.SchemaType(p.Schema, opts),
			Required: p.Required,
		})
	}
	if len(op.QueryParams) > 0 {
		oa.QueryType = "Schema." + typescript.QueryTypeName(op, method)
	}
	if op.RequestBody != nil {
		oa.BodyType = typescript.SchemaType(op.RequestBody.Schema, opts)
		oa.BodyRequired = op.RequestBody.Required
	}
	if op.Response.IsStreaming {
		oa.Streaming = op.Response.StreamingFormat
	}
	if client.IncludeQueryKeys {
		oa.QueryKeyType = typescript.QueryKeyType(op, method, opts)
	}
	return oa
}
