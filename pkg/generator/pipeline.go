package generator

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/blimu-dev/packages-sub001/pkg/config"
	"github.com/blimu-dev/packages-sub001/pkg/ir"
	"github.com/blimu-dev/packages-sub001/pkg/openapi"
	"github.com/blimu-dev/packages-sub001/pkg/override"
	"github.com/blimu-dev/packages-sub001/pkg/projectconfig"
)

// Service runs the spec-to-IR pipeline: customer config extraction,
// placeholder overrides, document loading, IR construction, and per-client
// artifact computation. Each Run receives fresh inputs and produces fresh
// outputs; no state is shared across runs.
type Service struct {
	// streamingMedia holds extra content types classified as chunked streams
	// for the duration of one run.
	streamingMedia []string
}

// NewService creates a pipeline service.
func NewService() *Service {
	return &Service{}
}

// Result is the output of one generation run, handed to the template
// rendering collaborator.
type Result struct {
	// IR is the full intermediate representation before per-client filtering.
	IR      ir.IR
	Clients []ClientResult
}

// ClientResult carries one client's filtered IR and its computed artifacts.
type ClientResult struct {
	Client    config.Client
	IR        ir.IR
	Artifacts Artifacts
}

// Run executes the whole pipeline for a validated configuration. Fatal errors
// (unsupported version, unreadable spec, malformed customer config, invalid
// configuration) abort the run; schema-level problems degrade to unknown
// types inside the IR instead.
func (s *Service) Run(cfg *config.Config, onlyClient string) (*Result, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	var extracted projectconfig.ExtractedTypes
	if cfg.ProjectConfig != "" {
		pc, err := projectconfig.Load(cfg.ProjectConfig)
		if err != nil {
			return nil, err
		}
		extracted = projectconfig.ExtractTypes(pc)
	}

	s.streamingMedia = collectStreamingMedia(cfg)

	doc, err := s.LoadSpec(cfg.Spec, extracted)
	if err != nil {
		return nil, err
	}

	fullIR, err := s.buildIR(doc)
	if err != nil {
		return nil, err
	}

	res := &Result{IR: fullIR}
	for _, client := range cfg.Clients {
		if onlyClient != "" && client.Name != onlyClient {
			continue
		}
		filtered, err := s.filterIR(fullIR, client)
		if err != nil {
			return nil, err
		}
		res.Clients = append(res.Clients, ClientResult{
			Client:    client,
			IR:        filtered,
			Artifacts: BuildArtifacts(client, filtered),
		})
	}
	return res, nil
}

// LoadSpec reads the raw spec, applies placeholder overrides, and parses the
// result into an OpenAPI document. Version detection failure is fatal.
func (s *Service) LoadSpec(spec string, extracted projectconfig.ExtractedTypes) (*openapi3.T, error) {
	raw, err := openapi.ReadSpec(spec)
	if err != nil {
		return nil, err
	}
	var rawDoc map[string]any
	if err := yaml.Unmarshal(raw, &rawDoc); err != nil {
		return nil, fmt.Errorf("parsing spec %s: %w", spec, err)
	}

	data, err := yaml.Marshal(override.Apply(rawDoc, extracted))
	if err != nil {
		return nil, fmt.Errorf("serializing spec %s: %w", spec, err)
	}

	doc, err := openapi.LoadDocumentData(data)
	if err != nil {
		return nil, fmt.Errorf("loading spec %s: %w", spec, err)
	}
	if err := openapi.CheckVersion(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// BuildIR loads a spec without overrides and returns its IR. Convenience for
// callers that only need the representation.
func (s *Service) BuildIR(spec string) (ir.IR, error) {
	doc, err := s.LoadSpec(spec, projectconfig.ExtractedTypes{})
	if err != nil {
		return ir.IR{}, err
	}
	return s.buildIR(doc)
}

// collectStreamingMedia merges every client's declared streaming media types;
// the IR is built once, so classification sees the union.
func collectStreamingMedia(cfg *config.Config) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, c := range cfg.Clients {
		for _, m := range c.StreamingMediaTypes {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}
