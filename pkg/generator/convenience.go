package generator

import (
	"github.com/blimu-dev/packages-sub001/pkg/config"
	"github.com/blimu-dev/packages-sub001/pkg/ir"
	"github.com/blimu-dev/packages-sub001/pkg/openapi"
)

// RunFromConfig runs the pipeline from a configuration file. Optionally a
// single client name restricts the per-client work.
func RunFromConfig(configPath string, singleClient ...string) (*Result, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	onlyClient := ""
	if len(singleClient) > 0 {
		onlyClient = singleClient[0]
	}

	return NewService().Run(cfg, onlyClient)
}

// BuildIR loads a spec from a file or URL and returns its intermediate
// representation without applying any overrides or client filtering.
func BuildIR(spec string) (ir.IR, error) {
	return NewService().BuildIR(spec)
}

// ValidateSpec validates an OpenAPI specification
func ValidateSpec(specPath string) error {
	return openapi.ValidateDocument(specPath)
}
