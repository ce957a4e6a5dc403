// Package sdkgen turns OpenAPI specifications into the typed inputs an SDK
// renderer needs: a language-neutral intermediate representation plus
// per-client TypeScript type expressions, query types, and query-key tuples.
//
// Quick Start:
//
//	import sdkgen "github.com/blimu-dev/packages-sub001"
//
//	// Build the IR and artifacts for every client in a config file
//	result, err := sdkgen.Run("./sdkgen.yaml")
//
// For more control, see the generator package.
package sdkgen

import (
	"github.com/blimu-dev/packages-sub001/pkg/generator"
	"github.com/blimu-dev/packages-sub001/pkg/ir"
)

// Run executes the pipeline for every client in a configuration file.
// Optionally, specify a single client name to process only that client.
//
// Example:
//
//	// All clients
//	result, err := sdkgen.Run("./sdkgen.yaml")
//
//	// Only one client
//	result, err := sdkgen.Run("./sdkgen.yaml", "my-client")
func Run(configPath string, singleClient ...string) (*generator.Result, error) {
	return generator.RunFromConfig(configPath, singleClient...)
}

// BuildIR loads an OpenAPI spec from a file path or HTTP(S) URL and returns
// its intermediate representation.
//
// Example:
//
//	rep, err := sdkgen.BuildIR("./openapi.yaml")
func BuildIR(spec string) (ir.IR, error) {
	return generator.BuildIR(spec)
}

// ValidateSpec validates an OpenAPI specification file.
// This is useful for checking if a spec is valid before attempting a run.
//
// Example:
//
//	err := sdkgen.ValidateSpec("./openapi.yaml")
//	if err != nil {
//		log.Fatalf("Invalid OpenAPI spec: %v", err)
//	}
func ValidateSpec(specPath string) error {
	return generator.ValidateSpec(specPath)
}
