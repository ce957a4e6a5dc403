package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blimu-dev/packages-sub001/pkg/config"
	"github.com/blimu-dev/packages-sub001/pkg/generator"
	"github.com/blimu-dev/packages-sub001/pkg/openapi"
)

type FallbackParams struct {
	Spec        string
	Type        string
	OutDir      string
	PackageName string
	Name        string
	IncludeTags []string
	ExcludeTags []string
}

type RunGenerateParams struct {
	ConfigPath    string
	ProjectConfig string
	SingleClient  string
	Fallback      FallbackParams
}

// RunValidate loads a spec, checks its version, and runs full document
// validation.
func RunValidate(input string) error {
	return openapi.ValidateDocument(input)
}

// RunGenerate runs the pipeline and writes each client's IR and artifacts
// into its output directory for the template rendering step.
func RunGenerate(p RunGenerateParams) error {
	cfg, err := resolveConfig(p)
	if err != nil {
		return err
	}

	svc := generator.NewService()
	result, err := svc.Run(cfg, p.SingleClient)
	if err != nil {
		return err
	}

	for _, cr := range result.Clients {
		if err := writeClientOutput(cr); err != nil {
			return err
		}
	}
	return nil
}

func resolveConfig(p RunGenerateParams) (*config.Config, error) {
	if p.ConfigPath == "" {
		f := p.Fallback
		if f.Spec == "" || f.Type == "" || f.OutDir == "" || f.PackageName == "" || f.Name == "" {
			return nil, errors.New("either --config or all of --input, --type, --out, --package-name, --client-name must be provided")
		}
		return &config.Config{
			Spec:          f.Spec,
			ProjectConfig: p.ProjectConfig,
			Clients: []config.Client{
				{
					Type:        f.Type,
					OutDir:      absPath(f.OutDir),
					PackageName: f.PackageName,
					Name:        f.Name,
					IncludeTags: f.IncludeTags,
					ExcludeTags: f.ExcludeTags,
				},
			},
		}, nil
	}

	cfg, err := config.Load(p.ConfigPath)
	if err != nil {
		return nil, err
	}
	if p.ProjectConfig != "" {
		cfg.ProjectConfig = absPath(p.ProjectConfig)
	}
	return cfg, nil
}

func writeClientOutput(cr generator.ClientResult) error {
	if err := os.MkdirAll(cr.Client.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", cr.Client.OutDir, err)
	}
	if err := writeJSON(filepath.Join(cr.Client.OutDir, "ir.json"), cr.IR); err != nil {
		return err
	}
	return writeJSON(filepath.Join(cr.Client.OutDir, "artifacts.json"), cr.Artifacts)
}

func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func absPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	abs, _ := filepath.Abs(p)
	return abs
}
