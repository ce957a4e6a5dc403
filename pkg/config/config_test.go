package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Spec: "./openapi.yaml",
		Clients: []Client{
			{
				Type:        "typescript",
				OutDir:      "./out",
				PackageName: "@acme/api-client",
				Name:        "AcmeClient",
			},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, Validate(validConfig()))
}

func TestValidate_MissingSpec(t *testing.T) {
	cfg := validConfig()
	cfg.Spec = ""
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Spec")
}

func TestValidate_NoClients(t *testing.T) {
	cfg := validConfig()
	cfg.Clients = nil
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Clients")
}

func TestValidate_UnknownClientType(t *testing.T) {
	cfg := validConfig()
	cfg.Clients[0].Type = "rust"
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "typescript", "error should name the allowed set")
}

func TestValidate_MissingClientFields(t *testing.T) {
	cfg := validConfig()
	cfg.Clients[0].PackageName = ""
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PackageName")
}

func TestValidate_UnknownTemplateKey(t *testing.T) {
	cfg := validConfig()
	cfg.Clients[0].Templates = map[string]string{"clientz": "tpl/client.gotmpl"}
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"clientz"`)
	assert.Contains(t, err.Error(), "allowed:")
}

func TestValidate_RecognizedTemplateKey(t *testing.T) {
	cfg := validConfig()
	cfg.Clients[0].Templates = map[string]string{"schema": "tpl/schema.gotmpl"}
	require.NoError(t, Validate(cfg))
}

func TestValidate_PredefinedTypeRequiresPackage(t *testing.T) {
	cfg := validConfig()
	cfg.Clients[0].PredefinedTypes = []PredefinedType{{Type: "ResourceType"}}
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Package")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sdkgen.yaml")
	content := `
spec: ./openapi.yaml
clients:
  - type: typescript
    outDir: ./sdk
    packageName: "@acme/api-client"
    name: AcmeClient
    includeQueryKeys: true
    predefinedTypes:
      - type: ResourceType
        package: "@acme/types"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg.Spec))
	require.Len(t, cfg.Clients, 1)
	c := cfg.Clients[0]
	assert.True(t, filepath.IsAbs(c.OutDir))
	assert.True(t, c.IncludeQueryKeys)
	assert.Equal(t, map[string]struct{}{"ResourceType": {}}, c.PredefinedTypeNames())
}

func TestLoad_KeepsSpecURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sdkgen.yaml")
	content := `
spec: https://example.com/openapi.json
clients:
  - type: typescript
    outDir: ./sdk
    packageName: pkg
    name: Client
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/openapi.json", cfg.Spec)
}

func TestShouldExcludeFile(t *testing.T) {
	c := Client{OutDir: "/tmp/out", ExcludeFiles: []string{"package.json", "src"}}
	assert.True(t, c.ShouldExcludeFile("/tmp/out/package.json"))
	assert.True(t, c.ShouldExcludeFile("/tmp/out/src/client.ts"))
	assert.False(t, c.ShouldExcludeFile("/tmp/out/README.md"))
	assert.False(t, c.ShouldExcludeFile("/tmp/out/srcfile.ts"))
}
