package projectconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "project.yaml", `
resources:
  workspace:
    name: Workspace
  project:
    name: Project
entitlements:
  seats: {}
plans:
  free:
    resource_limits:
      a: 1
  pro:
    resource_limits:
      a: 1
      b: 2
    usage_based_limits:
      tokens: 1000
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Resources)
	assert.Equal(t, []string{"workspace", "project"}, cfg.Resources.Keys)
	require.NotNil(t, cfg.Entitlements)
	assert.Equal(t, []string{"seats"}, cfg.Entitlements.Keys)
	require.Len(t, cfg.Plans, 2)
	assert.Equal(t, "free", cfg.Plans[0].Name)
	assert.Equal(t, []string{"a"}, cfg.Plans[0].ResourceLimits)
	assert.Equal(t, []string{"a", "b"}, cfg.Plans[1].ResourceLimits)
	assert.Equal(t, []string{"tokens"}, cfg.Plans[1].UsageBasedLimits)
	assert.Nil(t, cfg.Features)
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, "project.json",
		`{"resources": {"workspace": {}, "project": {}}, "features": {"sso": {}}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Resources)
	assert.Equal(t, []string{"workspace", "project"}, cfg.Resources.Keys)
	require.NotNil(t, cfg.Features)
	assert.Equal(t, []string{"sso"}, cfg.Features.Keys)
	assert.Nil(t, cfg.Entitlements)
}

func TestLoad_CUE(t *testing.T) {
	path := writeConfig(t, "project.cue", `
resources: {
	workspace: {}
	project: {}
}
plans: {
	free: resource_limits: {a: 1}
	pro: {
		resource_limits: {a: 1, b: 2}
		usage_based_limits: {tokens: 1000}
	}
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Resources)
	assert.Equal(t, []string{"workspace", "project"}, cfg.Resources.Keys)
	require.Len(t, cfg.Plans, 2)
	assert.Equal(t, []string{"a", "b"}, cfg.Plans[1].ResourceLimits)
	assert.Equal(t, []string{"tokens"}, cfg.Plans[1].UsageBasedLimits)
}

func TestLoad_CUEFactory(t *testing.T) {
	// The config value sits behind a `config` field whose contents are
	// produced by evaluation rather than spelled out literally.
	path := writeConfig(t, "project.cue", `
_base: {workspace: {}}
config: {
	resources: _base & {project: {}}
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Resources)
	assert.ElementsMatch(t, []string{"workspace", "project"}, cfg.Resources.Keys)
}

func TestLoad_TypeScriptShim(t *testing.T) {
	path := writeConfig(t, "project.ts", `export default {}`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tsx")
	assert.Contains(t, err.Error(), "ts-node")
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := writeConfig(t, "project.toml", `[resources]`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported config file format ".toml"`)
	assert.Contains(t, err.Error(), ".cue")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "project.yaml", "resources: [}")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path, "error should carry the file path")
}

func TestLoad_MalformedCUE(t *testing.T) {
	path := writeConfig(t, "project.cue", "resources: {")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestExtractTypes_Scenarios(t *testing.T) {
	t.Run("resource keys in declaration order", func(t *testing.T) {
		got := ExtractTypes(&ProjectConfig{Resources: &Section{Keys: []string{"workspace", "project"}}})
		assert.Equal(t, []string{"workspace", "project"}, got.ResourceTypes)
	})

	t.Run("limit dedup first-seen order", func(t *testing.T) {
		got := ExtractTypes(&ProjectConfig{
			PlansPresent: true,
			Plans: []Plan{
				{Name: "free", ResourceLimits: []string{"a"}},
				{Name: "pro", ResourceLimits: []string{"a", "b"}},
			},
		})
		assert.Equal(t, []string{"free", "pro"}, got.PlanTypes)
		assert.Equal(t, []string{"a", "b"}, got.LimitTypes)
		assert.Nil(t, got.UsageLimitTypes)
	})

	t.Run("usage limits across plans", func(t *testing.T) {
		got := ExtractTypes(&ProjectConfig{
			Plans: []Plan{
				{Name: "pro", UsageBasedLimits: []string{"tokens", "requests"}},
				{Name: "max", UsageBasedLimits: []string{"requests", "seats"}},
			},
		})
		assert.Equal(t, []string{"tokens", "requests", "seats"}, got.UsageLimitTypes)
	})

	t.Run("empty resources yields empty list, absent yields nil", func(t *testing.T) {
		got := ExtractTypes(&ProjectConfig{Resources: &Section{Keys: nil}})
		require.NotNil(t, got.ResourceTypes)
		assert.Empty(t, got.ResourceTypes)

		got = ExtractTypes(&ProjectConfig{})
		assert.Nil(t, got.ResourceTypes)
	})

	t.Run("empty entitlements yields nil", func(t *testing.T) {
		got := ExtractTypes(&ProjectConfig{Entitlements: &Section{Keys: []string{}}})
		assert.Nil(t, got.EntitlementTypes)
	})

	t.Run("nil config", func(t *testing.T) {
		got := ExtractTypes(nil)
		assert.Nil(t, got.ResourceTypes)
		assert.Nil(t, got.PlanTypes)
	})
}
