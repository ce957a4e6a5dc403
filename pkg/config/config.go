package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for SDK generation
type Config struct {
	Spec string `yaml:"spec" validate:"required"`
	Name string `yaml:"name"`
	// ProjectConfig is the path to the customer project configuration whose
	// type lists feed the placeholder schema overrides. Optional.
	ProjectConfig string   `yaml:"projectConfig"`
	Clients       []Client `yaml:"clients" validate:"min=1,dive"`
}

// Client represents configuration for a single client SDK
type Client struct {
	Type        string   `yaml:"type" validate:"required,oneof=typescript typescript-types"`
	OutDir      string   `yaml:"outDir" validate:"required"`
	PackageName string   `yaml:"packageName" validate:"required"`
	ModuleName  string   `yaml:"moduleName"`
	Name        string   `yaml:"name" validate:"required"`
	IncludeTags []string `yaml:"includeTags"`
	ExcludeTags []string `yaml:"excludeTags"`
	// IncludeQueryKeys toggles generation of query-key tuple types per operation
	IncludeQueryKeys bool `yaml:"includeQueryKeys"`
	// PredefinedTypes lists component schemas that render as bare imported
	// identifiers instead of generated local types.
	PredefinedTypes []PredefinedType `yaml:"predefinedTypes" validate:"dive"`
	// Templates maps recognized template keys to replacement template paths
	// for the rendering collaborator. Keys outside the recognized set are
	// rejected at load time.
	Templates map[string]string `yaml:"templates"`
	// StreamingMediaTypes are additional response content types classified as
	// chunked streams beyond the built-in SSE/NDJSON detection.
	StreamingMediaTypes []string `yaml:"streamingMediaTypes"`
	// ExcludeFiles is a list of file paths (relative to outDir) that the
	// rendering collaborator should not emit.
	ExcludeFiles []string `yaml:"exclude"`
}

// PredefinedType declares that a component schema named Type must render as a
// bare identifier imported from Package rather than a generated local type.
type PredefinedType struct {
	Type       string `yaml:"type" validate:"required"`
	Package    string `yaml:"package" validate:"required"`
	ImportPath string `yaml:"importPath"`
}

// recognizedTemplates is the set of template keys a client may override.
var recognizedTemplates = map[string]struct{}{
	"client":  {},
	"index":   {},
	"service": {},
	"schema":  {},
	"package": {},
	"readme":  {},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// PredefinedTypeNames returns the set of component names covered by the
// client's predefined types, keyed for renderer lookup.
func (c *Client) PredefinedTypeNames() map[string]struct{} {
	if len(c.PredefinedTypes) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(c.PredefinedTypes))
	for _, pt := range c.PredefinedTypes {
		out[pt.Type] = struct{}{}
	}
	return out
}

// ShouldExcludeFile checks if a file path should be excluded based on the ExcludeFiles list.
// targetPath should be an absolute path, and the comparison is done relative to OutDir.
func (c *Client) ShouldExcludeFile(targetPath string) bool {
	if len(c.ExcludeFiles) == 0 {
		return false
	}

	relPath, err := filepath.Rel(c.OutDir, targetPath)
	if err != nil {
		// Not under OutDir, so don't exclude
		return false
	}

	relPath = filepath.ToSlash(relPath)
	if relPath == "." {
		relPath = ""
	}

	for _, excludePattern := range c.ExcludeFiles {
		normalizedExclude := filepath.ToSlash(excludePattern)
		if relPath == normalizedExclude {
			return true
		}
		// A directory pattern excludes everything under it
		if normalizedExclude != "" && strings.HasPrefix(relPath, normalizedExclude+"/") {
			return true
		}
	}

	return false
}

// Load loads configuration from a YAML file and validates it before any spec
// processing happens.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	for i := range cfg.Clients {
		c := &cfg.Clients[i]
		if !filepath.IsAbs(c.OutDir) {
			abs, _ := filepath.Abs(c.OutDir)
			c.OutDir = abs
		}
	}
	// Do not absolutize when spec is an HTTP(S) URL
	if u, err := url.Parse(cfg.Spec); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		// keep as-is
	} else if !filepath.IsAbs(cfg.Spec) {
		abs, _ := filepath.Abs(cfg.Spec)
		cfg.Spec = abs
	}
	if cfg.ProjectConfig != "" && !filepath.IsAbs(cfg.ProjectConfig) {
		abs, _ := filepath.Abs(cfg.ProjectConfig)
		cfg.ProjectConfig = abs
	}
	return &cfg, nil
}

// Validate rejects a configuration that fails schema constraints, naming the
// offending field and, for closed sets, the allowed values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fieldError(verrs[0])
		}
		return err
	}
	for i := range cfg.Clients {
		for key := range cfg.Clients[i].Templates {
			if _, ok := recognizedTemplates[key]; !ok {
				return fmt.Errorf("clients[%d].templates: unknown template key %q (allowed: %s)",
					i, key, strings.Join(templateKeys(), ", "))
			}
		}
	}
	return nil
}

func fieldError(fe validator.FieldError) error {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("config: %s is required", field)
	case "min":
		return fmt.Errorf("config: %s must have at least %s entry", field, fe.Param())
	case "oneof":
		return fmt.Errorf("config: %s must be one of: %s", field, fe.Param())
	default:
		return fmt.Errorf("config: %s failed %q constraint", field, fe.Tag())
	}
}

func templateKeys() []string {
	keys := make([]string, 0, len(recognizedTemplates))
	for k := range recognizedTemplates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
