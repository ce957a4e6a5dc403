// Package projectconfig loads the customer's project configuration and
// extracts the ordered identifier lists that feed the placeholder schema
// overrides. The config is a declarative value {resources?, entitlements?,
// plans?, features?} evaluated from a JSON, YAML, or CUE source; CUE sources
// may place the value behind a zero-argument factory field.
package projectconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// ProjectConfig is the structural customer configuration. Key order follows
// declaration order in the source file; extraction depends on it.
type ProjectConfig struct {
	Resources    *Section
	Entitlements *Section
	Features     *Section
	Plans        []Plan
	PlansPresent bool
}

// Section holds the ordered keys of one top-level config mapping. A nil
// *Section means the section is absent from the config.
type Section struct {
	Keys []string
}

// Plan is one named plan with the ordered keys of its limit maps.
type Plan struct {
	Name             string
	ResourceLimits   []string
	UsageBasedLimits []string
}

// Load evaluates the project configuration at path. The path is resolved to
// an absolute path before evaluation. Syntax errors are fatal and carry the
// file path; unsupported formats fail fast.
func Load(path string) (*ProjectConfig, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolving project config path %q: %w", path, err)
		}
		path = abs
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json", ".yaml", ".yml", ".cue":
	case ".js", ".mjs", ".ts":
		// Deliberate shim: evaluating JavaScript/TypeScript config modules
		// would require tsx or ts-node, which this generator does not embed.
		return nil, fmt.Errorf("loading project config %s: %s config files require tsx or ts-node; export the config as JSON, YAML, or CUE instead", path, ext)
	default:
		return nil, fmt.Errorf("unsupported config file format %q (supported: .json, .yaml, .yml, .cue)", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project config: %w", err)
	}

	if ext == ".cue" {
		return parseCUE(path, data)
	}
	return parseYAML(path, data)
}

// parseYAML handles .json, .yaml, and .yml sources. JSON is parsed by the
// YAML decoder so both formats share the order-preserving node walk.
func parseYAML(path string, data []byte) (*ProjectConfig, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing project config %s: %w", path, err)
	}
	doc := &root
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return &ProjectConfig{}, nil
		}
		doc = doc.Content[0]
	}
	if doc.Kind == 0 {
		return &ProjectConfig{}, nil
	}
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing project config %s: top-level value must be a mapping", path)
	}

	cfg := &ProjectConfig{}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i].Value
		val := doc.Content[i+1]
		switch key {
		case "resources":
			cfg.Resources = &Section{Keys: mappingKeys(val)}
		case "entitlements":
			cfg.Entitlements = &Section{Keys: mappingKeys(val)}
		case "features":
			cfg.Features = &Section{Keys: mappingKeys(val)}
		case "plans":
			cfg.PlansPresent = true
			cfg.Plans = yamlPlans(val)
		}
	}
	return cfg, nil
}

func mappingKeys(n *yaml.Node) []string {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		keys = append(keys, n.Content[i].Value)
	}
	return keys
}

func yamlPlans(n *yaml.Node) []Plan {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	plans := make([]Plan, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		name := n.Content[i].Value
		body := n.Content[i+1]
		plan := Plan{Name: name}
		if body.Kind == yaml.MappingNode {
			for j := 0; j+1 < len(body.Content); j += 2 {
				switch body.Content[j].Value {
				case "resource_limits":
					plan.ResourceLimits = mappingKeys(body.Content[j+1])
				case "usage_based_limits":
					plan.UsageBasedLimits = mappingKeys(body.Content[j+1])
				}
			}
		}
		plans = append(plans, plan)
	}
	return plans
}

// parseCUE evaluates a CUE source. When the evaluated value carries a
// `config` field, that field is taken as the configuration (the factory
// seam: the field's value is produced by evaluation, not spelled literally).
func parseCUE(path string, data []byte) (*ProjectConfig, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("evaluating project config %s: %w", path, err)
	}
	if f := v.LookupPath(cue.ParsePath("config")); f.Exists() {
		v = f
	}

	cfg := &ProjectConfig{}
	if sec, ok, err := cueSection(v, "resources"); err != nil {
		return nil, fmt.Errorf("evaluating project config %s: %w", path, err)
	} else if ok {
		cfg.Resources = sec
	}
	if sec, ok, err := cueSection(v, "entitlements"); err != nil {
		return nil, fmt.Errorf("evaluating project config %s: %w", path, err)
	} else if ok {
		cfg.Entitlements = sec
	}
	if sec, ok, err := cueSection(v, "features"); err != nil {
		return nil, fmt.Errorf("evaluating project config %s: %w", path, err)
	} else if ok {
		cfg.Features = sec
	}

	plansVal := v.LookupPath(cue.ParsePath("plans"))
	if plansVal.Exists() {
		cfg.PlansPresent = true
		iter, err := plansVal.Fields()
		if err != nil {
			return nil, fmt.Errorf("evaluating project config %s: %w", path, err)
		}
		for iter.Next() {
			plan := Plan{Name: selectorName(iter.Selector())}
			if sec, ok, err := cueSection(iter.Value(), "resource_limits"); err != nil {
				return nil, fmt.Errorf("evaluating project config %s: %w", path, err)
			} else if ok {
				plan.ResourceLimits = sec.Keys
			}
			if sec, ok, err := cueSection(iter.Value(), "usage_based_limits"); err != nil {
				return nil, fmt.Errorf("evaluating project config %s: %w", path, err)
			} else if ok {
				plan.UsageBasedLimits = sec.Keys
			}
			cfg.Plans = append(cfg.Plans, plan)
		}
	}
	return cfg, nil
}

func cueSection(v cue.Value, name string) (*Section, bool, error) {
	field := v.LookupPath(cue.ParsePath(name))
	if !field.Exists() {
		return nil, false, nil
	}
	iter, err := field.Fields()
	if err != nil {
		return nil, false, err
	}
	sec := &Section{Keys: []string{}}
	for iter.Next() {
		sec.Keys = append(sec.Keys, selectorName(iter.Selector()))
	}
	return sec, true, nil
}

func selectorName(sel cue.Selector) string {
	if sel.LabelType() == cue.StringLabel {
		return sel.Unquoted()
	}
	return sel.String()
}
