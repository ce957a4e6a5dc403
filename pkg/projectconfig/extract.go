package projectconfig

// ExtractedTypes holds the ordered identifier lists the override engine
// injects into placeholder schemas. A nil slice means the category is absent
// from the config; ResourceTypes alone is [] when `resources` is declared but
// empty.
type ExtractedTypes struct {
	ResourceTypes    []string
	EntitlementTypes []string
	PlanTypes        []string
	LimitTypes       []string
	UsageLimitTypes  []string
}

// ExtractTypes enumerates the config's keys in declaration order.
// LimitTypes and UsageLimitTypes collect each plan's resource_limits and
// usage_based_limits keys respectively, deduplicated across plans in
// first-seen order.
func ExtractTypes(cfg *ProjectConfig) ExtractedTypes {
	var out ExtractedTypes
	if cfg == nil {
		return out
	}
	if cfg.Resources != nil {
		out.ResourceTypes = append([]string{}, cfg.Resources.Keys...)
	}
	if cfg.Entitlements != nil && len(cfg.Entitlements.Keys) > 0 {
		out.EntitlementTypes = append([]string{}, cfg.Entitlements.Keys...)
	}
	if len(cfg.Plans) > 0 {
		out.PlanTypes = make([]string, 0, len(cfg.Plans))
		for _, p := range cfg.Plans {
			out.PlanTypes = append(out.PlanTypes, p.Name)
		}
	}
	out.LimitTypes = dedupAcrossPlans(cfg.Plans, func(p Plan) []string { return p.ResourceLimits })
	out.UsageLimitTypes = dedupAcrossPlans(cfg.Plans, func(p Plan) []string { return p.UsageBasedLimits })
	return out
}

func dedupAcrossPlans(plans []Plan, keys func(Plan) []string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, p := range plans {
		for _, k := range keys(p) {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}
