package config

// DeepMerge combines two generic maps. For each key in override: when both
// sides hold maps the merge recurses, otherwise the override value replaces
// the base value outright (including whole lists and strings). Keys of base
// absent from override are preserved. Neither input is mutated.
func DeepMerge(base, override map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		baseMap, baseIsMap := asStringMap(merged[k])
		overrideMap, overrideIsMap := asStringMap(v)
		if baseIsMap && overrideIsMap {
			merged[k] = DeepMerge(baseMap, overrideMap)
			continue
		}
		merged[k] = v
	}
	return merged
}

// asStringMap normalizes the two map shapes YAML decoders produce.
func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	}
	return nil, false
}
