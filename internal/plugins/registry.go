// Package plugins decides which optional verticals are mounted. The enabled
// set is read once from configuration at startup; lookups after that are
// pure reads on an immutable value.
package plugins

import (
	"fmt"
	"sort"
	"strings"
)

type Plugin string

const (
	PluginMedia Plugin = "media"
	PluginPlans Plugin = "plans"
)

var knownPlugins = map[Plugin]struct{}{
	PluginMedia: {},
	PluginPlans: {},
}

// NewRegistry builds a registry from the configured plugin names. Unknown
// names fail fast so a typo in the config never silently disables a feature.
func NewRegistry(enabled []string) (Registry, error) {
	set := make(map[Plugin]struct{}, len(enabled))
	for _, name := range enabled {
		plugin := Plugin(strings.ToLower(strings.TrimSpace(name)))
		if _, ok := knownPlugins[plugin]; !ok {
			return Registry{}, fmt.Errorf("unknown plugin %q", name)
		}
		set[plugin] = struct{}{}
	}

	return Registry{enabled: set}, nil
}

type Registry struct {
	enabled map[Plugin]struct{}
}

func (r Registry) IsEnabled(plugin Plugin) bool {
	_, ok := r.enabled[plugin]
	return ok
}

// Enabled returns the active plugins in stable order, for startup logging.
func (r Registry) Enabled() []Plugin {
	result := make([]Plugin, 0, len(r.enabled))
	for plugin := range r.enabled {
		result = append(result, plugin)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
