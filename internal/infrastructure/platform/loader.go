package platform

import (
	"os"

	"gopkg.in/yaml.v3"

	"mnada/internal/shared/logger"
)

// Registry resolves publication profiles by platform name. Built-in
// defaults cover facebook and instagram; a YAML file can override or add
// profiles per deployment.
type Registry struct {
	profiles map[string]Profile
	path     string
	logger   logger.Interface
}

// NewRegistry creates a registry seeded with the built-in profiles.
func NewRegistry(path string, logger logger.Interface) *Registry {
	return &Registry{
		profiles: defaultProfiles(),
		path:     path,
		logger:   logger,
	}
}

// Load merges profile overrides from the configured YAML file. A missing
// file is not an error; the defaults stay in effect.
func (r *Registry) Load() error {
	if r.path == "" {
		return nil
	}
	content, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Debugw("no platform profile file, using built-in profiles", "path", r.path)
			return nil
		}
		return err
	}

	var overrides map[string]Profile
	if err := yaml.Unmarshal(content, &overrides); err != nil {
		return err
	}

	for name, override := range overrides {
		base := r.profiles[name]
		if len(override.Mentions) > 0 {
			base.Mentions = override.Mentions
		}
		if len(override.Hashtags) > 0 {
			base.Hashtags = override.Hashtags
		}
		if len(override.ResultsHashtags) > 0 {
			base.ResultsHashtags = override.ResultsHashtags
		}
		r.profiles[name] = base
		r.logger.Infow("loaded platform profile override",
			"platform", name,
			"mentions", len(base.Mentions),
			"hashtags", len(base.Hashtags),
		)
	}

	return nil
}

// Profile returns the profile for a platform name; unknown platforms get
// an empty profile rather than an error.
func (r *Registry) Profile(name string) Profile {
	return r.profiles[name]
}

// Platforms returns the registered platform names.
func (r *Registry) Platforms() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	return names
}
