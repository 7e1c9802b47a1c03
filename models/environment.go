// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Environment is the resolved property set of an application as served by a
// configuration server. The JSON shape matches the
// /{application}/{profile}[/{label}] endpoint of Spring Cloud Config.
type Environment struct {
	// Name is the application name the environment was resolved for.
	Name string `json:"name"`

	// Profiles lists the active profiles, most specific last.
	Profiles []string `json:"profiles"`

	// Label is the version label (branch, tag) or empty for the default.
	Label string `json:"label,omitempty"`

	// Version identifies the backing revision, when the server knows it.
	Version string `json:"version,omitempty"`

	// State is an opaque server-side state marker.
	State string `json:"state,omitempty"`

	// PropertySources are ordered from highest to lowest priority: the first
	// source that defines a key wins.
	PropertySources []PropertySource `json:"propertySources"`
}

// PropertySource is one named, flat map of property names to values.
type PropertySource struct {
	Name   string         `json:"name"`
	Source map[string]any `json:"source"`
}

// Property returns the value of key from the highest-priority source that
// defines it.
func (e Environment) Property(key string) (any, bool) {
	for _, ps := range e.PropertySources {
		if v, ok := ps.Source[key]; ok {
			return v, true
		}
	}
	return nil, false
}
