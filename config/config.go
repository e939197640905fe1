/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for tavnit.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Config represents the tavnit project configuration.
type Config struct {
	// Snapshot is the path of the session snapshot file templates are
	// validated and resolved against.
	Snapshot string `yaml:"snapshot" json:"snapshot"`

	// Templates specifies template files to operate on (paths or globs).
	Templates []FileSpec `yaml:"templates" json:"templates"`

	// Strict makes validation fail templates that contain no tokens.
	Strict bool `yaml:"strict" json:"strict"`
}

// FileSpec represents a template file specification. It can be specified
// as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the template file path (supports globs).
	Path string `yaml:"path" json:"path"`

	// Snapshot overrides the global snapshot path for this template.
	Snapshot string `yaml:"snapshot" json:"snapshot"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// SnapshotForTemplate returns the snapshot path for a template file.
// File-level overrides take precedence over the global setting.
func (c *Config) SnapshotForTemplate(path string) string {
	for _, spec := range c.Templates {
		if spec.Path == path && spec.Snapshot != "" {
			return spec.Snapshot
		}
	}
	return c.Snapshot
}
