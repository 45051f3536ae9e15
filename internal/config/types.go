package config

import (
	"gopkg.in/yaml.v3"
)

// Document represents a full checkup configuration file.
type Document struct {
	Version     string  `yaml:"version" validate:"required,semver"`
	Name        string  `yaml:"name" validate:"required,min=1,max=100"`
	Description string  `yaml:"description,omitempty"`
	Checks      []Check `yaml:"checks" validate:"required,min=1,dive"`
}

// Check describes an individual read-only probe of the host system.
type Check struct {
	ID       string `yaml:"id" validate:"required,check_id"`
	Name     string `yaml:"name,omitempty"`
	Type     string `yaml:"type" validate:"required,oneof=file_exists command_exists env_set path_contains"`
	Severity string `yaml:"severity,omitempty" validate:"omitempty,oneof=warning error"`

	FileExists    *FileExistsCheck    `yaml:",inline,omitempty"`
	CommandExists *CommandExistsCheck `yaml:",inline,omitempty"`
	EnvSet        *EnvSetCheck        `yaml:",inline,omitempty"`
	PathContains  *PathContainsCheck  `yaml:",inline,omitempty"`
}

// FileExistsCheck verifies a file or directory is present.
type FileExistsCheck struct {
	Path string `yaml:"path"`
}

// CommandExistsCheck verifies an executable resolves via PATH.
type CommandExistsCheck struct {
	Command string `yaml:"command"`
}

// EnvSetCheck verifies an environment variable is set, and optionally
// non-empty.
type EnvSetCheck struct {
	Variable string `yaml:"variable"`
	NonEmpty bool   `yaml:"non_empty,omitempty"`
}

// PathContainsCheck verifies an entry appears in the PATH variable.
type PathContainsCheck struct {
	Entry string `yaml:"entry"`
}

// UnmarshalYAML customises check decoding to populate type-specific
// structures without conflicts.
func (c *Check) UnmarshalYAML(value *yaml.Node) error {
	type baseCheck struct {
		ID       string `yaml:"id"`
		Name     string `yaml:"name"`
		Type     string `yaml:"type"`
		Severity string `yaml:"severity"`
	}

	var base baseCheck
	if err := value.Decode(&base); err != nil {
		return err
	}

	c.ID = base.ID
	c.Name = base.Name
	c.Type = base.Type
	c.Severity = base.Severity

	c.FileExists = nil
	c.CommandExists = nil
	c.EnvSet = nil
	c.PathContains = nil

	switch base.Type {
	case "file_exists":
		var fe FileExistsCheck
		if err := value.Decode(&fe); err != nil {
			return err
		}
		c.FileExists = &fe
	case "command_exists":
		var ce CommandExistsCheck
		if err := value.Decode(&ce); err != nil {
			return err
		}
		c.CommandExists = &ce
	case "env_set":
		var es EnvSetCheck
		if err := value.Decode(&es); err != nil {
			return err
		}
		c.EnvSet = &es
	case "path_contains":
		var pc PathContainsCheck
		if err := value.Decode(&pc); err != nil {
			return err
		}
		c.PathContains = &pc
	}

	return nil
}

// EffectiveSeverity returns the severity a failing check reports with.
// Checks default to "error"; a check marked "warning" degrades the overall
// verdict without failing it.
func (c *Check) EffectiveSeverity() string {
	if c.Severity == "warning" {
		return "warning"
	}
	return "error"
}

// DisplayName prefers the human-readable name and falls back to the id.
func (c *Check) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}
