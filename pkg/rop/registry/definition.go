package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is a named sequence of steps.
type Definition struct {
	Name  string    `yaml:"name"`
	Steps []StepDef `yaml:"steps"`
}

// StepDef selects a registered kind and the parameters passed to its factory.
type StepDef struct {
	Name   string         `yaml:"name,omitempty"`
	Kind   string         `yaml:"kind"`
	Params map[string]any `yaml:"params,omitempty"`
}

// Label is the step name, falling back to its kind.
func (d StepDef) Label() string {
	if d.Name != "" {
		return d.Name
	}
	return d.Kind
}

// Parse decodes a definition from YAML bytes.
func Parse(data []byte) (*Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing definition: %w", err)
	}
	if d.Name == "" {
		return nil, fmt.Errorf("definition must have a name")
	}
	return &d, nil
}

// ParseFile reads and parses a definition YAML file.
func ParseFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definition file %s: %w", path, err)
	}
	return Parse(data)
}
