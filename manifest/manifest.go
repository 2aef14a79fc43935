// Package manifest loads declarative YAML descriptions of a binding's
// documented entries and compiles them into extension entries. A manifest
// lists the variables, functions, and classes of one bound package; the
// renderer and the linter both start from it.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes the documented entries of one bound package.
type Manifest struct {
	Package   string     `yaml:"package"`
	Variables []Variable `yaml:"variables"`
	Functions []Function `yaml:"functions"`
	Classes   []Class    `yaml:"classes"`
}

// Variable describes a constant, module attribute, or class attribute.
type Variable struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Summary string   `yaml:"summary"`
	Details []string `yaml:"details"`
}

// Prototype describes one way to call a function. Returns distinguishes
// three cases: absent means the function returns nothing ("None"), an
// empty string marks a constructor, and anything else names the returned
// value.
type Prototype struct {
	Params  string  `yaml:"params"`
	Returns *string `yaml:"returns"`
}

// Argument documents a single parameter or return value.
type Argument struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

// Function describes a free function, a method, or a constructor.
type Function struct {
	Name       string      `yaml:"name"`
	Summary    string      `yaml:"summary"`
	Details    []string    `yaml:"details"`
	Member     bool        `yaml:"member"`
	Prototypes []Prototype `yaml:"prototypes"`
	Parameters []Argument  `yaml:"parameters"`
	Returns    []Argument  `yaml:"returns"`
}

// Class describes a class: its constructor and the methods and attributes
// worth highlighting. The constructor name may be left empty; it is
// renamed after the class anyway.
type Class struct {
	Name        string     `yaml:"name"`
	Summary     string     `yaml:"summary"`
	Details     []string   `yaml:"details"`
	Constructor *Function  `yaml:"constructor"`
	Methods     []Function `yaml:"methods"`
	Attributes  []Variable `yaml:"attributes"`
}

// Load reads and parses the manifest file at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a YAML manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if m.Package == "" {
		return errors.New("package is required")
	}
	for i, v := range m.Variables {
		if err := v.validate(); err != nil {
			return fmt.Errorf("variable %d: %w", i, err)
		}
	}
	for i, f := range m.Functions {
		if err := f.validate(); err != nil {
			return fmt.Errorf("function %d: %w", i, err)
		}
	}
	for i, c := range m.Classes {
		if err := c.validate(); err != nil {
			return fmt.Errorf("class %d: %w", i, err)
		}
	}
	return nil
}

func (v *Variable) validate() error {
	if v.Name == "" {
		return errors.New("name is required")
	}
	if v.Type == "" {
		return fmt.Errorf("%s: type is required", v.Name)
	}
	if v.Summary == "" {
		return fmt.Errorf("%s: summary is required", v.Name)
	}
	return nil
}

func (f *Function) validate() error {
	if f.Name == "" {
		return errors.New("name is required")
	}
	if f.Summary == "" {
		return fmt.Errorf("%s: summary is required", f.Name)
	}
	return nil
}

func (c *Class) validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Summary == "" {
		return fmt.Errorf("%s: summary is required", c.Name)
	}
	if c.Constructor != nil && c.Constructor.Summary == "" {
		return fmt.Errorf("%s: constructor: summary is required", c.Name)
	}
	for i, m := range c.Methods {
		if err := m.validate(); err != nil {
			return fmt.Errorf("%s: method %d: %w", c.Name, i, err)
		}
	}
	for i, a := range c.Attributes {
		if err := a.validate(); err != nil {
			return fmt.Errorf("%s: attribute %d: %w", c.Name, i, err)
		}
	}
	return nil
}
