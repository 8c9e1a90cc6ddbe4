package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML scene description
func Parse(data []byte) (Description, error) {
	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Description{}, fmt.Errorf("scene: failed to parse description: %w", err)
	}
	return d, nil
}

// LoadDescription reads a YAML scene description from path
func LoadDescription(path string) (Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Description{}, fmt.Errorf("scene: failed to read %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return Description{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Load reads and builds a YAML scene file
func Load(path string) (*Scene, error) {
	d, err := LoadDescription(path)
	if err != nil {
		return nil, err
	}
	s, err := d.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Marshal encodes a scene description as YAML
func Marshal(d Description) ([]byte, error) {
	return yaml.Marshal(d)
}

// Save writes a scene description to path as YAML
func Save(path string, d Description) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
