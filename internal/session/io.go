package session

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Write writes a session to a YAML file
func Write(s *DemoSession, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Read reads a session from a YAML or JSON file (JSON is a YAML subset)
func Read(path string) (*DemoSession, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s DemoSession
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session file %s: %w", path, err)
	}

	return &s, nil
}
