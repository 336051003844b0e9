package kb

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type manualsFile struct {
	Manuals []Manual `yaml:"manuals"`
}

// LoadFile reads a knowledge-base YAML file and indexes its manuals.
func LoadFile(path string) (*KnowledgeBase, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge base %s: %w", path, err)
	}
	var file manualsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base %s: %w", path, err)
	}
	if len(file.Manuals) == 0 {
		return nil, fmt.Errorf("knowledge base %s contains no manuals", path)
	}
	return New(file.Manuals), nil
}
