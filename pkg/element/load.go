package element

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// registryFile is the on-disk registry format:
//
//	elements:
//	  - name: loginButton
//	    id: loginButtonID
//	    kind: button
type registryFile struct {
	Elements []Entry `yaml:"elements"`
}

// LoadRegistry reads a registry from a YAML file.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided registry file
	if err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}
	return ParseRegistry(data)
}

// ParseRegistry decodes YAML registry data and validates it.
func ParseRegistry(data []byte) (*Registry, error) {
	var f registryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}
	return New(f.Elements)
}

// Marshal encodes the registry in the LoadRegistry format.
func (r *Registry) Marshal() ([]byte, error) {
	return yaml.Marshal(registryFile{Elements: r.Entries()})
}
