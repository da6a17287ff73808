package dsv

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ReadConfigFile decodes a YAML (.yaml, .yml) or TOML (.toml) file onto
// DefaultConfig. Unknown keys are ignored. The result is not validated so
// callers can layer further settings on top; use LoadConfig otherwise.
func ReadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if len(bytes.TrimSpace(data)) == 0 {
			return cfg, nil
		}
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return cfg, fmt.Errorf("dsv: config %s: %w", path, err)
		}
		if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
			return cfg, fmt.Errorf("dsv: config %s: top level must be a mapping", path)
		}
		if err := doc.Content[0].Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("dsv: config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("dsv: config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("dsv: config %s: unsupported format %q", path, ext)
	}
	return cfg, nil
}

// LoadConfig reads a config file like ReadConfigFile and validates it.
func LoadConfig(path string) (Config, error) {
	cfg, err := ReadConfigFile(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
