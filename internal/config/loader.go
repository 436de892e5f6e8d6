package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFishing loads and validates the fishing configuration.
// Search order: customPath -> ~/.arcade/configs/fishing.yaml -> ./configs/fishing.yaml -> embedded default.
// Values missing from a file keep their defaults. The returned source names
// where the configuration came from.
func LoadFishing(customPath string) (cfg FishingConfig, source string, err error) {
	cfg, source, err = readFishing(customPath)
	if err != nil {
		return cfg, source, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("invalid config %s: %w", source, err)
	}
	return cfg, source, nil
}

func readFishing(customPath string) (FishingConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFishingConfig(), customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseFishing(data)
		if err != nil {
			return cfg, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("fishing.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseFishing(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "fishing.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := ParseFishing(data); err == nil {
			return cfg, localPath, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseFishing(defaultFishingYAML)
	if err != nil {
		return DefaultFishingConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// ParseFishing decodes YAML on top of the default configuration.
func ParseFishing(data []byte) (FishingConfig, error) {
	cfg := DefaultFishingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultFishingConfig(), err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c FishingConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
