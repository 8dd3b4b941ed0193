package types

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads the YAML file at path. ${VAR} references are expanded from
// the environment first, so secrets such as API keys can stay out of the file.
func LoadConfig(path string) (*Config, error) {
	configFileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(configFileBytes)
}

var envRef = regexp.MustCompile(`\$\{(\w+)\}`)

// expandEnv replaces ${VAR} references only. A bare $ is kept as written.
func expandEnv(data []byte) []byte {
	return envRef.ReplaceAllFunc(data, func(ref []byte) []byte {
		return []byte(os.Getenv(string(envRef.FindSubmatch(ref)[1])))
	})
}

func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	err := yaml.Unmarshal(expandEnv(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}
