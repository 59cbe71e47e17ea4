package keybinds

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the user's keybinding overrides, one section per
// context mapping key -> action name.
type Config struct {
	Global map[string]string `yaml:"global,omitempty"`
	Normal map[string]string `yaml:"normal,omitempty"`
	Input  map[string]string `yaml:"input,omitempty"`
	Help   map[string]string `yaml:"help,omitempty"`
	Error  map[string]string `yaml:"error,omitempty"`
}

// LoadConfig loads keybinding overrides from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid keys.yml format: %w", err)
	}

	return &config, nil
}

// ApplyConfig applies user overrides to a registry. User bindings
// override default bindings key by key.
func ApplyConfig(registry *Registry, config *Config) {
	contextMappings := map[Context]map[string]string{
		ContextGlobal: config.Global,
		ContextNormal: config.Normal,
		ContextInput:  config.Input,
		ContextHelp:   config.Help,
		ContextError:  config.Error,
	}

	for context, bindings := range contextMappings {
		for key, actionStr := range bindings {
			registry.Register(context, key, Action(actionStr))
		}
	}
}

// LoadOrDefault loads user overrides if the file exists, otherwise
// returns the default registry. The result is validated either way so
// a broken keys.yml is caught at startup, not mid-session.
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", configPath, err)
		}
		ApplyConfig(registry, config)
	}

	if result := NewValidator().ValidateRegistry(registry); result.HasErrors() {
		return nil, fmt.Errorf("invalid keybindings:\n%s", result)
	}

	return registry, nil
}
