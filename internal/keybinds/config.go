package keybinds

import "fmt"

// Config is the user's keybinding overrides, keyed by context then key.
// A key mapped to "none" removes the default binding.
type Config struct {
	Global   map[string]string `yaml:"global,omitempty"`
	Navigate map[string]string `yaml:"navigate,omitempty"`
	Edit     map[string]string `yaml:"edit,omitempty"`
	History  map[string]string `yaml:"history,omitempty"`
	Response map[string]string `yaml:"response,omitempty"`
}

const unbindAction = "none"

func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal:   c.Global,
		ContextNavigate: c.Navigate,
		ContextEdit:     c.Edit,
		ContextHistory:  c.History,
		ContextResponse: c.Response,
	}
}

// ApplyConfig applies user configuration to a registry.
// User bindings override default bindings.
func ApplyConfig(registry *Registry, config *Config) error {
	if config == nil {
		return nil
	}

	for context, bindings := range config.sections() {
		for key, actionStr := range bindings {
			if err := ValidateKey(key); err != nil {
				return fmt.Errorf("context %s: %w", context, err)
			}
			if actionStr == unbindAction {
				registry.Unregister(context, key)
				continue
			}
			if err := ValidateAction(actionStr); err != nil {
				return fmt.Errorf("context %s, key %q: %w", context, key, err)
			}
			registry.Register(context, key, Action(actionStr))
		}
	}

	return nil
}

// Build returns the default registry with config applied on top
func Build(config *Config) (*Registry, error) {
	registry := NewDefaultRegistry()
	if err := ApplyConfig(registry, config); err != nil {
		return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
	}
	return registry, nil
}
