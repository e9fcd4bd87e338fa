package main

import (
	"fmt"

	"github.com/at-ishikawa/smorse/internal/config"
	"github.com/spf13/pflag"
)

// loadConfig loads the configuration with the changed flags in flagKeys applied,
// then validates only the given fields.
func loadConfig(flags *pflag.FlagSet, flagKeys map[string]string, fields []string) (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	for flagName, key := range flagKeys {
		if err := loader.BindFlag(key, flags.Lookup(flagName)); err != nil {
			return nil, fmt.Errorf("failed to bind --%s: %w", flagName, err)
		}
	}

	cfg, err := loader.LoadFields(fields...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
