package config

import "github.com/spf13/pflag"

// ServeConfig holds configuration for the serve command.
type ServeConfig struct {
	Addr     string
	LogLevel string
}

// LoadServe merges config file, environment variables, and flags into ServeConfig.
func LoadServe(cfgFile string, flags *pflag.FlagSet) (ServeConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]any{
		"addr":      ":8080",
		"log-level": "info",
	})
	if err != nil {
		return ServeConfig{}, err
	}

	cfg := ServeConfig{
		Addr:     v.GetString("addr"),
		LogLevel: v.GetString("log-level"),
	}

	return cfg, nil
}
