package config

import "github.com/spf13/pflag"

// SeedConfig holds configuration for the seed command.
type SeedConfig struct {
	RPCURL        string
	Pair          string
	Block         uint64
	BaseDecimals  int
	QuoteDecimals int
	Invert        bool
	LogLevel      string
}

// LoadSeed merges config file, environment variables, and flags into SeedConfig.
func LoadSeed(cfgFile string, flags *pflag.FlagSet) (SeedConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]any{
		"base-decimals":  18,
		"quote-decimals": 18,
		"log-level":      "info",
	})
	if err != nil {
		return SeedConfig{}, err
	}

	cfg := SeedConfig{
		RPCURL:        v.GetString("rpc"),
		Pair:          v.GetString("pair"),
		Block:         v.GetUint64("block"),
		BaseDecimals:  v.GetInt("base-decimals"),
		QuoteDecimals: v.GetInt("quote-decimals"),
		Invert:        v.GetBool("invert"),
		LogLevel:      v.GetString("log-level"),
	}

	return cfg, nil
}
