package config

import (
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultRegistryURL is where token metadata is fetched from when neither a
// flag, the environment nor the config file overrides it.
const DefaultRegistryURL = "https://api.routelens.io/v1/tokens"

// Command flags are bound to these before Load runs, so a value already set
// here wins over the environment and the config file.
var (
	Network        string
	Debug          bool
	RegistryURL    string
	RegistryAPIKey string
	JSONOutput     bool
)

// Load fills any globals the flags left empty, in order of precedence:
// ROUTELENS_* environment variables, then .routelens.yaml from the home or
// working directory, then built-in defaults. It also sets the global log
// level from Debug.
func Load() {
	viper.SetConfigName(".routelens")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath(".")

	viper.SetDefault("network", "mainnet")
	viper.SetDefault("registry_url", DefaultRegistryURL)

	viper.SetEnvPrefix("ROUTELENS")
	viper.AutomaticEnv()

	// The config file is optional.
	_ = viper.ReadInConfig()

	if Network == "" {
		Network = viper.GetString("network")
	}
	if RegistryURL == "" {
		RegistryURL = viper.GetString("registry_url")
	}
	if RegistryAPIKey == "" {
		RegistryAPIKey = viper.GetString("api_key")
	}
	if !Debug {
		Debug = viper.GetBool("debug")
	}

	if Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
