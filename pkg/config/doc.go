// Package config loads toastkit configuration structs from the environment
// or from YAML files.
//
// Load parses environment variables into a tagged struct, loading a .env file
// first if one is present. LoadFile reads a YAML file into the same kind of
// struct, letting deployments choose between env-driven and file-driven
// configuration without changing the consuming code.
//
// # Usage
//
//	type EngineConfig struct {
//	    Position string `env:"TOAST_POSITION" envDefault:"top-right" yaml:"position"`
//	    MaxNotifications int `env:"TOAST_MAX_NOTIFICATIONS" envDefault:"5" yaml:"max_notifications"`
//	}
//
//	var cfg EngineConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
package config
