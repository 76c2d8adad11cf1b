package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Display modes for unicode and color
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// Config represents the application configuration
type Config struct {
	Seed     uint64  `toml:"seed" env:"BLACKJACK_SEED"`
	ShowDeck bool    `toml:"show_deck" env:"BLACKJACK_SHOW_DECK"`
	Advisor  bool    `toml:"advisor" env:"BLACKJACK_ADVISOR"`
	Display  Display `toml:"display" envPrefix:"BLACKJACK_"`
	Theme    Theme   `toml:"theme"`
}

// Display controls terminal capabilities
type Display struct {
	Unicode   string `toml:"unicode" env:"UNICODE"`
	Color     string `toml:"color" env:"COLOR"`
	TrueColor bool   `toml:"truecolor" env:"TRUECOLOR"`
}

// Theme holds hex colours used when truecolor output is enabled
type Theme struct {
	RedSuit string `toml:"red_suit"`
	Hidden  string `toml:"hidden"`
	Hit     string `toml:"hit"`
	Stand   string `toml:"stand"`
	Score   string `toml:"score"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Advisor: true,
		Display: Display{
			Unicode: ModeAuto,
			Color:   ModeAuto,
		},
		Theme: Theme{
			RedSuit: "#d7263d",
			Hidden:  "#1b998b",
			Hit:     "#f4d35e",
			Stand:   "#6bbf59",
			Score:   "#ffffff",
		},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "blackjack", "config.toml")
}

// LoadConfig loads the config file at the default path, creating it if needed
func LoadConfig() (*Config, error) {
	return LoadFile(GetConfigFilePath())
}

// LoadFile loads a config file, creating it with defaults if it doesn't
// exist, then applies environment overrides
func LoadFile(configPath string) (*Config, error) {
	var config *Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config, err = createDefaultConfig(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		config = Default()
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	config := Default()

	if err := Save(configPath, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save writes the config to path as TOML
func Save(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
