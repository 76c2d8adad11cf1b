package validator

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/blackjack/internal/config"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ConfigPath string
	Results    ValidationResults

	config *config.Config
	meta   toml.MetaData
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.decodeConfig(); err != nil {
		return v.Results, err
	}

	v.validateUndecodedKeys()
	v.validateDisplay()
	v.validateTheme()
	v.validateSeed()

	return v.Results, nil
}

func (v *Validator) decodeConfig() error {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	v.config = config.Default()
	meta, err := toml.DecodeFile(v.ConfigPath, v.config)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", v.ConfigPath, err)
	}
	v.meta = meta
	return nil
}

// validateUndecodedKeys warns about keys the game does not read
func (v *Validator) validateUndecodedKeys() {
	var keys []string
	for _, key := range v.meta.Undecoded() {
		keys = append(keys, key.String())
	}
	sort.Strings(keys)

	for _, key := range keys {
		v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("unknown key: %s", key))
	}
}

// validateDisplay checks the unicode and color modes
func (v *Validator) validateDisplay() {
	modes := map[string]string{
		"display.unicode": v.config.Display.Unicode,
		"display.color":   v.config.Display.Color,
	}
	names := []string{"display.unicode", "display.color"}

	for _, name := range names {
		switch modes[name] {
		case config.ModeAuto, config.ModeAlways, config.ModeNever:
		default:
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("%s must be one of auto, always, never (got %q)", name, modes[name]))
		}
	}

	if v.config.Display.TrueColor && v.config.Display.Color == config.ModeNever {
		v.Results.Warnings = append(v.Results.Warnings,
			"display.truecolor has no effect when display.color is never")
	}
}

// validateTheme checks that every theme colour is a hex triplet
func (v *Validator) validateTheme() {
	theme := v.config.Theme
	colors := []struct {
		key   string
		value string
	}{
		{"theme.red_suit", theme.RedSuit},
		{"theme.hidden", theme.Hidden},
		{"theme.hit", theme.Hit},
		{"theme.stand", theme.Stand},
		{"theme.score", theme.Score},
	}

	for _, c := range colors {
		if _, err := colorful.Hex(c.value); err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("%s is not a hex colour: %q", c.key, c.value))
		}
	}

	if !v.config.Display.TrueColor && v.meta.IsDefined("theme") {
		v.Results.Warnings = append(v.Results.Warnings,
			"theme is only used when display.truecolor is enabled")
	}
}

func (v *Validator) validateSeed() {
	if v.config.Seed != 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			"seed is fixed; every session deals the same cards")
	}
}
