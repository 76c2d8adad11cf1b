package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/config"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Single-player blackjack with a built-in advisor",
	Long: `Blackjack is a terminal blackjack game against a dealer who stands on 17.
An advisor looks at the dealer's upcard and suggests whether to hit or stand.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "Path to the config file (default $XDG_CONFIG_HOME/blackjack/config.toml)")
	RootCmd.PersistentFlags().Bool("debug", false, "Log game internals to stderr")

	RootCmd.AddCommand(validateCmd)
}

// loadConfig loads the file named by --config, or the default config file
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.LoadConfig()
	}
	return config.LoadFile(path)
}

// configPath returns the file named by --config, or the default path
func configPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.GetConfigFilePath()
}

// newLogger returns a pterm-backed debug logger when --debug is set
func newLogger(cmd *cobra.Command) *slog.Logger {
	if debug, _ := cmd.Flags().GetBool("debug"); !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger := pterm.DefaultLogger.WithLevel(pterm.LogLevelDebug).WithWriter(os.Stderr)
	return slog.New(pterm.NewSlogHandler(logger))
}
