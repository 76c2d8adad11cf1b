package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/console"
	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/session"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play hands of blackjack until you stop",
	Long: `Play deals hands of blackjack from a single shuffled deck. Enter h to hit
or s to stand; after each hand answer y to play another.

Examples:
  blackjack play
  blackjack play --seed 42 --show-deck
  blackjack play --no-advice`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		if cmd.Flags().Changed("seed") {
			cfg.Seed, _ = cmd.Flags().GetUint64("seed")
		}
		if cmd.Flags().Changed("show-deck") {
			cfg.ShowDeck, _ = cmd.Flags().GetBool("show-deck")
		}
		if noAdvice, _ := cmd.Flags().GetBool("no-advice"); noAdvice {
			cfg.Advisor = false
		}

		style, err := console.NewStyle(cfg.Display, cfg.Theme)
		if err != nil {
			return fmt.Errorf("error loading theme: %w", err)
		}

		out := cmd.OutOrStdout()
		renderer := console.NewRenderer(out, style, cfg.Advisor, console.TerminalWidth(80))
		renderer.Banner()

		d := deck.New(deck.NewSource(cfg.Seed))
		if cfg.ShowDeck {
			renderer.Deck("", d.Cards())
			d.Shuffle()
			renderer.Deck("\nShuffled", d.Cards())
		} else {
			d.Shuffle()
		}

		logger := newLogger(cmd)
		logger.Debug("session starting", "seed", cfg.Seed)

		prompter := console.NewPrompter(cmd.InOrStdin(), out)
		if _, err := session.New(d, renderer.Handle, logger).Run(prompter); err != nil {
			return fmt.Errorf("session ended: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Uint64("seed", 0, "Seed for shuffling; 0 picks a random seed")
	playCmd.Flags().Bool("show-deck", false, "Print the deck before and after the first shuffle")
	playCmd.Flags().Bool("no-advice", false, "Hide advisor observations and recommendations")
}
