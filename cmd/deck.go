package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/console"
	"github.com/arcanaland/blackjack/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the 52-card deck",
	Long:  `Commands for inspecting the deck the game deals from.`,
}

// deckPrintCmd represents the deck print command
var deckPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the ordered deck and one shuffle of it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed, _ = cmd.Flags().GetUint64("seed")
		}

		style, err := console.NewStyle(cfg.Display, cfg.Theme)
		if err != nil {
			return fmt.Errorf("error loading theme: %w", err)
		}
		renderer := console.NewRenderer(cmd.OutOrStdout(), style, false, console.TerminalWidth(80))

		d := deck.New(deck.NewSource(cfg.Seed))
		renderer.Deck("", d.Cards())

		if ordered, _ := cmd.Flags().GetBool("ordered"); ordered {
			return nil
		}

		d.Shuffle()
		renderer.Deck("\nShuffled", d.Cards())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckPrintCmd)

	deckPrintCmd.Flags().Uint64("seed", 0, "Seed for shuffling; 0 picks a random seed")
	deckPrintCmd.Flags().Bool("ordered", false, "Only print the ordered deck")
}
