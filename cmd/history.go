package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/memewall/memewall/config"
	"github.com/memewall/memewall/pkg/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the memes already used as wallpapers",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := history.NewStore(config.HistoryFilename(), loadSettings().MaxHistory)
		if err := store.Load(); err != nil {
			return fmt.Errorf("loading history: %w", err)
		}

		if store.Len() == 0 {
			fmt.Println("No memes shown yet.")
			return nil
		}
		for _, url := range store.Entries() {
			fmt.Println(url)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every meme shown so far",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := history.NewStore(config.HistoryFilename(), loadSettings().MaxHistory)
		if err := store.Clear(); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		fmt.Println("Meme history cleared.")
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
}
