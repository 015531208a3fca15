// Package cmd wires the command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/memewall/memewall/config"
	"github.com/memewall/memewall/pkg/wallpaper"
	"github.com/memewall/memewall/util/log"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "memewall",
	Short: "Random meme wallpaper setter",
	Long: "memewall pulls a random meme from Reddit through the Meme API, " +
		"captions it with its title and sets it as the desktop wallpaper, " +
		"remembering past memes so you never see the same one twice.",
	RunE: runRefresh,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to settings file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(historyCmd)
}

// runRefresh performs one wallpaper update. The engine has already logged
// the reason for any failure; the user only sees one of two lines.
func runRefresh(cmd *cobra.Command, args []string) error {
	if locked, err := acquireLock(); err != nil {
		// The lock is protective, not essential. Refresh anyway.
		log.Printf("Could not acquire the run lock: %v", err)
	} else if !locked {
		log.Println("Another refresh is already running")
		fmt.Println("Failed to update wallpaper.")
		return nil
	}
	defer releaseLock()

	cfg := loadSettings()

	engine := wallpaper.NewEngine(cfg)
	if path, ok := engine.Refresh(cmd.Context()); ok {
		fmt.Printf("Wallpaper updated! (%s)\n", path)
	} else {
		fmt.Println("Failed to update wallpaper.")
	}
	return nil
}

// loadSettings resolves the settings path and degrades to defaults when the
// file is broken, so a bad edit never blocks the refresh.
func loadSettings() *config.Settings {
	path := flagConfig
	if path == "" {
		path = config.SettingsFilename()
	}

	cfg, err := config.LoadSettings(path)
	if err != nil {
		log.Printf("Using default settings: %v", err)
	}
	return cfg
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
