package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/memewall/memewall/config"
	"github.com/memewall/memewall/util"
)

var flagCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%s %s\n", config.AppName, config.AppVersion)
		if !flagCheck {
			return nil
		}

		result, err := util.CheckForUpdates(cmd.Context(), nil)
		if err != nil {
			fmt.Printf("Update check failed: %v\n", err)
			return nil
		}
		if result.UpdateAvailable {
			fmt.Printf("Update available: %s (%s)\n", result.LatestVersion, result.ReleaseURL)
		} else {
			fmt.Println("You are running the latest version.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&flagCheck, "check", false, "check GitHub for a newer release")
}
