package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	serverURL  string
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "CLI client for the watchlist server",
	Long: `watchlist - CLI client for your movie and series list

Lists, filters and edits entries on a running watchlistd, resolves
trailers, and imports or exports the list file.

Run 'watchlistd' to start the server daemon.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Server URL")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("watchlist {{.Version}}\n")
}
