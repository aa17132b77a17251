// pong is Blueprint Pong: a single-player Pong against the computer, played
// in the terminal or over SSH.
//
// Usage:
//
//	pong play               - Play in this terminal
//	pong serve              - Start SSH server for remote play
//	pong history            - Show recent matches and totals
//	pong settings           - Show or change preferences
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--db <path>       - Set database path (default: ~/.pong/pong.db)
//	--config <path>   - Use a custom game config YAML
//	--profile <name>  - Preferences and history profile (default: "default")
//	--debug           - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blueprint-pong/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagConfig  string
	flagProfile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Blueprint Pong - Pong against the computer in your terminal",
	Long: `Blueprint Pong is a terminal take on the classic: you hold the right
paddle, the computer holds the left, first to the winning score takes it.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  history   - Show recent matches
  settings  - Show or change preferences

Examples:
  pong play
  pong play --profile alice
  pong serve --ssh :2222
  pong history
  pong settings --difficulty hard`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/pong.db", "Path to preferences and history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Profile for preferences and history")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(settingsCmd)
}
