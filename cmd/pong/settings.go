package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blueprint-pong/internal/config"
	"github.com/vovakirdan/blueprint-pong/internal/storage"
)

var (
	flagSetDifficulty string
	flagSetSounds     string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change preferences",
	Long: `Show the stored preferences for a profile, or change them.

Difficulty options: easy, medium, hard

Examples:
  pong settings
  pong settings --difficulty hard
  pong settings --sounds off --profile alice`,
	Args: cobra.NoArgs,
	Run:  runSettings,
}

func init() {
	settingsCmd.Flags().StringVar(&flagSetDifficulty, "difficulty", "", "Set difficulty: easy, medium, hard")
	settingsCmd.Flags().StringVar(&flagSetSounds, "sounds", "", "Set sounds: on, off")
}

func runSettings(_ *cobra.Command, _ []string) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	prefs, err := storage.LoadPrefs(store, flagProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading preferences: %v\n", err)
		os.Exit(1)
	}

	if flagSetDifficulty != "" {
		d, parseErr := config.ParseDifficulty(flagSetDifficulty)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", parseErr)
			os.Exit(1)
		}
		if err := prefs.SetDifficulty(d); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving difficulty: %v\n", err)
			os.Exit(1)
		}
	}

	if flagSetSounds != "" {
		var play bool
		switch flagSetSounds {
		case "on", "true", "yes":
			play = true
		case "off", "false", "no":
			play = false
		default:
			fmt.Fprintf(os.Stderr, "Error: --sounds must be on or off, got %q\n", flagSetSounds)
			os.Exit(1)
		}
		if err := prefs.SetPlaySounds(play); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving sounds: %v\n", err)
			os.Exit(1)
		}
	}

	sounds := "off"
	if prefs.ShouldPlaySounds() {
		sounds = "on"
	}
	fmt.Printf("Settings - %s\n", prefs.Profile())
	fmt.Println()
	fmt.Printf("  Difficulty: %s\n", prefs.Difficulty())
	fmt.Printf("  Sounds:     %s\n", sounds)
}
