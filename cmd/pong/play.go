package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blueprint-pong/internal/audio"
	"github.com/vovakirdan/blueprint-pong/internal/platform/tui"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Blueprint Pong in this terminal.

Controls:
  Up/W, Down/S   - Move your paddle (right side)
  Mouse drag     - Move your paddle to the pointer
  Enter/Space    - Select
  P/Esc          - Pause
  Q/Ctrl+C       - Quit

Examples:
  pong play
  pong play --profile alice
  pong play --mute
  pong play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Do not open the audio device")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Bubble Tea owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	} else {
		defer logFile.Close()
		logOut = logFile
	}
	logger := newLogger(logOut, "pong")

	ctx, err := baseContext(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if ctx.Store != nil {
		defer ctx.Store.Close()
	}
	ctx.Prefs = loadPrefs(ctx.Store, ctx.Profile, logger)

	// Get terminal size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		ctx.Runtime.ScreenW = w
		ctx.Runtime.ScreenH = h
	}

	ctx.Audio = audio.Silent{}
	if !flagMute {
		spk, spkErr := audio.NewSpeaker(logger)
		if spkErr != nil {
			logger.Warn("audio unavailable", "error", spkErr)
		} else {
			defer spk.Close()
			ctx.Audio = spk
		}
	}

	logger.Info("starting", "profile", ctx.Profile, "difficulty", ctx.Prefs.Difficulty())
	if runErr := tui.Run(ctx); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
