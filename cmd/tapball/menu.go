package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tapball/internal/platform/tui"
	"github.com/vovakirdan/tapball/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start Tap the Ball in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Press Esc on the start or game over screen to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Scoreboard
  Q            - Quit

Examples:
  tapball menu
  tapball menu --fps 30
  tapball menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	menuCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Stream snapshots to WebSocket spectators on this address")
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := configureGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	e, err := openEnv(!flagMute, flagSpectate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer e.Close()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	cfg := runtimeConfig(width, height)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(e.store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(e.store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, e.store, cfg, e.hooks()); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}
}
