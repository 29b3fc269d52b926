package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tapball/internal/core"
	"github.com/vovakirdan/tapball/internal/games/tapball"
	"github.com/vovakirdan/tapball/internal/platform/gui"
	"github.com/vovakirdan/tapball/internal/platform/tui"
	"github.com/vovakirdan/tapball/internal/registry"
)

var (
	flagGUI      bool
	flagMute     bool
	flagSpectate string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: tapball).

Variants:
  tapball           - Bouncing ball with particles and a bonus power-up
  tapball_jitter    - Jittering ball that jumps away when hit
  tapball_teleport  - Ball teleports every half second

Controls:
  Mouse click  - Tap
  Up/Down      - Change difficulty on the start screen
  Enter/Space  - Start
  Esc/B        - End the session early
  R            - Play again (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  tapball play
  tapball play tapball_jitter --difficulty easy
  tapball play --gui
  tapball play --spectate :8080
  tapball play --config ./my-tapball.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a window instead of the terminal")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Stream snapshots to WebSocket spectators on this address (e.g. :8080)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "tapball"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tapball list' to see available variants.")
		os.Exit(1)
	}

	if err := configureGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := runtimeConfig(width, height)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	e, err := openEnv(!flagMute, flagSpectate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var runErr error
	if flagGUI {
		runErr = runWindow(game, e, cfg)
	} else {
		runErr = tui.Run(game, e.store, cfg, e.hooks())
	}

	// Close env before potential exit
	e.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func runWindow(game registry.Game, e *env, cfg core.RuntimeConfig) error {
	tb, ok := game.(*tapball.Game)
	if !ok {
		return fmt.Errorf("%s cannot run in a window", game.ID())
	}

	opts := gui.Options{Store: e.store, Logger: e.logger}
	if e.sounds != nil {
		opts.Sounds = e.sounds
	}
	if e.hub != nil {
		opts.Spectate = e.hub
	}
	return gui.Run(tb, cfg, opts)
}
