// tapball is Tap the Ball for the terminal: tap a moving ball before the clock runs out.
//
// Usage:
//
//	tapball                   - Same as 'tapball menu'
//	tapball list              - List the game variants
//	tapball play [variant]    - Play a variant (default: tapball)
//	tapball menu              - Pick a variant interactively
//	tapball serve             - Start SSH server for remote play
//	tapball scores [variant]  - Show high scores for a variant
//	tapball config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.tapball/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <level>  - Starting difficulty: easy, medium, hard
//	--log-file <path>     - Log file (default: ~/.tapball/tapball.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tapball/internal/games/tapball"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tapball",
	Short: "Tap the Ball - tap a moving ball before time runs out",
	Long: `Tap the Ball is a 30 second reflex game for your terminal.
Click the ball to score, grab the golden power-up for a bonus,
and beat your high score.

Available commands:
  list     - Show the game variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default game config

Examples:
  tapball play
  tapball play tapball_teleport --difficulty hard
  tapball play --gui
  tapball menu
  tapball serve --ssh :2222
  tapball scores tapball`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tapball/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: easy, medium, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.tapball/tapball.log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
