package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tapball/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the embedded default YAML config. All variants share it.

Save it to one of the search paths and edit it to tune the game:
  --config <path>
  ~/.tapball/configs/tapball.yaml
  ./configs/tapball.yaml

Examples:
  tapball config > ~/.tapball/configs/tapball.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	data := config.GetDefaultYAML("tapball")
	if data == nil {
		fmt.Fprintln(os.Stderr, "Error: no embedded config")
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck // Nothing left to report to
}
