package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the effective configuration of a game",
	Long: `Prints the configuration a game would run with, as YAML.

The config is looked up in this order:
  --config <path>
  ~/.dodge/configs/<game>.yaml
  ./configs/<game>.yaml
  built-in defaults

Files only need the keys they change; everything else keeps its default.

Examples:
  dodge config bttf
  dodge config rainfall --config ./wet.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		fail("unknown game %q", gameID)
	}

	cfg, err := config.Load(gameID, flagConfig)
	if err != nil {
		fail("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	//nolint:errcheck // stdout
	os.Stdout.Write(data)
}
