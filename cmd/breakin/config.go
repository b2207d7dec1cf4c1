package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/break-in/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved match configuration",
	Long: `Print the configuration a match would start with, as YAML.

The config is searched in this order: --config, ~/.breakin/configs/breakin.yaml,
./configs/breakin.yaml, then the built-in defaults. The --difficulty preset
is applied on top. Redirect the output to start a custom config file.

Examples:
  breakin config
  breakin config --difficulty hard > ~/.breakin/configs/breakin.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, _, err := loadMatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
