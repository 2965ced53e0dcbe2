package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catch-treasure/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default configuration as YAML.
Save it to ~/.catch-treasure/configs/catch.yaml or ./configs/catch.yaml
and edit the values you want to change.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
