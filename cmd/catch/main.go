// catch is a terminal rendition of the Catch the Treasure arcade game.
//
// Usage:
//
//	catch play          - Play in the terminal
//	catch simulate      - Run the autopilot headless and print a summary
//	catch config        - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom YAML configuration
//	--log <path>          - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catch",
	Short: "Catch the Treasure - catch loot, dodge bombs",
	Long: `Catch the Treasure is a real-time arcade game for the terminal.
Move the paddle to catch falling treasure, hearts, hourglasses and ammo.
Bombs cost a life unless you shoot them first.

Available commands:
  play      - Play the game
  simulate  - Run a seeded headless game driven by the autopilot
  config    - Print the default configuration

Examples:
  catch play
  catch play --seed 42 --mute
  catch simulate --seed 7 --ticks 36000
  catch config > configs/catch.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
