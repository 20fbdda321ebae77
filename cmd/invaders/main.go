// invaders plays a self-running space shooter scene in the terminal.
//
// Usage:
//
//	invaders list              - List available scenes
//	invaders play <scene>      - Watch a scene full-screen
//	invaders menu              - Pick a scene interactively
//	invaders run <scene>       - Stream frames to stdout
//	invaders config <scene>    - Print the default YAML for a scene
//
// Global flags:
//
//	--config <path>     - Custom scene YAML
//	--delay <ms>        - Override the frame delay
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDelay    int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - a self-running space shooter for your terminal",
	Long: `Invaders animates a ship that patrols and fires on its own against a
descending enemy formation. The scene takes no gameplay input.

Available commands:
  list     - Show all available scenes
  play     - Watch a scene full-screen
  menu     - Interactive scene picker
  run      - Stream frames to stdout
  config   - Print a scene's default configuration

Examples:
  invaders list
  invaders play invaders
  invaders play patrol --backend tcell
  invaders run invaders --frames 200 --no-color
  invaders config invaders > ~/.invaders/configs/invaders.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom scene config YAML")
	rootCmd.PersistentFlags().IntVar(&flagDelay, "delay", 0, "Frame delay in milliseconds (0 = scene default)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}
