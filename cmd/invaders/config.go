package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <scene>",
	Short: "Print the default YAML for a scene",
	Long: `Prints the embedded default configuration. Save it to
~/.invaders/configs/<scene>.yaml or ./configs/<scene>.yaml to customize
a scene, or pass any file with --config.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		return fmt.Errorf("unknown scene %q", args[0])
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
