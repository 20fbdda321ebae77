package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a scene interactively",
	Long: `Shows the registered scenes and plays the one you select.

Controls:
  Up/Down    - Navigate
  Enter      - Watch the selected scene
  Q/Esc      - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	sceneID, err := tui.RunMenu(runtimeConfig())
	if err != nil {
		return err
	}
	if sceneID == "" {
		return nil
	}
	return play(sceneID)
}
