package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/koncoweb/kasir-go/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage shop settings",
	RunE:  runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	name, err := settingsService.StoreName(cmdContext(cmd))
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	cmd.Printf("store_name = %s\n", name)
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	value, err := settingsService.Get(cmdContext(cmd), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		cmd.Println("Not set.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading setting: %w", err)
	}
	cmd.Println(value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if err := settingsService.Set(cmdContext(cmd), args[0], args[1]); err != nil {
		return fmt.Errorf("saving setting: %w", err)
	}
	cmd.Println("Saved.")
	return nil
}
