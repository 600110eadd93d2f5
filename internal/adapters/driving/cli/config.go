package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage client configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Keys:
  server_url            Base URL of the remote service
  language              Default answer language
  watch_dir             Directory observed by 'upload --watch'
  requests_per_second   Client-side request throttle`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	settings, err := settingsStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cmd.Printf("server_url          = %s\n", settings.ServerURL)
	cmd.Printf("language            = %s\n", settings.Language)
	cmd.Printf("watch_dir           = %s\n", settings.WatchDir)
	cmd.Printf("requests_per_second = %g\n", settings.RequestsPerSecond)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	settings, err := settingsStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	key, value := args[0], args[1]
	switch key {
	case "server_url":
		settings.ServerURL = value
	case "language":
		settings.Language = value
	case "watch_dir":
		settings.WatchDir = value
	case "requests_per_second":
		rps, err := strconv.ParseFloat(value, 64)
		if err != nil || rps <= 0 {
			return fmt.Errorf("requests_per_second must be a positive number, got %q", value)
		}
		settings.RequestsPerSecond = rps
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := settingsStore.Save(settings); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	cmd.Printf("%s set.\n", key)
	return nil
}
