package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/bnema/navkit/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the effective configuration or create a default config file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the config file in use and the effective values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		file := "(none, defaults)"
		if manager != nil && manager.ConfigFileUsed() != "" {
			file = manager.ConfigFileUsed()
		}
		cfg := currentConfig()

		fmt.Fprintln(out, theme.Title.Render("Config file: ")+file)
		fmt.Fprintf(out, "navigation.start_path             %s\n", cfg.Navigation.StartPath)
		fmt.Fprintf(out, "navigation.case_insensitive_names %t\n", cfg.Navigation.CaseInsensitiveNames)
		fmt.Fprintf(out, "navigation.animated               %t\n", cfg.Navigation.Animated)
		fmt.Fprintf(out, "navigation.concurrency            %s\n", cfg.Navigation.Concurrency)
		fmt.Fprintf(out, "popups.animated                   %t\n", cfg.Popups.Animated)
		fmt.Fprintf(out, "logging.level                     %s\n", cfg.Logging.Level)
		fmt.Fprintf(out, "logging.format                    %s\n", cfg.Logging.Format)
		actions := make([]string, 0, len(cfg.Shortcuts))
		for action := range cfg.Shortcuts {
			actions = append(actions, action)
		}
		sort.Strings(actions)
		for _, action := range actions {
			fmt.Fprintf(out, "shortcuts.%-24s %v\n", action, cfg.Shortcuts[action])
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := configFile
		if path == "" {
			var err error
			if path, err = config.GetConfigFile(); err != nil {
				return err
			}
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Created default configuration file: "+path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
