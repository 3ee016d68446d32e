// Package cmd provides the Cobra CLI commands for navkit.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/navkit/internal/domain/build"
	"github.com/bnema/navkit/internal/infrastructure/config"
	"github.com/bnema/navkit/internal/ui/tui"
)

var (
	configFile string
	logLevel   string
	manager    *config.Manager
	theme      = tui.NewTheme()
	buildInfo  build.Info
	rootCmd    = &cobra.Command{
		Use:   "navkit",
		Short: "Path-based page navigation for terminal UIs",
		Long: `navkit turns paths like //NavigationPage/HomePage?greeting=hi/DetailsPage?id=3
into page stacks, with popups that return results, tab hosts kept in sync with
their view-models and lifecycle notifications delivered to view-models.

Use 'navkit run' to open the demo application, or 'navkit parse' to inspect
how a path is understood.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version", "schema", "init":
				return nil
			}

			var err error
			manager, err = config.NewManager(config.ManagerOptions{ConfigFile: configFile})
			if err != nil {
				return fmt.Errorf("initialize config: %w", err)
			}
			return manager.Load()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/navkit/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// currentConfig returns the loaded configuration with flag overrides applied.
func currentConfig() *config.Config {
	if manager == nil {
		return config.DefaultConfig()
	}
	cfg := manager.Get()
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	return cfg
}
