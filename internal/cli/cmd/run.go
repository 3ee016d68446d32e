package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/navkit/internal/bootstrap"
	"github.com/bnema/navkit/internal/infrastructure/config"
	"github.com/bnema/navkit/internal/logging"
	"github.com/bnema/navkit/internal/ui/tui"
)

var runWatch bool

var runCmd = &cobra.Command{
	Use:   "run [path]",
	Short: "Open the demo application",
	Long: `Open the demo application in the terminal and navigate to path, or to
navigation.start_path when no path is given.

Examples:
  navkit run
  navkit run //MainTabsPage
  navkit run "//NavigationPage/HomePage/DetailsPage?id=3"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runWatch, "watch", true, "reload the config file when it changes")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()

	logger, closeLog, err := bootstrap.NewLogger(cfg.Logging, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorStyle.Render(err.Error()))
		// Console output would draw over the terminal UI.
		logger = zerolog.Nop()
	}
	defer closeLog()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx = logging.WithContext(ctx, logger)
	log := logging.FromContext(ctx)

	app, err := bootstrap.New(ctx, cfg, bootstrap.Options{})
	if err != nil {
		return fmt.Errorf("build navigation: %w", err)
	}
	defer app.Close()

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	if res := app.Start(ctx, path); res.IsFailure() {
		return fmt.Errorf("navigate to start page: %w", res.Err())
	}

	program := tea.NewProgram(app.Window,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithMouseCellMotion(),
	)
	app.Window.SetSender(program.Send)
	app.Keys.SetOnQuit(program.Quit)

	if runWatch && manager != nil && manager.ConfigFileUsed() != "" {
		manager.OnConfigChange(func(c *config.Config) {
			if err := app.ApplyConfig(c); err != nil {
				log.Warn().Err(err).Msg("config change not applied")
				program.Send(tui.StatusMsg("config change rejected: " + err.Error()))
				return
			}
			program.Send(tui.StatusMsg("configuration reloaded"))
		})
		if err := manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if _, err := program.Run(); err != nil && ctx.Err() == nil {
			return fmt.Errorf("terminal UI: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		program.Quit()
		return nil
	})

	log.Info().Str("path", path).Msg("navkit running")
	err = g.Wait()
	log.Info().Msg("navkit stopped")
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
