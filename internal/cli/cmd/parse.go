package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/navkit/internal/application/port"
	"github.com/bnema/navkit/internal/bootstrap"
	"github.com/bnema/navkit/internal/domain/entity"
	"github.com/bnema/navkit/internal/logging"
	"github.com/bnema/navkit/internal/ui/tui"
)

var (
	parseResolve bool
	parsePopup   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <path>",
	Short: "Show how a navigation path is parsed",
	Long: `Split a path into segments and decode each segment's query.

With --resolve, every segment is also matched against the registered page
types, the way navigation does before creating anything.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseResolve, "resolve", false, "resolve segments against registered page types")
	parseCmd.Flags().BoolVar(&parsePopup, "popup", false, "resolve against popup types instead of page types")
}

func runParse(cmd *cobra.Command, args []string) error {
	parsed, err := entity.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("parse %q: %w", args[0], err)
	}

	resolved := make([]string, parsed.Len())
	if parseResolve {
		resolved, err = resolveSegments(cmd.Context(), parsed)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	kind := "relative"
	if parsed.Absolute {
		kind = "absolute"
	}
	fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("%s path, %d segment(s)", kind, parsed.Len())))
	fmt.Fprintln(out, renderSegments(theme, parsed, resolved))
	return nil
}

func resolveSegments(ctx context.Context, parsed entity.NavigationPath) ([]string, error) {
	ctx = logging.WithContext(ctx, zerolog.Nop())
	app, err := bootstrap.New(ctx, currentConfig(), bootstrap.Options{})
	if err != nil {
		return nil, err
	}
	defer app.Close()

	family := port.FamilyPage
	if parsePopup {
		family = port.FamilyPopup
	}
	descriptors, err := app.Resolver.Describe(family, parsed)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	out := make([]string, len(descriptors))
	for i, d := range descriptors {
		out[i] = d.Type.Name
	}
	return out, nil
}

func renderSegments(theme *tui.Theme, parsed entity.NavigationPath, resolved []string) string {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Segment", Width: 24},
		{Title: "Parameters", Width: 36},
		{Title: "Type", Width: 20},
	}
	rows := make([]table.Row, 0, parsed.Len())
	for i, seg := range parsed.Segments {
		var params []string
		seg.Query.Each(func(key string, value any) {
			params = append(params, fmt.Sprintf("%s=%v", key, value))
		})
		rows = append(rows, table.Row{strconv.Itoa(i + 1), seg.Name, strings.Join(params, " "), resolved[i]})
	}
	return tui.NewStyledTable(theme, columns, rows).View()
}
