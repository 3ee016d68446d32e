package cmd

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/navkit/internal/bootstrap"
	"github.com/bnema/navkit/internal/logging"
	"github.com/bnema/navkit/internal/ui/tui"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List registered page and popup types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := logging.WithContext(cmd.Context(), zerolog.Nop())
		app, err := bootstrap.New(ctx, currentConfig(), bootstrap.Options{})
		if err != nil {
			return err
		}
		defer app.Close()

		types := app.Catalog.PageTypes()
		sort.Slice(types, func(i, j int) bool {
			if types[i].Family != types[j].Family {
				return types[i].Family < types[j].Family
			}
			return types[i].Name < types[j].Name
		})

		rows := make([]table.Row, 0, len(types))
		for _, pt := range types {
			vm := "-"
			if t, ok := app.Registry.ResolveViewModelType(pt.Name); ok {
				vm = t.String()
			}
			rows = append(rows, table.Row{pt.Name, pt.Family.String(), vm})
		}
		columns := []table.Column{
			{Title: "Name", Width: 20},
			{Title: "Family", Width: 8},
			{Title: "View-model", Width: 32},
		}
		fmt.Fprintln(cmd.OutOrStdout(), tui.NewStyledTable(theme, columns, rows).View())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pagesCmd)
}
