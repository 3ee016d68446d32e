package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/navkit/internal/infrastructure/config"
)

var schemaWrite bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of config.toml. With --write the schema is saved as
config.schema.json in the config directory, for editors that validate TOML.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if schemaWrite {
			path, err := config.GenerateSchemaFile()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.Subtle.Render("Generated JSON schema: "+path))
			return nil
		}
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVar(&schemaWrite, "write", false, "write config.schema.json next to the config file")
}
