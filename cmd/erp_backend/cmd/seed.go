package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the accounts of a chart of accounts file",
		Long: `Creates every account of the YAML chart whose code does not exist yet.
Running it again is harmless.

Example:
  erp_backend seed --file configs/chart_of_accounts.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = cfg.ChartOfAccountsFile
			}
			if file == "" {
				return fmt.Errorf("--file or CHART_OF_ACCOUNTS_FILE is required")
			}

			app, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer app.close()

			return app.seedChart(cmd.Context(), file)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "chart of accounts YAML file")
	return cmd
}
