package cmd

import (
	"fmt"

	"github.com/Yousifhashim249/ERP-project/internal/platform/migrations"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var down int

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long: `Applies every pending migration embedded in the binary.

Example:
  erp_backend migrate
  erp_backend migrate --down 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("PGSQL_URL is required")
			}
			if down > 0 {
				return migrations.Down(cfg.DatabaseURL, down, logger)
			}
			return runMigrations()
		},
	}
	cmd.Flags().IntVar(&down, "down", 0, "roll back this many migrations instead of applying")
	return cmd
}
