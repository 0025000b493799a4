package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	portssvc "github.com/Yousifhashim249/ERP-project/internal/core/ports/services"
	"github.com/spf13/cobra"
)

// reports maps report names to the call that builds them.
var reports = map[string]func(ctx context.Context, svc portssvc.ReportingService) (any, error){
	"ledger": func(ctx context.Context, svc portssvc.ReportingService) (any, error) {
		return svc.LedgerView(ctx)
	},
	"trial-balance": func(ctx context.Context, svc portssvc.ReportingService) (any, error) {
		return svc.TrialBalance(ctx)
	},
	"income-statement": func(ctx context.Context, svc portssvc.ReportingService) (any, error) {
		return svc.IncomeStatement(ctx)
	},
	"balance-sheet": func(ctx context.Context, svc portssvc.ReportingService) (any, error) {
		return svc.BalanceSheet(ctx)
	},
	"expense-analysis": func(ctx context.Context, svc portssvc.ReportingService) (any, error) {
		return svc.ExpenseAnalysis(ctx)
	},
}

func reportNames() []string {
	names := make([]string, 0, len(reports))
	for name := range reports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "report <name>",
		Short:     "Print a financial report as JSON",
		Long:      "Builds one report from the ledger and prints it to stdout.\n\nReports: " + strings.Join(reportNames(), ", "),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: reportNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			build := reports[args[0]]

			app, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer app.close()

			report, err := build(cmd.Context(), app.services.Reporting)
			if err != nil {
				return fmt.Errorf("failed to build %s: %w", args[0], err)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
}
