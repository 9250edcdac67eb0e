package commands

import (
	"github.com/spf13/cobra"

	"github.com/spendlog/spendlog/internal/summary"
)

func newSummaryCommand(a *app) *cobra.Command {
	var sortBy string
	var withGrand bool

	cmd := &cobra.Command{
		Use:     "summary",
		Aliases: []string{"analyze"},
		Short:   "Show the total spent per category",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := summary.ParseOrder(sortBy)
			if err != nil {
				return err
			}
			return a.analyzeExpenses(cmd.OutOrStdout(), order, withGrand)
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", string(summary.OrderFirstSeen), "order categories by first, name or total")
	cmd.Flags().BoolVar(&withGrand, "total", false, "also print the total over all categories")

	return cmd
}
