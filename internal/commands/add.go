package commands

import (
	"github.com/spf13/cobra"

	"github.com/spendlog/spendlog/internal/category"
)

func newAddCommand(a *app) *cobra.Command {
	var in expenseInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		Long: "Record an expense. Fields not given as flags are prompted for,\n" +
			"and a prompt repeats until its answer is valid.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var sugg *category.Suggestions
			if in.category == "" {
				sugg = a.suggestions()
			}

			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			e, err := p.collectExpense(in, sugg)
			if err != nil {
				return err
			}
			return a.saveExpense(cmd.OutOrStdout(), e)
		},
	}

	cmd.Flags().StringVarP(&in.date, "date", "d", "", "date of the expense (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&in.amount, "amount", "a", "", "amount spent")
	cmd.Flags().StringVarP(&in.category, "category", "c", "", "category, existing or new")
	cmd.Flags().StringVarP(&in.description, "description", "m", "", "short description")

	return cmd
}

// suggestions returns this session's category suggestions. An unreadable
// store only costs the recorded categories.
func (a *app) suggestions() *category.Suggestions {
	s, err := category.Load(a.store, a.cfg.Categories)
	if err != nil {
		a.log.Warn("could not load recorded categories", "error", err)
		s = category.New(category.Defaults...)
		for _, c := range a.cfg.Categories {
			s.Add(c)
		}
	}
	return s
}
