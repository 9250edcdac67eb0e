package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/spendlog/spendlog/internal/summary"
)

func newShellCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive menu to add, view and analyze expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runShell loops over the menu until "4" or end of input. Store errors are
// printed and the loop continues.
func (a *app) runShell(in io.Reader, out io.Writer) error {
	p := newPrompter(in, out)
	sugg := a.suggestions()

	fmt.Fprintln(out, "Welcome to the Expense Tracker!")
	for {
		fmt.Fprintln(out, "\n--- Menu ---")
		fmt.Fprintln(out, "1. Add Expense")
		fmt.Fprintln(out, "2. View Expenses")
		fmt.Fprintln(out, "3. Analyze Expenses")
		fmt.Fprintln(out, "4. Exit")

		choice, err := p.line("Enter your choice: ")
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			fmt.Fprintln(out, "\n--- Add a New Expense ---")
			e, err := p.collectExpense(expenseInput{}, sugg)
			if errors.Is(err, errInputClosed) {
				return nil
			}
			if err != nil {
				return err
			}
			if err := a.saveExpense(out, e); err != nil {
				fmt.Fprintf(out, "Error saving expense: %v\n", err)
			}
		case "2":
			fmt.Fprintln(out, "\n--- View Expenses ---")
			if err := a.viewExpenses(out); err != nil {
				fmt.Fprintf(out, "Error viewing expenses: %v\n", err)
			}
		case "3":
			fmt.Fprintln(out, "\n--- Analyze Expenses ---")
			if err := a.analyzeExpenses(out, summary.OrderFirstSeen, false); err != nil {
				fmt.Fprintf(out, "Error analyzing expenses: %v\n", err)
			}
		case "4":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice. Please enter a number between 1 and 4.")
		}
	}
}
