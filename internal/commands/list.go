package commands

import (
	"github.com/spf13/cobra"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"view", "ls"},
		Short:   "List recorded expenses in the order they were added",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.viewExpenses(cmd.OutOrStdout())
		},
	}
}
