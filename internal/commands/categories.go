package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlog/spendlog/internal/category"
)

func newCategoriesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List suggested categories (defaults, configured and already used)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := category.Load(a.store, a.cfg.Categories)
			if err != nil {
				return err
			}
			for _, name := range s.All() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
