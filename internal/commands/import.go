package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spendlog/spendlog/internal/importer"
	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/model"
)

func newImportCommand(a *app) *cobra.Command {
	var format string
	var categoryName string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Import the debits of bank CSV exports as expenses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := importer.DefaultRegistry()
			parser := registry.Get(format)
			if parser == nil {
				return fmt.Errorf("unknown import format %q (available: %s)", format, strings.Join(registry.Formats(), ", "))
			}
			if categoryName == "" {
				categoryName = a.cfg.Import.DefaultCategory
			}
			if _, err := model.ParseText(categoryName); err != nil {
				return &model.FieldError{Field: "category", Err: err}
			}

			for _, path := range args {
				if err := a.importFile(cmd, parser, path, categoryName, dryRun); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "chase", "bank export format")
	cmd.Flags().StringVarP(&categoryName, "category", "c", "", "category for imported expenses (default from config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the expenses without saving them")

	return cmd
}

func (a *app) importFile(cmd *cobra.Command, parser importer.Parser, path, categoryName string, dryRun bool) error {
	out := cmd.OutOrStdout()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	a.log.Debug("parsed bank export", "path", path, "format", parser.Format(), "transactions", len(txns))

	recorded, err := a.store.ReadAll()
	if err != nil && !errors.Is(err, ledger.ErrNotFound) {
		return fmt.Errorf("reading expenses: %w", err)
	}
	txns, skipped := importer.SkipRecorded(txns, recorded)
	if skipped > 0 {
		a.log.Info("skipped recorded transactions", "path", path, "skipped", skipped)
		fmt.Fprintf(out, "Skipped %d expenses already recorded\n", skipped)
	}
	expenses := importer.ToExpenses(txns, strings.TrimSpace(categoryName))

	if dryRun {
		for _, e := range expenses {
			printExpense(out, e)
		}
		fmt.Fprintf(out, "Would import %d expenses from %s\n", len(expenses), path)
		return nil
	}

	if err := a.store.AppendAll(expenses); err != nil {
		a.log.Error("importing expenses", "path", a.store.Path(), "error", err)
		return fmt.Errorf("importing %s: %w", path, err)
	}
	fmt.Fprintf(out, "Imported %d expenses from %s\n", len(expenses), path)

	if len(expenses) > 0 {
		a.commitStore(fmt.Sprintf("import: %d expenses from %s", len(expenses), filepath.Base(path)))
	}
	return nil
}
