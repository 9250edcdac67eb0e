package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spendlog/spendlog/internal/config"
	"github.com/spendlog/spendlog/internal/gitops"
	"github.com/spendlog/spendlog/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var storePath string
	var useTOML bool
	var withGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a spendlog config file, optionally under git",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, storePath, useTOML, withGit)
		},
	}

	cmd.Flags().StringVar(&storePath, "store", ledger.DefaultFile, "expense file, relative to the directory")
	cmd.Flags().BoolVar(&useTOML, "toml", false, "write spendlog.toml instead of spendlog.yaml")
	cmd.Flags().BoolVar(&withGit, "git", false, "initialize a git repository and commit every change")

	return cmd
}

func runInit(out io.Writer, dir, storePath string, useTOML, withGit bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	name := config.DefaultFile
	if useTOML {
		name = config.DefaultTOMLFile
	}
	cfgPath := filepath.Join(dir, name)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", cfgPath, err)
	}

	cfg := config.Default()
	cfg.Store.Path = storePath
	cfg.Git.AutoCommit = withGit
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	if withGit {
		if !gitops.IsRepo(dir) {
			if err := gitops.Init(dir); err != nil {
				return err
			}
		}
		hash, err := gitops.Commit(dir, "init: spendlog config", cfg.Git.AuthorName, cfg.Git.AuthorEmail, name)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		fmt.Fprintf(out, "Initialized spendlog at %s (%s)\n", dir, hash)
		return nil
	}

	fmt.Fprintf(out, "Initialized spendlog at %s\n", dir)
	return nil
}
