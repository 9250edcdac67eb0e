package commands

import (
	"errors"
	"io/fs"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/spendlog/spendlog/internal/buildinfo"
	"github.com/spendlog/spendlog/internal/config"
	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/logger"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	store *ledger.Store
}

type rootOptions struct {
	configPath string
	storePath  string
	logLevel   string
	noColor    bool
}

// Execute runs the CLI on os.Args.
func Execute() error {
	a := &app{}
	return a.execute(newRootCommand(a))
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "spendlog",
		Short:   "Record personal expenses and total them by category",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultFile, "config file (.yaml or .toml)")
	flags.StringVarP(&opts.storePath, "file", "f", "", "expense file (overrides store.path from config)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newInitCommand(),
		newAddCommand(a),
		newListCommand(a),
		newSummaryCommand(a),
		newCategoriesCommand(a),
		newImportCommand(a),
		newShellCommand(a),
	)

	return rootCmd
}

// setup loads config, then applies flag overrides. A missing config file is
// only an error when --config was given explicitly.
func (a *app) setup(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		if cmd.Flags().Changed("config") || !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		cfg = config.Default()
	}

	if opts.storePath != "" {
		cfg.Store.Path = opts.storePath
	}
	if opts.logLevel != "" {
		lv, err := logger.ParseLevel(opts.logLevel)
		if err != nil {
			return err
		}
		cfg.Log.Level = lv
	}
	if opts.noColor {
		color.NoColor = true
	}

	a.cfg = cfg
	switch cfg.Log.Output {
	case "", "stderr":
		a.log = logger.NewWithWriter(cfg.Log, cmd.ErrOrStderr())
	default:
		a.log = logger.New(cfg.Log)
	}
	a.store = ledger.NewStore(cfg.Store.Path)

	a.log.Debug("using expense store", "path", a.store.Path(), "exists", a.store.Exists())
	return nil
}

// execute runs cmd, then closes the log file whether or not cmd failed.
// cobra skips PersistentPostRun after a RunE error.
func (a *app) execute(cmd *cobra.Command) error {
	defer func() {
		if a.log != nil {
			_ = a.log.Close()
		}
	}()
	return cmd.Execute()
}
