package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/postview/internal/config"
	"github.com/Makepad-fr/postview/internal/logging"
	"github.com/Makepad-fr/postview/internal/source"
	"github.com/Makepad-fr/postview/internal/tui"
	"github.com/Makepad-fr/postview/internal/ui"
	"github.com/Makepad-fr/postview/internal/view"
)

// Options let callers (and tests) swap the process edges.
type Options struct {
	Out, Err io.Writer
	// Interactive runs the table UI. Defaults to tui.Run.
	Interactive func(tui.Options) (view.State, error)
	// Logger overrides the logger built from config.
	Logger *zap.Logger
}

// usageError marks bad arguments; Run maps it to exit code 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// flags shared by every command
type rootFlags struct {
	configPath string
	url        string
	file       string
	pageSize   int
	theme      string
	verbose    bool
}

// Run executes the command line and returns an exit code
// (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.Out == nil {
		opt.Out = os.Stdout
	}
	if opt.Err == nil {
		opt.Err = os.Stderr
	}
	if opt.Interactive == nil {
		opt.Interactive = tui.Run
	}
	ui.SetOutput(opt.Out, opt.Err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(opt)
	root.SetArgs(args)
	root.SetOut(opt.Out)
	root.SetErr(opt.Err)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}
	ui.Fail(err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(opt.Err)
		_ = cmd.Usage()
		return 2
	}
	return 1
}

func newRootCmd(opt Options) *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:   "postview",
		Short: "Browse posts from a REST endpoint in a terminal table",
		Long: `postview fetches a list of posts once and shows them in a sortable,
filterable, paginated table. Rows can be selected, opened, and deleted for
the session; nothing is written back.

Run without arguments to start the interactive table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			return runInteractive(cmd.Context(), cfg, opt)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/postview/config.yaml)")
	pf.StringVar(&f.url, "url", "", "record source URL")
	pf.StringVar(&f.file, "file", "", "read records from a local JSON file instead of the URL")
	pf.IntVar(&f.pageSize, "page-size", 0, "rows per page")
	pf.StringVar(&f.theme, "theme", "", "classic, neon or mono")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newListCmd(f, opt), newConfigCmd(f))
	return root
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}

// load resolves config: file, then env, then flags that were set.
func (f *rootFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.Source.URL = f.url
	}
	if flags.Changed("file") {
		cfg.Source.File = f.file
	}
	if flags.Changed("page-size") {
		cfg.PageSize = f.pageSize
	}
	if flags.Changed("theme") {
		cfg.Theme = f.theme
	}
	if flags.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if err := cfg.Validate(); err != nil {
		return nil, usageError{err}
	}
	ui.SetTheme(cfg.Theme)
	return cfg, nil
}

func loaderFor(cfg *config.Config) view.Loader {
	return source.Open(cfg.Source.URL, cfg.Source.File, cfg.Source.Timeout)
}

func runInteractive(ctx context.Context, cfg *config.Config, opt Options) error {
	logger := opt.Logger
	if logger == nil {
		l, err := logging.New(logging.Options{File: cfg.LogFile, Verbose: cfg.Verbose})
		if err != nil {
			return err
		}
		logger = l
		defer func() { _ = logger.Sync() }()
	}

	loader := loaderFor(cfg)
	logger.Info("starting table", zap.String("source", source.Describe(loader)), zap.Int("page_size", cfg.PageSize))

	final, err := opt.Interactive(tui.Options{
		Loader:   loader,
		Logger:   logger,
		PageSize: cfg.PageSize,
		Source:   source.Describe(loader),
		Context:  ctx,
	})
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	logger.Info("table closed", zap.Int("records", final.Len()), zap.Bool("load_failed", final.Err() != nil))
	return nil
}
