package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/postview/internal/config"
	"github.com/Makepad-fr/postview/internal/logging"
	"github.com/Makepad-fr/postview/internal/source"
	"github.com/Makepad-fr/postview/internal/ui"
	"github.com/Makepad-fr/postview/internal/view"
)

type listFlags struct {
	query string
	sort  string
	desc  bool
	page  int
	all   bool
}

func newListCmd(root *rootFlags, opt Options) *cobra.Command {
	lf := &listFlags{}
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Print one page of the table and exit",
		Example: `  postview ls
  postview ls --query foo
  postview ls --sort title --desc --page 2`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}
			return runList(cmd, cfg, lf, opt)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&lf.query, "query", "q", "", "filter by title, body or id")
	fl.StringVar(&lf.sort, "sort", "", "sort by column (id, title, body)")
	fl.BoolVar(&lf.desc, "desc", false, "sort descending")
	fl.IntVarP(&lf.page, "page", "p", 1, "1-based page to print")
	fl.BoolVar(&lf.all, "all", false, "print every row, no paging")
	return cmd
}

func runList(cmd *cobra.Command, cfg *config.Config, lf *listFlags, opt Options) error {
	cols := view.DefaultColumns()
	sortCol := -1
	if lf.sort != "" {
		for i, c := range cols {
			if c.Sortable && strings.EqualFold(c.Title, lf.sort) {
				sortCol = i
			}
		}
		if sortCol < 0 {
			return usageError{fmt.Errorf("ls: cannot sort by %q", lf.sort)}
		}
	}
	if lf.page < 1 {
		return usageError{fmt.Errorf("ls: page must be 1 or more, got %d", lf.page)}
	}

	logger := opt.Logger
	if logger == nil {
		l, err := logging.New(logging.Options{Verbose: cfg.Verbose})
		if err != nil {
			return err
		}
		logger = l
		defer func() { _ = logger.Sync() }()
	}

	loader := loaderFor(cfg)
	logger.Debug("load started", zap.String("source", source.Describe(loader)))
	state := view.Apply(cmd.Context(), view.New(), loader)
	if err := state.Err(); err != nil {
		logger.Error("load failed", zap.Error(err))
		return err
	}
	state = state.WithQuery(lf.query)

	rows := state.Filtered()
	if sortCol >= 0 {
		rows = view.Sort(rows, cols[sortCol], lf.desc)
	}
	perPage := cfg.PageSize
	if lf.all {
		perPage = 0
	}
	page, pages := view.Paginate(rows, lf.page-1, perPage)
	current := min(lf.page, pages) - 1

	t := ui.Current()
	header := fmt.Sprintf("%s  %s %d  %s %d",
		t.Title.Render("Posts"),
		t.Accent.Render("Showing"), len(rows),
		t.Muted.Render("of"), state.Len(),
	)
	lines := []string{header}
	if lf.query != "" {
		lines = append(lines, t.Muted.Render("filter: "+lf.query))
	}
	lines = append(lines, "")

	if len(page) == 0 {
		lines = append(lines, t.Muted.Render("There are no records to display"))
	} else {
		// no action column outside the TUI
		shown := cols[:len(cols)-1]
		headers := make([]string, len(shown))
		widths := make([]int, len(shown))
		for i, c := range shown {
			headers[i] = c.Title
			widths[i] = c.Width
		}
		lines = append(lines, ui.Table(headers, view.Rows(page, shown), widths))
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render(ui.PageBar(current, pages, 20)))

	fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(lines))
	ui.OK(fmt.Sprintf("%d of %d posts from %s", len(rows), state.Len(), source.Describe(loader)))
	return nil
}
