// Package tui is the interactive post table.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Makepad-fr/postview/internal/model"
	"github.com/Makepad-fr/postview/internal/view"
)

// Options configure a Model.
type Options struct {
	Loader   view.Loader
	Logger   *zap.Logger
	PageSize int
	Source   string // shown in the footer
	Context  context.Context
}

// loadedMsg carries the single load result back into Update.
type loadedMsg struct {
	records []model.Record
	err     error
}

// Model is the Bubble Tea model for the table page.
type Model struct {
	state  view.State
	loader view.Loader
	ctx    context.Context
	log    *zap.Logger
	source string

	cols  []view.Column
	table table.Model
	pager paginator.Model
	input textinput.Model
	help  help.Model
	keys  keyMap

	filterFocused bool
	sortCol       int // index into cols, -1 for load order
	sortDesc      bool
	picked        map[int]bool // row selection by record id

	detail    *model.Record
	statusMsg string

	width   int
	visible []model.Record
}

// New builds the model. The load is issued by Init.
func New(opt Options) Model {
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	if opt.Context == nil {
		opt.Context = context.Background()
	}
	if opt.PageSize <= 0 {
		opt.PageSize = 10
	}

	keys := defaultKeys()

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Filter..."
	ti.CharLimit = 200
	ti.Width = 40

	pg := paginator.New()
	pg.Type = paginator.Arabic
	pg.PerPage = opt.PageSize

	m := Model{
		state:   view.New(),
		loader:  opt.Loader,
		ctx:     opt.Context,
		log:     opt.Logger,
		source:  opt.Source,
		cols:    view.DefaultColumns(),
		pager:   pg,
		input:   ti,
		help:    help.New(),
		keys:    keys,
		sortCol: -1,
		picked:  map[int]bool{},
		width:   100,
	}
	m.table = table.New(
		table.WithColumns(m.tableColumns()),
		table.WithFocused(true),
		table.WithHeight(opt.PageSize+1),
		table.WithKeyMap(tableKeys(keys)),
		table.WithStyles(tableStyles()),
	)
	m.refresh()
	return m
}

// State exposes the current table state.
func (m Model) State() view.State { return m.state }

// Visible is the sorted, paged slice currently on screen.
func (m Model) Visible() []model.Record {
	out := make([]model.Record, len(m.visible))
	copy(out, m.visible)
	return out
}

// Picked reports whether the row with id is selected.
func (m Model) Picked(id int) bool { return m.picked[id] }

// Page is the 0-based current page.
func (m Model) Page() int { return m.pager.Page }

// Init issues the single load. There is no retry.
func (m Model) Init() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	loader, ctx, log := m.loader, m.ctx, m.log
	return func() tea.Msg {
		log.Debug("load started")
		records, err := loader.Load(ctx)
		return loadedMsg{records: records, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			m.state = m.state.LoadFailed(msg.err)
			m.log.Error("load failed", zap.String("source", m.source), zap.Error(msg.err))
		} else {
			m.state = m.state.Loaded(msg.records)
			m.log.Info("load finished", zap.String("source", m.source), zap.Int("records", m.state.Len()))
		}
		m.pager.Page = 0
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.detail != nil {
			return m.updateDetail(msg)
		}
		if m.filterFocused {
			return m.updateFilter(msg)
		}
		return m.updateTable(msg)
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.detail = nil
	case "e":
		m.edit(m.detail.ID)
	case "d":
		m.remove(m.detail.ID)
		m.detail = nil
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Blur) {
		m.filterFocused = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != before {
		m.state = m.state.WithQuery(q)
		m.pager.Page = 0
		m.refresh()
	}
	return m, cmd
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Filter):
		m.filterFocused = true
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.PrevPage):
		m.pager.PrevPage()
		m.refresh()
		m.table.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.pager.NextPage()
		m.refresh()
		m.table.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.sortCol = m.nextSortColumn()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.SortDir):
		m.sortDesc = !m.sortDesc
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if r, ok := m.current(); ok {
			if m.picked[r.ID] {
				delete(m.picked, r.ID)
			} else {
				m.picked[r.ID] = true
			}
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.TogglePg):
		m.togglePage()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Detail):
		if r, ok := m.current(); ok {
			m.detail = &r
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if r, ok := m.current(); ok {
			m.edit(r.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if r, ok := m.current(); ok {
			m.remove(r.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Selector):
		next := m.state.NextSelection()
		m.state, _ = m.state.Select(next)
		m.log.Info("selector changed", zap.String("value", next))
		m.statusMsg = "Selected: " + view.SelectorLabel(next)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) edit(id int) {
	if _, ok := m.state.Edit(id); ok {
		m.log.Info("edit requested", zap.Int("id", id))
		m.statusMsg = fmt.Sprintf("Edit row with id: %d", id)
	}
}

func (m *Model) remove(id int) {
	next, ok := m.state.Delete(id)
	if !ok {
		return
	}
	m.state = next
	delete(m.picked, id)
	m.log.Info("row deleted", zap.Int("id", id), zap.Int("remaining", next.Len()))
	m.statusMsg = fmt.Sprintf("Deleted row with id: %d", id)
	m.refresh()
}

func (m *Model) togglePage() {
	if len(m.visible) == 0 {
		return
	}
	all := true
	for _, r := range m.visible {
		if !m.picked[r.ID] {
			all = false
			break
		}
	}
	for _, r := range m.visible {
		if all {
			delete(m.picked, r.ID)
		} else {
			m.picked[r.ID] = true
		}
	}
}

func (m Model) current() (model.Record, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		return model.Record{}, false
	}
	return m.visible[i], true
}

// nextSortColumn cycles load order -> each sortable column -> load order.
func (m Model) nextSortColumn() int {
	for i := m.sortCol + 1; i < len(m.cols); i++ {
		if m.cols[i].Sortable {
			return i
		}
	}
	return -1
}

// refresh re-derives the visible page from state, sort and pager.
func (m *Model) refresh() {
	rows := m.state.Filtered()
	if m.sortCol >= 0 {
		rows = view.Sort(rows, m.cols[m.sortCol], m.sortDesc)
	}
	page, pages := view.Paginate(rows, m.pager.Page, m.pager.PerPage)
	m.pager.TotalPages = pages
	m.pager.Page = max(0, min(m.pager.Page, pages-1))
	m.visible = page

	m.table.SetColumns(m.tableColumns())
	m.table.SetRows(m.tableRows())
	// an empty table leaves the cursor at -1
	if c := m.table.Cursor(); c < 0 {
		m.table.SetCursor(0)
	} else if c >= len(m.visible) {
		m.table.SetCursor(max(0, len(m.visible)-1))
	}
}
