package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/listmerge/internal/lists"
	"github.com/desertthunder/listmerge/internal/models"
	"github.com/desertthunder/listmerge/internal/services"
	"github.com/desertthunder/listmerge/internal/shared"
)

// Status represents the load state of the TUI.
type Status int

const (
	StatusLoading Status = iota
	StatusFailed
	StatusReady
)

const (
	defaultColumnWidth = 32
	selectionNotice    = "You should select exactly 2 lists to create a new list"
	loadFailedNotice   = "Failed to load the lists. Please try again."
)

// Options configures a [Model].
type Options struct {
	ColumnWidth int
	Accent      string
	Logger      *log.Logger
}

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	status   Status
	source   services.Source
	manager  *lists.Manager
	logger   *log.Logger
	width    int
	height   int
	colWidth int
	focus    int         // index into columns()
	cursors  map[int]int // list number → highlighted item
	notice   string
	err      error
	spinner  spinner.Model
	styles   *Palette
	help     help.Model
	keys     keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, source services.Source, manager *lists.Manager, opts Options) *Model {
	if opts.ColumnWidth <= 0 {
		opts.ColumnWidth = defaultColumnWidth
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if manager == nil {
		manager = lists.NewManager(opts.Logger)
	}

	styles := NewDefaultPalette(opts.Accent)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.header

	return &Model{
		ctx:      ctx,
		status:   StatusLoading,
		source:   source,
		manager:  manager,
		logger:   opts.Logger,
		colWidth: opts.ColumnWidth,
		cursors:  map[int]int{},
		spinner:  sp,
		styles:   styles,
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// Init starts the spinner and fetches the lists.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchLists())
}

// Status returns the current load state.
func (m *Model) Status() Status { return m.status }

// Manager exposes the list state for callers that inspect the result after the program exits.
func (m *Model) Manager() *lists.Manager { return m.manager }

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.status != StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case Msg:
		switch msg.kind {
		case MsgListsFetched:
			return m.handleFetched(msg.data.(listsFetched))
		}

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		switch m.status {
		case StatusFailed:
			return m.handleFailedKeys(msg)
		case StatusReady:
			if m.manager.Merging() {
				return m.handleMergeKeys(msg)
			}
			return m.handleListKeys(msg)
		}
	}

	return m, nil
}

// View renders the UI based on the current status.
func (m *Model) View() string {
	switch m.status {
	case StatusLoading:
		return fmt.Sprintf("%s Loading lists from %s...\n", m.spinner.View(), m.source.Name())
	case StatusFailed:
		return m.renderFailed()
	default:
		return m.renderLists()
	}
}

func (m *Model) handleFetched(res listsFetched) (tea.Model, tea.Cmd) {
	if res.err == nil {
		if _, err := m.manager.Ingest(res.records); err != nil {
			res.err = err
		}
	}

	if res.err != nil {
		m.logger.Error("failed to load lists", "source", m.source.Name(), "error", res.err)
		m.status = StatusFailed
		m.err = res.err
		return m, nil
	}

	m.logger.Info("lists loaded", "records", len(res.records))
	m.status = StatusReady
	m.err = nil
	m.notice = ""
	m.focus = 0
	m.cursors = map[int]int{}
	return m, nil
}

func (m *Model) handleFailedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.retry) {
		return m, m.reload()
	}
	return m, nil
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleNavigation(msg) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.toggle):
		n, ok := m.focusedList()
		if !ok {
			return m, nil
		}
		if err := m.manager.Select(n, !m.manager.Selected(n)); err != nil {
			m.notice = selectionError(err)
			return m, nil
		}
		m.notice = ""

	case key.Matches(msg, m.keys.create):
		newKey, err := m.manager.BeginMerge()
		if err != nil {
			m.notice = selectionError(err)
			return m, nil
		}
		m.logger.Debug("merge view opened", "new", newKey)
		m.notice = ""
		m.focus = 0
	}

	return m, nil
}

func (m *Model) handleMergeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleNavigation(msg) {
		return m, nil
	}

	var err error
	switch {
	case key.Matches(msg, m.keys.move):
		if n, item, ok := m.focusedItem(); ok && n != m.manager.NewKey() {
			err = m.manager.MoveToNewList(item, n)
		}

	case key.Matches(msg, m.keys.sendLeft), key.Matches(msg, m.keys.sendRight):
		side := models.SideLeft
		if key.Matches(msg, m.keys.sendRight) {
			side = models.SideRight
		}
		if n, item, ok := m.focusedItem(); ok && n == m.manager.NewKey() {
			err = m.manager.MoveFromNewList(item, side)
		}

	case key.Matches(msg, m.keys.update):
		err = m.manager.CommitMerge()
		m.focus = 0

	case key.Matches(msg, m.keys.cancel):
		err = m.manager.CancelMerge()
		m.focus = 0
	}

	if err != nil {
		m.logger.Error("merge operation failed", "error", err)
		m.notice = err.Error()
	} else {
		m.notice = ""
	}
	m.clampCursors()
	return m, nil
}

// handleNavigation moves the focus and cursor. Reports whether msg was a navigation key.
func (m *Model) handleNavigation(msg tea.KeyMsg) bool {
	cols := m.columns()
	switch {
	case key.Matches(msg, m.keys.left):
		if m.focus > 0 {
			m.focus--
		}
	case key.Matches(msg, m.keys.right):
		if m.focus < len(cols)-1 {
			m.focus++
		}
	case key.Matches(msg, m.keys.up):
		if n, ok := m.focusedList(); ok && m.cursors[n] > 0 {
			m.cursors[n]--
		}
	case key.Matches(msg, m.keys.down):
		if n, ok := m.focusedList(); ok {
			if m.cursors[n] < len(m.manager.Lists()[n])-1 {
				m.cursors[n]++
			}
		}
	default:
		return false
	}
	return true
}

// columns returns the list numbers shown, left to right.
func (m *Model) columns() []int {
	if m.manager.Merging() {
		sel := m.manager.Selection()
		return []int{sel[0], m.manager.NewKey(), sel[1]}
	}
	return m.manager.Lists().Keys()
}

func (m *Model) focusedList() (int, bool) {
	cols := m.columns()
	if len(cols) == 0 {
		return 0, false
	}
	if m.focus >= len(cols) {
		m.focus = len(cols) - 1
	}
	return cols[m.focus], true
}

func (m *Model) focusedItem() (int, models.Item, bool) {
	n, ok := m.focusedList()
	if !ok {
		return 0, models.Item{}, false
	}
	items := m.manager.Lists()[n]
	idx := m.cursors[n]
	if idx < 0 || idx >= len(items) {
		return n, models.Item{}, false
	}
	return n, items[idx], true
}

func (m *Model) clampCursors() {
	current := m.manager.Lists()
	for n, idx := range m.cursors {
		items, ok := current[n]
		switch {
		case !ok:
			delete(m.cursors, n)
		case idx >= len(items):
			m.cursors[n] = max(0, len(items)-1)
		}
	}
}

func (m *Model) reload() tea.Cmd {
	m.status = StatusLoading
	m.notice = ""
	return tea.Batch(m.spinner.Tick, m.fetchLists())
}

func (m *Model) fetchLists() tea.Cmd {
	return func() tea.Msg {
		records, err := m.source.FetchLists(m.ctx)
		return listsFetchedMsg(records, err)
	}
}

func selectionError(err error) string {
	if errors.Is(err, shared.ErrSelection) {
		return selectionNotice
	}
	return err.Error()
}
