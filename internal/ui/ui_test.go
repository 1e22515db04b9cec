package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/listmerge/internal/lists"
	"github.com/desertthunder/listmerge/internal/models"
	"github.com/desertthunder/listmerge/internal/shared"
	tu "github.com/desertthunder/listmerge/internal/testing"
)

func sampleRecords() []models.Record {
	return []models.Record{
		tu.Record("1", "Apples", 1),
		tu.Record("2", "Bread", 1),
		tu.Record("3", "Coffee", 2),
		tu.Record("4", "Dates", 3),
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

// loadedModel returns a ready model over sampleRecords.
func loadedModel(t *testing.T) *Model {
	t.Helper()

	src := tu.NewMockSource(sampleRecords()...)
	m := NewModel(context.Background(), src, lists.NewManager(nil), Options{})
	press(m, m.fetchLists()())

	if m.Status() != StatusReady {
		t.Fatalf("expected StatusReady, got %v (err: %v)", m.Status(), m.err)
	}
	return m
}

func TestModel(t *testing.T) {
	t.Run("NewModel", func(t *testing.T) {
		m := NewModel(context.Background(), tu.NewMockSource(), nil, Options{})

		if m.Status() != StatusLoading {
			t.Errorf("expected StatusLoading, got %v", m.Status())
		}
		if m.Manager() == nil {
			t.Error("expected a manager to be created")
		}
		if m.colWidth != defaultColumnWidth {
			t.Errorf("expected default column width, got %d", m.colWidth)
		}
		if m.Init() == nil {
			t.Error("expected Init to return a command")
		}
		if !strings.Contains(m.View(), "Loading lists from mock") {
			t.Errorf("unexpected loading view: %s", m.View())
		}
	})

	t.Run("Fetch Success", func(t *testing.T) {
		m := loadedModel(t)

		got := m.Manager().Lists()
		if len(got) != 3 || len(got[1]) != 2 {
			t.Errorf("unexpected lists: %v", got)
		}

		view := m.View()
		for _, want := range []string{"[ ] List 1", "[ ] List 2", "[ ] List 3", "Apples", "2 items"} {
			if !strings.Contains(view, want) {
				t.Errorf("view missing %q:\n%s", want, view)
			}
		}
	})

	t.Run("Fetch Failure", func(t *testing.T) {
		src := &tu.MockSource{Results: []tu.MockResult{
			{Err: shared.ErrAPIRequest},
			{Records: sampleRecords()},
		}}
		m := NewModel(context.Background(), src, nil, Options{})
		press(m, m.fetchLists()())

		if m.Status() != StatusFailed {
			t.Fatalf("expected StatusFailed, got %v", m.Status())
		}
		if !strings.Contains(m.View(), loadFailedNotice) {
			t.Errorf("expected failure notice, got:\n%s", m.View())
		}

		cmd := press(m, runes("r"))
		if m.Status() != StatusLoading {
			t.Errorf("expected retry to set StatusLoading, got %v", m.Status())
		}
		if cmd == nil {
			t.Fatal("expected retry command")
		}

		press(m, m.fetchLists()())
		if m.Status() != StatusReady {
			t.Errorf("expected StatusReady after retry, got %v", m.Status())
		}
		if src.Calls() != 2 {
			t.Errorf("expected 2 fetches, got %d", src.Calls())
		}
	})

	t.Run("Malformed Records Fail The Load", func(t *testing.T) {
		bad := models.Record{ID: "9", Name: "orphan"}
		m := NewModel(context.Background(), tu.NewMockSource(bad), nil, Options{})
		press(m, m.fetchLists()())

		if m.Status() != StatusFailed {
			t.Fatalf("expected StatusFailed, got %v", m.Status())
		}
		if !errors.Is(m.err, shared.ErrMalformedData) {
			t.Errorf("expected ErrMalformedData, got %v", m.err)
		}
	})

	t.Run("Quit", func(t *testing.T) {
		m := loadedModel(t)
		cmd := press(m, runes("q"))

		if cmd == nil {
			t.Fatal("expected quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("expected tea.QuitMsg")
		}
	})

	t.Run("Window Size", func(t *testing.T) {
		m := loadedModel(t)
		press(m, tea.WindowSizeMsg{Width: 40, Height: 20})

		if m.width != 40 || m.height != 20 {
			t.Errorf("expected 40x20, got %dx%d", m.width, m.height)
		}
		if start, end := m.visibleRange(3); start != 0 || end != 1 {
			t.Errorf("expected a single visible column, got %d-%d", start, end)
		}

		press(m, runes("l"), runes("l"))
		if start, end := m.visibleRange(3); start != 2 || end != 3 {
			t.Errorf("expected focused column in view, got %d-%d", start, end)
		}
		if !strings.Contains(m.View(), "lists 3-3 of 3") {
			t.Errorf("expected window indicator:\n%s", m.View())
		}
	})
}

func TestSelection(t *testing.T) {
	t.Run("Toggle", func(t *testing.T) {
		m := loadedModel(t)
		press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})

		if got := m.Manager().Selection(); len(got) != 1 || got[0] != 1 {
			t.Fatalf("expected list 1 selected, got %v", got)
		}
		if !strings.Contains(m.View(), "[x] List 1") {
			t.Errorf("expected selected header:\n%s", m.View())
		}

		press(m, runes(" "))
		if len(m.Manager().Selection()) != 0 {
			t.Errorf("expected toggle to deselect, got %v", m.Manager().Selection())
		}
	})

	t.Run("Third Selection Is Rejected", func(t *testing.T) {
		m := loadedModel(t)
		press(m, runes(" "), runes("l"), runes(" "), runes("l"), runes(" "))

		if got := m.Manager().Selection(); len(got) != 2 {
			t.Errorf("expected two selected lists, got %v", got)
		}
		if m.notice == "" {
			t.Error("expected a notice for the rejected selection")
		}
	})

	t.Run("Create Requires Two Lists", func(t *testing.T) {
		m := loadedModel(t)
		press(m, runes(" "), runes("n"))

		if m.Manager().Merging() {
			t.Error("expected no merge with one selected list")
		}
		if !strings.Contains(m.View(), selectionNotice) {
			t.Errorf("expected selection notice:\n%s", m.View())
		}
	})
}

func TestMerge(t *testing.T) {
	begin := func(t *testing.T) *Model {
		t.Helper()
		m := loadedModel(t)
		press(m, runes(" "), runes("l"), runes(" "), runes("n"))

		if !m.Manager().Merging() {
			t.Fatalf("expected merge to begin, notice: %s", m.notice)
		}
		return m
	}

	t.Run("Begin", func(t *testing.T) {
		m := begin(t)

		if m.Manager().NewKey() != 4 {
			t.Errorf("expected new list 4, got %d", m.Manager().NewKey())
		}
		if cols := m.columns(); len(cols) != 3 || cols[0] != 1 || cols[1] != 4 || cols[2] != 2 {
			t.Errorf("unexpected merge columns: %v", cols)
		}
		view := m.View()
		if !strings.Contains(view, "Merging List 1 and List 2 into List 4") {
			t.Errorf("expected merge title:\n%s", view)
		}
		if !strings.Contains(view, "→ Apples") {
			t.Errorf("expected move hints:\n%s", view)
		}
	})

	t.Run("Move To New List And Back", func(t *testing.T) {
		m := begin(t)
		press(m, tea.KeyMsg{Type: tea.KeyEnter})

		got := m.Manager().Lists()
		if len(got[1]) != 1 || len(got[4]) != 1 || got[4][0].ID != "1" {
			t.Fatalf("expected Apples in the new list, got %v", got)
		}

		press(m, runes("l"), runes("]"))
		got = m.Manager().Lists()
		if len(got[4]) != 0 || len(got[2]) != 2 || got[2][1].ID != "1" {
			t.Errorf("expected Apples sent right, got %v", got)
		}
	})

	t.Run("Send Keys Only Apply To New List", func(t *testing.T) {
		m := begin(t)
		press(m, runes("["))

		if got := m.Manager().Lists(); len(got[1]) != 2 {
			t.Errorf("expected list 1 unchanged, got %v", got[1])
		}
	})

	t.Run("Cancel", func(t *testing.T) {
		m := begin(t)
		press(m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEsc})

		if m.Manager().Merging() {
			t.Error("expected merge to end")
		}
		got := m.Manager().Lists()
		if len(got) != 3 || len(got[1]) != 2 {
			t.Errorf("expected original lists, got %v", got)
		}
	})

	t.Run("Update", func(t *testing.T) {
		m := begin(t)
		press(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("u"))

		if m.Manager().Merging() {
			t.Error("expected merge to end")
		}
		got := m.Manager().Lists()
		if len(got) != 4 || len(got[4]) != 1 {
			t.Errorf("expected committed new list, got %v", got)
		}
		if !strings.Contains(m.View(), "[ ] List 4") {
			t.Errorf("expected new list in idle view:\n%s", m.View())
		}
	})

	t.Run("Reload Key Ignored Once Ready", func(t *testing.T) {
		m := begin(t)
		press(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("u"))
		src := m.source.(*tu.MockSource)
		calls := src.Calls()

		cmd := press(m, runes("r"))
		if cmd != nil {
			t.Error("expected no fetch command in the ready view")
		}
		if m.Status() != StatusReady {
			t.Errorf("expected StatusReady, got %v", m.Status())
		}
		if src.Calls() != calls {
			t.Errorf("expected no refetch, got %d calls", src.Calls())
		}

		got := m.Manager().Lists()
		if len(got[4]) != 1 || got[4][0].ID != "1" {
			t.Errorf("expected committed list 4 to survive, got %v", got)
		}
	})

	t.Run("Cursor Clamps After Move", func(t *testing.T) {
		m := begin(t)
		press(m, runes("j"))
		if m.cursors[1] != 1 {
			t.Fatalf("expected cursor on second item, got %d", m.cursors[1])
		}

		press(m, tea.KeyMsg{Type: tea.KeyEnter})
		if m.cursors[1] != 0 {
			t.Errorf("expected cursor clamped to 0, got %d", m.cursors[1])
		}
	})
}

func TestHelp(t *testing.T) {
	m := loadedModel(t)
	press(m, runes("?"))

	if !m.help.ShowAll {
		t.Fatal("expected full help")
	}
	if !strings.Contains(m.View(), "create a new list") {
		t.Errorf("expected full help in view:\n%s", m.View())
	}
}
