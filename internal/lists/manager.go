package lists

import (
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/listmerge/internal/models"
	"github.com/desertthunder/listmerge/internal/shared"
)

// maxSelected is the number of lists a merge session combines.
const maxSelected = 2

// Snapshot is an immutable copy of the manager state handed to renderers.
type Snapshot struct {
	Lists     models.ListCollection
	Selection []int
	Merging   bool
	NewKey    int // 0 outside a merge session
}

// Manager holds the list collection, the selection and the merge session.
type Manager struct {
	logger     *log.Logger
	lists      models.ListCollection
	baseline   models.ListCollection
	selection  []int
	merging    bool
	newKey     int
	checkpoint models.ListCollection // nil when empty
	sessionID  string
}

// NewManager creates an empty Manager. A nil logger discards output.
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		logger:   logger,
		lists:    models.ListCollection{},
		baseline: models.ListCollection{},
	}
}

// Ingest groups records by list number, preserving input order within each list.
//
// The result replaces the collection and becomes the baseline. Any selection or merge session in progress is dropped.
func (m *Manager) Ingest(records []models.Record) (models.ListCollection, error) {
	grouped := models.ListCollection{}
	seen := make(map[models.ItemID]int, len(records))

	for i, r := range records {
		if r.ListNumber == nil {
			return nil, fmt.Errorf("%w: record %d has no list number", shared.ErrMalformedData, i)
		}
		if r.ID == "" {
			return nil, fmt.Errorf("%w: record %d has no id", shared.ErrMalformedData, i)
		}
		if prev, ok := seen[r.ID]; ok {
			return nil, fmt.Errorf("%w: record %d repeats id %s from record %d", shared.ErrMalformedData, i, r.ID, prev)
		}
		seen[r.ID] = i

		n := *r.ListNumber
		grouped[n] = append(grouped[n], r.Item())
	}

	m.lists = grouped
	m.baseline = grouped.Clone()
	m.resetSession()

	m.logger.Debug("ingested records", "records", len(records), "lists", len(grouped))
	return grouped.Clone(), nil
}

// Select adds (selected=true) or removes a list number from the selection.
//
// Selecting an already selected list or deselecting an absent one is a no-op.
func (m *Manager) Select(n int, selected bool) error {
	if m.merging {
		return fmt.Errorf("%w: selection is locked during a merge", shared.ErrInvalidState)
	}

	idx := slices.Index(m.selection, n)
	if !selected {
		if idx >= 0 {
			m.selection = slices.Delete(m.selection, idx, idx+1)
		}
		return nil
	}

	if idx >= 0 {
		return nil
	}
	if !m.lists.Contains(n) {
		return fmt.Errorf("%w: list %d does not exist", shared.ErrSelection, n)
	}
	if len(m.selection) >= maxSelected {
		return fmt.Errorf("%w: lists %v are already selected", shared.ErrSelection, m.selection)
	}

	m.selection = append(m.selection, n)
	return nil
}

// BeginMerge starts a merge session over the two selected lists and returns the new list's key.
func (m *Manager) BeginMerge() (int, error) {
	if m.merging {
		return 0, fmt.Errorf("%w: merge already in progress", shared.ErrInvalidState)
	}
	if len(m.selection) != maxSelected {
		return 0, fmt.Errorf("%w: %d selected", shared.ErrSelection, len(m.selection))
	}
	maxKey := m.lists.MaxKey()
	if maxKey == math.MaxInt {
		return 0, fmt.Errorf("%w: list %d leaves no room for a new list number", shared.ErrInvalidState, maxKey)
	}

	m.checkpoint = m.lists.Clone()
	m.newKey = maxKey + 1
	m.lists[m.newKey] = []models.Item{}
	m.merging = true
	m.sessionID = shared.GenerateID()

	m.logger.Debug("merge started", "session", m.sessionID, "left", m.selection[0], "right", m.selection[1], "new", m.newKey)
	return m.newKey, nil
}

// MoveItem moves item from the source list to the end of the target list.
//
// Both lists must belong to the session: one of the selected lists or the new list.
// The item is matched by id. It is never appended to a list that already holds it, so
// repeating a move is harmless.
func (m *Manager) MoveItem(item models.Item, source, target int) error {
	if !m.merging {
		return fmt.Errorf("%w: no merge in progress", shared.ErrInvalidState)
	}
	if !m.inSession(source) {
		return fmt.Errorf("%w: %w: source %d", shared.ErrInvalidState, shared.ErrUndefinedList, source)
	}
	if !m.inSession(target) {
		return fmt.Errorf("%w: %w: target %d", shared.ErrInvalidState, shared.ErrUndefinedList, target)
	}
	if source == target {
		return nil
	}

	from := slices.DeleteFunc(slices.Clone(m.lists[source]), func(it models.Item) bool {
		return it.ID == item.ID
	})
	to := m.lists[target]
	if models.IndexOf(to, item.ID) < 0 {
		to = append(slices.Clone(to), item)
	}

	m.lists[source] = from
	m.lists[target] = to

	m.logger.Debug("moved item", "session", m.sessionID, "item", item.ID, "from", source, "to", target)
	return nil
}

// MoveToNewList moves item from source into the session's new list.
func (m *Manager) MoveToNewList(item models.Item, source int) error {
	if !m.merging {
		return fmt.Errorf("%w: no merge in progress", shared.ErrInvalidState)
	}
	return m.MoveItem(item, source, m.newKey)
}

// MoveFromNewList returns item from the new list to the first (left) or second (right) selected list.
func (m *Manager) MoveFromNewList(item models.Item, side models.Side) error {
	if !m.merging {
		return fmt.Errorf("%w: no merge in progress", shared.ErrInvalidState)
	}

	var target int
	switch side {
	case models.SideLeft:
		target = m.selection[0]
	case models.SideRight:
		target = m.selection[1]
	default:
		return fmt.Errorf("%w: %v", shared.ErrInvalidArgument, side)
	}
	return m.MoveItem(item, m.newKey, target)
}

// CancelMerge discards the session and restores the collection to its state before BeginMerge.
//
// Without a checkpoint the ingest-time baseline is restored instead.
func (m *Manager) CancelMerge() error {
	if !m.merging {
		return fmt.Errorf("%w: no merge in progress", shared.ErrInvalidState)
	}

	if m.checkpoint != nil {
		m.lists = m.checkpoint
		m.checkpoint = nil
	} else {
		m.lists = m.baseline.Clone()
	}

	m.logger.Debug("merge cancelled", "session", m.sessionID)
	m.resetSession()
	return nil
}

// CommitMerge ends the session, keeping the new list and every move made during it.
func (m *Manager) CommitMerge() error {
	if !m.merging {
		return fmt.Errorf("%w: no merge in progress", shared.ErrInvalidState)
	}

	m.logger.Debug("merge committed", "session", m.sessionID, "list", m.newKey, "items", len(m.lists[m.newKey]))
	m.resetSession()
	return nil
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	return Snapshot{
		Lists:     m.lists.Clone(),
		Selection: m.Selection(),
		Merging:   m.merging,
		NewKey:    m.newKey,
	}
}

// Lists returns a copy of the current collection.
func (m *Manager) Lists() models.ListCollection { return m.lists.Clone() }

// Selection returns the selected list numbers in selection order.
func (m *Manager) Selection() []int { return slices.Clone(m.selection) }

// Selected reports whether list n is selected.
func (m *Manager) Selected(n int) bool { return slices.Contains(m.selection, n) }

// Merging reports whether a merge session is in progress.
func (m *Manager) Merging() bool { return m.merging }

// NewKey returns the new list's key, or 0 outside a merge session.
func (m *Manager) NewKey() int { return m.newKey }

// SessionID identifies the current or most recent merge session in logs.
func (m *Manager) SessionID() string { return m.sessionID }

func (m *Manager) inSession(n int) bool {
	return n == m.newKey || slices.Contains(m.selection, n)
}

func (m *Manager) resetSession() {
	m.merging = false
	m.newKey = 0
	m.checkpoint = nil
	m.selection = nil
}
