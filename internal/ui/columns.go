package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/desertthunder/listmerge/internal/formatter"
	"github.com/desertthunder/listmerge/internal/lists"
	"github.com/desertthunder/listmerge/internal/models"
	"github.com/dustin/go-humanize"
)

const columnGap = 4 // border + padding

func (m *Model) renderFailed() string {
	var b strings.Builder
	b.WriteString(m.styles.err.Render(loadFailedNotice))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.desc.Render(ansi.Truncate(m.err.Error(), max(m.width, 40), "…")))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("Press r to retry or q to quit."))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderLists() string {
	snap := m.manager.Snapshot()
	cols := m.columns()

	var b strings.Builder
	b.WriteString(m.styles.title.Render(m.title(snap)))
	b.WriteString("\n")

	if len(cols) == 0 {
		b.WriteString(m.styles.desc.Render("No lists to show."))
		b.WriteString("\n")
	} else {
		start, end := m.visibleRange(len(cols))
		rendered := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			rendered = append(rendered, m.renderColumn(snap, cols[i], i == m.focus))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
		b.WriteString("\n")
		if start > 0 || end < len(cols) {
			b.WriteString(m.styles.desc.Render(fmt.Sprintf("lists %d-%d of %d", start+1, end, len(cols))))
			b.WriteString("\n")
		}
	}

	if m.notice != "" {
		b.WriteString(m.styles.warn.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) title(snap lists.Snapshot) string {
	if snap.Merging {
		return fmt.Sprintf("Merging List %d and List %d into List %d", snap.Selection[0], snap.Selection[1], snap.NewKey)
	}
	return fmt.Sprintf("%s lists, %s items", humanize.Comma(int64(len(snap.Lists))), humanize.Comma(int64(snap.Lists.Count())))
}

// visibleRange returns the window of columns that fit the terminal width, keeping the focused column in view.
func (m *Model) visibleRange(n int) (int, int) {
	fit := n
	if m.width > 0 {
		fit = max(1, m.width/(m.colWidth+columnGap))
	}
	if fit >= n {
		return 0, n
	}
	start := max(0, m.focus-fit+1)
	return start, min(n, start+fit)
}

func (m *Model) renderColumn(snap lists.Snapshot, n int, focused bool) string {
	items := snap.Lists[n]
	width := m.colWidth

	var header string
	switch {
	case snap.Merging:
		header = fmt.Sprintf("List %d", n)
	case slices.Contains(snap.Selection, n):
		header = fmt.Sprintf("[x] List %d", n)
	default:
		header = fmt.Sprintf("[ ] List %d", n)
	}

	var b strings.Builder
	b.WriteString(m.styles.header.Render(ansi.Truncate(header, width, "…")))
	b.WriteString("\n")
	b.WriteString(m.styles.desc.Render(formatter.ItemCount(len(items))))
	b.WriteString("\n\n")

	if len(items) == 0 {
		b.WriteString(m.styles.desc.Render("_empty_"))
	}

	arrows := m.arrows(snap, n)
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderItem(item, arrows, focused && i == m.cursors[n], width))
	}

	style := m.styles.column
	switch {
	case snap.Merging && n == snap.NewKey:
		style = m.styles.newList
	case focused:
		style = m.styles.focused
	}
	return style.Width(width + 2).Render(b.String())
}

func (m *Model) renderItem(item models.Item, arrows string, highlighted bool, width int) string {
	name := item.Name
	if arrows != "" {
		name = arrows + " " + name
	}
	name = ansi.Truncate(name, width, "…")
	if highlighted {
		name = m.styles.cursor.Render(name)
	} else {
		name = m.styles.item.Render(name)
	}
	if item.Description == "" {
		return name
	}
	return name + "\n" + m.styles.desc.Render(ansi.Truncate(item.Description, width, "…"))
}

// arrows returns the move hints for items of list n during a merge.
func (m *Model) arrows(snap lists.Snapshot, n int) string {
	if !snap.Merging {
		return ""
	}
	switch n {
	case snap.Selection[0]:
		return "→"
	case snap.Selection[1]:
		return "←"
	case snap.NewKey:
		return "← →"
	}
	return ""
}
