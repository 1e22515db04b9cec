package ui

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultAccent = "#3498DB"
	muted         = "#626262"
)

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title   lipgloss.Style
	ok      lipgloss.Style
	err     lipgloss.Style
	warn    lipgloss.Style
	help    lipgloss.Style
	header  lipgloss.Style
	item    lipgloss.Style
	desc    lipgloss.Style
	cursor  lipgloss.Style
	column  lipgloss.Style
	focused lipgloss.Style
	newList lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title:   NewBold(t).MarginBottom(1),
		ok:      NewBold(s),
		err:     NewBold(e),
		warn:    NewStyle(w),
		help:    NewEm(h),
		header:  NewBold(t),
		item:    lipgloss.NewStyle().Bold(true),
		desc:    NewStyle(h),
		cursor:  lipgloss.NewStyle().Reverse(true),
		column:  NewColumn(h),
		focused: NewColumn(t),
		newList: NewColumn(s),
	}
}

// NewDefaultPalette builds the palette around an accent color.
func NewDefaultPalette(accent string) *Palette {
	if accent == "" {
		accent = defaultAccent
	}
	return NewPalette(accent, "#4CAF50", "#F44336", "#FFA500", muted)
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

func NewColumn(border string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1)
}
