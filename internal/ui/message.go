package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/listmerge/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgListsFetched MsgKind = iota
)

type listsFetched struct {
	records []models.Record
	err     error
}

// listsFetchedMsg is the constructor for [MsgListsFetched]
func listsFetchedMsg(records []models.Record, err error) Msg {
	return Msg{kind: MsgListsFetched, data: listsFetched{records, err}}
}
