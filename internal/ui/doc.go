// Package ui implements the interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI walks through the list merge workflow:
//  1. [StatusLoading] : spinner while the data source is fetched
//  2. [StatusFailed] : load failure with a retry key
//  3. [StatusReady] : every list as a column with a selection checkbox; "n" starts a merge
//     of the two selected lists
//  4. While merging: three columns (left source, new list, right source). Items move into
//     the new list from either side and back out with "[" / "]". "u" keeps the result,
//     "esc" discards it.
//
// The [Model] owns a [lists.Manager] and re-renders from its snapshot after every key press.
// The fetch is the only asynchronous step; it runs as a [tea.Cmd] and reports back through the Msg union type.
//
// Keyboard navigation uses vim-style bindings (h/j/k/l) with contextual help displayed via charmbracelet/bubbles/help.
package ui
