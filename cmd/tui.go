package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/listmerge/internal/shared"
	"github.com/desertthunder/listmerge/internal/ui"
	"github.com/urfave/cli/v3"
)

const defaultTUILog = "./tmp/listmerge-tui.log"

// TUI launches the interactive terminal UI for merging lists.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.source == nil {
		return fmt.Errorf("%w: list source not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	logPath := r.config.Log.File
	if logPath == "" {
		logPath = defaultTUILog
	}
	fileLogger, err := shared.NewFileLogger(logPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	fileLogger.SetLevel(r.logger.GetLevel())
	r.SetLogger(shared.WithLogger(fileLogger, "session", shared.GenerateID()[:8]))

	model := ui.NewModel(ctx, r.source, r.manager, ui.Options{
		ColumnWidth: r.config.UI.ColumnWidth,
		Accent:      r.config.UI.Accent,
		Logger:      r.logger,
	})
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
