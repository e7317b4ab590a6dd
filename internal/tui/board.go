package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"medusa/internal/engine"
)

// RunBoard opens the interactive board on today's due chores. Completions
// made on the board are written back when the board is closed.
func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newBoardModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(boardModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
