package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"medusa/internal/chore"
	"medusa/internal/engine"
	"medusa/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	chores []chore.Chore
	list   *engine.ListResult

	selected int
	picked   int // index into list.Due, -1 when nothing picked
	dirty    bool

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	chores []chore.Chore
	err    error
}

type savedMsg struct {
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		picked:  -1,
		loading: true,
		lastLog: "Loading chores…",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		chores, err := m.svc.Snapshot(m.ctx)
		return loadedMsg{chores: chores, err: err}
	}
}

func (m boardModel) saveCmd() tea.Cmd {
	chores := append([]chore.Chore(nil), m.chores...)
	return func() tea.Msg {
		return savedMsg{err: m.svc.Commit(m.ctx, chores)}
	}
}

// refresh recomputes the due list after the chore slice changed.
func (m *boardModel) refresh() {
	list, err := engine.Due(m.chores, m.svc.Today())
	if err != nil {
		m.err = err
		m.lastLog = "Invalid chore data: " + err.Error()
		return
	}
	m.list = list
	m.picked = -1
	if m.selected >= len(list.Due) {
		m.selected = len(list.Due) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, tea.Quit
		}
		m.chores = msg.chores
		m.dirty = false
		m.refresh()
		if m.err != nil {
			return m, tea.Quit
		}
		m.lastLog = fmt.Sprintf("Loaded %d chores, %d due.", len(m.chores), len(m.list.Due))
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.lastLog = "Save failed: " + msg.err.Error()
		}
		return m, tea.Quit
	case tea.KeyMsg:
		if m.loading || m.list == nil {
			if msg.String() == "ctrl+c" || msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.dirty {
				m.lastLog = "Saving…"
				return m, m.saveCmd()
			}
			return m, tea.Quit
		case "r":
			if m.dirty {
				m.lastLog = "Unsaved completions; press q to save and quit."
				return m, nil
			}
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.list.Due)-1 {
				m.selected++
			}
			return m, nil
		case "p":
			return m.pick(), nil
		case "c", " ":
			return m.complete(), nil
		}
	}
	return m, nil
}

func (m boardModel) pick() boardModel {
	res, err := engine.PickFrom(m.chores, m.svc.Today(), m.svc.Source())
	if errors.Is(err, chore.ErrNoEligibleChores) {
		m.lastLog = "Nothing is due. Enjoy the day off."
		return m
	}
	if err != nil {
		m.lastLog = "Pick failed: " + err.Error()
		return m
	}
	m.picked = res.Index
	m.selected = res.Index
	m.lastLog = fmt.Sprintf("Chore picked: %s (%d of %d in the hat)", res.Chore.Key(), res.Copies, res.HatSize)
	return m
}

func (m boardModel) complete() boardModel {
	if len(m.list.Due) == 0 {
		m.lastLog = "Nothing to complete."
		return m
	}
	target := m.list.Due[m.selected].Chore
	// The board works on its own copy; the file is written on quit.
	chores := append([]chore.Chore(nil), m.chores...)
	if _, err := chore.Complete(chores, target.Name, target.Location, m.svc.Now()); err != nil {
		m.lastLog = "Complete failed: " + err.Error()
		return m
	}
	m.chores = chores
	m.dirty = true
	m.refresh()
	m.lastLog = fmt.Sprintf("Completed %s.", target.Key())
	return m
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n"
	}
	return m.renderHeader() + "\n\n" + m.renderMain() + "\n" + m.renderFooter()
}

func (m boardModel) renderHeader() string {
	if m.list == nil {
		return ui.Heading(ui.IconBroom, "Medusa — loading…")
	}
	day := m.list.DayType.String()
	return ui.Heading(ui.IconBroom, "Medusa") + " " +
		ui.Muted.Render(fmt.Sprintf("| %s %s %s | %d due", m.list.AsOf, ui.DayTypeIcon(day), day, len(m.list.Due)))
}

func (m boardModel) renderMain() string {
	if m.loading || m.list == nil {
		return "Loading…"
	}
	if len(m.list.Due) == 0 {
		return ui.Good.Render("(nothing due today)")
	}

	out := []string{ui.H2.Render("Open chores")}
	for i, d := range m.list.Due {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "   "
		if i == m.picked {
			mark = ui.IconHat + " "
		}
		label := ui.ChoreLabel(d.Chore.Location, d.Chore.Name)
		if i == m.selected {
			label = ui.SelectedRow.Render(d.Chore.Key())
		}
		line := fmt.Sprintf("%s%s%s %s %s", cursor, mark, ui.DayTypeIcon(d.Chore.Type.String()), padRight(label, 32), ui.Weight(d.Copies, 10))
		out = append(out, line)
		if i == m.selected && d.Chore.Description != "" {
			out = append(out, "      "+ui.Muted.Render(d.Chore.Description))
		}
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	keys := ui.Muted.Render("↑/↓ j/k move · c complete · p pick · r reload · q quit")
	if m.dirty {
		keys += " " + ui.Warn.Render("(unsaved)")
	}
	return "\n" + m.lastLog + "\n" + keys
}

func padRight(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
