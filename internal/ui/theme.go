package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Medusa theme (CLI + TUI).

const (
	IconBroom    = "🧹"
	IconHat      = "🎩"
	IconDone     = "✅"
	IconCalendar = "📅"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconWeekday  = "🗓️"
	IconWeekend  = "🛋️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// ChoreLabel renders a chore as "[location] name".
func ChoreLabel(location, name string) string {
	return Muted.Render("["+location+"]") + " " + name
}

// DayTypeIcon picks the icon for a stored day type ("weekday"/"weekend").
func DayTypeIcon(dayType string) string {
	if dayType == "weekend" {
		return IconWeekend
	}
	return IconWeekday
}

// Weight renders a hat weight as a short bar, capped at width marks.
func Weight(copies int, width int) string {
	if width <= 0 {
		width = 10
	}
	if copies < 0 {
		copies = 0
	}
	n := copies
	more := ""
	if n > width {
		n = width
		more = "+"
	}
	return Gold.Render(strings.Repeat("■", n)+more) + Muted.Render(fmt.Sprintf(" x%d", copies))
}
