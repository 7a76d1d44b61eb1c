package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileylov/dockyard/dock"
)

var (
	footerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"}).
			Height(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(special).
			Background(subtle)
)

// footer shows the key help, the latest status line, and the engine
// revision counter fed by the change subscription.
type footer struct {
	width  int
	engine *dock.Engine
	help   help.Model
	status string
	rev    int
}

func newFooter(engine *dock.Engine) *footer {
	return &footer{
		engine: engine,
		help:   help.New(),
	}
}

// bump is the engine change listener.
func (f *footer) bump() { f.rev++ }

func (f *footer) View() string {
	left := f.help.ShortHelpView(keys.ShortHelp())

	state := ""
	if id, ok := f.engine.DraggingItem(); ok {
		state = "dragging " + id
		if hz := f.engine.HoverZone(); hz != "" {
			state += " → " + hz
		}
	} else if f.status != "" {
		state = f.status
	}
	right := statusStyle.Render(fmt.Sprintf(" %s  rev %d", state, f.rev))

	spacing := f.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 0 {
		spacing = 0
	}
	pad := lipgloss.NewStyle().Background(subtle).Width(spacing).Render("")
	return footerStyle.Width(f.width).Render(lipgloss.JoinHorizontal(lipgloss.Center, left, pad, right))
}
