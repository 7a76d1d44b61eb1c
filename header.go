package main

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/dockyard/dock"
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#333", Dark: "#FFF"}).
			Height(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			Background(subtle)

	buttonStyle = lipgloss.NewStyle().
			Background(highlight).
			Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
			Margin(0, 1).
			Padding(0, 1)

	buttonActiveStyle = buttonStyle.
				Background(special).
				Bold(true)
)

// header is the toolbar: the title plus zone-marked buttons mirroring the
// engine's global toggles.
type header struct {
	id     string
	width  int
	title  string
	engine *dock.Engine
}

func newHeader(engine *dock.Engine, title string) *header {
	return &header{
		id:     zone.NewPrefix(),
		title:  title,
		engine: engine,
	}
}

type headerButton struct {
	label  string
	active bool
	press  func()
}

func (h *header) buttons() []headerButton {
	e := h.engine
	out := []headerButton{
		{label: "Snap", active: e.SnapToGrid(), press: func() { e.ToggleSnapToGrid() }},
		{label: "Grid", active: e.ShowGrid(), press: func() { e.ToggleShowGrid() }},
	}
	for _, sc := range []dock.SizeClass{dock.SizeSmall, dock.SizeMedium, dock.SizeLarge, dock.SizeXLarge} {
		sc := sc
		out = append(out, headerButton{
			label:  string(sc),
			active: e.GlobalSizeClass() == sc,
			press:  func() { e.SetGlobalSizeClass(sc) },
		})
	}
	return out
}

// Click consumes a button click. Returns true when a toolbar button
// handled the event so the canvas never sees it.
func (h *header) Click(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return false
	}
	for i, b := range h.buttons() {
		if zone.Get(h.buttonID(i)).InBounds(msg) {
			b.press()
			return true
		}
	}
	return false
}

func (h *header) View() string {
	var buttonViews []string
	for i, b := range h.buttons() {
		style := buttonStyle
		if b.active {
			style = buttonActiveStyle
		}
		buttonViews = append(buttonViews, zone.Mark(h.buttonID(i), style.Render(b.label)))
	}
	buttonsSection := lipgloss.JoinHorizontal(lipgloss.Center, buttonViews...)

	title := titleStyle.Render(h.title)
	spacingWidth := h.width - lipgloss.Width(title) - lipgloss.Width(buttonsSection)
	if spacingWidth < 0 {
		spacingWidth = 0
	}
	spacing := lipgloss.NewStyle().Background(subtle).Width(spacingWidth).Render("")
	content := lipgloss.JoinHorizontal(lipgloss.Center, title, spacing, buttonsSection)
	return headerStyle.Width(h.width).Render(content)
}

func (h *header) buttonID(index int) string {
	return h.id + "button_" + strconv.Itoa(index)
}
