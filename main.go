package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/dockyard/dock"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(highlight)
)

type keyMap struct {
	Snap   key.Binding
	Grid   key.Binding
	Size   key.Binding
	Copy   key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Snap:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "snap")),
	Grid:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid")),
	Size:   key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "size")),
	Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy layout")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Snap, k.Grid, k.Size, k.Copy, k.Cancel, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var sizeKeys = map[string]dock.SizeClass{
	"1": dock.SizeSmall,
	"2": dock.SizeMedium,
	"3": dock.SizeLarge,
	"4": dock.SizeXLarge,
}

type model struct {
	engine *dock.Engine
	header *header
	footer *footer
	mouse  *mouseAdapter

	width  int
	height int
	status string
}

func newModel(engine *dock.Engine) *model {
	f := newFooter(engine)
	// The footer's revision counter is the rendering layer's subscription
	// to engine state changes.
	engine.OnChange(f.bump)
	return &model{
		engine: engine,
		header: newHeader(engine, "Dockyard"),
		footer: f,
		mouse:  newMouseAdapter(engine),
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.width = msg.Width - 2
		m.footer.width = msg.Width - 2
		rows := m.canvasRows()
		m.mouse.originY = 2 // frame border + header row
		m.engine.SetCanvasSize(unitsFromCols(m.width-2), unitsFromRows(rows))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Snap):
			if m.engine.ToggleSnapToGrid() {
				m.status = "snap to grid on"
			} else {
				m.status = "snap to grid off"
			}
		case key.Matches(msg, keys.Grid):
			if m.engine.ToggleShowGrid() {
				m.status = "grid overlay on"
			} else {
				m.status = "grid overlay off"
			}
		case key.Matches(msg, keys.Size):
			if sc, ok := sizeKeys[msg.String()]; ok {
				m.engine.SetGlobalSizeClass(sc)
				m.status = fmt.Sprintf("free items sized %s", sc)
			}
		case key.Matches(msg, keys.Cancel):
			m.engine.Feed(dock.PointerEvent{Kind: dock.PointerCancel})
			m.status = "drag cancelled"
		case key.Matches(msg, keys.Copy):
			if err := clipboard.WriteAll(layoutSummary(m.engine)); err != nil {
				m.status = fmt.Sprintf("couldn't write to clipboard: %v", err)
			} else {
				m.status = "layout copied to clipboard"
			}
		}

	case tea.MouseMsg:
		// Toolbar clicks only win while no drag is active, so a release
		// over a button still finishes the drag instead of vanishing.
		if _, dragging := m.engine.DraggingItem(); !dragging && m.header.Click(msg) {
			break
		}
		m.mouse.Handle(msg)
	}
	return m, nil
}

func (m *model) canvasRows() int {
	rows := m.height - 4 // frame borders, header, footer
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	canvas := renderCanvas(m.engine, m.width-2, m.canvasRows())
	m.footer.status = m.status
	return zone.Scan(frameStyle.
		MaxWidth(m.width).
		MaxHeight(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Top,
			m.header.View(),
			canvas,
			m.footer.View(),
		)))
}

// layoutSummary flattens the current layout into a plain-text snapshot,
// pasted wherever the user wants to share or file it.
func layoutSummary(e *dock.Engine) string {
	out := "dockyard layout\n"
	for _, z := range e.ZonesByStack() {
		out += fmt.Sprintf("zone %s (%s): ", z.ID, z.Label)
		if len(z.Members) == 0 {
			out += "empty\n"
			continue
		}
		for i, mid := range z.Members {
			if i > 0 {
				out += ", "
			}
			out += mid
		}
		out += "\n"
	}
	for _, it := range e.Items() {
		if !it.Docked {
			out += fmt.Sprintf("free %s (%s) at %.0f,%.0f\n", it.ID, it.Size, it.Position.X, it.Position.Y)
		}
	}
	return out
}

func main() {
	logger := log.New(io.Discard)
	if path := os.Getenv("DOCKYARD_DEBUG"); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			logger = log.NewWithOptions(f, log.Options{
				Level:           log.DebugLevel,
				ReportTimestamp: true,
			})
		}
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Println("bad config:", err)
		os.Exit(1)
	}

	// One global zone manager so components don't have to pass it around.
	zone.NewGlobal()

	engine := dock.New(
		dock.WithLogger(logger),
		dock.WithGridSize(cfg.GridSize),
		dock.WithSnapToGrid(cfg.SnapToGrid),
	)
	cfg.apply(engine)

	p := tea.NewProgram(newModel(engine), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Println("error running program:", err)
		os.Exit(1)
	}
}
