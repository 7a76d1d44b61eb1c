package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileylov/dockyard/dock"
)

// Terminal cells are taller than wide; these factors map cell coordinates
// onto the engine's square canvas units so footprints keep their aspect.
const (
	unitsPerCol = 10.0
	unitsPerRow = 20.0
)

func unitsFromCols(cols int) float64 { return float64(cols) * unitsPerCol }
func unitsFromRows(rows int) float64 { return float64(rows) * unitsPerRow }

// pointerUnits maps a cell to the canvas-unit position of its center.
func pointerUnits(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * unitsPerCol, (float64(y) + 0.5) * unitsPerRow
}

// mouseAdapter translates bubbletea mouse events into engine pointer
// events. The engine never sees terminal coordinates or button semantics,
// only down/move/up in canvas units.
type mouseAdapter struct {
	engine  *dock.Engine
	originY int // first canvas row on screen
	originX int
	active  bool
}

func newMouseAdapter(engine *dock.Engine) *mouseAdapter {
	return &mouseAdapter{engine: engine, originX: 1, originY: 2}
}

// Handle consumes one mouse event. Returns true when the event drove the
// drag machine, false when it was outside the canvas.
func (a *mouseAdapter) Handle(msg tea.MouseMsg) bool {
	px, py := pointerUnits(msg.X-a.originX, msg.Y-a.originY)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
		it, ok := a.engine.ItemAt(dock.Point{X: px, Y: py})
		if !ok {
			return false
		}
		a.active = true
		a.engine.Feed(dock.PointerEvent{Kind: dock.PointerDown, Item: it.ID, X: px, Y: py})
		return true

	case tea.MouseActionMotion:
		if !a.active {
			return false
		}
		a.engine.Feed(dock.PointerEvent{Kind: dock.PointerMove, X: px, Y: py})
		return true

	case tea.MouseActionRelease:
		if !a.active || msg.Button != tea.MouseButtonLeft {
			return false
		}
		a.active = false
		a.engine.Feed(dock.PointerEvent{Kind: dock.PointerMove, X: px, Y: py})
		a.engine.Feed(dock.PointerEvent{Kind: dock.PointerUp})
		return true
	}
	return false
}
