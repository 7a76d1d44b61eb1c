// Package dock is the spatial dock/drag engine: it owns the draggable
// items, the dock zones they can land in, the single active drag session,
// and the stacking order of both. All state lives on one Engine value so
// tests and hosts construct isolated instances; the engine never renders,
// it only consumes pointer events and exposes snapshot reads.
package dock

import (
	"io"

	"github.com/charmbracelet/log"
)

// baseZOrder sits above the host's static UI layer so a freshly raised
// item always paints over zone chrome.
const baseZOrder = 100

// Engine is the owned state container for one canvas. All mutation happens
// synchronously through its methods on a single goroutine; snapshot reads
// return copies.
type Engine struct {
	log *log.Logger

	items     map[string]*Item
	itemOrder []string

	zones     map[string]*Zone
	zoneOrder []string // registration order, drives resolver determinism
	stack     []string // paint order, bottom first

	topZ       int
	grid       GridSnapper
	showGrid   bool
	globalSize SizeClass
	canvas     Size

	drag      *dragSession
	listeners []func()
}

// Option customizes a new Engine.
type Option func(*Engine)

// WithLogger routes engine diagnostics to l instead of discarding them.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithGridSize overrides the snap cell size.
func WithGridSize(cell float64) Option {
	return func(e *Engine) {
		if cell > 0 {
			e.grid.CellSize = cell
		}
	}
}

// WithSnapToGrid sets the initial snap toggle.
func WithSnapToGrid(on bool) Option {
	return func(e *Engine) { e.grid.Enabled = on }
}

// WithCanvasSize sets the canvas extent used to clamp restored positions.
func WithCanvasSize(w, h float64) Option {
	return func(e *Engine) { e.canvas = Size{Width: w, Height: h} }
}

// New constructs an empty engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:        log.New(io.Discard),
		items:      make(map[string]*Item),
		zones:      make(map[string]*Zone),
		topZ:       baseZOrder,
		grid:       GridSnapper{CellSize: DefaultGridSize, Enabled: true},
		globalSize: SizeMedium,
		canvas:     Size{Width: 800, Height: 600},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// OnChange registers a listener invoked after every observable state
// change. The rendering layer subscribes here instead of the engine
// reaching into rendering code.
func (e *Engine) OnChange(fn func()) {
	if fn != nil {
		e.listeners = append(e.listeners, fn)
	}
}

func (e *Engine) notify() {
	for _, fn := range e.listeners {
		fn()
	}
}

// SetCanvasSize updates the canvas extent when the host viewport changes.
func (e *Engine) SetCanvasSize(w, h float64) {
	s := Size{Width: w, Height: h}
	if e.canvas == s {
		return
	}
	e.canvas = s
	e.notify()
}

// CanvasSize returns the current canvas extent.
func (e *Engine) CanvasSize() Size { return e.canvas }

// ToggleSnapToGrid flips position quantization and returns the new state.
func (e *Engine) ToggleSnapToGrid() bool {
	e.grid.Enabled = !e.grid.Enabled
	e.notify()
	return e.grid.Enabled
}

// SnapToGrid reports whether snapping is on.
func (e *Engine) SnapToGrid() bool { return e.grid.Enabled }

// GridSize returns the snap cell size.
func (e *Engine) GridSize() float64 { return e.grid.CellSize }

// ToggleShowGrid flips the grid overlay flag and returns the new state.
// The flag is pure UI state; the engine only stores it.
func (e *Engine) ToggleShowGrid() bool {
	e.showGrid = !e.showGrid
	e.notify()
	return e.showGrid
}

// ShowGrid reports whether the grid overlay flag is set.
func (e *Engine) ShowGrid() bool { return e.showGrid }

// SetGlobalSizeClass changes the size class applied to every currently
// undocked item; docked items keep the size their zone accepted.
func (e *Engine) SetGlobalSizeClass(s SizeClass) {
	if !s.Valid() || s == e.globalSize {
		return
	}
	e.globalSize = s
	for _, id := range e.itemOrder {
		if it := e.items[id]; !it.Docked {
			it.Size = s
		}
	}
	e.notify()
}

// GlobalSizeClass returns the current global size class.
func (e *Engine) GlobalSizeClass() SizeClass { return e.globalSize }
