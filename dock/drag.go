package dock

import "github.com/google/uuid"

// PointerKind discriminates the pointer events the engine consumes.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

// PointerEvent is one discrete input event in canvas units. Item is the
// grabbed item id and only meaningful on PointerDown; coordinates are
// ignored on PointerCancel.
type PointerEvent struct {
	Kind PointerKind
	Item string
	X    float64
	Y    float64
}

// dragSession tracks the single active drag. At most one exists at a time;
// pointer semantics make a second concurrent session impossible.
type dragSession struct {
	id        string
	itemID    string
	offset    Point // pointer minus item top-left, captured at press
	startPos  Point
	wasDocked bool
	fromZone  string
	fromIndex int
	hover     string
}

// Feed drives the drag state machine with one pointer event. All mutation
// is synchronous; the caller's event loop provides ordering.
func (e *Engine) Feed(ev PointerEvent) {
	switch ev.Kind {
	case PointerDown:
		e.pointerDown(ev)
	case PointerMove:
		e.pointerMove(ev)
	case PointerUp:
		e.pointerUp()
	case PointerCancel:
		e.CancelDrag()
	}
}

func (e *Engine) pointerDown(ev PointerEvent) {
	it, ok := e.items[ev.Item]
	if !ok {
		// Pointer events race with unmount; an unknown target is routine.
		e.log.Warn("drag ignored: unknown item", "item", ev.Item)
		return
	}
	if e.drag != nil {
		// A press before the previous release targets a new session; the
		// prior item stays free wherever its last move left it.
		e.log.Debug("drag superseded", "session", e.drag.id, "item", e.drag.itemID)
		e.drag = nil
	}

	pointer := Point{X: ev.X, Y: ev.Y}
	s := &dragSession{
		id:        uuid.NewString(),
		itemID:    it.ID,
		startPos:  it.Position,
		wasDocked: it.Docked,
		fromZone:  it.ZoneID,
	}
	if it.Docked {
		// Implicit undock: vacate the membership before Dragging begins so
		// a grabbed docked item follows the same path as a free one. The
		// item centers under the pointer instead of jumping to its stale
		// free position.
		if z, ok := e.zones[it.ZoneID]; ok {
			s.fromIndex = z.memberIndex(it.ID)
			z.removeMember(it.ID)
		}
		it.Docked = false
		it.ZoneID = ""
		fp := it.Size.Footprint()
		it.Position = Point{X: pointer.X - fp.Width/2, Y: pointer.Y - fp.Height/2}
	}
	s.offset = Point{X: pointer.X - it.Position.X, Y: pointer.Y - it.Position.Y}
	e.bringToFront(it)
	e.drag = s
	e.log.Debug("drag started", "session", s.id, "item", it.ID, "fromZone", s.fromZone)
	e.notify()
}

func (e *Engine) pointerMove(ev PointerEvent) {
	s := e.drag
	if s == nil {
		return
	}
	it, ok := e.items[s.itemID]
	if !ok {
		// The dragged item unmounted mid-drag; stop tracking without
		// touching the registry further.
		e.log.Debug("drag ended: item gone", "session", s.id, "item", s.itemID)
		e.drag = nil
		e.notify()
		return
	}
	pos := e.grid.Snap(Point{X: ev.X - s.offset.X, Y: ev.Y - s.offset.Y})
	it.Position = pos
	s.hover = e.resolveZone(pos, it)
	e.notify()
}

func (e *Engine) pointerUp() {
	s := e.drag
	if s == nil {
		return
	}
	// The session ends on every path out of here.
	e.drag = nil
	it, ok := e.items[s.itemID]
	if !ok {
		e.notify()
		return
	}
	if s.hover != "" {
		// Re-validate at commit time; the candidate can have filled or
		// vanished since the last move resolved it.
		if e.dockItem(it, s.hover, -1) {
			e.log.Debug("drag committed", "session", s.id, "item", it.ID, "zone", s.hover)
		} else {
			e.log.Debug("drag commit failed, item stays free",
				"session", s.id, "item", it.ID, "zone", s.hover)
		}
	}
	e.notify()
}

// CancelDrag aborts the active drag and reverts the item to its pre-drag
// state: its old position when it was free, or its old zone and slot when
// it was docked. If the old zone no longer accepts the item it stays free
// at its recorded prior position instead of dangling.
func (e *Engine) CancelDrag() {
	s := e.drag
	if s == nil {
		return
	}
	e.drag = nil
	it, ok := e.items[s.itemID]
	if !ok {
		e.notify()
		return
	}
	if s.wasDocked {
		if !e.dockItem(it, s.fromZone, s.fromIndex) {
			e.restoreFreePosition(it)
		}
	} else {
		it.Position = s.startPos
	}
	e.log.Debug("drag cancelled", "session", s.id, "item", it.ID)
	e.notify()
}

// DraggingItem reports the item currently being dragged, if any.
func (e *Engine) DraggingItem() (string, bool) {
	if e.drag == nil {
		return "", false
	}
	return e.drag.itemID, true
}

// HoverZone reports the candidate zone the dragged item would dock into if
// released now. Empty while no drag is active or no zone qualifies; the
// rendering layer uses it for highlighting only.
func (e *Engine) HoverZone() string {
	if e.drag == nil {
		return ""
	}
	return e.drag.hover
}
