package dock

// Zone stacking is separate from item z-order: zones themselves can be
// floated and re-ordered panels, and their relative order decides paint
// order bottom-to-top.

// InsertZoneIntoStack moves a zone to the given stack index, clamped to the
// stack's bounds. This is a move, not an add: any existing occurrence is
// removed first. Unknown zones are ignored.
func (e *Engine) InsertZoneIntoStack(id string, index int) {
	if _, ok := e.zones[id]; !ok {
		e.log.Warn("stack insert ignored: unknown zone", "zone", id)
		return
	}
	e.removeFromStack(id)
	if index < 0 {
		index = 0
	}
	if index > len(e.stack) {
		index = len(e.stack)
	}
	e.stack = append(e.stack, "")
	copy(e.stack[index+1:], e.stack[index:])
	e.stack[index] = id
	e.notify()
}

func (e *Engine) removeFromStack(id string) {
	for i, sid := range e.stack {
		if sid == id {
			e.stack = append(e.stack[:i], e.stack[i+1:]...)
			return
		}
	}
}

// ZoneStack returns the zone ids in stack order, index 0 at the bottom.
func (e *Engine) ZoneStack() []string {
	return append([]string(nil), e.stack...)
}

// ZonesByStack returns zone snapshots in paint order, bottom first.
func (e *Engine) ZonesByStack() []Zone {
	out := make([]Zone, 0, len(e.stack))
	for _, id := range e.stack {
		if z, ok := e.zones[id]; ok {
			out = append(out, z.snapshot())
		}
	}
	return out
}
