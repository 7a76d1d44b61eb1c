package dock

// DockItem places an item under a zone's management, appending it to the
// member list. Capacity and size-class violations are ordinary outcomes and
// report false rather than failing loudly.
func (e *Engine) DockItem(itemID, zoneID string) bool {
	return e.DockItemAt(itemID, zoneID, -1)
}

// DockItemAt docks an item at a specific member index; a negative index
// appends.
func (e *Engine) DockItemAt(itemID, zoneID string, index int) bool {
	it, ok := e.items[itemID]
	if !ok {
		e.log.Warn("dock ignored: unknown item", "item", itemID)
		return false
	}
	if !e.dockItem(it, zoneID, index) {
		return false
	}
	e.notify()
	return true
}

func (e *Engine) dockItem(it *Item, zoneID string, index int) bool {
	z, ok := e.zones[zoneID]
	if !ok {
		e.log.Debug("dock rejected: unknown zone", "item", it.ID, "zone", zoneID)
		return false
	}
	if it.Docked && it.ZoneID == zoneID {
		return true
	}
	if !z.hasCapacity() {
		e.log.Debug("dock rejected: zone full", "item", it.ID, "zone", zoneID)
		return false
	}
	if !z.accepts(it.Size) {
		e.log.Debug("dock rejected: size class not allowed",
			"item", it.ID, "zone", zoneID, "size", it.Size)
		return false
	}
	if it.Docked {
		if prev, ok := e.zones[it.ZoneID]; ok {
			prev.removeMember(it.ID)
		}
	} else {
		it.priorFree = it.Position
		it.hasPriorFree = true
	}
	z.insertMember(it.ID, index)
	it.Docked = true
	it.ZoneID = zoneID
	return true
}

// UndockItem releases an item from its zone and restores the free position
// recorded when it docked. The global size class re-applies, since per-zone
// size constraints no longer bind a free item.
func (e *Engine) UndockItem(itemID string) {
	it, ok := e.items[itemID]
	if !ok {
		e.log.Warn("undock ignored: unknown item", "item", itemID)
		return
	}
	if !it.Docked {
		return
	}
	if z, ok := e.zones[it.ZoneID]; ok {
		z.removeMember(it.ID)
	}
	it.Docked = false
	it.ZoneID = ""
	e.restoreFreePosition(it)
	it.Size = e.globalSize
	e.notify()
}

// restoreFreePosition moves a now-free item back to its recorded pre-dock
// position, or to a clamped on-screen default when none was recorded.
func (e *Engine) restoreFreePosition(it *Item) {
	p := Point{X: defaultFreeX, Y: defaultFreeY}
	if it.hasPriorFree {
		p = it.priorFree
	}
	it.Position = e.clampToCanvas(p, it.Size.Footprint())
}

const (
	defaultFreeX = 40
	defaultFreeY = 40
)

// clampToCanvas keeps a footprint at p at least partially on screen.
func (e *Engine) clampToCanvas(p Point, fp Size) Point {
	if e.canvas.Width <= 0 || e.canvas.Height <= 0 {
		return p
	}
	maxX := e.canvas.Width - fp.Width
	maxY := e.canvas.Height - fp.Height
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	if p.X < 0 {
		p.X = 0
	} else if p.X > maxX {
		p.X = maxX
	}
	if p.Y < 0 {
		p.Y = 0
	} else if p.Y > maxY {
		p.Y = maxY
	}
	return p
}
