package dock

// Item is one draggable module on the canvas.
//
// Position is the top-left corner in canvas units and is only meaningful
// while the item is free; a docked item renders at a slot derived from its
// zone (see Engine.ItemRect). Docked is true iff ZoneID is set iff the id
// appears in exactly one zone's member list.
type Item struct {
	ID       string
	Label    string
	Size     SizeClass
	Position Point
	Docked   bool
	ZoneID   string
	ZOrder   int

	// position to restore when the item is undocked without a drag
	// gesture, captured at the moment of docking
	priorFree    Point
	hasPriorFree bool
}

// RegisterItem adds an item to the registry. Registering an id that is
// already known is a no-op, so mount/remount cycles are harmless. Items
// always register in the free state.
func (e *Engine) RegisterItem(it Item) {
	if it.ID == "" {
		e.log.Warn("item registration ignored: empty id")
		return
	}
	if _, ok := e.items[it.ID]; ok {
		return
	}
	if !it.Size.Valid() {
		it.Size = e.globalSize
	}
	it.Docked = false
	it.ZoneID = ""
	e.topZ++
	it.ZOrder = e.topZ
	reg := it
	e.items[it.ID] = &reg
	e.itemOrder = append(e.itemOrder, it.ID)
	e.notify()
}

// UnregisterItem removes an item, vacating any zone membership. If the item
// is mid-drag the session ends without further registry writes.
func (e *Engine) UnregisterItem(id string) {
	it, ok := e.items[id]
	if !ok {
		return
	}
	if e.drag != nil && e.drag.itemID == id {
		e.drag = nil
	}
	if it.Docked {
		if z, ok := e.zones[it.ZoneID]; ok {
			z.removeMember(id)
		}
	}
	delete(e.items, id)
	for i, oid := range e.itemOrder {
		if oid == id {
			e.itemOrder = append(e.itemOrder[:i], e.itemOrder[i+1:]...)
			break
		}
	}
	e.notify()
}

// BringToFront assigns the item the next z-order value. The counter is
// monotone and never reused, so the most recently raised item always
// renders above everything raised before it.
func (e *Engine) BringToFront(id string) {
	it, ok := e.items[id]
	if !ok {
		e.log.Warn("bring-to-front ignored: unknown item", "item", id)
		return
	}
	e.bringToFront(it)
	e.notify()
}

func (e *Engine) bringToFront(it *Item) {
	e.topZ++
	it.ZOrder = e.topZ
}

// Item returns a snapshot of one item.
func (e *Engine) Item(id string) (Item, bool) {
	it, ok := e.items[id]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// Items returns snapshots of all items in registration order.
func (e *Engine) Items() []Item {
	out := make([]Item, 0, len(e.itemOrder))
	for _, id := range e.itemOrder {
		out = append(out, *e.items[id])
	}
	return out
}

// ItemRect returns the rectangle an item currently occupies: its footprint
// at Position while free, or its slot inside the owning zone while docked.
// Slots stack vertically in member order with a fixed inset.
func (e *Engine) ItemRect(id string) (Rect, bool) {
	it, ok := e.items[id]
	if !ok {
		return Rect{}, false
	}
	fp := it.Size.Footprint()
	if !it.Docked {
		return Rect{X: it.Position.X, Y: it.Position.Y, Width: fp.Width, Height: fp.Height}, true
	}
	z, ok := e.zones[it.ZoneID]
	if !ok {
		return Rect{}, false
	}
	y := z.Bounds.Y + slotInset
	for _, mid := range z.Members {
		if mid == id {
			break
		}
		if m, ok := e.items[mid]; ok {
			y += m.Size.Footprint().Height + slotInset
		}
	}
	return Rect{X: z.Bounds.X + slotInset, Y: y, Width: fp.Width, Height: fp.Height}, true
}

// slotInset is the gap between a zone's border and its docked slots.
const slotInset = 10

// ItemAt returns the topmost item whose current rectangle contains p.
func (e *Engine) ItemAt(p Point) (Item, bool) {
	var best *Item
	for _, id := range e.itemOrder {
		it := e.items[id]
		r, ok := e.ItemRect(id)
		if !ok || !r.Contains(p) {
			continue
		}
		if best == nil || it.ZOrder > best.ZOrder {
			best = it
		}
	}
	if best == nil {
		return Item{}, false
	}
	return *best, true
}
