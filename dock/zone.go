package dock

// ZoneDef declares a dock zone's identity and constraints. Bounds are not
// part of the definition; they arrive later from layout measurement.
type ZoneDef struct {
	ID           string
	Label        string
	MaxItems     int         // 0 means unbounded
	AllowedSizes []SizeClass // empty means any size class docks
	Resizable    bool
	MinWidth     float64
	MinHeight    float64
}

func (d ZoneDef) accepts(s SizeClass) bool {
	if len(d.AllowedSizes) == 0 {
		return true
	}
	for _, a := range d.AllowedSizes {
		if a == s {
			return true
		}
	}
	return false
}

// Zone is a registered dock zone: its definition, live bounds, and the
// ordered ids of the items docked in it.
type Zone struct {
	ZoneDef
	Bounds  Rect
	Members []string
}

func (z *Zone) hasCapacity() bool {
	return z.MaxItems <= 0 || len(z.Members) < z.MaxItems
}

func (z *Zone) memberIndex(id string) int {
	for i, m := range z.Members {
		if m == id {
			return i
		}
	}
	return -1
}

func (z *Zone) removeMember(id string) bool {
	i := z.memberIndex(id)
	if i < 0 {
		return false
	}
	z.Members = append(z.Members[:i], z.Members[i+1:]...)
	return true
}

// insertMember inserts id at the given index, clamped; a negative index
// appends.
func (z *Zone) insertMember(id string, at int) {
	if at < 0 || at > len(z.Members) {
		at = len(z.Members)
	}
	z.Members = append(z.Members, "")
	copy(z.Members[at+1:], z.Members[at:])
	z.Members[at] = id
}

func (z *Zone) snapshot() Zone {
	out := *z
	out.Members = append([]string(nil), z.Members...)
	out.AllowedSizes = append([]SizeClass(nil), z.AllowedSizes...)
	return out
}

// RegisterDockZone adds a zone with zero bounds until the first measurement
// arrives. Registering a known id is a no-op.
func (e *Engine) RegisterDockZone(def ZoneDef) {
	if def.ID == "" {
		e.log.Warn("zone registration ignored: empty id")
		return
	}
	if _, ok := e.zones[def.ID]; ok {
		return
	}
	if def.MaxItems < 0 {
		def.MaxItems = 0
	}
	e.zones[def.ID] = &Zone{ZoneDef: def}
	e.zoneOrder = append(e.zoneOrder, def.ID)
	e.stack = append(e.stack, def.ID)
	e.notify()
}

// UpdateDockZoneBounds stores a freshly measured rectangle for the zone.
// Unchanged bounds short-circuit so layout reflow storms don't trigger
// downstream recomputation.
func (e *Engine) UpdateDockZoneBounds(id string, r Rect) {
	z, ok := e.zones[id]
	if !ok {
		e.log.Warn("bounds update ignored: unknown zone", "zone", id)
		return
	}
	if z.Bounds == r {
		return
	}
	z.Bounds = r
	e.notify()
}

// ResizeDockZone applies a user-driven resize. Only resizable zones accept
// it, and width/height clamp to the zone's configured minimums.
func (e *Engine) ResizeDockZone(id string, r Rect) {
	z, ok := e.zones[id]
	if !ok {
		e.log.Warn("resize ignored: unknown zone", "zone", id)
		return
	}
	if !z.Resizable {
		e.log.Debug("resize ignored: zone not resizable", "zone", id)
		return
	}
	if r.Width < z.MinWidth {
		r.Width = z.MinWidth
	}
	if r.Height < z.MinHeight {
		r.Height = z.MinHeight
	}
	if z.Bounds == r {
		return
	}
	z.Bounds = r
	e.notify()
}

// UnregisterDockZone removes a zone. Docked members are forced back to the
// free state rather than left pointing at a dead zone.
func (e *Engine) UnregisterDockZone(id string) {
	z, ok := e.zones[id]
	if !ok {
		return
	}
	for _, mid := range z.Members {
		it, ok := e.items[mid]
		if !ok {
			continue
		}
		it.Docked = false
		it.ZoneID = ""
		e.restoreFreePosition(it)
		it.Size = e.globalSize
	}
	z.Members = nil
	delete(e.zones, id)
	for i, oid := range e.zoneOrder {
		if oid == id {
			e.zoneOrder = append(e.zoneOrder[:i], e.zoneOrder[i+1:]...)
			break
		}
	}
	e.removeFromStack(id)
	e.notify()
}

// Zone returns a snapshot of one zone.
func (e *Engine) Zone(id string) (Zone, bool) {
	z, ok := e.zones[id]
	if !ok {
		return Zone{}, false
	}
	return z.snapshot(), true
}

// Zones returns zone snapshots in registration order.
func (e *Engine) Zones() []Zone {
	out := make([]Zone, 0, len(e.zoneOrder))
	for _, id := range e.zoneOrder {
		out = append(out, e.zones[id].snapshot())
	}
	return out
}

// DockedItemsForZone returns snapshots of the zone's members in dock order.
func (e *Engine) DockedItemsForZone(id string) []Item {
	z, ok := e.zones[id]
	if !ok {
		return nil
	}
	out := make([]Item, 0, len(z.Members))
	for _, mid := range z.Members {
		if it, ok := e.items[mid]; ok {
			out = append(out, *it)
		}
	}
	return out
}
