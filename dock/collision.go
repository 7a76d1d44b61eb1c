package dock

// dockOverlapThreshold is the fraction of an item's own footprint that must
// lie inside a zone before the zone becomes a docking candidate. The
// comparison is strict, so grazing a zone edge never docks; the margin
// keeps the hover highlight from flickering when an item merely passes by.
const dockOverlapThreshold = 0.30

// resolveZone picks the single best dock zone for an item footprint at pos,
// or "" when none qualifies. Zones are scanned in registration order so the
// result is deterministic for a fixed layout: a zone must have spare
// capacity and accept the item's size class, then clear the overlap
// threshold; the largest overlap area wins and exact area ties fall to the
// smaller center-to-center distance. An unmeasured zone has zero bounds and
// fails the threshold on its own.
func (e *Engine) resolveZone(pos Point, it *Item) string {
	fp := it.Size.Footprint()
	cand := Rect{X: pos.X, Y: pos.Y, Width: fp.Width, Height: fp.Height}

	best := ""
	var bestArea, bestDist float64
	for _, id := range e.zoneOrder {
		z := e.zones[id]
		if !z.hasCapacity() || !z.accepts(it.Size) {
			continue
		}
		if OverlapPercent(cand, z.Bounds) <= dockOverlapThreshold {
			continue
		}
		area := OverlapArea(cand, z.Bounds)
		dist := CenterDistance(cand, z.Bounds)
		if best == "" || area > bestArea || (area == bestArea && dist < bestDist) {
			best, bestArea, bestDist = id, area, dist
		}
	}
	return best
}
