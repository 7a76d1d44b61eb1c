package dock

import "math"

// DefaultGridSize is the snap cell size in canvas units.
const DefaultGridSize = 20

// GridSnapper quantizes positions to the nearest grid cell multiple.
type GridSnapper struct {
	CellSize float64
	Enabled  bool
}

// Snap rounds each coordinate independently to the nearest multiple of the
// cell size. Identity when disabled. Half-way values round up (away from
// zero), so with a cell size of 20, 10 snaps to 20. Idempotent.
func (g GridSnapper) Snap(p Point) Point {
	if !g.Enabled || g.CellSize <= 0 {
		return p
	}
	return Point{
		X: math.Round(p.X/g.CellSize) * g.CellSize,
		Y: math.Round(p.Y/g.CellSize) * g.CellSize,
	}
}
