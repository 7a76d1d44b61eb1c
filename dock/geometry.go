package dock

import "math"

// Point is a position in canvas units, top-left origin.
type Point struct {
	X float64
	Y float64
}

// Size is a width/height footprint in canvas units.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle in canvas units.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) Area() float64 { return r.Width * r.Height }

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsZero reports whether the rectangle has no measurable extent, which is
// the state of a zone's bounds before its first layout measurement.
func (r Rect) IsZero() bool { return r.Width <= 0 || r.Height <= 0 }

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// SizeClass is one of the closed set of discrete item sizes.
type SizeClass string

const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
	SizeXLarge SizeClass = "xlarge"
)

// Footprint returns the fixed width/height for a size class. Unknown
// classes fall back to medium so a bad config value degrades visibly
// instead of producing a zero-area item.
func (s SizeClass) Footprint() Size {
	switch s {
	case SizeSmall:
		return Size{Width: 60, Height: 60}
	case SizeLarge:
		return Size{Width: 140, Height: 140}
	case SizeXLarge:
		return Size{Width: 180, Height: 180}
	default:
		return Size{Width: 100, Height: 100}
	}
}

// Valid reports whether s names a known size class.
func (s SizeClass) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeXLarge:
		return true
	}
	return false
}

// OverlapArea returns the area of the intersection of a and b, 0 when the
// rectangles are disjoint.
func OverlapArea(a, b Rect) float64 {
	w := math.Min(a.Right(), b.Right()) - math.Max(a.X, b.X)
	h := math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Y, b.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// OverlapPercent returns the fraction of item's own area covered by zone.
// Normalizing by the item keeps a large zone from winning on raw area alone.
func OverlapPercent(item, zone Rect) float64 {
	area := item.Area()
	if area <= 0 {
		return 0
	}
	return OverlapArea(item, zone) / area
}

// CenterDistance returns the euclidean distance between the centers of a and b.
func CenterDistance(a, b Rect) float64 {
	ac, bc := a.Center(), b.Center()
	return math.Hypot(ac.X-bc.X, ac.Y-bc.Y)
}
