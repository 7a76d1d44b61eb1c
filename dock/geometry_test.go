package dock

import "testing"

func TestFootprints(t *testing.T) {
	if fp := SizeMedium.Footprint(); fp.Width != 100 || fp.Height != 100 {
		t.Fatalf("medium footprint = %+v, want 100x100", fp)
	}
	for _, s := range []SizeClass{SizeSmall, SizeMedium, SizeLarge, SizeXLarge} {
		fp := s.Footprint()
		if fp.Width <= 0 || fp.Height <= 0 {
			t.Fatalf("%s footprint has no extent: %+v", s, fp)
		}
	}
	if fp := SizeClass("bogus").Footprint(); fp != SizeMedium.Footprint() {
		t.Fatalf("unknown class should fall back to medium, got %+v", fp)
	}
	if SizeClass("bogus").Valid() {
		t.Fatal("bogus size class reported valid")
	}
}

func TestOverlapArea(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	if got := OverlapArea(a, Rect{X: 200, Y: 200, Width: 50, Height: 50}); got != 0 {
		t.Fatalf("disjoint rects overlap = %v, want 0", got)
	}
	if got := OverlapArea(a, Rect{X: 100, Y: 0, Width: 50, Height: 100}); got != 0 {
		t.Fatalf("edge-touching rects overlap = %v, want 0", got)
	}
	if got := OverlapArea(a, Rect{X: 50, Y: 50, Width: 100, Height: 100}); got != 2500 {
		t.Fatalf("partial overlap = %v, want 2500", got)
	}
	if got := OverlapArea(a, Rect{X: -50, Y: -50, Width: 300, Height: 300}); got != 10000 {
		t.Fatalf("contained overlap = %v, want full item area 10000", got)
	}
}

func TestOverlapPercentNormalizesByItem(t *testing.T) {
	item := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	bigZone := Rect{X: -100, Y: -100, Width: 1000, Height: 1000}
	if got := OverlapPercent(item, bigZone); got != 1 {
		t.Fatalf("fully contained item percent = %v, want 1", got)
	}
	half := Rect{X: 50, Y: 0, Width: 500, Height: 500}
	if got := OverlapPercent(item, half); got != 0.5 {
		t.Fatalf("half-covered item percent = %v, want 0.5", got)
	}
	if got := OverlapPercent(Rect{}, bigZone); got != 0 {
		t.Fatalf("zero-area item percent = %v, want 0", got)
	}
}

func TestCenterDistance(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	b := Rect{X: 0, Y: 100, Width: 100, Height: 100}
	if got := CenterDistance(a, b); got != 100 {
		t.Fatalf("vertical center distance = %v, want 100", got)
	}
	if got := CenterDistance(a, a); got != 0 {
		t.Fatalf("self distance = %v, want 0", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	if !r.Contains(Point{X: 10, Y: 10}) {
		t.Fatal("top-left corner should be inside")
	}
	if r.Contains(Point{X: 30, Y: 30}) {
		t.Fatal("bottom-right corner is exclusive")
	}
	if !(Rect{Width: 0, Height: 50}).IsZero() {
		t.Fatal("zero-width rect should report IsZero")
	}
}
