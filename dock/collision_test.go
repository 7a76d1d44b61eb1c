package dock

import "testing"

func newTestEngine(opts ...Option) *Engine {
	return New(opts...)
}

func registerMeasuredZone(e *Engine, def ZoneDef, bounds Rect) {
	e.RegisterDockZone(def)
	e.UpdateDockZoneBounds(def.ID, bounds)
}

func TestResolveDeterministic(t *testing.T) {
	e := newTestEngine()
	registerMeasuredZone(e, ZoneDef{ID: "a", Label: "A"}, Rect{X: 0, Y: 0, Width: 200, Height: 200})
	registerMeasuredZone(e, ZoneDef{ID: "b", Label: "B"}, Rect{X: 300, Y: 0, Width: 200, Height: 200})
	e.RegisterItem(Item{ID: "i", Size: SizeMedium, Position: Point{X: 500, Y: 500}})

	it := e.items["i"]
	first := e.resolveZone(Point{X: 50, Y: 50}, it)
	if first != "a" {
		t.Fatalf("resolve = %q, want a", first)
	}
	for range 10 {
		if got := e.resolveZone(Point{X: 50, Y: 50}, it); got != first {
			t.Fatalf("resolve not stable: %q then %q", first, got)
		}
	}
}

func TestResolveTieBreakByCenterDistance(t *testing.T) {
	// Both zones fully contain the item footprint, so overlap areas tie
	// exactly; the smaller zone's center is nearer and must win
	// regardless of registration order.
	small := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	big := Rect{X: 0, Y: 0, Width: 300, Height: 300}

	for name, order := range map[string][2]string{
		"small-first": {"small", "big"},
		"big-first":   {"big", "small"},
	} {
		e := newTestEngine()
		for _, id := range order {
			b := small
			if id == "big" {
				b = big
			}
			registerMeasuredZone(e, ZoneDef{ID: id}, b)
		}
		e.RegisterItem(Item{ID: "i", Size: SizeMedium, Position: Point{X: 500, Y: 500}})
		got := e.resolveZone(Point{X: 0, Y: 0}, e.items["i"])
		if got != "small" {
			t.Fatalf("%s: resolve = %q, want small", name, got)
		}
	}
}

func TestResolveThresholdIsStrict(t *testing.T) {
	e := newTestEngine()
	// Item is 100x100; a zone starting at y=70 overlaps exactly 30% of it,
	// y=69 overlaps 31%.
	registerMeasuredZone(e, ZoneDef{ID: "z"}, Rect{X: -50, Y: 70, Width: 300, Height: 300})
	e.RegisterItem(Item{ID: "i", Size: SizeMedium, Position: Point{X: 500, Y: 500}})
	it := e.items["i"]

	if got := e.resolveZone(Point{X: 0, Y: 0}, it); got != "" {
		t.Fatalf("exactly 30%% overlap resolved to %q, want none", got)
	}
	e.UpdateDockZoneBounds("z", Rect{X: -50, Y: 69, Width: 300, Height: 300})
	if got := e.resolveZone(Point{X: 0, Y: 0}, it); got != "z" {
		t.Fatalf("31%% overlap resolved to %q, want z", got)
	}
}

func TestResolveExcludesFullZone(t *testing.T) {
	e := newTestEngine()
	registerMeasuredZone(e, ZoneDef{ID: "z", MaxItems: 1}, Rect{X: 0, Y: 0, Width: 200, Height: 200})
	e.RegisterItem(Item{ID: "a", Size: SizeMedium, Position: Point{X: 400, Y: 400}})
	e.RegisterItem(Item{ID: "b", Size: SizeMedium, Position: Point{X: 400, Y: 100}})
	if !e.DockItem("a", "z") {
		t.Fatal("seed dock failed")
	}
	if got := e.resolveZone(Point{X: 50, Y: 50}, e.items["b"]); got != "" {
		t.Fatalf("full zone resolved to %q, want none", got)
	}
}

func TestResolveExcludesDisallowedSizeClass(t *testing.T) {
	e := newTestEngine()
	registerMeasuredZone(e,
		ZoneDef{ID: "z", AllowedSizes: []SizeClass{SizeSmall, SizeMedium}},
		Rect{X: 0, Y: 0, Width: 400, Height: 400})
	e.RegisterItem(Item{ID: "i", Size: SizeLarge, Position: Point{X: 600, Y: 400}})
	if got := e.resolveZone(Point{X: 100, Y: 100}, e.items["i"]); got != "" {
		t.Fatalf("disallowed size resolved to %q, want none", got)
	}
}

func TestResolveIgnoresUnmeasuredZone(t *testing.T) {
	e := newTestEngine()
	e.RegisterDockZone(ZoneDef{ID: "z"}) // bounds never measured
	e.RegisterItem(Item{ID: "i", Size: SizeMedium, Position: Point{X: 0, Y: 0}})
	if got := e.resolveZone(Point{X: 0, Y: 0}, e.items["i"]); got != "" {
		t.Fatalf("unmeasured zone resolved to %q, want none", got)
	}
}
