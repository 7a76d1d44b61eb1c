package dock

import "testing"

func TestSnapRounding(t *testing.T) {
	g := GridSnapper{CellSize: 20, Enabled: true}
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{9, 0},
		{10, 20}, // half-way rounds up
		{13, 20},
		{20, 20},
		{27, 20},
		{31, 40},
		{-13, -20},
	}
	for _, tt := range tests {
		got := g.Snap(Point{X: tt.in, Y: tt.in})
		if got.X != tt.want || got.Y != tt.want {
			t.Errorf("Snap(%v) = (%v,%v), want %v", tt.in, got.X, got.Y, tt.want)
		}
	}
}

func TestSnapDisabledIsIdentity(t *testing.T) {
	g := GridSnapper{CellSize: 20, Enabled: false}
	p := Point{X: 13.7, Y: 91.2}
	if got := g.Snap(p); got != p {
		t.Fatalf("disabled snap mutated position: %+v", got)
	}
}

func TestSnapIdempotent(t *testing.T) {
	g := GridSnapper{CellSize: 20, Enabled: true}
	p := Point{X: 137, Y: 91}
	once := g.Snap(p)
	if twice := g.Snap(once); twice != once {
		t.Fatalf("snap not idempotent: %+v then %+v", once, twice)
	}
}
