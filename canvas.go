package main

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rileylov/dockyard/dock"
)

// cellCanvas is a plain rune buffer the zones and items composite into.
// Compositing happens bottom-up: grid dots, then zones in stack order,
// then items in z-order, so later paints occlude earlier ones exactly the
// way the engine's ordering says they should.
type cellCanvas struct {
	w, h  int
	cells [][]rune
}

func newCellCanvas(w, h int) *cellCanvas {
	cells := make([][]rune, h)
	for y := range cells {
		row := make([]rune, w)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &cellCanvas{w: w, h: h, cells: cells}
}

func (c *cellCanvas) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = r
}

func (c *cellCanvas) text(x, y int, s string) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r)
	}
}

func (c *cellCanvas) fill(x, y, w, h int, r rune) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.set(x+dx, y+dy, r)
		}
	}
}

type borderRunes struct {
	h, v, tl, tr, bl, br rune
}

var (
	singleBorder = borderRunes{'─', '│', '┌', '┐', '└', '┘'}
	doubleBorder = borderRunes{'═', '║', '╔', '╗', '╚', '╝'}
)

func (c *cellCanvas) box(x, y, w, h int, b borderRunes) {
	for dx := 1; dx < w-1; dx++ {
		c.set(x+dx, y, b.h)
		c.set(x+dx, y+h-1, b.h)
	}
	for dy := 1; dy < h-1; dy++ {
		c.set(x, y+dy, b.v)
		c.set(x+w-1, y+dy, b.v)
	}
	c.set(x, y, b.tl)
	c.set(x+w-1, y, b.tr)
	c.set(x, y+h-1, b.bl)
	c.set(x+w-1, y+h-1, b.br)
}

func (c *cellCanvas) String() string {
	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// cellRect maps a canvas-unit rectangle onto the cell grid, keeping at
// least a drawable 2x2 box.
func cellRect(r dock.Rect) (x, y, w, h int) {
	x = int(math.Round(r.X / unitsPerCol))
	y = int(math.Round(r.Y / unitsPerRow))
	w = int(math.Round(r.Width / unitsPerCol))
	h = int(math.Round(r.Height / unitsPerRow))
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	return x, y, w, h
}

func renderCanvas(e *dock.Engine, cols, rows int) string {
	c := newCellCanvas(cols, rows)

	if e.ShowGrid() {
		gc := int(math.Round(e.GridSize() / unitsPerCol))
		gr := int(math.Round(e.GridSize() / unitsPerRow))
		if gc < 1 {
			gc = 1
		}
		if gr < 1 {
			gr = 1
		}
		for y := 0; y < rows; y += gr {
			for x := 0; x < cols; x += gc {
				c.set(x, y, '·')
			}
		}
	}

	hover := e.HoverZone()
	for _, z := range e.ZonesByStack() {
		if z.Bounds.IsZero() {
			continue
		}
		x, y, w, h := cellRect(z.Bounds)
		c.fill(x+1, y+1, w-2, h-2, ' ')
		border := singleBorder
		if z.ID == hover {
			border = doubleBorder
		}
		c.box(x, y, w, h, border)
		c.text(x+2, y, " "+z.Label+" ")
		occupancy := fmt.Sprintf(" %d ", len(z.Members))
		if z.MaxItems > 0 {
			occupancy = fmt.Sprintf(" %d/%d ", len(z.Members), z.MaxItems)
		}
		c.text(x+w-len(occupancy)-2, y+h-1, occupancy)
	}

	items := e.Items()
	sort.Slice(items, func(i, j int) bool { return items[i].ZOrder < items[j].ZOrder })
	dragID, _ := e.DraggingItem()
	for _, it := range items {
		r, ok := e.ItemRect(it.ID)
		if !ok {
			continue
		}
		x, y, w, h := cellRect(r)
		shade := '░'
		switch {
		case it.ID == dragID:
			shade = '▓'
		case it.Docked:
			shade = '▒'
		}
		c.fill(x, y, w, h, shade)
		label := it.Label
		if label == "" {
			label = it.ID
		}
		if len(label) > w-2 {
			label = label[:w-2]
		}
		c.text(x+(w-len(label))/2, y+h/2, label)
	}

	return c.String()
}
