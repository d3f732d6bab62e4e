package render

import (
	"github.com/gogpu/gg"

	"tilelife/internal/core"
	"tilelife/internal/geometry"
)

// Viewport is a W by H pixel window onto the tiled plane, shifted by a pan
// offset. Screen = world + Pan.
type Viewport struct {
	W, H float64
	Pan  gg.Point
	Tile geometry.Tile
}

// NewViewport returns an unpanned viewport.
func NewViewport(tile geometry.Tile, w, h float64) *Viewport {
	return &Viewport{W: w, H: h, Tile: tile}
}

// Resize changes the window size keeping the pan.
func (v *Viewport) Resize(w, h float64) {
	v.W, v.H = w, h
}

// PanBy shifts the view by (dx, dy) screen pixels.
func (v *Viewport) PanBy(dx, dy float64) {
	v.Pan = v.Pan.Add(gg.Pt(dx, dy))
}

// ToScreen maps a world point to screen space.
func (v *Viewport) ToScreen(p gg.Point) gg.Point { return p.Add(v.Pan) }

// ToWorld maps a screen point to world space.
func (v *Viewport) ToWorld(p gg.Point) gg.Point { return p.Sub(v.Pan) }

// Selected returns the tile under screen pixel (x, y).
func (v *Viewport) Selected(x, y float64) geometry.Offset {
	w := v.ToWorld(gg.Pt(x, y))
	return v.Tile.Selected(w.X, w.Y)
}

// Path returns the outline of the tile at o in screen space.
func (v *Viewport) Path(o geometry.Offset) *gg.Path {
	return v.Tile.Path(o).Transform(gg.Translate(v.Pan.X, v.Pan.Y))
}

// Center returns the screen centre of the tile at o.
func (v *Viewport) Center(o geometry.Offset) gg.Point {
	return v.ToScreen(v.Tile.Center(o))
}

// VisibleRect returns a rectangle of tile coordinates covering every tile
// that intersects the viewport. It is padded by one tile so row and column
// parity shifts of hex layouts stay covered.
func (v *Viewport) VisibleRect() core.Rect {
	corners := [4]geometry.Offset{
		v.Selected(0, 0),
		v.Selected(v.W, 0),
		v.Selected(0, v.H),
		v.Selected(v.W, v.H),
	}
	minC, maxC := corners[0].Col, corners[0].Col
	minR, maxR := corners[0].Row, corners[0].Row
	for _, c := range corners[1:] {
		minC = min(minC, c.Col)
		maxC = max(maxC, c.Col)
		minR = min(minR, c.Row)
		maxR = max(maxR, c.Row)
	}
	const pad = 1
	return core.Rect{
		X: minC - pad,
		Y: minR - pad,
		W: maxC - minC + 1 + 2*pad,
		H: maxR - minR + 1 + 2*pad,
	}
}

// CenterOn pans so the middle of r sits in the middle of the viewport. An
// empty rectangle centres the origin tile.
func (v *Viewport) CenterOn(r core.Rect) {
	var mid gg.Point
	if r.Empty() {
		mid = v.Tile.Center(geometry.Offset{})
	} else {
		first := v.Tile.Center(geometry.Offset{Col: r.X, Row: r.Y})
		last := v.Tile.Center(geometry.Offset{Col: r.X + r.W - 1, Row: r.Y + r.H - 1})
		mid = first.Add(last).Mul(0.5)
	}
	v.Pan = gg.Pt(v.W/2-mid.X, v.H/2-mid.Y)
}

// Tiles lists every coordinate of the visible rectangle in row-major order.
// Renderers use it to draw grid lines.
func (v *Viewport) Tiles() []geometry.Offset {
	r := v.VisibleRect()
	out := make([]geometry.Offset, 0, r.W*r.H)
	for row := r.Y; row < r.Y+r.H; row++ {
		for col := r.X; col < r.X+r.W; col++ {
			out = append(out, geometry.Offset{Col: col, Row: row})
		}
	}
	return out
}
