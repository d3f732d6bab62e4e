//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tilelife/internal/core"
	"tilelife/internal/geometry"
	"tilelife/internal/render"
)

// Overlay draws optional debugging visuals on top of the grid: the
// neighbourhood of the tile under the cursor and the live rectangle.
type Overlay struct {
	showNeighbors bool
	showLiveRect  bool

	hovered   geometry.Offset
	hasHover  bool
	pixel     *ebiten.Image
	thickness float64
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{showNeighbors: true, thickness: 2}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers and tracks the hovered tile. Key 1 toggles the
// neighbourhood, key 2 the live rectangle.
func (o *Overlay) Update(view *render.Viewport) {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showNeighbors = !o.showNeighbors
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showLiveRect = !o.showLiveRect
	}
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	o.hasHover = x >= 0 && y >= 0 && x < view.W && y < view.H
	if o.hasHover {
		o.hovered = view.Selected(x, y)
	}
}

// Hovered returns the tile under the cursor, if any.
func (o *Overlay) Hovered() (geometry.Offset, bool) {
	return o.hovered, o.hasHover
}

// Draw renders the enabled layers. live is the grid's live rectangle.
func (o *Overlay) Draw(screen *ebiten.Image, view *render.Viewport, live core.Rect) {
	if o.showLiveRect && !live.Empty() {
		col := color.RGBA{R: 255, G: 120, B: 40, A: 200}
		for _, c := range live.Border() {
			o.outline(screen, view, c, col)
		}
	}
	if o.showNeighbors && o.hasHover {
		nb := view.Tile.Neighborhood(o.hovered)
		for _, n := range nb.Neighbors {
			o.outline(screen, view, n, color.RGBA{R: 64, G: 164, B: 223, A: 220})
		}
		o.outline(screen, view, nb.Self, color.RGBA{R: 240, G: 235, B: 215, A: 255})
	}
}

func (o *Overlay) outline(screen *ebiten.Image, view *render.Viewport, at geometry.Offset, col color.RGBA) {
	for _, seg := range render.Segments(view.Path(at)) {
		o.drawLine(screen, seg.From.X, seg.From.Y, seg.To.X, seg.To.Y, o.thickness, col)
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.Scale(float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255)
	screen.DrawImage(o.pixel, op)
}
