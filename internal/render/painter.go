//go:build ebiten

package render

import (
	"image"
	"image/color"
	"slices"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tilelife/internal/core"
	"tilelife/internal/geometry"
)

// cellsPerBatch keeps the vertex count of one DrawTriangles call under the
// uint16 index limit.
const cellsPerBatch = 4096

// GridPainter draws a grid onto an ebiten image with one triangle batch per
// cell state.
type GridPainter struct {
	white *ebiten.Image

	vs []ebiten.Vertex
	is []uint16
}

// NewGridPainter allocates the painter's scratch texture.
func NewGridPainter() *GridPainter {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &GridPainter{white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

// Draw paints the live cells of g visible through view, then the grid
// lines when enabled.
func (p *GridPainter) Draw(screen *ebiten.Image, g *core.SparseGrid, view *Viewport, pal Palette, opts Options) {
	screen.Fill(RGBA(pal.Dead))

	byState := map[int][]geometry.Offset{}
	for it := g.Window(view.VisibleRect()); it.HasNext(); {
		c, err := it.Next()
		if err != nil {
			break
		}
		byState[c.State] = append(byState[c.State], c.Offset)
	}
	states := make([]int, 0, len(byState))
	for s := range byState {
		states = append(states, s)
	}
	slices.Sort(states)
	for _, s := range states {
		cells := byState[s]
		for start := 0; start < len(cells); start += cellsPerBatch {
			end := min(start+cellsPerBatch, len(cells))
			p.fill(screen, view, cells[start:end], pal.State(s))
		}
	}

	if opts.GridLines {
		lw := float32(opts.LineWidth)
		if lw <= 0 {
			lw = 1
		}
		grid := RGBA(pal.Grid)
		for _, o := range view.Tiles() {
			strokePath(screen, view.Path(o), lw, grid)
		}
	}
}

func (p *GridPainter) fill(screen *ebiten.Image, view *Viewport, cells []geometry.Offset, c gg.RGBA) {
	var path vector.Path
	for _, o := range cells {
		for _, e := range view.Path(o).Elements() {
			switch e := e.(type) {
			case gg.MoveTo:
				path.MoveTo(float32(e.Point.X), float32(e.Point.Y))
			case gg.LineTo:
				path.LineTo(float32(e.Point.X), float32(e.Point.Y))
			case gg.Close:
				path.Close()
			}
		}
	}
	p.vs, p.is = path.AppendVerticesAndIndicesForFilling(p.vs[:0], p.is[:0])
	for i := range p.vs {
		p.vs[i].SrcX = 1
		p.vs[i].SrcY = 1
		p.vs[i].ColorR = float32(c.R)
		p.vs[i].ColorG = float32(c.G)
		p.vs[i].ColorB = float32(c.B)
		p.vs[i].ColorA = float32(c.A)
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.EvenOdd, AntiAlias: true}
	screen.DrawTriangles(p.vs, p.is, p.white, op)
}

// strokePath draws each edge of a closed outline.
func strokePath(screen *ebiten.Image, path *gg.Path, width float32, c color.Color) {
	for _, seg := range Segments(path) {
		vector.StrokeLine(screen, float32(seg.From.X), float32(seg.From.Y), float32(seg.To.X), float32(seg.To.Y), width, c, true)
	}
}
