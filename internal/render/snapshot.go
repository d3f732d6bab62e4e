package render

import (
	"fmt"
	"image"
	"io"
	"os"
	"slices"

	"github.com/gogpu/gg"

	"tilelife/internal/core"
	"tilelife/internal/geometry"
)

// Options toggles optional frame layers.
type Options struct {
	GridLines bool
	LineWidth float64
}

// Renderer rasterises a grid seen through a viewport with gogpu/gg. It
// needs no window and is used by headless runs.
type Renderer struct {
	View    *Viewport
	Palette Palette
	Options Options
}

// NewRenderer returns a renderer with the default palette and grid lines.
func NewRenderer(view *Viewport) *Renderer {
	return &Renderer{View: view, Palette: DefaultPalette(), Options: Options{GridLines: true, LineWidth: 1}}
}

// Draw paints g into a new context. The caller owns the context.
func (r *Renderer) Draw(g *core.SparseGrid) (*gg.Context, error) {
	w, h := int(r.View.W), int(r.View.H)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render: viewport %dx%d is empty", w, h)
	}
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(r.Palette.Dead)

	// Group live cells by state so each colour is filled once.
	byState := map[int][]geometry.Offset{}
	for it := g.Window(r.View.VisibleRect()); it.HasNext(); {
		c, err := it.Next()
		if err != nil {
			return nil, err
		}
		byState[c.State] = append(byState[c.State], c.Offset)
	}
	states := make([]int, 0, len(byState))
	for s := range byState {
		states = append(states, s)
	}
	slices.Sort(states)
	for _, s := range states {
		for _, o := range byState[s] {
			appendPath(dc, r.View.Path(o))
		}
		dc.SetColor(r.Palette.State(s).Color())
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("render: fill state %d: %w", s, err)
		}
	}

	if r.Options.GridLines {
		for _, o := range r.View.Tiles() {
			appendPath(dc, r.View.Path(o))
		}
		lw := r.Options.LineWidth
		if lw <= 0 {
			lw = 1
		}
		dc.SetLineWidth(lw)
		dc.SetColor(r.Palette.Grid.Color())
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("render: grid lines: %w", err)
		}
	}
	return dc, nil
}

// Image renders g and returns the raster.
func (r *Renderer) Image(g *core.SparseGrid) (image.Image, error) {
	dc, err := r.Draw(g)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// WritePNG renders g as PNG into w.
func (r *Renderer) WritePNG(w io.Writer, g *core.SparseGrid) error {
	dc, err := r.Draw(g)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

// SavePNG renders g into the PNG file at path.
func (r *Renderer) SavePNG(path string, g *core.SparseGrid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := r.WritePNG(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// appendPath replays a tile outline onto the context's current path.
func appendPath(dc *gg.Context, p *gg.Path) {
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case gg.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case gg.Close:
			dc.ClosePath()
		}
	}
}
