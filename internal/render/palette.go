// Package render draws tiled grids: viewport math, colours, a headless PNG
// renderer and, with the ebiten tag, an on-screen painter.
package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
)

// Palette maps cell states to colours. State 1 uses Live, state 2 Dying, and
// any higher state the last entry of Extra, if present, else Live.
type Palette struct {
	Dead  gg.RGBA
	Live  gg.RGBA
	Dying gg.RGBA
	Grid  gg.RGBA
	Extra []gg.RGBA
}

// DefaultPalette is a dark background with light live cells.
func DefaultPalette() Palette {
	return Palette{
		Dead:  gg.Hex("#101014"),
		Live:  gg.Hex("#f2f2f2"),
		Dying: gg.Hex("#3a7bd5"),
		Grid:  gg.Hex("#2a2a33"),
	}
}

// ParsePalette builds a palette from hex colour strings. Empty strings keep
// the default colour for that slot.
func ParsePalette(dead, live, dying, grid string) (Palette, error) {
	p := DefaultPalette()
	slots := []struct {
		name string
		in   string
		out  *gg.RGBA
	}{
		{"dead", dead, &p.Dead},
		{"live", live, &p.Live},
		{"dying", dying, &p.Dying},
		{"grid", grid, &p.Grid},
	}
	for _, s := range slots {
		if s.in == "" {
			continue
		}
		if !validHex(s.in) {
			return p, fmt.Errorf("render: %s colour %q is not a hex colour", s.name, s.in)
		}
		*s.out = gg.Hex(s.in)
	}
	return p, nil
}

func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// State returns the colour for a cell state.
func (p Palette) State(state int) gg.RGBA {
	switch {
	case state <= 0:
		return p.Dead
	case state == 1:
		return p.Live
	case state == 2:
		return p.Dying
	case len(p.Extra) > 0:
		idx := state - 3
		if idx >= len(p.Extra) {
			idx = len(p.Extra) - 1
		}
		return p.Extra[idx]
	default:
		return p.Live
	}
}

// RGBA converts a palette colour to a premultiplied color.RGBA for image
// and ebiten APIs.
func RGBA(c gg.RGBA) color.RGBA {
	r, g, b, a := c.Color().RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
