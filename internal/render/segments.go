package render

import "github.com/gogpu/gg"

// Segment is one straight edge of an outline.
type Segment struct {
	From, To gg.Point
}

// Segments flattens a closed polygonal path into its edges, including the
// closing edge back to the first vertex.
func Segments(p *gg.Path) []Segment {
	var (
		out         []Segment
		first, prev gg.Point
	)
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case gg.MoveTo:
			first, prev = e.Point, e.Point
		case gg.LineTo:
			out = append(out, Segment{From: prev, To: e.Point})
			prev = e.Point
		case gg.Close:
			if prev != first {
				out = append(out, Segment{From: prev, To: first})
			}
			prev = first
		}
	}
	return out
}
