package geometry

import (
	"fmt"
	"strings"
)

// Neighborhood is a tile together with the tiles adjacent to it.
type Neighborhood struct {
	Self      Offset
	Neighbors []Offset

	kind   TileKind
	layout Layout
}

// HexNeighborhood returns the six neighbours of self under the given layout.
// Each neighbour is found by stepping one axial unit vector from self.
func HexNeighborhood(self Offset, layout Layout) Neighborhood {
	h := layout.ToHex(self)
	neighbors := make([]Offset, len(hexVectors))
	for i, v := range hexVectors {
		neighbors[i] = layout.ToOffset(h.Add(v))
	}
	return Neighborhood{Self: self, Neighbors: neighbors, kind: KindHex, layout: layout}
}

// QuadNeighborhood returns the eight Moore neighbours of self, clockwise
// from north.
func QuadNeighborhood(self Offset) Neighborhood {
	neighbors := make([]Offset, len(quadVectors))
	for i, v := range quadVectors {
		neighbors[i] = self.Add(v)
	}
	return Neighborhood{Self: self, Neighbors: neighbors, kind: KindQuad}
}

// Kind reports the tiling this neighbourhood was built for.
func (n Neighborhood) Kind() TileKind { return n.kind }

// Toward returns the neighbour lying in direction dir.
func (n Neighborhood) Toward(dir Direction) (Offset, error) {
	switch n.kind {
	case KindQuad:
		if int(dir) >= len(quadVectors) {
			return Offset{}, fmt.Errorf("%w: %v on quad grid", ErrInvalidDirection, dir)
		}
		return n.Self.Add(quadVectors[dir]), nil
	case KindHex:
		v, err := hexVector(n.layout.Orientation(), dir)
		if err != nil {
			return Offset{}, err
		}
		return n.layout.ToOffset(n.layout.ToHex(n.Self).Add(v)), nil
	default:
		return Offset{}, fmt.Errorf("%w: %v on %v grid", ErrInvalidDirection, dir, n.kind)
	}
}

// Contains reports whether o is one of the neighbours.
func (n Neighborhood) Contains(o Offset) bool {
	for _, c := range n.Neighbors {
		if c == o {
			return true
		}
	}
	return false
}

// Equal reports whether both neighbourhoods share a centre and hold the same
// neighbours with the same multiplicity, in any order.
func (n Neighborhood) Equal(other Neighborhood) bool {
	if n.Self != other.Self || len(n.Neighbors) != len(other.Neighbors) {
		return false
	}
	counts := make(map[Offset]int, len(n.Neighbors))
	for _, c := range n.Neighbors {
		counts[c]++
	}
	for _, c := range other.Neighbors {
		counts[c]--
		if counts[c] < 0 {
			return false
		}
	}
	return true
}

func (n Neighborhood) String() string {
	parts := make([]string, len(n.Neighbors))
	for i, c := range n.Neighbors {
		parts[i] = c.String()
	}
	return n.Self.String() + "->{" + strings.Join(parts, ",") + "}"
}
