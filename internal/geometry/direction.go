package geometry

import "fmt"

// Direction names a compass heading from one tile to an adjacent tile.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Directions lists every compass heading clockwise from north.
var Directions = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// quadVectors are the Moore neighbourhood offsets, clockwise from north.
var quadVectors = [8]Offset{
	{Col: 0, Row: -1},
	{Col: 1, Row: -1},
	{Col: 1, Row: 0},
	{Col: 1, Row: 1},
	{Col: 0, Row: 1},
	{Col: -1, Row: 1},
	{Col: -1, Row: 0},
	{Col: -1, Row: -1},
}

// hexVectors are the six axial unit vectors.
var hexVectors = [6]Hex{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// hexVector returns the axial unit vector pointing in dir for the given
// orientation. Pixel y grows downward.
func hexVector(o Orientation, dir Direction) (Hex, error) {
	if o == Vertical {
		switch dir {
		case North:
			return Hex{Q: 0, R: -1}, nil
		case NorthEast:
			return Hex{Q: 1, R: -1}, nil
		case SouthEast:
			return Hex{Q: 1, R: 0}, nil
		case South:
			return Hex{Q: 0, R: 1}, nil
		case SouthWest:
			return Hex{Q: -1, R: 1}, nil
		case NorthWest:
			return Hex{Q: -1, R: 0}, nil
		}
	} else {
		switch dir {
		case NorthEast:
			return Hex{Q: 1, R: -1}, nil
		case East:
			return Hex{Q: 1, R: 0}, nil
		case SouthEast:
			return Hex{Q: 0, R: 1}, nil
		case SouthWest:
			return Hex{Q: -1, R: 1}, nil
		case West:
			return Hex{Q: -1, R: 0}, nil
		case NorthWest:
			return Hex{Q: 0, R: -1}, nil
		}
	}
	return Hex{}, fmt.Errorf("%w: %v on %v hex grid", ErrInvalidDirection, dir, o)
}
