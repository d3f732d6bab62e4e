package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultSide is the side length used when configuration omits one.
const DefaultSide = 10

// DefaultLayout is the hex layout used when configuration omits one.
const DefaultLayout = OddR

// HexTileOfValues builds a hex tile from up to two tokens: a layout name
// and a side length, in that order.
func HexTileOfValues(tokens ...string) (HexTile, error) {
	if len(tokens) > 2 {
		return HexTile{}, fmt.Errorf("%w: hex tile takes at most 2 values, got %d", ErrConstruction, len(tokens))
	}
	layout := DefaultLayout
	side := float64(DefaultSide)
	if len(tokens) > 0 {
		l, err := ParseLayout(tokens[0])
		if err != nil {
			return HexTile{}, err
		}
		layout = l
	}
	if len(tokens) > 1 {
		s, err := parseSide(tokens[1])
		if err != nil {
			return HexTile{}, err
		}
		side = s
	}
	return NewHexTile(side, layout), nil
}

// QuadTileOfValues builds a square tile from at most one token, the side
// length.
func QuadTileOfValues(tokens ...string) (QuadTile, error) {
	if len(tokens) > 1 {
		return QuadTile{}, fmt.Errorf("%w: quad tile takes at most 1 value, got %d", ErrConstruction, len(tokens))
	}
	side := float64(DefaultSide)
	if len(tokens) == 1 {
		s, err := parseSide(tokens[0])
		if err != nil {
			return QuadTile{}, err
		}
		side = s
	}
	return NewQuadTile(side), nil
}

// ParseTile builds a tile of the named kind ("hex" or "quad") from the
// remaining tokens.
func ParseTile(kind string, tokens ...string) (Tile, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "hex", "hexagon":
		return HexTileOfValues(tokens...)
	case "quad", "square":
		return QuadTileOfValues(tokens...)
	default:
		return nil, fmt.Errorf("%w: unknown tile kind %q", ErrConstruction, kind)
	}
}

func parseSide(token string) (float64, error) {
	side, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is an invalid decimal value", ErrConstruction, token)
	}
	if !(side > 0) || math.IsInf(side, 0) {
		return 0, fmt.Errorf("%w: side length must be positive, got %q", ErrConstruction, token)
	}
	return side, nil
}
