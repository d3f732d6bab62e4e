package core

import (
	"errors"

	"tilelife/internal/geometry"
)

// ErrIteratorExhausted is returned by Next once an iterator has no elements
// left.
var ErrIteratorExhausted = errors.New("core: iterator exhausted")

// GenerationMargin is how far past the live rectangle a generation scan
// reaches, so births next to the live region are considered.
const GenerationMargin = 2

// Iterator walks cells of a grid.
type Iterator interface {
	HasNext() bool
	Next() (Cell, error)
}

// GenerationIterator visits every coordinate, live or dead, inside the live
// rectangle grown by GenerationMargin, in row-major order. States are read
// from the grid as the iterator advances.
type GenerationIterator struct {
	grid *SparseGrid
	rect Rect
	pos  int
}

// Generation returns an iterator over the scan area of the next generation.
func (g *SparseGrid) Generation() *GenerationIterator {
	return &GenerationIterator{grid: g, rect: g.LiveRectangle().Expand(GenerationMargin)}
}

// Bounds returns the rectangle being scanned.
func (it *GenerationIterator) Bounds() Rect { return it.rect }

func (it *GenerationIterator) HasNext() bool {
	return !it.rect.Empty() && it.pos < it.rect.W*it.rect.H
}

func (it *GenerationIterator) Next() (Cell, error) {
	if !it.HasNext() {
		return Cell{}, ErrIteratorExhausted
	}
	o := geometry.Offset{
		Col: it.rect.X + it.pos%it.rect.W,
		Row: it.rect.Y + it.pos/it.rect.W,
	}
	it.pos++
	return it.grid.Get(o), nil
}

// LiveIterator visits the live cells present when it was created, in no
// particular order.
type LiveIterator struct {
	grid *SparseGrid
	keys []geometry.Offset
	pos  int
}

// Live returns an iterator over the live cells.
func (g *SparseGrid) Live() *LiveIterator {
	return &LiveIterator{grid: g, keys: g.keys()}
}

func (it *LiveIterator) HasNext() bool { return it.pos < len(it.keys) }

func (it *LiveIterator) Next() (Cell, error) {
	if !it.HasNext() {
		return Cell{}, ErrIteratorExhausted
	}
	o := it.keys[it.pos]
	it.pos++
	return it.grid.Get(o), nil
}

// WindowIterator visits the live cells inside a rectangle.
type WindowIterator struct {
	grid *SparseGrid
	keys []geometry.Offset
	pos  int
}

// Window returns an iterator over the live cells inside r.
func (g *SparseGrid) Window(r Rect) *WindowIterator {
	keys := make([]geometry.Offset, 0)
	for o := range g.cells {
		if r.Contains(o) {
			keys = append(keys, o)
		}
	}
	return &WindowIterator{grid: g, keys: keys}
}

func (it *WindowIterator) HasNext() bool { return it.pos < len(it.keys) }

func (it *WindowIterator) Next() (Cell, error) {
	if !it.HasNext() {
		return Cell{}, ErrIteratorExhausted
	}
	o := it.keys[it.pos]
	it.pos++
	return it.grid.Get(o), nil
}

// Collect drains an iterator into a slice.
func Collect(it Iterator) ([]Cell, error) {
	var out []Cell
	for it.HasNext() {
		c, err := it.Next()
		if err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, nil
}
