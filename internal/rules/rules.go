// Package rules describes outer-totalistic life-like rules as survival and
// birth sets of live-neighbour counts.
package rules

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRule is wrapped by every rule parsing failure.
var ErrInvalidRule = errors.New("rules: invalid rule")

// MaxNeighbors is the largest neighbour count any supported tiling produces.
const MaxNeighbors = 8

// Set is a bitmask of neighbour counts in [0, MaxNeighbors].
type Set uint16

// SetOf builds a Set from the given counts. Out of range counts are ignored.
func SetOf(counts ...int) Set {
	var s Set
	for _, c := range counts {
		if c >= 0 && c <= MaxNeighbors {
			s |= 1 << c
		}
	}
	return s
}

// Has reports whether n is a member.
func (s Set) Has(n int) bool {
	return n >= 0 && n <= MaxNeighbors && s&(1<<n) != 0
}

// Counts lists the members in ascending order.
func (s Set) Counts() []int {
	var out []int
	for n := 0; n <= MaxNeighbors; n++ {
		if s.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

func (s Set) String() string {
	var b strings.Builder
	for _, n := range s.Counts() {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}

// Life is a rule of the life family: a live cell survives when its live
// neighbour count is in Survival, a dead cell is born when it is in Birth.
type Life struct {
	Survival Set
	Birth    Set
}

// Alive reports whether a cell is alive in the next generation.
func (l Life) Alive(alive bool, liveNeighbors int) bool {
	if alive {
		return l.Survival.Has(liveNeighbors)
	}
	return l.Birth.Has(liveNeighbors)
}

// Next maps a cell state and its neighbour states to the next state. Any
// non-zero neighbour state counts as alive.
func (l Life) Next(state int, neighbors []int) int {
	live := 0
	for _, s := range neighbors {
		if s != 0 {
			live++
		}
	}
	if l.Alive(state != 0, live) {
		return 1
	}
	return 0
}

// String renders the rule in B/S notation, e.g. "B3/S23".
func (l Life) String() string {
	return "B" + l.Birth.String() + "/S" + l.Survival.String()
}

// Presets.
var (
	Conway   = Life{Survival: SetOf(2, 3), Birth: SetOf(3)}
	HighLife = Life{Survival: SetOf(2, 3), Birth: SetOf(3, 6)}
	Seeds    = Life{Birth: SetOf(2)}
	HexLife  = Life{Survival: SetOf(3, 4), Birth: SetOf(2)}
)

var presets = map[string]Life{
	"conway":   Conway,
	"life":     Conway,
	"highlife": HighLife,
	"seeds":    Seeds,
	"hexlife":  HexLife,
}

// Parse reads a rule from a preset name, B/S notation ("B3/S23" or
// "S23/B3"), or the classic survival/birth notation ("23/3").
func Parse(s string) (Life, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return Life{}, fmt.Errorf("%w: empty rule", ErrInvalidRule)
	}
	if l, ok := presets[strings.ToLower(in)]; ok {
		return l, nil
	}
	parts := strings.Split(in, "/")
	if len(parts) != 2 {
		return Life{}, fmt.Errorf("%w: %q needs exactly one '/'", ErrInvalidRule, s)
	}

	var l Life
	var seenB, seenS bool
	for i, part := range parts {
		part = strings.TrimSpace(part)
		var target *Set
		switch {
		case part != "" && (part[0] == 'B' || part[0] == 'b'):
			if seenB {
				return Life{}, fmt.Errorf("%w: %q repeats the birth set", ErrInvalidRule, s)
			}
			seenB, target, part = true, &l.Birth, part[1:]
		case part != "" && (part[0] == 'S' || part[0] == 's'):
			if seenS {
				return Life{}, fmt.Errorf("%w: %q repeats the survival set", ErrInvalidRule, s)
			}
			seenS, target, part = true, &l.Survival, part[1:]
		case i == 0 && !seenB && !seenS:
			seenS, target = true, &l.Survival
		case i == 1 && seenS && !seenB:
			seenB, target = true, &l.Birth
		default:
			return Life{}, fmt.Errorf("%w: cannot tell birth from survival in %q", ErrInvalidRule, s)
		}
		set, err := parseCounts(part)
		if err != nil {
			return Life{}, fmt.Errorf("%w: %q: %v", ErrInvalidRule, s, err)
		}
		*target = set
	}
	return l, nil
}

// MustParse is like Parse but panics on error. Use for constants.
func MustParse(s string) Life {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

func parseCounts(digits string) (Set, error) {
	var s Set
	for _, r := range digits {
		if r < '0' || r > '0'+MaxNeighbors {
			return 0, fmt.Errorf("count %q out of range 0-%d", r, MaxNeighbors)
		}
		n := int(r - '0')
		if s.Has(n) {
			return 0, fmt.Errorf("count %d repeated", n)
		}
		s |= 1 << n
	}
	return s, nil
}
