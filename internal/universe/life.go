// Package universe provides engines satisfying core.Engine. Cells are packed
// one bit each, least significant bit first, with a set bit meaning dead.
package universe

import (
	"fmt"
	"strings"

	"lifeview/internal/core"
)

// Life implements a life-like automaton with toroidal wrapping.
type Life struct {
	name string
	w, h int
	rule Rule
	rng  *core.RNG
	cur  []byte
	nxt  []byte
}

// NewLife returns a randomised Life engine of the given size and rule.
func NewLife(name string, w, h int, rule Rule, seed int64) *Life {
	n := core.BytesFor(w, h)
	l := &Life{
		name: name,
		w:    w,
		h:    h,
		rule: rule,
		rng:  core.NewRNG(seed),
		cur:  make([]byte, n),
		nxt:  make([]byte, n),
	}
	l.Reset()
	return l
}

// Name returns the engine identifier.
func (l *Life) Name() string { return l.name }

// Rule returns the birth/survival rule.
func (l *Life) Rule() Rule { return l.rule }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current packed buffer. Tick swaps buffers, so the slice
// is only meaningful until the next mutation.
func (l *Life) Cells() []byte { return l.cur }

// Reset gives every cell an even chance of being alive. Successive resets
// draw fresh patterns from the engine's seeded stream.
func (l *Life) Reset() {
	l.rng.FillBits(l.cur, l.w*l.h)
}

// Clear kills every cell.
func (l *Life) Clear() {
	for i := range l.cur {
		l.cur[i] = 0xff
	}
}

// Toggle flips the cell at (row, col).
func (l *Life) Toggle(row, col int) {
	if row < 0 || row >= l.h || col < 0 || col >= l.w {
		panic(fmt.Sprintf("universe: toggle (%d,%d) outside %dx%d grid", row, col, l.w, l.h))
	}
	i := core.Index(l.w, row, col)
	l.cur[i/8] ^= 1 << (i % 8)
}

// Alive reports whether (row, col) is alive.
func (l *Life) Alive(row, col int) bool {
	return !core.BitIsSet(l.cur, core.Index(l.w, row, col))
}

// Tick advances the simulation by one generation.
func (l *Life) Tick() {
	w, h := l.w, l.h
	for i := range l.nxt {
		l.nxt[i] = 0xff
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					if !core.BitIsSet(l.cur, ny*w+nx) {
						neighbors++
					}
				}
			}
			idx := y*w + x
			alive := !core.BitIsSet(l.cur, idx)
			if l.rule.Next(alive, neighbors) {
				l.nxt[idx/8] &^= 1 << (idx % 8)
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

// String renders one line per row, ⬜ for live cells and ⬛ for dead ones.
func (l *Life) String() string {
	return renderRows(l.cur, l.w, l.h)
}

func renderRows(cells []byte, w, h int) string {
	var b strings.Builder
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if core.BitIsSet(cells, core.Index(w, row, col)) {
				b.WriteRune('⬛')
			} else {
				b.WriteRune('⬜')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Engine {
		c := FromMap(cfg)
		rule, err := ParseRule(c.Rule)
		if err != nil {
			rule = Conway
		}
		return NewLife("life", c.Width, c.Height, rule, c.Seed)
	})
	core.Register("highlife", func(cfg map[string]string) core.Engine {
		c := FromMap(cfg)
		return NewLife("highlife", c.Width, c.Height, Rule{Birth: 1<<3 | 1<<6, Survive: 1<<2 | 1<<3}, c.Seed)
	})
}
