package core

import "math/rand/v2"

// RNG draws the random boards used by engine resets. The same seed always
// yields the same sequence of boards.
type RNG struct {
	r *rand.Rand
}

// NewRNG seeds a PCG stream.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBits randomises a packed bitset. Each of the first n bits is cleared
// with probability 1/2; padding bits past n stay set.
func (r *RNG) FillBits(buf []byte, n int) {
	for i := range buf {
		buf[i] = 0xff
	}
	for i := 0; i < n; i += 64 {
		word := r.r.Uint64()
		for j := 0; j < 64 && i+j < n; j++ {
			if word&(1<<j) == 0 {
				k := i + j
				buf[k/8] &^= 1 << (k % 8)
			}
		}
	}
}
