package core

// BytesFor returns the length of a packed bitset holding w*h cells.
func BytesFor(w, h int) int {
	return (w*h + 7) / 8
}

// BitIsSet reports whether bit i of the packed buffer is set. Callers
// guarantee that i addresses a byte inside buf.
func BitIsSet(buf []byte, i int) bool {
	mask := byte(1) << (i % 8)
	return buf[i/8]&mask == mask
}

// Index returns the linear cell index for (row, col) on a grid of width w.
func Index(w, row, col int) int { return row*w + col }

// Mod is the toroidal remainder: the result is in [0, m) for any n and m > 0.
func Mod(n, m int) int {
	return (n%m + m) % m
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (s Size) Wrap(row, col int) (int, int) {
	return Mod(row, s.H), Mod(col, s.W)
}

// Contains reports whether (row, col) lies on the grid.
func (s Size) Contains(row, col int) bool {
	return row >= 0 && row < s.H && col >= 0 && col < s.W
}
