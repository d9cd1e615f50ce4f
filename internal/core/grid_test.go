package core

import "testing"

func TestModAlwaysInRange(t *testing.T) {
	for m := 1; m <= 9; m++ {
		for n := -50; n <= 50; n++ {
			got := Mod(n, m)
			if got < 0 || got >= m {
				t.Fatalf("Mod(%d, %d) = %d, want value in [0, %d)", n, m, got, m)
			}
			if (got-n)%m != 0 {
				t.Fatalf("Mod(%d, %d) = %d is not congruent to n", n, m, got)
			}
		}
	}
	if got := Mod(-1, 64); got != 63 {
		t.Fatalf("Mod(-1, 64) = %d, want 63", got)
	}
}

func TestBitIsSetLSBFirst(t *testing.T) {
	buf := []byte{0b0000_0101, 0b1000_0000}
	want := map[int]bool{0: true, 1: false, 2: true, 3: false, 8: false, 15: true}
	for i, expect := range want {
		if got := BitIsSet(buf, i); got != expect {
			t.Fatalf("BitIsSet(%d) = %v, want %v", i, got, expect)
		}
	}
}

func TestBytesForRoundsUp(t *testing.T) {
	tests := []struct {
		w, h, want int
	}{
		{8, 1, 1},
		{3, 3, 2},
		{64, 64, 512},
		{5, 5, 4},
	}
	for _, tt := range tests {
		if got := BytesFor(tt.w, tt.h); got != tt.want {
			t.Errorf("BytesFor(%d, %d) = %d, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestSizeWrap(t *testing.T) {
	s := Size{W: 4, H: 3}
	row, col := s.Wrap(-1, 4)
	if row != 2 || col != 0 {
		t.Fatalf("Wrap(-1, 4) = (%d, %d), want (2, 0)", row, col)
	}
	if !s.Contains(2, 3) || s.Contains(3, 0) || s.Contains(0, -1) {
		t.Fatal("Contains disagrees with grid bounds")
	}
}

func TestFillBitsSetsPadding(t *testing.T) {
	buf := make([]byte, BytesFor(3, 3))
	NewRNG(7).FillBits(buf, 9)
	for i := 9; i < 16; i++ {
		if !BitIsSet(buf, i) {
			t.Fatalf("padding bit %d should stay set", i)
		}
	}
}
