package universe

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadRule is returned for rule strings not in B/S notation.
var ErrBadRule = errors.New("universe: malformed rule")

// Rule is a life-like outer-totalistic rule. Bit n of Birth (Survive) is set
// when a dead (live) cell with n live neighbours is alive next step.
type Rule struct {
	Birth   uint16
	Survive uint16
}

// Conway is B3/S23.
var Conway = Rule{Birth: 1 << 3, Survive: 1<<2 | 1<<3}

// ParseRule parses B/S notation such as "B3/S23" or "b36/s23".
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("%w: %q", ErrBadRule, s)
	}
	if strings.HasPrefix(parts[0], "S") {
		parts[0], parts[1] = parts[1], parts[0]
	}
	birth, err := parseCounts(parts[0], 'B')
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q", err, s)
	}
	survive, err := parseCounts(parts[1], 'S')
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q", err, s)
	}
	return Rule{Birth: birth, Survive: survive}, nil
}

func parseCounts(s string, prefix byte) (uint16, error) {
	if len(s) == 0 || s[0] != prefix {
		return 0, ErrBadRule
	}
	var mask uint16
	for _, r := range s[1:] {
		if r < '0' || r > '8' {
			return 0, ErrBadRule
		}
		mask |= 1 << (r - '0')
	}
	return mask, nil
}

// Next reports whether a cell is alive after one step.
func (r Rule) Next(alive bool, neighbours int) bool {
	if alive {
		return r.Survive&(1<<neighbours) != 0
	}
	return r.Birth&(1<<neighbours) != 0
}

// String formats the rule in B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n := 0; n <= 8; n++ {
		if r.Birth&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n := 0; n <= 8; n++ {
		if r.Survive&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}
