// Package fps measures the frame rate of the animation loop.
package fps

import (
	"math"
	"time"
)

// DefaultWindow is the number of recent samples kept for statistics.
const DefaultWindow = 100

// Stats summarises the sample window.
type Stats struct {
	Latest float64
	Mean   float64
	Min    float64
	Max    float64
}

// Meter records the instantaneous frame rate each time it is sampled.
type Meter struct {
	now     func() time.Time
	last    time.Time
	samples []float64
	next    int
	full    bool
}

// NewMeter returns a meter keeping the last window samples.
func NewMeter(window int) *Meter {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Meter{now: time.Now, samples: make([]float64, window)}
}

// Sample records the rate implied by the time since the previous sample. The
// first call only starts the clock.
func (m *Meter) Sample() {
	now := m.now()
	if m.last.IsZero() {
		m.last = now
		return
	}
	delta := now.Sub(m.last)
	m.last = now
	if delta <= 0 {
		return
	}
	m.samples[m.next] = float64(time.Second) / float64(delta)
	m.next = (m.next + 1) % len(m.samples)
	if m.next == 0 {
		m.full = true
	}
}

// Len returns the number of samples in the window.
func (m *Meter) Len() int {
	if m.full {
		return len(m.samples)
	}
	return m.next
}

// History returns the window oldest first.
func (m *Meter) History() []float64 {
	n := m.Len()
	out := make([]float64, 0, n)
	start := 0
	if m.full {
		start = m.next
	}
	for i := 0; i < n; i++ {
		out = append(out, m.samples[(start+i)%len(m.samples)])
	}
	return out
}

// Stats returns latest, mean, min and max over the window. All are zero
// before the second sample.
func (m *Meter) Stats() Stats {
	n := m.Len()
	if n == 0 {
		return Stats{}
	}
	latest := m.samples[(m.next-1+len(m.samples))%len(m.samples)]
	st := Stats{Latest: latest, Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	for _, v := range m.History() {
		sum += v
		st.Min = math.Min(st.Min, v)
		st.Max = math.Max(st.Max, v)
	}
	st.Mean = sum / float64(n)
	return st
}
