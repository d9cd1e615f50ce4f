package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells in a grid of this size.
func (s Size) Cells() int { return s.W * s.H }

// Cell addresses one grid cell.
type Cell struct {
	Row int
	Col int
}

// Engine is the contract an external cellular automaton must satisfy.
//
// Cells exposes the engine's own packed storage: bit i of the returned buffer
// (byte i/8, bit i%8) holds cell i = row*W + col, with 0 meaning alive and 1
// meaning dead. Tick, Reset, Clear and Toggle may reallocate or swap that
// storage, so a buffer obtained before any of them must not be read after.
type Engine interface {
	Name() string
	Size() Size
	Cells() []byte
	Tick()
	Reset()
	Clear()
	Toggle(row, col int)
}

// Factory constructs an Engine using an optional configuration map.
type Factory func(cfg map[string]string) Engine

var engines = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available engine factories.
func Engines() map[string]Factory {
	return engines
}

// EngineNames returns the registered engine names in sorted order.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
