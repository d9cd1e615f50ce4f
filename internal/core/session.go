package core

import "errors"

// ErrStaleView is the panic value raised when a View is read after an engine
// mutation that may have relocated its buffer.
var ErrStaleView = errors.New("core: cell view read after engine mutation")

// Session fronts an Engine for the lifetime of one controller. Dimensions are
// read once at construction; every mutation goes through the Session so that
// outstanding views can be invalidated.
type Session struct {
	engine Engine
	size   Size
	epoch  uint64
}

// NewSession wraps the engine and captures its dimensions.
func NewSession(e Engine) *Session {
	return &Session{engine: e, size: e.Size()}
}

// Engine returns the wrapped engine.
func (s *Session) Engine() Engine { return s.engine }

// Size returns the grid dimensions captured when the session was created.
func (s *Session) Size() Size { return s.size }

// View acquires a fresh view of the engine's cell buffer.
func (s *Session) View() View {
	return View{
		cells:   s.engine.Cells(),
		size:    s.size,
		epoch:   s.epoch,
		session: s,
	}
}

// Tick advances the engine by one step.
func (s *Session) Tick() {
	s.engine.Tick()
	s.epoch++
}

// Reset restores the engine's initial pattern.
func (s *Session) Reset() {
	s.engine.Reset()
	s.epoch++
}

// Clear kills every cell.
func (s *Session) Clear() {
	s.engine.Clear()
	s.epoch++
}

// Toggle flips one cell.
func (s *Session) Toggle(row, col int) {
	s.engine.Toggle(row, col)
	s.epoch++
}

// View is a frame-scoped borrow of the engine's packed cell buffer. It is only
// valid until the next mutation made through the Session that issued it.
type View struct {
	cells   []byte
	size    Size
	epoch   uint64
	session *Session
}

// Size returns the grid dimensions covered by the view.
func (v View) Size() Size { return v.size }

// Valid reports whether no mutation happened since the view was acquired.
func (v View) Valid() bool {
	return v.session != nil && v.session.epoch == v.epoch
}

// Dead reports whether the bit for (row, col) is set. A set bit is a dead cell.
func (v View) Dead(row, col int) bool {
	if !v.Valid() {
		panic(ErrStaleView)
	}
	return BitIsSet(v.cells, Index(v.size.W, row, col))
}

// Alive is the complement of Dead.
func (v View) Alive(row, col int) bool { return !v.Dead(row, col) }
