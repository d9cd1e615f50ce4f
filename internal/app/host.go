// Package app hosts the controller in an ebiten window.
package app

import (
	"errors"

	"lifeview/internal/control"
	"lifeview/internal/render"
)

// ErrNoGUI is returned by Run when the binary was built without ebiten.
var ErrNoGUI = errors.New("app: the GUI requires building with the 'ebiten' tag")

// Options configures the window.
type Options struct {
	Palette render.Palette
	Ticks   int
	TPS     int
	// Scale multiplies the board's pixel size on screen.
	Scale int
}

// frameQueue implements control.FrameHost for a game loop. At most one frame
// is outstanding; it runs on the next call to run.
type frameQueue struct {
	next    control.FrameID
	pending control.FrameID
	fn      func()
}

func (q *frameQueue) RequestFrame(fn func()) control.FrameID {
	q.next++
	q.pending = q.next
	q.fn = fn
	return q.pending
}

func (q *frameQueue) CancelFrame(id control.FrameID) {
	if id != 0 && id == q.pending {
		q.pending = 0
		q.fn = nil
	}
}

// run executes the outstanding frame, if any. A request made from inside the
// frame waits for the following call.
func (q *frameQueue) run() bool {
	if q.fn == nil {
		return false
	}
	fn := q.fn
	q.fn = nil
	q.pending = 0
	fn()
	return true
}
