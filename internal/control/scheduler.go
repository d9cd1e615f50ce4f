package control

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTicks is returned when a tick-count input is not a positive integer.
var ErrInvalidTicks = errors.New("control: invalid tick count")

// Labels shown on the play/pause control.
const (
	LabelPlay  = "play"
	LabelPause = "pause"
)

// FrameID identifies a frame requested from a FrameHost. Zero means none.
type FrameID uint64

// FrameHost is the host's frame-callback mechanism. RequestFrame arranges for
// fn to run once, on the host loop, at the next frame. CancelFrame drops a
// request that has not started yet.
type FrameHost interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Label is the play/pause control whose text follows the scheduler state.
type Label interface {
	SetLabel(text string)
}

// Sampler is the FPS meter. It is sampled once per frame.
type Sampler interface {
	Sample()
}

// Scheduler owns play/pause state and runs the per-frame cycle: sample the
// FPS meter, advance the engine by the tick count, redraw, reschedule.
type Scheduler struct {
	host    FrameHost
	label   Label
	fps     Sampler
	ctrl    *Controller
	ticks   int
	pending FrameID
	running bool
	frames  uint64
}

// NewScheduler returns a paused scheduler with a tick count of one. label and
// fps may be nil.
func NewScheduler(host FrameHost, ctrl *Controller, label Label, fps Sampler) *Scheduler {
	return &Scheduler{host: host, ctrl: ctrl, label: label, fps: fps, ticks: 1}
}

// Running reports whether a frame is scheduled.
func (s *Scheduler) Running() bool { return s.running }

// Ticks returns the number of engine steps per frame.
func (s *Scheduler) Ticks() int { return s.ticks }

// Frames returns the number of frame bodies executed so far.
func (s *Scheduler) Frames() uint64 { return s.frames }

// Label returns the text the play/pause control should currently show.
func (s *Scheduler) Label() string {
	if s.running {
		return LabelPause
	}
	return LabelPlay
}

// Play schedules the next frame. It does nothing while already running.
func (s *Scheduler) Play() {
	if s.running {
		return
	}
	s.setLabel(LabelPause)
	s.running = true
	s.pending = s.host.RequestFrame(s.frame)
}

// Pause cancels the pending frame. A frame the host has already started runs
// to completion but does not reschedule.
func (s *Scheduler) Pause() {
	if !s.running {
		return
	}
	s.host.CancelFrame(s.pending)
	s.pending = 0
	s.setLabel(LabelPlay)
	s.running = false
}

// Toggle switches between Play and Pause.
func (s *Scheduler) Toggle() {
	if s.running {
		s.Pause()
		return
	}
	s.Play()
}

// SetTicks parses raw as the new tick count. Anything other than a positive
// integer is rejected and the previous count is kept. The new count applies
// from the next frame.
func (s *Scheduler) SetTicks(raw string) error {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTicks, raw)
	}
	if n < 1 {
		return fmt.Errorf("%w: %d is not positive", ErrInvalidTicks, n)
	}
	s.ticks = n
	return nil
}

func (s *Scheduler) frame() {
	s.pending = 0
	s.frames++
	if s.fps != nil {
		s.fps.Sample()
	}
	session := s.ctrl.Session()
	for i, n := 0, s.ticks; i < n; i++ {
		session.Tick()
	}
	s.ctrl.Redraw()
	if s.running {
		s.pending = s.host.RequestFrame(s.frame)
	}
}

func (s *Scheduler) setLabel(text string) {
	if s.label != nil {
		s.label.SetLabel(text)
	}
}
