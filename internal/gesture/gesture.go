// Package gesture turns raw pointer samples into a drag lifecycle and routes
// it to a drag target.
package gesture

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/overlay/internal/panel"
)

// Phase is the lifecycle position of a drag gesture.
type Phase int

const (
	Possible Phase = iota
	Began
	Changed
	Ended
	Failed
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case Possible:
		return "possible"
	case Began:
		return "began"
	case Changed:
		return "changed"
	case Ended:
		return "ended"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Terminal reports whether the phase closes a drag session.
func (p Phase) Terminal() bool {
	return p == Ended || p == Failed || p == Cancelled
}

// Vector is a two-dimensional displacement or velocity.
type Vector struct {
	X, Y float64
}

// Event is one drag state change. Translation is relative to the touch-down
// location and Velocity is in units per second.
type Event struct {
	Phase       Phase
	Translation Vector
	Velocity    Vector
	Location    panel.Point
}

// Target receives a dispatched drag lifecycle.
type Target interface {
	RestartDrag(translationY float64)
	BeginOrContinueDrag(translationY float64)
	EndDrag(velocityY float64)
}

// Dispatch routes ev to t.
func Dispatch(t Target, ev Event) {
	switch ev.Phase {
	case Began:
		t.RestartDrag(ev.Translation.Y)
	case Possible, Changed:
		t.BeginOrContinueDrag(ev.Translation.Y)
	case Ended, Failed, Cancelled:
		t.EndDrag(ev.Velocity.Y)
	}
}

// Action is a raw pointer action.
type Action int

const (
	Press Action = iota
	Motion
	Release
	Cancel
)

// Pointer is one raw pointer sample.
type Pointer struct {
	Action   Action
	Location panel.Point
	Time     time.Time
}

// VelocityWindow is how far back samples count toward the release velocity.
const VelocityWindow = 100 * time.Millisecond

type sample struct {
	at  time.Time
	loc panel.Point
}

// Recognizer tracks a single pointer and emits drag events for touches the
// admission predicate accepts. Rejected touches produce no events.
type Recognizer struct {
	admit func(panel.Point) bool

	active  bool
	origin  panel.Point
	samples []sample
}

// NewRecognizer creates a Recognizer. A nil admit accepts every touch.
func NewRecognizer(admit func(panel.Point) bool) *Recognizer {
	return &Recognizer{admit: admit}
}

// Active reports whether a drag is being tracked.
func (r *Recognizer) Active() bool {
	return r.active
}

// Handle consumes a pointer sample. It returns the resulting event and
// whether the sample belonged to a drag.
func (r *Recognizer) Handle(p Pointer) (Event, bool) {
	switch p.Action {
	case Press:
		if r.admit != nil && !r.admit(p.Location) {
			if !r.active {
				return Event{}, false
			}
			// The previous session lost its release. Close it so the
			// rejected touch does not keep steering the panel.
			ev := r.event(Cancelled, r.last().loc)
			r.reset()
			return ev, true
		}
		r.active = true
		r.origin = p.Location
		r.samples = append(r.samples[:0], sample{at: p.Time, loc: p.Location})
		return Event{Phase: Began, Location: p.Location}, true

	case Motion:
		if !r.active {
			return Event{}, false
		}
		r.record(p)
		return r.event(Changed, p.Location), true

	case Release:
		if !r.active {
			return Event{}, false
		}
		r.record(p)
		ev := r.event(Ended, p.Location)
		r.reset()
		return ev, true

	case Cancel:
		if !r.active {
			return Event{}, false
		}
		ev := r.event(Cancelled, r.last().loc)
		r.reset()
		return ev, true
	}
	return Event{}, false
}

func (r *Recognizer) record(p Pointer) {
	r.samples = append(r.samples, sample{at: p.Time, loc: p.Location})
	cutoff := p.Time.Add(-VelocityWindow)
	drop := 0
	for drop < len(r.samples)-2 && r.samples[drop].at.Before(cutoff) {
		drop++
	}
	r.samples = r.samples[drop:]
}

func (r *Recognizer) event(phase Phase, loc panel.Point) Event {
	return Event{
		Phase:       phase,
		Translation: Vector{X: loc.X - r.origin.X, Y: loc.Y - r.origin.Y},
		Velocity:    r.velocity(),
		Location:    loc,
	}
}

func (r *Recognizer) last() sample {
	if len(r.samples) == 0 {
		return sample{loc: r.origin}
	}
	return r.samples[len(r.samples)-1]
}

func (r *Recognizer) velocity() Vector {
	if len(r.samples) < 2 {
		return Vector{}
	}
	first, last := r.samples[0], r.samples[len(r.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return Vector{}
	}
	return Vector{
		X: (last.loc.X - first.loc.X) / dt,
		Y: (last.loc.Y - first.loc.Y) / dt,
	}
}

func (r *Recognizer) reset() {
	r.active = false
	r.origin = panel.Point{}
	r.samples = r.samples[:0]
}
