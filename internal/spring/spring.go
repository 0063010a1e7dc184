// Package spring drives damped spring animations of a single value.
package spring

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	DefaultFPS = 60

	// settleEpsilon is the distance and speed under which an animation is
	// considered at rest.
	settleEpsilon = 0.01
)

// Params describes one animation.
type Params struct {
	Duration time.Duration
	Damping  float64
	// Velocity is the initial velocity normalized by the distance to
	// travel, in distances per second.
	Velocity float64
	FPS      int
}

// Animation interpolates a value toward a target with a damped spring.
// It is advanced explicitly, one frame per Step call.
type Animation struct {
	spring harmonica.Spring
	params Params
	frame  time.Duration

	pos, vel, target float64
	elapsed          time.Duration
	done             bool
}

// New starts an animation from from to to.
func New(from, to float64, p Params) *Animation {
	p = normalize(p)
	a := &Animation{
		params: p,
		frame:  time.Second / time.Duration(p.FPS),
		pos:    from,
		target: to,
	}
	a.spring = harmonica.NewSpring(harmonica.FPS(p.FPS), angularFrequency(p), p.Damping)
	a.vel = finite(p.Velocity * (to - from))
	return a
}

// angularFrequency returns the spring stiffness that settles a spring with
// the given damping within duration.
func angularFrequency(p Params) float64 {
	// An underdamped spring's envelope decays as exp(-damping*omega*t);
	// four time constants leave about 2% of the distance.
	return 4 / (p.Damping * p.Duration.Seconds())
}

func normalize(p Params) Params {
	if p.FPS <= 0 {
		p.FPS = DefaultFPS
	}
	if p.Duration <= 0 {
		p.Duration = 500 * time.Millisecond
	}
	if p.Damping <= 0 {
		p.Damping = 1
	}
	p.Velocity = finite(p.Velocity)
	return p
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Frame is the interval between two Step calls.
func (a *Animation) Frame() time.Duration {
	return a.frame
}

// Position returns the current value.
func (a *Animation) Position() float64 {
	return a.pos
}

// Velocity returns the current speed in units per second.
func (a *Animation) Velocity() float64 {
	return a.vel
}

// Target returns the value the animation moves toward.
func (a *Animation) Target() float64 {
	return a.target
}

// Done reports whether the animation has reached its target.
func (a *Animation) Done() bool {
	return a.done
}

// Step advances one frame and returns the new value and whether the
// animation has finished. A finished animation rests exactly on its target.
func (a *Animation) Step() (float64, bool) {
	if a.done {
		return a.pos, true
	}

	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	a.elapsed += a.frame

	settled := math.Abs(a.pos-a.target) < settleEpsilon && math.Abs(a.vel) < settleEpsilon
	if settled || a.elapsed >= a.params.Duration {
		a.pos = a.target
		a.vel = 0
		a.done = true
	}
	return a.pos, a.done
}

// Retarget points a running animation at a new target, keeping its current
// position and velocity and restarting the clock.
func (a *Animation) Retarget(to float64, p Params) {
	p = normalize(p)
	a.params = p
	a.frame = time.Second / time.Duration(p.FPS)
	a.spring = harmonica.NewSpring(harmonica.FPS(p.FPS), angularFrequency(p), p.Damping)
	a.vel += finite(p.Velocity * (to - a.pos))
	a.target = to
	a.elapsed = 0
	a.done = false
}
