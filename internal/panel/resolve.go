package panel

import "math"

// Target is a decided transition: the state to commit, the height it rests
// at, and the normalized spring velocity to start the animation with.
type Target struct {
	State    State
	Height   float64
	Velocity float64
}

// Resolve picks the snap state nearest to height. Ties between Collapsed and
// Half go to Collapsed, ties between Half and Expanded go to Half.
func Resolve(height float64, b Bounds) State {
	if height <= b.Half {
		if height-b.Min <= b.Half-height {
			return Collapsed
		}
		return Half
	}
	if height-b.Half <= b.Max-height {
		return Half
	}
	return Expanded
}

// SpringVelocity converts a linear velocity into the distance-normalized
// initial velocity of a spring moving from current to target. Degenerate
// inputs yield zero.
func SpringVelocity(velocity, current, target float64) float64 {
	v := velocity / (target - current)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Plan decides the transition to state from the current height.
func Plan(state State, velocity, current float64, b Bounds) Target {
	height := b.HeightFor(state)
	return Target{
		State:    state,
		Height:   height,
		Velocity: SpringVelocity(velocity, current, height),
	}
}

// ShouldAccept reports whether a touch at p may start a drag.
func ShouldAccept(p Point, handle Rect, resizable bool) bool {
	if !resizable || handle.Empty() {
		return false
	}
	return handle.Contains(p)
}
