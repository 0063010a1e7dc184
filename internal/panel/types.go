package panel

import (
	"fmt"
	"strings"
	"time"
)

// State is one of the three resting heights the panel snaps to.
type State int

const (
	Collapsed State = iota
	Half
	Expanded
)

// States lists every snap state in ascending height order.
var States = []State{Collapsed, Half, Expanded}

func (s State) String() string {
	switch s {
	case Collapsed:
		return "collapsed"
	case Half:
		return "half"
	case Expanded:
		return "expanded"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ParseState converts a state name into a State.
func ParseState(name string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "collapsed", "min":
		return Collapsed, nil
	case "half", "mid":
		return Half, nil
	case "expanded", "max":
		return Expanded, nil
	default:
		return Collapsed, fmt.Errorf("unknown panel state %q", name)
	}
}

// HeightMode describes how the host resolves the panel height.
//
// Explicit mode uses the numeric height set through HostLayout.SetHeight.
// Pinned mode ignores it and keeps the bottom edge at a fixed inset from the
// container, so container resizes are followed without re-measuring.
type HeightMode int

const (
	Explicit HeightMode = iota
	Pinned
)

func (m HeightMode) String() string {
	if m == Pinned {
		return "pinned"
	}
	return "explicit"
}

// ModeFor returns the height mode a settled panel uses for the given state.
func ModeFor(s State) HeightMode {
	if s == Expanded {
		return Pinned
	}
	return Explicit
}

// Point is a location in host coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned region. Min is inclusive and Max is exclusive.
type Rect struct {
	Min, Max Point
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// LayoutRequest describes how the host should apply pending height changes.
type LayoutRequest struct {
	Animated bool
	Duration time.Duration
	Damping  float64
	// InitialVelocity is normalized by the distance to travel: 1.0 covers
	// the whole distance in one second.
	InitialVelocity float64
}

// HostLayout is the view hierarchy the panel lives in.
type HostLayout interface {
	// MinAvailableHeight is the smallest height the host allows, excluding
	// the slider region.
	MinAvailableHeight() float64
	// MaxAvailableHeight is the space below the panel's top edge down to
	// the bottom inset.
	MaxAvailableHeight() float64
	// Height returns the explicit height value.
	Height() float64
	// RenderedHeight returns the height currently on screen.
	RenderedHeight() float64
	SetHeight(h float64)
	SetEdgePinned(pinned bool)
	// HandleBounds is the grab-handle region in host coordinates.
	HandleBounds() Rect
	// RequestLayout applies pending changes. onComplete runs exactly once,
	// synchronously for unanimated requests.
	RequestLayout(req LayoutRequest, onComplete func())
}

// Bounds holds the three resting heights derived for a single computation.
type Bounds struct {
	Min  float64
	Half float64
	Max  float64
}

// Valid reports whether the bounds come from a laid-out host.
func (b Bounds) Valid() bool {
	return b.Min > 0 && b.Max > 0 && b.Max >= b.Min
}

// HeightFor returns the resting height of s.
func (b Bounds) HeightFor(s State) float64 {
	switch s {
	case Collapsed:
		return b.Min
	case Expanded:
		return b.Max
	default:
		return b.Half
	}
}
