package tui

import (
	"math"
	"time"

	"github.com/alexisbeaulieu97/overlay/internal/panel"
	"github.com/alexisbeaulieu97/overlay/internal/spring"
)

// Geometry places the panel inside the terminal, in rows and columns.
type Geometry struct {
	TopAnchor     float64
	BottomInset   float64
	HostMinHeight float64
	SliderHeight  float64
	Margin        int
}

// Host lays the panel out over the terminal. It keeps the explicit height
// separate from what is on screen so layout can be applied immediately or
// through a spring animation.
type Host struct {
	geo Geometry
	fps int

	width, height int

	explicit float64
	rendered float64
	pinned   bool

	anim       *spring.Animation
	onComplete func()
}

var _ panel.HostLayout = (*Host)(nil)

// NewHost creates a Host. It reports no geometry until the first Resize.
func NewHost(geo Geometry, fps int) *Host {
	if fps <= 0 {
		fps = spring.DefaultFPS
	}
	return &Host{geo: geo, fps: fps}
}

// Resize records the terminal size. A pinned panel follows the new bottom
// edge immediately.
func (h *Host) Resize(width, height int) {
	h.width = width
	h.height = height
	if h.pinned && h.anim == nil {
		h.rendered = h.MaxAvailableHeight()
	}
}

// Size returns the terminal size.
func (h *Host) Size() (int, int) {
	return h.width, h.height
}

// Geometry returns the layout the host was created with.
func (h *Host) Geometry() Geometry {
	return h.geo
}

func (h *Host) laidOut() bool {
	return h.width > 0 && h.height > 0
}

func (h *Host) MinAvailableHeight() float64 {
	if !h.laidOut() {
		return 0
	}
	return h.geo.HostMinHeight
}

func (h *Host) MaxAvailableHeight() float64 {
	if !h.laidOut() {
		return 0
	}
	return math.Max(0, float64(h.height)-h.geo.TopAnchor-h.geo.BottomInset)
}

func (h *Host) Height() float64 {
	return h.explicit
}

func (h *Host) RenderedHeight() float64 {
	return h.rendered
}

func (h *Host) SetHeight(v float64) {
	h.explicit = v
}

func (h *Host) SetEdgePinned(pinned bool) {
	h.pinned = pinned
	if pinned && h.anim == nil {
		h.rendered = h.MaxAvailableHeight()
	}
}

// Pinned reports whether the panel's bottom edge follows the terminal.
func (h *Host) Pinned() bool {
	return h.pinned
}

// HandleBounds is the slider region along the bottom of the panel.
func (h *Host) HandleBounds() panel.Rect {
	bottom := h.geo.TopAnchor + float64(h.RenderedRows())
	return panel.Rect{
		Min: panel.Point{X: float64(h.geo.Margin), Y: bottom - h.geo.SliderHeight},
		Max: panel.Point{X: float64(h.width - h.geo.Margin), Y: bottom},
	}
}

// RequestLayout applies the explicit height (or the pinned bottom edge).
// Animated requests retarget an animation already in flight; the
// interrupted request's completion still runs, once.
func (h *Host) RequestLayout(req panel.LayoutRequest, onComplete func()) {
	interrupted := h.onComplete
	h.onComplete = nil

	if !req.Animated {
		h.anim = nil
		h.rendered = h.target()
		if interrupted != nil {
			interrupted()
		}
		if onComplete != nil {
			onComplete()
		}
		return
	}

	params := spring.Params{
		Duration: req.Duration,
		Damping:  req.Damping,
		Velocity: req.InitialVelocity,
		FPS:      h.fps,
	}
	if h.anim != nil {
		h.anim.Retarget(h.target(), params)
	} else {
		h.anim = spring.New(h.rendered, h.target(), params)
	}
	h.onComplete = onComplete

	if interrupted != nil {
		interrupted()
	}
}

// Animating reports whether a layout animation is in flight.
func (h *Host) Animating() bool {
	return h.anim != nil
}

// Frame is the interval between animation steps.
func (h *Host) Frame() time.Duration {
	return time.Second / time.Duration(h.fps)
}

// Step advances the running animation by one frame. It returns false when
// nothing is animating.
func (h *Host) Step() bool {
	if h.anim == nil {
		return false
	}

	pos, done := h.anim.Step()
	h.rendered = pos
	if !done {
		return true
	}

	h.anim = nil
	if h.pinned {
		h.rendered = h.MaxAvailableHeight()
	}
	if cb := h.onComplete; cb != nil {
		h.onComplete = nil
		cb()
	}
	return true
}

// RenderedRows is the on-screen height rounded to whole rows and clipped to
// the terminal.
func (h *Host) RenderedRows() int {
	rows := int(math.Round(h.rendered))
	limit := h.height - int(h.geo.TopAnchor)
	if rows > limit {
		rows = limit
	}
	if rows < 0 {
		rows = 0
	}
	return rows
}

func (h *Host) target() float64 {
	if h.pinned {
		return h.MaxAvailableHeight()
	}
	return h.explicit
}
