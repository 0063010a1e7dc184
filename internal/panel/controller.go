package panel

import (
	"time"

	"github.com/alexisbeaulieu97/overlay/internal/logger"
)

const (
	DefaultHalfHeight = 388
	DefaultDuration   = 500 * time.Millisecond
	DefaultDamping    = 0.75
)

// Config tunes a Controller.
type Config struct {
	HalfHeight   float64
	SliderHeight float64
	Duration     time.Duration
	Damping      float64
	InitialState State
	Resizable    bool
}

// DefaultConfig returns the stock tuning: a 388 unit half height that starts
// in Half and is not resizable.
func DefaultConfig() Config {
	return Config{
		HalfHeight:   DefaultHalfHeight,
		Duration:     DefaultDuration,
		Damping:      DefaultDamping,
		InitialState: Half,
	}
}

// Controller owns the panel's discrete state and drag session and pushes
// height changes to its host. It is not safe for concurrent use; all calls
// are expected on the UI goroutine.
type Controller struct {
	host HostLayout
	cfg  Config
	log  *logger.Logger

	state     State
	mode      HeightMode
	resizable bool

	dragging bool
	baseline float64

	// generation increases with every commit so stale completions can be
	// told apart from the latest one.
	generation uint64

	// deferred holds a commit that arrived while the host had no usable
	// geometry. Resume applies it.
	deferred      bool
	deferredState State
}

// New creates a Controller bound to host. A nil log is allowed.
func New(host HostLayout, cfg Config, log *logger.Logger) *Controller {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	if cfg.Damping <= 0 {
		cfg.Damping = DefaultDamping
	}
	return &Controller{
		host:      host,
		cfg:       cfg,
		log:       log.WithFields(map[string]any{"component": "panel"}),
		state:     cfg.InitialState,
		mode:      Explicit,
		resizable: cfg.Resizable,

		deferred:      true,
		deferredState: cfg.InitialState,
	}
}

// State returns the last committed state. During an animated transition
// this is already the target state.
func (c *Controller) State() State {
	return c.state
}

// Mode returns how the host currently resolves the panel height.
func (c *Controller) Mode() HeightMode {
	return c.mode
}

// IsResizable reports whether drags over the handle are admitted.
func (c *Controller) IsResizable() bool {
	return c.resizable
}

// SetResizable gates drag admission.
func (c *Controller) SetResizable(resizable bool) {
	c.resizable = resizable
}

// Dragging reports whether a drag session is active.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Baseline returns the drag baseline height and whether a session is active.
func (c *Controller) Baseline() (float64, bool) {
	return c.baseline, c.dragging
}

// Bounds derives the resting heights from the host's current geometry.
func (c *Controller) Bounds() Bounds {
	return Bounds{
		Min:  c.host.MinAvailableHeight() + c.cfg.SliderHeight,
		Half: c.cfg.HalfHeight,
		Max:  c.host.MaxAvailableHeight(),
	}
}

// ShouldAcceptTouch reports whether a touch at p may begin a drag.
func (c *Controller) ShouldAcceptTouch(p Point) bool {
	return ShouldAccept(p, c.host.HandleBounds(), c.resizable)
}

// RestartDrag discards any unfinished session and starts a new one from the
// current height.
func (c *Controller) RestartDrag(translationY float64) {
	if c.dragging {
		c.log.Debug("drag restarted before previous session ended")
	}
	c.dragging = false
	c.BeginOrContinueDrag(translationY)
}

// BeginOrContinueDrag tracks one drag sample. The first sample of a session
// records the baseline; every sample sets the height to baseline plus
// translation, clamped from below only.
func (c *Controller) BeginOrContinueDrag(translationY float64) {
	b := c.Bounds()
	if !b.Valid() {
		c.log.WithFields(map[string]any{"min": b.Min, "max": b.Max}).Debug("drag ignored: geometry unavailable")
		return
	}

	if !c.dragging {
		// The explicit value goes stale while pinned.
		if c.state == Expanded || c.mode == Pinned {
			c.host.SetHeight(c.host.RenderedHeight())
		}
		c.baseline = c.host.Height()
		c.dragging = true
		c.setMode(Explicit)
	}

	c.host.SetHeight(max(b.Min, c.baseline+translationY))
	c.host.RequestLayout(LayoutRequest{}, nil)
}

// EndDrag snaps to the state nearest the current height, carrying velocityY
// into the animation, and closes the drag session.
func (c *Controller) EndDrag(velocityY float64) {
	c.dragging = false
	c.baseline = 0

	b := c.Bounds()
	if !b.Valid() {
		c.log.Debug("drag end deferred: geometry unavailable")
		if !c.deferred {
			c.deferCommit(c.state)
		}
		return
	}

	height := c.currentHeight()
	target := Resolve(height, b)
	c.log.WithFields(map[string]any{
		"height":   height,
		"velocity": velocityY,
		"target":   target.String(),
	}).Debug("drag ended")

	c.SetState(target, velocityY, true)
}

// SetState commits the panel to state. The committed state is visible
// through State immediately, before any animation frame runs.
func (c *Controller) SetState(state State, velocity float64, animated bool) {
	b := c.Bounds()
	if !b.Valid() {
		c.log.WithFields(map[string]any{"state": state.String()}).Debug("commit deferred: geometry unavailable")
		c.deferCommit(state)
		return
	}

	c.deferred = false
	c.resync()
	target := Plan(state, velocity, c.host.Height(), b)

	c.state = state
	c.generation++
	gen := c.generation

	c.log.WithFields(map[string]any{
		"state":      state.String(),
		"height":     target.Height,
		"velocity":   target.Velocity,
		"animated":   animated,
		"generation": gen,
	}).Debug("committing panel state")

	c.host.SetHeight(target.Height)
	req := LayoutRequest{Animated: animated}
	if animated {
		req.Duration = c.cfg.Duration
		req.Damping = c.cfg.Damping
		req.InitialVelocity = target.Velocity
	}
	c.host.RequestLayout(req, func() {
		c.complete(gen, state)
	})
}

// Pending reports whether a commit is waiting for usable geometry.
func (c *Controller) Pending() bool {
	return c.deferred
}

// Resume applies the deferred commit, without animation, once the host
// geometry is valid. Until the first valid geometry the deferred commit is
// the initial state. It does nothing during a drag.
func (c *Controller) Resume() {
	if !c.deferred || c.dragging || !c.Bounds().Valid() {
		return
	}
	c.SetState(c.deferredState, 0, false)
}

func (c *Controller) deferCommit(state State) {
	c.deferred = true
	c.deferredState = state
}

func (c *Controller) complete(gen uint64, state State) {
	if gen != c.generation {
		c.log.WithFields(map[string]any{"state": state.String(), "generation": gen}).Debug("skipping stale completion")
		return
	}
	if c.dragging {
		return
	}
	c.setMode(ModeFor(state))
}

// resync moves a pinned panel back to explicit height control, seeding the
// explicit value with what is on screen.
func (c *Controller) resync() {
	if c.mode != Pinned {
		return
	}
	c.host.SetHeight(c.host.RenderedHeight())
	c.setMode(Explicit)
}

func (c *Controller) setMode(mode HeightMode) {
	c.mode = mode
	c.host.SetEdgePinned(mode == Pinned)
}

func (c *Controller) currentHeight() float64 {
	if c.mode == Pinned {
		return c.host.RenderedHeight()
	}
	return c.host.Height()
}
