package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/overlay/internal/panel"
)

func testGeometry() Geometry {
	return Geometry{TopAnchor: 2, BottomInset: 1, HostMinHeight: 2, SliderHeight: 1, Margin: 2}
}

func animated() panel.LayoutRequest {
	return panel.LayoutRequest{Animated: true, Duration: 500 * time.Millisecond, Damping: 0.75}
}

func drain(t *testing.T, h *Host) int {
	t.Helper()
	frames := 0
	for h.Animating() {
		require.True(t, h.Step())
		frames++
		require.Less(t, frames, 1000, "animation never finished")
	}
	return frames
}

func TestHostReportsNoGeometryBeforeResize(t *testing.T) {
	t.Parallel()

	h := NewHost(testGeometry(), 60)
	require.Zero(t, h.MinAvailableHeight())
	require.Zero(t, h.MaxAvailableHeight())

	h.Resize(80, 24)
	require.Equal(t, 2.0, h.MinAvailableHeight())
	require.Equal(t, 21.0, h.MaxAvailableHeight())
}

func TestHostImmediateLayout(t *testing.T) {
	t.Parallel()

	h := NewHost(testGeometry(), 60)
	h.Resize(80, 24)
	h.SetHeight(9)

	calls := 0
	h.RequestLayout(panel.LayoutRequest{}, func() { calls++ })
	require.Equal(t, 1, calls)
	require.Equal(t, 9.0, h.RenderedHeight())
	require.False(t, h.Animating())
	require.False(t, h.Step())
}

func TestHostAnimatedLayoutCompletesOnce(t *testing.T) {
	t.Parallel()

	h := NewHost(testGeometry(), 60)
	h.Resize(80, 24)
	h.SetHeight(4)
	h.RequestLayout(panel.LayoutRequest{}, nil)

	calls := 0
	h.SetHeight(16)
	h.RequestLayout(animated(), func() { calls++ })
	require.True(t, h.Animating())
	require.Equal(t, 4.0, h.RenderedHeight(), "nothing moves before the first frame")

	frames := drain(t, h)
	require.Greater(t, frames, 1)
	require.Equal(t, 1, calls)
	require.Equal(t, 16.0, h.RenderedHeight())
}

func TestHostRetargetRunsInterruptedCompletion(t *testing.T) {
	t.Parallel()

	h := NewHost(testGeometry(), 60)
	h.Resize(80, 24)
	h.SetHeight(4)
	h.RequestLayout(panel.LayoutRequest{}, nil)

	var order []string
	h.SetHeight(20)
	h.RequestLayout(animated(), func() { order = append(order, "first") })
	h.Step()
	h.Step()

	h.SetHeight(6)
	h.RequestLayout(animated(), func() { order = append(order, "second") })
	require.Equal(t, []string{"first"}, order)

	drain(t, h)
	require.Equal(t, []string{"first", "second"}, order)
	require.Equal(t, 6.0, h.RenderedHeight())
}

func TestHostPinnedFollowsResize(t *testing.T) {
	t.Parallel()

	h := NewHost(testGeometry(), 60)
	h.Resize(80, 24)
	h.SetEdgePinned(true)
	require.Equal(t, 21.0, h.RenderedHeight())

	h.Resize(80, 30)
	require.Equal(t, 27.0, h.RenderedHeight())

	h.SetEdgePinned(false)
	h.Resize(80, 20)
	require.Equal(t, 27.0, h.RenderedHeight(), "explicit height does not follow the terminal")
	require.Equal(t, 18, h.RenderedRows(), "rows are clipped to the screen")
}

func TestHostHandleBounds(t *testing.T) {
	t.Parallel()

	h := NewHost(testGeometry(), 60)
	h.Resize(80, 24)
	h.SetHeight(12)
	h.RequestLayout(panel.LayoutRequest{}, nil)

	b := h.HandleBounds()
	require.Equal(t, panel.Rect{Min: panel.Point{X: 2, Y: 13}, Max: panel.Point{X: 78, Y: 14}}, b)
	require.True(t, b.Contains(panel.Point{X: 10, Y: 13}))
	require.False(t, b.Contains(panel.Point{X: 10, Y: 12}))
}
