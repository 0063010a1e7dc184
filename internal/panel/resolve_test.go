package panel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	b := Bounds{Min: 100, Half: 388, Max: 700}

	cases := []struct {
		name   string
		height float64
		want   State
	}{
		{name: "at minimum", height: 100, want: Collapsed},
		{name: "below minimum", height: 40, want: Collapsed},
		{name: "closer to minimum", height: 200, want: Collapsed},
		{name: "midpoint of lower half ties to collapsed", height: 244, want: Collapsed},
		{name: "just past lower midpoint", height: 244.001, want: Half},
		{name: "scenario release height", height: 338, want: Half},
		{name: "at half", height: 388, want: Half},
		{name: "midpoint of upper half ties to half", height: 544, want: Half},
		{name: "just past upper midpoint", height: 544.001, want: Expanded},
		{name: "at maximum", height: 700, want: Expanded},
		{name: "overshoot", height: 1200, want: Expanded},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Resolve(tc.height, b))
		})
	}
}

func TestResolveIsPureOverRange(t *testing.T) {
	t.Parallel()

	b := Bounds{Min: 3, Half: 12, Max: 40}
	for h := b.Min; h <= b.Max; h += 0.25 {
		first := Resolve(h, b)
		require.Contains(t, States, first)
		require.Equal(t, first, Resolve(h, b))

		dMin := math.Abs(h - b.Min)
		dHalf := math.Abs(h - b.Half)
		dMax := math.Abs(h - b.Max)
		switch first {
		case Collapsed:
			require.LessOrEqual(t, dMin, dHalf)
		case Half:
			require.LessOrEqual(t, dHalf, dMax)
		case Expanded:
			require.Less(t, dMax, dHalf)
		}
	}
}

func TestSpringVelocity(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 0.5, SpringVelocity(100, 200, 400), 1e-9)
	require.InDelta(t, -0.5, SpringVelocity(100, 400, 200), 1e-9)
	require.Zero(t, SpringVelocity(100, 300, 300))
	require.Zero(t, SpringVelocity(0, 300, 300))
	require.Zero(t, SpringVelocity(math.Inf(1), 0, 10))
}

func TestPlan(t *testing.T) {
	t.Parallel()

	b := Bounds{Min: 100, Half: 388, Max: 700}

	got := Plan(Collapsed, -288, 388, b)
	require.Equal(t, Collapsed, got.State)
	require.Equal(t, 100.0, got.Height)
	require.InDelta(t, 1.0, got.Velocity, 1e-9)

	require.Equal(t, 700.0, Plan(Expanded, 0, 388, b).Height)
	require.Equal(t, 388.0, Plan(Half, 0, 388, b).Height)
}

func TestShouldAccept(t *testing.T) {
	t.Parallel()

	handle := Rect{Min: Point{X: 2, Y: 10}, Max: Point{X: 30, Y: 11}}

	cases := []struct {
		name      string
		point     Point
		resizable bool
		want      bool
	}{
		{name: "inside handle", point: Point{X: 2, Y: 10}, resizable: true, want: true},
		{name: "inside but locked", point: Point{X: 2, Y: 10}, resizable: false, want: false},
		{name: "right edge is exclusive", point: Point{X: 30, Y: 10}, resizable: true, want: false},
		{name: "above handle", point: Point{X: 5, Y: 9}, resizable: true, want: false},
		{name: "outside and locked", point: Point{X: 50, Y: 50}, resizable: false, want: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ShouldAccept(tc.point, handle, tc.resizable))
		})
	}

	require.False(t, ShouldAccept(Point{}, Rect{}, true), "empty handle accepts nothing")
}

func TestParseState(t *testing.T) {
	t.Parallel()

	for _, s := range States {
		parsed, err := ParseState(s.String())
		require.NoError(t, err)
		require.Equal(t, s, parsed)
	}

	_, err := ParseState("sideways")
	require.Error(t, err)
	require.Equal(t, Pinned, ModeFor(Expanded))
	require.Equal(t, Explicit, ModeFor(Half))
}
