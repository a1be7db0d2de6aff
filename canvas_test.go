package arbor

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const epsilon = 1e-6

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec2Near(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestCanvasToClient(t *testing.T) {
	c := NewCanvas(Vec2{}, Vec2{800, 600}, Vec2{2, 2}, Vec2{50, -30})

	tests := []struct {
		name string
		p    Vec2
		want Vec2
	}{
		{"origin", Vec2{0, 0}, Vec2{50, -30}},
		{"positive", Vec2{100, 200}, Vec2{250, 370}},
		{"negative", Vec2{-25, -10}, Vec2{0, -50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec2Near(t, "ToClient", c.ToClient(tt.p), tt.want)
		})
	}
}

func TestCanvasRoundTrip(t *testing.T) {
	canvases := []struct {
		name   string
		canvas Canvas
	}{
		{"identity", NewCanvas(Vec2{}, Vec2{800, 600}, Vec2{1, 1}, Vec2{})},
		{"zoomed", NewCanvas(Vec2{}, Vec2{800, 600}, Vec2{2.5, 2.5}, Vec2{})},
		{"scrolled", NewCanvas(Vec2{}, Vec2{800, 600}, Vec2{1, 1}, Vec2{-310, 220})},
		{"offset window", NewCanvas(Vec2{120, 80}, Vec2{640, 480}, Vec2{0.33, 0.33}, Vec2{17, -42})},
		{"anisotropic", NewCanvas(Vec2{5, 5}, Vec2{300, 300}, Vec2{2, 0.5}, Vec2{10, 10})},
	}
	points := []Vec2{{0, 0}, {1, 1}, {-503.25, 817.5}, {1e6, -1e6}, {0.001, -0.001}}

	for _, tc := range canvases {
		t.Run(tc.name, func(t *testing.T) {
			for _, p := range points {
				if got := tc.canvas.FromClient(tc.canvas.ToClient(p)); math.Abs(got.X-p.X) > 1e-6 || math.Abs(got.Y-p.Y) > 1e-6 {
					t.Errorf("FromClient(ToClient(%v)) = %v", p, got)
				}
				if got := tc.canvas.FromScreen(tc.canvas.ToScreen(p)); math.Abs(got.X-p.X) > 1e-6 || math.Abs(got.Y-p.Y) > 1e-6 {
					t.Errorf("FromScreen(ToScreen(%v)) = %v", p, got)
				}
			}
		})
	}
}

func TestCanvasZeroZoomDoesNotDivideByZero(t *testing.T) {
	c := NewCanvas(Vec2{}, Vec2{800, 600}, Vec2{0, 0}, Vec2{})
	got := c.FromClient(Vec2{100, 100})
	if math.IsNaN(got.X) || math.IsInf(got.X, 0) {
		t.Errorf("FromClient with zero zoom = %v", got)
	}
}

func TestVisibleBounds(t *testing.T) {
	c := NewCanvas(Vec2{}, Vec2{800, 600}, Vec2{2, 2}, Vec2{-100, -50})
	got := c.VisibleBounds()
	want := Rect{X: 50, Y: 25, Width: 400, Height: 300}
	if got != want {
		t.Errorf("VisibleBounds = %+v, want %+v", got, want)
	}
}

// --- Zoom table ---

func TestMatchZoomIndex(t *testing.T) {
	tests := []struct {
		name string
		zoom float64
		want int
	}{
		{"exact", 1.0, 7},
		{"below table", 0.01, 0},
		{"above table", 50, len(zoomLevels) - 1},
		{"nearest below", 1.1, 7},
		{"nearest above", 1.2, 8},
		{"tie goes low", 1.125, 7}, // midpoint of 1.0 and 1.25
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchZoomIndex(tt.zoom); got != tt.want {
				t.Errorf("matchZoomIndex(%v) = %d, want %d", tt.zoom, got, tt.want)
			}
		})
	}
}

func TestMatchZoomClamps(t *testing.T) {
	if got := matchZoom(zoomLevels[0], -3); got != zoomLevels[0] {
		t.Errorf("stepping below the table = %v, want %v", got, zoomLevels[0])
	}
	last := zoomLevels[len(zoomLevels)-1]
	if got := matchZoom(last, 10); got != last {
		t.Errorf("stepping above the table = %v, want %v", got, last)
	}
}

// Stepping up then down the same number of steps must land back on the
// original level for any interior starting index.
func TestZoomStepsReversible(t *testing.T) {
	for i, level := range zoomLevels {
		for steps := 1; steps <= 3; steps++ {
			if i+steps >= len(zoomLevels) {
				continue
			}
			up := matchZoom(level, steps)
			down := matchZoom(up, -steps)
			if down != level {
				t.Errorf("level %v +%d then -%d = %v", level, steps, steps, down)
			}
		}
	}
}

func TestZoomTableAscending(t *testing.T) {
	for i := 1; i < len(zoomLevels); i++ {
		if zoomLevels[i] <= zoomLevels[i-1] {
			t.Fatalf("zoom table not strictly ascending at index %d", i)
		}
	}
}

// --- Navigation tween ---

func TestNavAnimReachesTarget(t *testing.T) {
	a := newNavAnim(Vec2{0, 0}, 1, Vec2{100, -50}, 2, 1, ease.Linear)

	scroll, zoom := a.update(0.5)
	assertVec2Near(t, "scroll at t=0.5", scroll, Vec2{50, -25})
	assertNear(t, "zoom at t=0.5", zoom, 1.5)
	if a.done {
		t.Fatal("animation done at half duration")
	}

	scroll, zoom = a.update(0.5)
	assertVec2Near(t, "final scroll", scroll, Vec2{100, -50})
	assertNear(t, "final zoom", zoom, 2)
	if !a.done {
		t.Error("animation not done after full duration")
	}
}
