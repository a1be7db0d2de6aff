package arbor

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Canvas is the bidirectional transform between the three coordinate spaces:
//
//	Canvas - logical space where objects are authored, zoom/scroll independent
//	Client - window-local pixels
//	Screen - absolute device pixels
//
// All conversions are pure and invertible to floating-point tolerance.
type Canvas struct {
	// WindowScreenPos and WindowScreenSize are the editor window's rectangle
	// in screen space.
	WindowScreenPos  Vec2
	WindowScreenSize Vec2
	// ClientOrigin is where canvas point (0,0) lands in client space. It is
	// the negated view scroll.
	ClientOrigin Vec2
	// ClientSize is the window-local drawable size.
	ClientSize Vec2
	// Zoom holds independent X/Y scale factors; InvZoom their precomputed
	// inverses.
	Zoom    Vec2
	InvZoom Vec2
}

// NewCanvas builds a canvas for a window at position with size, the given
// zoom factors, and a client-space origin.
func NewCanvas(position, size, zoom, origin Vec2) Canvas {
	invZoom := Vec2{1, 1}
	if zoom.X != 0 {
		invZoom.X = 1 / zoom.X
	}
	if zoom.Y != 0 {
		invZoom.Y = 1 / zoom.Y
	}
	return Canvas{
		WindowScreenPos:  position,
		WindowScreenSize: size,
		ClientOrigin:     origin,
		ClientSize:       size,
		Zoom:             zoom,
		InvZoom:          invZoom,
	}
}

// ToClient converts a canvas-space point to client space.
func (c Canvas) ToClient(p Vec2) Vec2 {
	return Vec2{
		X: p.X*c.Zoom.X + c.ClientOrigin.X,
		Y: p.Y*c.Zoom.Y + c.ClientOrigin.Y,
	}
}

// FromClient converts a client-space point to canvas space.
func (c Canvas) FromClient(p Vec2) Vec2 {
	return Vec2{
		X: (p.X - c.ClientOrigin.X) * c.InvZoom.X,
		Y: (p.Y - c.ClientOrigin.Y) * c.InvZoom.Y,
	}
}

// ToScreen converts a canvas-space point to screen space.
func (c Canvas) ToScreen(p Vec2) Vec2 {
	return c.ToClient(p).Add(c.WindowScreenPos)
}

// FromScreen converts a screen-space point to canvas space.
func (c Canvas) FromScreen(p Vec2) Vec2 {
	return c.FromClient(p.Sub(c.WindowScreenPos))
}

// VisibleBounds returns the canvas-space rectangle currently inside the window.
func (c Canvas) VisibleBounds() Rect {
	tl := c.FromClient(Vec2{})
	br := c.FromClient(c.ClientSize)
	return Rect{X: tl.X, Y: tl.Y, Width: br.X - tl.X, Height: br.Y - tl.Y}
}

// zoomLevels is the discrete, ascending table of permitted zoom factors.
// Zooming snaps to these levels so repeated zoom in/out sequences are
// reversible and never drift.
var zoomLevels = []float64{
	0.1, 0.15, 0.2, 0.25, 0.33, 0.5, 0.75, 1.0, 1.25, 1.5, 2.0, 2.5, 3.0, 4.0,
}

// matchZoomIndex returns the index of the table entry nearest to zoom.
// Ties break toward the lower index.
func matchZoomIndex(zoom float64) int {
	best := 0
	bestDist := math.Abs(zoomLevels[0] - zoom)
	for i := 1; i < len(zoomLevels); i++ {
		dist := math.Abs(zoomLevels[i] - zoom)
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

// matchZoom steps the table index nearest to zoom by steps, clamped to the
// table bounds, and returns the resulting level.
func matchZoom(zoom float64, steps int) float64 {
	idx := matchZoomIndex(zoom) + steps
	if idx < 0 {
		idx = 0
	}
	if idx >= len(zoomLevels) {
		idx = len(zoomLevels) - 1
	}
	return zoomLevels[idx]
}

// navAnim holds active navigation tweens for view scroll and zoom.
type navAnim struct {
	scrollX *gween.Tween
	scrollY *gween.Tween
	zoom    *gween.Tween
	done    bool
}

func newNavAnim(fromScroll Vec2, fromZoom float64, toScroll Vec2, toZoom float64, duration float32, easeFn ease.TweenFunc) *navAnim {
	return &navAnim{
		scrollX: gween.New(float32(fromScroll.X), float32(toScroll.X), duration, easeFn),
		scrollY: gween.New(float32(fromScroll.Y), float32(toScroll.Y), duration, easeFn),
		zoom:    gween.New(float32(fromZoom), float32(toZoom), duration, easeFn),
	}
}

// update advances the tweens by dt seconds and returns the interpolated
// scroll and zoom. done is set once every tween finishes.
func (a *navAnim) update(dt float32) (scroll Vec2, zoom float64) {
	sx, doneX := a.scrollX.Update(dt)
	sy, doneY := a.scrollY.Update(dt)
	z, doneZ := a.zoom.Update(dt)
	a.done = doneX && doneY && doneZ
	return Vec2{float64(sx), float64(sy)}, float64(z)
}
