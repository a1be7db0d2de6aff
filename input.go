package arbor

// defaultDragDeadZone is the cumulative pointer movement in screen pixels
// below which a press-release still counts as a click rather than a drag.
const defaultDragDeadZone = 4.0

// InputState is one frame's snapshot of pointer and keyboard modifier state,
// supplied by the input backend. The engine never polls devices itself.
type InputState struct {
	// MousePos is the pointer position in screen space.
	MousePos Vec2
	// Buttons holds the held state of the left, right, and middle buttons,
	// indexed by MouseButton.
	Buttons [3]bool
	// Wheel is the vertical wheel movement this frame, in steps. Positive
	// steps zoom in.
	Wheel float64
	// Modifiers is the held keyboard modifier set.
	Modifiers KeyModifiers
	// DeltaSeconds is the time since the previous frame. Zero selects the
	// 1/60s default; it only drives navigation animation.
	DeltaSeconds float64
}

// InputSource supplies the per-frame input snapshot. Implementations poll a
// real backend (see the ebiteninput package) or replay a Script.
type InputSource interface {
	ReadInput() InputState
}

// pointerState tracks the logical pointer across frames: press origin, the
// object under the press, and whether movement has exceeded the dead zone.
type pointerState struct {
	down        bool
	button      MouseButton
	pressPos    Vec2 // screen space, at press
	lastPos     Vec2
	pressObject Object // object hot at press time; zero means background
	dragging    bool
}
