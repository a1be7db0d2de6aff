package arbor

// scrollAction owns the view: scroll offset in client pixels and the discrete
// zoom factor. It claims only empty-canvas gestures (middle-button pan) and
// wheel zoom steps; it can never fail, but zoom stepping is clamped to the
// zoom table.
type scrollAction struct {
	editor   *Context
	isActive bool

	zoom   float64
	scroll Vec2

	scrollStart Vec2
	panning     bool
}

func newScrollAction(editor *Context) *scrollAction {
	return &scrollAction{editor: editor, zoom: 1}
}

func (a *scrollAction) name() string { return "Scroll" }

func (a *scrollAction) accept(control Control) bool {
	in := a.editor.in

	if in.Wheel != 0 {
		a.stepZoom(wheelSteps(in.Wheel), in.MousePos)
		a.isActive = true
		a.panning = false
		return true
	}

	if control.BackgroundActive && a.editor.pointerDragging(MouseButtonMiddle) {
		a.isActive = true
		a.panning = true
		a.scrollStart = a.scroll
		return true
	}
	return false
}

func (a *scrollAction) process(control Control) bool {
	in := a.editor.in

	if a.panning {
		if in.Buttons[MouseButtonMiddle] {
			delta := in.MousePos.Sub(a.editor.pointer.pressPos)
			a.setScroll(a.scrollStart.Sub(delta))
			return true
		}
		a.panning = false
		a.isActive = false
		a.syncSettings()
		return false
	}

	// Wheel ownership holds while the wheel keeps turning and releases the
	// frame it stops.
	if in.Wheel != 0 {
		a.stepZoom(wheelSteps(in.Wheel), in.MousePos)
		return true
	}
	a.isActive = false
	a.syncSettings()
	return false
}

func (a *scrollAction) objectDestroyed(Object) {}

// stepZoom moves the zoom one or more entries along the zoom table, keeping
// the canvas point under anchor (screen space) stationary.
func (a *scrollAction) stepZoom(steps int, anchor Vec2) {
	newZoom := matchZoom(a.zoom, steps)
	if newZoom == a.zoom {
		return
	}
	pivot := a.editor.canvas.FromScreen(anchor)
	a.zoom = newZoom

	// Solve for the origin that maps pivot back under the anchor.
	client := anchor.Sub(a.editor.canvas.WindowScreenPos)
	origin := Vec2{
		X: client.X - pivot.X*newZoom,
		Y: client.Y - pivot.Y*newZoom,
	}
	a.setScroll(Vec2{-origin.X, -origin.Y})
	a.syncSettings()
}

func (a *scrollAction) setScroll(scroll Vec2) {
	a.scroll = scroll
	a.editor.rebuildCanvas()
}

// setView replaces scroll and zoom wholesale; used by settings load and
// navigation animation. The zoom is not snapped so animations stay smooth.
func (a *scrollAction) setView(scroll Vec2, zoom float64) {
	if zoom <= 0 {
		zoom = 1
	}
	a.zoom = zoom
	a.setScroll(scroll)
}

func (a *scrollAction) syncSettings() {
	s := &a.editor.settings
	if s.ViewScroll != a.scroll || s.ViewZoom != a.zoom {
		s.ViewScroll = a.scroll
		s.ViewZoom = a.zoom
		s.markDirty()
	}
}

// wheelSteps converts accumulated wheel movement to whole zoom steps,
// always at least one in the direction of movement.
func wheelSteps(wheel float64) int {
	steps := int(wheel)
	if steps == 0 {
		if wheel > 0 {
			return 1
		}
		return -1
	}
	return steps
}
