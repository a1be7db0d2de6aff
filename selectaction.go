package arbor

// selectAction is the rubber-band selection gesture. It claims a left-button
// drag that started on empty canvas. Holding Alt at gesture start restricts
// candidates to links; Shift unions the result into the pre-gesture
// selection, Ctrl toggles it.
type selectAction struct {
	editor   *Context
	isActive bool

	selectLinkMode bool
	startPoint     Vec2 // canvas space
	endPoint       Vec2

	candidates      []Object
	selectedAtStart []Object

	applyMods KeyModifiers
}

func newSelectAction(editor *Context) *selectAction {
	return &selectAction{editor: editor}
}

func (a *selectAction) name() string { return "Select" }

func (a *selectAction) accept(control Control) bool {
	if !control.BackgroundActive || !a.editor.pointerDragging(MouseButtonLeft) {
		return false
	}
	in := a.editor.in
	a.isActive = true
	a.selectLinkMode = in.Modifiers&ModAlt != 0
	a.applyMods = in.Modifiers
	a.startPoint = a.editor.canvas.FromScreen(a.editor.pointer.pressPos)
	a.endPoint = a.editor.canvas.FromScreen(in.MousePos)
	a.selectedAtStart = append(a.selectedAtStart[:0], a.editor.selection.objects...)
	a.candidates = a.candidates[:0]
	return true
}

func (a *selectAction) process(control Control) bool {
	in := a.editor.in
	a.endPoint = a.editor.canvas.FromScreen(in.MousePos)
	a.collectCandidates()

	if in.Buttons[MouseButtonLeft] {
		return true
	}

	// Released: fold the candidates into the persisted selection.
	switch {
	case a.applyMods&ModShift != 0:
		for _, o := range a.candidates {
			a.editor.selection.add(o)
		}
	case a.applyMods&ModCtrl != 0:
		for _, o := range a.candidates {
			a.editor.selection.toggle(o)
		}
	default:
		a.editor.selection.set(a.candidates)
	}

	a.isActive = false
	a.candidates = a.candidates[:0]
	a.selectedAtStart = a.selectedAtStart[:0]
	return false
}

func (a *selectAction) collectCandidates() {
	rect := Normalized(a.startPoint, a.endPoint)
	a.candidates = a.candidates[:0]
	if a.selectLinkMode {
		for _, l := range a.editor.reg.linksInRect(rect, nil) {
			a.candidates = append(a.candidates, objectOfLink(l))
		}
		return
	}
	for _, n := range a.editor.reg.nodesInRect(rect, nil) {
		a.candidates = append(a.candidates, objectOfNode(n))
	}
}

func (a *selectAction) objectDestroyed(o Object) {
	a.candidates = removeObject(a.candidates, o)
	a.selectedAtStart = removeObject(a.selectedAtStart, o)
}

func removeObject(s []Object, o Object) []Object {
	for i := range s {
		if s[i] == o {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = Object{}
			return s[:len(s)-1]
		}
	}
	return s
}
