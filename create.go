package arbor

// createStage tracks the link/node creation gesture.
type createStage uint8

const (
	createStageNone     createStage = iota // no gesture, nothing pending
	createStagePossible                    // dragging from a pin
	createStageCreate                      // released over a valid target, awaiting accept/reject
)

// createItemType is the kind of item the gesture would produce.
type createItemType uint8

const (
	createNoItem createItemType = iota
	createItemNode
	createItemLink
)

// createUserAction records the caller's decision for the pending item.
type createUserAction uint8

const (
	createUserUnknown createUserAction = iota
	createUserAccepted
	createUserRejected
)

// createResult is the tri-state outcome of the polling protocol: resultTrue
// and resultFalse are definite answers, resultIndeterminate means the drag is
// still in progress and no decision is due yet.
type createResult uint8

const (
	resultTrue createResult = iota
	resultFalse
	resultIndeterminate
)

// createItemAction recognizes the pin-drag gesture that proposes a new link
// (dropped on a compatible pin) or a new node (dropped on empty canvas). The
// proposal is a single pending slot: it must be accepted or rejected through
// the caller-facing bracket before a new gesture may produce another.
type createItemAction struct {
	editor   *Context
	isActive bool

	inBracket bool

	stage      createStage
	itemType   createItemType
	userAction createUserAction

	linkColor     Color
	linkThickness float64
	linkStart     *Pin
	linkEnd       *Pin
	draggedPin    *Pin
}

func newCreateItemAction(editor *Context) *createItemAction {
	return &createItemAction{editor: editor, linkColor: ColorWhite, linkThickness: 1}
}

func (a *createItemAction) name() string { return "Create Item" }

func (a *createItemAction) accept(control Control) bool {
	if a.stage != createStageNone {
		// The previous gesture's pending item is still unresolved.
		return false
	}
	if control.ActivePin == nil || !a.editor.pointerDragging(MouseButtonLeft) {
		return false
	}
	a.dragStart(control.ActivePin)
	return true
}

func (a *createItemAction) process(control Control) bool {
	if a.draggedPin == nil || !a.draggedPin.live {
		a.cancel()
		return false
	}

	if !a.editor.in.Buttons[MouseButtonLeft] {
		a.dragEnd()
		return false
	}

	switch {
	case control.HotPin != nil && control.HotPin != a.draggedPin &&
		control.HotPin.Kind != a.draggedPin.Kind:
		a.dropPin(control.HotPin)
	case control.BackgroundHot:
		a.dropNode()
	default:
		a.dropNothing()
	}
	return true
}

func (a *createItemAction) objectDestroyed(o Object) {
	p := o.Pin()
	if p == nil {
		return
	}
	if p == a.draggedPin || p == a.linkStart || p == a.linkEnd {
		a.cancel()
	}
}

func (a *createItemAction) dragStart(startPin *Pin) {
	a.isActive = true
	a.stage = createStagePossible
	a.itemType = createNoItem
	a.userAction = createUserUnknown
	a.draggedPin = startPin
	a.linkStart = startPin
	a.linkEnd = nil
	startPin.DragPoint = startPin.Bounds.Center()
}

func (a *createItemAction) dropPin(endPin *Pin) {
	a.itemType = createItemLink
	a.linkEnd = endPin
}

func (a *createItemAction) dropNode() {
	a.itemType = createItemNode
	a.linkEnd = nil
}

func (a *createItemAction) dropNothing() {
	a.itemType = createNoItem
	a.linkEnd = nil
}

func (a *createItemAction) dragEnd() {
	a.isActive = false
	a.draggedPin = nil
	if a.itemType == createNoItem || a.userAction == createUserRejected {
		a.reset()
		return
	}
	// The decision becomes due now; any preview accept during the drag does
	// not count as the one required resolution.
	a.stage = createStageCreate
	a.userAction = createUserUnknown
}

func (a *createItemAction) cancel() {
	a.isActive = false
	a.draggedPin = nil
	a.reset()
}

func (a *createItemAction) reset() {
	a.stage = createStageNone
	a.itemType = createNoItem
	a.userAction = createUserUnknown
	a.linkStart = nil
	a.linkEnd = nil
}

// setStyle records the visual identity a link accepted from this gesture
// will carry.
func (a *createItemAction) setStyle(color Color, thickness float64) {
	a.linkColor = color
	a.linkThickness = thickness
}

// begin opens the caller-facing bracket. It reports whether there is
// anything to query this frame.
func (a *createItemAction) begin() bool {
	if a.inBracket {
		return false
	}
	a.inBracket = true
	return a.stage != createStageNone
}

func (a *createItemAction) end() {
	a.inBracket = false
}

// queryLink yields the pending link's endpoint ids. It answers during the
// drag (so the caller can validate the candidate) and at the create stage.
func (a *createItemAction) queryLink() (startID, endID int, result createResult) {
	if !a.inBracket || a.itemType != createItemLink || a.linkStart == nil || a.linkEnd == nil {
		return 0, 0, resultFalse
	}
	// Orient the result output-to-input regardless of drag direction.
	start, end := a.linkStart, a.linkEnd
	if start.Kind == PinInput {
		start, end = end, start
	}
	return start.ID, end.ID, resultTrue
}

// queryNode yields the pin the pending node would connect to.
func (a *createItemAction) queryNode() (pinID int, result createResult) {
	if !a.inBracket || a.itemType != createItemNode || a.linkStart == nil {
		return 0, resultFalse
	}
	return a.linkStart.ID, resultTrue
}

// acceptItem resolves the pending item. At the create stage it materializes a
// pending link under the caller-assigned id and returns resultTrue; while the
// drag is still in progress it only records intent and returns
// resultIndeterminate. Called out of turn it returns resultFalse.
func (a *createItemAction) acceptItem(id int) createResult {
	if !a.inBracket {
		return resultFalse
	}
	switch a.stage {
	case createStagePossible:
		a.userAction = createUserAccepted
		return resultIndeterminate
	case createStageCreate:
		if a.itemType == createItemLink {
			l := a.editor.reg.createLink(id)
			if l == nil {
				return resultFalse
			}
			// Same output-to-input orientation queryLink reports.
			start, end := a.linkStart, a.linkEnd
			if start.Kind == PinInput {
				start, end = end, start
			}
			l.StartPin = start
			l.EndPin = end
			l.Color = a.linkColor
			l.Thickness = a.linkThickness
			l.lastFrame = a.editor.frame
		}
		a.reset()
		return resultTrue
	default:
		return resultFalse
	}
}

// rejectItem discards the pending item, or records a preview rejection while
// the drag is still in progress.
func (a *createItemAction) rejectItem() createResult {
	if !a.inBracket {
		return resultFalse
	}
	switch a.stage {
	case createStagePossible:
		a.userAction = createUserRejected
		return resultIndeterminate
	case createStageCreate:
		a.reset()
		return resultTrue
	default:
		return resultFalse
	}
}
