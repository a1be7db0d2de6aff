package arbor

// deleteIterator distinguishes which candidate kind the cursor currently
// yields. Links are iterated before nodes so incident links are gone before
// their node's cascade runs, keeping removal idempotent.
type deleteIterator uint8

const (
	deleteIterUnknown deleteIterator = iota
	deleteIterLink
	deleteIterNode
)

// deleteItemsAction drains a caller-confirmed removal queue. Unlike the
// pointer-driven actions it never contends for input ownership: the caller
// starts it with the delete bracket, drains candidates one at a time through
// query/accept/reject, and closes it with end.
type deleteItemsAction struct {
	editor *Context

	isActive      bool
	inInteraction bool

	candidates      []Object
	candidateIndex  int
	currentItemType deleteIterator
}

func newDeleteItemsAction(editor *Context) *deleteItemsAction {
	return &deleteItemsAction{editor: editor}
}

func (a *deleteItemsAction) name() string { return "Delete Items" }

// accept always declines; deletion is bracket-driven, not pointer-driven.
func (a *deleteItemsAction) accept(Control) bool { return false }

func (a *deleteItemsAction) process(Control) bool {
	a.isActive = a.inInteraction
	return a.inInteraction
}

func (a *deleteItemsAction) objectDestroyed(o Object) {
	// Candidates behind the cursor may be cascaded away; they are skipped at
	// query time via the liveness check, so only trim references here.
	for i := a.candidateIndex; i < len(a.candidates); i++ {
		if a.candidates[i] == o && !o.IsLive() {
			// Leave the slot in place; query skips non-live entries.
			return
		}
	}
}

// begin captures the current selection as the candidate set: first every
// link incident to a selected node plus the selected links, then the
// selected nodes. Reports whether there is anything to delete.
func (a *deleteItemsAction) begin() bool {
	if a.inInteraction {
		return false
	}
	a.candidates = a.candidates[:0]
	a.candidateIndex = 0
	a.currentItemType = deleteIterUnknown

	seen := make(map[int]bool)
	appendLink := func(l *Link) {
		if !seen[l.ID] {
			seen[l.ID] = true
			a.candidates = append(a.candidates, objectOfLink(l))
		}
	}

	for _, o := range a.editor.selection.objects {
		if n := o.Node(); n != nil {
			for _, l := range a.editor.reg.linksForNode(n, nil) {
				appendLink(l)
			}
		}
		if l := o.Link(); l != nil {
			appendLink(l)
		}
	}
	for _, o := range a.editor.selection.objects {
		if o.Kind() == KindNode {
			a.candidates = append(a.candidates, o)
		}
	}

	if len(a.candidates) == 0 {
		return false
	}
	a.inInteraction = true
	a.isActive = true
	return true
}

// end closes the bracket and discards any undrained candidates.
func (a *deleteItemsAction) end() {
	a.inInteraction = false
	a.isActive = false
	a.candidates = a.candidates[:0]
	a.candidateIndex = 0
	a.currentItemType = deleteIterUnknown
}

// queryItem yields the current candidate's id if it matches the requested
// kind. The cursor only advances through accept or reject.
func (a *deleteItemsAction) queryItem(kind deleteIterator) (int, bool) {
	if !a.inInteraction {
		return 0, false
	}
	// Skip candidates that a previous cascade already removed.
	for a.candidateIndex < len(a.candidates) && !a.candidates[a.candidateIndex].IsLive() {
		a.candidateIndex++
	}
	if a.candidateIndex >= len(a.candidates) {
		return 0, false
	}
	o := a.candidates[a.candidateIndex]
	switch kind {
	case deleteIterLink:
		if l := o.Link(); l != nil {
			a.currentItemType = deleteIterLink
			return l.ID, true
		}
	case deleteIterNode:
		if n := o.Node(); n != nil {
			a.currentItemType = deleteIterNode
			return n.ID, true
		}
	}
	return 0, false
}

func (a *deleteItemsAction) queryLink() (int, bool) { return a.queryItem(deleteIterLink) }
func (a *deleteItemsAction) queryNode() (int, bool) { return a.queryItem(deleteIterNode) }

// acceptItem removes the current candidate through the registry, cascading
// for nodes, and advances the cursor. Returns false when no candidate is
// current.
func (a *deleteItemsAction) acceptItem() bool {
	if !a.inInteraction || a.candidateIndex >= len(a.candidates) {
		return false
	}
	o := a.candidates[a.candidateIndex]
	a.candidateIndex++
	switch o.Kind() {
	case KindLink:
		a.editor.reg.destroyLink(o.Link())
	case KindNode:
		a.editor.reg.destroyNode(o.Node())
	}
	return true
}

// rejectItem skips the current candidate without removing it.
func (a *deleteItemsAction) rejectItem() {
	if !a.inInteraction || a.candidateIndex >= len(a.candidates) {
		return
	}
	a.candidateIndex++
}
