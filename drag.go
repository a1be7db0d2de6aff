package arbor

// dragAction moves a single node with the pointer. It claims a left-button
// drag that started on a node or one of its pins; pin drags normally go to
// the create action first, which outranks it in the arbitration order.
type dragAction struct {
	editor      *Context
	isActive    bool
	draggedNode *Node
}

func newDragAction(editor *Context) *dragAction {
	return &dragAction{editor: editor}
}

func (a *dragAction) name() string { return "Drag" }

func (a *dragAction) accept(control Control) bool {
	if control.ActiveNode == nil {
		return false
	}
	if !a.editor.pointerDragging(MouseButtonLeft) {
		return false
	}
	a.isActive = true
	a.draggedNode = control.ActiveNode
	a.draggedNode.DragStart = Vec2{a.draggedNode.Bounds.X, a.draggedNode.Bounds.Y}
	return true
}

func (a *dragAction) process(control Control) bool {
	node := a.draggedNode
	if node == nil || !node.live {
		// Destroyed mid-drag; abort without touching the stale pointer.
		a.isActive = false
		a.draggedNode = nil
		return false
	}

	in := a.editor.in
	if !in.Buttons[MouseButtonLeft] {
		a.editor.storeNodeLocation(node)
		a.isActive = false
		a.draggedNode = nil
		return false
	}

	canvas := a.editor.canvas
	delta := canvas.FromScreen(in.MousePos).Sub(canvas.FromScreen(a.editor.pointer.pressPos))
	node.Bounds.X = node.DragStart.X + delta.X
	node.Bounds.Y = node.DragStart.Y + delta.Y
	return true
}

func (a *dragAction) objectDestroyed(o Object) {
	if n := o.Node(); n != nil && n == a.draggedNode {
		a.draggedNode = nil
		a.isActive = false
	}
}
