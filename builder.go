package arbor

// nodeStage tracks where a node declaration currently is between BeginNode
// and EndNode.
type nodeStage uint8

const (
	stageInvalid nodeStage = iota
	stageBegin
	stageHeader
	stageContent
	stageInput
	stageOutput
	stageEnd
)

// NodeBuilder brackets one node's declaration for the frame. Item rectangles
// accumulate into the current pin's bounds and into the node's bounds, so
// declaring an identical shape every frame reproduces identical bounds with
// no drift.
type NodeBuilder struct {
	editor *Context

	currentNode *Node
	currentPin  *Pin

	stage       nodeStage
	nodeRect    Rect
	headerRect  Rect
	headerColor Color
}

func newNodeBuilder(editor *Context) NodeBuilder {
	return NodeBuilder{editor: editor}
}

// begin opens a node declaration. Returns false on protocol misuse (nested
// BeginNode) or when the id is live under a different kind.
func (b *NodeBuilder) begin(nodeID int) bool {
	if b.currentNode != nil {
		return false
	}
	node := b.editor.getNode(nodeID)
	if node == nil {
		return false
	}
	node.lastFrame = b.editor.frame
	node.LastPin = nil
	b.currentNode = node
	b.currentPin = nil
	b.stage = stageBegin
	b.nodeRect = Rect{}
	b.headerRect = Rect{}
	b.headerColor = ColorWhite
	return true
}

// end closes the node declaration and writes the accumulated bounds through
// to the registry.
func (b *NodeBuilder) end() bool {
	if b.currentNode == nil || b.currentPin != nil {
		return false
	}
	node := b.currentNode
	if !b.nodeRect.IsEmpty() {
		node.Bounds = b.nodeRect
	} else {
		// Shape-less declaration keeps the node's position with no area.
		node.Bounds.Width = 0
		node.Bounds.Height = 0
	}
	b.currentNode = nil
	b.stage = stageEnd
	return true
}

func (b *NodeBuilder) beginHeader(color Color) bool {
	if b.currentNode == nil || b.currentPin != nil || b.stage != stageBegin {
		return false
	}
	b.stage = stageHeader
	b.headerColor = color
	return true
}

func (b *NodeBuilder) endHeader() bool {
	if b.stage != stageHeader {
		return false
	}
	b.stage = stageContent
	return true
}

// beginPin opens a pin declaration inside the current node. The pin's owning
// node is fixed at its first declaration.
func (b *NodeBuilder) beginPin(pinID int, kind PinKind) bool {
	if b.currentNode == nil || b.currentPin != nil {
		return false
	}
	pin := b.editor.getPin(pinID, kind)
	if pin == nil || pin.Kind != kind {
		return false
	}
	if pin.Node == nil {
		pin.Node = b.currentNode
	} else if pin.Node != b.currentNode {
		return false
	}
	pin.PreviousPin = b.currentNode.LastPin
	b.currentNode.LastPin = pin
	pin.Bounds = Rect{}
	b.currentPin = pin
	if kind == PinInput {
		b.stage = stageInput
	} else {
		b.stage = stageOutput
	}
	return true
}

func (b *NodeBuilder) endPin() bool {
	if b.currentPin == nil {
		return false
	}
	b.currentPin.DragPoint = b.currentPin.Bounds.Center()
	b.currentPin = nil
	b.stage = stageContent
	return true
}

// item contributes a canvas-space rectangle to the declaration: to the
// current pin's bounds when inside a pin bracket, to the header rectangle
// inside the header bracket, and always to the node's bounds.
func (b *NodeBuilder) item(r Rect) bool {
	if b.currentNode == nil {
		return false
	}
	if b.currentPin != nil {
		b.currentPin.Bounds = b.currentPin.Bounds.Union(r)
	} else if b.stage == stageHeader {
		b.headerRect = b.headerRect.Union(r)
	}
	b.nodeRect = b.nodeRect.Union(r)
	return true
}
