package arbor

// Node is a graph node declared by the caller each frame. A single flat
// struct is used rather than an interface hierarchy; Object carries the kind
// tag for code that handles nodes, pins, and links uniformly.
type Node struct {
	// ID is the caller-assigned identity, unique across nodes, pins, and links.
	ID int
	// Bounds is the node's rectangle in canvas space, rebuilt every frame the
	// node is declared.
	Bounds Rect
	// Channel is the draw-order depth. Higher channels win hot resolution
	// when bounds overlap.
	Channel int
	// LastPin is the most recently declared pin this frame. Pins chain back
	// through Pin.PreviousPin in declaration order.
	LastPin *Pin
	// DragStart is the bounds position captured when a drag gesture begins.
	// Meaningful only while the node is being dragged.
	DragStart Vec2

	live      bool
	lastFrame uint64
}

// IsLive reports whether the node is still registered. A destroyed node may
// be referenced until the end of the frame that destroyed it.
func (n *Node) IsLive() bool { return n != nil && n.live }

// Pin is a connection point on a node.
type Pin struct {
	// ID is the caller-assigned identity, unique across nodes, pins, and links.
	ID int
	// Kind is the pin's directional role.
	Kind PinKind
	// Node is the owning node. Set once at creation, never reassigned.
	Node *Node
	// Bounds is the pin's rectangle in canvas space.
	Bounds Rect
	// DragPoint is the anchor a pending link attaches to while being dragged
	// from or toward this pin. Refreshed to the bounds center at declaration.
	DragPoint Vec2
	// PreviousPin is the pin declared before this one on the same node, or
	// nil for the node's first pin this frame.
	PreviousPin *Pin

	live bool
}

// IsLive reports whether the pin is still registered.
func (p *Pin) IsLive() bool { return p != nil && p.live }

// Link is a connection between two live pins.
type Link struct {
	// ID is the caller-assigned identity, unique across nodes, pins, and links.
	ID int
	// StartPin and EndPin are non-owning references. Both were live when the
	// link was created; destroying either owning node destroys the link.
	StartPin *Pin
	EndPin   *Pin
	// Color and Thickness are the caller's declared visual identity, carried
	// for rendering and hit testing but never drawn by the engine.
	Color     Color
	Thickness float64

	live      bool
	lastFrame uint64
}

// IsLive reports whether the link is still registered.
func (l *Link) IsLive() bool { return l != nil && l.live }

// Object is a kind-tagged handle to a registered graph element. It is a small
// value type; the zero Object has KindNone and matches nothing. Exactly one
// of Node, Pin, or Link returns non-nil, according to Kind.
type Object struct {
	kind ObjectKind
	node *Node
	pin  *Pin
	link *Link
}

func objectOfNode(n *Node) Object { return Object{kind: KindNode, node: n} }
func objectOfPin(p *Pin) Object   { return Object{kind: KindPin, pin: p} }
func objectOfLink(l *Link) Object { return Object{kind: KindLink, link: l} }

// Kind returns the element kind, or KindNone for the zero Object.
func (o Object) Kind() ObjectKind { return o.kind }

// IsZero reports whether the handle refers to nothing.
func (o Object) IsZero() bool { return o.kind == KindNone }

// ID returns the element's identity, or 0 for the zero Object.
func (o Object) ID() int {
	switch o.kind {
	case KindNode:
		return o.node.ID
	case KindPin:
		return o.pin.ID
	case KindLink:
		return o.link.ID
	default:
		return 0
	}
}

// IsLive reports whether the referenced element is still registered.
func (o Object) IsLive() bool {
	switch o.kind {
	case KindNode:
		return o.node.IsLive()
	case KindPin:
		return o.pin.IsLive()
	case KindLink:
		return o.link.IsLive()
	default:
		return false
	}
}

// Node returns the node this handle refers to, or nil if it is not a node.
func (o Object) Node() *Node {
	if o.kind == KindNode {
		return o.node
	}
	return nil
}

// Pin returns the pin this handle refers to, or nil if it is not a pin.
func (o Object) Pin() *Pin {
	if o.kind == KindPin {
		return o.pin
	}
	return nil
}

// Link returns the link this handle refers to, or nil if it is not a link.
func (o Object) Link() *Link {
	if o.kind == KindLink {
		return o.link
	}
	return nil
}
