package arbor

// linkHitPadding widens link hit testing beyond the link's half thickness,
// in canvas units.
const linkHitPadding = 4.0

// Control is the per-frame, immutable answer to "what is the pointer on".
// It carries no interaction semantics; the actions read it to decide whether
// to claim or advance a gesture.
type Control struct {
	// HotObject is the front-most live object under the pointer.
	// ActiveObject is the object captured by the press in progress, if any.
	// ClickedObject is the object that completed press-release this frame
	// without exceeding the drag dead zone.
	HotObject     Object
	ActiveObject  Object
	ClickedObject Object

	// Typed views of the three roles. A hot pin also reports its owning node
	// as HotNode.
	HotNode     *Node
	ActiveNode  *Node
	ClickedNode *Node
	HotPin      *Pin
	ActivePin   *Pin
	ClickedPin  *Pin
	HotLink     *Link
	ActiveLink  *Link
	ClickedLink *Link

	// Background roles are true when empty canvas holds the corresponding
	// role instead of an object.
	BackgroundHot     bool
	BackgroundActive  bool
	BackgroundClicked bool
}

func newControl(hot, active, clicked Object, backgroundActive, backgroundClicked bool) Control {
	c := Control{
		HotObject:         hot,
		ActiveObject:      active,
		ClickedObject:     clicked,
		BackgroundHot:     hot.IsZero(),
		BackgroundActive:  backgroundActive,
		BackgroundClicked: backgroundClicked,
	}
	c.HotNode = hot.Node()
	c.HotPin = hot.Pin()
	c.HotLink = hot.Link()
	if c.HotPin != nil {
		c.HotNode = c.HotPin.Node
	}
	c.ActiveNode = active.Node()
	c.ActivePin = active.Pin()
	c.ActiveLink = active.Link()
	if c.ActivePin != nil {
		c.ActiveNode = c.ActivePin.Node
	}
	c.ClickedNode = clicked.Node()
	c.ClickedPin = clicked.Pin()
	c.ClickedLink = clicked.Link()
	return c
}

// hitTest finds the front-most live object at the given canvas-space point.
// Nodes and their pins are depth-ordered by Channel (highest wins); within a
// channel the later-declared node sits on top. A pin beats its owning node.
// Links are below all nodes.
func (c *Context) hitTest(p Vec2) Object {
	var best Object
	bestChannel := 0
	found := false
	for _, n := range c.reg.nodes {
		if !n.live || !n.Bounds.Contains(p.X, p.Y) {
			continue
		}
		if found && n.Channel < bestChannel {
			continue
		}
		candidate := objectOfNode(n)
		// Pins sit on top of their node.
		for pin := n.LastPin; pin != nil; pin = pin.PreviousPin {
			if pin.live && pin.Bounds.Contains(p.X, p.Y) {
				candidate = objectOfPin(pin)
				break
			}
		}
		best = candidate
		bestChannel = n.Channel
		found = true
	}
	if found {
		return best
	}
	if l := c.reg.linkAt(p, linkHitPadding); l != nil {
		return objectOfLink(l)
	}
	return Object{}
}

// updatePointer advances the press/drag/release state machine one frame and
// returns the clicked object for this frame, if any. A click is a press then
// release over the same object with cumulative movement inside the dead zone.
func (c *Context) updatePointer(hot Object) (clicked Object, clickedBackground bool) {
	in := &c.in
	ps := &c.pointer

	held := in.Buttons[MouseButtonLeft] || in.Buttons[MouseButtonRight] || in.Buttons[MouseButtonMiddle]

	switch {
	case held && !ps.down:
		// Just pressed. Capture the button for the whole interaction.
		ps.down = true
		switch {
		case in.Buttons[MouseButtonLeft]:
			ps.button = MouseButtonLeft
		case in.Buttons[MouseButtonRight]:
			ps.button = MouseButtonRight
		default:
			ps.button = MouseButtonMiddle
		}
		ps.pressPos = in.MousePos
		ps.lastPos = in.MousePos
		ps.pressObject = hot
		ps.dragging = false

	case ps.down && !in.Buttons[ps.button]:
		// Released the captured button.
		if !ps.dragging {
			if ps.pressObject.IsZero() && hot.IsZero() {
				clickedBackground = true
			} else if !ps.pressObject.IsZero() && ps.pressObject == hot {
				clicked = ps.pressObject
			}
		}
		ps.down = false
		ps.pressObject = Object{}
		ps.dragging = false

	case ps.down:
		if !ps.dragging {
			dx := in.MousePos.X - ps.pressPos.X
			dy := in.MousePos.Y - ps.pressPos.Y
			if dx*dx+dy*dy > c.dragDeadZone*c.dragDeadZone {
				ps.dragging = true
			}
		}
		ps.lastPos = in.MousePos
	}
	return clicked, clickedBackground
}

// computeControl resolves hot, advances the pointer state machine, and
// assembles the frame's Control snapshot. It runs even while suspended so the
// pointer keeps being tracked; only action dispatch is gated.
func (c *Context) computeControl() Control {
	hot := c.hitTest(c.canvas.FromScreen(c.in.MousePos))
	clicked, clickedBackground := c.updatePointer(hot)

	var active Object
	backgroundActive := false
	if c.pointer.down {
		active = c.pointer.pressObject
		backgroundActive = active.IsZero()
	}
	return newControl(hot, active, clicked, backgroundActive, clickedBackground)
}

// pointerDragging reports whether the captured press has moved past the dead
// zone with the given button.
func (c *Context) pointerDragging(button MouseButton) bool {
	return c.pointer.down && c.pointer.dragging && c.pointer.button == button
}
