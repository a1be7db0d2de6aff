package arbor

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Config carries the external collaborators wired in at construction.
// All fields are optional; a zero Config gives an engine with no input (the
// caller can still declare objects and drive the protocols) and no
// persistence.
type Config struct {
	// Input supplies the per-frame pointer snapshot.
	Input InputSource
	// Store persists node locations and the view. Loaded once at
	// construction, flushed at frame end whenever the settings are dirty.
	Store SettingsStore
	// DragDeadZone is the movement in screen pixels below which a press
	// still counts as a click. Zero selects the default of 4.
	DragDeadZone float64
}

// Context is the interaction engine for one editor instance. It owns the
// object registry, the canvas transform, the selection, the settings cache,
// and the five interaction actions, and arbitrates which action owns input
// each frame. All methods must be called from the caller's single frame
// loop; Context is not safe for concurrent use.
type Context struct {
	reg       registry
	selection selection
	settings  Settings
	store     SettingsStore
	input     InputSource

	dragDeadZone float64

	canvas   Canvas
	viewPos  Vec2
	viewSize Vec2

	builder NodeBuilder

	scrollAct *scrollAction
	dragAct   *dragAction
	selectAct *selectAction
	createAct *createItemAction
	deleteAct *deleteItemsAction

	actionOrder   []action
	currentAction action

	in      InputState
	pointer pointerState
	control Control
	frame   uint64
	inFrame bool

	suspendCount int

	nav *navAnim
}

// NewContext creates an engine instance, loading persisted settings from
// cfg.Store when one is provided. cfg may be nil.
func NewContext(cfg *Config) (*Context, error) {
	c := &Context{
		reg:          newRegistry(),
		dragDeadZone: defaultDragDeadZone,
	}
	if cfg != nil {
		c.input = cfg.Input
		c.store = cfg.Store
		if cfg.DragDeadZone > 0 {
			c.dragDeadZone = cfg.DragDeadZone
		}
	}
	c.settings.ViewZoom = 1

	c.builder = newNodeBuilder(c)
	c.scrollAct = newScrollAction(c)
	c.dragAct = newDragAction(c)
	c.selectAct = newSelectAction(c)
	c.createAct = newCreateItemAction(c)
	c.deleteAct = newDeleteItemsAction(c)
	// Fixed arbitration priority; scroll claims last.
	c.actionOrder = []action{c.createAct, c.dragAct, c.selectAct, c.scrollAct}

	c.reg.destroyed = c.objectDestroyed

	if c.store != nil {
		loaded, err := c.store.Load()
		if err != nil {
			return nil, err
		}
		c.settings = *loaded
	}
	c.scrollAct.setView(c.settings.ViewScroll, c.settings.ViewZoom)
	return c, nil
}

// objectDestroyed fires synchronously from the registry for every removed
// object, before its pointer can go stale anywhere in the engine.
func (c *Context) objectDestroyed(o Object) {
	c.selection.remove(o)
	if c.pointer.pressObject == o {
		c.pointer.pressObject = Object{}
	}
	c.scrollAct.objectDestroyed(o)
	c.dragAct.objectDestroyed(o)
	c.selectAct.objectDestroyed(o)
	c.createAct.objectDestroyed(o)
	c.deleteAct.objectDestroyed(o)
}

// SetViewPosition sets the editor window's screen-space position used by the
// canvas transform. Defaults to the origin.
func (c *Context) SetViewPosition(pos Vec2) {
	c.viewPos = pos
}

// Begin opens a frame: reads input, advances any navigation animation, and
// establishes the canvas for the window of the given size. The id names the
// editor window; it is carried for the caller's benefit only.
func (c *Context) Begin(id string, size Vec2) {
	if c.inFrame {
		return
	}
	c.inFrame = true
	c.frame++
	c.selection.changed = false
	c.viewSize = size

	if c.input != nil {
		c.in = c.input.ReadInput()
	} else {
		c.in = InputState{}
	}

	if c.nav != nil && c.currentAction == nil {
		dt := c.in.DeltaSeconds
		if dt == 0 {
			dt = 1.0 / 60
		}
		scroll, zoom := c.nav.update(float32(dt))
		c.scrollAct.setView(scroll, zoom)
		if c.nav.done {
			c.nav = nil
			c.scrollAct.syncSettings()
		}
	}

	c.rebuildCanvas()
}

// End closes the frame: resolves the Control snapshot, dispatches the
// actions (unless suspended), and flushes dirty settings to the store.
func (c *Context) End() {
	if !c.inFrame {
		return
	}
	c.inFrame = false

	control := c.computeControl()
	c.control = control
	if c.suspendCount == 0 {
		c.dispatchActions(control)
	}

	if c.settings.Dirty && c.store != nil {
		if err := c.store.Save(&c.settings); err == nil {
			c.settings.Dirty = false
		}
	}
}

func (c *Context) rebuildCanvas() {
	zoom := c.scrollAct.zoom
	origin := Vec2{-c.scrollAct.scroll.X, -c.scrollAct.scroll.Y}
	c.canvas = NewCanvas(c.viewPos, c.viewSize, Vec2{zoom, zoom}, origin)
}

// Canvas returns the frame's coordinate transform.
func (c *Context) Canvas() Canvas { return c.canvas }

// Suspend disables action dispatch until the matching Resume. Control
// resolution keeps tracking the pointer, and a gesture in progress pauses in
// place rather than being cancelled. Calls nest.
func (c *Context) Suspend() { c.suspendCount++ }

// Resume re-enables action dispatch after Suspend.
func (c *Context) Resume() {
	if c.suspendCount > 0 {
		c.suspendCount--
	}
}

// IsSuspended reports whether action dispatch is currently disabled.
func (c *Context) IsSuspended() bool { return c.suspendCount > 0 }

// HoveredObject returns the object under the pointer as of the most recent
// End, or the zero Object over empty canvas.
func (c *Context) HoveredObject() Object { return c.control.HotObject }

// ClickedObject returns the object that completed a press-release without
// dragging during the most recent End, or the zero Object.
func (c *Context) ClickedObject() Object { return c.control.ClickedObject }

// CurrentActionName returns the name of the action owning input, or "" when
// none does.
func (c *Context) CurrentActionName() string {
	if c.currentAction == nil {
		return ""
	}
	return c.currentAction.name()
}

// NavigateTo animates the view so bounds (canvas space) fills the window,
// zoom snapped to the nearest table level that keeps it fully visible. A
// non-positive duration jumps immediately. A nil easeFn selects ease.OutQuint.
// Any user gesture cancels the animation.
func (c *Context) NavigateTo(bounds Rect, duration float32, easeFn ease.TweenFunc) {
	if bounds.IsEmpty() || c.viewSize.X <= 0 || c.viewSize.Y <= 0 {
		return
	}
	fit := math.Min(c.viewSize.X/bounds.Width, c.viewSize.Y/bounds.Height)
	idx := matchZoomIndex(fit)
	if zoomLevels[idx] > fit && idx > 0 {
		idx--
	}
	zoom := zoomLevels[idx]

	center := bounds.Center()
	origin := Vec2{
		X: c.viewSize.X/2 - center.X*zoom,
		Y: c.viewSize.Y/2 - center.Y*zoom,
	}
	target := Vec2{-origin.X, -origin.Y}

	if duration <= 0 {
		c.nav = nil
		c.scrollAct.setView(target, zoom)
		c.scrollAct.syncSettings()
		return
	}
	if easeFn == nil {
		easeFn = ease.OutQuint
	}
	c.nav = newNavAnim(c.scrollAct.scroll, c.scrollAct.zoom, target, zoom, duration, easeFn)
}

func (c *Context) cancelNavigation() { c.nav = nil }

// --- Object declaration ---

// getNode returns the live node for id, creating and settings-seeding it on
// first sight. Returns nil when the id is live under a different kind.
func (c *Context) getNode(id int) *Node {
	if o := c.reg.findObject(id); !o.IsZero() {
		return o.Node()
	}
	n := c.reg.createNode(id)
	ns := c.settings.addNode(id)
	ns.WasUsed = true
	n.Bounds.X = ns.Location.X
	n.Bounds.Y = ns.Location.Y
	return n
}

// getPin returns the live pin for id, creating it on first sight. Returns
// nil when the id is live under a different kind.
func (c *Context) getPin(id int, kind PinKind) *Pin {
	if o := c.reg.findObject(id); !o.IsZero() {
		return o.Pin()
	}
	return c.reg.createPin(id, kind)
}

// BeginNode opens the declaration of a node's shape for this frame.
func (c *Context) BeginNode(id int) bool { return c.builder.begin(id) }

// EndNode finalizes the node declaration begun by BeginNode.
func (c *Context) EndNode() bool { return c.builder.end() }

// BeginHeader opens the node's header region, carrying its declared color.
func (c *Context) BeginHeader(color Color) bool { return c.builder.beginHeader(color) }

// EndHeader closes the header region.
func (c *Context) EndHeader() bool { return c.builder.endHeader() }

// BeginInput opens an input pin declaration on the current node.
func (c *Context) BeginInput(id int) bool { return c.builder.beginPin(id, PinInput) }

// EndInput closes the current input pin.
func (c *Context) EndInput() bool { return c.builder.endPin() }

// BeginOutput opens an output pin declaration on the current node.
func (c *Context) BeginOutput(id int) bool { return c.builder.beginPin(id, PinOutput) }

// EndOutput closes the current output pin.
func (c *Context) EndOutput() bool { return c.builder.endPin() }

// Item contributes a canvas-space rectangle to the current node declaration:
// header, pin, or content, depending on the open bracket.
func (c *Context) Item(bounds Rect) bool { return c.builder.item(bounds) }

// DoLink declares an existing link's visual identity for the frame, creating
// it on first sight. Both pins must already be live. Reports whether the
// link is currently interactable.
func (c *Context) DoLink(id, startPinID, endPinID int, color Color, thickness float64) bool {
	start := c.reg.findPin(startPinID)
	end := c.reg.findPin(endPinID)
	if start == nil || end == nil {
		return false
	}
	var l *Link
	if o := c.reg.findObject(id); !o.IsZero() {
		l = o.Link()
	} else {
		l = c.reg.createLink(id)
	}
	if l == nil {
		return false
	}
	l.StartPin = start
	l.EndPin = end
	l.Color = color
	l.Thickness = thickness
	l.lastFrame = c.frame
	return c.suspendCount == 0
}

// DestroyObject explicitly removes the object with the given id. Destroying
// a node cascades to its pins and their links. Pins cannot be destroyed on
// their own; they die with their node. Returns whether anything was removed.
func (c *Context) DestroyObject(id int) bool {
	o := c.reg.findObject(id)
	switch o.Kind() {
	case KindNode:
		c.reg.destroyNode(o.Node())
		return true
	case KindLink:
		c.reg.destroyLink(o.Link())
		return true
	default:
		return false
	}
}

// --- Lookups and spatial queries ---

// FindObject returns the kind-erased handle for id; the zero Object when the
// id is not live.
func (c *Context) FindObject(id int) Object { return c.reg.findObject(id) }

// FindNode returns the live node for id, or nil.
func (c *Context) FindNode(id int) *Node { return c.reg.findNode(id) }

// FindPin returns the live pin for id, or nil.
func (c *Context) FindPin(id int) *Pin { return c.reg.findPin(id) }

// FindLink returns the live link for id, or nil.
func (c *Context) FindLink(id int) *Link { return c.reg.findLink(id) }

// FindNodesInRect returns the live nodes whose bounds intersect the
// canvas-space rectangle, in declaration order.
func (c *Context) FindNodesInRect(r Rect) []*Node {
	return c.reg.nodesInRect(r, nil)
}

// FindLinksInRect returns the live links touching the canvas-space rectangle.
func (c *Context) FindLinksInRect(r Rect) []*Link {
	return c.reg.linksInRect(r, nil)
}

// FindLinksForNode returns the live links with an endpoint on the given node.
func (c *Context) FindLinksForNode(nodeID int) []*Link {
	n := c.reg.findNode(nodeID)
	if n == nil {
		return nil
	}
	return c.reg.linksForNode(n, nil)
}

// --- Node position ---

// GetNodePosition returns the node's position in screen space. Unknown ids
// get a settings entry seeded at the origin, so a caller can query before
// the node's first declaration.
func (c *Context) GetNodePosition(nodeID int) Vec2 {
	if n := c.reg.findNode(nodeID); n != nil {
		return c.canvas.ToScreen(Vec2{n.Bounds.X, n.Bounds.Y})
	}
	ns := c.settings.addNode(nodeID)
	ns.WasUsed = true
	return c.canvas.ToScreen(ns.Location)
}

// SetNodePosition moves the node to the given screen-space position,
// shifting its pins along and marking the settings dirty.
func (c *Context) SetNodePosition(nodeID int, screenPos Vec2) {
	target := c.canvas.FromScreen(screenPos)
	ns := c.settings.addNode(nodeID)
	ns.Location = target
	ns.WasUsed = true
	c.settings.markDirty()

	n := c.reg.findNode(nodeID)
	if n == nil {
		return
	}
	dx := target.X - n.Bounds.X
	dy := target.Y - n.Bounds.Y
	n.Bounds.X = target.X
	n.Bounds.Y = target.Y
	for pin := n.LastPin; pin != nil; pin = pin.PreviousPin {
		pin.Bounds.X += dx
		pin.Bounds.Y += dy
		pin.DragPoint.X += dx
		pin.DragPoint.Y += dy
	}
}

// storeNodeLocation writes a node's current canvas location through to its
// settings entry. Called when a drag gesture drops the node.
func (c *Context) storeNodeLocation(n *Node) {
	ns := c.settings.addNode(n.ID)
	ns.Location = Vec2{n.Bounds.X, n.Bounds.Y}
	ns.WasUsed = true
	c.settings.markDirty()
}

// --- Selection surface ---

// ClearSelection empties the selection.
func (c *Context) ClearSelection() { c.selection.clear() }

// SelectObject adds an object to the selection.
func (c *Context) SelectObject(o Object) { c.selection.add(o) }

// DeselectObject removes an object from the selection.
func (c *Context) DeselectObject(o Object) { c.selection.remove(o) }

// SetSelectedObject makes o the only selected object.
func (c *Context) SetSelectedObject(o Object) {
	c.selection.clear()
	c.selection.add(o)
}

// ToggleObjectSelection flips an object's selection membership.
func (c *Context) ToggleObjectSelection(o Object) { c.selection.toggle(o) }

// IsSelected reports selection membership.
func (c *Context) IsSelected(o Object) bool { return c.selection.contains(o) }

// SelectedObjects returns the selection in insertion order. The slice is
// owned by the engine; callers must not retain or mutate it.
func (c *Context) SelectedObjects() []Object { return c.selection.objects }

// IsAnyNodeSelected reports whether the selection holds at least one node.
func (c *Context) IsAnyNodeSelected() bool { return c.selection.anyOfKind(KindNode) }

// IsAnyLinkSelected reports whether the selection holds at least one link.
func (c *Context) IsAnyLinkSelected() bool { return c.selection.anyOfKind(KindLink) }

// HasSelectionChanged reports whether the selection changed since the last
// Begin.
func (c *Context) HasSelectionChanged() bool { return c.selection.changed }

// --- Create-item polling protocol ---

// BeginCreate opens the create bracket with the visual style a link accepted
// this frame will carry. Reports whether a creation gesture is in progress
// or pending.
func (c *Context) BeginCreate(color Color, thickness float64) bool {
	c.createAct.setStyle(color, thickness)
	return c.createAct.begin()
}

// QueryNewLink yields the pending link's pin ids, output first. ok is false
// when no link candidate exists this frame.
func (c *Context) QueryNewLink() (startPinID, endPinID int, ok bool) {
	s, e, r := c.createAct.queryLink()
	return s, e, r == resultTrue
}

// QueryNewNode yields the pin a node dropped on empty canvas would connect
// to. ok is false when no node candidate exists this frame.
func (c *Context) QueryNewNode() (pinID int, ok bool) {
	id, r := c.createAct.queryNode()
	return id, r == resultTrue
}

// AcceptNewItem commits the pending item. For a pending link the engine
// materializes it in the registry under the caller-assigned id. Returns
// false while the drag is still in progress (the accept is remembered as a
// preview) or when nothing is pending.
func (c *Context) AcceptNewItem(id int) bool {
	return c.createAct.acceptItem(id) == resultTrue
}

// RejectNewItem discards the pending item. Returns false while the drag is
// still in progress or when nothing is pending.
func (c *Context) RejectNewItem() bool {
	return c.createAct.rejectItem() == resultTrue
}

// EndCreate closes the create bracket.
func (c *Context) EndCreate() { c.createAct.end() }

// --- Delete-items polling protocol ---

// BeginDelete captures the current selection as deletion candidates, links
// before nodes. Reports whether there is anything to delete.
func (c *Context) BeginDelete() bool { return c.deleteAct.begin() }

// QueryDeletedLink yields the current candidate's id when it is a link.
func (c *Context) QueryDeletedLink() (linkID int, ok bool) { return c.deleteAct.queryLink() }

// QueryDeletedNode yields the current candidate's id when it is a node.
func (c *Context) QueryDeletedNode() (nodeID int, ok bool) { return c.deleteAct.queryNode() }

// AcceptDeletedItem removes the current candidate through the registry,
// cascading for nodes, and advances to the next candidate.
func (c *Context) AcceptDeletedItem() bool { return c.deleteAct.acceptItem() }

// RejectDeletedItem skips the current candidate without removing it.
func (c *Context) RejectDeletedItem() { c.deleteAct.rejectItem() }

// EndDelete closes the delete bracket, discarding undrained candidates.
func (c *Context) EndDelete() { c.deleteAct.end() }
