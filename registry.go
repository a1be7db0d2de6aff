package arbor

import "math"

// registry owns every live Node, Pin, and Link. All identity assignment and
// destruction cascades go through it, so two live objects can never share an
// id and a cascade can never leave a dangling endpoint past the notification.
type registry struct {
	objects map[int]Object

	// Declaration order is preserved; within a channel, later nodes sit on
	// top for hot resolution.
	nodes []*Node
	pins  []*Pin
	links []*Link

	// destroyed is invoked synchronously for every object removed, before
	// the object is unreachable, so selection and in-flight actions can drop
	// their references.
	destroyed func(Object)
}

func newRegistry() registry {
	return registry{objects: make(map[int]Object)}
}

// createNode registers a node under id. Returns nil if the id is already
// live under any kind.
func (r *registry) createNode(id int) *Node {
	if _, taken := r.objects[id]; taken {
		return nil
	}
	n := &Node{ID: id, live: true}
	r.objects[id] = objectOfNode(n)
	r.nodes = append(r.nodes, n)
	return n
}

// createPin registers a pin under id. Returns nil if the id is already live.
func (r *registry) createPin(id int, kind PinKind) *Pin {
	if _, taken := r.objects[id]; taken {
		return nil
	}
	p := &Pin{ID: id, Kind: kind, live: true}
	r.objects[id] = objectOfPin(p)
	r.pins = append(r.pins, p)
	return p
}

// createLink registers a link under id. Returns nil if the id is already live.
func (r *registry) createLink(id int) *Link {
	if _, taken := r.objects[id]; taken {
		return nil
	}
	l := &Link{ID: id, live: true, Color: ColorWhite, Thickness: 1}
	r.objects[id] = objectOfLink(l)
	r.links = append(r.links, l)
	return l
}

// findObject returns the kind-erased handle for id, or the zero Object.
func (r *registry) findObject(id int) Object {
	return r.objects[id]
}

func (r *registry) findNode(id int) *Node { return r.objects[id].Node() }
func (r *registry) findPin(id int) *Pin   { return r.objects[id].Pin() }
func (r *registry) findLink(id int) *Link { return r.objects[id].Link() }

// destroyNode removes a node and cascades to its pins and every link
// touching those pins. Safe to call on an already-destroyed node.
func (r *registry) destroyNode(n *Node) {
	if !n.IsLive() {
		return
	}
	// Links first, then pins, then the node itself, so every notification
	// fires while the remaining structure is still intact.
	for _, l := range r.linksForNode(n, nil) {
		r.destroyLink(l)
	}
	// Scan the full pin list rather than the declaration chain; the chain is
	// rebuilt per frame and may not cover pins skipped this frame.
	owned := make([]*Pin, 0, 4)
	for _, pin := range r.pins {
		if pin.Node == n {
			owned = append(owned, pin)
		}
	}
	for _, pin := range owned {
		r.destroyPin(pin)
	}
	n.live = false
	delete(r.objects, n.ID)
	r.nodes = removeNode(r.nodes, n)
	r.notifyDestroyed(objectOfNode(n))
}

// destroyPin removes a pin. Callers must have removed incident links first;
// destroyNode does. Pins are not independently destroyable via the public API.
func (r *registry) destroyPin(p *Pin) {
	if !p.IsLive() {
		return
	}
	p.live = false
	delete(r.objects, p.ID)
	r.pins = removePin(r.pins, p)
	r.notifyDestroyed(objectOfPin(p))
}

// destroyLink removes a link. Safe to call on an already-destroyed link.
func (r *registry) destroyLink(l *Link) {
	if !l.IsLive() {
		return
	}
	l.live = false
	delete(r.objects, l.ID)
	r.links = removeLink(r.links, l)
	r.notifyDestroyed(objectOfLink(l))
}

func (r *registry) notifyDestroyed(o Object) {
	if r.destroyed != nil {
		r.destroyed(o)
	}
}

// nodesInRect appends every live node whose bounds intersect rect, in
// declaration order.
func (r *registry) nodesInRect(rect Rect, buf []*Node) []*Node {
	for _, n := range r.nodes {
		if n.Bounds.Intersects(rect) {
			buf = append(buf, n)
		}
	}
	return buf
}

// linksInRect appends every live link whose segment between drag points
// touches rect.
func (r *registry) linksInRect(rect Rect, buf []*Link) []*Link {
	for _, l := range r.links {
		if l.StartPin == nil || l.EndPin == nil {
			continue
		}
		if segmentIntersectsRect(l.StartPin.DragPoint, l.EndPin.DragPoint, rect) {
			buf = append(buf, l)
		}
	}
	return buf
}

// linksForNode appends every live link with an endpoint pin owned by n.
func (r *registry) linksForNode(n *Node, buf []*Link) []*Link {
	for _, l := range r.links {
		if (l.StartPin != nil && l.StartPin.Node == n) ||
			(l.EndPin != nil && l.EndPin.Node == n) {
			buf = append(buf, l)
		}
	}
	return buf
}

// linkAt returns the topmost link whose segment passes within the link's
// half thickness plus a small padding of p, or nil.
func (r *registry) linkAt(p Vec2, padding float64) *Link {
	for i := len(r.links) - 1; i >= 0; i-- {
		l := r.links[i]
		if l.StartPin == nil || l.EndPin == nil {
			continue
		}
		reach := l.Thickness/2 + padding
		if pointSegmentDistance(p, l.StartPin.DragPoint, l.EndPin.DragPoint) <= reach {
			return l
		}
	}
	return nil
}

func removeNode(s []*Node, n *Node) []*Node {
	for i := range s {
		if s[i] == n {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}

func removePin(s []*Pin, p *Pin) []*Pin {
	for i := range s {
		if s[i] == p {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}

func removeLink(s []*Link, l *Link) []*Link {
	for i := range s {
		if s[i] == l {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}

// pointSegmentDistance returns the distance from p to the segment ab.
func pointSegmentDistance(p, a, b Vec2) float64 {
	abx := b.X - a.X
	aby := b.Y - a.Y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		dx := p.X - a.X
		dy := p.Y - a.Y
		return math.Sqrt(dx*dx + dy*dy)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	t = math.Max(0, math.Min(1, t))
	cx := a.X + t*abx
	cy := a.Y + t*aby
	dx := p.X - cx
	dy := p.Y - cy
	return math.Sqrt(dx*dx + dy*dy)
}

// segmentIntersectsRect reports whether the segment ab touches rect.
func segmentIntersectsRect(a, b Vec2, rect Rect) bool {
	if rect.Contains(a.X, a.Y) || rect.Contains(b.X, b.Y) {
		return true
	}
	x0, y0 := rect.X, rect.Y
	x1, y1 := rect.X+rect.Width, rect.Y+rect.Height
	return segmentsCross(a, b, Vec2{x0, y0}, Vec2{x1, y0}) ||
		segmentsCross(a, b, Vec2{x1, y0}, Vec2{x1, y1}) ||
		segmentsCross(a, b, Vec2{x1, y1}, Vec2{x0, y1}) ||
		segmentsCross(a, b, Vec2{x0, y1}, Vec2{x0, y0})
}

// segmentsCross reports whether segments ab and cd intersect.
func segmentsCross(a, b, c, d Vec2) bool {
	o1 := orientation(a, b, c)
	o2 := orientation(a, b, d)
	o3 := orientation(c, d, a)
	o4 := orientation(c, d, b)
	if o1 != o2 && o3 != o4 {
		return true
	}
	// Colinear overlap cases.
	return (o1 == 0 && onSegment(a, b, c)) ||
		(o2 == 0 && onSegment(a, b, d)) ||
		(o3 == 0 && onSegment(c, d, a)) ||
		(o4 == 0 && onSegment(c, d, b))
}

func orientation(a, b, p Vec2) int {
	v := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func onSegment(a, b, p Vec2) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}
