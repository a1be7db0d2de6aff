package arbor

// action is one of the five mutually exclusive interaction behaviors. The
// instances live for the context's lifetime; the context owns arbitration.
//
// accept answers "given this control snapshot, do I claim ownership right
// now?" and performs the enter transition when it returns true. process
// advances the owning action one frame and reports whether it remains active.
// objectDestroyed fires synchronously when any object is removed, before its
// pointer can go stale.
type action interface {
	name() string
	accept(control Control) bool
	process(control Control) bool
	objectDestroyed(o Object)
}

// dispatchActions runs the current action, then offers ownership to the
// others in fixed priority order: create, drag, select, scroll. Scroll is the
// lowest-priority opportunistic claimant of background gestures. DeleteItems
// never contends here; it is driven by its caller-facing Begin/End bracket.
// First accept wins; at most one action owns input per frame.
func (c *Context) dispatchActions(control Control) {
	if c.currentAction != nil {
		if !c.currentAction.process(control) {
			c.currentAction = nil
		}
	}
	if c.currentAction != nil {
		return
	}
	for _, a := range c.actionOrder {
		if a.accept(control) {
			c.currentAction = a
			c.cancelNavigation()
			return
		}
	}
}
