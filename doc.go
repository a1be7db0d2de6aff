// Package arbor is the interaction engine behind a node-graph editing
// widget. Given a per-frame stream of pointer input and a set of
// caller-declared nodes, pins, and links, it resolves what the user is
// pointing at, arbitrates which single behavior owns input (panning/zooming,
// dragging, rubber-band selection, link/node creation, deletion), and lets
// the hosting application confirm or veto every structural change before it
// takes effect.
//
// Arbor draws nothing and polls no devices. Rendering, input backends, and
// graph validity rules stay with the caller; the engine owns identity,
// coordinates, and gesture recognition.
//
// # Frame loop
//
// Every frame the caller brackets its declarations between [Context.Begin]
// and [Context.End], redeclaring each visible object:
//
//	ctx.Begin("graph", arbor.Vec2{X: 1280, Y: 720})
//
//	ctx.BeginNode(nodeID)
//	ctx.Item(headerRect)
//	ctx.BeginInput(pinID)
//	ctx.Item(pinRect)
//	ctx.EndInput()
//	ctx.EndNode()
//
//	ctx.DoLink(linkID, fromPin, toPin, arbor.ColorWhite, 2)
//
//	ctx.End()
//
// End resolves the frame's Control snapshot (hot/active/clicked) and offers
// input ownership to the actions in fixed priority order; at most one owns
// input at a time.
//
// # Confirming mutations
//
// Gestures that would change the graph surface through polling protocols
// instead of committing directly. A link dragged between two pins becomes a
// pending item the caller must accept or reject:
//
//	if ctx.BeginCreate(arbor.ColorWhite, 2) {
//		if from, to, ok := ctx.QueryNewLink(); ok {
//			if linkAllowed(from, to) {
//				ctx.AcceptNewItem(nextID())
//			} else {
//				ctx.RejectNewItem()
//			}
//		}
//	}
//	ctx.EndCreate()
//
// Deletion works the same way through BeginDelete/QueryDeletedLink/
// QueryDeletedNode/AcceptDeletedItem/RejectDeletedItem/EndDelete, draining
// links before nodes.
//
// # Input and persistence
//
// Input arrives through an [InputSource]; the ebiteninput subpackage adapts
// [Ebitengine], and [Script] replays recorded JSON input for tests. Node
// positions and the view live in [Settings] and flush through a
// [SettingsStore] (see [FileStore]) whenever they change.
//
// [Ebitengine]: https://ebitengine.org
package arbor
