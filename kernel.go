package loom

// flowKind tags which direction a mutation call flows (spec §4.3, §4.6):
// resize passes are ParentIsResizing; inflate and update passes are
// ParentIsNotResizing. Base uses this to reject resolve_size calls outside
// a resize pass (spec §7: "receiving a ParentIsResizing* output from a
// non-resize callback").
type flowKind uint8

const (
	flowNotResizing flowKind = iota
	flowResizing
)

// mutate implements the reentrancy-safe pre/detach/mut/reattach/post
// protocol spec §4.1 describes, generic over the caller-supplied input type
// A, the intermediate value I handed to the element callback, and the
// callback's own output O.
//
//  1. look up id, fault if absent
//  2. pre(skeleton, bus, a) -> i            — touches only non-body fields
//  3. detach body (fault if already detached)
//  4. mutFn(body, engine, i) -> o           — runs the element callback
//  5. re-acquire id (fault if gone), reattach body (fault if already present)
//  6. post(skeleton, bus, o) -> result
//
// Detaching the body converts "element code recursing into the engine"
// from an aliasing problem into a lookup problem: the engine can be passed
// to mutFn by exclusive reference because the node currently under
// mutation simply is not in the store to alias (spec §4.1 rationale).
func mutate[A, I, O, R any](
	e *Engine,
	id Ix,
	a A,
	pre func(sk *nodeSkeleton, bus *effectBus, a A) I,
	mutFn func(body *nodeBody, e *Engine, i I) O,
	post func(sk *nodeSkeleton, bus *effectBus, o O) R,
) R {
	sk := e.tree.get(id)
	i := pre(sk, e.bus, a)

	faultIf(sk.body == nil, "node %d: body already stolen (reentrant mutation on the same node)", id)
	body := sk.body
	sk.body = nil

	o := mutFn(body, e, i)

	sk2 := e.tree.get(id)
	faultIf(sk2.body != nil, "node %d: body already restored (double restore)", id)
	sk2.body = body

	return post(sk2, e.bus, o)
}
