package loom

// transformOp updates a node's relative transform and pushes the resulting
// absolute transform down into its children (spec §4.5's "transform(id,
// relative)"). Generalizes willow's updateWorldTransform/multiplyAffine
// (willow/transform.go), replacing willow's upward-dirty-flag shortcut
// (which only recomputes what changed) with the explicit, always-recursive
// push the spec requires — loom has no per-frame "dirty" concept outside
// the update pass's own invalidation bookkeeping (spec §4.6).
func (e *Engine) transformOp(id Ix, relative Transform) {
	sk := e.tree.get(id)
	sk.relativeTransform = relative
	e.propagate(sk)
}

// parentTransformOp updates a node's parent-absolute transform and pushes
// the result down into its children (spec §4.5's "parent_transform(id,
// parent)"). Used during recursive propagation and may also be called
// directly to re-parent a node under a new transform.
func (e *Engine) parentTransformOp(id Ix, parent Transform) {
	sk := e.tree.get(id)
	sk.parentTransform = parent
	e.propagate(sk)
}

// propagate recomputes sk's absolute transform, recurses into every child
// by setting the child's parent transform to that absolute, and emits a
// Transform effect for sk in post-order (after its descendants) — spec
// §4.5: "recurse into each child ... and emit Transform{id, absolute} in
// post-order."
func (e *Engine) propagate(sk *nodeSkeleton) {
	absolute := sk.parentTransform.Compose(sk.relativeTransform)

	faultIf(sk.body == nil, "node %d: transform propagation requires a present body", sk.id)
	for i := range sk.body.children {
		childId := sk.body.children[i].Id
		childSk := e.tree.get(childId)
		childSk.parentTransform = absolute
		e.propagate(childSk)
	}

	e.bus.send(transformEffect(sk.id, absolute))
}
