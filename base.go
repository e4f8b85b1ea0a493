package loom

// Base is the only handle an Element callback ever sees into the engine
// (spec §4.8) — the "scoped façade" component of spec §4 (4.1's I-value in
// practice). It wraps the node's own detached body (for child access) plus
// a full *Engine reference (for recursive operations on other nodes), and
// accumulates whatever outcome the callback produces (a resolved size, an
// invalidation) for the mutation kernel's post phase to interpret.
//
// willow's element code (Node methods) operates on a live *Node pointer
// directly since willow never detaches anything; Base exists here because
// loom elements must not be able to alias their own in-flight mutation
// (spec §4.1) — there is no raw pointer into the store for an element to
// hold onto.
type Base struct {
	engine *Engine
	ownId  Ix
	body   *nodeBody
	flow   flowKind
	box    BoxSize

	hasResolved bool
	resolved    *ResolvedSize
	invalidated bool
}

// BoxSize returns the sizing mode requested for this pass.
func (b *Base) BoxSize() BoxSize {
	return b.box
}

// ResolveSize records the element's chosen size for this resize pass.
// Fatal outside a resize pass (spec §7): inflate and update both run with
// flowNotResizing, so calling this from either faults immediately rather
// than silently producing a mismatched output state.
func (b *Base) ResolveSize(size *ResolvedSize) {
	faultIf(b.flow != flowResizing, "resolve_size called outside a resize pass")
	b.hasResolved = true
	b.resolved = size
}

// InvalidateSize marks the node's cached size as stale, to be picked up by
// the next update-pass reflow (spec §4.6). Per spec §4.3's documented edge
// case, calling this during a resize pass is silently ignored — that
// output variant ("ParentIsResizingNoResolve" co-opted for invalidation) is
// unreachable from a resize callback by construction, not a fault.
func (b *Base) InvalidateSize() {
	if b.flow == flowResizing {
		return
	}
	b.invalidated = true
}

// EnableUpdate adds or removes this node from the engine's update set
// (spec §4.6). Fatal if called while the update set is mid-iteration
// (spec §7).
func (b *Base) EnableUpdate(state bool) {
	b.engine.enableUpdate(b.ownId, state)
}

// Add creates a new child of the current node, running its inflate
// callback, and appends a fresh ChildRecord to this node's (detached)
// child mapping (spec §4.2's add_node, invoked from Base.Add per spec
// §3's "Non-root ... created by Base::add from inside an element
// callback").
func (b *Base) Add(element Element) Ix {
	id := b.engine.addNode(b.ownId, true, element)
	b.body.children = append(b.body.children, ChildRecord{Id: id})
	return id
}

// ChildrenLen returns the number of children of the current node.
func (b *Base) ChildrenLen() int {
	return len(b.body.children)
}

// ChildrenMut calls fn once per child, in insertion order, with a handle
// scoped to that single child record.
func (b *Base) ChildrenMut(fn func(index int, child *ChildHandle)) {
	for i := range b.body.children {
		fn(i, &ChildHandle{engine: b.engine, rec: &b.body.children[i]})
	}
}

// ChildHandle is the per-child handle exposed inside ChildrenMut (spec
// §4.8's "ChildIterItemMut"). It lets an element resize, place, and hide
// one of its own children without the parent's body ever being re-entered:
// the child being resized is a different node than the one whose body is
// currently detached, so recursing through the engine is safe (spec §4.1).
type ChildHandle struct {
	engine *Engine
	rec    *ChildRecord
}

// ElementResize resizes the child with the given box-size request and
// returns its resolved size, if any.
func (h *ChildHandle) ElementResize(box BoxSize) *ResolvedSize {
	return h.engine.resize(h.rec.Id, box)
}

// SetTranslation places the child at the given (w, h) pixel offset,
// pushing the translation down as the child's relative transform only when
// it actually changed or had never been propagated (spec §4.5).
func (h *ChildHandle) SetTranslation(size ResolvedSize) {
	if h.rec.Translation2d != size || !h.rec.TransformPropagated {
		h.rec.Translation2d = size
		t := Translate3D(float64(size.W), float64(size.H), 0)
		h.engine.transformOp(h.rec.Id, t)
		h.rec.TransformPropagated = true
	}
}

// Hide resizes the child to Hidden, equivalent to ElementResize(Hidden()).
func (h *ChildHandle) Hide() {
	h.engine.hide(h.rec.Id)
}
