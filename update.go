package loom

// update runs one tick of the update pass (spec §4.6): every node currently
// in the update set gets its Element.Update called once, in an unspecified
// order, with delta and a Base whose BoxSize reflects the last successful
// resize. Generalizes willow's Scene.Update/updateNodesAndParticles
// (willow/scene.go), which walks a live node tree each frame; loom instead
// walks a flat id set, since spec §4.6 only obligates visiting nodes that
// opted in via Base.EnableUpdate, not the whole tree.
//
// Any node whose callback calls Base.InvalidateSize has its cached size, and
// every ancestor's up to the root, cleared before the pass returns. If the
// root had a cached size before the first invalidation, it is reflowed once
// at the end with the box-size request that produced that cache, rather
// than once per invalidated node; a root with no cached size is not reflowed.
func (e *Engine) update(delta float64) {
	faultIf(e.updateTaken, "update called while an update pass is already in progress")
	e.updateTaken = true
	debugLog("update: %d nodes", len(e.updateSet))

	ids := make([]Ix, 0, len(e.updateSet))
	for id := range e.updateSet {
		ids = append(ids, id)
	}

	var priorRootBox *BoxSize
	rootInvalidated := false

	for _, id := range ids {
		if !e.tree.exists(id) {
			continue
		}
		if e.updateOne(id, delta) {
			if !rootInvalidated && e.tree.hasRoot {
				if last := e.tree.get(e.tree.rootId).lastSize; last != nil {
					box := last.toBoxSize()
					priorRootBox = &box
				}
			}
			rootInvalidated = true
			e.invalidateChain(id)
		}
	}

	e.updateTaken = false

	if priorRootBox != nil && e.tree.hasRoot {
		e.resize(e.tree.rootId, *priorRootBox)
	}
}

// updateOne runs a single node's Update callback through the mutation
// kernel and reports whether it invalidated its size.
func (e *Engine) updateOne(id Ix, delta float64) bool {
	sk := e.tree.get(id)
	box := sk.lastSize.toBoxSize()

	return mutate(e, id, delta,
		func(_ *nodeSkeleton, _ *effectBus, delta float64) float64 {
			return delta
		},
		func(body *nodeBody, e *Engine, delta float64) *Base {
			b := &Base{engine: e, ownId: id, body: body, flow: flowNotResizing, box: box}
			body.element.Update(b, delta)
			return b
		},
		func(_ *nodeSkeleton, _ *effectBus, b *Base) bool {
			return b.invalidated
		},
	)
}

// invalidateChain clears the cached last-resolved-size of id and every
// ancestor up to and including the root (spec §4.6).
func (e *Engine) invalidateChain(id Ix) {
	for {
		sk := e.tree.get(id)
		sk.lastSize = nil
		if !sk.hasParent {
			return
		}
		id = sk.parentId
	}
}

// enableUpdate adds or removes id from the update set (spec §4.6, called
// via Base.EnableUpdate). Fatal if the update set is currently taken (spec
// §7): mutating the set mid-iteration would change which nodes the
// in-progress pass visits.
func (e *Engine) enableUpdate(id Ix, state bool) {
	faultIf(e.updateTaken, "enable_update called while the update set is taken")
	if state {
		e.updateSet[id] = struct{}{}
	} else {
		delete(e.updateSet, id)
	}
}
