package loom

// resize implements the resize protocol of spec §4.3. Generalizes willow's
// static-command-cache short-circuit (Node.SetStaticCache/
// InvalidateStaticCache/IsStaticCacheValid in willow/node.go — "capture
// render commands on the first frame, replay on subsequent frames, skip
// the subtree walk entirely") into a per-node memoization keyed on the
// request shape rather than a boolean valid flag, since loom must
// distinguish *which* box-size last produced the cached outcome.
func (e *Engine) resize(id Ix, box BoxSize) *ResolvedSize {
	sk := e.tree.get(id)
	if sk.lastSize.matches(box) {
		debugLog("resize %d: cache hit", id)
		return sk.lastSize.resolved
	}
	debugLog("resize %d: box=%+v", id, box)

	return mutate(e, id, box,
		func(_ *nodeSkeleton, _ *effectBus, box BoxSize) BoxSize {
			return box
		},
		func(body *nodeBody, e *Engine, box BoxSize) *Base {
			b := &Base{engine: e, ownId: id, body: body, flow: flowResizing, box: box}
			body.element.Resize(b)
			return b
		},
		func(sk *nodeSkeleton, bus *effectBus, b *Base) *ResolvedSize {
			var resolved *ResolvedSize
			if b.hasResolved {
				resolved = b.resolved
			}
			sk.lastSize = newLastResolvedSize(box, resolved)
			bus.send(resizeEffect(id, resolved))
			return resolved
		},
	)
}

// hide is equivalent to resize(id, Hidden()) (spec §4.3).
func (e *Engine) hide(id Ix) *ResolvedSize {
	return e.resize(id, Hidden())
}

// resolvedPtr is a small helper for building *ResolvedSize literals inline,
// since Go has no address-of-literal operator.
func resolvedPtr(s ResolvedSize) *ResolvedSize {
	return &s
}

// LayoutEmpty hides every child and resolves the node's own size as None
// (spec §4.4).
func (b *Base) LayoutEmpty() {
	b.ChildrenMut(func(_ int, c *ChildHandle) {
		c.Hide()
	})
	b.ResolveSize(nil)
}

// LayoutAutoSizedList resizes every child with Auto, stacks the ones that
// resolve along flow's main axis separated by margin, and resolves the
// node's own size to fit the stack (spec §4.4). Children that resolve to
// None are skipped entirely: no placement, no advancement.
func (b *Base) LayoutAutoSizedList(margin int, flow Flow) {
	cursorMain := margin
	maxCross := 0
	any := false

	b.ChildrenMut(func(_ int, c *ChildHandle) {
		resolved := c.ElementResize(Auto())
		if resolved == nil {
			return
		}
		cross, main := resolved.ToFlow(flow)
		if cross > maxCross {
			maxCross = cross
		}
		c.SetTranslation(FromFlow(flow, margin, cursorMain))
		cursorMain += main + margin
		any = true
	})

	if !any {
		b.ResolveSize(nil)
		return
	}
	b.ResolveSize(resolvedPtr(FromFlow(flow, maxCross+2*margin, cursorMain)))
}

// forceEqualChildSize records that equal sizing is the only fill-list
// behavior. No code reads it: LayoutEquallySizedFillList has no branch that
// gives the last child the leftover slack, and the remainder of the
// main-axis division is left unassigned. It is not a configurable option.
const forceEqualChildSize = true

// LayoutEquallySizedFillList fills the requested Fixed size by giving every
// child an equal share of the main axis and the full cross axis, minus
// margins (spec §4.4). Falls back to LayoutEmpty when there are no
// children or the available space collapses to zero or less.
func (b *Base) LayoutEquallySizedFillList(margin int, size ResolvedSize, flow Flow) {
	cross, main := size.ToFlow(flow)
	n := b.ChildrenLen()

	crossReduced := cross - 2*margin
	mainReduced := main - 2*margin - margin*(n-1)
	if n == 0 || crossReduced <= 0 || mainReduced <= 0 {
		b.LayoutEmpty()
		return
	}

	childMain := mainReduced / n
	if childMain == 0 {
		b.LayoutEmpty()
		return
	}

	childFixed := FromFlow(flow, crossReduced, childMain)
	cursorMain := margin

	b.ChildrenMut(func(_ int, c *ChildHandle) {
		_ = c.ElementResize(Fixed(childFixed.W, childFixed.H))
		c.SetTranslation(FromFlow(flow, margin, cursorMain))
		cursorMain += childMain + margin
	})

	b.ResolveSize(resolvedPtr(FromFlow(flow, cross, main)))
}

// LayoutVertical dispatches on the node's own requested box-size, using a
// vertical flow (spec §4.4).
func (b *Base) LayoutVertical(margin int) {
	b.dispatchListLayout(margin, FlowVertical)
}

// LayoutHorizontal dispatches on the node's own requested box-size, using a
// horizontal flow (spec §4.4).
func (b *Base) LayoutHorizontal(margin int) {
	b.dispatchListLayout(margin, FlowHorizontal)
}

func (b *Base) dispatchListLayout(margin int, flow Flow) {
	switch b.box.Kind {
	case BoxSizeHidden:
		b.LayoutEmpty()
	case BoxSizeAuto:
		b.LayoutAutoSizedList(margin, flow)
	case BoxSizeFixed:
		b.LayoutEquallySizedFillList(margin, ResolvedSize{W: b.box.W, H: b.box.H}, flow)
	}
}
