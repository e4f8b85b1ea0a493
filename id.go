package loom

// Ix is an opaque, monotonically increasing node or queue identity. Values
// are never reused within the lifetime of one allocator. Ordering only
// matters for deterministic iteration, never for equality semantics beyond
// "same node" / "same queue". Unlike willow's pointer-identity Node, loom's
// identity-based store (spec §3) needs a plain comparable key; presence or
// absence of a parent/root is tracked with an explicit bool alongside an Ix
// rather than by reserving a zero-value sentinel, so ids start at 0 to match
// the numbering used throughout spec.md's worked examples (§8).
type Ix uint32

// idAllocator hands out strictly increasing, never-reused ids, starting at
// 0. It backs both node identities (tree.ids) and effect-queue identities
// (effectBus.ids). Plain counter, no atomics: loom is single-threaded,
// matching willow's own package-level nodeIDCounter (willow/node.go).
type idAllocator struct {
	next Ix
}

func (a *idAllocator) alloc() Ix {
	id := a.next
	a.next++
	return id
}
