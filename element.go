package loom

// Element is the external collaborator contract a concrete UI element
// implements (spec §4.8). The engine never inspects concrete element
// types — it stores them behind this interface, the same "capability
// abstraction" design note 9 calls for, analogous to how willow stores
// heterogeneous visual behavior behind its NodeType-tagged Node rather than
// per-type interfaces (the engine here has no rendering concerns of its
// own, so an interface is the lower-friction choice design note 9
// anticipates).
type Element interface {
	// Inflate is called once at node insertion. Use it to add children via
	// Base.Add. Must not call Base.ResolveSize — doing so panics.
	Inflate(base *Base)

	// Resize is called during a resize pass. Must terminate by resolving a
	// size, either directly via Base.ResolveSize or through one of Base's
	// layout helpers (which call ResolveSize internally). Failing to
	// resolve is treated as resolving None, not a fault (spec §4.3).
	Resize(base *Base)

	// Update is called once per tick for nodes in the update set. May call
	// Base.InvalidateSize; calling Base.ResolveSize panics.
	Update(base *Base, delta float64)
}
