package loom

// Config configures a freshly constructed Engine. Mirrors willow's own
// RunConfig (willow/willow.go): a plain struct literal, no file format, no
// builder pattern — just capacity hints passed straight to make().
type Config struct {
	// NodeCapacityHint sizes the initial node-store map.
	NodeCapacityHint int
	// UpdateSetCapacityHint sizes the initial update-set map.
	UpdateSetCapacityHint int
}

// Engine owns one tree, its effect bus, and its update set (spec §3, §6).
// All public entry points funnel through enter/exit's inUse guard (spec §5):
// loom has no internal concurrency of its own, but a single bool flag is
// cheap insurance against a caller re-entering the engine from inside an
// Element callback through anything other than the *Engine reference the
// kernel already hands it (e.g. from a goroutine, or a stray saved
// reference). A sync.Mutex would misstate the model spec §5 describes —
// there is no blocking, only a single-writer check — so loom uses the same
// plain bool guard willow has no equivalent of but the spec requires.
type Engine struct {
	tree tree
	bus  *effectBus

	updateSet   map[Ix]struct{}
	updateTaken bool

	inUse bool
}

// NewEngine constructs an empty Engine with no root.
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		tree:      newTree(),
		bus:       newEffectBus(),
		updateSet: make(map[Ix]struct{}, cfg.UpdateSetCapacityHint),
	}
	if cfg.NodeCapacityHint > 0 {
		e.tree.nodes = make(map[Ix]*nodeSkeleton, cfg.NodeCapacityHint)
	}
	return e
}

// enter acquires the exclusive-access guard, faulting on reentrancy (spec
// §5, §7: "a second public entry point is invoked while one is already in
// progress").
func (e *Engine) enter() {
	faultIf(e.inUse, "engine re-entered from a public entry point while already in use")
	e.inUse = true
}

func (e *Engine) exit() {
	e.inUse = false
}

// addNode allocates a fresh id, links it under parentId when hasParent is
// true, emits an Add effect, and only then runs the element's Inflate
// callback through the mutation kernel (spec §4.2: "emit Add{id,
// parent_id} ... then invoke the element's inflate callback"). The Add
// must precede Inflate because Inflate is what adds this node's own
// children: emitting it afterward would let a child's Add{child,
// parent_id} reach a subscriber before its own parent's Add, violating
// spec §8's "every Add{id,...} precedes any other effect referring to
// that id". Generalizes willow's Node.AddChild (willow/node.go), which
// links a pre-existing *Node into a parent's children slice; loom instead
// owns node creation itself since identity is minted here, not by the
// caller.
//
// The new node's parent_transform is snapshotted from the parent's
// current absolute transform (spec §4.2), not left as identity: a node
// added under an already-translated parent must see that placement
// immediately, before any SetTranslation call of its own.
func (e *Engine) addNode(parentId Ix, hasParent bool, element Element) Ix {
	id := e.tree.ids.alloc()

	parentTransform := Identity()
	if hasParent {
		parent := e.tree.get(parentId)
		parentTransform = parent.parentTransform.Compose(parent.relativeTransform)
	}

	e.tree.nodes[id] = &nodeSkeleton{
		id:                id,
		parentId:          parentId,
		hasParent:         hasParent,
		parentTransform:   parentTransform,
		relativeTransform: Identity(),
		body:              &nodeBody{element: element},
	}

	e.bus.send(addEffect(id, parentId, hasParent))

	mutate(e, id, struct{}{},
		func(_ *nodeSkeleton, _ *effectBus, _ struct{}) struct{} { return struct{}{} },
		func(body *nodeBody, e *Engine, _ struct{}) struct{} {
			base := &Base{engine: e, ownId: id, body: body, flow: flowNotResizing}
			body.element.Inflate(base)
			return struct{}{}
		},
		func(_ *nodeSkeleton, _ *effectBus, _ struct{}) struct{} { return struct{}{} },
	)

	return id
}

// newRoot replaces the tree's root, discarding every existing node (spec
// §4.2's new_root: "clears prior state"). The id allocator and effect bus
// are not reset — see DESIGN.md: ids keep counting and subscribers keep
// their queues across new_root calls within one Engine, since a reset
// allocator would let a fresh node alias an id a live subscriber has
// already observed effects for.
//
// After inflate, new_root emits Transform{id, identity} (spec §4.2, §8
// Scenario 1): the root's parent_transform and relative_transform are
// both freshly minted identities, so its absolute transform is identity
// too. This is a direct effect, not a recursive propagate — any child
// added during inflate already had its own transform settled (identity,
// or whatever a SetTranslation call during inflate produced), and
// re-walking the subtree here would just re-emit those children's
// effects a second time.
func (e *Engine) newRoot(element Element) Ix {
	e.tree.reset()
	id := e.addNode(0, false, element)
	e.tree.rootId = id
	e.tree.hasRoot = true
	e.bus.send(transformEffect(id, Identity()))
	return id
}

// deleteNode removes id and its entire subtree, emitting a Remove effect
// for every removed node in post-order (children before parents), matching
// spec §4.2. If id is the root, the engine is left with no root.
func (e *Engine) deleteNode(id Ix) {
	sk := e.tree.get(id)
	if sk.body != nil {
		// Each child's deletion unlinks it from sk.body.children, so walk a
		// copy of the records rather than the shrinking slice.
		children := append([]ChildRecord(nil), sk.body.children...)
		for i := range children {
			e.deleteNode(children[i].Id)
		}
	}
	if sk.hasParent {
		parent := e.tree.get(sk.parentId)
		if parent.body != nil {
			for i := range parent.body.children {
				if parent.body.children[i].Id == id {
					parent.body.children = append(parent.body.children[:i], parent.body.children[i+1:]...)
					break
				}
			}
		}
	}
	delete(e.updateSet, id)
	delete(e.tree.nodes, id)
	if e.tree.hasRoot && e.tree.rootId == id {
		e.tree.hasRoot = false
	}
	e.bus.send(removeEffect(id))
}

// Leaf is a handle to a root node, parameterized by the concrete element
// type purely for static association at the call site (spec §6) — Go has
// no generic methods, so that association is expressed by CreateRoot
// returning a *Leaf[E] rather than by any method on Leaf itself. Mirrors
// the teacher's own use of a free generic function for the same reason:
// donburi's events.NewEventType[T]() (wired into loom via ecs/donburi.go)
// is a package-level generic constructor, not a generic method, because
// donburi's own EventType has no type parameter of its own to hang one on.
type Leaf[E Element] struct {
	engine *Engine
	id     Ix
}

// CreateRoot creates a fresh root of type E and returns a Leaf handle to
// it (spec §6).
func CreateRoot[E Element](e *Engine, root E) *Leaf[E] {
	e.enter()
	defer e.exit()
	id := e.newRoot(root)
	return &Leaf[E]{engine: e, id: id}
}

// Resize resizes the root node (spec §4.3, exposed at the engine boundary).
func (l *Leaf[E]) Resize(box BoxSize) *ResolvedSize {
	l.engine.enter()
	defer l.engine.exit()
	return l.engine.resize(l.id, box)
}

// Close deletes the root node and its entire subtree.
func (l *Leaf[E]) Close() {
	l.engine.enter()
	defer l.engine.exit()
	l.engine.deleteNode(l.id)
}

// Subscription is a live registration on the engine's effect bus (spec
// §4.7, §6). Generalizes willow's single-callback EntityStore.EmitEvent
// (willow/ecs/donburi.go) into an explicit drain handle, since spec §4.7
// requires supporting more than one concurrent observer.
type Subscription struct {
	engine *Engine
	id     Ix
}

// Events registers a new subscription on the engine's effect bus.
func (e *Engine) Events() *Subscription {
	e.enter()
	defer e.exit()
	return &Subscription{engine: e, id: e.bus.createQueue()}
}

// DrainInto appends every effect emitted since the last drain (or since
// subscription, for the first call) onto out.
func (s *Subscription) DrainInto(out *[]Effect) {
	s.engine.enter()
	defer s.engine.exit()
	*out = append(*out, s.engine.bus.drain(s.id)...)
}

// Close unregisters the subscription, discarding any unread effects.
func (s *Subscription) Close() {
	s.engine.enter()
	defer s.engine.exit()
	s.engine.bus.deleteQueue(s.id)
}

// Update runs one tick of the update pass (spec §4.6).
func (e *Engine) Update(delta float64) {
	e.enter()
	defer e.exit()
	e.update(delta)
}
