package loom

import "testing"

// fixedElement resolves to a constant size and never has children.
type fixedElement struct {
	w, h int
}

func (f *fixedElement) Inflate(base *Base) {}

func (f *fixedElement) Resize(base *Base) {
	resolved := ResolvedSize{W: f.w, H: f.h}
	base.ResolveSize(&resolved)
}

func (f *fixedElement) Update(base *Base, delta float64) {}

// emptyElement never resolves a size.
type emptyElement struct{}

func (emptyElement) Inflate(base *Base) {}
func (emptyElement) Resize(base *Base)  { base.ResolveSize(nil) }
func (emptyElement) Update(base *Base, delta float64) {}

// listElement lays out a fixed set of fixedElement children, vertically,
// auto-sized, with the given margin.
type listElement struct {
	margin   int
	children []fixedElement
}

func (l *listElement) Inflate(base *Base) {
	for i := range l.children {
		base.Add(&l.children[i])
	}
}

func (l *listElement) Resize(base *Base) {
	base.LayoutVertical(l.margin)
}

func (l *listElement) Update(base *Base, delta float64) {}

// fillListElement lays out its children with LayoutHorizontal, distributing
// a Fixed box-size equally among them.
type fillListElement struct {
	margin   int
	n        int
}

func (f *fillListElement) Inflate(base *Base) {
	for i := 0; i < f.n; i++ {
		base.Add(&fixedElement{})
	}
}

func (f *fillListElement) Resize(base *Base) {
	base.LayoutHorizontal(f.margin)
}

func (f *fillListElement) Update(base *Base, delta float64) {}

func TestEmptyRootResolvesNone(t *testing.T) {
	e := NewEngine(Config{})
	leaf := CreateRoot[emptyElement](e, emptyElement{})

	got := leaf.Resize(Auto())
	if got != nil {
		t.Fatalf("expected nil resolved size, got %+v", got)
	}
}

func TestAutoVerticalListOfTwoChildren(t *testing.T) {
	e := NewEngine(Config{})
	list := &listElement{
		margin: 2,
		children: []fixedElement{
			{w: 10, h: 4},
			{w: 6, h: 8},
		},
	}
	leaf := CreateRoot[*listElement](e, list)

	got := leaf.Resize(Auto())
	if got == nil {
		t.Fatal("expected a resolved size")
	}
	if got.W != 14 || got.H != 18 {
		t.Errorf("expected (14,18), got (%d,%d)", got.W, got.H)
	}
}

func TestFixedFillHorizontalThreeChildren(t *testing.T) {
	e := NewEngine(Config{})
	fill := &fillListElement{margin: 1, n: 3}
	leaf := CreateRoot[*fillListElement](e, fill)

	got := leaf.Resize(Fixed(22, 9))
	if got == nil {
		t.Fatal("expected a resolved size")
	}
	if got.W != 22 || got.H != 9 {
		t.Errorf("expected own resolved size (22,9), got (%d,%d)", got.W, got.H)
	}
}

func TestResizeCacheHitSkipsElement(t *testing.T) {
	e := NewEngine(Config{})
	counter := &countingElement{w: 4, h: 4}
	leaf := CreateRoot[*countingElement](e, counter)

	first := leaf.Resize(Fixed(4, 4))
	if first == nil || first.W != 4 {
		t.Fatalf("unexpected first resize result: %+v", first)
	}
	callsAfterFirst := counter.calls

	second := leaf.Resize(Fixed(4, 4))
	if second == nil || second.W != 4 {
		t.Fatalf("unexpected second resize result: %+v", second)
	}
	if counter.calls != callsAfterFirst {
		t.Errorf("expected no additional Resize calls on cache hit, went from %d to %d", callsAfterFirst, counter.calls)
	}
}

type countingElement struct {
	w, h  int
	calls int
}

func (c *countingElement) Inflate(base *Base) {}
func (c *countingElement) Resize(base *Base) {
	c.calls++
	resolved := ResolvedSize{W: c.w, H: c.h}
	base.ResolveSize(&resolved)
}
func (c *countingElement) Update(base *Base, delta float64) {}

// invalidatingElement resolves a size that grows by one pixel after its
// first Update call, then invalidates.
type invalidatingElement struct {
	size      int
	grew      bool
}

func (g *invalidatingElement) Inflate(base *Base) {
	base.EnableUpdate(true)
}

func (g *invalidatingElement) Resize(base *Base) {
	resolved := ResolvedSize{W: g.size, H: g.size}
	base.ResolveSize(&resolved)
}

func (g *invalidatingElement) Update(base *Base, delta float64) {
	if !g.grew {
		g.grew = true
		g.size++
		base.InvalidateSize()
	}
}

func TestInvalidateFromUpdateReflowsRoot(t *testing.T) {
	e := NewEngine(Config{})
	el := &invalidatingElement{size: 5}
	leaf := CreateRoot[*invalidatingElement](e, el)

	first := leaf.Resize(Auto())
	if first == nil || first.W != 5 {
		t.Fatalf("unexpected initial resolved size: %+v", first)
	}

	e.Update(0.016)

	second := leaf.Resize(Auto())
	if second == nil || second.W != 6 {
		t.Fatalf("expected root to have reflowed to size 6 after invalidation, got %+v", second)
	}
}

func TestDeleteChildLeavesSibling(t *testing.T) {
	e := NewEngine(Config{})
	list := &listElement{
		margin: 0,
		children: []fixedElement{
			{w: 2, h: 2},
			{w: 3, h: 3},
		},
	}
	CreateRoot[*listElement](e, list)

	sub := e.Events()
	var effects []Effect

	// root is id 0; children allocated 1, 2 in Inflate order.
	e.deleteNode(1)
	sub.DrainInto(&effects)

	if len(effects) != 1 || effects[0].Kind != EffectRemove || effects[0].Id != 1 {
		t.Fatalf("expected a single Remove effect for id 1, got %+v", effects)
	}
	if e.tree.exists(1) {
		t.Error("expected node 1 to be gone")
	}
	if !e.tree.exists(2) {
		t.Error("expected sibling node 2 to remain")
	}
}

func TestDeleteRootClearsHasRoot(t *testing.T) {
	e := NewEngine(Config{})
	CreateRoot[emptyElement](e, emptyElement{})

	e.deleteNode(0)

	if e.tree.hasRoot {
		t.Error("expected hasRoot to be false after deleting the root")
	}
}

func TestTransformPropagationComposesTranslations(t *testing.T) {
	e := NewEngine(Config{})
	parent := &listElement{
		margin: 3,
		children: []fixedElement{
			{w: 5, h: 5},
		},
	}
	CreateRoot[*listElement](e, parent)

	sub := e.Events()
	var effects []Effect

	e.enter()
	e.resize(0, Auto())
	e.exit()
	sub.DrainInto(&effects)

	var sawTransform bool
	for _, eff := range effects {
		if eff.Kind == EffectTransform && eff.Id == 1 {
			x, y, _ := eff.Absolute.Translation()
			if x != 3 || y != 3 {
				t.Errorf("expected child translated to (3,3), got (%v,%v)", x, y)
			}
			sawTransform = true
		}
	}
	if !sawTransform {
		t.Fatal("expected a Transform effect for the child node")
	}
}

func TestCreateRootEmitsAddThenTransform(t *testing.T) {
	e := NewEngine(Config{})
	sub := e.Events()

	CreateRoot[emptyElement](e, emptyElement{})

	var effects []Effect
	sub.DrainInto(&effects)

	if len(effects) != 2 {
		t.Fatalf("expected exactly 2 effects, got %+v", effects)
	}
	if effects[0].Kind != EffectAdd || effects[0].Id != 0 || effects[0].HasParent {
		t.Errorf("effect 0: expected Add{0, None}, got %+v", effects[0])
	}
	if effects[1].Kind != EffectTransform || effects[1].Id != 0 {
		t.Errorf("effect 1: expected Transform{0, ...}, got %+v", effects[1])
	}
	if !effects[1].Absolute.Equal(Identity()) {
		t.Errorf("effect 1: expected identity transform, got %+v", effects[1].Absolute)
	}
}

func TestSubscriptionOnlySeesEffectsEmittedAfterCreation(t *testing.T) {
	e := NewEngine(Config{})
	CreateRoot[*fixedElement](e, &fixedElement{w: 1, h: 1})

	sub := e.Events()
	var effects []Effect
	sub.DrainInto(&effects)
	if len(effects) != 0 {
		t.Fatalf("expected no effects before any further mutation, got %+v", effects)
	}
}

func TestReentrantMutationFaults(t *testing.T) {
	e := NewEngine(Config{})

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a panic from reentrant mutation on the same node")
		}
	}()

	CreateRoot[*reentrantElement](e, &reentrantElement{engine: e})
}

// reentrantElement tries to resize itself from inside its own Inflate
// callback, which must fault: its body is detached for the duration of
// Inflate.
type reentrantElement struct {
	engine *Engine
}

func (r *reentrantElement) Inflate(base *Base) {
	r.engine.resize(0, Auto())
}

func (r *reentrantElement) Resize(base *Base) { base.ResolveSize(nil) }
func (r *reentrantElement) Update(base *Base, delta float64) {}
