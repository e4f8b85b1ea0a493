package ecs

import (
	"testing"

	"github.com/phanxgames/loom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type fixedElement struct {
	w, h int
}

func (f *fixedElement) Inflate(base *loom.Base) {}

func (f *fixedElement) Resize(base *loom.Base) {
	resolved := loom.ResolvedSize{W: f.w, H: f.h}
	base.ResolveSize(&resolved)
}

func (f *fixedElement) Update(base *loom.Base, delta float64) {}

func TestNewBridge(t *testing.T) {
	world := donburi.NewWorld()
	engine := loom.NewEngine(loom.Config{})
	sub := engine.Events()

	bridge := NewBridge(sub, world)
	if bridge == nil {
		t.Fatal("NewBridge returned nil")
	}
}

func TestBridge_Pump(t *testing.T) {
	world := donburi.NewWorld()
	engine := loom.NewEngine(loom.Config{})
	sub := engine.Events()
	bridge := NewBridge(sub, world)

	var received []loom.Effect
	EffectEventType.Subscribe(world, func(w donburi.World, e loom.Effect) {
		received = append(received, e)
	})

	root := loom.CreateRoot[*fixedElement](engine, &fixedElement{w: 10, h: 10})
	root.Resize(loom.Fixed(10, 10))

	bridge.Pump()
	EffectEventType.ProcessEvents(world)

	if len(received) != 3 {
		t.Fatalf("expected 3 effects (add, transform, resize), got %d", len(received))
	}
	if received[0].Kind != loom.EffectAdd {
		t.Errorf("effect 0: expected EffectAdd, got %+v", received[0])
	}
	if received[2].Kind != loom.EffectResize || !received[2].HasSize {
		t.Errorf("effect 2: expected resolved EffectResize, got %+v", received[2])
	}
}

func TestBridge_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	engine := loom.NewEngine(loom.Config{})
	sub := engine.Events()
	bridge := NewBridge(sub, world)

	var count1, count2 int
	EffectEventType.Subscribe(world, func(w donburi.World, e loom.Effect) {
		count1++
	})
	EffectEventType.Subscribe(world, func(w donburi.World, e loom.Effect) {
		count2++
	})

	loom.CreateRoot[*fixedElement](engine, &fixedElement{w: 5, h: 5})

	bridge.Pump()
	events.ProcessAllEvents(world)

	// CreateRoot emits two effects (Add, Transform); each subscriber sees both.
	if count1 != 2 || count2 != 2 {
		t.Errorf("expected both subscribers called twice, got %d and %d", count1, count2)
	}
}
