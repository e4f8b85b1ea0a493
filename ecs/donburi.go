// Package ecs bridges loom's effect stream into Donburi.
package ecs

import (
	"github.com/phanxgames/loom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EffectEventType is the Donburi event type carrying loom effects.
// Subscribe to this in your ECS systems to observe node additions,
// removals, resizes, and transform updates as they are drained from a
// loom.Subscription.
var EffectEventType = events.NewEventType[loom.Effect]()

// Bridge drains a loom.Subscription and republishes every effect onto a
// Donburi world as an EffectEventType event. Generalizes the teacher's
// donburiStore (willow/ecs/donburi.go), which published willow's push-style
// InteractionEvent directly from EntityStore.EmitEvent; loom's effect
// stream is pull-based (Subscription.DrainInto), so the bridge instead owns
// a buffer it refills and republishes once per Pump call.
type Bridge struct {
	sub    *loom.Subscription
	world  donburi.World
	buffer []loom.Effect
}

// NewBridge creates a Bridge publishing sub's effects onto world.
func NewBridge(sub *loom.Subscription, world donburi.World) *Bridge {
	return &Bridge{sub: sub, world: world}
}

// Pump drains every effect emitted since the last Pump call and publishes
// each one, in order, to EffectEventType. Call once per tick, after
// Engine.Update.
func (b *Bridge) Pump() {
	b.buffer = b.buffer[:0]
	b.sub.DrainInto(&b.buffer)
	for _, effect := range b.buffer {
		EffectEventType.Publish(b.world, effect)
	}
}
