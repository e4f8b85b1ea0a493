// Package ecs bridges loom's effect stream into a Donburi world.
//
// The primary adapter is [NewBridge], which drains a loom Subscription and
// republishes each effect as a typed [EffectEventType] event. Subscribe to
// [EffectEventType] in your ECS systems to react to node additions,
// removals, resizes, and transform updates.
//
// Usage:
//
//	sub := engine.Events()
//	bridge := ecs.NewBridge(sub, world)
//	// once per tick, after engine.Update:
//	bridge.Pump()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
