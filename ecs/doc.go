// Package ecs provides ECS adapters for arbor's structural event stream.
//
// The primary adapter is [NewDonburiStore], which bridges arbor tree events
// (node inserted, node removed) into a [Donburi] world as typed events.
// Subscribe to [TreeEventType] in your ECS systems to mirror arena structure
// into entities, invalidate caches, or drive teardown logic.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	arena.SetObserver(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
