// Package ecs provides ECS adapters for eventcore's dispatch forwarding.
//
// The primary adapter is [NewDonburiStore], which bridges every event an
// eventcore.Manager delivers to a scene-graph listener into a [Donburi] world
// as a typed event. Subscribe to [InteractionEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	manager.SetEntityStore(store)
//
// The package is its own module, so importing eventcore alone does not pull
// in Donburi.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
