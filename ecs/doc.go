// Package ecs provides ECS adapters for dualdial's selection events.
//
// The primary adapter is [NewDonburiSink], which bridges dial events (drag
// start, drag end, selection change) into a [Donburi] world as typed events.
// Subscribe to [SelectionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	dial.SetSelectionSink(ecs.NewDonburiSink(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
