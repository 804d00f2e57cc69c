// Package ecs connects trellis layout events to a [Donburi] world.
//
// [NewDonburiSink] publishes every resize and move as a typed event on
// [LayoutEventType]. A [Binder] goes further: it links nodes to entities
// and keeps a [Layout] component on each entity in sync with its node's
// bounds.
//
// Usage:
//
//	world := donburi.NewWorld()
//	binder := ecs.NewBinder(world)
//	tree.SetEventSink(binder)
//	binder.Bind(panel, world.Create())
//
//	// each frame
//	tree.Update()
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
