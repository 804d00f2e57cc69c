package ecs

import (
	"github.com/phanxgames/trellis"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LayoutEventType is the Donburi event type for trellis layout events.
// Subscribe to it in ECS systems to react to nodes being resized or moved.
var LayoutEventType = events.NewEventType[trellis.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink that publishes to LayoutEventType.
// Events are queued in the world until ProcessEvents or ProcessAllEvents.
func NewDonburiSink(world donburi.World) trellis.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event trellis.Event) {
	LayoutEventType.Publish(s.world, event)
}

// Layout mirrors a node's computed bounds on its entity.
type Layout struct {
	Bounds trellis.Rect
	// Moves and Resizes count events applied since the entity was bound.
	Moves   int
	Resizes int
}

// LayoutComponent holds a Layout on entities bound to nodes.
var LayoutComponent = donburi.NewComponentType[Layout]()

// Binder links nodes to entities. It is an EventSink: published events are
// applied to the Layout component of the matching entity when the world
// processes LayoutEventType.
type Binder struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
}

// NewBinder creates a Binder and subscribes it to LayoutEventType.
func NewBinder(world donburi.World) *Binder {
	b := &Binder{world: world, entities: make(map[uint32]donburi.Entity)}
	LayoutEventType.Subscribe(world, b.apply)
	return b
}

// Bind links n to e, sets n.EntityID, and gives e a Layout component
// holding n's current bounds.
func (b *Binder) Bind(n *trellis.Node, e donburi.Entity) {
	id := uint32(e.Id())
	n.EntityID = id
	b.entities[id] = e

	entry := b.world.Entry(e)
	if !entry.HasComponent(LayoutComponent) {
		entry.AddComponent(LayoutComponent)
	}
	LayoutComponent.SetValue(entry, Layout{Bounds: n.Bounds()})
}

// Unbind removes the link from n to its entity. The entity keeps its last
// Layout value.
func (b *Binder) Unbind(n *trellis.Node) {
	delete(b.entities, n.EntityID)
	n.EntityID = 0
}

// Entity returns the entity bound to n.
func (b *Binder) Entity(n *trellis.Node) (donburi.Entity, bool) {
	e, ok := b.entities[n.EntityID]
	return e, ok && n.EntityID != 0
}

// EmitEvent implements trellis.EventSink.
func (b *Binder) EmitEvent(event trellis.Event) {
	LayoutEventType.Publish(b.world, event)
}

func (b *Binder) apply(w donburi.World, event trellis.Event) {
	e, ok := b.entities[event.EntityID]
	if !ok || event.EntityID == 0 || !w.Valid(e) {
		return
	}
	entry := w.Entry(e)
	if !entry.HasComponent(LayoutComponent) {
		return
	}
	l := LayoutComponent.Get(entry)
	l.Bounds = event.Bounds
	switch event.Type {
	case trellis.EventMoved:
		l.Moves++
	case trellis.EventResized:
		l.Resizes++
	}
}
