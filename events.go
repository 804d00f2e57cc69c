package trellis

// EventType identifies a kind of layout event.
type EventType uint8

const (
	EventResized EventType = iota // the node's bounds size changed
	EventMoved                    // the node's bounds origin changed
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventResized:
		return "resized"
	case EventMoved:
		return "moved"
	default:
		return "unknown"
	}
}

// Event reports a change in a node's resolved bounds. Events are queued
// during Tree.Update and delivered once, after both passes finish.
type Event struct {
	Type     EventType
	Node     *Node
	EntityID uint32
	Bounds   Rect
}

// EventSink receives layout events at the end of every Tree.Update.
// The ecs module provides a Donburi-backed sink.
type EventSink interface {
	EmitEvent(event Event)
}

// emit queues an event if anyone is listening.
func (t *Tree) emit(typ EventType, n *Node) {
	if t == nil || (t.sink == nil && !t.queueEvents) {
		return
	}
	t.events = append(t.events, Event{Type: typ, Node: n, EntityID: n.EntityID, Bounds: n.bounds})
}

// flushEvents hands queued events to the sink, if one is set.
func (t *Tree) flushEvents() {
	if t.sink == nil {
		return
	}
	for i := range t.events {
		t.sink.EmitEvent(t.events[i])
		t.events[i] = Event{}
	}
	t.events = t.events[:0]
}

// SetEventSink sets the optional event consumer. Pass nil to stop
// delivering events.
func (t *Tree) SetEventSink(sink EventSink) {
	t.sink = sink
}

// SetQueueEvents enables queueing events for DrainEvents when no sink is set.
func (t *Tree) SetQueueEvents(enabled bool) {
	t.queueEvents = enabled
	if !enabled && t.sink == nil {
		t.events = t.events[:0]
	}
}

// DrainEvents appends the queued events to dst, empties the queue and
// returns the extended slice.
func (t *Tree) DrainEvents(dst []Event) []Event {
	dst = append(dst, t.events...)
	clear(t.events)
	t.events = t.events[:0]
	return dst
}
