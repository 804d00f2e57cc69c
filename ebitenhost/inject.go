package ebitenhost

// syntheticPointerEvent is one queued pointer sample in screen coordinates.
type syntheticPointerEvent struct {
	x, y           float64
	pressed        bool
	wheelX, wheelY float64
}

// InjectPress queues a left-button press at (x, y). Each queued event is
// consumed by one Update, in place of real mouse input.
func (h *Host) InjectPress(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move with the button held. Use it between
// InjectPress and InjectRelease to drag.
func (h *Host) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a release at (x, y).
func (h *Host) InjectRelease(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press and a release at the same point. Consumes two
// updates.
func (h *Host) InjectClick(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectDrag queues a press at the start point, frames-2 evenly spaced
// moves, and a release at the end point. frames is at least 2.
func (h *Host) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	h.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		h.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	h.InjectRelease(toX, toY)
}

// InjectWheel queues a wheel step at (x, y) with the button up.
func (h *Host) InjectWheel(x, y, dx, dy float64) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: x, y: y, wheelX: dx, wheelY: dy})
}

// PendingInjections returns the number of queued synthetic events.
func (h *Host) PendingInjections() int { return len(h.injectQueue) }

// processInjectedInput pops one event and feeds it through the pointer
// state machine. Returns true if an event was consumed.
func (h *Host) processInjectedInput() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	h.processPointer(evt.x, evt.y, evt.pressed)
	if evt.wheelX != 0 || evt.wheelY != 0 {
		h.processWheel(evt.x, evt.y, evt.wheelX, evt.wheelY)
	}
	return true
}
