package gesture

import "time"

// syntheticPointerEvent represents a single injected pointer event.
// Injected events always use pointer 0, the mouse slot.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	cancel  bool
}

// InjectPress queues a pointer press at (x, y). The event is consumed by the
// next Update call and stamped with its time.
func (h *Host) InjectPress(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a held pointer sample at (x, y). Use this between
// InjectPress and InjectRelease to simulate a drag.
func (h *Host) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at (x, y).
func (h *Host) InjectRelease(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectCancel queues the loss of the injected pointer.
func (h *Host) InjectCancel() {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{cancel: true})
}

// InjectTap is a convenience that queues a press followed by a release at
// the same coordinates. Consumes two updates.
func (h *Host) InjectTap(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectSwipe queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate updates, and release at
// (toX, toY). The sequence consumes `frames` updates; minimum is 2.
func (h *Host) InjectSwipe(fromX, fromY, toX, toY float64, frames int) {
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

// PendingInjections reports how many injected events are still queued.
func (h *Host) PendingInjections() int {
	return len(h.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through Pointer. Returns true if an event was consumed.
func (h *Host) processInjectedInput(now time.Time) bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	if evt.cancel {
		h.PointerLost(0)
		return true
	}
	h.Pointer(0, evt.x, evt.y, evt.pressed, now)
	return true
}
