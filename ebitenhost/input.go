package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/trellis"
)

const (
	defaultDragDeadZone = 4.0  // pixels
	defaultWheelSpeed   = 24.0 // pixels per wheel notch
)

// --- Contexts ---

// PointerContext describes a press, release or click.
type PointerContext struct {
	Node   *trellis.Node // deepest node under the pointer, or nil
	X, Y   float64       // screen position
	LocalX float64       // position relative to Node's content box
	LocalY float64
}

// DragContext describes one step of a drag.
type DragContext struct {
	// Node is the draggable node whose offset is changing.
	Node           *trellis.Node
	X, Y           float64 // current screen position
	StartX, StartY float64 // position where the pointer went down
	DeltaX, DeltaY float64 // movement since the previous step
}

// ScrollContext describes a wheel step applied to a scrollable node.
type ScrollContext struct {
	Node             *trellis.Node
	OffsetX, OffsetY float64 // scroll offset after the step
}

// --- Handler registry ---

type clickHandler struct {
	id uint32
	fn func(PointerContext)
}

type dragHandler struct {
	id uint32
	fn func(DragContext)
}

type scrollHandler struct {
	id uint32
	fn func(ScrollContext)
}

type handlerRegistry struct {
	click     []clickHandler
	dragStart []dragHandler
	drag      []dragHandler
	dragEnd   []dragHandler
	scroll    []scrollHandler
	nextID    uint32
}

// CallbackHandle removes a registered callback.
type CallbackHandle struct {
	id   uint32
	host *Host
}

// Remove unregisters the callback. Safe to call more than once.
func (h CallbackHandle) Remove() {
	if h.host == nil {
		return
	}
	r := &h.host.handlers
	r.click = removeHandler(r.click, h.id, func(c clickHandler) uint32 { return c.id })
	r.dragStart = removeHandler(r.dragStart, h.id, func(c dragHandler) uint32 { return c.id })
	r.drag = removeHandler(r.drag, h.id, func(c dragHandler) uint32 { return c.id })
	r.dragEnd = removeHandler(r.dragEnd, h.id, func(c dragHandler) uint32 { return c.id })
	r.scroll = removeHandler(r.scroll, h.id, func(c scrollHandler) uint32 { return c.id })
}

func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func (h *Host) nextHandlerID() uint32 {
	h.handlers.nextID++
	return h.handlers.nextID
}

// OnClick registers fn for a press and release over the same node without
// a drag in between.
func (h *Host) OnClick(fn func(PointerContext)) CallbackHandle {
	id := h.nextHandlerID()
	h.handlers.click = append(h.handlers.click, clickHandler{id, fn})
	return CallbackHandle{id, h}
}

// OnDragStart registers fn for the first step of a drag.
func (h *Host) OnDragStart(fn func(DragContext)) CallbackHandle {
	id := h.nextHandlerID()
	h.handlers.dragStart = append(h.handlers.dragStart, dragHandler{id, fn})
	return CallbackHandle{id, h}
}

// OnDrag registers fn for every drag step, including the first.
func (h *Host) OnDrag(fn func(DragContext)) CallbackHandle {
	id := h.nextHandlerID()
	h.handlers.drag = append(h.handlers.drag, dragHandler{id, fn})
	return CallbackHandle{id, h}
}

// OnDragEnd registers fn for the release that ends a drag.
func (h *Host) OnDragEnd(fn func(DragContext)) CallbackHandle {
	id := h.nextHandlerID()
	h.handlers.dragEnd = append(h.handlers.dragEnd, dragHandler{id, fn})
	return CallbackHandle{id, h}
}

// OnScroll registers fn for wheel steps that changed a scroll offset.
func (h *Host) OnScroll(fn func(ScrollContext)) CallbackHandle {
	id := h.nextHandlerID()
	h.handlers.scroll = append(h.handlers.scroll, scrollHandler{id, fn})
	return CallbackHandle{id, h}
}

// --- Node registration ---

// EnableDrag lets the pointer move n by changing its drag offset. Presses
// on any descendant start the drag. Static nodes ignore drag offsets, so
// give n another position mode.
func (h *Host) EnableDrag(n *trellis.Node) { h.draggable[n] = struct{}{} }

// DisableDrag undoes EnableDrag.
func (h *Host) DisableDrag(n *trellis.Node) { delete(h.draggable, n) }

// EnableScroll lets the mouse wheel change n's scroll offset, clamped so
// its flow content cannot scroll past its content box.
func (h *Host) EnableScroll(n *trellis.Node) { h.scrollable[n] = struct{}{} }

// DisableScroll undoes EnableScroll.
func (h *Host) DisableScroll(n *trellis.Node) { delete(h.scrollable, n) }

// SetDragDeadZone sets how far in pixels the pointer must move while
// pressed before a drag starts.
func (h *Host) SetDragDeadZone(pixels float64) { h.dragDeadZone = pixels }

// SetWheelSpeed sets the scroll distance per wheel notch.
func (h *Host) SetWheelSpeed(pixels float64) { h.wheelSpeed = pixels }

// nearest walks from n up to the root and returns the first node in set.
func nearest(n *trellis.Node, set map[*trellis.Node]struct{}) *trellis.Node {
	for ; n != nil; n = n.Parent {
		if n.IsDisposed() {
			return nil
		}
		if _, ok := set[n]; ok {
			return n
		}
	}
	return nil
}

// --- Pointer state machine ---

type pointerState struct {
	down           bool
	startX, startY float64
	lastX, lastY   float64
	hitNode        *trellis.Node
	dragNode       *trellis.Node
	dragOrigin     trellis.Vec2 // dragNode's offset when the press began
	dragging       bool
}

// processMouse feeds the real cursor, or the first touch, into the pointer
// state machine and applies the wheel.
func (h *Host) processMouse() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		mx, my = ebiten.TouchPosition(ids[0])
		pressed = true
	}
	x, y := float64(mx), float64(my)
	h.processPointer(x, y, pressed)

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		h.processWheel(x, y, wx, wy)
	}
}

// processPointer runs the press, drag and release logic for one sample.
func (h *Host) processPointer(x, y float64, pressed bool) {
	ps := &h.pointer
	switch {
	case pressed && !ps.down:
		target := h.tree.HitTest(x, y)
		*ps = pointerState{
			down:    true,
			startX:  x,
			startY:  y,
			lastX:   x,
			lastY:   y,
			hitNode: target,
		}
		if d := nearest(target, h.draggable); d != nil {
			ps.dragNode = d
			ps.dragOrigin = d.DragOffset()
		}

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		if ps.dragNode != nil && !ps.dragging {
			if math.Hypot(x-ps.startX, y-ps.startY) > h.dragDeadZone {
				ps.dragging = true
				h.fireDrag(h.handlers.dragStart, x, y)
			}
		}
		if ps.dragging {
			if ps.dragNode.IsDisposed() {
				ps.dragging = false
				ps.dragNode = nil
			} else {
				ps.dragNode.SetDragOffset(ps.dragOrigin.X+x-ps.startX, ps.dragOrigin.Y+y-ps.startY)
				h.fireDrag(h.handlers.drag, x, y)
			}
		}
		ps.lastX, ps.lastY = x, y

	case !pressed && ps.down:
		if ps.dragging {
			if !ps.dragNode.IsDisposed() {
				ps.dragNode.SetDragOffset(ps.dragOrigin.X+x-ps.startX, ps.dragOrigin.Y+y-ps.startY)
			}
			h.fireDrag(h.handlers.dragEnd, x, y)
		} else if ps.hitNode != nil && ps.hitNode == h.tree.HitTest(x, y) {
			h.fireClick(ps.hitNode, x, y)
		}
		*ps = pointerState{lastX: x, lastY: y}

	default:
		ps.lastX, ps.lastY = x, y
	}
}

func (h *Host) fireDrag(handlers []dragHandler, x, y float64) {
	ps := &h.pointer
	ctx := DragContext{
		Node:   ps.dragNode,
		X:      x,
		Y:      y,
		StartX: ps.startX,
		StartY: ps.startY,
		DeltaX: x - ps.lastX,
		DeltaY: y - ps.lastY,
	}
	for _, hd := range handlers {
		hd.fn(ctx)
	}
}

func (h *Host) fireClick(n *trellis.Node, x, y float64) {
	lx, ly := n.ToLocal(x, y)
	ctx := PointerContext{Node: n, X: x, Y: y, LocalX: lx, LocalY: ly}
	for _, hd := range h.handlers.click {
		hd.fn(ctx)
	}
}

// processWheel scrolls the nearest scrollable node under (x, y). Positive
// wheel values scroll content toward the start, matching ebiten.Wheel.
func (h *Host) processWheel(x, y, wheelX, wheelY float64) {
	n := nearest(h.tree.HitTest(x, y), h.scrollable)
	if n == nil {
		return
	}
	maxX, maxY := ScrollLimits(n)
	cur := n.ScrollOffset()
	sx := clamp(cur.X-wheelX*h.wheelSpeed, 0, maxX)
	sy := clamp(cur.Y-wheelY*h.wheelSpeed, 0, maxY)
	if sx == cur.X && sy == cur.Y {
		return
	}
	n.SetScrollOffset(sx, sy)
	ctx := ScrollContext{Node: n, OffsetX: sx, OffsetY: sy}
	for _, hd := range h.handlers.scroll {
		hd.fn(ctx)
	}
}

// ScrollLimits returns the largest scroll offsets that keep n's static and
// relative children from leaving its content box entirely, based on the
// last computed layout.
func ScrollLimits(n *trellis.Node) (maxX, maxY float64) {
	inner := n.Inner()
	scroll := n.ScrollOffset()
	right, bottom := inner.Right(), inner.Bottom()
	for _, c := range n.Children() {
		if c.PositionMode().IsFree() {
			continue
		}
		o := c.Outer()
		right = max(right, o.Right()+scroll.X)
		bottom = max(bottom, o.Bottom()+scroll.Y)
	}
	return right - inner.Right(), bottom - inner.Bottom()
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
