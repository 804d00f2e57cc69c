package trellis

// axis indexes per-axis node state. axisX is width, axisY is height.
type axis uint8

const (
	axisX axis = iota
	axisY
)

func (a axis) other() axis {
	return 1 - a
}

func (e Edges) sum(a axis) float64 {
	if a == axisX {
		return e.Horizontal()
	}
	return e.Vertical()
}

func (e Edges) start(a axis) float64 {
	if a == axisX {
		return e.Left
	}
	return e.Top
}

func (r Rect) size(a axis) float64 {
	if a == axisX {
		return r.Width
	}
	return r.Height
}

func (v Vec2) get(a axis) float64 {
	if a == axisX {
		return v.X
	}
	return v.Y
}

func (v *Vec2) set(a axis, f float64) {
	if a == axisX {
		v.X = f
	} else {
		v.Y = f
	}
}

// frame returns border plus padding along a.
func (n *Node) frame(a axis) float64 {
	return n.border.sum(a) + n.padding.sum(a)
}

// boxDelta converts a dimension-described length to a bounds length.
func (n *Node) boxDelta(a axis) float64 {
	if n.boxSizing == BoxContent {
		return n.frame(a)
	}
	return 0
}

// limits returns the min and max bounds length along a, with min and max
// resolved against the container length first.
func (n *Node) limits(a axis, container float64) (lo, hi float64) {
	d := n.boxDelta(a)
	lo = nonNegative(n.minSize[a].Resolve(container) + d)
	hi = nonNegative(n.maxSize[a].Resolve(container) + d)
	return lo, hi
}

// resolveSize returns the clamped bounds length the dimension asks for.
func (n *Node) resolveSize(a axis, container float64) float64 {
	lo, hi := n.limits(a, container)
	return clamp(nonNegative(n.size[a].Resolve(container)+n.boxDelta(a)), lo, hi)
}

// fitSize returns the clamped bounds length wrapping content along a.
func (n *Node) fitSize(a axis, content, container float64) float64 {
	lo, hi := n.limits(a, container)
	return clamp(nonNegative(content+n.frame(a)), lo, hi)
}

// setBoundsSize sets the bounds length along a and derives the outer,
// padding and inner lengths from it.
func (n *Node) setBoundsSize(a axis, v float64) {
	v = nonNegative(v)
	m := nonNegative(v + n.margin.sum(a))
	p := nonNegative(v - n.border.sum(a))
	i := nonNegative(v - n.frame(a))
	if a == axisX {
		if n.bounds.Width != v {
			n.resized = true
		}
		n.bounds.Width, n.outer.Width, n.padded.Width, n.inner.Width = v, m, p, i
		return
	}
	if n.bounds.Height != v {
		n.resized = true
	}
	n.bounds.Height, n.outer.Height, n.padded.Height, n.inner.Height = v, m, p, i
}

// outerSize returns the margin-box length along a.
func (n *Node) outerSize(a axis) float64 {
	return n.outer.size(a)
}

// setOrigin moves all four rectangles so the outer box starts at (x, y).
func (n *Node) setOrigin(x, y float64) {
	n.outer.X, n.outer.Y = x, y
	n.bounds.X, n.bounds.Y = x+n.margin.Left, y+n.margin.Top
	n.padded.X, n.padded.Y = n.bounds.X+n.border.Left, n.bounds.Y+n.border.Top
	n.inner.X, n.inner.Y = n.padded.X+n.padding.Left, n.padded.Y+n.padding.Top
}

// --- Box queries ---

// Outer returns the margin box.
func (n *Node) Outer() Rect {
	return n.outer
}

// Bounds returns the border box: the outer box minus margin. Use for hit
// testing and drawing backgrounds.
func (n *Node) Bounds() Rect {
	return n.bounds
}

// PaddingBox returns the bounds minus the border.
func (n *Node) PaddingBox() Rect {
	return n.padded
}

// Inner returns the content box: bounds minus border and padding. Children
// are placed relative to it.
func (n *Node) Inner() Rect {
	return n.inner
}

// ResolvedWidth returns the bounds width from the last layout pass.
func (n *Node) ResolvedWidth() float64 {
	return n.bounds.Width
}

// ResolvedHeight returns the bounds height from the last layout pass.
func (n *Node) ResolvedHeight() float64 {
	return n.bounds.Height
}

// SizeLimits returns the resolved min and max bounds sizes, using the
// container lengths from the last layout pass.
func (n *Node) SizeLimits() (minSize, maxSize Vec2) {
	minSize.X, maxSize.X = n.limits(axisX, n.container.X)
	minSize.Y, maxSize.Y = n.limits(axisY, n.container.Y)
	return minSize, maxSize
}

// AvailableSpace returns the container lengths this node was resolved
// against: its parent's content size, or the viewport for the root and
// fixed nodes. Render-target and scissor collaborators size from it.
func (n *Node) AvailableSpace() Vec2 {
	return n.container
}

// InnerWidthFromOuter converts an outer width to a content width using this
// node's margin, border and padding. It is the exact inverse of
// OuterWidthFromInner.
func (n *Node) InnerWidthFromOuter(outer float64) float64 {
	return outer - n.margin.Horizontal() - n.frame(axisX)
}

// OuterWidthFromInner converts a content width to an outer width.
func (n *Node) OuterWidthFromInner(inner float64) float64 {
	return inner + n.frame(axisX) + n.margin.Horizontal()
}

// InnerHeightFromOuter converts an outer height to a content height.
func (n *Node) InnerHeightFromOuter(outer float64) float64 {
	return outer - n.margin.Vertical() - n.frame(axisY)
}

// OuterHeightFromInner converts a content height to an outer height.
func (n *Node) OuterHeightFromInner(inner float64) float64 {
	return inner + n.frame(axisY) + n.margin.Vertical()
}
