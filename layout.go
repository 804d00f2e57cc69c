package trellis

// layoutCtx carries per-update state through the sizing pass.
type layoutCtx struct {
	tree     *Tree
	viewport Rect
	stats    *updateStats
}

// updateLayout visits a node whose own size is not being assigned by a
// parent pass in progress: the root, free nodes, and nodes reached by
// following the child-layout hint.
func updateLayout(ctx *layoutCtx, n *Node) {
	if n.flags&dirtyLayout != 0 {
		if n.Parent == nil || n.position.IsFree() {
			sizeFree(ctx, n)
		}
		arrange(ctx, n)
		return
	}
	if n.flags&dirtyChildLayout == 0 {
		return
	}
	for _, c := range n.children {
		if c.needsLayout() {
			updateLayout(ctx, c)
		}
	}
	n.flags &^= dirtyChildLayout
}

// containerFor returns the lengths a root or free node resolves against:
// the viewport for the root and fixed nodes, the parent's content box for
// absolute nodes.
func containerFor(ctx *layoutCtx, n *Node) Vec2 {
	if n.Parent == nil || n.position == PositionFixed {
		return Vec2{nonNegative(ctx.viewport.Width), nonNegative(ctx.viewport.Height)}
	}
	return n.Parent.inner.Size()
}

// sizeFree resolves the size of a node that is not part of a parent's flow.
func sizeFree(ctx *layoutCtx, n *Node) {
	c := containerFor(ctx, n)
	n.container = c
	n.setBoundsSize(axisX, preferredWidth(ctx, n, c.X, c.Y))
	n.setBoundsSize(axisY, preferredHeight(ctx, n, c.Y, n.bounds.Width))
}

// preferredWidth returns the bounds width n asks for in a container of
// cw x ch: the resolved width dimension, or its content width when fitting.
func preferredWidth(ctx *layoutCtx, n *Node, cw, ch float64) float64 {
	if !n.fit[axisX] {
		return n.resolveSize(axisX, cw)
	}
	innerH := unresolved
	if !n.fit[axisY] {
		innerH = nonNegative(n.resolveSize(axisY, ch) - n.frame(axisY))
	}
	w, _ := measure(ctx, n, unresolved, innerH)
	return n.fitSize(axisX, w, cw)
}

// preferredHeight returns the bounds height n asks for in a container of
// height ch, given its final bounds width.
func preferredHeight(ctx *layoutCtx, n *Node, ch, width float64) float64 {
	if !n.fit[axisY] {
		return n.resolveSize(axisY, ch)
	}
	_, h := measure(ctx, n, nonNegative(width-n.frame(axisX)), unresolved)
	return n.fitSize(axisY, h, ch)
}

// measure returns the content size n needs inside a content box of
// innerW x innerH, where a negative length is being fitted. Children are
// sized along the way; n is flagged so its next arrange redoes them.
func measure(ctx *layoutCtx, n *Node, innerW, innerH float64) (float64, float64) {
	if ctx.stats != nil {
		ctx.stats.measured++
	}
	n.prepareChildren()
	if len(n.flow) > 0 {
		n.measured = true
	}
	return runChildren(ctx, n, innerW, innerH)
}

// arrange runs n's children pass at its current size and recurses into
// every child whose size or properties changed.
func arrange(ctx *layoutCtx, n *Node) {
	if ctx.stats != nil {
		ctx.stats.arranged++
	}
	n.prepareChildren()
	runChildren(ctx, n, n.inner.Width, n.inner.Height)

	for _, c := range n.flow {
		switch {
		case c.needsArrange():
			arrange(ctx, c)
		case c.needsLayout():
			updateLayout(ctx, c)
		}
	}
	for _, c := range n.free {
		sizeFree(ctx, c)
		switch {
		case c.needsArrange():
			arrange(ctx, c)
		case c.needsLayout():
			updateLayout(ctx, c)
		}
	}

	if n.bounds.Width != n.reported.Width || n.bounds.Height != n.reported.Height {
		n.reported.Width, n.reported.Height = n.bounds.Width, n.bounds.Height
		ctx.tree.emit(EventResized, n)
	}
	n.flags &^= dirtyLayout | dirtyChildLayout
	n.resized = false
	n.measured = false
	n.markPositionDirty()
}

// runChildren dispatches on the node kind.
func runChildren(ctx *layoutCtx, n *Node, innerW, innerH float64) (float64, float64) {
	switch n.Kind {
	case KindFlex:
		return flexChildren(ctx, n, innerW, innerH)
	default:
		return customChildren(ctx, n, innerW, innerH)
	}
}

// prepareChildren splits the children into flow and free sets, keeping order.
func (n *Node) prepareChildren() {
	clear(n.flow)
	clear(n.free)
	n.flow = n.flow[:0]
	n.free = n.free[:0]
	for _, c := range n.children {
		if c.position.IsFree() {
			n.free = append(n.free, c)
		} else {
			n.flow = append(n.flow, c)
		}
	}
}

// customChildren sizes the flow children of a leaf or custom container on
// their own dimensions and hands placement to the arranger. Leaves add the
// measurer's content size.
func customChildren(ctx *layoutCtx, n *Node, innerW, innerH float64) (float64, float64) {
	var cw, ch float64
	if n.measurer != nil {
		mw, mh := n.measurer.Measure(availableOr(innerW), availableOr(innerH))
		cw, ch = nonNegative(mw), nonNegative(mh)
	}
	n.lines = n.lines[:0]
	if len(n.flow) == 0 {
		return cw, ch
	}

	prepareChildren(n.flow, innerW, innerH)
	for _, c := range n.flow {
		c.setBoundsSize(axisX, preferredWidth(ctx, c, c.container.X, c.container.Y))
		c.setBoundsSize(axisY, preferredHeight(ctx, c, c.container.Y, c.bounds.Width))
	}

	if cap(n.offsets) < len(n.flow) {
		n.offsets = make([]Vec2, len(n.flow))
	}
	n.offsets = n.offsets[:len(n.flow)]
	clear(n.offsets)

	var arr Arranger = Overlay{}
	if n.Kind == KindCustom && n.arranger != nil {
		arr = n.arranger
	}
	aw, ah := arr.Arrange(n.flow, innerW, innerH, n.offsets)
	for i, c := range n.flow {
		c.layoutOffset = Vec2{finite(n.offsets[i].X), finite(n.offsets[i].Y)}
	}
	return max(cw, nonNegative(aw)), max(ch, nonNegative(ah))
}

// availableOr maps an unresolved length to maxLength for measurers.
func availableOr(v float64) float64 {
	if v < 0 {
		return maxLength
	}
	return v
}
