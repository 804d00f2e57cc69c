package trellis

// positionCtx carries per-update state through the position pass.
type positionCtx struct {
	tree     *Tree
	viewport Rect
	stats    *updateStats
}

// updatePosition recomputes a node's coordinates and then its children's.
// parentRecomputed forces recomputation of this node even if it is clean,
// since its container moved or was resized.
func updatePosition(ctx *positionCtx, n *Node, parentRecomputed bool) {
	recompute := n.flags&dirtyPosition != 0 || parentRecomputed
	if recompute {
		if ctx.stats != nil {
			ctx.stats.positioned++
		}
		x, y := resolvePosition(n, ctx.viewport)
		n.setOrigin(x, y)
		n.flags &^= dirtyPosition
		if n.bounds.X != n.reported.X || n.bounds.Y != n.reported.Y {
			n.reported.X, n.reported.Y = n.bounds.X, n.bounds.Y
			ctx.tree.emit(EventMoved, n)
		}
	}
	if !recompute && n.flags&dirtyChildPosition == 0 {
		return
	}
	n.flags &^= dirtyChildPosition
	for _, child := range n.children {
		updatePosition(ctx, child, recompute)
	}
}

// resolvePosition returns the origin of n's outer box. It reads only n's own
// offsets and anchors, its parent's already-resolved content box and scroll
// offset, and the viewport.
func resolvePosition(n *Node, viewport Rect) (x, y float64) {
	base := viewport
	var scroll Vec2
	if p := n.Parent; p != nil {
		base = p.inner
		scroll = p.scrollOffset
	}
	ow, oh := n.outer.Width, n.outer.Height

	switch n.position {
	case PositionStatic:
		x = base.X + n.layoutOffset.X - scroll.X
		y = base.Y + n.layoutOffset.Y - scroll.Y
	case PositionRelative, PositionSticky:
		x = base.X + n.layoutOffset.X - scroll.X + n.anchor[axisX].Resolve(base.Width, ow) + n.dragOffset.X
		y = base.Y + n.layoutOffset.Y - scroll.Y + n.anchor[axisY].Resolve(base.Height, oh) + n.dragOffset.Y
		if n.position == PositionSticky {
			x, y = n.stick(x, y, viewport)
		}
	case PositionAbsolute:
		x = base.X + n.anchor[axisX].Resolve(base.Width, ow) + n.dragOffset.X
		y = base.Y + n.anchor[axisY].Resolve(base.Height, oh) + n.dragOffset.Y
	case PositionFixed:
		x = viewport.X + n.anchor[axisX].Resolve(viewport.Width, ow) + n.dragOffset.X
		y = viewport.Y + n.anchor[axisY].Resolve(viewport.Height, oh) + n.dragOffset.Y
	}
	return finite(x), finite(y)
}

// stick clamps a sticky node's origin so it stays inside the viewport on
// each flagged edge, keeping the configured inset. When opposing edges
// conflict, left and top win.
func (n *Node) stick(x, y float64, vp Rect) (float64, float64) {
	ow, oh := n.outer.Width, n.outer.Height
	in := n.stickyInset
	if n.sticky&StickyRight != 0 {
		x = min(x, vp.Right()-ow-in.Right)
	}
	if n.sticky&StickyLeft != 0 {
		x = max(x, vp.X+in.Left)
	}
	if n.sticky&StickyBottom != 0 {
		y = min(y, vp.Bottom()-oh-in.Bottom)
	}
	if n.sticky&StickyTop != 0 {
		y = max(y, vp.Y+in.Top)
	}
	return x, y
}

// --- Coordinate queries ---

// HitTest returns the deepest node under (x, y) whose bounds contain the
// point, checking later siblings first since they are drawn on top.
// Returns nil if the point is outside n.
func (n *Node) HitTest(x, y float64) *Node {
	if !n.bounds.Contains(x, y) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := n.children[i].HitTest(x, y); hit != nil {
			return hit
		}
	}
	return n
}

// ToLocal converts a point to coordinates relative to n's content box.
func (n *Node) ToLocal(x, y float64) (lx, ly float64) {
	return x - n.inner.X, y - n.inner.Y
}
