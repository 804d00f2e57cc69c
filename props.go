package trellis

// --- Size properties ---

// SetWidth sets the width dimension. Its meaning depends on BoxSizing.
func (n *Node) SetWidth(d Dimension) {
	n.setDim(&n.size[axisX], d)
}

// SetHeight sets the height dimension.
func (n *Node) SetHeight(d Dimension) {
	n.setDim(&n.size[axisY], d)
}

// SetSize sets both dimensions.
func (n *Node) SetSize(w, h Dimension) {
	n.SetWidth(w)
	n.SetHeight(h)
}

// SetMinWidth sets the minimum width, resolved against the container width.
func (n *Node) SetMinWidth(d Dimension) {
	n.setDim(&n.minSize[axisX], d)
}

// SetMaxWidth sets the maximum width. Use Unbounded to remove the limit.
func (n *Node) SetMaxWidth(d Dimension) {
	n.setDim(&n.maxSize[axisX], d)
}

// SetMinHeight sets the minimum height.
func (n *Node) SetMinHeight(d Dimension) {
	n.setDim(&n.minSize[axisY], d)
}

// SetMaxHeight sets the maximum height.
func (n *Node) SetMaxHeight(d Dimension) {
	n.setDim(&n.maxSize[axisY], d)
}

func (n *Node) setDim(field *Dimension, d Dimension) {
	if *field == d {
		return
	}
	*field = d
	n.markLayoutDirty()
}

// SetFitWidth makes the node size its width to its content instead of the
// width dimension.
func (n *Node) SetFitWidth(fit bool) {
	n.setFit(axisX, fit)
}

// SetFitHeight makes the node size its height to its content.
func (n *Node) SetFitHeight(fit bool) {
	n.setFit(axisY, fit)
}

func (n *Node) setFit(a axis, fit bool) {
	if n.fit[a] == fit {
		return
	}
	n.fit[a] = fit
	n.markLayoutDirty()
}

// Width returns the width dimension.
func (n *Node) Width() Dimension { return n.size[axisX] }

// Height returns the height dimension.
func (n *Node) Height() Dimension { return n.size[axisY] }

// MinWidth returns the minimum width dimension.
func (n *Node) MinWidth() Dimension { return n.minSize[axisX] }

// MaxWidth returns the maximum width dimension.
func (n *Node) MaxWidth() Dimension { return n.maxSize[axisX] }

// MinHeight returns the minimum height dimension.
func (n *Node) MinHeight() Dimension { return n.minSize[axisY] }

// MaxHeight returns the maximum height dimension.
func (n *Node) MaxHeight() Dimension { return n.maxSize[axisY] }

// FitWidth reports whether the width wraps content.
func (n *Node) FitWidth() bool { return n.fit[axisX] }

// FitHeight reports whether the height wraps content.
func (n *Node) FitHeight() bool { return n.fit[axisY] }

// --- Box model ---

// SetMargin sets the margin.
func (n *Node) SetMargin(e Edges) {
	n.setEdges(&n.margin, e)
}

// SetBorder sets the border widths.
func (n *Node) SetBorder(e Edges) {
	n.setEdges(&n.border, e)
}

// SetPadding sets the padding.
func (n *Node) SetPadding(e Edges) {
	n.setEdges(&n.padding, e)
}

func (n *Node) setEdges(field *Edges, e Edges) {
	if *field == e {
		return
	}
	*field = e
	n.markLayoutDirty()
}

// SetBoxSizing selects which box the width and height dimensions describe.
func (n *Node) SetBoxSizing(b BoxSizing) {
	if n.boxSizing == b {
		return
	}
	n.boxSizing = b
	n.markLayoutDirty()
}

// Margin returns the margin.
func (n *Node) Margin() Edges { return n.margin }

// Border returns the border widths.
func (n *Node) Border() Edges { return n.border }

// Padding returns the padding.
func (n *Node) Padding() Edges { return n.padding }

// BoxSizing returns the box sizing mode.
func (n *Node) BoxSizing() BoxSizing { return n.boxSizing }

// --- Flex item ---

// SetFlexGrow sets how much of a line's spare main-axis space this node
// takes relative to its siblings. Negative values are treated as zero.
func (n *Node) SetFlexGrow(g float64) {
	n.setFactor(&n.grow, g)
}

// SetFlexShrink sets how much of a line's overflow this node absorbs
// relative to its siblings. Negative values are treated as zero.
func (n *Node) SetFlexShrink(s float64) {
	n.setFactor(&n.shrink, s)
}

func (n *Node) setFactor(field *float64, v float64) {
	v = nonNegative(v)
	if *field == v {
		return
	}
	*field = v
	n.markLayoutDirty()
}

// SetAlignSelf overrides the container's cross alignment for this node.
// CrossAuto defers to the container.
func (n *Node) SetAlignSelf(a CrossAlignment) {
	if n.alignSelf == a {
		return
	}
	n.alignSelf = a
	n.markLayoutDirty()
}

// FlexGrow returns the grow factor.
func (n *Node) FlexGrow() float64 { return n.grow }

// FlexShrink returns the shrink factor.
func (n *Node) FlexShrink() float64 { return n.shrink }

// AlignSelf returns the per-node cross alignment override.
func (n *Node) AlignSelf() CrossAlignment { return n.alignSelf }

// --- Flex container ---

// SetDirection sets the main axis.
func (n *Node) SetDirection(d Direction) {
	if n.direction == d {
		return
	}
	n.direction = d
	n.markLayoutDirty()
}

// SetWrap enables wrapping children onto multiple lines.
func (n *Node) SetWrap(wrap bool) {
	if n.wrap == wrap {
		return
	}
	n.wrap = wrap
	n.markLayoutDirty()
}

// SetMainAlignment sets how children are distributed along each line.
func (n *Node) SetMainAlignment(a MainAlignment) {
	if n.mainAlign == a {
		return
	}
	n.mainAlign = a
	n.markLayoutDirty()
}

// SetCrossAlignment sets how children are placed within their line on the
// cross axis. CrossAuto is treated as CrossStart.
func (n *Node) SetCrossAlignment(a CrossAlignment) {
	if n.crossAlign == a {
		return
	}
	n.crossAlign = a
	n.markLayoutDirty()
}

// SetCrossContentAlignment sets how lines are distributed on the cross axis.
func (n *Node) SetCrossContentAlignment(a CrossContentAlignment) {
	if n.contentAlign == a {
		return
	}
	n.contentAlign = a
	n.markLayoutDirty()
}

// SetGap sets the same spacing between children and between lines.
func (n *Node) SetGap(g float64) {
	n.SetGaps(g, g)
}

// SetGaps sets the spacing between children on a line (main) and between
// lines (cross).
func (n *Node) SetGaps(main, cross float64) {
	main, cross = nonNegative(main), nonNegative(cross)
	if n.gap == main && n.lineGap == cross {
		return
	}
	n.gap, n.lineGap = main, cross
	n.markLayoutDirty()
}

// Direction returns the main axis.
func (n *Node) Direction() Direction { return n.direction }

// Wrap reports whether wrapping is enabled.
func (n *Node) Wrap() bool { return n.wrap }

// MainAlignment returns the main-axis alignment.
func (n *Node) MainAlignment() MainAlignment { return n.mainAlign }

// CrossAlignment returns the item cross alignment.
func (n *Node) CrossAlignment() CrossAlignment { return n.crossAlign }

// CrossContentAlignment returns the line distribution mode.
func (n *Node) CrossContentAlignment() CrossContentAlignment { return n.contentAlign }

// Gaps returns the main and cross gaps.
func (n *Node) Gaps() (main, cross float64) { return n.gap, n.lineGap }

// SetMeasurer sets the content measurer of a leaf (text, images).
func (n *Node) SetMeasurer(m Measurer) {
	n.measurer = m
	n.markLayoutDirty()
}

// SetArranger sets the arranger of a custom container.
func (n *Node) SetArranger(a Arranger) {
	n.arranger = a
	n.markLayoutDirty()
}

// --- Positioning ---

// SetPositionMode sets how the node's coordinates are resolved. Switching
// between flow and free modes changes the parent's flow set, so the parent
// is notified either way.
func (n *Node) SetPositionMode(m PositionMode) {
	if n.position == m {
		return
	}
	wasFree := n.position.IsFree()
	n.position = m
	n.markLayoutDirty()
	if !wasFree && m.IsFree() {
		n.notifyParent()
	}
}

// SetLeft sets the horizontal anchor. Ignored in static mode.
func (n *Node) SetLeft(a Anchor) {
	n.setAnchor(axisX, a)
}

// SetTop sets the vertical anchor. Ignored in static mode.
func (n *Node) SetTop(a Anchor) {
	n.setAnchor(axisY, a)
}

// SetAnchors sets both anchors.
func (n *Node) SetAnchors(left, top Anchor) {
	n.SetLeft(left)
	n.SetTop(top)
}

func (n *Node) setAnchor(a axis, v Anchor) {
	if n.anchor[a] == v {
		return
	}
	n.anchor[a] = v
	n.markPositionDirty()
}

// SetSticky sets the viewport edges a sticky node clings to and the inset
// kept from each.
func (n *Node) SetSticky(edges StickyEdges, inset Edges) {
	if n.sticky == edges && n.stickyInset == inset {
		return
	}
	n.sticky, n.stickyInset = edges, inset
	n.markPositionDirty()
}

// SetDragOffset sets the offset applied on top of the resolved position,
// typically by a drag gesture. Only the position pass re-runs.
func (n *Node) SetDragOffset(x, y float64) {
	v := Vec2{finite(x), finite(y)}
	if n.dragOffset == v {
		return
	}
	n.dragOffset = v
	n.markPositionDirty()
}

// SetScrollOffset sets how far this container's content is scrolled.
// In-flow children move by the negated offset.
func (n *Node) SetScrollOffset(x, y float64) {
	v := Vec2{finite(x), finite(y)}
	if n.scrollOffset == v {
		return
	}
	n.scrollOffset = v
	n.markPositionDirty()
}

// PositionMode returns the positioning mode.
func (n *Node) PositionMode() PositionMode { return n.position }

// Left returns the horizontal anchor.
func (n *Node) Left() Anchor { return n.anchor[axisX] }

// Top returns the vertical anchor.
func (n *Node) Top() Anchor { return n.anchor[axisY] }

// Sticky returns the sticky edges and insets.
func (n *Node) Sticky() (StickyEdges, Edges) { return n.sticky, n.stickyInset }

// DragOffset returns the drag offset.
func (n *Node) DragOffset() Vec2 { return n.dragOffset }

// ScrollOffset returns the scroll offset.
func (n *Node) ScrollOffset() Vec2 { return n.scrollOffset }

// LayoutOffset returns the offset of the outer box within the parent's
// content box, as assigned by the parent's layout.
func (n *Node) LayoutOffset() Vec2 { return n.layoutOffset }

// Lines returns the flex lines from the last layout pass. The returned slice
// is reused by the next pass and MUST NOT be mutated or retained.
func (n *Node) Lines() []FlexLine { return n.lines }
