package trellis

// unresolved marks a content length that is still being sized to fit.
const unresolved = -1.0

// mainAxis returns the flex container's main axis.
func (n *Node) mainAxis() axis {
	if n.direction == Column {
		return axisY
	}
	return axisX
}

// flexChildren runs the flexbox passes over n.flow inside a content box of
// innerW x innerH. A negative length means that axis of n is being sized to
// fit its children. It returns the content size the children occupy.
//
// Stages, in order:
//
//	prepare children   container lengths handed to each child
//	resize width       widths; wrapping and grow/shrink for Row
//	recalculate height heights at the final widths
//	resize height      wrapping and grow/shrink for Column; line and item stretch
//	re-measure         Column only: heights again once stretch changed widths
//	offsets            main and cross alignment
func flexChildren(ctx *layoutCtx, n *Node, innerW, innerH float64) (float64, float64) {
	if len(n.flow) == 0 {
		n.lines = n.lines[:0]
		return 0, 0
	}
	main := n.mainAxis()
	cross := main.other()
	inner := [2]float64{innerW, innerH}

	prepareChildren(n.flow, innerW, innerH)

	// Resize width.
	for _, c := range n.flow {
		c.setBoundsSize(axisX, preferredWidth(ctx, c, c.container.X, c.container.Y))
	}
	if main == axisX {
		n.buildLines(axisX, inner[axisX])
		n.growShrink(axisX, inner[axisX])
	}

	n.recalculateHeights(ctx)

	// Resize height.
	if main == axisY {
		n.buildLines(axisY, inner[axisY])
		n.growShrink(axisY, inner[axisY])
	}
	n.measureLines(main)
	if n.stretch(cross, inner[cross]) && main == axisY {
		// Widths moved under the measured heights.
		n.recalculateHeights(ctx)
		n.buildLines(axisY, inner[axisY])
		n.growShrink(axisY, inner[axisY])
		n.measureLines(main)
		n.stretch(cross, inner[cross])
	}

	contentMain, contentCross := n.linesContent()
	mainLen, crossLen := inner[main], inner[cross]
	if mainLen < 0 {
		mainLen = contentMain
	}
	if crossLen < 0 {
		crossLen = contentCross
	}
	n.computeOffsets(main, mainLen, crossLen)

	if main == axisX {
		return contentMain, contentCross
	}
	return contentCross, contentMain
}

// recalculateHeights measures every flow child's height at its current width.
func (n *Node) recalculateHeights(ctx *layoutCtx) {
	for _, c := range n.flow {
		c.setBoundsSize(axisY, preferredHeight(ctx, c, c.container.Y, c.bounds.Width))
	}
}

// prepareChildren hands each child the container lengths it resolves
// percentages against. An unresolved length resolves as zero.
func prepareChildren(children []*Node, innerW, innerH float64) {
	c := Vec2{max(innerW, 0), max(innerH, 0)}
	for _, child := range children {
		child.container = c
	}
}

// stretch grows lines and items along the cross axis.
//
// A single-line container gives its line the full cross length. A wrapping
// container with ContentStretch splits its spare cross length evenly across
// lines. Items whose alignment resolves to CrossStretch, or that fit their
// content along the cross axis, then grow to their line's cross size,
// bounded by their max. It reports whether any item changed size.
func (n *Node) stretch(cross axis, crossLen float64) bool {
	if crossLen >= 0 && len(n.lines) > 0 {
		switch {
		case !n.wrap:
			n.lines[0].CrossSize = crossLen
		case n.contentAlign == ContentStretch:
			_, used := n.linesContent()
			if used < crossLen {
				extra := (crossLen - used) / float64(len(n.lines))
				for i := range n.lines {
					n.lines[i].CrossSize += extra
				}
			}
		}
	}
	changed := false
	for i := range n.lines {
		line := &n.lines[i]
		for _, c := range line.Nodes {
			if n.alignFor(c) != CrossStretch && !c.fit[cross] {
				continue
			}
			if line.CrossSize <= c.outerSize(cross) {
				continue
			}
			_, hi := c.limits(cross, c.container.get(cross))
			before := c.bounds.size(cross)
			c.setBoundsSize(cross, min(line.CrossSize-c.margin.sum(cross), hi))
			changed = changed || c.bounds.size(cross) != before
		}
	}
	return changed
}

// computeOffsets assigns each flow child its layout offset: the position of
// its outer box inside n's content box.
func (n *Node) computeOffsets(main axis, mainLen, crossLen float64) {
	cross := main.other()
	usedCross := 0.0
	for _, line := range n.lines {
		usedCross += line.CrossSize
	}
	lineStart, lineBetween := spacing(n.contentAlign.spaceMode(), crossLen, usedCross, len(n.lines), n.lineGap)

	pos := lineStart
	for i := range n.lines {
		line := &n.lines[i]
		line.CrossStart = pos
		start, between := spacing(n.mainAlign.spaceMode(), mainLen, line.contentLength(main), len(line.Nodes), n.gap)
		m := start
		for _, c := range line.Nodes {
			off := itemCrossOffset(n.alignFor(c), line.CrossSize, c.outerSize(cross))
			c.layoutOffset.set(main, m)
			c.layoutOffset.set(cross, pos+off)
			m += c.outerSize(main) + between
		}
		pos += line.CrossSize + lineBetween
	}
}
