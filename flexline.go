package trellis

// FlexLine is one row (or column) of a wrapping flex container.
// Lines are rebuilt on every layout pass from the container's flow children.
type FlexLine struct {
	// Nodes are the line's children in order. The slice aliases the
	// container's flow buffer.
	Nodes []*Node

	// MainSize is the sum of the children's outer main lengths plus the gaps
	// between them.
	MainSize float64

	// CrossSize is the largest outer cross length on the line, possibly
	// grown by line stretching.
	CrossSize float64

	// CrossStart is the line's offset from the content box's cross start.
	CrossStart float64
}

// buildLines groups n.flow into lines along main. A child starts a new line
// when adding it plus one gap would exceed mainLen. Without wrapping, or
// when mainLen is unresolved (negative), all children share one line.
func (n *Node) buildLines(main axis, mainLen float64) {
	n.lines = n.lines[:0]
	if len(n.flow) == 0 {
		return
	}
	wrapping := n.wrap && mainLen >= 0
	start := 0
	size := 0.0
	for i, c := range n.flow {
		ext := c.outerSize(main)
		if i > start {
			if wrapping && size+n.gap+ext > mainLen {
				n.lines = append(n.lines, FlexLine{Nodes: n.flow[start:i:i], MainSize: size})
				start = i
				size = ext
				continue
			}
			size += n.gap
		}
		size += ext
	}
	n.lines = append(n.lines, FlexLine{Nodes: n.flow[start:len(n.flow):len(n.flow)], MainSize: size})
}

// measureLines recomputes each line's main and cross size from the current
// child sizes.
func (n *Node) measureLines(main axis) {
	cross := main.other()
	for i := range n.lines {
		line := &n.lines[i]
		line.MainSize = 0
		line.CrossSize = 0
		for j, c := range line.Nodes {
			if j > 0 {
				line.MainSize += n.gap
			}
			line.MainSize += c.outerSize(main)
			line.CrossSize = max(line.CrossSize, c.outerSize(cross))
		}
	}
}

// linesContent returns the longest line's main size and the total cross
// size of all lines including line gaps.
func (n *Node) linesContent() (mainLen, crossLen float64) {
	for i, line := range n.lines {
		mainLen = max(mainLen, line.MainSize)
		if i > 0 {
			crossLen += n.lineGap
		}
		crossLen += line.CrossSize
	}
	return mainLen, crossLen
}

// contentLength returns the children's outer main lengths without gaps.
func (l *FlexLine) contentLength(main axis) float64 {
	total := 0.0
	for _, c := range l.Nodes {
		total += c.outerSize(main)
	}
	return total
}
