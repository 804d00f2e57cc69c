package trellis

// spaceMode is the alignment vocabulary shared by items on a line and by
// lines in a container.
type spaceMode uint8

const (
	spaceStart spaceMode = iota
	spaceCenter
	spaceEnd
	spaceEvenly
	spaceBetween
)

func (a MainAlignment) spaceMode() spaceMode {
	switch a {
	case MainCenter:
		return spaceCenter
	case MainEnd:
		return spaceEnd
	case MainSpaceEvenly:
		return spaceEvenly
	case MainSpaceBetween:
		return spaceBetween
	default:
		return spaceStart
	}
}

func (a CrossContentAlignment) spaceMode() spaceMode {
	switch a {
	case ContentCenter:
		return spaceCenter
	case ContentEnd:
		return spaceEnd
	case ContentSpaceEvenly:
		return spaceEvenly
	case ContentSpaceBetween:
		return spaceBetween
	default: // ContentStart, ContentStretch (lines already fill the space)
		return spaceStart
	}
}

// spacing returns the offset of the first item and the distance between
// consecutive items when count items with a total length of content are
// placed into available, with gap as the configured spacing.
//
// The space-distributing modes replace gap with the free space they share
// out, so items overlap when they do not fit. SpaceBetween with a single
// item centers it.
func spacing(mode spaceMode, available, content float64, count int, gap float64) (start, between float64) {
	if count <= 0 {
		return 0, gap
	}
	free := available - content - gap*float64(count-1)
	switch mode {
	case spaceCenter:
		return finite(free / 2), gap
	case spaceEnd:
		return finite(free), gap
	case spaceBetween:
		if count == 1 {
			return finite((available - content) / 2), gap
		}
		return 0, finite((available - content) / float64(count-1))
	case spaceEvenly:
		between = finite((available - content) / float64(count+1))
		return between, between
	default:
		return 0, gap
	}
}

// itemCrossOffset returns the offset of an item within its line.
func itemCrossOffset(a CrossAlignment, lineCross, itemCross float64) float64 {
	switch a {
	case CrossCenter:
		return finite((lineCross - itemCross) / 2)
	case CrossEnd:
		return finite(lineCross - itemCross)
	default: // CrossStart, CrossStretch
		return 0
	}
}

// alignFor resolves a child's cross alignment against its container.
func (n *Node) alignFor(c *Node) CrossAlignment {
	if c.alignSelf != CrossAuto {
		return c.alignSelf
	}
	if n.crossAlign == CrossAuto {
		return CrossStart
	}
	return n.crossAlign
}
