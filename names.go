package trellis

// String returns the mode name.
func (m PositionMode) String() string {
	switch m {
	case PositionStatic:
		return "static"
	case PositionRelative:
		return "relative"
	case PositionAbsolute:
		return "absolute"
	case PositionFixed:
		return "fixed"
	case PositionSticky:
		return "sticky"
	default:
		return "unknown"
	}
}

// String returns the direction name.
func (d Direction) String() string {
	if d == Column {
		return "column"
	}
	return "row"
}

// String returns the alignment name.
func (a MainAlignment) String() string {
	switch a {
	case MainStart:
		return "start"
	case MainCenter:
		return "center"
	case MainEnd:
		return "end"
	case MainSpaceEvenly:
		return "space-evenly"
	case MainSpaceBetween:
		return "space-between"
	default:
		return "unknown"
	}
}

// String returns the alignment name.
func (a CrossAlignment) String() string {
	switch a {
	case CrossAuto:
		return "auto"
	case CrossStart:
		return "start"
	case CrossCenter:
		return "center"
	case CrossEnd:
		return "end"
	case CrossStretch:
		return "stretch"
	default:
		return "unknown"
	}
}

// String returns the alignment name.
func (a CrossContentAlignment) String() string {
	switch a {
	case ContentStart:
		return "start"
	case ContentCenter:
		return "center"
	case ContentEnd:
		return "end"
	case ContentSpaceEvenly:
		return "space-evenly"
	case ContentSpaceBetween:
		return "space-between"
	case ContentStretch:
		return "stretch"
	default:
		return "unknown"
	}
}

// String returns the box sizing name.
func (b BoxSizing) String() string {
	if b == BoxContent {
		return "content-box"
	}
	return "border-box"
}
