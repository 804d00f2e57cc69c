package trellis

// Edges holds a value for each side of a box, used for margin, border,
// padding and sticky insets.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(v float64) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges in CSS order: top, right, bottom, left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}

// Add returns the per-side sum of e and o.
func (e Edges) Add(o Edges) Edges {
	return Edges{Top: e.Top + o.Top, Right: e.Right + o.Right, Bottom: e.Bottom + o.Bottom, Left: e.Left + o.Left}
}

// IsZero reports whether all sides are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}
