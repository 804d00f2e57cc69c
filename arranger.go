package trellis

// Measurer reports the natural content size of a leaf, such as shaped text
// or an image. maxWidth and maxHeight are the content lengths available; a
// node that is sizing to fit receives maxLength in that axis.
type Measurer interface {
	Measure(maxWidth, maxHeight float64) (width, height float64)
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(maxWidth, maxHeight float64) (float64, float64)

// Measure calls f.
func (f MeasurerFunc) Measure(maxWidth, maxHeight float64) (float64, float64) {
	return f(maxWidth, maxHeight)
}

// FixedContent is a Measurer with a constant natural size.
type FixedContent Vec2

// Measure returns the fixed size.
func (f FixedContent) Measure(float64, float64) (float64, float64) {
	return f.X, f.Y
}

// Arranger places the in-flow children of a custom container. The children
// are already sized; their Outer rectangles hold the sizes. Arrange writes
// one offset per child (the outer box position inside the content box) and
// returns the content size the arrangement occupies.
//
// A negative innerWidth or innerHeight means the container is sizing that
// axis to fit the returned content size.
type Arranger interface {
	Arrange(children []*Node, innerWidth, innerHeight float64, offsets []Vec2) (contentWidth, contentHeight float64)
}

// ArrangerFunc adapts a function to the Arranger interface.
type ArrangerFunc func(children []*Node, innerWidth, innerHeight float64, offsets []Vec2) (float64, float64)

// Arrange calls f.
func (f ArrangerFunc) Arrange(children []*Node, innerWidth, innerHeight float64, offsets []Vec2) (float64, float64) {
	return f(children, innerWidth, innerHeight, offsets)
}

// Overlay stacks every child in the same spot. Horizontal and Vertical are
// alignment fractions: 0 start, 0.5 center, 1 end.
type Overlay struct {
	Horizontal, Vertical float64
}

// Arrange implements Arranger.
func (o Overlay) Arrange(children []*Node, innerWidth, innerHeight float64, offsets []Vec2) (float64, float64) {
	var cw, ch float64
	for _, c := range children {
		cw = max(cw, c.outer.Width)
		ch = max(ch, c.outer.Height)
	}
	if innerWidth < 0 {
		innerWidth = cw
	}
	if innerHeight < 0 {
		innerHeight = ch
	}
	for i, c := range children {
		offsets[i] = Vec2{
			X: finite((innerWidth - c.outer.Width) * o.Horizontal),
			Y: finite((innerHeight - c.outer.Height) * o.Vertical),
		}
	}
	return cw, ch
}
