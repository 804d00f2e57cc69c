package trellis

import "math"

// maxLength bounds every resolved length. It is finite so that
// multiplying it by a zero percent yields zero rather than NaN.
const maxLength = math.MaxFloat32

// Dimension is a length made of a pixel part and a fraction of the
// container's length. Percent is a fraction: 0.5 means half.
//
// Dimensions are values; setters replace them wholesale so a change can be
// detected with ==.
type Dimension struct {
	Pixels  float64
	Percent float64
}

// Unbounded is the default max dimension: effectively no limit.
var Unbounded = Dimension{Pixels: maxLength}

// Px returns a pixel-only dimension.
func Px(p float64) Dimension {
	return Dimension{Pixels: p}
}

// Pct returns a percent-only dimension. Pct(1) fills the container.
func Pct(f float64) Dimension {
	return Dimension{Percent: f}
}

// PxPct returns a dimension of p pixels plus f times the container length.
func PxPct(p, f float64) Dimension {
	return Dimension{Pixels: p, Percent: f}
}

// Resolve returns the length for the given container length.
func (d Dimension) Resolve(container float64) float64 {
	return finite(d.Pixels + container*d.Percent)
}

// IsZero reports whether both parts are zero.
func (d Dimension) IsZero() bool {
	return d.Pixels == 0 && d.Percent == 0
}

// Anchor places a node along one axis of its container:
// Pixels + container*Percent + (container-own)*Alignment.
// Alignment 0 pins the node's start edge, 1 its end edge, 0.5 centers it.
type Anchor struct {
	Pixels    float64
	Percent   float64
	Alignment float64
}

// Anchor presets.
var (
	AnchorStart  = Anchor{}
	AnchorCenter = Anchor{Alignment: 0.5}
	AnchorEnd    = Anchor{Alignment: 1}
)

// AnchorPx returns an anchor offset by p pixels from the container start.
func AnchorPx(p float64) Anchor {
	return Anchor{Pixels: p}
}

// AnchorAt returns an anchor with all three parts set.
func AnchorAt(pixels, percent, alignment float64) Anchor {
	return Anchor{Pixels: pixels, Percent: percent, Alignment: alignment}
}

// Resolve returns the coordinate of the node's start edge relative to the
// container's start edge.
func (a Anchor) Resolve(container, own float64) float64 {
	return finite(a.Pixels + container*a.Percent + (container-own)*a.Alignment)
}

// finite maps NaN to 0 and clamps infinities to ±maxLength.
func finite(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > maxLength:
		return maxLength
	case v < -maxLength:
		return -maxLength
	}
	return v
}

// nonNegative clamps v to [0, maxLength] and maps NaN to 0.
func nonNegative(v float64) float64 {
	v = finite(v)
	if v < 0 {
		return 0
	}
	return v
}

// clamp restricts v to [lo, hi]. If lo > hi, lo wins.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
