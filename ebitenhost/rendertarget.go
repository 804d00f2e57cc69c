package ebitenhost

import (
	"image"
	"math"
	"math/bits"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/trellis"
)

// sizeClass is the size of an offscreen image: a node's target size with
// each side rounded up to a power of two.
type sizeClass struct {
	w, h int
}

func classOf(w, h int) sizeClass {
	return sizeClass{ceilPow2(w), ceilPow2(h)}
}

func imageClass(img *ebiten.Image) sizeClass {
	b := img.Bounds()
	return sizeClass{b.Dx(), b.Dy()}
}

// ceilPow2 returns the smallest power of two >= n, at least 1.
func ceilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// targetCache leases one offscreen image to each node that caches its
// rendering. A node keeps its image across frames until its bounds cross
// into another size class. Images a node gives up wait in spare for the
// next node of the same class.
type targetCache struct {
	leases map[*trellis.Node]*ebiten.Image
	spare  map[sizeClass][]*ebiten.Image
}

// lease returns n's cleared image, replacing it when n's size class changed.
func (c *targetCache) lease(n *trellis.Node) *ebiten.Image {
	class := classOf(TargetSize(n))
	img := c.leases[n]
	switch {
	case img != nil && imageClass(img) == class:
	case img != nil:
		c.putSpare(img)
		img = c.takeSpare(class)
	default:
		img = c.takeSpare(class)
	}
	if img == nil {
		img = ebiten.NewImageWithOptions(
			image.Rect(0, 0, class.w, class.h),
			&ebiten.NewImageOptions{Unmanaged: true},
		)
	} else {
		img.Clear()
	}
	if c.leases == nil {
		c.leases = make(map[*trellis.Node]*ebiten.Image)
	}
	c.leases[n] = img
	return img
}

// end moves n's image, if any, to the spare list.
func (c *targetCache) end(n *trellis.Node) {
	if img, ok := c.leases[n]; ok {
		delete(c.leases, n)
		c.putSpare(img)
	}
}

// dropDisposed ends the leases of disposed nodes.
func (c *targetCache) dropDisposed() {
	for n := range c.leases {
		if n.IsDisposed() {
			c.end(n)
		}
	}
}

func (c *targetCache) takeSpare(class sizeClass) *ebiten.Image {
	stack := c.spare[class]
	if len(stack) == 0 {
		return nil
	}
	img := stack[len(stack)-1]
	c.spare[class] = stack[:len(stack)-1]
	return img
}

func (c *targetCache) putSpare(img *ebiten.Image) {
	if c.spare == nil {
		c.spare = make(map[sizeClass][]*ebiten.Image)
	}
	class := imageClass(img)
	c.spare[class] = append(c.spare[class], img)
}

// TargetSize returns the pixel size needed to draw n's bounds offscreen.
func TargetSize(n *trellis.Node) (w, h int) {
	b := n.Bounds()
	return max(1, int(math.Ceil(b.Width))), max(1, int(math.Ceil(b.Height)))
}

// AcquireTarget returns n's cleared offscreen image, at least as large as
// its bounds. Widgets that cache their rendering draw into it at (0, 0) and
// composite it at Bounds().X, Bounds().Y. The same image comes back each
// frame while n stays in the same power-of-two size class. Disposed nodes
// give theirs up on the next Update; others call ReleaseTarget.
func (h *Host) AcquireTarget(n *trellis.Node) *ebiten.Image {
	return h.targets.lease(n)
}

// ReleaseTarget gives n's offscreen image back for reuse by other nodes.
func (h *Host) ReleaseTarget(n *trellis.Node) {
	h.targets.end(n)
}
