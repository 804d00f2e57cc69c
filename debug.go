package trellis

import (
	"fmt"
	"os"
	"time"
)

// updateStats holds per-update timing and work counters.
// Timings are only populated when Tree.debug is true.
type updateStats struct {
	layoutTime   time.Duration
	positionTime time.Duration
	arranged     int
	measured     int
	positioned   int
}

// debugLog prints timing and work stats to stderr.
func (t *Tree) debugLog(stats updateStats) {
	if !t.debug {
		return
	}
	if stats.arranged == 0 && stats.positioned == 0 {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[trellis] layout: %v | position: %v | total: %v\n",
		stats.layoutTime, stats.positionTime, stats.layoutTime+stats.positionTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[trellis] arranged: %d | measured: %d | positioned: %d | events: %d\n",
		stats.arranged, stats.measured, stats.positioned, len(t.events))
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("trellis debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
// Layout recurses once per level, so very deep trees cost stack.
const debugMaxTreeDepth = 64

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[trellis] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[trellis] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}

// Dump writes one line per node in the subtree: indentation, name, kind and
// the resolved outer, bounds and inner rectangles.
func (n *Node) Dump(w interface{ WriteString(string) (int, error) }) {
	n.dump(w, 0)
}

func (n *Node) dump(w interface{ WriteString(string) (int, error) }, depth int) {
	for i := 0; i < depth; i++ {
		_, _ = w.WriteString("  ")
	}
	_, _ = w.WriteString(fmt.Sprintf("%s [%s] outer=%s bounds=%s inner=%s\n",
		n.Name, n.Kind, formatRect(n.outer), formatRect(n.bounds), formatRect(n.inner)))
	for _, c := range n.children {
		c.dump(w, depth+1)
	}
}

func formatRect(r Rect) string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}
