package paper

import (
	"fmt"
	"time"
)

// globalDebug mirrors the most recently set Paper debug flag so that node
// operations (which lack a Paper pointer) can check it cheaply. Only valid
// with a single Paper; multiple Papers with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// drawStats holds per-frame timing metrics.
// Only populated when Paper.debug is true.
type drawStats struct {
	drawTime  time.Duration
	nodeCount int
	viewCount int
}

// debugLog reports per-frame stats at debug level.
func (p *Paper) debugLog(stats drawStats) {
	if !p.debug {
		return
	}
	logger().Debug("paper: frame",
		"draw", stats.drawTime,
		"nodes", stats.nodeCount,
		"views", stats.viewCount)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Callers skip this entirely outside debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("paper debug: %s on disposed node %q (ID %d)", op, n.Name, n.ID))
	}
}

// debugMaxTreeDepth is the depth above which a warning is logged.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger().Warn("paper: tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "node", n.Name)
	}
}

// debugMaxChildCount is the child count above which a warning is logged.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		logger().Warn("paper: node child count exceeds threshold",
			"node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}

// countNodes returns the number of nodes in the subtree rooted at n.
func countNodes(n *Node) int {
	count := 1
	for _, c := range n.children {
		count += countNodes(c)
	}
	return count
}
