package arbor

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// globalDebug enables extra structural checks and stderr warnings in the
// insert path. Off by default; the checks cost a parent-chain walk per
// insert, so leave it off in release builds.
var globalDebug bool

// SetDebug toggles debug-mode structural warnings for all arenas.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 64

func debugCheckTreeDepth[T any](a *Arena[T], n *node[T]) {
	depth := 1
	for p := n.parent; p != 0; p = a.nodes[p].parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[arbor] warning: tree depth %d exceeds %d (node %d)\n",
			depth, debugMaxTreeDepth, n.id)
	}
}

// debugCheckChildCount warns on stderr if a node accumulates more than 1024
// direct children.
const debugMaxChildCount = 1024

func debugCheckChildCount(parent NodeID, count int) {
	if count > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[arbor] warning: node %d has %d children (threshold %d)\n",
			parent, count, debugMaxChildCount)
	}
}

// Dump writes an indented listing of the whole forest to w, one node per
// line as "id: payload". Intended for debugging; subject to Walk's
// exclusive-claim restriction.
func (a *Arena[T]) Dump(w io.Writer) {
	a.Walk(func(id NodeID, depth int, value *T) bool {
		_, _ = fmt.Fprintf(w, "%s%d: %v\n", strings.Repeat("  ", depth), id, *value)
		return true
	})
}
