package arbor

import "fmt"

// WalkFunc visits one node during a traversal. Returning false prunes the
// node's subtree; the walk continues with the next sibling.
type WalkFunc[T any] func(id NodeID, depth int, value *T) bool

// Walk traverses the whole forest depth-first in child insertion order,
// visiting parents before children. Roots are visited at depth 0 in root
// insertion order. Panics if any exclusive claim is live, since the walk
// would read into it; traverse through the claiming handle instead.
func (a *Arena[T]) Walk(fn WalkFunc[T]) {
	if len(a.claims) > 0 {
		panic(fmt.Sprintf(
			"arbor: Walk while node %d is exclusively claimed (0 = forest)",
			a.claims[0].root))
	}
	for _, r := range a.roots {
		a.walk(a.nodes[r], 0, fn)
	}
}

// WalkFrom traverses the subtree rooted at id, visiting id itself at depth
// 0. Returns false without calling fn if id is absent. Panics if the
// subtree overlaps a live exclusive claim.
func (a *Arena[T]) WalkFrom(id NodeID, fn WalkFunc[T]) bool {
	n, ok := a.nodes[id]
	if !ok {
		return false
	}
	for _, c := range a.claims {
		if a.claimsOverlap(c.root, n.id) {
			panic(fmt.Sprintf(
				"arbor: WalkFrom(%d) while node %d is exclusively claimed (0 = forest)",
				id, c.root))
		}
	}
	a.walk(n, 0, fn)
	return true
}

func (a *Arena[T]) walk(n *node[T], depth int, fn WalkFunc[T]) {
	if !fn(n.id, depth, &n.value) {
		return
	}
	for _, c := range n.children {
		a.walk(a.nodes[c], depth+1, fn)
	}
}
