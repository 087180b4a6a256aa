package arbor

import "fmt"

// claim records one live exclusive borrow. root is the id of the node whose
// subtree is claimed; zero means the whole forest (a root token). Handles
// derived from the same top-level Mut share one claim, so releasing any of
// them ends the borrow for all of them.
type claim struct {
	root     NodeID
	released bool
}

// claimExclusive registers an exclusive claim rooted at n (nil for the whole
// forest). Panics if the new claim's subtree overlaps any live claim.
func (a *Arena[T]) claimExclusive(n *node[T]) *claim {
	root := NodeID(0)
	if n != nil {
		root = n.id
	}
	for _, c := range a.claims {
		if a.claimsOverlap(c.root, root) {
			panic(fmt.Sprintf(
				"arbor: exclusive claim on node %d overlaps live exclusive claim on node %d (0 = forest)",
				root, c.root))
		}
	}
	c := &claim{root: root}
	a.claims = append(a.claims, c)
	return c
}

// releaseClaim marks c released and drops it from the registry. Idempotent.
func (a *Arena[T]) releaseClaim(c *claim) {
	if c == nil || c.released {
		return
	}
	c.released = true
	for i, live := range a.claims {
		if live == c {
			copy(a.claims[i:], a.claims[i+1:])
			a.claims[len(a.claims)-1] = nil
			a.claims = a.claims[:len(a.claims)-1]
			return
		}
	}
}

// claimsOverlap reports whether exclusive claims rooted at x and y would
// alias: either is the forest, they are the same node, or one node is an
// ancestor of the other. Each check is one parent-chain walk, O(depth);
// the live-claim count is expected to stay tiny (a few per update pass).
func (a *Arena[T]) claimsOverlap(x, y NodeID) bool {
	if x == 0 || y == 0 || x == y {
		return true
	}
	xn, ok := a.nodes[x]
	if !ok {
		return false
	}
	yn, ok := a.nodes[y]
	if !ok {
		return false
	}
	return a.isAncestor(x, yn) || a.isAncestor(y, xn)
}

// checkReadable panics when n sits inside a live exclusive claim, which
// would let a read handle observe a subtree mid-mutation. Reads within a
// claim must go through handles derived from the claiming Mut instead.
func (a *Arena[T]) checkReadable(n *node[T]) {
	for _, c := range a.claims {
		if c.root == 0 || (n != nil && (c.root == n.id || a.isAncestor(c.root, n))) {
			panic(fmt.Sprintf(
				"arbor: read of node %d while node %d is exclusively claimed (0 = forest)",
				handleID(n), c.root))
		}
	}
}

func handleID[T any](n *node[T]) NodeID {
	if n == nil {
		return 0
	}
	return n.id
}
