package arbor

// NodeID identifies a node for its lifetime in an arena. IDs are allocated
// by the caller (typically the consuming framework's widget id generator)
// and must be unique across the whole arena, not just among siblings.
//
// The zero NodeID is reserved and never names a node; it is what ParentID
// reports for roots and what internal bookkeeping uses for "none".
type NodeID uint64

// node is one slot in the arena's flat storage. A single flat struct is used
// for every node to keep storage map-friendly and avoid interface dispatch.
type node[T any] struct {
	id       NodeID
	value    T
	parent   NodeID   // zero for roots
	children []NodeID // insertion order; authoritative sibling order

	// gen is the arena-wide insert generation stamped when the node was
	// created. A handle minted before this id was removed and re-inserted
	// carries the old generation and is rejected on use.
	gen uint64

	// removed tombstones the node once it leaves the arena, so stale
	// handles that still point at the struct fail loudly instead of
	// reading freed state.
	removed bool
}

// isAncestor reports whether ancestor is a strict ancestor of n.
func (a *Arena[T]) isAncestor(ancestor NodeID, n *node[T]) bool {
	for p := n.parent; p != 0; {
		if p == ancestor {
			return true
		}
		pn, ok := a.nodes[p]
		if !ok {
			return false
		}
		p = pn.parent
	}
	return false
}

// attach links a freshly created node under parent (zero for a root) at the
// given sibling index, or appends when index < 0. The caller has already
// verified the id is unused.
func (a *Arena[T]) attach(n *node[T], parent NodeID, index int) {
	a.nodes[n.id] = n
	n.parent = parent

	siblings := &a.roots
	if parent != 0 {
		siblings = &a.nodes[parent].children
	}
	if index < 0 || index == len(*siblings) {
		*siblings = append(*siblings, n.id)
	} else {
		*siblings = append(*siblings, 0)
		copy((*siblings)[index+1:], (*siblings)[index:])
		(*siblings)[index] = n.id
	}

	if a.observer != nil {
		a.observer.EmitEvent(TreeEvent{Type: EventInsert, ID: n.id, Parent: parent})
	}
	if globalDebug {
		debugCheckTreeDepth(a, n)
		debugCheckChildCount(parent, len(*siblings))
	}
}

// detach unlinks n from its sibling list (or the root list) and tears down
// its entire subtree. Returns the detached node's payload.
func (a *Arena[T]) detach(n *node[T]) T {
	siblings := &a.roots
	if n.parent != 0 {
		siblings = &a.nodes[n.parent].children
	}
	removeID(siblings, n.id)
	a.removeSubtree(n)
	return n.value
}

// removeSubtree tombstones n and all of its descendants and deletes them
// from storage, leaf-first so observers never see a child outlive its
// removal notification's subtree.
func (a *Arena[T]) removeSubtree(n *node[T]) {
	for _, c := range n.children {
		a.removeSubtree(a.nodes[c])
	}
	parent := n.parent
	n.removed = true
	n.children = nil
	n.parent = 0
	delete(a.nodes, n.id)
	if a.observer != nil {
		a.observer.EmitEvent(TreeEvent{Type: EventRemove, ID: n.id, Parent: parent})
	}
}

// removeID removes id from the slice in place, preserving order.
// Uses copy+truncate to avoid retaining a gap in the backing array.
func removeID(ids *[]NodeID, id NodeID) {
	s := *ids
	for i, v := range s {
		if v == id {
			copy(s[i:], s[i+1:])
			*ids = s[:len(s)-1]
			return
		}
	}
}
