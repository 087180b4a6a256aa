package arbor

import "fmt"

// --- Ref ---

// Ref is a shared read handle to one node: its payload, its parent id, and
// a token for its children. Refs are cheap values and may be copied freely.
// Every access revalidates the node, so a Ref held across a removal fails
// loudly instead of reading torn-down state.
type Ref[T any] struct {
	a   *Arena[T]
	n   *node[T]
	gen uint64
}

func (r Ref[T]) check() {
	checkLive(r.n, r.gen)
}

// ID returns the node's id.
func (r Ref[T]) ID() NodeID {
	r.check()
	return r.n.id
}

// Value returns the node's payload.
// The payload MUST NOT be mutated through a read handle.
func (r Ref[T]) Value() *T {
	r.check()
	return &r.n.value
}

// ParentID returns the id of the node's parent, or false for a root.
func (r Ref[T]) ParentID() (NodeID, bool) {
	r.check()
	return r.n.parent, r.n.parent != 0
}

// Children returns a read token over this node's children.
func (r Ref[T]) Children() ChildrenRef[T] {
	r.check()
	return ChildrenRef[T]{a: r.a, n: r.n, gen: r.gen}
}

// --- Mut ---

// Mut is an exclusive handle to one node. A Mut obtained from the arena
// (FindMut, Edit) owns an exclusive claim on the node's entire subtree;
// handles reached through it share that claim. Zero-value Muts are invalid.
type Mut[T any] struct {
	a   *Arena[T]
	n   *node[T]
	gen uint64
	c   *claim
}

func (m Mut[T]) check() {
	if m.c != nil && m.c.released {
		panic(fmt.Sprintf("arbor: use of handle to node %d after its claim was released", handleID(m.n)))
	}
	checkLive(m.n, m.gen)
}

// ID returns the node's id.
func (m Mut[T]) ID() NodeID {
	m.check()
	return m.n.id
}

// Value returns the node's payload for reading or mutation.
func (m Mut[T]) Value() *T {
	m.check()
	return &m.n.value
}

// ParentID returns the id of the node's parent, or false for a root.
func (m Mut[T]) ParentID() (NodeID, bool) {
	m.check()
	return m.n.parent, m.n.parent != 0
}

// Children returns an exclusive token over this node's children, sharing
// this handle's claim.
func (m Mut[T]) Children() ChildrenMut[T] {
	m.check()
	return ChildrenMut[T]{a: m.a, n: m.n, gen: m.gen, c: m.c}
}

// Reborrow lends the handle to fn and returns when fn does. The lent handle
// shares this one's claim; fn must not retain it past the call. Use this to
// pass subtree access into a helper and resume full access afterward.
func (m Mut[T]) Reborrow(fn func(m Mut[T])) {
	m.check()
	fn(m)
}

// Release ends the exclusive claim this handle belongs to. Every handle
// sharing the claim becomes unusable. Idempotent; typically deferred right
// after FindMut, or skipped entirely by using Edit.
func (m Mut[T]) Release() {
	if m.a != nil {
		m.a.releaseClaim(m.c)
	}
}

// --- ChildrenRef ---

// ChildrenRef is a read token over one node's ordered child list, or over
// the arena's root list when obtained from [Arena.Roots].
type ChildrenRef[T any] struct {
	a   *Arena[T]
	n   *node[T] // nil for the root token
	gen uint64
}

func (h ChildrenRef[T]) check() {
	if h.a == nil {
		panic("arbor: use of zero ChildrenRef")
	}
	if h.n != nil {
		checkLive(h.n, h.gen)
	}
}

// Len returns the number of direct children.
func (h ChildrenRef[T]) Len() int {
	h.check()
	return len(h.ids())
}

// IDs returns the direct children's ids in insertion order.
// The returned slice MUST NOT be mutated by the caller.
func (h ChildrenRef[T]) IDs() []NodeID {
	h.check()
	return h.ids()
}

// HasChild reports whether id is a direct child of this token's node.
func (h ChildrenRef[T]) HasChild(id NodeID) bool {
	h.check()
	n, ok := h.a.nodes[id]
	return ok && n.parent == handleID(h.n)
}

// At returns a read handle to the i'th direct child.
func (h ChildrenRef[T]) At(i int) Ref[T] {
	h.check()
	n := h.a.nodes[h.ids()[i]]
	h.a.checkReadable(n)
	return Ref[T]{a: h.a, n: n, gen: n.gen}
}

// GetChild returns a read handle to the direct child with the given id.
// Returns false for ids that are absent or not direct children, including
// deeper descendants; use Find for those.
func (h ChildrenRef[T]) GetChild(id NodeID) (Ref[T], bool) {
	h.check()
	n, ok := h.a.nodes[id]
	if !ok || n.parent != handleID(h.n) {
		return Ref[T]{}, false
	}
	h.a.checkReadable(n)
	return Ref[T]{a: h.a, n: n, gen: n.gen}, true
}

// Find returns a read handle to the descendant with the given id, anywhere
// below this token's node. Returns false if id is absent or not a
// descendant. The root-list token finds every node in the arena.
func (h ChildrenRef[T]) Find(id NodeID) (Ref[T], bool) {
	h.check()
	n, ok := h.a.nodes[id]
	if !ok || !h.a.inSubtreeBelow(n, h.n) {
		return Ref[T]{}, false
	}
	h.a.checkReadable(n)
	return Ref[T]{a: h.a, n: n, gen: n.gen}, true
}

func (h ChildrenRef[T]) ids() []NodeID {
	if h.n == nil {
		return h.a.roots
	}
	return h.n.children
}

// --- ChildrenMut ---

// ChildrenMut is an exclusive token over one node's ordered child list, or
// over the arena's root list when obtained from [Arena.RootsMut]. It is the
// only type that can restructure the tree.
type ChildrenMut[T any] struct {
	a   *Arena[T]
	n   *node[T] // nil for the root token
	gen uint64
	c   *claim
}

func (h ChildrenMut[T]) check() {
	if h.c == nil {
		panic("arbor: use of zero ChildrenMut")
	}
	if h.c.released {
		panic(fmt.Sprintf("arbor: use of handle to node %d after its claim was released", handleID(h.n)))
	}
	if h.n != nil {
		checkLive(h.n, h.gen)
	}
}

// Len returns the number of direct children.
func (h ChildrenMut[T]) Len() int {
	h.check()
	return len(h.ids())
}

// IDs returns the direct children's ids in insertion order.
// The returned slice MUST NOT be mutated by the caller.
func (h ChildrenMut[T]) IDs() []NodeID {
	h.check()
	return h.ids()
}

// HasChild reports whether id is a direct child of this token's node.
func (h ChildrenMut[T]) HasChild(id NodeID) bool {
	h.check()
	n, ok := h.a.nodes[id]
	return ok && n.parent == handleID(h.n)
}

// GetChild returns a read handle to the direct child with the given id.
// Returns false for ids that are absent or not direct children.
func (h ChildrenMut[T]) GetChild(id NodeID) (Ref[T], bool) {
	h.check()
	n, ok := h.a.nodes[id]
	if !ok || n.parent != handleID(h.n) {
		return Ref[T]{}, false
	}
	return Ref[T]{a: h.a, n: n, gen: n.gen}, true
}

// GetChildMut returns an exclusive handle to the direct child with the
// given id, sharing this token's claim. Returns false for ids that are
// absent or not direct children.
func (h ChildrenMut[T]) GetChildMut(id NodeID) (Mut[T], bool) {
	h.check()
	n, ok := h.a.nodes[id]
	if !ok || n.parent != handleID(h.n) {
		return Mut[T]{}, false
	}
	return Mut[T]{a: h.a, n: n, gen: n.gen, c: h.c}, true
}

// Find returns a read handle to the descendant with the given id, anywhere
// below this token's node. Returns false if id is absent or not a
// descendant.
func (h ChildrenMut[T]) Find(id NodeID) (Ref[T], bool) {
	h.check()
	n, ok := h.a.nodes[id]
	if !ok || !h.a.inSubtreeBelow(n, h.n) {
		return Ref[T]{}, false
	}
	return Ref[T]{a: h.a, n: n, gen: n.gen}, true
}

// FindMut returns an exclusive handle to the descendant with the given id,
// sharing this token's claim. The descendant proof (walking id's parent
// chain back to this token's node) runs before any handle is materialized;
// absent or non-descendant ids return false.
func (h ChildrenMut[T]) FindMut(id NodeID) (Mut[T], bool) {
	h.check()
	n, ok := h.a.nodes[id]
	if !ok || !h.a.inSubtreeBelow(n, h.n) {
		return Mut[T]{}, false
	}
	return Mut[T]{a: h.a, n: n, gen: n.gen, c: h.c}, true
}

// InsertChild attaches a new leaf node with the given id and payload at the
// end of the child list and returns an exclusive handle to it.
// Panics if id is zero or already exists anywhere in the arena: ids are
// global, so double insertion is a logic bug in the caller's id allocation,
// not a recoverable condition.
func (h ChildrenMut[T]) InsertChild(id NodeID, value T) Mut[T] {
	return h.insert(id, value, -1)
}

// InsertChildAt attaches a new leaf node at the given position in the child
// list, shifting later siblings. Same duplicate-id behavior as InsertChild;
// panics if index is out of range.
func (h ChildrenMut[T]) InsertChildAt(id NodeID, value T, index int) Mut[T] {
	h.check()
	if index < 0 || index > len(h.ids()) {
		panic("arbor: child index out of range")
	}
	return h.insert(id, value, index)
}

func (h ChildrenMut[T]) insert(id NodeID, value T, index int) Mut[T] {
	h.check()
	if id == 0 {
		panic("arbor: cannot insert the zero NodeID")
	}
	if _, exists := h.a.nodes[id]; exists {
		panic(fmt.Sprintf("arbor: node id %d already exists in the arena", id))
	}
	h.a.nextGen++
	n := &node[T]{id: id, value: value, gen: h.a.nextGen}
	h.a.attach(n, handleID(h.n), index)
	return Mut[T]{a: h.a, n: n, gen: n.gen, c: h.c}
}

// RemoveChild detaches the direct child with the given id, destroys its
// entire subtree, and returns the detached child's payload. Returns false
// if id is not a direct child of this token's node; that includes deeper
// descendants, which must be removed through their own parent.
func (h ChildrenMut[T]) RemoveChild(id NodeID) (T, bool) {
	h.check()
	n, ok := h.a.nodes[id]
	if !ok || n.parent != handleID(h.n) {
		var zero T
		return zero, false
	}
	return h.a.detach(n), true
}

func (h ChildrenMut[T]) ids() []NodeID {
	if h.n == nil {
		return h.a.roots
	}
	return h.n.children
}

// --- shared validation ---

// checkLive panics when a handle's node has been removed from the arena or
// its slot was re-issued to a newer insertion of the same id.
func checkLive[T any](n *node[T], gen uint64) {
	if n == nil {
		panic("arbor: use of zero handle")
	}
	if n.removed || n.gen != gen {
		panic(fmt.Sprintf("arbor: use of handle to removed node %d", n.id))
	}
}

// inSubtreeBelow reports whether n is a strict descendant of owner. A nil
// owner is the root token, whose subtree is the whole forest.
func (a *Arena[T]) inSubtreeBelow(n *node[T], owner *node[T]) bool {
	if owner == nil {
		return true
	}
	return a.isAncestor(owner.id, n)
}
