package arbor

// EventType discriminates structural tree events.
type EventType uint8

const (
	// EventInsert fires when a node is attached to the arena.
	EventInsert EventType = iota
	// EventRemove fires when a node leaves the arena. A cascading removal
	// fires one event per node, leaf-first.
	EventRemove
)

// TreeEvent carries structural change data for the observer bridge.
type TreeEvent struct {
	Type   EventType
	ID     NodeID
	Parent NodeID // zero for roots
}

// TreeObserver is the interface for optional structure-change integration
// (ECS worlds, dirty-region trackers, accessibility mirrors). When set on an
// Arena, insert and remove events are forwarded to it synchronously.
type TreeObserver interface {
	EmitEvent(event TreeEvent)
}

// Arena owns a forest of payload nodes: flat storage addressed by NodeID,
// an ordered root list, and the live exclusive-claim registry that stands in
// for compile-time borrow checking. The zero value is not usable; call New.
type Arena[T any] struct {
	nodes    map[NodeID]*node[T]
	roots    []NodeID
	nextGen  uint64
	claims   []*claim
	observer TreeObserver
}

// New creates an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{nodes: make(map[NodeID]*node[T])}
}

// SetObserver installs obs to receive structural events. Pass nil to detach.
func (a *Arena[T]) SetObserver(obs TreeObserver) {
	a.observer = obs
}

// Len returns the number of nodes currently stored, across all roots.
func (a *Arena[T]) Len() int {
	return len(a.nodes)
}

// RootIDs returns the root ids in insertion order.
// The returned slice MUST NOT be mutated by the caller.
func (a *Arena[T]) RootIDs() []NodeID {
	return a.roots
}

// Contains reports whether id names a live node anywhere in the arena.
func (a *Arena[T]) Contains(id NodeID) bool {
	_, ok := a.nodes[id]
	return ok
}

// Roots returns a read token over the root list. Never fails.
func (a *Arena[T]) Roots() ChildrenRef[T] {
	return ChildrenRef[T]{a: a}
}

// RootsMut returns an exclusive token over the whole forest. The caller must
// Release it (or use EditRoots, which releases automatically). Panics if any
// exclusive claim is live anywhere in the arena.
func (a *Arena[T]) RootsMut() ChildrenMut[T] {
	return ChildrenMut[T]{a: a, c: a.claimExclusive(nil)}
}

// EditRoots claims the whole forest, passes the token to fn, and releases
// the claim when fn returns. This is the preferred way to restructure the
// root level; the claim cannot leak.
func (a *Arena[T]) EditRoots(fn func(roots ChildrenMut[T])) {
	roots := a.RootsMut()
	defer a.releaseClaim(roots.c)
	fn(roots)
}

// Find returns a read handle to the node with the given id, anywhere in the
// arena. Returns false if the id is absent. Panics if the node sits inside a
// live exclusive claim.
func (a *Arena[T]) Find(id NodeID) (Ref[T], bool) {
	n, ok := a.nodes[id]
	if !ok {
		return Ref[T]{}, false
	}
	a.checkReadable(n)
	return Ref[T]{a: a, n: n, gen: n.gen}, true
}

// FindMut returns an exclusive handle to the node with the given id,
// claiming its entire subtree. Returns false if the id is absent. The caller
// must Release the handle (or use Edit). Panics if the subtree overlaps a
// live exclusive claim.
func (a *Arena[T]) FindMut(id NodeID) (Mut[T], bool) {
	n, ok := a.nodes[id]
	if !ok {
		return Mut[T]{}, false
	}
	return Mut[T]{a: a, n: n, gen: n.gen, c: a.claimExclusive(n)}, true
}

// View looks up id and passes a read handle to fn. Returns false without
// calling fn if the id is absent.
func (a *Arena[T]) View(id NodeID, fn func(ref Ref[T])) bool {
	ref, ok := a.Find(id)
	if !ok {
		return false
	}
	fn(ref)
	return true
}

// Edit looks up id, claims its subtree, passes an exclusive handle to fn,
// and releases the claim when fn returns. Returns false without calling fn
// if the id is absent.
func (a *Arena[T]) Edit(id NodeID, fn func(m Mut[T])) bool {
	m, ok := a.FindMut(id)
	if !ok {
		return false
	}
	defer m.Release()
	fn(m)
	return true
}
