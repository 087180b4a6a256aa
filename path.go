package arbor

// IDPath returns the ids on the parent chain from id up to and including its
// root, ordered leaf-first. Returns nil if id is absent from the arena.
func (a *Arena[T]) IDPath(id NodeID) []NodeID {
	return a.idPath(id, 0)
}

// IDPathTo returns the ids on the parent chain from id up to ancestor, with
// id included and ancestor excluded, ordered leaf-first. Passing the zero id
// as ancestor is equivalent to IDPath.
//
// The result is all or nothing: if ancestor is not actually a proper
// ancestor of id (or id is absent), IDPathTo returns nil rather than a
// partial chain. Partial paths are useless to callers, which need the
// complete chain to re-descend the tree.
func (a *Arena[T]) IDPathTo(id, ancestor NodeID) []NodeID {
	return a.idPath(id, ancestor)
}

func (a *Arena[T]) idPath(id, stop NodeID) []NodeID {
	n, ok := a.nodes[id]
	if !ok {
		return nil
	}
	var path []NodeID
	for {
		path = append(path, n.id)
		switch n.parent {
		case stop:
			if stop != 0 {
				return path
			}
			// stop is zero: n is a root, and the root is included.
			return path
		case 0:
			// Reached a true root without meeting stop, so stop is not an
			// ancestor of id. Discard the partial chain.
			return nil
		}
		n = a.nodes[n.parent]
	}
}
