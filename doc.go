// Package arbor is a generational tree arena for retained-mode node trees.
//
// Arbor stores a forest of payload nodes in flat storage with O(1) lookup by
// a caller-supplied [NodeID], and hands out scoped handles for navigating
// and mutating subtrees. It is the substrate a retained-mode scene graph or
// widget framework sits on: event dispatch, layout, and paint passes all
// need "grab this node, then grab disjoint pieces of its subtree" access
// without walking the whole tree each time.
//
// # Quick start
//
//	a := arbor.New[string]()
//	a.EditRoots(func(roots arbor.ChildrenMut[string]) {
//		win := roots.InsertChild(1, "window")
//		win.Children().InsertChild(2, "button")
//	})
//
//	if ref, ok := a.Find(2); ok {
//		fmt.Println(*ref.Value()) // "button"
//	}
//
// # Handles
//
// [Ref] and [ChildrenRef] are cheap, copyable read handles. [Mut] and
// [ChildrenMut] are exclusive handles: creating one independently (via
// [Arena.FindMut], [Arena.Edit], [Arena.RootsMut], or [Arena.EditRoots])
// claims the node's entire subtree, and claiming a subtree that overlaps a
// live exclusive claim panics immediately. Two mutable handles may coexist
// exactly when neither one's node is an ancestor or descendant of the
// other's, so a container can be edited while each of its siblings is
// edited independently.
//
// Handles obtained through an existing Mut (GetChildMut, FindMut,
// InsertChild) share that Mut's claim and may alias it freely; keeping them
// apart while interleaving mutations is the caller's job, same as it would
// be with plain pointers. Prefer the callback forms ([Arena.Edit],
// [Arena.EditRoots], [Mut.Reborrow]) over long-lived handles: they release
// the claim when the callback returns, so a claim can never leak.
//
// # Failure policy
//
// Programmer errors panic: inserting a duplicate or zero id, using a handle
// after its node was removed or its claim released, and claiming a subtree
// that overlaps a live exclusive claim. Expected absence (looking up an id
// that isn't there, removing a child that isn't a direct child) returns a
// zero value and false. There is nothing in between: no error values, no
// logging, no partial states.
//
// Arbor is single-threaded and synchronous. Nothing in it is safe for
// concurrent use.
package arbor
