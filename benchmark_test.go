package arbor

import "testing"

// setupBenchArena creates an arena with one root and n children, each child
// carrying grandchildren so lookups cross two levels. fanout is the number
// of grandchildren per child.
func setupBenchArena(n, fanout int) *Arena[int] {
	a := New[int]()
	a.EditRoots(func(roots ChildrenMut[int]) {
		root := roots.InsertChild(1, 0)
		kids := root.Children()
		next := NodeID(2)
		for i := 0; i < n; i++ {
			child := kids.InsertChild(next, i)
			next++
			gk := child.Children()
			for j := 0; j < fanout; j++ {
				gk.InsertChild(next, j)
				next++
			}
		}
	})
	return a
}

func BenchmarkFind_10000Nodes(b *testing.B) {
	a := setupBenchArena(2000, 4) // 1 + 2000 + 8000 nodes
	ids := make([]NodeID, 0, a.Len())
	a.Walk(func(id NodeID, depth int, value *int) bool {
		ids = append(ids, id)
		return true
	})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, ok := a.Find(ids[i%len(ids)]); !ok {
			b.Fatal("find failed")
		}
	}
}

func BenchmarkEdit_DisjointSiblings(b *testing.B) {
	a := setupBenchArena(100, 0)
	root, _ := a.Find(1)
	children := append([]NodeID(nil), root.Children().IDs()...)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a.Edit(children[i%len(children)], func(m Mut[int]) {
			*m.Value()++
		})
	}
}

func BenchmarkInsertRemove(b *testing.B) {
	a := setupBenchArena(100, 0)
	next := NodeID(1 << 20)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a.Edit(1, func(m Mut[int]) {
			kids := m.Children()
			kids.InsertChild(next, i)
			kids.RemoveChild(next)
		})
		next++
	}
}

func BenchmarkIDPath_Depth16(b *testing.B) {
	a := New[int]()
	a.EditRoots(func(roots ChildrenMut[int]) {
		m := roots.InsertChild(1, 0)
		for i := 2; i <= 16; i++ {
			m = m.Children().InsertChild(NodeID(i), i)
		}
	})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if p := a.IDPath(16); len(p) != 16 {
			b.Fatalf("path length %d", len(p))
		}
	}
}

func BenchmarkWalk_10000Nodes(b *testing.B) {
	a := setupBenchArena(2000, 4)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		count := 0
		a.Walk(func(id NodeID, depth int, value *int) bool {
			count++
			return true
		})
		if count != a.Len() {
			b.Fatalf("visited %d of %d", count, a.Len())
		}
	}
}
