package arena

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/sync/errgroup"
)

func TestArenaNew(t *testing.T) {
	a := New[int](0)
	if len(a.chunks) != 1 || cap(a.chunks[0]) != DefaultChunkLen {
		t.Errorf("expected one chunk with %d slots, have %d chunks", DefaultChunkLen, len(a.chunks))
	}
	if a.Len() != 0 {
		t.Errorf("expected empty arena to have 0 allocations, has %d", a.Len())
	}
	a = New[int](100)
	if cap(a.chunks[0]) != 100 {
		t.Errorf("expected first chunk to have 100 slots, has %d", cap(a.chunks[0]))
	}
}

func TestArenaAlloc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cowvec.arena")
	defer teardown()
	//
	a := New[string](2)
	r1 := a.Alloc("one")
	r2 := a.Alloc("two")
	r3 := a.Alloc("three") // forces a second chunk
	if r1.Value() != "one" || r2.Value() != "two" || r3.Value() != "three" {
		t.Errorf("expected handles to dereference to one/two/three, are %s/%s/%s",
			r1.Value(), r2.Value(), r3.Value())
	}
	if a.Len() != 3 {
		t.Errorf("expected 3 allocations, have %d", a.Len())
	}
	if len(a.chunks) != 2 {
		t.Errorf("expected arena to have grown to 2 chunks, has %d", len(a.chunks))
	}
}

func TestArenaSlotsDoNotMove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cowvec.arena")
	defer teardown()
	//
	a := New[int](1)
	first := a.Alloc(42)
	p := first.Pointer()
	for i := 0; i < 10000; i++ {
		a.Alloc(i)
	}
	if first.Pointer() != p || *p != 42 {
		t.Errorf("expected first slot to stay at its address holding 42, holds %d", *p)
	}
}

func TestArenaChunkGrowth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cowvec.arena")
	defer teardown()
	//
	a := New[int](MaxChunkLen / 2)
	for i := 0; i < MaxChunkLen*2; i++ {
		a.Alloc(i)
	}
	for i, c := range a.chunks {
		if i > 0 && cap(c) > MaxChunkLen {
			t.Errorf("expected chunk #%d to have at most %d slots, has %d", i, MaxChunkLen, cap(c))
		}
	}
	s := a.Stats()
	if s.Allocs != MaxChunkLen*2 {
		t.Errorf("expected %d allocations, have %d", MaxChunkLen*2, s.Allocs)
	}
	if s.Chunks != len(a.chunks) {
		t.Errorf("expected stats to report %d chunks, report %d", len(a.chunks), s.Chunks)
	}
	if u := s.Utilization(); u <= 0 || u > 1 {
		t.Errorf("expected utilization in (0,1], is %f", u)
	}
}

func TestArenaInvalidRef(t *testing.T) {
	var r Ref[int]
	if r.Valid() {
		t.Error("expected zero Ref to be invalid")
	}
	defer func() {
		if recover() == nil {
			t.Error("expected dereferencing a zero Ref to panic")
		}
	}()
	_ = r.Value()
}

func TestArenaConcurrentAlloc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cowvec.arena")
	defer teardown()
	//
	const workers, n = 8, 1000
	a := New[int](0)
	refs := make([][]Ref[int], workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < n; i++ {
				refs[w] = append(refs[w], a.Alloc(w*n+i))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if a.Len() != workers*n {
		t.Errorf("expected %d allocations, have %d", workers*n, a.Len())
	}
	for w := range refs {
		for i, r := range refs[w] {
			if r.Value() != w*n+i {
				t.Fatalf("expected handle %d of worker %d to hold %d, holds %d", i, w, w*n+i, r.Value())
			}
		}
	}
}
