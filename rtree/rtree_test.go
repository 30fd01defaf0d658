package rtree

import (
	"context"
	"sort"
	"testing"
)

func box(x1, y1, x2, y2 float64) Box {
	return Box{Min: Point{x1, y1}, Max: Point{x2, y2}}
}

func TestInsertAndSearchPoint(t *testing.T) {
	tr := New[string]()
	tr.Insert(box(0, 0, 1, 1), "a")
	tr.Insert(box(5, 5, 6, 6), "b")
	tr.Insert(box(0.5, 0.5, 2, 2), "c")

	got := tr.SearchPoint(Point{0.7, 0.7})
	sort.Strings(got)
	want := []string{"a", "c"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("SearchPoint = %v, want %v", got, want)
	}

	if got := tr.SearchPoint(Point{100, 100}); len(got) != 0 {
		t.Fatalf("SearchPoint(miss) = %v, want empty", got)
	}
}

func TestInsertManyForcesSplit(t *testing.T) {
	tr := New[int]()
	for i := 0; i < 50; i++ {
		x := float64(i)
		tr.Insert(box(x, x, x+1, x+1), i)
	}
	if tr.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", tr.Len())
	}
	for i := 0; i < 50; i++ {
		x := float64(i)
		got := tr.SearchPoint(Point{x + 0.5, x + 0.5})
		found := false
		for _, v := range got {
			if v == i {
				found = true
			}
		}
		if !found {
			t.Fatalf("entry %d not found after bulk insert, got %v", i, got)
		}
	}
}

func TestSearchBoxIntersection(t *testing.T) {
	tr := New[string]()
	tr.Insert(box(0, 0, 1, 1), "a")
	tr.Insert(box(10, 10, 11, 11), "b")

	got := tr.SearchBox(box(-1, -1, 2, 2))
	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("SearchBox = %v, want [a]", got)
	}
}

func TestErase(t *testing.T) {
	tr := New[string]()
	b := box(1, 1, 2, 2)
	tr.Insert(b, "x")

	if !tr.Erase(b) {
		t.Fatal("Erase should report success for an existing entry")
	}
	if tr.Len() != 0 {
		t.Fatalf("Len() after erase = %d, want 0", tr.Len())
	}
	if tr.Erase(b) {
		t.Fatal("Erase should report failure for a missing entry")
	}
	if got := tr.SearchPoint(Point{1.5, 1.5}); len(got) != 0 {
		t.Fatalf("SearchPoint after erase = %v, want empty", got)
	}
}

func TestBulkLoad(t *testing.T) {
	items := make([]BulkItem[int], 0, 30)
	for i := 0; i < 30; i++ {
		x := float64(i)
		items = append(items, BulkItem[int]{Box: box(x, x, x+1, x+1), Value: i})
	}

	tr, err := BulkLoad(context.Background(), items)
	if err != nil {
		t.Fatalf("BulkLoad: %v", err)
	}
	if tr.Len() != 30 {
		t.Fatalf("Len() = %d, want 30", tr.Len())
	}
	got := tr.SearchPoint(Point{5.5, 5.5})
	if len(got) != 1 || got[0] != 5 {
		t.Fatalf("SearchPoint(5.5) = %v, want [5]", got)
	}
}

func TestInsertTriggersForcedReinsertionWithoutLosingEntries(t *testing.T) {
	tr := New[int]()
	// Enough insertions into a small MaxEntries to overflow a leaf twice
	// over, exercising both the reinsertion path (first overflow at a
	// level) and the split path (second overflow at the same level).
	n := 40
	for i := 0; i < n; i++ {
		x := float64(i) * 0.1
		tr.Insert(box(x, x, x+0.05, x+0.05), i)
	}
	if tr.Len() != n {
		t.Fatalf("Len() = %d, want %d", tr.Len(), n)
	}
	for i := 0; i < n; i++ {
		x := float64(i) * 0.1
		got := tr.SearchBox(box(x, x, x+0.05, x+0.05))
		found := false
		for _, v := range got {
			if v == i {
				found = true
			}
		}
		if !found {
			t.Fatalf("entry %d missing after forced reinsertion, got %v", i, got)
		}
	}
}

func TestBulkLoadEmpty(t *testing.T) {
	tr, err := BulkLoad[int](context.Background(), nil)
	if err != nil {
		t.Fatalf("BulkLoad: %v", err)
	}
	if tr.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", tr.Len())
	}
}
