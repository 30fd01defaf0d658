package segmenttree

import "testing"

func TestSearchPointFindsCoveringSegments(t *testing.T) {
	tr, err := Build([]Segment[string]{
		{Start: 0, End: 10, Value: "a"},
		{Start: 5, End: 15, Value: "b"},
		{Start: 20, End: 30, Value: "c"},
	})
	if err != nil {
		t.Fatal(err)
	}

	got := tr.SearchPoint(7)
	if len(got) != 2 {
		t.Fatalf("SearchPoint(7) = %v, want 2 segments", got)
	}
	seen := map[string]bool{}
	for _, s := range got {
		seen[s.Value] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Fatalf("SearchPoint(7) = %v, want a and b", got)
	}

	if got := tr.SearchPoint(17); len(got) != 0 {
		t.Fatalf("SearchPoint(17) = %v, want empty", got)
	}
	if got := tr.SearchPoint(25); len(got) != 1 || got[0].Value != "c" {
		t.Fatalf("SearchPoint(25) = %v, want [c]", got)
	}
}

func TestSearchPointBoundaries(t *testing.T) {
	tr, err := Build([]Segment[int]{{Start: 0, End: 5, Value: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.SearchPoint(0); len(got) != 1 {
		t.Fatalf("SearchPoint(start) = %v, want 1 segment", got)
	}
	if got := tr.SearchPoint(5); len(got) != 0 {
		t.Fatalf("SearchPoint(end, exclusive) = %v, want empty", got)
	}
}

func TestBuildRejectsEmptySegment(t *testing.T) {
	_, err := Build([]Segment[int]{{Start: 5, End: 5, Value: 1}})
	if err == nil {
		t.Fatal("expected error for a zero-width segment")
	}
}

func TestSearchRangeOverlap(t *testing.T) {
	tr, err := Build([]Segment[int]{
		{Start: 0, End: 10, Value: 1},
		{Start: 10, End: 20, Value: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := tr.SearchRange(5, 15)
	if len(got) != 2 {
		t.Fatalf("SearchRange(5,15) = %v, want 2 segments", got)
	}
	if got := tr.SearchRange(10, 10); len(got) != 0 {
		t.Fatalf("SearchRange(empty range) = %v, want empty", got)
	}
}

func TestLen(t *testing.T) {
	tr, _ := Build([]Segment[int]{{Start: 0, End: 1, Value: 1}, {Start: 2, End: 3, Value: 2}})
	if tr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tr.Len())
	}
}
