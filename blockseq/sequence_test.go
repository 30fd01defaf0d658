package blockseq

import (
	"testing"

	"github.com/dot5enko/mdds/category"
	"github.com/dot5enko/mdds/mddserr"
)

func TestLocateAndLocateFrom(t *testing.T) {
	s := NewSized(10)
	if err := s.Set(3, 1.0); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(7, 2.0); err != nil {
		t.Fatal(err)
	}

	idx, start, err := s.Locate(7)
	if err != nil {
		t.Fatal(err)
	}

	idx2, start2, err := s.LocateFrom(idx, start, 3)
	if err != nil {
		t.Fatal(err)
	}
	wantIdx, wantStart, _ := s.Locate(3)
	if idx2 != wantIdx || start2 != wantStart {
		t.Fatalf("LocateFrom(back) = %d,%d want %d,%d", idx2, start2, wantIdx, wantStart)
	}

	idx3, start3, err := s.LocateFrom(wantIdx, wantStart, 9)
	if err != nil {
		t.Fatal(err)
	}
	wantIdx3, wantStart3, _ := s.Locate(9)
	if idx3 != wantIdx3 || start3 != wantStart3 {
		t.Fatalf("LocateFrom(forward) = %d,%d want %d,%d", idx3, start3, wantIdx3, wantStart3)
	}
}

func TestLocateOutOfRange(t *testing.T) {
	s := NewSized(3)
	if _, _, err := s.Locate(3); err != mddserr.ErrOutOfRange {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
	if _, _, err := s.Locate(-1); err != mddserr.ErrOutOfRange {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
}

func TestNonCoalescedInvariantAfterRandomSets(t *testing.T) {
	s := NewSized(20)
	values := []any{1.0, "a", true, int64(4), 5.0, "b"}
	rows := []int{0, 5, 5, 10, 15, 19, 3, 3, 8}

	for i, row := range rows {
		if err := s.Set(row, values[i%len(values)]); err != nil {
			t.Fatalf("Set(%d): %v", row, err)
		}
		assertInvariants(t, s)
	}
}

func assertInvariants(t *testing.T, s *Sequence) {
	t.Helper()

	total := 0
	for i, b := range s.blocks {
		if b.Size <= 0 {
			t.Fatalf("block %d has non-positive size %d", i, b.Size)
		}
		total += b.Size
		if i > 0 && sameCategory(s.blocks[i-1], b) {
			t.Fatalf("blocks %d and %d violate the non-coalesced invariant", i-1, i)
		}
	}
	if total != s.size {
		t.Fatalf("block sizes sum to %d, want %d", total, s.size)
	}
}

func TestGetEmptyReportsCategoryEmpty(t *testing.T) {
	s := NewSized(3)
	cat, val, err := s.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if cat != category.Empty || val != nil {
		t.Fatalf("Get(empty) = %v, %v; want category.Empty, nil", cat, val)
	}
}
