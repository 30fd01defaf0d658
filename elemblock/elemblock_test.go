package elemblock

import (
	"testing"

	"github.com/dot5enko/mdds/category"
)

func TestTypedBlockAppendPrependErase(t *testing.T) {
	b := New(category.Float64, 0)
	if err := b.Append(1.0); err != nil {
		t.Fatal(err)
	}
	if err := b.Append(2.0); err != nil {
		t.Fatal(err)
	}
	if err := b.Prepend(0.0); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 3 {
		t.Fatalf("len = %d, want 3", b.Len())
	}
	for i, want := range []float64{0, 1, 2} {
		if got := b.Get(i); got != want {
			t.Fatalf("get(%d) = %v, want %v", i, got, want)
		}
	}

	b.Erase(1, 1)
	if b.Len() != 2 {
		t.Fatalf("len after erase = %d, want 2", b.Len())
	}
	if got := b.Get(1); got != 2.0 {
		t.Fatalf("get(1) after erase = %v, want 2.0", got)
	}
}

func TestTypedBlockTypeMismatch(t *testing.T) {
	b := New(category.Float64, 1)
	if err := b.Set(0, "not a float"); err == nil {
		t.Fatal("expected type mismatch error")
	}
	if err := b.Append("nope"); err == nil {
		t.Fatal("expected type mismatch error")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New(category.Int32, 2)
	_ = b.Set(0, int32(1))
	_ = b.Set(1, int32(2))

	c := b.Clone()
	_ = c.Set(0, int32(99))

	if b.Get(0) != int32(1) {
		t.Fatalf("original mutated: %v", b.Get(0))
	}
	if !b.Equal(b.Clone()) {
		t.Fatal("a block should equal its own clone")
	}
	if b.Equal(c) {
		t.Fatal("blocks with different contents should not be equal")
	}
}

func TestResizeGrowsWithDefaultAndShrinks(t *testing.T) {
	b := New(category.Bool, 2)
	b.Resize(4)
	if b.Len() != 4 {
		t.Fatalf("len = %d, want 4", b.Len())
	}
	if b.Get(3) != false {
		t.Fatalf("grown slot = %v, want false", b.Get(3))
	}
	b.Resize(1)
	if b.Len() != 1 {
		t.Fatalf("len after shrink = %d, want 1", b.Len())
	}
}

func TestAssignAndInsertRangeFrom(t *testing.T) {
	src := New(category.String, 3)
	_ = src.Set(0, "a")
	_ = src.Set(1, "b")
	_ = src.Set(2, "c")

	dst := New(category.String, 0)
	if err := dst.AssignFromRange(src, 1, 2); err != nil {
		t.Fatal(err)
	}
	if dst.Len() != 2 || dst.Get(0) != "b" || dst.Get(1) != "c" {
		t.Fatalf("unexpected assign result: len=%d", dst.Len())
	}

	if err := dst.InsertRangeFrom(1, src, 0, 1); err != nil {
		t.Fatal(err)
	}
	if dst.Len() != 3 || dst.Get(1) != "a" {
		t.Fatalf("unexpected insert result")
	}
}

func TestCustomBlockRoundTrip(t *testing.T) {
	b := New(category.Custom, 0)
	if err := b.Append(map[string]int{"x": 1}); err != nil {
		t.Fatal(err)
	}
	if err := b.Append([]int{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	clone := b.Clone()
	if !b.Equal(clone) {
		t.Fatal("custom block should equal its own clone")
	}
}

func TestEqualDifferentCategories(t *testing.T) {
	a := New(category.Uint8, 0)
	b := New(category.Uint16, 0)
	if a.Equal(b) {
		t.Fatal("blocks of different categories should never be equal")
	}
}
