package collection

import (
	"testing"

	"github.com/dot5enko/mdds/tbv"
)

func TestAddColumnAndReadRow(t *testing.T) {
	c := New()

	names := tbv.NewSized(3)
	_ = names.Set(0, "alice")
	_ = names.Set(1, "bob")

	ages := tbv.NewSized(3)
	_ = ages.Set(0, int64(30))
	_ = ages.Set(1, int64(25))

	if _, err := c.AddColumn("name", names); err != nil {
		t.Fatal(err)
	}
	if _, err := c.AddColumn("age", ages); err != nil {
		t.Fatal(err)
	}

	row, err := c.Row(0)
	if err != nil {
		t.Fatal(err)
	}
	if row["name"] != "alice" || row["age"] != int64(30) {
		t.Fatalf("Row(0) = %v", row)
	}

	if _, err := c.Row(2); err == nil {
		t.Fatal("expected error for an all-empty row")
	}
}

func TestAddColumnRejectsSizeMismatch(t *testing.T) {
	c := New()
	a := tbv.NewSized(3)
	b := tbv.NewSized(5)

	if _, err := c.AddColumn("a", a); err != nil {
		t.Fatal(err)
	}
	if _, err := c.AddColumn("b", b); err == nil {
		t.Fatal("expected error for mismatched column size")
	}
}

func TestAddColumnRejectsDuplicateName(t *testing.T) {
	c := New()
	a := tbv.NewSized(1)
	b := tbv.NewSized(1)

	if _, err := c.AddColumn("x", a); err != nil {
		t.Fatal(err)
	}
	if _, err := c.AddColumn("x", b); err == nil {
		t.Fatal("expected error for duplicate column name")
	}
}

func TestColumnLookupByIDAndName(t *testing.T) {
	c := New()
	v := tbv.NewSized(2)
	id, err := c.AddColumn("x", v)
	if err != nil {
		t.Fatal(err)
	}

	byID, err := c.Column(id)
	if err != nil || byID.Name != "x" {
		t.Fatalf("Column(id) = %v, %v", byID, err)
	}
	byName, err := c.ColumnByName("x")
	if err != nil || byName.ID != id {
		t.Fatalf("ColumnByName(x) = %v, %v", byName, err)
	}

	if _, err := c.Column(id); err != nil {
		t.Fatal(err)
	}
	if cols := c.Columns(); len(cols) != 1 {
		t.Fatalf("Columns() = %v, want 1 entry", cols)
	}
}

func TestSetEmptyRowClearsAllColumns(t *testing.T) {
	c := New()
	a := tbv.NewSized(2)
	_ = a.Set(0, 1.0)
	_ = a.Set(1, 2.0)
	b := tbv.NewSized(2)
	_ = b.Set(0, "x")
	_ = b.Set(1, "y")

	if _, err := c.AddColumn("a", a); err != nil {
		t.Fatal(err)
	}
	if _, err := c.AddColumn("b", b); err != nil {
		t.Fatal(err)
	}

	if err := c.SetEmptyRow(0); err != nil {
		t.Fatal(err)
	}
	emptyA, _ := a.IsEmpty(0)
	emptyB, _ := b.IsEmpty(0)
	if !emptyA || !emptyB {
		t.Fatal("SetEmptyRow should clear every column at that row")
	}

	emptyA1, _ := a.IsEmpty(1)
	emptyB1, _ := b.IsEmpty(1)
	if emptyA1 || emptyB1 {
		t.Fatal("SetEmptyRow should not touch neighboring rows")
	}
}

func TestSetEmptyRowLastRow(t *testing.T) {
	c := New()
	a := tbv.NewSized(3)
	_ = a.Set(2, 1.0)

	if _, err := c.AddColumn("a", a); err != nil {
		t.Fatal(err)
	}
	if err := c.SetEmptyRow(2); err != nil {
		t.Fatalf("SetEmptyRow on the last row should succeed: %v", err)
	}
	empty, _ := a.IsEmpty(2)
	if !empty {
		t.Fatal("SetEmptyRow should clear the last row")
	}
}

func TestSizeReflectsFirstColumn(t *testing.T) {
	c := New()
	v := tbv.NewSized(7)
	if _, err := c.AddColumn("v", v); err != nil {
		t.Fatal(err)
	}
	if c.Size() != 7 {
		t.Fatalf("Size() = %d, want 7", c.Size())
	}
}
