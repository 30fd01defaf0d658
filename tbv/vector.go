package tbv

import (
	"github.com/dot5enko/mdds/blockseq"
	"github.com/dot5enko/mdds/category"
	"github.com/dot5enko/mdds/elemblock"
	"github.com/dot5enko/mdds/mddserr"
)

// Vector is the public façade over a block sequence (spec.md section 6). It
// has no file format, no wire protocol and no persistent state: its entire
// external surface is this API.
type Vector struct {
	seq *blockseq.Sequence
}

// New returns an empty vector of size 0.
func New() *Vector {
	return &Vector{seq: blockseq.New()}
}

// NewSized returns a vector covering n rows as a single empty block.
func NewSized(n int) *Vector {
	return &Vector{seq: blockseq.NewSized(n)}
}

// NewFilledFloat64 returns a vector of size n filled with value as a single
// numeric data block.
func NewFilledFloat64(n int, value float64) *Vector {
	return &Vector{seq: blockseq.NewFilled(category.Float64, n, func(b elemblock.Block) {
		for i := 0; i < n; i++ {
			_ = b.Set(i, value)
		}
	})}
}

// NewFilled returns a vector of size n filled with value, whose category is
// derived from value's Go type (category.Of).
func NewFilled(n int, value any) *Vector {
	cat := category.Of(value)
	return &Vector{seq: blockseq.NewFilled(cat, n, func(b elemblock.Block) {
		for i := 0; i < n; i++ {
			_ = b.Set(i, value)
		}
	})}
}

// Size returns the total number of logical rows.
func (v *Vector) Size() int { return v.seq.Size() }

// BlockCount returns the number of blocks backing the vector.
func (v *Vector) BlockCount() int { return v.seq.BlockCount() }

// Empty reports whether the vector has size 0.
func (v *Vector) Empty() bool { return v.seq.Size() == 0 }

// Get returns the category and value stored at row, or category.Empty and
// nil if the containing block is empty (spec.md section 4.2).
func (v *Vector) Get(row int) (category.Category, any, error) {
	return v.seq.Get(row)
}

// IsEmpty reports whether row falls in an empty block.
func (v *Vector) IsEmpty(row int) (bool, error) {
	return v.seq.IsEmpty(row)
}

// CategoryAt returns the category backing row, without materializing its
// value (SPEC_FULL.md section 4, supplementing spec.md's distillation with
// the original's independent get_type()).
func (v *Vector) CategoryAt(row int) (category.Category, error) {
	return v.seq.CategoryAt(row)
}

// Set writes value at row, per spec.md section 4.3.
func (v *Vector) Set(row int, value any) error {
	return v.seq.Set(row, value)
}

// SetRange writes values, which must share a single category, starting at
// row. Per spec.md section 4.4, an empty values slice is a no-op and a span
// extending past the vector's size fails with mddserr.ErrOutOfRange.
func (v *Vector) SetRange(row int, values []any) error {
	if len(values) == 0 {
		return nil
	}
	cat := category.Of(values[0])
	block := elemblock.New(cat, len(values))
	for i, val := range values {
		if err := block.Set(i, val); err != nil {
			return err
		}
	}
	before := v.seq.BlockCount()
	if err := v.seq.SetRange(row, cat, block); err != nil {
		return err
	}
	Logger.Printf("set_range row=%d len=%d blocks %d -> %d", row, len(values), before, v.seq.BlockCount())
	return nil
}

// SetEmpty sets rows [start, end] inclusive to empty, per spec.md section 4.5.
func (v *Vector) SetEmpty(start, end int) error {
	return v.seq.SetEmpty(start, end)
}

// InsertEmpty grows the vector by length, inserting empty rows before row,
// per spec.md section 4.6.
func (v *Vector) InsertEmpty(row, length int) error {
	return v.seq.InsertEmpty(row, length)
}

// Erase removes rows [start, end] inclusive, per spec.md section 4.6.
func (v *Vector) Erase(start, end int) error {
	return v.seq.Erase(start, end)
}

// Resize grows or shrinks the vector to n rows, per spec.md section 4.8.
func (v *Vector) Resize(n int) error {
	if n < 0 {
		return mddserr.ErrOutOfRange
	}
	v.seq.Resize(n)
	return nil
}

// Clear empties the vector down to size 0.
func (v *Vector) Clear() {
	v.seq.Clear()
}

// Swap exchanges the contents of v and other in place.
func (v *Vector) Swap(other *Vector) {
	v.seq, other.seq = other.seq, v.seq
}

// Clone returns an independent vector equal by value to v.
func (v *Vector) Clone() *Vector {
	return &Vector{seq: v.seq.Clone()}
}

// Equal reports whether v and other have the same size and block sequence.
func (v *Vector) Equal(other *Vector) bool {
	return v.seq.Equal(other.seq)
}

// PushBack appends value as a new last row, growing the vector by one.
// Supplements spec.md with the original's push_back convenience
// (SPEC_FULL.md section 4).
func (v *Vector) PushBack(value any) error {
	row := v.seq.Size()
	v.seq.Resize(row + 1)
	return v.seq.Set(row, value)
}

// PushBackEmpty appends n empty rows.
func (v *Vector) PushBackEmpty(n int) {
	v.seq.Resize(v.seq.Size() + n)
}

// InsertRange inserts values as new rows before row, growing the vector by
// len(values). Resolves the Open Question in spec.md section 9 about
// typed-range insertion: implemented as insert-empty-then-set-range, which
// is always well-defined (DESIGN.md records this decision).
func (v *Vector) InsertRange(row int, values []any) error {
	if len(values) == 0 {
		return nil
	}
	if err := v.seq.InsertEmpty(row, len(values)); err != nil {
		return err
	}
	return v.SetRange(row, values)
}

// Walk visits rows [start, end] inclusive in order, calling fn with each
// row's category and value. fn returning false stops iteration early.
// Supplements spec.md with the original's copy_cells_to-style visitor walk
// (SPEC_FULL.md section 4) without materializing an intermediate slice.
func (v *Vector) Walk(start, end int, fn func(row int, cat category.Category, value any) bool) error {
	if start < 0 || end >= v.seq.Size() || start > end {
		return mddserr.ErrOutOfRange
	}
	for _, view := range v.seq.BlockViews() {
		blockEnd := view.StartRow + view.Size - 1
		if blockEnd < start || view.StartRow > end {
			continue
		}
		from := max(start, view.StartRow)
		to := min(end, blockEnd)
		for row := from; row <= to; row++ {
			var value any
			if view.Data != nil {
				value = view.Data.Get(row - view.StartRow)
			}
			if !fn(row, view.Category, value) {
				return nil
			}
		}
	}
	return nil
}
