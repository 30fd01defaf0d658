package tbv

import (
	"github.com/dot5enko/mdds/blockseq"
	"github.com/dot5enko/mdds/category"
)

// BlockView re-exports blockseq.BlockView: the per-block snapshot produced
// by Begin/RBegin (spec.md section 4.8's block iterator).
type BlockView = blockseq.BlockView

// Begin returns a forward snapshot of every block, in order. Any mutating
// call on v invalidates a previously obtained snapshot (spec.md section
// 4.8); callers must re-call Begin after mutating.
func (v *Vector) Begin() []BlockView { return v.seq.BlockViews() }

// RBegin returns the same blocks as Begin but in reverse order, the
// counterpart to C++-style rbegin()/rend() named in spec.md section 6.
func (v *Vector) RBegin() []BlockView { return v.seq.ReverseBlockViews() }

// Elements returns the values of a data block view in row order. Calling
// it on an empty block view (view.Data == nil) returns nil. This is the
// element iterator of spec.md section 4.8, given a block iterator
// positioned on a data block.
func Elements(view BlockView) []any {
	if view.Data == nil {
		return nil
	}
	out := make([]any, view.Size)
	for i := range out {
		out[i] = view.Data.Get(i)
	}
	return out
}

// ReverseElements is the reverse counterpart to Elements.
func ReverseElements(view BlockView) []any {
	fwd := Elements(view)
	for i, j := 0, len(fwd)-1; i < j; i, j = i+1, j-1 {
		fwd[i], fwd[j] = fwd[j], fwd[i]
	}
	return fwd
}

// GetAs reads row and type-asserts it to T, returning the zero value of T
// if the row is empty or holds a value of another type. This is the
// closest Go idiom to the original
// template's get<T>(row) that quietly returns T's default for an empty
// cell.
func GetAs[T any](v *Vector, row int) (T, error) {
	var zero T
	cat, value, err := v.Get(row)
	if err != nil {
		return zero, err
	}
	if cat == category.Empty {
		return zero, nil
	}
	typed, ok := value.(T)
	if !ok {
		return zero, nil
	}
	return typed, nil
}
