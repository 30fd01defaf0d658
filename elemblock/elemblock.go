// Package elemblock implements the element-block collaborator specified in
// spec.md section 4.7: a homogeneous, growable, typed sequence of values
// that a blockseq.Block owns when it is a data block. This is the "external
// collaborator" the core tbv depends on only through the Block interface.
//
// Grounded on block.RuntimeBlockData[T] (block/runtime_data.go) in the
// teacher, generalized from a fixed-capacity write-once ring buffer to a
// growable sequence using golang.org/x/exp/slices for insert/erase, since
// the teacher's own go.mod already depends on golang.org/x/exp.
package elemblock

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/dot5enko/mdds/category"
	"github.com/dot5enko/mdds/mddserr"
)

// Block is the element-block contract. On a TypedBlock, every method that
// can be called with a value or source block of the wrong category returns
// mddserr.ErrTypeMismatch rather than panicking, matching spec.md section
// 4.7's "programmer error, may signal TypeMismatch". A CustomBlock accepts
// any value; its AppendRange, AssignFromRange and InsertRangeFrom panic
// when the source block is not a *CustomBlock.
type Block interface {
	Category() category.Category
	Len() int
	Clone() Block
	Resize(newLen int)
	Append(v any) error
	Prepend(v any) error
	AppendRange(src Block) error
	AssignFromRange(src Block, start, length int) error
	InsertRangeFrom(pos int, src Block, start, length int) error
	Erase(pos, count int)
	Get(pos int) any
	Set(pos int, v any) error
	Equal(other Block) bool
}

// New creates a new element block of the given category and length,
// default-initialized (spec.md section 4.7's create).
func New(cat category.Category, size int) Block {
	switch cat {
	case category.Float64:
		return newTyped[float64](cat, size, 0)
	case category.Bool:
		return newTyped[bool](cat, size, false)
	case category.String:
		return newTyped[string](cat, size, "")
	case category.Int8:
		return newTyped[int8](cat, size, 0)
	case category.Int16:
		return newTyped[int16](cat, size, 0)
	case category.Int32:
		return newTyped[int32](cat, size, 0)
	case category.Int64:
		return newTyped[int64](cat, size, 0)
	case category.Uint8:
		return newTyped[uint8](cat, size, 0)
	case category.Uint16:
		return newTyped[uint16](cat, size, 0)
	case category.Uint32:
		return newTyped[uint32](cat, size, 0)
	case category.Uint64:
		return newTyped[uint64](cat, size, 0)
	case category.Custom:
		return newCustom(size)
	default:
		panic(fmt.Sprintf("elemblock: unknown category %v", cat))
	}
}

func newTyped[T comparable](cat category.Category, size int, zero T) *TypedBlock[T] {
	data := make([]T, size)
	for i := range data {
		data[i] = zero
	}
	return &TypedBlock[T]{cat: cat, zero: zero, data: data}
}

// TypedBlock is the concrete element block for one category backed by a
// []T. Dispatch from the any-typed Block interface happens once at each
// method boundary via a type assertion back to T; the hot inner loops
// (get/set/append/erase) operate on the concrete slice, matching the
// spec's design note about removing indirect calls from hot paths.
type TypedBlock[T comparable] struct {
	cat  category.Category
	zero T
	data []T
}

func (b *TypedBlock[T]) Category() category.Category { return b.cat }
func (b *TypedBlock[T]) Len() int                     { return len(b.data) }

func (b *TypedBlock[T]) Clone() Block {
	cloned := make([]T, len(b.data))
	copy(cloned, b.data)
	return &TypedBlock[T]{cat: b.cat, zero: b.zero, data: cloned}
}

func (b *TypedBlock[T]) Resize(newLen int) {
	switch {
	case newLen == len(b.data):
		return
	case newLen < len(b.data):
		b.data = b.data[:newLen]
	default:
		grown := make([]T, newLen)
		copy(grown, b.data)
		for i := len(b.data); i < newLen; i++ {
			grown[i] = b.zero
		}
		b.data = grown
	}
}

func (b *TypedBlock[T]) value(v any) (T, error) {
	tv, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: got %T, want %T", mddserr.ErrTypeMismatch, v, b.zero)
	}
	return tv, nil
}

func (b *TypedBlock[T]) Append(v any) error {
	tv, err := b.value(v)
	if err != nil {
		return err
	}
	b.data = append(b.data, tv)
	return nil
}

func (b *TypedBlock[T]) Prepend(v any) error {
	tv, err := b.value(v)
	if err != nil {
		return err
	}
	b.data = slices.Insert(b.data, 0, tv)
	return nil
}

func (b *TypedBlock[T]) typedSrc(src Block) (*TypedBlock[T], error) {
	tsrc, ok := src.(*TypedBlock[T])
	if !ok || tsrc.cat != b.cat {
		return nil, fmt.Errorf("%w: source block category %v, want %v", mddserr.ErrTypeMismatch, src.Category(), b.cat)
	}
	return tsrc, nil
}

func (b *TypedBlock[T]) AppendRange(src Block) error {
	tsrc, err := b.typedSrc(src)
	if err != nil {
		return err
	}
	b.data = append(b.data, tsrc.data...)
	return nil
}

func (b *TypedBlock[T]) AssignFromRange(src Block, start, length int) error {
	tsrc, err := b.typedSrc(src)
	if err != nil {
		return err
	}
	b.data = append(b.data[:0], tsrc.data[start:start+length]...)
	return nil
}

func (b *TypedBlock[T]) InsertRangeFrom(pos int, src Block, start, length int) error {
	tsrc, err := b.typedSrc(src)
	if err != nil {
		return err
	}
	b.data = slices.Insert(b.data, pos, tsrc.data[start:start+length]...)
	return nil
}

func (b *TypedBlock[T]) Erase(pos, count int) {
	b.data = slices.Delete(b.data, pos, pos+count)
}

func (b *TypedBlock[T]) Get(pos int) any { return b.data[pos] }

func (b *TypedBlock[T]) Set(pos int, v any) error {
	tv, err := b.value(v)
	if err != nil {
		return err
	}
	b.data[pos] = tv
	return nil
}

func (b *TypedBlock[T]) Equal(other Block) bool {
	tother, ok := other.(*TypedBlock[T])
	if !ok || tother.cat != b.cat || len(tother.data) != len(b.data) {
		return false
	}
	for i, v := range b.data {
		if tother.data[i] != v {
			return false
		}
	}
	return true
}
