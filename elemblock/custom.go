package elemblock

import (
	"reflect"

	"golang.org/x/exp/slices"

	"github.com/dot5enko/mdds/category"
)

// CustomBlock backs category.Custom, the user-extensible element category
// (spec.md section 2, item 1). It stores arbitrary values and compares them
// with reflect.DeepEqual since no comparable constraint applies.
type CustomBlock struct {
	data []any
}

func newCustom(size int) *CustomBlock {
	return &CustomBlock{data: make([]any, size)}
}

func (b *CustomBlock) Category() category.Category { return category.Custom }
func (b *CustomBlock) Len() int                     { return len(b.data) }

func (b *CustomBlock) Clone() Block {
	cloned := make([]any, len(b.data))
	copy(cloned, b.data)
	return &CustomBlock{data: cloned}
}

func (b *CustomBlock) Resize(newLen int) {
	switch {
	case newLen == len(b.data):
		return
	case newLen < len(b.data):
		b.data = b.data[:newLen]
	default:
		grown := make([]any, newLen)
		copy(grown, b.data)
		b.data = grown
	}
}

func (b *CustomBlock) Append(v any) error  { b.data = append(b.data, v); return nil }
func (b *CustomBlock) Prepend(v any) error { b.data = slices.Insert(b.data, 0, v); return nil }

func (b *CustomBlock) AppendRange(src Block) error {
	csrc := src.(*CustomBlock)
	b.data = append(b.data, csrc.data...)
	return nil
}

func (b *CustomBlock) AssignFromRange(src Block, start, length int) error {
	csrc := src.(*CustomBlock)
	b.data = append(b.data[:0], csrc.data[start:start+length]...)
	return nil
}

func (b *CustomBlock) InsertRangeFrom(pos int, src Block, start, length int) error {
	csrc := src.(*CustomBlock)
	b.data = slices.Insert(b.data, pos, csrc.data[start:start+length]...)
	return nil
}

func (b *CustomBlock) Erase(pos, count int) { b.data = slices.Delete(b.data, pos, pos+count) }
func (b *CustomBlock) Get(pos int) any      { return b.data[pos] }
func (b *CustomBlock) Set(pos int, v any) error {
	b.data[pos] = v
	return nil
}

func (b *CustomBlock) Equal(other Block) bool {
	cother, ok := other.(*CustomBlock)
	if !ok || len(cother.data) != len(b.data) {
		return false
	}
	for i, v := range b.data {
		if !reflect.DeepEqual(cother.data[i], v) {
			return false
		}
	}
	return true
}
