package blockseq

import (
	"sort"

	"github.com/dot5enko/mdds/category"
	"github.com/dot5enko/mdds/elemblock"
	"github.com/dot5enko/mdds/mddserr"
)

// Sequence is the ordered list of blocks described in spec.md section 3. It
// owns every block and element block it holds; callers reach it only
// through tbv.Vector.
type Sequence struct {
	blocks []*Block
	size   int

	// starts is the optional lookup-acceleration structure named in
	// spec.md section 9: a lazily rebuilt prefix-sum array of block
	// sizes. It is invalidated on every mutation and rebuilt on next
	// lookup, never kept consistent mid-mutation.
	starts      []int
	startsValid bool
}

// New returns an empty sequence of zero size.
func New() *Sequence {
	return &Sequence{}
}

// NewSized returns a sequence covering size rows as a single empty block.
// With size == 0 it is equivalent to New.
func NewSized(size int) *Sequence {
	s := &Sequence{size: size}
	if size > 0 {
		s.blocks = []*Block{{Size: size}}
	}
	return s
}

// NewFilled returns a sequence covering size rows as a single data block of
// the given category, filled via fill, which must write size values
// starting at position 0.
func NewFilled(cat category.Category, size int, fill func(elemblock.Block)) *Sequence {
	if size == 0 {
		return New()
	}
	data := elemblock.New(cat, size)
	if fill != nil {
		fill(data)
	}
	return &Sequence{size: size, blocks: []*Block{{Size: size, Data: data}}}
}

// Size returns the total number of logical rows.
func (s *Sequence) Size() int { return s.size }

// BlockCount returns the number of blocks in the sequence.
func (s *Sequence) BlockCount() int { return len(s.blocks) }

// Clear empties the sequence down to size 0.
func (s *Sequence) Clear() {
	s.blocks = nil
	s.size = 0
	s.invalidate()
}

func (s *Sequence) invalidate() { s.startsValid = false }

func (s *Sequence) ensureStarts() {
	if s.startsValid {
		return
	}
	s.starts = make([]int, len(s.blocks))
	acc := 0
	for i, b := range s.blocks {
		s.starts[i] = acc
		acc += b.Size
	}
	s.startsValid = true
}

// Locate returns the (block_index, start_row) pair containing row, per
// spec.md section 4.1. A forward binary search over the acceleration index
// is used; LocateFrom below supports the resume variant the spec allows for
// consecutive lookups.
func (s *Sequence) Locate(row int) (blockIndex, startRow int, err error) {
	if row < 0 || row >= s.size {
		return 0, 0, mddserr.ErrOutOfRange
	}
	s.ensureStarts()
	idx := sort.Search(len(s.blocks), func(i int) bool {
		return s.starts[i]+s.blocks[i].Size > row
	})
	return idx, s.starts[idx], nil
}

// LocateFrom resumes a lookup from a previously returned (hintIndex,
// hintStart) position, scanning forward or backward as needed. It is the
// "resume from hint" acceleration spec.md section 4.1 permits for range
// operations that probe consecutive rows.
func (s *Sequence) LocateFrom(hintIndex, hintStart, row int) (blockIndex, startRow int, err error) {
	if row < 0 || row >= s.size {
		return 0, 0, mddserr.ErrOutOfRange
	}
	if hintIndex < 0 || hintIndex >= len(s.blocks) {
		return s.Locate(row)
	}
	idx, start := hintIndex, hintStart
	for start > row {
		idx--
		start -= s.blocks[idx].Size
	}
	for start+s.blocks[idx].Size <= row {
		start += s.blocks[idx].Size
		idx++
	}
	return idx, start, nil
}

// insertBlockAt inserts blk at position idx, shifting later blocks right.
func (s *Sequence) insertBlockAt(idx int, blk *Block) {
	s.blocks = append(s.blocks, nil)
	copy(s.blocks[idx+1:], s.blocks[idx:])
	s.blocks[idx] = blk
	s.invalidate()
}

// replaceBlockWith replaces the block at idx with the given blocks,
// dropping any with Size == 0 (a convenience for split helpers whose outer
// pieces may be empty spans of zero width).
func (s *Sequence) replaceBlockWith(idx int, blocks ...*Block) {
	replacement := make([]*Block, 0, len(blocks))
	for _, b := range blocks {
		if b.Size > 0 {
			replacement = append(replacement, b)
		}
	}
	newBlocks := make([]*Block, 0, len(s.blocks)-1+len(replacement))
	newBlocks = append(newBlocks, s.blocks[:idx]...)
	newBlocks = append(newBlocks, replacement...)
	newBlocks = append(newBlocks, s.blocks[idx+1:]...)
	s.blocks = newBlocks
	s.invalidate()
}

// mergeInto absorbs block j into block i (i < j), concatenating element
// data if both are data blocks, and removes j from the sequence.
func (s *Sequence) mergeInto(i, j int) {
	a, b := s.blocks[i], s.blocks[j]
	if !a.IsEmpty() {
		_ = a.Data.AppendRange(b.Data)
	}
	a.Size += b.Size
	s.blocks = append(s.blocks[:j], s.blocks[j+1:]...)
	s.invalidate()
}

// fuseAt restores the non-coalesced invariant around idx by merging it with
// a matching successor and/or predecessor. Every mutation helper that can
// create a fresh adjacency (insert, split, replace) must call this on the
// position(s) it touched.
func (s *Sequence) fuseAt(idx int) {
	if idx < 0 || idx >= len(s.blocks) {
		return
	}
	if idx+1 < len(s.blocks) && sameCategory(s.blocks[idx], s.blocks[idx+1]) {
		s.mergeInto(idx, idx+1)
	}
	if idx > 0 && sameCategory(s.blocks[idx-1], s.blocks[idx]) {
		s.mergeInto(idx-1, idx)
	}
}

func singleton(cat category.Category, value any) (*Block, error) {
	data := elemblock.New(cat, 1)
	if err := data.Set(0, value); err != nil {
		return nil, err
	}
	return &Block{Size: 1, Data: data}, nil
}

func subrangeBlock(src *Block, start, length int) *Block {
	if length == 0 {
		return &Block{Size: 0}
	}
	if src.IsEmpty() {
		return &Block{Size: length}
	}
	data := elemblock.New(src.Data.Category(), 0)
	_ = data.AssignFromRange(src.Data, start, length)
	return &Block{Size: length, Data: data}
}
