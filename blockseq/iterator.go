package blockseq

import (
	"github.com/dot5enko/mdds/category"
	"github.com/dot5enko/mdds/elemblock"
)

// BlockView is a read-only snapshot of one block, as produced by the block
// iterator described in spec.md section 4.8.
type BlockView struct {
	Category   category.Category // category.Empty for an empty block
	Size       int
	StartRow   int
	BlockIndex int
	Data       elemblock.Block // nil for an empty block
}

// BlockViews returns, in order, a snapshot view of every block. The
// snapshot is a plain slice rather than a live cursor: per spec.md section
// 4.8, any mutating operation on the vector invalidates a block iterator,
// so there is no benefit to a lazily-advancing cursor a caller could hold
// across a mutation.
func (s *Sequence) BlockViews() []BlockView {
	s.ensureStarts()
	views := make([]BlockView, len(s.blocks))
	for i, b := range s.blocks {
		cat := category.Empty
		if !b.IsEmpty() {
			cat = b.Data.Category()
		}
		views[i] = BlockView{
			Category:   cat,
			Size:       b.Size,
			StartRow:   s.starts[i],
			BlockIndex: i,
			Data:       b.Data,
		}
	}
	return views
}

// ReverseBlockViews returns the same views as BlockViews but in reverse
// block order, matching the symmetry spec.md section 4.8 requires between
// forward and reverse iteration.
func (s *Sequence) ReverseBlockViews() []BlockView {
	views := s.BlockViews()
	for i, j := 0, len(views)-1; i < j; i, j = i+1, j-1 {
		views[i], views[j] = views[j], views[i]
	}
	return views
}
