package blockseq

import (
	"github.com/dot5enko/mdds/category"
	"github.com/dot5enko/mdds/elemblock"
	"github.com/dot5enko/mdds/mddserr"
)

// SetRange writes values, a homogeneous element block of category cat,
// starting at row. Implements spec.md section 4.4.
func (s *Sequence) SetRange(row int, cat category.Category, values elemblock.Block) error {
	length := values.Len()
	if length == 0 {
		return nil
	}
	if row < 0 || row+length > s.size {
		return mddserr.ErrOutOfRange
	}

	endRow := row + length - 1
	startIdx, startStart, err := s.Locate(row)
	if err != nil {
		return err
	}
	endIdx, endStart, err := s.Locate(endRow)
	if err != nil {
		return err
	}

	if startIdx == endIdx {
		return s.setRangeSingleBlock(startIdx, startStart, row, endRow, values)
	}
	return s.setRangeMultiBlock(startIdx, startStart, endIdx, endStart, row, endRow, values)
}

func (s *Sequence) setRangeSingleBlock(idx, blockStart, row, endRow int, values elemblock.Block) error {
	blk := s.blocks[idx]
	offsetStart := row - blockStart
	offsetEnd := endRow - blockStart

	switch {
	case offsetStart == 0 && offsetEnd == blk.Size-1:
		// (a) whole block replaced.
		blk.Data = values.Clone()
		blk.Size = values.Len()
		s.invalidate()
		s.fuseAt(idx)
		return nil

	case offsetStart == 0:
		// (b) upper part: shrink from the front, insert new block before.
		remaining := blk.Size - values.Len()
		if !blk.IsEmpty() {
			blk.Data.Erase(0, values.Len())
		}
		blk.Size = remaining
		s.insertBlockAt(idx, &Block{Size: values.Len(), Data: values.Clone()})
		s.fuseAt(idx)
		return nil

	case offsetEnd == blk.Size-1:
		// (c) lower part: shrink from the back, insert new block after.
		remaining := blk.Size - values.Len()
		if !blk.IsEmpty() {
			blk.Data.Erase(remaining, values.Len())
		}
		blk.Size = remaining
		s.insertBlockAt(idx+1, &Block{Size: values.Len(), Data: values.Clone()})
		s.fuseAt(idx + 1)
		return nil

	default:
		// (d) interior: overwrite in place when the block already has the
		// values' category, otherwise three-way split.
		if !blk.IsEmpty() && blk.Data.Category() == values.Category() {
			for i := 0; i < values.Len(); i++ {
				if err := blk.Data.Set(offsetStart+i, values.Get(i)); err != nil {
					return err
				}
			}
			return nil
		}
		before := subrangeBlock(blk, 0, offsetStart)
		after := subrangeBlock(blk, offsetEnd+1, blk.Size-offsetEnd-1)
		middle := &Block{Size: values.Len(), Data: values.Clone()}
		s.replaceBlockWith(idx, before, middle, after)
		return nil
	}
}

func (s *Sequence) setRangeMultiBlock(startIdx, startStart, endIdx, endStart, row, endRow int, values elemblock.Block) error {
	firstBlk := s.blocks[startIdx]
	lastBlk := s.blocks[endIdx]

	// Partial overlap of boundary blocks (spec.md section 4.4): the
	// portion of the first block preceding row, and the portion of the
	// last block following endRow, survive with their original category.
	offStart := row - startStart
	offEnd := endRow - endStart

	var keepFirst, keepLast *Block
	if offStart > 0 {
		keepFirst = subrangeBlock(firstBlk, 0, offStart)
	}
	if offEnd+1 < lastBlk.Size {
		keepLast = subrangeBlock(lastBlk, offEnd+1, lastBlk.Size-offEnd-1)
	}

	replacement := make([]*Block, 0, 3)
	if keepFirst != nil {
		replacement = append(replacement, keepFirst)
	}
	replacement = append(replacement, &Block{Size: values.Len(), Data: values.Clone()})
	if keepLast != nil {
		replacement = append(replacement, keepLast)
	}

	newBlocks := make([]*Block, 0, len(s.blocks)-(endIdx-startIdx+1)+len(replacement))
	newBlocks = append(newBlocks, s.blocks[:startIdx]...)
	newBlocks = append(newBlocks, replacement...)
	newBlocks = append(newBlocks, s.blocks[endIdx+1:]...)
	s.blocks = newBlocks
	s.invalidate()

	newIdx := startIdx
	if keepFirst != nil {
		newIdx++
	}
	s.fuseAt(newIdx)
	return nil
}
