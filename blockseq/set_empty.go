package blockseq

import "github.com/dot5enko/mdds/mddserr"

// SetEmpty sets rows [start, end] (inclusive) to empty, per spec.md
// section 4.5.
func (s *Sequence) SetEmpty(start, end int) error {
	if start < 0 || end >= s.size || start > end {
		return mddserr.ErrOutOfRange
	}

	startIdx, startStart, err := s.Locate(start)
	if err != nil {
		return err
	}
	endIdx, endStart, err := s.Locate(end)
	if err != nil {
		return err
	}

	if startIdx == endIdx {
		return s.setEmptySingleBlock(startIdx, startStart, start, end)
	}
	return s.setEmptyMultiBlock(startIdx, startStart, endIdx, endStart, start, end)
}

func (s *Sequence) setEmptySingleBlock(idx, blockStart, start, end int) error {
	blk := s.blocks[idx]
	if blk.IsEmpty() {
		// (a) no-op: block was already empty.
		return nil
	}

	offsetStart := start - blockStart
	offsetEnd := end - blockStart

	switch {
	case offsetStart == 0 && offsetEnd == blk.Size-1:
		// (b) whole block becomes empty.
		blk.Data = nil
		s.invalidate()
		s.fuseAt(idx)

	case offsetStart == 0:
		// (c) upper part becomes empty: erase from front, prepend empty block.
		span := offsetEnd + 1
		blk.Data.Erase(0, span)
		blk.Size -= span
		s.insertBlockAt(idx, &Block{Size: span})
		s.fuseAt(idx)

	case offsetEnd == blk.Size-1:
		// (d) lower part becomes empty: erase from back, append empty block.
		span := offsetEnd - offsetStart + 1
		blk.Data.Erase(offsetStart, span)
		blk.Size = offsetStart
		s.insertBlockAt(idx+1, &Block{Size: span})
		s.fuseAt(idx + 1)

	default:
		// (e) interior becomes empty: split into data / empty / data.
		before := subrangeBlock(blk, 0, offsetStart)
		empty := &Block{Size: offsetEnd - offsetStart + 1}
		after := subrangeBlock(blk, offsetEnd+1, blk.Size-offsetEnd-1)
		s.replaceBlockWith(idx, before, empty, after)
	}
	return nil
}

func (s *Sequence) setEmptyMultiBlock(startIdx, startStart, endIdx, endStart, start, end int) error {
	firstBlk := s.blocks[startIdx]
	lastBlk := s.blocks[endIdx]

	offStart := start - startStart
	offEnd := end - endStart

	// If a boundary block was already empty, widen the erased span to
	// cover its entire range so the new empty run coalesces with
	// pre-existing emptiness (spec.md section 4.5, step 2/3).
	effStart, effEnd := start, end
	var keepFirst, keepLast *Block
	if firstBlk.IsEmpty() {
		effStart = startStart
	} else if offStart > 0 {
		keepFirst = subrangeBlock(firstBlk, 0, offStart)
	}
	if lastBlk.IsEmpty() {
		effEnd = endStart + lastBlk.Size - 1
	} else if offEnd+1 < lastBlk.Size {
		keepLast = subrangeBlock(lastBlk, offEnd+1, lastBlk.Size-offEnd-1)
	}

	replacement := make([]*Block, 0, 3)
	if keepFirst != nil {
		replacement = append(replacement, keepFirst)
	}
	replacement = append(replacement, &Block{Size: effEnd - effStart + 1})
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
