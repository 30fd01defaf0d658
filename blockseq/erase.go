package blockseq

import "github.com/dot5enko/mdds/mddserr"

// Erase removes rows [start, end] inclusive, per spec.md section 4.6,
// reconciling neighboring blocks afterward to restore the non-coalesced
// invariant.
func (s *Sequence) Erase(start, end int) error {
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

	span := end - start + 1
	s.size -= span

	if startIdx == endIdx {
		blk := s.blocks[startIdx]
		offset := start - startStart
		if !blk.IsEmpty() {
			blk.Data.Erase(offset, span)
		}
		blk.Size -= span

		if blk.Size == 0 {
			s.blocks = append(s.blocks[:startIdx], s.blocks[startIdx+1:]...)
			s.invalidate()
			s.fuseSeam(startIdx)
			return nil
		}
		s.invalidate()
		return nil
	}

	firstBlk := s.blocks[startIdx]
	lastBlk := s.blocks[endIdx]
	offStart := start - startStart
	offEnd := end - endStart

	keepFirst := offStart > 0
	if keepFirst {
		if !firstBlk.IsEmpty() {
			firstBlk.Data.Erase(offStart, firstBlk.Size-offStart)
		}
		firstBlk.Size = offStart
	}

	keepLast := offEnd+1 < lastBlk.Size
	if keepLast {
		remain := lastBlk.Size - offEnd - 1
		if !lastBlk.IsEmpty() {
			lastBlk.Data.Erase(0, offEnd+1)
		}
		lastBlk.Size = remain
	}

	delStart := startIdx
	if keepFirst {
		delStart = startIdx + 1
	}
	delEnd := endIdx
	if keepLast {
		delEnd = endIdx - 1
	}
	if delEnd >= delStart {
		s.blocks = append(s.blocks[:delStart], s.blocks[delEnd+1:]...)
	}
	s.invalidate()
	s.fuseSeam(delStart)
	return nil
}

// fuseSeam merges the pair of blocks that became adjacent at splice point
// idx (the block now at idx-1 and the block now at idx), if they turned out
// to share a category or are both empty.
func (s *Sequence) fuseSeam(idx int) {
	seam := idx - 1
	if seam < 0 {
		seam = 0
	}
	if seam < len(s.blocks) {
		s.fuseAt(seam)
	}
}
