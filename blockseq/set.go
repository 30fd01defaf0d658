package blockseq

import "github.com/dot5enko/mdds/category"

// Set writes value at row, implementing the point-set rewrite rules of
// spec.md section 4.3 (cases A and B1-B4).
func (s *Sequence) Set(row int, value any) error {
	idx, start, err := s.Locate(row)
	if err != nil {
		return err
	}

	cat := category.Of(value)
	blk := s.blocks[idx]
	offset := row - start

	if !blk.IsEmpty() && blk.Data.Category() == cat {
		// Case A: same category, overwrite in place.
		return blk.Data.Set(offset, value)
	}

	// Case B: block must be broken.
	switch {
	case blk.Size == 1:
		return s.setReplaceSingleton(idx, cat, value)
	case offset == 0:
		return s.setAtTop(idx, cat, value)
	case offset == blk.Size-1:
		return s.setAtBottom(idx, cat, value)
	default:
		return s.setInterior(idx, offset, cat, value)
	}
}

// setAtTop handles B2: the insertion point is at the top of a block whose
// size is greater than 1.
func (s *Sequence) setAtTop(idx int, cat category.Category, value any) error {
	blk := s.blocks[idx]
	if !blk.IsEmpty() {
		blk.Data.Erase(0, 1)
	}
	blk.Size--

	if idx > 0 {
		prev := s.blocks[idx-1]
		if !prev.IsEmpty() && prev.Data.Category() == cat {
			if err := prev.Data.Append(value); err != nil {
				return err
			}
			prev.Size++
			s.invalidate()
			return nil
		}
	}

	newBlk, err := singleton(cat, value)
	if err != nil {
		return err
	}
	s.insertBlockAt(idx, newBlk)
	return nil
}

// setAtBottom handles B3: the insertion point is at the bottom of a block
// whose size is greater than 1.
func (s *Sequence) setAtBottom(idx int, cat category.Category, value any) error {
	blk := s.blocks[idx]
	if !blk.IsEmpty() {
		blk.Data.Erase(blk.Size-1, 1)
	}
	blk.Size--

	if idx+1 < len(s.blocks) {
		next := s.blocks[idx+1]
		if !next.IsEmpty() && next.Data.Category() == cat {
			if err := next.Data.Prepend(value); err != nil {
				return err
			}
			next.Size++
			s.invalidate()
			return nil
		}
	}

	newBlk, err := singleton(cat, value)
	if err != nil {
		return err
	}
	s.insertBlockAt(idx+1, newBlk)
	return nil
}

// setInterior handles B1: the insertion point is strictly inside a block,
// splitting it into three.
func (s *Sequence) setInterior(idx, offset int, cat category.Category, value any) error {
	blk := s.blocks[idx]

	lower := subrangeBlock(blk, 0, offset)
	upper := subrangeBlock(blk, offset+1, blk.Size-offset-1)

	middle, err := singleton(cat, value)
	if err != nil {
		return err
	}

	s.replaceBlockWith(idx, lower, middle, upper)
	return nil
}

// setReplaceSingleton handles B4: the entire block (size 1) is replaced.
func (s *Sequence) setReplaceSingleton(idx int, cat category.Category, value any) error {
	var prev, next *Block
	if idx > 0 {
		prev = s.blocks[idx-1]
	}
	if idx+1 < len(s.blocks) {
		next = s.blocks[idx+1]
	}

	prevMatches := prev != nil && !prev.IsEmpty() && prev.Data.Category() == cat
	nextMatches := next != nil && !next.IsEmpty() && next.Data.Category() == cat

	switch {
	case prevMatches && nextMatches:
		if err := prev.Data.Append(value); err != nil {
			return err
		}
		prev.Size++
		if err := prev.Data.AppendRange(next.Data); err != nil {
			return err
		}
		prev.Size += next.Size
		s.blocks = append(s.blocks[:idx], s.blocks[idx+2:]...)
		s.invalidate()
		return nil
	case prevMatches:
		if err := prev.Data.Append(value); err != nil {
			return err
		}
		prev.Size++
		s.blocks = append(s.blocks[:idx], s.blocks[idx+1:]...)
		s.invalidate()
		return nil
	case nextMatches:
		if err := next.Data.Prepend(value); err != nil {
			return err
		}
		next.Size++
		s.blocks = append(s.blocks[:idx], s.blocks[idx+1:]...)
		s.invalidate()
		return nil
	default:
		newBlk, err := singleton(cat, value)
		if err != nil {
			return err
		}
		s.blocks[idx] = newBlk
		s.invalidate()
		return nil
	}
}
