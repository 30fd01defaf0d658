package blockseq

import "github.com/dot5enko/mdds/mddserr"

// InsertEmpty grows the sequence by length by inserting length empty rows
// before row, per spec.md section 4.6.
func (s *Sequence) InsertEmpty(row, length int) error {
	if length == 0 {
		return nil
	}
	if row < 0 || row > s.size {
		return mddserr.ErrOutOfRange
	}

	if row == s.size {
		if n := len(s.blocks); n > 0 && s.blocks[n-1].IsEmpty() {
			s.blocks[n-1].Size += length
		} else {
			s.blocks = append(s.blocks, &Block{Size: length})
		}
		s.size += length
		s.invalidate()
		return nil
	}

	idx, start, err := s.Locate(row)
	if err != nil {
		return err
	}
	blk := s.blocks[idx]
	offset := row - start

	switch {
	case blk.IsEmpty():
		// Insertion into an existing empty block: grow it in place.
		blk.Size += length

	case offset == 0:
		// Insertion at the start of a data block.
		if idx > 0 && s.blocks[idx-1].IsEmpty() {
			s.blocks[idx-1].Size += length
		} else {
			s.insertBlockAt(idx, &Block{Size: length})
		}

	default:
		// Insertion strictly inside a data block: split into two data
		// blocks of the same category with a new empty block between.
		before := subrangeBlock(blk, 0, offset)
		empty := &Block{Size: length}
		after := subrangeBlock(blk, offset, blk.Size-offset)
		s.replaceBlockWith(idx, before, empty, after)
	}

	s.size += length
	s.invalidate()
	return nil
}
