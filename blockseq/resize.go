package blockseq

// Resize grows or shrinks the sequence to newSize, per spec.md section 4.8.
func (s *Sequence) Resize(newSize int) {
	switch {
	case newSize == s.size:
		return

	case newSize == 0:
		s.Clear()

	case newSize > s.size:
		delta := newSize - s.size
		if n := len(s.blocks); n > 0 && s.blocks[n-1].IsEmpty() {
			s.blocks[n-1].Size += delta
		} else {
			s.blocks = append(s.blocks, &Block{Size: delta})
		}
		s.size = newSize
		s.invalidate()

	default:
		idx, start, _ := s.Locate(newSize - 1)
		blk := s.blocks[idx]
		keep := newSize - start
		if !blk.IsEmpty() {
			blk.Data.Resize(keep)
		}
		blk.Size = keep
		s.blocks = s.blocks[:idx+1]
		s.size = newSize
		s.invalidate()
	}
}
