package blockseq

// Clone returns an independent, deep copy of the sequence: every element
// block is cloned, matching spec.md section 4.8's Clone contract.
func (s *Sequence) Clone() *Sequence {
	cloned := &Sequence{size: s.size, blocks: make([]*Block, len(s.blocks))}
	for i, b := range s.blocks {
		nb := &Block{Size: b.Size}
		if !b.IsEmpty() {
			nb.Data = b.Data.Clone()
		}
		cloned.blocks[i] = nb
	}
	return cloned
}

// Equal reports whether two sequences have the same total size and the
// same block sequence: same block count, pairwise equal by category and
// element content (spec.md section 4.8).
func (s *Sequence) Equal(other *Sequence) bool {
	if s.size != other.size || len(s.blocks) != len(other.blocks) {
		return false
	}
	for i, b := range s.blocks {
		ob := other.blocks[i]
		if b.Size != ob.Size || b.IsEmpty() != ob.IsEmpty() {
			return false
		}
		if !b.IsEmpty() && !b.Data.Equal(ob.Data) {
			return false
		}
	}
	return true
}
