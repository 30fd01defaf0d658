package blockseq

import "github.com/dot5enko/mdds/category"

// Get returns the category and value at row, per spec.md section 4.2. An
// empty row reports category.Empty and a nil value; tbv.Vector layers the
// category-default table on top for typed readers.
func (s *Sequence) Get(row int) (category.Category, any, error) {
	idx, start, err := s.Locate(row)
	if err != nil {
		return category.Empty, nil, err
	}
	blk := s.blocks[idx]
	if blk.IsEmpty() {
		return category.Empty, nil, nil
	}
	return blk.Data.Category(), blk.Data.Get(row - start), nil
}

// IsEmpty reports whether row falls in an empty block.
func (s *Sequence) IsEmpty(row int) (bool, error) {
	idx, _, err := s.Locate(row)
	if err != nil {
		return false, err
	}
	return s.blocks[idx].IsEmpty(), nil
}

// CategoryAt returns the category backing row without materializing its
// value; an empty row reports category.Empty. Supplements the distilled
// spec with the original's independent get_type() accessor (SPEC_FULL.md
// section 4).
func (s *Sequence) CategoryAt(row int) (category.Category, error) {
	idx, _, err := s.Locate(row)
	if err != nil {
		return category.Empty, err
	}
	blk := s.blocks[idx]
	if blk.IsEmpty() {
		return category.Empty, nil
	}
	return blk.Data.Category(), nil
}
