// Package blockseq implements the block sequence at the heart of the typed
// block vector (spec.md section 3): an ordered list of blocks whose sizes
// sum to the vector's total length, with the non-coalesced invariant that no
// two adjacent blocks are both empty and no two adjacent data blocks share a
// category.
//
// Grounded on the column<Trait> block list in the original mdds sources
// (include/mdds/grid_map_column_def.inl) and, for the Go idiom of pairing a
// size with an owned typed payload, on block.RuntimeBlockData (block/runtime_data.go)
// in the teacher repository.
package blockseq

import "github.com/dot5enko/mdds/elemblock"

// Block is a single run of the sequence: size rows, either an owned
// element block (a data block) or none (an empty block). Size is always
// >= 1 at every public-API boundary (spec.md section 3's non-degenerate
// invariant).
type Block struct {
	Size int
	Data elemblock.Block
}

// IsEmpty reports whether this block carries no element block.
func (b *Block) IsEmpty() bool { return b.Data == nil }

func sameCategory(a, b *Block) bool {
	if a.IsEmpty() != b.IsEmpty() {
		return false
	}
	if a.IsEmpty() {
		return true
	}
	return a.Data.Category() == b.Data.Category()
}
