package myers

// Masks is the alphabet mask table for one pattern: for every symbol value,
// one bitmask per column word, where bit j of word b is set iff pattern
// position b*64+j holds that symbol.
//
// The table is immutable after construction and may be shared freely across
// concurrent searches. Symbols that do not occur in the pattern all share a
// single zeroed row, so the table costs O(distinct symbols) words beyond the
// 256 row headers.
type Masks struct {
	rows   [256][]uint64
	blocks int
}

// NewMasks builds the mask table for pattern in O(len(pattern)).
func NewMasks(pattern []byte) *Masks {
	t := &Masks{blocks: (len(pattern) + blockLen - 1) / blockLen}

	zero := make([]uint64, t.blocks)
	for c := range t.rows {
		t.rows[c] = zero
	}

	var seen [256]bool
	for i, c := range pattern {
		if !seen[c] {
			seen[c] = true
			t.rows[c] = make([]uint64, t.blocks)
		}
		t.rows[c][i/blockLen] |= 1 << (i % blockLen)
	}
	return t
}

// Blocks returns the number of column words the pattern occupies.
func (t *Masks) Blocks() int {
	return t.blocks
}

// Row returns the per-word masks for symbol c. The returned slice is shared
// and must not be modified.
func (t *Masks) Row(c byte) []uint64 {
	return t.rows[c]
}
