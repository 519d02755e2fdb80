package myers

// blockLen is the number of pattern rows covered by one column word.
const blockLen = 64

// block holds one word-sized slice of the edit distance column between the
// pattern and the text consumed so far. The column value of a row is never
// stored directly; only its delta against the row above is, as two bit flags
// per row, plus the materialized value of the word's last row.
type block struct {
	// pv has a bit set for each row in this word whose value is one more
	// than the row above.
	pv uint64

	// mv has a bit set for each row in this word whose value is one less
	// than the row above.
	mv uint64

	// lastRowMask selects the last pattern row stored in this word.
	lastRowMask uint64

	// score is the column value at the last row of this word.
	score int
}

// reset puts the block back to the start-of-text column, where every row is
// one more than the row above.
func (b *block) reset() {
	b.pv = ^uint64(0)
	b.mv = 0
}

// advance moves the block one text symbol forward.
//
// eq flags the rows of this word whose pattern symbol equals the consumed
// text symbol. hin is the horizontal delta entering the word's first row
// (-1, 0 or +1); the return value is the horizontal delta leaving its last
// row, to be fed into the next word of the column.
//
// This is the cell of Myers' algorithm: the single wrapping addition
// propagates match carries across all rows of the word at once, and the
// derived hp/hn (horizontal) and pv/mv (vertical) delta vectors update the
// whole word-slice of the column in a handful of bitwise operations.
func (b *block) advance(eq uint64, hin int) int {
	pv, mv := b.pv, b.mv

	var hinNeg uint64
	if hin < 0 {
		hinNeg = 1
	}
	eq |= hinNeg

	xv := eq | mv
	xh := (((eq & pv) + pv) ^ pv) | eq

	hp := mv | ^(xh | pv)
	hn := pv & xh

	hout := 0
	if hp&b.lastRowMask != 0 {
		hout++
	}
	if hn&b.lastRowMask != 0 {
		hout--
	}

	hp <<= 1
	hn <<= 1

	hn |= hinNeg
	if hin > 0 {
		hp |= 1
	}

	b.pv = hn | ^(xv | hp)
	b.mv = hp & xv

	return hout
}

// initColumn fills blocks with the start-of-text column for a pattern of
// length m: row i holds the value i, so the last row of word b holds the
// number of pattern rows at or above it.
func initColumn(blocks []block, m int) {
	last := len(blocks) - 1
	for b := range blocks {
		blocks[b].reset()
		if b == last {
			blocks[b].lastRowMask = 1 << ((m - 1) % blockLen)
			blocks[b].score = m
		} else {
			blocks[b].lastRowMask = 1 << (blockLen - 1)
			blocks[b].score = (b + 1) * blockLen
		}
	}
}
