// Package myers implements Myers' bit-parallel algorithm for approximate
// substring search: finding every substring of a text within a bounded edit
// distance (insertions, deletions, substitutions, all costing 1) of a
// pattern.
//
// The engine encodes one column of the classic edit distance matrix as two
// delta bit-vectors per 64 pattern rows and advances the whole column by one
// text symbol with a constant number of word operations per 64 rows, giving
// O(n * ceil(m/64)) worst-case time for a text of length n and a pattern of
// length m. A cutoff over the column words bounds the work per symbol by the
// error budget instead of the pattern length, for O(n * ceil(k/64)) expected
// time.
//
// The search uses the substring (not whole-string) boundary condition: the
// first matrix row is held at zero, so an alignment may start at any text
// position for free. The forward scan therefore yields, for each end offset,
// the minimum distance over all starts; a bounded backward replay with the
// reversed pattern then recovers the start offset of each reported match.
//
// References:
//
//	G. Myers, "A Fast Bit-Vector Algorithm for Approximate String Matching
//	Based on Dynamic Programming", J. ACM 46(3), 1999.
//
//	H. Hyyrö, "Explaining and extending the bit-parallel approximate string
//	matching algorithm of Myers", 2001.
package myers

import "sync"

// Engine is a pattern compiled for approximate search.
//
// An Engine is immutable after compilation and safe for concurrent use: all
// per-search state lives on the calling goroutine, and the shared mask
// tables are read-only. Compile once, search many texts.
type Engine struct {
	pattern []byte
	blocks  int

	// masks holds the per-symbol position bitmasks of the pattern, revMasks
	// those of the reversed pattern (used to recover match starts).
	masks    *Masks
	revMasks *Masks

	// columns recycles per-search column state across calls.
	columns sync.Pool
}

// Compile builds a search engine for pattern.
//
// Returns a *LimitError (wrapping ErrPatternTooLong) if the pattern occupies
// more column words than config.MaxBlocks allows.
//
// Example:
//
//	engine, err := myers.Compile([]byte("needle"), myers.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	matches, _ := engine.Search([]byte("a needle in a haystack"), 1)
func Compile(pattern []byte, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	blocks := (len(pattern) + blockLen - 1) / blockLen
	if blocks > config.MaxBlocks {
		return nil, &LimitError{
			PatternLen: len(pattern),
			MaxLen:     config.MaxBlocks * blockLen,
		}
	}

	e := &Engine{
		pattern: append([]byte(nil), pattern...),
		blocks:  blocks,
	}

	if blocks > 0 {
		rev := make([]byte, len(e.pattern))
		for i, c := range e.pattern {
			rev[len(rev)-1-i] = c
		}
		e.masks = NewMasks(e.pattern)
		e.revMasks = NewMasks(rev)
	}

	return e, nil
}

// Pattern returns the compiled pattern. The returned slice is shared and
// must not be modified.
func (e *Engine) Pattern() []byte {
	return e.pattern
}

// getColumn fetches a recycled column of the right width, or allocates one.
func (e *Engine) getColumn() []block {
	if col, ok := e.columns.Get().(*[]block); ok {
		return *col
	}
	return make([]block, e.blocks)
}

func (e *Engine) putColumn(col []block) {
	e.columns.Put(&col)
}
