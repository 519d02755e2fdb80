package myers

// Search scans text and returns every approximate occurrence of the
// engine's pattern within maxErrors edits, ordered by end offset, with at
// most one match per end offset. Each reported error count is the exact
// edit distance between the matched substring and the pattern, and the
// reported substring is the longest one achieving that distance at its end
// offset.
//
// maxErrors larger than the pattern length is clamped to it, so every
// reported error count is at most min(maxErrors, len(pattern)).
//
// An empty pattern matches the empty string at every text offset: the
// result is len(text)+1 zero-error, zero-length matches.
//
// The text is only read during the call; the returned matches reference it
// but the engine retains nothing, so the same engine may search many texts,
// concurrently if desired.
func (e *Engine) Search(text []byte, maxErrors int) ([]Match, error) {
	if maxErrors < 0 {
		return nil, ErrMaxErrorsNegative
	}

	if len(e.pattern) == 0 {
		matches := make([]Match, len(text)+1)
		for i := range matches {
			matches[i] = Match{start: i, end: i, haystack: text}
		}
		return matches, nil
	}

	matches := e.findMatchEnds(text, maxErrors)
	for i := range matches {
		matches[i].start = e.resolveStart(text, matches[i].end, matches[i].errors)
	}
	return matches, nil
}

// findMatchEnds runs the forward scan: one column step per text symbol,
// recording a match for every end offset whose minimum distance over all
// alignment starts is within budget.
//
// Only the leading column words whose scores can still come back under
// budget are advanced. y tracks the last active word: it grows by one when
// the word below the active region could drop within budget, and shrinks
// when trailing scores are hopeless, following Fig. 8 of Myers' paper and
// the block condition of Hyyrö.
func (e *Engine) findMatchEnds(text []byte, maxErrors int) []Match {
	m := len(e.pattern)
	if maxErrors > m {
		maxErrors = m
	}

	col := e.getColumn()
	defer e.putColumn(col)
	initColumn(col, m)

	last := e.blocks - 1
	y := 0
	if maxErrors > 0 {
		y = (maxErrors+blockLen-1)/blockLen - 1
	}

	var matches []Match
	for j := 0; j < len(text); j++ {
		eq := e.masks.Row(text[j])

		carry := 0
		for b := 0; b <= y; b++ {
			carry = col[b].advance(eq[b], carry)
			col[b].score += carry
		}

		if y < last && col[y].score-carry <= maxErrors &&
			(eq[y+1]&1 != 0 || carry < 0) {
			// The word below the active region could come within budget:
			// extend the region and give the new word a fresh column.
			y++
			col[y].reset()
			rows := blockLen
			if y == last {
				rows = (m-1)%blockLen + 1
			}
			col[y].score = col[y-1].score + rows - carry +
				col[y].advance(eq[y], carry)
		} else {
			// Retire trailing words whose scores cannot recover: a word can
			// improve by at most one per row on the way back down.
			for y > 0 && col[y].score >= maxErrors+blockLen {
				y--
			}
		}

		if y == last && col[y].score <= maxErrors {
			matches = append(matches, Match{
				end:      j + 1,
				errors:   col[y].score,
				haystack: text,
			})
		}
	}

	return matches
}

// resolveStart recovers the start offset of a match ending at end with the
// given error count.
//
// The forward scan only knows the minimum distance over all starts, so the
// distance computation is replayed backward from end with the reversed
// pattern. Unlike the forward scan, the replay is anchored: the first
// matrix row pays one edit per symbol instead of restarting for free, so
// after consuming L symbols the column's last score is exactly the edit
// distance between text[end-L:end] and the pattern. The replay never needs
// to look back more than len(pattern)+errors symbols, since any longer
// alignment costs more than errors in deletions alone.
//
// Among the suffix lengths achieving exactly the recorded distance, the
// longest wins, so ties between alignments at one end offset resolve to the
// longest match.
func (e *Engine) resolveStart(text []byte, end, errors int) int {
	m := len(e.pattern)

	window := m + errors
	if window > end {
		window = end
	}

	col := e.getColumn()
	defer e.putColumn(col)
	initColumn(col, m)

	best := -1
	if errors == m {
		// The empty suffix already costs exactly m deletions.
		best = 0
	}

	for i := 0; i < window; i++ {
		eq := e.revMasks.Row(text[end-1-i])

		carry := 1
		for b := range col {
			carry = col[b].advance(eq[b], carry)
			col[b].score += carry
		}

		if col[len(col)-1].score == errors {
			best = i + 1
		}
	}

	if best < 0 {
		// Unreachable: the forward scan guarantees some suffix in the
		// window achieves exactly this distance.
		best = 0
	}
	return end - best
}
