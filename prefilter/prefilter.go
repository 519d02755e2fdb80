// Package prefilter narrows approximate substring search to candidate
// regions of the text using exact multi-pattern matching.
//
// The pattern is split into maxErrors+1 contiguous pieces. If a substring of
// the text is within maxErrors edits of the pattern, the edits touch at most
// maxErrors of the pieces, so at least one piece survives untouched and
// occurs verbatim in the substring. Exact occurrences of the pieces, found
// with an Aho-Corasick automaton, therefore bound the regions the verifying
// engine has to scan; text with no piece occurrence cannot match at all.
//
// Windows are widened by len(pattern)+maxErrors on both sides of each piece
// occurrence and merged when they touch, which makes windowed verification
// equivalent to a full scan: a qualifying alignment is never longer than
// len(pattern)+maxErrors, so it fits inside the window of the piece
// occurrence it contains, and any better alignment ending at the same offset
// is itself a qualifying match whose own window merges into the same region.
package prefilter

import (
	"errors"

	"github.com/coregx/ahocorasick"
)

// ErrBudgetTooLarge indicates the error budget leaves no room for non-empty
// pattern pieces (maxErrors+1 pieces need maxErrors+1 symbols).
var ErrBudgetTooLarge = errors.New("error budget too large for pattern pieces")

// Window is a half-open candidate region [Start, End) of the text.
type Window struct {
	Start int
	End   int
}

// Len returns the window length in symbols.
func (w Window) Len() int {
	return w.End - w.Start
}

// Filter finds candidate windows for one (pattern, maxErrors) pair.
//
// A Filter is immutable after construction and safe for concurrent use.
type Filter struct {
	auto   *ahocorasick.Automaton
	margin int
}

// New builds a filter for searches of pattern with the given error budget.
// The budget must be non-negative and strictly smaller than the pattern
// length, so that every piece is non-empty.
func New(pattern []byte, maxErrors int) (*Filter, error) {
	if maxErrors < 0 || maxErrors >= len(pattern) {
		return nil, ErrBudgetTooLarge
	}

	pieces := Split(pattern, maxErrors+1)

	builder := ahocorasick.NewBuilder()
	for _, piece := range pieces {
		builder.AddPattern(piece)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return &Filter{
		auto:   auto,
		margin: len(pattern) + maxErrors,
	}, nil
}

// Split partitions pattern into n non-empty contiguous pieces of near-equal
// length, longer pieces first. Returns nil if the pattern has fewer than n
// symbols (or n is not positive).
func Split(pattern []byte, n int) [][]byte {
	if n <= 0 || len(pattern) < n {
		return nil
	}

	pieces := make([][]byte, 0, n)
	size := len(pattern) / n
	rem := len(pattern) % n

	at := 0
	for i := 0; i < n; i++ {
		l := size
		if i < rem {
			l++
		}
		pieces = append(pieces, pattern[at:at+l])
		at += l
	}
	return pieces
}

// Windows returns the merged candidate regions of text in increasing order.
// An empty result means no piece occurs in the text, so no substring of it
// can be within budget of the pattern.
func (f *Filter) Windows(text []byte) []Window {
	var wins []Window

	at := 0
	for at < len(text) {
		m := f.auto.Find(text, at)
		if m == nil {
			break
		}

		start := m.Start - f.margin
		if start < 0 {
			start = 0
		}
		end := m.End + f.margin
		if end > len(text) {
			end = len(text)
		}

		if n := len(wins); n > 0 && start <= wins[n-1].End {
			if end > wins[n-1].End {
				wins[n-1].End = end
			}
		} else {
			wins = append(wins, Window{Start: start, End: end})
		}

		// Advance past this occurrence's start only, so occurrences at every
		// later start position are still seen.
		at = m.Start + 1
	}

	return wins
}

// Coverage returns the fraction of a text of length n covered by wins.
// Used to retire the filter for a search where the windows would not save
// meaningful work.
func Coverage(wins []Window, n int) float64 {
	if n <= 0 {
		return 1
	}
	covered := 0
	for _, w := range wins {
		covered += w.Len()
	}
	return float64(covered) / float64(n)
}
