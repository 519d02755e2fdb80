// Package approx provides approximate (fuzzy) substring search for Go.
//
// Given a text and a pattern, approx finds every substring of the text whose
// edit distance (insertions, deletions and substitutions, all costing 1) to
// the pattern is within a caller-supplied budget, reporting each match's
// start offset, end offset and exact error count.
//
// The engine is Myers' bit-parallel dynamic programming algorithm
// (O(n*ceil(m/64)) worst case, budget-bounded in practice), fronted by an
// Aho-Corasick piece prefilter that skips text regions which cannot contain
// a match.
//
// Basic usage:
//
//	// One-shot search
//	matches, err := approx.SearchString("hello world", "wrld", 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range matches {
//	    fmt.Println(m.Start(), m.End(), m.Errors())
//	}
//
//	// Compile once, search many texts
//	p := approx.MustCompile("needle")
//	matches, _ = p.Search(haystack, 2)
//
// Matching compares byte values; offsets are byte offsets into the text.
// A compiled Pattern is safe for concurrent use.
package approx

import (
	"sync"

	"github.com/coregx/approx/myers"
	"github.com/coregx/approx/prefilter"
)

// Match is one approximate occurrence of a pattern in a text.
// It is an alias for the engine's match type, so results can flow between
// the facade and engine APIs without conversion.
type Match = myers.Match

// Pattern is a pattern compiled for approximate search.
//
// A Pattern is safe for concurrent use: the compiled engine and mask tables
// are immutable, and the prefilter cache is internally synchronized.
type Pattern struct {
	engine *myers.Engine
	source string
	config Config

	// filters caches piece prefilters per error budget, built on first use.
	mu      sync.RWMutex
	filters map[int]*prefilter.Filter
}

// Compile compiles a pattern for approximate search with the default
// configuration.
//
// Example:
//
//	p, err := approx.Compile("needle")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Pattern, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("approx: Compile(`" + pattern + "`): " + err.Error())
	}
	return p
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := approx.DefaultConfig()
//	config.EnablePrefilter = false // Always scan the full text
//	p, err := approx.CompileWithConfig("needle", config)
func CompileWithConfig(pattern string, config Config) (*Pattern, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	engine, err := myers.Compile([]byte(pattern), myers.Config{MaxBlocks: config.MaxBlocks})
	if err != nil {
		return nil, err
	}

	return &Pattern{
		engine:  engine,
		source:  pattern,
		config:  config,
		filters: make(map[int]*prefilter.Filter),
	}, nil
}

// String returns the source text the Pattern was compiled from.
func (p *Pattern) String() string {
	return p.source
}

// Search returns every substring of text within maxErrors edits of the
// pattern, ordered by end offset, at most one match per end offset. Each
// match reports the exact edit distance of the longest qualifying substring
// at its end offset.
//
// A fresh result slice is built per call; the Pattern holds no match state
// between calls. Returns myers.ErrMaxErrorsNegative if maxErrors < 0.
func (p *Pattern) Search(text []byte, maxErrors int) ([]Match, error) {
	if f := p.filterFor(maxErrors); f != nil {
		return p.searchFiltered(text, maxErrors, f)
	}
	return p.engine.Search(text, maxErrors)
}

// SearchString is Search for string texts.
func (p *Pattern) SearchString(text string, maxErrors int) ([]Match, error) {
	return p.Search([]byte(text), maxErrors)
}

// filterFor returns the piece prefilter for the given budget, building and
// caching it on first use, or nil when prefiltering does not apply: budget
// out of range for non-empty pieces, pieces too short to be selective, or
// prefiltering disabled.
func (p *Pattern) filterFor(maxErrors int) *prefilter.Filter {
	if !p.config.EnablePrefilter || maxErrors < 0 {
		return nil
	}
	m := len(p.source)
	if maxErrors >= m || m/(maxErrors+1) < p.config.MinPieceLen {
		return nil
	}

	p.mu.RLock()
	f := p.filters[maxErrors]
	p.mu.RUnlock()
	if f != nil {
		return f
	}

	f, err := prefilter.New([]byte(p.source), maxErrors)
	if err != nil {
		return nil
	}

	p.mu.Lock()
	if prev := p.filters[maxErrors]; prev != nil {
		f = prev
	} else {
		p.filters[maxErrors] = f
	}
	p.mu.Unlock()
	return f
}

// searchFiltered verifies only the candidate windows the prefilter yields.
// Window construction guarantees the result is identical to a full scan.
func (p *Pattern) searchFiltered(text []byte, maxErrors int, f *prefilter.Filter) ([]Match, error) {
	wins := f.Windows(text)
	if len(wins) == 0 {
		return nil, nil
	}
	if prefilter.Coverage(wins, len(text)) > p.config.MaxCoverage {
		// The windows cover most of the text; verifying them separately
		// would not save work over a single pass.
		return p.engine.Search(text, maxErrors)
	}

	var matches []Match
	for _, w := range wins {
		ms, err := p.engine.Search(text[w.Start:w.End], maxErrors)
		if err != nil {
			return nil, err
		}
		for _, m := range ms {
			matches = append(matches,
				myers.NewMatch(w.Start+m.Start(), w.Start+m.End(), m.Errors(), text))
		}
	}
	return matches, nil
}

// Search is a one-shot search of text for pattern within maxErrors edits.
// For repeated searches with the same pattern, compile it once instead.
func Search(text, pattern []byte, maxErrors int) ([]Match, error) {
	engine, err := myers.Compile(pattern, myers.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return engine.Search(text, maxErrors)
}

// SearchString is Search for string texts and patterns.
func SearchString(text, pattern string, maxErrors int) ([]Match, error) {
	return Search([]byte(text), []byte(pattern), maxErrors)
}
