package myers

// Match represents one approximate occurrence of a pattern in a text.
//
// A Match contains:
//   - Start position (inclusive)
//   - End position (exclusive)
//   - The exact edit distance between text[start:end] and the pattern
//   - Reference to the original text
//
// The distance is exact, not an upper bound: no substring of the text ending
// at End comes closer to the pattern, and text[Start:End] achieves exactly
// Errors edits.
type Match struct {
	start    int
	end      int
	errors   int
	haystack []byte
}

// NewMatch creates a Match from explicit positions and error count.
//
// The haystack is stored by reference (not copied) for efficiency.
// Callers must ensure the haystack remains valid for the lifetime of the Match.
func NewMatch(start, end, errors int, haystack []byte) Match {
	return Match{
		start:    start,
		end:      end,
		errors:   errors,
		haystack: haystack,
	}
}

// Start returns the inclusive start position of the match.
func (m Match) Start() int {
	return m.start
}

// End returns the exclusive end position of the match.
func (m Match) End() int {
	return m.end
}

// Errors returns the edit distance between the matched text and the pattern.
func (m Match) Errors() int {
	return m.errors
}

// Len returns the length of the match in symbols.
func (m Match) Len() int {
	return m.end - m.start
}

// Bytes returns the matched text as a slice.
//
// The returned slice is a view into the original text (not a copy).
func (m Match) Bytes() []byte {
	if m.start < 0 || m.end > len(m.haystack) || m.start > m.end {
		return nil
	}
	return m.haystack[m.start:m.end]
}

// String returns the matched text as a string.
func (m Match) String() string {
	return string(m.Bytes())
}
