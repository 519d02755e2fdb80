package prefilter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		n       int
		want    []string
	}{
		{"one piece", "abcdef", 1, []string{"abcdef"}},
		{"even split", "abcdef", 2, []string{"abc", "def"}},
		{"uneven split puts longer pieces first", "abcdefg", 3, []string{"abc", "de", "fg"}},
		{"one symbol per piece", "abc", 3, []string{"a", "b", "c"}},
		{"too many pieces", "ab", 3, nil},
		{"zero pieces", "ab", 0, nil},
		{"empty pattern", "", 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split([]byte(tt.pattern), tt.n)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.Len(t, got, len(tt.want))
			joined := ""
			for i, piece := range got {
				assert.Equal(t, tt.want[i], string(piece))
				joined += string(piece)
			}
			assert.Equal(t, tt.pattern, joined, "pieces must reassemble the pattern")
		})
	}
}

func TestNewRejectsOversizedBudget(t *testing.T) {
	_, err := New([]byte("abc"), 3)
	assert.True(t, errors.Is(err, ErrBudgetTooLarge))

	_, err = New([]byte("abc"), -1)
	assert.True(t, errors.Is(err, ErrBudgetTooLarge))

	_, err = New(nil, 0)
	assert.True(t, errors.Is(err, ErrBudgetTooLarge))
}

func TestWindowsNoOccurrence(t *testing.T) {
	f, err := New([]byte("needle"), 1)
	require.NoError(t, err)

	assert.Empty(t, f.Windows([]byte("totally unrelated text")))
	assert.Empty(t, f.Windows(nil))
}

func TestWindowsSinglePiece(t *testing.T) {
	// Zero budget: one piece, the whole pattern, margin = pattern length.
	f, err := New([]byte("needle"), 0)
	require.NoError(t, err)

	text := []byte("xxxxxxxxxxxxxxxxxxxx needle xxxxxxxxxxxxxxxxxxxx")
	wins := f.Windows(text)

	require.Len(t, wins, 1)
	assert.Equal(t, Window{Start: 15, End: 33}, wins[0]) // occurrence at 21..27, widened by 6
}

func TestWindowsMerge(t *testing.T) {
	f, err := New([]byte("ned"), 0)
	require.NoError(t, err)

	// Two occurrences close together merge; a distant third stands alone.
	text := []byte("..ned.ned" + "........................" + "ned..")
	wins := f.Windows(text)

	require.Len(t, wins, 2)
	assert.Equal(t, Window{Start: 0, End: 12}, wins[0])
	assert.Equal(t, Window{Start: 30, End: len(text)}, wins[1])
}

func TestWindowsCoverQualifyingMatches(t *testing.T) {
	pattern := []byte("approximate")
	maxErrors := 2
	f, err := New(pattern, maxErrors)
	require.NoError(t, err)

	text := []byte("an aproximate answer beats an appoximate question")
	wins := f.Windows(text)
	require.NotEmpty(t, wins)

	// Both misspellings are within 2 edits of the pattern; each must lie
	// entirely inside some window.
	for _, occ := range []Window{{3, 13}, {30, 40}} {
		inside := false
		for _, w := range wins {
			if w.Start <= occ.Start && occ.End <= w.End {
				inside = true
			}
		}
		assert.True(t, inside, "occurrence %v not covered by windows %v", occ, wins)
	}

	// Windows are ordered and disjoint.
	for i := 1; i < len(wins); i++ {
		assert.Greater(t, wins[i].Start, wins[i-1].End)
	}
}

func TestCoverage(t *testing.T) {
	assert.Equal(t, 0.0, Coverage(nil, 100))
	assert.Equal(t, 0.25, Coverage([]Window{{0, 10}, {50, 65}}, 100))
	assert.Equal(t, 1.0, Coverage([]Window{{0, 100}}, 100))
	assert.Equal(t, 1.0, Coverage(nil, 0))
}
