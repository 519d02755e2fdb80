// Fuzz tests comparing the bit-parallel engine against a naive dynamic
// programming oracle.
//
// Run with:
//
//	go test -fuzz=FuzzSearch -fuzztime=30s
package myers

import (
	"bytes"
	"testing"
)

func FuzzSearch(f *testing.F) {
	f.Add([]byte("hello world"), []byte("wrld"), byte(1))
	f.Add([]byte("some cases"), []byte("some cas"), byte(0))
	f.Add([]byte("abcabcabc"), []byte("abc"), byte(2))
	f.Add([]byte(""), []byte("a"), byte(1))
	f.Add([]byte("aaaa"), []byte(""), byte(3))
	f.Add(bytes.Repeat([]byte("ab"), 60), bytes.Repeat([]byte("ba"), 40), byte(5))

	f.Fuzz(func(t *testing.T, text, pattern []byte, budget byte) {
		maxErrors := int(budget % 8)

		engine, err := Compile(pattern, DefaultConfig())
		if err != nil {
			t.Skip()
		}
		got, err := engine.Search(text, maxErrors)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}

		if len(pattern) == 0 {
			if len(got) != len(text)+1 {
				t.Fatalf("empty pattern: %d matches, want %d", len(got), len(text)+1)
			}
			return
		}

		k := maxErrors
		if k > len(pattern) {
			k = len(pattern)
		}
		dmin := minDistancesRef(text, pattern)

		byEnd := make(map[int]Match, len(got))
		for _, m := range got {
			byEnd[m.End()] = m
			if d := editDistanceRef(text[m.Start():m.End()], pattern); d != m.Errors() {
				t.Errorf("match (%d,%d): reported %d errors, true distance %d",
					m.Start(), m.End(), m.Errors(), d)
			}
		}
		for j := 1; j <= len(text); j++ {
			m, ok := byEnd[j]
			switch {
			case dmin[j] <= k && !ok:
				t.Errorf("missing match at end %d (min distance %d)", j, dmin[j])
			case dmin[j] <= k && m.Errors() != dmin[j]:
				t.Errorf("end %d: errors %d, want %d", j, m.Errors(), dmin[j])
			case dmin[j] > k && ok:
				t.Errorf("spurious match at end %d", j)
			}
		}
	})
}
