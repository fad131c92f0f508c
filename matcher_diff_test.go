package wordfilter

import (
	"math/rand"
	"strings"
	"testing"

	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Cross-check findAll against an independent Aho-Corasick automaton in
// leftmost-longest mode, which produces the same non-overlapping
// longest-match-at-position sequence.  ASCII only, so byte offsets and code
// unit offsets coincide.
func TestMatcherAgainstAhoCorasick(t *testing.T) {
	words := []string{"bad", "badge", "badger", "word", "sword", "or", "do", "dog"}
	m := newMatcher(t, words)

	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		MatchKind: aho.LeftMostLongestMatch,
		DFA:       true,
	})
	automaton := builder.Build(words)

	rng := rand.New(rand.NewSource(0xd1ff))
	alphabet := []byte("badgersword ")
	for trial := 0; trial < 300; trial++ {
		var sb strings.Builder
		length := rng.Intn(60)
		for i := 0; i < length; i++ {
			sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		text := sb.String()

		reference := automaton.FindAll(text)
		var out [64]Match
		count := m.findAll(textUnits(t, text), out[:])
		actual := out[:count]

		if count != len(reference) {
			t.Fatalf("input %q: expected %d matches, got %d: %v", text, len(reference), count, actual)
		}
		for i, ref := range reference {
			expected := Match{Start: uint32(ref.Start()), Length: uint32(ref.End() - ref.Start())}
			if actual[i] != expected {
				t.Fatalf("input %q: match %d: expected %v, got %v", text, i, expected, actual[i])
			}
		}
	}
}
