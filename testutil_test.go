package wordfilter

import (
	"encoding/hex"
	"testing"
)

func mustDecodeHex(str string) []byte {
	raw, err := hex.DecodeString(str)
	if err != nil {
		panic(err)
	}
	return raw
}

func mustCompile(t testing.TB, words []string, mode NormalizeMode) *Dictionary {
	t.Helper()
	dict, err := Compile(words, mode)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return dict
}

func mustFilter(t testing.TB, words []string, opts ...Option) *Filter {
	t.Helper()
	dict := mustCompile(t, words, NormalizeLower)
	f, err := New(dict.Bytes(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func equalMatches(a, b []Match) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
