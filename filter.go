package wordfilter

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/chronos-tachyon/assert"
)

// Mask confirms at most this many matches in one pass.  Text beyond the
// 256th match is left unmasked.
const maskMatchLimit = 256

// Filter is a loaded dictionary plus its matching configuration.  After
// construction it is read-only and safe for concurrent use by any number of
// goroutines without external synchronization.
type Filter struct {
	blob         []byte
	trie         trieView
	hashes       hashView
	mode         NormalizeMode
	maskChar     rune
	fixedMask    string
	hasFixedMask bool

	closeOnce sync.Once
}

// New constructs a Filter over the given FCF3 blob.  The Filter takes
// ownership of the blob; the caller must not mutate it afterwards.
func New(blob []byte, opts ...Option) (*Filter, error) {
	var o options
	o.reset()
	o.apply(opts)
	if err := o.validate(); err != nil {
		return nil, err
	}

	tv, hv, err := parseBlob(blob)
	if err != nil {
		return nil, err
	}

	return &Filter{
		blob:         blob,
		trie:         tv,
		hashes:       hv,
		mode:         o.mode,
		maskChar:     o.maskChar,
		fixedMask:    o.fixedMask,
		hasFixedMask: o.hasFixedMask,
	}, nil
}

// Load reads an FCF3 dictionary file and constructs a Filter over it.
func Load(path string, opts ...Option) (*Filter, error) {
	if path == "" {
		return nil, InvalidArgumentError{Name: "path", Problem: "path is empty"}
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(blob, opts...)
}

// LoadReader materializes an FCF3 dictionary from r and constructs a Filter
// over it.  The stream is read to EOF before LoadReader returns.
func LoadReader(r io.Reader, opts ...Option) (*Filter, error) {
	assert.NotNil(&r)
	blob, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(blob, opts...)
}

// Close releases the dictionary blob.  Matching calls made after Close
// behave as if the dictionary were empty.  Closing twice is a no-op.
func (f *Filter) Close() error {
	f.closeOnce.Do(func() {
		f.blob = nil
		f.trie = trieView{}
		f.hashes = hashView{}
	})
	return nil
}

// NumWords returns the number of distinct fingerprints in the dictionary,
// which is the number of distinct words barring checksum collisions.
func (f *Filter) NumWords() int {
	return f.hashes.len()
}

// MinWordLength returns the length of the shortest dictionary word, in code
// units.  Zero for an empty dictionary.
func (f *Filter) MinWordLength() int {
	return int(f.hashes.minLen)
}

// MaxWordLength returns the length of the longest dictionary word, in code
// units.  Zero for an empty dictionary.
func (f *Filter) MaxWordLength() int {
	return int(f.hashes.maxLen)
}

// NormalizeMode returns the normalization mode this Filter applies to input
// text.
func (f *Filter) NormalizeMode() NormalizeMode {
	return f.mode
}

// Contains reports whether text holds any dictionary word as a substring.
// It never fails: empty text, or a closed or empty dictionary, yields false.
func (f *Filter) Contains(text string) bool {
	if f.trie.nodeCount == 0 || len(text) == 0 {
		return false
	}

	n := utf16Length(text)
	var stack [stackBufferUnits]uint16
	var units []uint16
	if n <= stackBufferUnits {
		units = stack[:n]
	} else {
		ptr := takeUnitBuffer(n)
		defer giveUnitBuffer(ptr)
		units = (*ptr)[:n]
	}
	encodeUnits(text, units)
	f.mode.normalize(units, units)

	return matcher{trie: f.trie, hashes: f.hashes}.contains(units)
}

// FindMatches scans text and fills out with non-overlapping matches, longest
// match at each position, in strictly ascending start order.  Offsets and
// lengths count UTF-16 code units.  Returns the number of matches written;
// scanning stops when out is full.
func (f *Filter) FindMatches(text string, out []Match) int {
	if f.trie.nodeCount == 0 || len(text) == 0 || len(out) == 0 {
		return 0
	}

	n := utf16Length(text)
	var stack [stackBufferUnits]uint16
	var units []uint16
	if n <= stackBufferUnits {
		units = stack[:n]
	} else {
		ptr := takeUnitBuffer(n)
		defer giveUnitBuffer(ptr)
		units = (*ptr)[:n]
	}
	encodeUnits(text, units)
	f.mode.normalize(units, units)

	return matcher{trie: f.trie, hashes: f.hashes}.findAll(units, out)
}

// Mask returns a copy of text with every match redacted.  Without a fixed
// mask, each code unit of a match is replaced by the mask character and the
// output has as many UTF-16 code units as the input; with one, each whole match span is
// replaced by the fixed mask string.  Clean text is returned unchanged, as
// the same string value.
func (f *Filter) Mask(text string) string {
	if f.trie.nodeCount == 0 || len(text) == 0 {
		return text
	}

	n := utf16Length(text)
	var stack [stackBufferUnits]uint16
	var units []uint16
	if n <= stackBufferUnits {
		units = stack[:n]
	} else {
		ptr := takeUnitBuffer(n)
		defer giveUnitBuffer(ptr)
		units = (*ptr)[:n]
	}
	encodeUnits(text, units)
	f.mode.normalize(units, units)

	var matches [maskMatchLimit]Match
	count := matcher{trie: f.trie, hashes: f.hashes}.findAll(units, matches[:])
	if count == 0 {
		return text
	}

	// Matching ran over normalized units, but the redacted copy is built
	// from the original text: spans map one to one because normalization
	// preserves unit counts.
	var sb strings.Builder
	sb.Grow(len(text))
	unitIdx := uint32(0)
	mi := 0
	masked := -1
	for _, r := range text {
		w := uint32(1)
		if r >= surrSelf {
			w = 2
		}
		for mi < count && unitIdx >= matches[mi].Start+matches[mi].Length {
			mi++
		}
		inMatch := mi < count && unitIdx >= matches[mi].Start
		switch {
		case inMatch && f.hasFixedMask:
			if mi != masked {
				sb.WriteString(f.fixedMask)
				masked = mi
			}
		case inMatch:
			for j := uint32(0); j < w; j++ {
				sb.WriteRune(f.maskChar)
			}
		default:
			sb.WriteRune(r)
		}
		unitIdx += w
	}
	return sb.String()
}
