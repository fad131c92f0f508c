package wordfilter

import (
	"github.com/chronos-tachyon/wordfilter/internal/crc32"
)

// Match locates one dictionary hit within a scanned text.  Start and Length
// count UTF-16 code units; for ASCII text they equal byte offsets.
type Match struct {
	Start  uint32
	Length uint32
}

// matcher walks the trie to propose candidate substrings and confirms each
// one against the fingerprint set.  The checksum is carried through the walk
// one code unit at a time, so confirming a terminal costs a single binary
// search.
type matcher struct {
	trie   trieView
	hashes hashView
}

// contains reports whether units holds any dictionary word as a substring.
// It returns at the first confirmed hit, which need not be the longest one.
func (m matcher) contains(units []uint16) bool {
	length := len(units)
	for start := 0; start < length; start++ {
		node := uint32(rootNode)
		sum := uint32(0)
		for i := start; i < length; i++ {
			child, ok := m.trie.findEdge(node, units[i])
			if !ok {
				break
			}
			sum = crc32.UpdateUnit(sum, units[i])
			node = child
			if m.trie.terminal(node) && m.hashes.validLength(i-start+1) && m.hashes.contains(sum) {
				return true
			}
		}
	}
	return false
}

// matchAt returns the length of the longest confirmed dictionary word
// starting at start, or 0 if none matches there.  The walk does not stop at
// the first terminal: a longer word may still lie further down the trie.
func (m matcher) matchAt(units []uint16, start int) int {
	best := 0
	node := uint32(rootNode)
	sum := uint32(0)
	for i := start; i < len(units); i++ {
		child, ok := m.trie.findEdge(node, units[i])
		if !ok {
			break
		}
		sum = crc32.UpdateUnit(sum, units[i])
		node = child
		if n := i - start + 1; m.trie.terminal(node) && m.hashes.validLength(n) && m.hashes.contains(sum) {
			best = n
		}
	}
	return best
}

// findAll scans units left to right and fills out with non-overlapping
// matches, longest match at each position, in strictly ascending start
// order.  A position with no match advances by exactly one unit; a match
// advances past its end.  Returns the number of matches written.
func (m matcher) findAll(units []uint16, out []Match) int {
	count := 0
	start := 0
	for start < len(units) && count < len(out) {
		n := m.matchAt(units, start)
		if n > 0 {
			out[count] = Match{Start: uint32(start), Length: uint32(n)}
			count++
			start += n
		} else {
			start++
		}
	}
	return count
}
