package wordfilter

import (
	"encoding/binary"
)

// hashView is a zero-copy projection of the fingerprint table of a loaded
// dictionary blob: strictly ascending CRC-32C values plus the length bounds
// of the dictionary's words.
type hashView struct {
	data   []byte
	count  uint32
	minLen uint32
	maxLen uint32
}

func (hv hashView) len() int {
	return int(hv.count)
}

func (hv hashView) at(i uint32) uint32 {
	return binary.LittleEndian.Uint32(hv.data[uint64(i)*hashRecordSize:])
}

// validLength returns true iff some dictionary word is n code units long,
// as far as the length bounds can tell.  An O(1) guard used to prune
// candidates before probing the fingerprint table.
func (hv hashView) validLength(n int) bool {
	return n >= int(hv.minLen) && n <= int(hv.maxLen)
}

// contains reports whether sum is one of the stored fingerprints.
func (hv hashView) contains(sum uint32) bool {
	lo, hi := uint32(0), hv.count
	for lo < hi {
		mid := lo + (hi-lo)/2
		value := hv.at(mid)
		switch {
		case value == sum:
			return true
		case value < sum:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}
