package wordfilter

import (
	"fmt"
)

// parseBlob validates an FCF3 blob and projects the trie and fingerprint
// views over it without copying.  The blob must not be mutated afterwards.
func parseBlob(blob []byte) (trieView, hashView, error) {
	var tv trieView
	var hv hashView

	h, err := parseHeader(blob)
	if err != nil {
		return tv, hv, err
	}

	nodeBytes := uint64(h.nodeCount) * nodeRecordSize
	edgeBytes := uint64(h.edgeCount) * edgeRecordSize
	hashBytes := uint64(h.hashCount) * hashRecordSize
	need := headerSize + nodeBytes + edgeBytes + hashBytes
	if uint64(len(blob)) < need {
		return tv, hv, InvalidFormatError{
			Offset:  headerSize,
			Field:   "length",
			Problem: fmt.Sprintf("blob is %d bytes long, but the header promises %d", len(blob), need),
		}
	}

	nodeOffset := uint64(headerSize)
	edgeOffset := nodeOffset + nodeBytes
	hashOffset := edgeOffset + edgeBytes

	tv = trieView{
		nodes:     blob[nodeOffset:edgeOffset],
		edges:     blob[edgeOffset:hashOffset],
		nodeCount: h.nodeCount,
		edgeCount: h.edgeCount,
	}
	hv = hashView{
		data:   blob[hashOffset : hashOffset+hashBytes],
		count:  h.hashCount,
		minLen: h.minLen,
		maxLen: h.maxLen,
	}
	return tv, hv, nil
}
