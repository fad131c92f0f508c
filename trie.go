package wordfilter

import (
	"encoding/binary"
)

// rootNode is the index of the trie root.  The root exists even in an empty
// dictionary.
const rootNode = 0

const nodeFlagTerminal = 0x0001

// Nodes with this fan-out or less are searched linearly; trie fan-out is
// typically 2 or 3, so this covers nearly every lookup.
const linearScanMax = 4

// trieView is a zero-copy projection of the node and edge tables of a loaded
// dictionary blob.  The two regions are sliced to exactly nodeCount and
// edgeCount records, so an index outside a well-formed blob's tables is a
// programming error that trips the slice bounds checks.
type trieView struct {
	nodes     []byte
	edges     []byte
	nodeCount uint32
	edgeCount uint32
}

func (tv trieView) node(i uint32) (firstEdge uint32, edgeCount uint32) {
	rec := tv.nodes[uint64(i)*nodeRecordSize:]
	firstEdge = binary.LittleEndian.Uint32(rec[0:4])
	edgeCount = uint32(binary.LittleEndian.Uint16(rec[4:6]))
	return
}

func (tv trieView) terminal(i uint32) bool {
	rec := tv.nodes[uint64(i)*nodeRecordSize:]
	flags := binary.LittleEndian.Uint16(rec[6:8])
	return (flags & nodeFlagTerminal) != 0
}

func (tv trieView) edge(e uint32) (label uint16, child uint32) {
	rec := tv.edges[uint64(e)*edgeRecordSize:]
	label = binary.LittleEndian.Uint16(rec[0:2])
	child = binary.LittleEndian.Uint32(rec[4:8])
	return
}

// findEdge looks up the child of node i reached by label.  The edges of a
// node are contiguous and sorted ascending by label.
func (tv trieView) findEdge(i uint32, label uint16) (uint32, bool) {
	firstEdge, edgeCount := tv.node(i)

	if edgeCount <= linearScanMax {
		for e := firstEdge; e < firstEdge+edgeCount; e++ {
			l, child := tv.edge(e)
			if l == label {
				return child, true
			}
			if l > label {
				break
			}
		}
		return 0, false
	}

	lo, hi := firstEdge, firstEdge+edgeCount
	for lo < hi {
		mid := lo + (hi-lo)/2
		l, child := tv.edge(mid)
		switch {
		case l == label:
			return child, true
		case l < label:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0, false
}
