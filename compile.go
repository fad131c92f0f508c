package wordfilter

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/wordfilter/internal/crc32"
)

// ParseWordList reads a word list: one word per line, or several words
// separated by commas on a line.  Lines whose first non-blank character is
// '#' are comments.  Each entry is trimmed of surrounding whitespace, then
// stripped of one pair of surrounding single or double quotes.  Empty
// entries are dropped.
func ParseWordList(r io.Reader) ([]string, error) {
	assert.NotNil(&r)

	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		for _, entry := range strings.Split(line, ",") {
			entry = stripQuotes(strings.TrimSpace(entry))
			if entry == "" {
				continue
			}
			words = append(words, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func stripQuotes(entry string) string {
	if len(entry) >= 2 {
		first := entry[0]
		last := entry[len(entry)-1]
		if first == last && (first == '\'' || first == '"') {
			return entry[1 : len(entry)-1]
		}
	}
	return entry
}

// Dictionary is a compiled word set, ready to be encoded as an FCF3 blob.
type Dictionary struct {
	nodes     []dictNode
	edges     []dictEdge
	hashes    []uint32
	minLen    uint32
	maxLen    uint32
	wordCount int
}

type dictNode struct {
	firstEdge uint32
	edgeCount uint16
	flags     uint16
}

type dictEdge struct {
	label uint16
	child uint32
}

// buildNode is the mutable tree form used during compilation.  labels and
// children are parallel, with labels kept sorted ascending.
type buildNode struct {
	labels   []uint16
	children []*buildNode
	terminal bool
}

func (bn *buildNode) step(label uint16) *buildNode {
	i := sort.Search(len(bn.labels), func(i int) bool { return bn.labels[i] >= label })
	if i < len(bn.labels) && bn.labels[i] == label {
		return bn.children[i]
	}
	child := new(buildNode)
	bn.labels = append(bn.labels, 0)
	bn.children = append(bn.children, nil)
	copy(bn.labels[i+1:], bn.labels[i:])
	copy(bn.children[i+1:], bn.children[i:])
	bn.labels[i] = label
	bn.children[i] = child
	return child
}

// Compile normalizes words with the given mode, drops duplicates, and builds
// the trie and fingerprint tables.  The output is deterministic: the same
// word set compiles to the same blob regardless of input order.  Use the
// same mode when loading the resulting dictionary.
func Compile(words []string, mode NormalizeMode) (*Dictionary, error) {
	assert.Assertf(mode.IsValid(), "invalid NormalizeMode %d", uint(mode))

	seen := make(map[string]struct{}, len(words))
	entries := make([][]uint16, 0, len(words))
	for _, word := range words {
		n := utf16Length(word)
		if n == 0 {
			continue
		}
		units := make([]uint16, n)
		encodeUnits(word, units)
		mode.normalize(units, units)
		key := unitKey(units)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		entries = append(entries, units)
	}

	dict := &Dictionary{wordCount: len(entries)}

	root := new(buildNode)
	hashes := make([]uint32, 0, len(entries))
	for _, units := range entries {
		bn := root
		for _, u := range units {
			bn = bn.step(u)
		}
		bn.terminal = true

		hashes = append(hashes, crc32.UpdateUnits(0, units))

		n := uint32(len(units))
		if dict.minLen == 0 || n < dict.minLen {
			dict.minLen = n
		}
		if n > dict.maxLen {
			dict.maxLen = n
		}
	}

	sort.Slice(hashes, func(i, j int) bool { return hashes[i] < hashes[j] })
	dict.hashes = hashes[:0]
	var prev uint32
	for i, h := range hashes {
		if i > 0 && h == prev {
			continue
		}
		dict.hashes = append(dict.hashes, h)
		prev = h
	}

	if err := dict.flatten(root); err != nil {
		return nil, err
	}
	return dict, nil
}

// flatten lays the tree out breadth-first.  The root becomes node 0, each
// node's edges occupy one contiguous label-sorted run of the edge table, and
// every child index is greater than its parent's.
func (dict *Dictionary) flatten(root *buildNode) error {
	queue := []*buildNode{root}
	for head := 0; head < len(queue); head++ {
		bn := queue[head]
		if len(bn.labels) > 0xffff {
			return fmt.Errorf("node %d has %d children, more than the format's per-node limit of %d", head, len(bn.labels), 0xffff)
		}
		var flags uint16
		if bn.terminal {
			flags |= nodeFlagTerminal
		}
		dict.nodes = append(dict.nodes, dictNode{
			firstEdge: uint32(len(dict.edges)),
			edgeCount: uint16(len(bn.labels)),
			flags:     flags,
		})
		for i, label := range bn.labels {
			child := uint32(len(queue))
			queue = append(queue, bn.children[i])
			dict.edges = append(dict.edges, dictEdge{label: label, child: child})
		}
	}
	return nil
}

func unitKey(units []uint16) string {
	var sb strings.Builder
	sb.Grow(2 * len(units))
	for _, u := range units {
		sb.WriteByte(byte(u))
		sb.WriteByte(byte(u >> 8))
	}
	return sb.String()
}

// NumWords returns the number of distinct words compiled in.
func (dict *Dictionary) NumWords() int {
	return dict.wordCount
}

// NumNodes returns the number of trie nodes, including the root.
func (dict *Dictionary) NumNodes() int {
	return len(dict.nodes)
}

// NumEdges returns the number of trie edges.
func (dict *Dictionary) NumEdges() int {
	return len(dict.edges)
}

// Bytes returns the FCF3 encoding of this Dictionary.
func (dict *Dictionary) Bytes() []byte {
	total := headerSize +
		len(dict.nodes)*nodeRecordSize +
		len(dict.edges)*edgeRecordSize +
		len(dict.hashes)*hashRecordSize
	out := make([]byte, 0, total)

	h := header{
		magic:     Magic,
		version:   Version,
		flags:     0,
		nodeCount: uint32(len(dict.nodes)),
		edgeCount: uint32(len(dict.edges)),
		hashCount: uint32(len(dict.hashes)),
		minLen:    dict.minLen,
		maxLen:    dict.maxLen,
		reserved:  0,
	}
	out = h.appendTo(out)

	for _, nd := range dict.nodes {
		out = append(out,
			byte(nd.firstEdge), byte(nd.firstEdge>>8), byte(nd.firstEdge>>16), byte(nd.firstEdge>>24),
			byte(nd.edgeCount), byte(nd.edgeCount>>8),
			byte(nd.flags), byte(nd.flags>>8))
	}
	for _, e := range dict.edges {
		out = append(out,
			byte(e.label), byte(e.label>>8),
			0, 0,
			byte(e.child), byte(e.child>>8), byte(e.child>>16), byte(e.child>>24))
	}
	for _, sum := range dict.hashes {
		out = append(out, byte(sum), byte(sum>>8), byte(sum>>16), byte(sum>>24))
	}
	return out
}

// Encode writes the FCF3 encoding of this Dictionary to w.
func (dict *Dictionary) Encode(w io.Writer) error {
	assert.NotNil(&w)
	_, err := w.Write(dict.Bytes())
	return err
}
