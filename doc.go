// Package wordfilter detects and redacts forbidden words in short texts.
//
// A word list is compiled offline into a compact binary dictionary (the FCF3
// format), then loaded read-only by any number of goroutines.  Matching is a
// hybrid of a character-indexed trie, which proposes candidate substrings,
// and a sorted set of CRC-32C fingerprints, which confirms them.  Contains
// and FindMatches do not allocate for inputs of up to 512 code units.
//
// Matching is substring matching, not token matching: a dictionary entry
// "grass" matches inside "grassland" and a dictionary entry "ass" matches
// inside "grass".  There is no word-boundary heuristic.  Choose dictionary
// entries accordingly.
//
// # The FCF3 dictionary format
//
// A dictionary is a single blob.  All multi-byte fields are little-endian.
// It opens with a 32-byte header:
//
//	offset  size  field
//	0       4     magic, 0x33464346 ("FCF3")
//	4       2     version, currently 3 (readers accept <= 3)
//	6       2     flags, 0
//	8       4     node count (>= 1; node 0 is the trie root)
//	12      4     edge count
//	16      4     fingerprint count
//	20      4     minimum word length, in code units
//	24      4     maximum word length, in code units
//	28      4     reserved, 0
//
// The header is followed by the node table (8 bytes per node: u32 first-edge
// index, u16 edge count, u16 flags with bit 0 marking a terminal node), the
// edge table (8 bytes per edge: u16 label, u16 padding, u32 child index),
// and the fingerprint table (u32 each, strictly ascending).  The edges of a
// node occupy one contiguous run of the edge table, sorted by label.
//
// Labels are UTF-16 code units.  Fingerprints are CRC-32C (Castagnoli
// polynomial 0x82f63b78, reflected) over the word's code units, each unit
// hashed as two bytes, low byte first, on every platform.  The polynomial
// and the byte order are part of the format contract: the compiler and the
// matcher must hash identically or verification fails silently.
package wordfilter
