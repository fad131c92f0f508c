package wordfilter

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	dict := mustCompile(t, []string{"ab"}, NormalizeLower)

	expected := mustDecodeHex("" +
		// header: magic, version 3, flags, 3 nodes, 2 edges, 1 hash, minLen 2, maxLen 2, reserved
		"4643463303000000030000000200000001000000020000000200000000000000" +
		// nodes: root -> 'a' -> 'b' (terminal)
		"000000000100000001000000010000000200000000000100" +
		// edges: 'a' to node 1, 'b' to node 2
		"61000000010000006200000002000000" +
		// fingerprint: CRC-32C of 61 00 62 00
		"fbbf784e")

	actual := dict.Bytes()
	if !bytes.Equal(expected, actual) {
		t.Errorf("Bytes:\n\texpected: %x\n\tactual:   %x", expected, actual)
	}

	var sb bytes.Buffer
	if err := dict.Encode(&sb); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(expected, sb.Bytes()) {
		t.Errorf("Encode:\n\texpected: %x\n\tactual:   %x", expected, sb.Bytes())
	}
}

func TestParseBlob(t *testing.T) {
	blob := mustCompile(t, []string{"badword", "spam"}, NormalizeLower).Bytes()

	tv, hv, err := parseBlob(blob)
	if err != nil {
		t.Fatalf("parseBlob: %v", err)
	}
	if tv.nodeCount == 0 || tv.nodeCount != uint32(len(tv.nodes)/nodeRecordSize) {
		t.Errorf("node region: count %d, %d bytes", tv.nodeCount, len(tv.nodes))
	}
	if tv.edgeCount != uint32(len(tv.edges)/edgeRecordSize) {
		t.Errorf("edge region: count %d, %d bytes", tv.edgeCount, len(tv.edges))
	}
	if hv.count != 2 {
		t.Errorf("fingerprint count: expected 2, got %d", hv.count)
	}
	if hv.minLen != 4 || hv.maxLen != 7 {
		t.Errorf("length bounds: expected [4, 7], got [%d, %d]", hv.minLen, hv.maxLen)
	}
}

func TestParseBlobErrors(t *testing.T) {
	good := mustCompile(t, []string{"ab"}, NormalizeLower).Bytes()

	type testRow struct {
		name  string
		blob  []byte
		field string
	}

	corrupt := func(offset int, value byte) []byte {
		tmp := make([]byte, len(good))
		copy(tmp, good)
		tmp[offset] = value
		return tmp
	}

	var testData = [...]testRow{
		{
			name:  "empty",
			blob:  nil,
			field: "header",
		},
		{
			name:  "short-header",
			blob:  good[:31],
			field: "header",
		},
		{
			name:  "bad-magic",
			blob:  corrupt(0, 'X'),
			field: "magic",
		},
		{
			name:  "future-version",
			blob:  corrupt(4, 99),
			field: "version",
		},
		{
			name:  "zero-nodes",
			blob:  corrupt(8, 0),
			field: "node_count",
		},
		{
			name:  "truncated-tables",
			blob:  good[:len(good)-1],
			field: "length",
		},
		{
			name:  "overpromised-counts",
			blob:  corrupt(9, 0xff),
			field: "length",
		},
	}

	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, _, err := parseBlob(row.blob)
			if err == nil {
				t.Fatal("parseBlob: expected an error")
			}
			var ife InvalidFormatError
			if !errors.As(err, &ife) {
				t.Fatalf("parseBlob: expected InvalidFormatError, got %T: %v", err, err)
			}
			if ife.Field != row.field {
				t.Errorf("parseBlob: expected failure on field %q, got %q (%v)", row.field, ife.Field, err)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	words := []string{"badword", "offensive", "spam", "test", "中文"}
	first := mustCompile(t, words, NormalizeLower).Bytes()

	f, err := New(first)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer f.Close()

	// Recompiling the words the loaded filter still matches must reproduce
	// the identical blob.
	second := mustCompile(t, words, NormalizeLower).Bytes()
	if !bytes.Equal(first, second) {
		t.Errorf("round trip:\n\tfirst:  %x\n\tsecond: %x", first, second)
	}

	for _, word := range words {
		if !f.Contains(word) {
			t.Errorf("Contains(%q): expected true", word)
		}
	}
}

func TestVersionBackwardCompat(t *testing.T) {
	blob := mustCompile(t, []string{"spam"}, NormalizeLower).Bytes()
	blob[4] = 2 // older versions share the layout and must load

	if _, _, err := parseBlob(blob); err != nil {
		t.Errorf("parseBlob of version 2: %v", err)
	}
}
