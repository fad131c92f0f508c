package crc32

import (
	"math/rand"
	"testing"
)

func TestUpdate(t *testing.T) {
	type testRow struct {
		name     string
		input    string
		expected uint32
	}

	var testData = [...]testRow{
		{
			name:     "empty",
			input:    "",
			expected: 0x00000000,
		},
		{
			name:     "check-value",
			input:    "123456789",
			expected: 0xe3069283,
		},
		{
			name:     "single-a",
			input:    "a",
			expected: 0xc1d04330,
		},
		{
			name:     "abc",
			input:    "abc",
			expected: 0x364b3fb7,
		},
		{
			name:     "long",
			input:    "The quick brown fox jumps over the lazy dog",
			expected: 0x22620404,
		},
	}

	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			sum := Update(0, []byte(row.input))
			if sum != row.expected {
				t.Errorf("Update: expected %#08x, got %#08x", row.expected, sum)
			}
		})
	}
}

func TestUpdateChaining(t *testing.T) {
	input := []byte("the checksum of a split input equals the checksum of the whole")
	whole := Update(0, input)
	for split := 0; split <= len(input); split++ {
		sum := Update(Update(0, input[:split]), input[split:])
		if sum != whole {
			t.Errorf("split at %d: expected %#08x, got %#08x", split, whole, sum)
		}
	}
}

func TestArchMatchesGeneric(t *testing.T) {
	if !archAvailable() {
		t.Skip("no hardware CRC-32C on this machine")
	}

	rng := rand.New(rand.NewSource(0x77464346))
	buf := make([]byte, 4096)
	rng.Read(buf)

	for _, length := range []int{0, 1, 2, 3, 4, 7, 8, 9, 15, 16, 17, 63, 64, 65, 255, 1024, 4096} {
		p := buf[:length]
		g := genericUpdate(0, p)
		a := archUpdate(0, p)
		if g != a {
			t.Errorf("length %d: generic %#08x != arch %#08x", length, g, a)
		}
	}
}

func TestUpdateUnits(t *testing.T) {
	units := []uint16{0x0062, 0x0061, 0x0064, 0x4e2d, 0xd83d, 0xde00}

	var sum uint32
	for _, u := range units {
		sum = UpdateUnit(sum, u)
	}

	if bulk := UpdateUnits(0, units); bulk != sum {
		t.Errorf("UpdateUnits %#08x != chained UpdateUnit %#08x", bulk, sum)
	}

	raw := make([]byte, 0, 2*len(units))
	for _, u := range units {
		raw = append(raw, byte(u), byte(u>>8))
	}
	if byBytes := Update(0, raw); byBytes != sum {
		t.Errorf("little-endian byte hash %#08x != unit hash %#08x", byBytes, sum)
	}
}

func TestHash(t *testing.T) {
	h := New()
	if _, err := h.Write([]byte("1234")); err != nil {
		t.Fatal(err)
	}
	if _, err := h.Write([]byte("56789")); err != nil {
		t.Fatal(err)
	}
	if sum := h.Sum32(); sum != 0xe3069283 {
		t.Errorf("Sum32: expected %#08x, got %#08x", 0xe3069283, sum)
	}
	if p := h.Sum(nil); len(p) != Size {
		t.Errorf("Sum: expected %d bytes, got %d", Size, len(p))
	}
	h.Reset()
	if sum := h.Sum32(); sum != 0 {
		t.Errorf("Sum32 after Reset: expected 0, got %#08x", sum)
	}
}

func BenchmarkUpdate(b *testing.B) {
	buf := make([]byte, 4096)
	rand.New(rand.NewSource(1)).Read(buf)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	var sum uint32
	for i := 0; i < b.N; i++ {
		sum = Update(0, buf)
	}
	_ = sum
}
