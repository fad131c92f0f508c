package wordfilter

import (
	"encoding/binary"
	"fmt"
)

// Magic is the FCF3 container signature, the bytes "FCF3" read as a
// little-endian u32.
const Magic = 0x33464346

// Version is the newest container version this package writes.  Readers
// accept any version up to and including it.
const Version = 3

const (
	headerSize     = 32
	nodeRecordSize = 8
	edgeRecordSize = 8
	hashRecordSize = 4
)

// header is the decoded form of the 32-byte FCF3 container header.
type header struct {
	magic     uint32
	version   uint16
	flags     uint16
	nodeCount uint32
	edgeCount uint32
	hashCount uint32
	minLen    uint32
	maxLen    uint32
	reserved  uint32
}

func (h header) appendTo(out []byte) []byte {
	var tmp [headerSize]byte
	binary.LittleEndian.PutUint32(tmp[0:4], h.magic)
	binary.LittleEndian.PutUint16(tmp[4:6], h.version)
	binary.LittleEndian.PutUint16(tmp[6:8], h.flags)
	binary.LittleEndian.PutUint32(tmp[8:12], h.nodeCount)
	binary.LittleEndian.PutUint32(tmp[12:16], h.edgeCount)
	binary.LittleEndian.PutUint32(tmp[16:20], h.hashCount)
	binary.LittleEndian.PutUint32(tmp[20:24], h.minLen)
	binary.LittleEndian.PutUint32(tmp[24:28], h.maxLen)
	binary.LittleEndian.PutUint32(tmp[28:32], h.reserved)
	return append(out, tmp[:]...)
}

func parseHeader(blob []byte) (header, error) {
	var h header

	if len(blob) < headerSize {
		return h, InvalidFormatError{
			Offset:  0,
			Field:   "header",
			Problem: fmt.Sprintf("blob is %d bytes long, shorter than the %d-byte header", len(blob), headerSize),
		}
	}

	h.magic = binary.LittleEndian.Uint32(blob[0:4])
	h.version = binary.LittleEndian.Uint16(blob[4:6])
	h.flags = binary.LittleEndian.Uint16(blob[6:8])
	h.nodeCount = binary.LittleEndian.Uint32(blob[8:12])
	h.edgeCount = binary.LittleEndian.Uint32(blob[12:16])
	h.hashCount = binary.LittleEndian.Uint32(blob[16:20])
	h.minLen = binary.LittleEndian.Uint32(blob[20:24])
	h.maxLen = binary.LittleEndian.Uint32(blob[24:28])
	h.reserved = binary.LittleEndian.Uint32(blob[28:32])

	if h.magic != Magic {
		return h, InvalidFormatError{
			Offset:  0,
			Field:   "magic",
			Problem: fmt.Sprintf("expected %#08x, found %#08x", uint32(Magic), h.magic),
		}
	}
	if h.version > Version {
		return h, InvalidFormatError{
			Offset:  4,
			Field:   "version",
			Problem: fmt.Sprintf("version %d is newer than the newest supported version %d", h.version, Version),
		}
	}
	if h.nodeCount == 0 {
		return h, InvalidFormatError{
			Offset:  8,
			Field:   "node_count",
			Problem: "node count is 0, but the trie root must exist",
		}
	}
	return h, nil
}
