//go:build amd64 || arm64 || 386 || arm || riscv64
// +build amd64 arm64 386 arm riscv64

package crc32

import (
	"unsafe"
)

// UpdateUnits extends sum by a run of 16-bit code units, each hashed as its
// low byte then its high byte.  On these little-endian targets the in-memory
// representation already has that byte order, so the run is reinterpreted in
// place and fed to the chunked byte path.
func UpdateUnits(sum uint32, p []uint16) uint32 {
	if len(p) == 0 {
		return sum
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&p[0])), len(p)*2)
	return Update(sum, raw)
}
