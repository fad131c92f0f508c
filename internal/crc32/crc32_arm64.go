//go:build arm64
// +build arm64

package crc32

import (
	"golang.org/x/sys/cpu"
)

//go:noescape
func castagnoliUpdate(sum uint32, p []byte) uint32

func archAvailable() bool {
	return cpu.ARM64.HasCRC32
}

func archUpdate(sum uint32, p []byte) uint32 {
	if len(p) == 0 {
		return sum
	}
	return ^castagnoliUpdate(^sum, p)
}
