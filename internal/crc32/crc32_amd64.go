//go:build amd64
// +build amd64

package crc32

import (
	"golang.org/x/sys/cpu"
)

//go:noescape
func castagnoliSSE42(sum uint32, p []byte) uint32

func archAvailable() bool {
	return cpu.X86.HasSSE42
}

func archUpdate(sum uint32, p []byte) uint32 {
	if len(p) == 0 {
		return sum
	}
	return ^castagnoliSSE42(^sum, p)
}
