//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		return
	}
	hasSSE42 = cpu.X86.HasSSE42
	hasAVX = cpu.X86.HasAVX
	hasAVX2 = cpu.X86.HasAVX2
}
