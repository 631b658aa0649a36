package simd

import (
	"os"
	"strconv"
)

// Runtime capability detection. The batch types select their instruction
// paths statically through the architecture type parameter; these functions
// are the boundary where a caller picks which parameter to instantiate for
// the machine it is running on.

// CPU feature flags, set by init() in detect_*.go files.
var (
	hasSSE42 bool
	hasAVX   bool
	hasAVX2  bool
)

// Supported reports whether batches tagged with architecture a run their
// intended instruction paths on this machine. Scalar is always supported.
// When the XSIMD_NO_SIMD environment variable disables detection, only
// Scalar is reported as supported.
func Supported(a Arch) bool {
	switch a.(type) {
	case AVX2:
		return hasAVX2
	case AVX:
		return hasAVX
	case SSE42:
		return hasSSE42
	default:
		return true
	}
}

// Preferred returns the most capable supported architecture: the tag a
// caller should instantiate batch types with when it has no other
// constraint.
func Preferred() Arch {
	switch {
	case hasAVX2:
		return AVX2{}
	case hasAVX:
		return AVX{}
	case hasSSE42:
		return SSE42{}
	default:
		return Scalar{}
	}
}

// NoSimdEnv checks if the XSIMD_NO_SIMD environment variable is set. When
// set, detection is skipped and only Scalar reports as supported. This is
// useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("XSIMD_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
