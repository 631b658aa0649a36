//go:build !amd64

package simd

// Non-x86 hosts run every architecture tag through the same portable
// kernels, but none of the tags map to native instructions there, so only
// Scalar reports as supported.
func init() {}
