// Copyright 2026 xsimd Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simd

import "unsafe"

// Arch identifies an instruction-set capability level. Tags are zero-size
// values used purely to select a kernel table; they carry the register width
// and required alignment for aligned loads and stores.
//
// The interface embeds the unexported kernel table, so only the tags defined
// in this package satisfy it. Each tag's kernels handle the element widths
// that level has instructions for and forward everything else to the tag's
// parent; see Parent for the chain.
type Arch interface {
	// Name returns the conventional lowercase name ("avx2", "scalar", ...).
	Name() string

	// Width returns the register width in bytes.
	Width() int

	// Alignment returns the alignment in bytes required by aligned loads
	// and stores on this architecture.
	Alignment() int

	kernels
}

// kernels is the per-operation kernel table every architecture tag
// implements. One method per operation; width and signedness dispatch
// happens inside the method body, with unsupported cases forwarded to the
// parent architecture's method with identical arguments.
type kernels interface {
	add(l lane, a, b reg) reg
	sub(l lane, a, b reg) reg
	mul(l lane, a, b reg) reg
	div(l lane, a, b reg) reg
	sadd(l lane, a, b reg) reg
	ssub(l lane, a, b reg) reg
	abs(l lane, a reg) reg
	neg(l lane, a reg) reg
	min(l lane, a, b reg) reg
	max(l lane, a, b reg) reg

	and(a, b reg) reg
	or(a, b reg) reg
	xor(a, b reg) reg
	not(a reg) reg
	andnot(a, b reg) reg

	lshift(l lane, a reg, count int) reg
	rshift(l lane, a reg, count int) reg
	lshiftv(l lane, a, counts reg) reg
	rshiftv(l lane, a, counts reg) reg

	eq(l lane, a, b reg) reg
	gt(l lane, a, b reg) reg

	hadd(l lane, a reg) uint64
	sel(l lane, cond, t, f reg) reg
	selImm(l lane, imm uint64, t, f reg) reg

	gather(l lane, src []byte, offsets reg, osize, scale int) reg

	complexLow(l lane, re, im reg) reg
	complexHigh(l lane, re, im reg) reg
	loadComplex(l lane, hi, lo reg) (re, im reg)
}

// Scalar is the root architecture: 128-bit batches computed with per-lane
// loops. Its kernels handle every element width directly and never forward.
type Scalar struct{}

// Name returns "scalar".
func (Scalar) Name() string { return "scalar" }

// Width returns 16 bytes. Scalar batches use 128-bit registers so that
// SSE42 kernels can forward to Scalar without reshaping their arguments.
func (Scalar) Width() int { return 16 }

// Alignment returns 16 bytes.
func (Scalar) Alignment() int { return 16 }

// SSE42 is the 128-bit x86 baseline (SSE through SSE4.2). Parent: Scalar.
type SSE42 struct{}

// Name returns "sse4.2".
func (SSE42) Name() string { return "sse4.2" }

// Width returns 16 bytes (128 bits).
func (SSE42) Width() int { return 16 }

// Alignment returns 16 bytes.
func (SSE42) Alignment() int { return 16 }

// AVX is the 256-bit floating-point baseline. Floating-point kernels are
// native at this level; integer kernels split the register into two 128-bit
// halves and run the SSE42 kernel on each. Parent: SSE42.
type AVX struct{}

// Name returns "avx".
func (AVX) Name() string { return "avx" }

// Width returns 32 bytes (256 bits).
func (AVX) Width() int { return 32 }

// Alignment returns 32 bytes.
func (AVX) Alignment() int { return 32 }

// AVX2 adds 256-bit integer instructions on top of AVX. Parent: AVX.
type AVX2 struct{}

// Name returns "avx2".
func (AVX2) Name() string { return "avx2" }

// Width returns 32 bytes (256 bits).
func (AVX2) Width() int { return 32 }

// Alignment returns 32 bytes.
func (AVX2) Alignment() int { return 32 }

// Parent returns the next-less-capable architecture a kernel forwards to,
// or false for the root. The relation is acyclic and terminates at Scalar.
func Parent(a Arch) (Arch, bool) {
	switch a.(type) {
	case AVX2:
		return AVX{}, true
	case AVX:
		return SSE42{}, true
	case SSE42:
		return Scalar{}, true
	default:
		return nil, false
	}
}

// MaxLanes returns the number of lanes in a batch of element type T on
// architecture A.
func MaxLanes[T Lanes, A Arch]() int {
	var a A
	var zero T
	return a.Width() / int(unsafe.Sizeof(zero))
}
