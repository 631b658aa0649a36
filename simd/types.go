// Package simd provides a portable batch (vector) abstraction modeled on
// fixed-width SIMD registers.
//
// A Batch is a fixed number of lanes of one element type, backed by a single
// register-sized value for the chosen architecture tag. Every operation is a
// pure function: it reads its operands, applies the exact semantics of the
// corresponding native instruction sequence for that architecture, and
// returns a new value. Architectures form a capability chain
// (AVX2 -> AVX -> SSE42 -> Scalar); when a kernel has no case for an element
// width it forwards the identical arguments to its parent architecture, and
// the chain always terminates in the Scalar kernels, which handle every
// width and signedness with per-lane loops.
//
// Basic usage:
//
//	a := simd.Load[int32, simd.AVX2](data1)
//	b := simd.Load[int32, simd.AVX2](data2)
//	sum := simd.Add(a, b)
//	simd.Store(sum, out)
package simd

import (
	"encoding/binary"
	"unsafe"
)

// Floats is a constraint for floating-point lane types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in batch lanes.
type Lanes interface {
	Floats | Integers
}

// regBytes is the widest register in the architecture chain (AVX2, 256 bit).
// Narrower architectures use a prefix of the register and leave the rest
// zero.
const regBytes = 32

// reg is the bit pattern of one vector register. Lanes are little-endian
// within the register, matching the x86 layout the kernels model. reg is a
// trivially copyable value; kernels never share or alias register storage.
type reg [regBytes]byte

// lane describes the element layout a kernel call operates on: the element
// byte size, the number of register bytes in play, and the element category.
// The descriptor is computed once by the batch facade and passed unchanged
// down the forwarding chain, so a parent kernel sees exactly the same bytes
// as the architecture that forwarded to it.
type lane struct {
	size   int // element bytes: 1, 2, 4 or 8
	width  int // active register bytes: 16 or 32
	signed bool
	float  bool
}

// count returns the number of lanes.
func (l lane) count() int { return l.width / l.size }

// bits returns the element width in bits.
func (l lane) bits() int { return l.size * 8 }

// half returns the descriptor for one 128-bit half of a 256-bit operation.
func (l lane) half() lane {
	h := l
	h.width = l.width / 2
	return h
}

// laneOf computes the lane descriptor for element type T at the given
// register width. Signedness and floatness are derived arithmetically so the
// result is a pure function of the type.
func laneOf[T Lanes](width int) lane {
	var zero T
	return lane{
		size:   int(unsafe.Sizeof(zero)),
		width:  width,
		signed: T(0)-T(1) < T(0),
		float:  T(1)/T(2) != T(0),
	}
}

// laneFor computes the lane descriptor for element type T on architecture a.
func laneFor[T Lanes](a Arch) lane { return laneOf[T](a.Width()) }

// u8 returns lane i of r viewed as 8-bit lanes.
func (r *reg) u8(i int) uint8 { return r[i] }

func (r *reg) setU8(i int, v uint8) { r[i] = v }

// u16 returns lane i of r viewed as 16-bit lanes.
func (r *reg) u16(i int) uint16 { return binary.LittleEndian.Uint16(r[2*i:]) }

func (r *reg) setU16(i int, v uint16) { binary.LittleEndian.PutUint16(r[2*i:], v) }

// u32 returns lane i of r viewed as 32-bit lanes.
func (r *reg) u32(i int) uint32 { return binary.LittleEndian.Uint32(r[4*i:]) }

func (r *reg) setU32(i int, v uint32) { binary.LittleEndian.PutUint32(r[4*i:], v) }

// u64 returns lane i of r viewed as 64-bit lanes.
func (r *reg) u64(i int) uint64 { return binary.LittleEndian.Uint64(r[8*i:]) }

func (r *reg) setU64(i int, v uint64) { binary.LittleEndian.PutUint64(r[8*i:], v) }

// lane returns the raw bits of lane i, zero-extended to 64 bits.
func (r *reg) lane(l lane, i int) uint64 {
	switch l.size {
	case 1:
		return uint64(r.u8(i))
	case 2:
		return uint64(r.u16(i))
	case 4:
		return uint64(r.u32(i))
	default:
		return r.u64(i)
	}
}

// setLane stores the low l.size bytes of bits into lane i.
func (r *reg) setLane(l lane, i int, bits uint64) {
	switch l.size {
	case 1:
		r.setU8(i, uint8(bits))
	case 2:
		r.setU16(i, uint16(bits))
	case 4:
		r.setU32(i, uint32(bits))
	default:
		r.setU64(i, bits)
	}
}

// signExtend reinterprets the low size bytes of bits as a signed value.
func signExtend(bits uint64, size int) int64 {
	shift := 64 - 8*size
	return int64(bits<<shift) >> shift
}

// laneOnes is the canonical all-true mask value for an element size.
func laneOnes(size int) uint64 {
	if size == 8 {
		return ^uint64(0)
	}
	return (uint64(1) << (8 * size)) - 1
}

// split256 splits a 256-bit register into its two 128-bit halves, each
// placed in the low half of its own register.
func split256(r reg) (lo, hi reg) {
	copy(lo[:16], r[:16])
	copy(hi[:16], r[16:])
	return lo, hi
}

// merge256 recombines two 128-bit halves into one 256-bit register.
func merge256(lo, hi reg) reg {
	var r reg
	copy(r[:16], lo[:16])
	copy(r[16:], hi[:16])
	return r
}
