package simd

import (
	"math"
	"unsafe"
)

// Batch is a fixed-length vector of T lanes backed by one register of
// architecture A. Batches are plain values: copy freely, never shared.
//
// Every operation delegates to A's kernel table, so two batches with the
// same lanes but different architecture tags may take different instruction
// paths while producing the same lane values. A batch is always fully
// defined; constructors either fill every lane or panic.
type Batch[T Lanes, A Arch] struct {
	r reg
}

// NumLanes returns the number of lanes in the batch.
func (b Batch[T, A]) NumLanes() int {
	var a A
	return laneFor[T](a).count()
}

// Get returns lane i. It stores the batch to a temporary buffer and indexes
// it; this is the scalar escape hatch, not a performance-critical path.
func (b Batch[T, A]) Get(i int) T {
	buf := make([]T, b.NumLanes())
	Store(b, buf)
	return buf[i]
}

// Slice returns the lane values as a freshly allocated slice.
func (b Batch[T, A]) Slice() []T {
	buf := make([]T, b.NumLanes())
	Store(b, buf)
	return buf
}

// toBits returns the register bit pattern of a lane value, zero-extended.
func toBits[T Lanes](v T) uint64 {
	switch x := any(v).(type) {
	case float32:
		return uint64(math.Float32bits(x))
	case float64:
		return math.Float64bits(x)
	case int8:
		return uint64(uint8(x))
	case int16:
		return uint64(uint16(x))
	case int32:
		return uint64(uint32(x))
	case int64:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	default:
		return any(v).(uint64)
	}
}

// fromBits is the inverse of toBits.
func fromBits[T Lanes](bits uint64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(math.Float32frombits(uint32(bits))).(T)
	case float64:
		return any(math.Float64frombits(bits)).(T)
	case int8:
		return any(int8(bits)).(T)
	case int16:
		return any(int16(bits)).(T)
	case int32:
		return any(int32(bits)).(T)
	case int64:
		return any(int64(bits)).(T)
	case uint8:
		return any(uint8(bits)).(T)
	case uint16:
		return any(uint16(bits)).(T)
	case uint32:
		return any(uint32(bits)).(T)
	default:
		return any(bits).(T)
	}
}

// New builds a batch from explicit lane values. The count must match the
// lane count exactly; a mismatch is a programming error and panics.
func New[T Lanes, A Arch](values ...T) Batch[T, A] {
	var a A
	l := laneFor[T](a)
	if len(values) != l.count() {
		panic("simd: batch initializer count does not match the lane count")
	}
	var r reg
	for i, v := range values {
		r.setLane(l, i, toBits(v))
	}
	return Batch[T, A]{r}
}

// Broadcast returns a batch with every lane set to v.
func Broadcast[T Lanes, A Arch](v T) Batch[T, A] {
	var a A
	l := laneFor[T](a)
	var r reg
	bits := toBits(v)
	for i := 0; i < l.count(); i++ {
		r.setLane(l, i, bits)
	}
	return Batch[T, A]{r}
}

// Zero returns a batch with every lane zero.
func Zero[T Lanes, A Arch]() Batch[T, A] {
	return Batch[T, A]{}
}

// Load reads one batch worth of elements from src with no alignment
// requirement. src must hold at least NumLanes elements.
func Load[T Lanes, A Arch](src []T) Batch[T, A] {
	var a A
	l := laneFor[T](a)
	n := l.count()
	if len(src) < n {
		panic("simd: load from a slice shorter than the batch")
	}
	var r reg
	for i := 0; i < n; i++ {
		r.setLane(l, i, toBits(src[i]))
	}
	return Batch[T, A]{r}
}

// LoadAligned is Load with the architecture's alignment requirement
// asserted on the source address.
func LoadAligned[T Lanes, A Arch](src []T) Batch[T, A] {
	var a A
	if len(src) > 0 {
		assertAligned(unsafe.Pointer(&src[0]), a.Alignment())
	}
	return Load[T, A](src)
}

// Store writes the batch's lanes to dst with no alignment requirement.
// dst must hold at least NumLanes elements.
func Store[T Lanes, A Arch](v Batch[T, A], dst []T) {
	var a A
	l := laneFor[T](a)
	n := l.count()
	if len(dst) < n {
		panic("simd: store into a slice shorter than the batch")
	}
	for i := 0; i < n; i++ {
		dst[i] = fromBits[T](v.r.lane(l, i))
	}
}

// StoreAligned is Store with the architecture's alignment requirement
// asserted on the destination address.
func StoreAligned[T Lanes, A Arch](v Batch[T, A], dst []T) {
	var a A
	if len(dst) > 0 {
		assertAligned(unsafe.Pointer(&dst[0]), a.Alignment())
	}
	Store(v, dst)
}

func assertAligned(p unsafe.Pointer, align int) {
	if uintptr(p)%uintptr(align) != 0 {
		panic("simd: aligned load/store on a misaligned address")
	}
}

// ConvertLoad reads a batch of T from memory holding U, converting each
// element. The conversion runs lane by lane; use Load when the memory
// element type already matches.
func ConvertLoad[T Lanes, A Arch, U Lanes](src []U) Batch[T, A] {
	var a A
	n := laneFor[T](a).count()
	if len(src) < n {
		panic("simd: load from a slice shorter than the batch")
	}
	buf := make([]T, n)
	for i := range buf {
		buf[i] = T(src[i])
	}
	return Load[T, A](buf)
}

// ConvertStore writes the batch to memory holding U, converting each lane.
func ConvertStore[T Lanes, A Arch, U Lanes](v Batch[T, A], dst []U) {
	n := v.NumLanes()
	if len(dst) < n {
		panic("simd: store into a slice shorter than the batch")
	}
	buf := make([]T, n)
	Store(v, buf)
	for i, x := range buf {
		dst[i] = U(x)
	}
}

// Add returns lane-wise a + b. Integer overflow wraps.
func Add[T Lanes, A Arch](a, b Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.add(laneFor[T](t), a.r, b.r)}
}

// Sub returns lane-wise a - b. Integer overflow wraps.
func Sub[T Lanes, A Arch](a, b Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.sub(laneFor[T](t), a.r, b.r)}
}

// Mul returns lane-wise a * b. Integer products truncate to the lane width
// (wraparound), for either signedness.
func Mul[T Lanes, A Arch](a, b Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.mul(laneFor[T](t), a.r, b.r)}
}

// Div returns lane-wise a / b. Integer division by zero panics; float
// division follows IEEE 754.
func Div[T Lanes, A Arch](a, b Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.div(laneFor[T](t), a.r, b.r)}
}

// AddSaturated returns lane-wise a + b with saturation at the lane type's
// range instead of wraparound.
func AddSaturated[T Integers, A Arch](a, b Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.sadd(laneFor[T](t), a.r, b.r)}
}

// SubSaturated returns lane-wise a - b with saturation.
func SubSaturated[T Integers, A Arch](a, b Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.ssub(laneFor[T](t), a.r, b.r)}
}

// Abs returns the lane-wise absolute value. Unsigned batches are returned
// unchanged; the minimum signed value maps to itself.
func Abs[T Lanes, A Arch](a Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.abs(laneFor[T](t), a.r)}
}

// Neg returns lane-wise -a.
func Neg[T Lanes, A Arch](a Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.neg(laneFor[T](t), a.r)}
}

// Min returns the lane-wise minimum. For floats the second operand wins
// when either input is NaN, matching the native MIN instructions.
func Min[T Lanes, A Arch](a, b Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.min(laneFor[T](t), a.r, b.r)}
}

// Max returns the lane-wise maximum, with the same NaN rule as Min.
func Max[T Lanes, A Arch](a, b Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.max(laneFor[T](t), a.r, b.r)}
}

// And returns the bitwise AND of the register bits.
func And[T Lanes, A Arch](a, b Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.and(a.r, b.r)}
}

// Or returns the bitwise OR of the register bits.
func Or[T Lanes, A Arch](a, b Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.or(a.r, b.r)}
}

// Xor returns the bitwise XOR of the register bits.
func Xor[T Lanes, A Arch](a, b Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.xor(a.r, b.r)}
}

// Not returns the bitwise complement of the register bits.
func Not[T Lanes, A Arch](a Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.not(a.r)}
}

// AndNot returns ^a & b, the PANDN operand order.
func AndNot[T Lanes, A Arch](a, b Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.andnot(a.r, b.r)}
}

// ShiftLeft shifts every lane left by count bits. Counts at or beyond the
// lane width produce zero, as the native shifts do.
func ShiftLeft[T Integers, A Arch](a Batch[T, A], count int) Batch[T, A] {
	var t A
	return Batch[T, A]{t.lshift(laneFor[T](t), a.r, count)}
}

// ShiftRight shifts every lane right by count bits: logical for unsigned
// lanes, arithmetic for signed ones. Signed counts at or beyond the lane
// width saturate to the sign fill; unsigned ones produce zero.
func ShiftRight[T Integers, A Arch](a Batch[T, A], count int) Batch[T, A] {
	var t A
	return Batch[T, A]{t.rshift(laneFor[T](t), a.r, count)}
}

// ShiftLeftEach shifts each lane left by the count in the matching lane of
// counts, treated as unsigned.
func ShiftLeftEach[T Integers, A Arch](a, counts Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.lshiftv(laneFor[T](t), a.r, counts.r)}
}

// ShiftRightEach shifts each lane right by the count in the matching lane
// of counts, with the same signedness rules as ShiftRight.
func ShiftRightEach[T Integers, A Arch](a, counts Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.rshiftv(laneFor[T](t), a.r, counts.r)}
}

// Equal compares lanes for equality. Float lanes compare by value, so
// -0 == +0 and NaN lanes are never equal.
func Equal[T Lanes, A Arch](a, b Batch[T, A]) Mask[T, A] {
	var t A
	return Mask[T, A]{t.eq(laneFor[T](t), a.r, b.r)}
}

// NotEqual is the complement of Equal.
func NotEqual[T Lanes, A Arch](a, b Batch[T, A]) Mask[T, A] {
	var t A
	return Mask[T, A]{t.not(t.eq(laneFor[T](t), a.r, b.r))}
}

// Greater compares lanes with a > b.
func Greater[T Lanes, A Arch](a, b Batch[T, A]) Mask[T, A] {
	var t A
	return Mask[T, A]{t.gt(laneFor[T](t), a.r, b.r)}
}

// Less compares lanes with a < b.
func Less[T Lanes, A Arch](a, b Batch[T, A]) Mask[T, A] {
	return Greater(b, a)
}

// GreaterEqual compares lanes with a >= b. Float lanes use the ordered
// predicate, so a NaN operand reports false; integer lanes derive it as
// NOT (b > a).
func GreaterEqual[T Lanes, A Arch](a, b Batch[T, A]) Mask[T, A] {
	var t A
	l := laneFor[T](t)
	if l.float {
		return Mask[T, A]{t.or(t.gt(l, a.r, b.r), t.eq(l, a.r, b.r))}
	}
	return Mask[T, A]{t.not(t.gt(l, b.r, a.r))}
}

// LessEqual compares lanes with a <= b, with the same NaN rule as
// GreaterEqual.
func LessEqual[T Lanes, A Arch](a, b Batch[T, A]) Mask[T, A] {
	var t A
	l := laneFor[T](t)
	if l.float {
		return Mask[T, A]{t.or(t.gt(l, b.r, a.r), t.eq(l, a.r, b.r))}
	}
	return Mask[T, A]{t.not(t.gt(l, a.r, b.r))}
}

// Select returns lane-wise cond ? a : b.
func Select[T Lanes, A Arch](cond Mask[T, A], a, b Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.sel(laneFor[T](t), cond.r, a.r, b.r)}
}

// ReduceSum adds all lanes into one value. Integer reductions are exact
// modulo the lane width regardless of combination order; float reductions
// use the architecture's fixed pairwise tree.
func ReduceSum[T Lanes, A Arch](a Batch[T, A]) T {
	var t A
	return fromBits[T](t.hadd(laneFor[T](t), a.r))
}

// Inc returns a with every lane incremented by one.
func Inc[T Lanes, A Arch](a Batch[T, A]) Batch[T, A] {
	return Add(a, Broadcast[T, A](T(1)))
}

// Dec returns a with every lane decremented by one.
func Dec[T Lanes, A Arch](a Batch[T, A]) Batch[T, A] {
	return Sub(a, Broadcast[T, A](T(1)))
}
