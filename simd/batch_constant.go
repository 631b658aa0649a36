package simd

// Compile-time-style constant batches. A Const or BoolConst is built once
// from a generator function of the lane index and then reused; BoolConst
// additionally keeps its lanes as a packed immediate so SelectConst can
// reach the immediate-operand blend kernels that an ordinary Mask cannot.

// Const is a batch whose lane values are fixed at construction.
type Const[T Lanes, A Arch] struct {
	b Batch[T, A]
}

// MakeConst builds a constant batch by calling gen(i, n) for each lane i of
// n total lanes.
func MakeConst[T Lanes, A Arch](gen func(i, n int) T) Const[T, A] {
	n := MaxLanes[T, A]()
	buf := make([]T, n)
	for i := range buf {
		buf[i] = gen(i, n)
	}
	return Const[T, A]{Load[T, A](buf)}
}

// Get returns lane i.
func (c Const[T, A]) Get(i int) T { return c.b.Get(i) }

// Batch returns the constant's value as an ordinary batch.
func (c Const[T, A]) Batch() Batch[T, A] { return c.b }

// Ramp is the constant batch 0, 1, 2, ... per lane.
func Ramp[T Lanes, A Arch]() Const[T, A] {
	return MakeConst[T, A](func(i, _ int) T { return T(i) })
}

// BoolConst is a mask whose lane values are fixed at construction, packed
// one lane per bit.
type BoolConst[T Lanes, A Arch] struct {
	bits uint64
}

// MakeBoolConst builds a constant mask by calling gen(i, n) for each lane.
func MakeBoolConst[T Lanes, A Arch](gen func(i, n int) bool) BoolConst[T, A] {
	n := MaxLanes[T, A]()
	var bits uint64
	for i := 0; i < n; i++ {
		if gen(i, n) {
			bits |= uint64(1) << uint(i)
		}
	}
	return BoolConst[T, A]{bits}
}

// Get returns lane i.
func (c BoolConst[T, A]) Get(i int) bool {
	return c.bits&(uint64(1)<<uint(i)) != 0
}

// Bits returns the packed lane bits, lane i in bit i.
func (c BoolConst[T, A]) Bits() uint64 { return c.bits }

// Mask materializes the constant as an ordinary mask register.
func (c BoolConst[T, A]) Mask() Mask[T, A] {
	var a A
	return Mask[T, A]{maskFromImm(laneFor[T](a), c.bits)}
}

// SelectConst returns lane-wise cond ? a : b using the immediate-mask
// select kernel. With the mask known up front, architectures with an
// immediate blend use it instead of materializing a mask register; the
// result is identical to Select(cond.Mask(), a, b).
func SelectConst[T Lanes, A Arch](cond BoolConst[T, A], a, b Batch[T, A]) Batch[T, A] {
	var t A
	return Batch[T, A]{t.selImm(laneFor[T](t), cond.bits, a.r, b.r)}
}

// FirstNTrue is a mask generator: lanes below N are true, the rest false.
type FirstNTrue[T Lanes, A Arch] struct {
	N int
}

// Get returns lane i.
func (f FirstNTrue[T, A]) Get(i int) bool { return i < f.N }

// BoolConst packs the generator into a constant mask.
func (f FirstNTrue[T, A]) BoolConst() BoolConst[T, A] {
	return MakeBoolConst[T, A](func(i, _ int) bool { return i < f.N })
}

// Mask materializes the generator by comparing a lane-index ramp against N
// with a signed integer compare of the element width, so the same path
// works for any lane type.
func (f FirstNTrue[T, A]) Mask() Mask[T, A] {
	var a A
	l := laneFor[T](a)
	il := lane{size: l.size, width: l.width, signed: true}
	// Clamp so the bound still fits the narrowest signed lane.
	bound := f.N
	if bound > il.count() {
		bound = il.count()
	}
	if bound < 0 {
		bound = 0
	}
	var ramp, n reg
	for i := 0; i < il.count(); i++ {
		ramp.setLane(il, i, uint64(i))
		n.setLane(il, i, uint64(int64(bound)))
	}
	return Mask[T, A]{a.gt(il, n, ramp)}
}

// StrideOffset is an offset generator: lane i holds i*Stride. Useful as the
// offset operand of Gather for strided access.
type StrideOffset[T Integers, A Arch] struct {
	Stride int
}

// Get returns lane i.
func (s StrideOffset[T, A]) Get(i int) T { return T(i * s.Stride) }

// Batch materializes the offsets.
func (s StrideOffset[T, A]) Batch() Batch[T, A] {
	return MakeConst[T, A](func(i, _ int) T { return T(i * s.Stride) }).Batch()
}
