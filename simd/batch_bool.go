package simd

// Mask is the boolean companion of Batch: one truth value per lane, stored
// as a canonical lane mask (all bits set for true, all clear for false).
// Comparison kernels produce canonical masks, and every consumer (Select,
// the logical combinators, Bits) relies on that form; a mask never holds a
// partially set lane.
type Mask[T Lanes, A Arch] struct {
	r reg
}

// NumLanes returns the number of lanes in the mask.
func (m Mask[T, A]) NumLanes() int {
	var a A
	return laneFor[T](a).count()
}

// Get returns lane i.
func (m Mask[T, A]) Get(i int) bool {
	var a A
	l := laneFor[T](a)
	return m.r.lane(l, i) != 0
}

// MaskBroadcast returns a mask with every lane set to v.
func MaskBroadcast[T Lanes, A Arch](v bool) Mask[T, A] {
	var a A
	l := laneFor[T](a)
	var r reg
	if v {
		ones := laneOnes(l.size)
		for i := 0; i < l.count(); i++ {
			r.setLane(l, i, ones)
		}
	}
	return Mask[T, A]{r}
}

// MaskFromSlice builds a mask from per-lane truth values. src must hold at
// least NumLanes elements.
func MaskFromSlice[T Lanes, A Arch](src []bool) Mask[T, A] {
	var a A
	l := laneFor[T](a)
	n := l.count()
	if len(src) < n {
		panic("simd: mask load from a slice shorter than the batch")
	}
	var r reg
	ones := laneOnes(l.size)
	for i := 0; i < n; i++ {
		if src[i] {
			r.setLane(l, i, ones)
		}
	}
	return Mask[T, A]{r}
}

// Slice returns the lane truth values as a freshly allocated slice.
func (m Mask[T, A]) Slice() []bool {
	var a A
	l := laneFor[T](a)
	out := make([]bool, l.count())
	for i := range out {
		out[i] = m.r.lane(l, i) != 0
	}
	return out
}

// Bits packs the mask into an integer, lane i in bit i. The inverse of the
// packing done by BoolConst.
func (m Mask[T, A]) Bits() uint64 {
	var a A
	l := laneFor[T](a)
	var out uint64
	for i := 0; i < l.count(); i++ {
		if m.r.lane(l, i) != 0 {
			out |= uint64(1) << uint(i)
		}
	}
	return out
}

// All reports whether every lane is true.
func (m Mask[T, A]) All() bool {
	var a A
	l := laneFor[T](a)
	for i := 0; i < l.count(); i++ {
		if m.r.lane(l, i) == 0 {
			return false
		}
	}
	return true
}

// Any reports whether at least one lane is true.
func (m Mask[T, A]) Any() bool {
	var a A
	l := laneFor[T](a)
	for i := 0; i < l.count(); i++ {
		if m.r.lane(l, i) != 0 {
			return true
		}
	}
	return false
}

// CountTrue returns the number of true lanes.
func (m Mask[T, A]) CountTrue() int {
	var a A
	l := laneFor[T](a)
	n := 0
	for i := 0; i < l.count(); i++ {
		if m.r.lane(l, i) != 0 {
			n++
		}
	}
	return n
}

// And returns the lane-wise conjunction. Canonical masks stay canonical
// under the plain bitwise kernels.
func (m Mask[T, A]) And(o Mask[T, A]) Mask[T, A] {
	var a A
	return Mask[T, A]{a.and(m.r, o.r)}
}

// Or returns the lane-wise disjunction.
func (m Mask[T, A]) Or(o Mask[T, A]) Mask[T, A] {
	var a A
	return Mask[T, A]{a.or(m.r, o.r)}
}

// Xor returns the lane-wise exclusive or.
func (m Mask[T, A]) Xor(o Mask[T, A]) Mask[T, A] {
	var a A
	return Mask[T, A]{a.xor(m.r, o.r)}
}

// Not returns the lane-wise complement. The bitwise NOT of a canonical
// mask is again canonical.
func (m Mask[T, A]) Not() Mask[T, A] {
	var a A
	return Mask[T, A]{a.not(m.r)}
}
