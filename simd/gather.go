package simd

import "unsafe"

// Offsets is the constraint for gather offset lane types. Hardware gathers
// index with signed 32- or 64-bit lanes only.
type Offsets interface {
	int32 | int64
}

// gatherScales are the prescaler candidates, largest first. An arbitrary
// byte scale is folded into the largest hardware-legal scale dividing it;
// the remaining factor is pre-multiplied into the offsets.
var gatherScales = [...]int{8, 4, 2, 1}

// Gather reads one element of src per lane at byte offset offsets[i]*scale
// from the start of src. Offsets are signed but must land inside src; an
// out-of-range lane panics with a bounds error. The offset lane width must
// equal the element lane width, so the two batches have the same lane
// count.
func Gather[T Lanes, I Offsets, A Arch](src []T, offsets Batch[I, A], scale int) Batch[T, A] {
	var a A
	l := laneFor[T](a)
	ol := laneFor[I](a)
	if l.size != ol.size {
		panic("simd: gather offset lanes must be as wide as the element lanes")
	}
	if scale < 1 {
		panic("simd: gather scale must be positive")
	}
	if len(src) == 0 {
		panic("simd: gather from an empty slice")
	}
	reduced := scale
	for _, s := range gatherScales {
		if scale%s == 0 {
			reduced = s
			break
		}
	}
	if factor := scale / reduced; factor != 1 {
		offsets = Mul(offsets, Broadcast[I, A](I(factor)))
	}
	bytes := unsafe.Slice((*byte)(unsafe.Pointer(&src[0])), len(src)*l.size)
	return Batch[T, A]{a.gather(l, bytes, offsets.r, ol.size, reduced)}
}

// GatherIndex is Gather with element indices instead of byte offsets: lane
// i reads src[offsets[i]].
func GatherIndex[T Lanes, I Offsets, A Arch](src []T, offsets Batch[I, A]) Batch[T, A] {
	var zero T
	return Gather(src, offsets, int(unsafe.Sizeof(zero)))
}
