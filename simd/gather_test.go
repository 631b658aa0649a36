package simd

import "testing"

func TestGatherIndexInt32(t *testing.T) {
	src := make([]int32, 64)
	for i := range src {
		src[i] = int32(i * 10)
	}
	idx := Load[int32, AVX2]([]int32{7, 0, 3, 1, 63, 2, 5, 4})
	got := GatherIndex(src, idx).Slice()
	want := []int32{70, 0, 30, 10, 630, 20, 50, 40}
	sameLanes(t, "GatherIndex int32", got, want)
}

func TestGatherIndexInt64(t *testing.T) {
	src := []int64{100, 200, 300, 400, 500, 600}
	idx := Load[int64, AVX2]([]int64{5, 0, 2, 4})
	got := GatherIndex(src, idx).Slice()
	sameLanes(t, "GatherIndex int64", got, []int64{600, 100, 300, 500})
}

func TestGatherFloat(t *testing.T) {
	src := []float32{0.5, 1.5, 2.5, 3.5, 4.5, 5.5, 6.5, 7.5}
	idx := Load[int32, AVX2]([]int32{1, 1, 0, 7, 6, 2, 3, 5})
	got := GatherIndex(src, idx).Slice()
	sameLanes(t, "GatherIndex float32", got,
		[]float32{1.5, 1.5, 0.5, 7.5, 6.5, 2.5, 3.5, 5.5})

	d := []float64{10, 20, 30, 40}
	qidx := Load[int64, SSE42]([]int64{3, 1})
	sameLanes(t, "GatherIndex float64 sse4.2", GatherIndex(d, qidx).Slice(),
		[]float64{40, 20})
}

func TestGatherPrescaler(t *testing.T) {
	// A scale outside the hardware-legal set is folded into a legal one,
	// with the leftover factor multiplied into the offsets. Scale 12 on
	// 4-byte elements must read the same lanes as tripled indices.
	src := make([]int32, 96)
	for i := range src {
		src[i] = int32(i)
	}
	off := Load[int32, AVX2]([]int32{0, 1, 2, 3, 4, 5, 6, 7})
	got := Gather(src, off, 12).Slice()
	want := GatherIndex(src, Mul(off, Broadcast[int32, AVX2](3))).Slice()
	sameLanes(t, "Gather scale 12 vs tripled index", got, want)

	// Scale 16 reduces to 8 with a doubled offset.
	got16 := Gather(src, off, 16).Slice()
	want16 := Gather(src, Mul(off, Broadcast[int32, AVX2](2)), 8).Slice()
	sameLanes(t, "Gather scale 16 vs doubled offsets at 8", got16, want16)
}

func TestGatherMatchesScalar(t *testing.T) {
	src := make([]uint64, 32)
	for i := range src {
		src[i] = uint64(i) * 0x0101010101010101
	}
	idx := []int64{31, 0, 17, 4}
	got := GatherIndex(src, Load[int64, AVX2](idx)).Slice()
	for i := 0; i < len(idx); i += 2 {
		want := GatherIndex(src, Load[int64, Scalar](idx[i:])).Slice()
		sameLanes(t, "GatherIndex uint64 avx2 vs scalar", got[i:i+2], want)
	}
}

func TestGatherOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("gather past the end of src did not panic")
		}
	}()
	src := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	idx := Load[int32, AVX2]([]int32{0, 1, 2, 3, 4, 5, 6, 8})
	GatherIndex(src, idx)
}

func TestGatherOffsetWidthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("gather with mismatched offset width did not panic")
		}
	}()
	src := []int64{1, 2, 3, 4}
	idx := Load[int32, AVX2]([]int32{0, 1, 2, 3, 0, 1, 2, 3})
	GatherIndex(src, idx)
}

func TestStrideOffset(t *testing.T) {
	gen := StrideOffset[int32, AVX2]{Stride: 3}
	got := gen.Batch().Slice()
	sameLanes(t, "StrideOffset", got, []int32{0, 3, 6, 9, 12, 15, 18, 21})
	if gen.Get(5) != 15 {
		t.Errorf("StrideOffset.Get(5): got %d, want 15", gen.Get(5))
	}

	// Strided gather: every third element.
	src := make([]float32, 32)
	for i := range src {
		src[i] = float32(i)
	}
	v := GatherIndex(src, gen.Batch())
	sameLanes(t, "strided gather", v.Slice(),
		[]float32{0, 3, 6, 9, 12, 15, 18, 21})
}
