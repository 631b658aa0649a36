package simd

import "testing"

func interleaved32(n int) []float32 {
	out := make([]float32, 2*n)
	for i := 0; i < n; i++ {
		out[2*i] = float32(i + 1)        // re
		out[2*i+1] = -float32(i+1) * 0.5 // im
	}
	return out
}

func interleaved64(n int) []float64 {
	out := make([]float64, 2*n)
	for i := 0; i < n; i++ {
		out[2*i] = float64(i + 1)
		out[2*i+1] = -float64(i+1) * 0.5
	}
	return out
}

func TestLoadComplexDeinterleaves32(t *testing.T) {
	// The shuffle sequences differ per architecture but must all produce
	// the split (re..., im...) layout from (re, im) pairs.
	check := func(name string, re, im []float32, n int) {
		t.Helper()
		for i := 0; i < n; i++ {
			if re[i] != float32(i+1) {
				t.Errorf("%s: re lane %d: got %f, want %f", name, i, re[i], float32(i+1))
			}
			if im[i] != -float32(i+1)*0.5 {
				t.Errorf("%s: im lane %d: got %f, want %f", name, i, im[i], -float32(i+1)*0.5)
			}
		}
	}

	c2 := LoadComplexInterleaved[float32, AVX2](interleaved32(8))
	check("avx2 float32", c2.Real().Slice(), c2.Imag().Slice(), 8)

	ca := LoadComplexInterleaved[float32, AVX](interleaved32(8))
	check("avx float32", ca.Real().Slice(), ca.Imag().Slice(), 8)

	cs := LoadComplexInterleaved[float32, SSE42](interleaved32(4))
	check("sse4.2 float32", cs.Real().Slice(), cs.Imag().Slice(), 4)

	c0 := LoadComplexInterleaved[float32, Scalar](interleaved32(4))
	check("scalar float32", c0.Real().Slice(), c0.Imag().Slice(), 4)
}

func TestLoadComplexDeinterleaves64(t *testing.T) {
	c2 := LoadComplexInterleaved[float64, AVX2](interleaved64(4))
	sameLanes(t, "avx2 float64 re", c2.Real().Slice(), []float64{1, 2, 3, 4})
	sameLanes(t, "avx2 float64 im", c2.Imag().Slice(), []float64{-0.5, -1, -1.5, -2})

	cs := LoadComplexInterleaved[float64, SSE42](interleaved64(2))
	sameLanes(t, "sse4.2 float64 re", cs.Real().Slice(), []float64{1, 2})
	sameLanes(t, "sse4.2 float64 im", cs.Imag().Slice(), []float64{-0.5, -1})
}

func TestComplexInterleaveRoundTrip(t *testing.T) {
	src64 := interleaved64(4)
	c := LoadComplexInterleaved[float64, AVX2](src64)
	out := make([]float64, len(src64))
	c.StoreInterleaved(out)
	sameLanes(t, "avx2 float64 interleave round trip", out, src64)

	src32 := interleaved32(8)
	c32 := LoadComplexInterleaved[float32, AVX2](src32)
	out32 := make([]float32, len(src32))
	c32.StoreInterleaved(out32)
	sameLanes(t, "avx2 float32 interleave round trip", out32, src32)

	cs := LoadComplexInterleaved[float64, SSE42](src64[:4])
	outS := make([]float64, 4)
	cs.StoreInterleaved(outS)
	sameLanes(t, "sse4.2 float64 interleave round trip", outS, src64[:4])
}

func TestStoreInterleavedMatchesScalar(t *testing.T) {
	re := []float64{1, 2, 3, 4}
	im := []float64{5, 6, 7, 8}
	c := LoadComplexSplit[float64, AVX2](re, im)
	got := make([]float64, 8)
	c.StoreInterleaved(got)
	sameLanes(t, "StoreInterleaved float64 avx2", got,
		[]float64{1, 5, 2, 6, 3, 7, 4, 8})
}

func TestComplexConvenienceLoads(t *testing.T) {
	src := []complex64{1 + 2i, 3 + 4i, 5 + 6i, 7 + 8i, 9 + 10i, 11 + 12i, 13 + 14i, 15 + 16i}
	c := LoadComplex64[AVX2](src)
	sameLanes(t, "LoadComplex64 re", c.Real().Slice(),
		[]float32{1, 3, 5, 7, 9, 11, 13, 15})
	sameLanes(t, "LoadComplex64 im", c.Imag().Slice(),
		[]float32{2, 4, 6, 8, 10, 12, 14, 16})

	dst := make([]complex64, 8)
	StoreComplex64(c, dst)
	sameLanes(t, "StoreComplex64 round trip", dst, src)

	src128 := []complex128{1 + 1i, 2 - 2i, -3 + 3i, 4i}
	c128 := LoadComplex128[AVX2](src128)
	dst128 := make([]complex128, 4)
	StoreComplex128(c128, dst128)
	sameLanes(t, "complex128 round trip", dst128, src128)
}

func TestComplexArithmetic(t *testing.T) {
	a := []complex128{1 + 2i, 3 - 1i, -2 + 0.5i, 0}
	b := []complex128{2 - 1i, 1 + 1i, 4i, 5 + 5i}
	ca := LoadComplex128[AVX2](a)
	cb := LoadComplex128[AVX2](b)

	sum := make([]complex128, 4)
	StoreComplex128(AddComplex(ca, cb), sum)
	diff := make([]complex128, 4)
	StoreComplex128(SubComplex(ca, cb), diff)
	prod := make([]complex128, 4)
	StoreComplex128(MulComplex(ca, cb), prod)

	for i := range a {
		if sum[i] != a[i]+b[i] {
			t.Errorf("AddComplex: lane %d: got %v, want %v", i, sum[i], a[i]+b[i])
		}
		if diff[i] != a[i]-b[i] {
			t.Errorf("SubComplex: lane %d: got %v, want %v", i, diff[i], a[i]-b[i])
		}
		if prod[i] != a[i]*b[i] {
			t.Errorf("MulComplex: lane %d: got %v, want %v", i, prod[i], a[i]*b[i])
		}
	}

	conj := Conj(ca)
	for i := range a {
		re, im := conj.GetLane(i)
		if re != real(a[i]) || im != -imag(a[i]) {
			t.Errorf("Conj: lane %d: got (%f, %f)", i, re, im)
		}
	}
}

func TestComplexSplitStore(t *testing.T) {
	src := interleaved64(4)
	c := LoadComplexInterleaved[float64, AVX](src)
	re := make([]float64, 4)
	im := make([]float64, 4)
	c.StoreSplit(re, im)
	for i := range re {
		if re[i] != src[2*i] || im[i] != src[2*i+1] {
			t.Errorf("StoreSplit: lane %d: got (%f, %f), want (%f, %f)",
				i, re[i], im[i], src[2*i], src[2*i+1])
		}
	}
}
