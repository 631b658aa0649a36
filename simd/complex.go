package simd

// ComplexBatch holds one batch of real parts and one of imaginary parts.
// The split layout keeps arithmetic lane-parallel; the interleaved
// (re, im, re, im, ...) memory form is converted at the load/store
// boundary with the architecture's shuffle sequences.
type ComplexBatch[T Floats, A Arch] struct {
	re, im Batch[T, A]
}

// ComplexFromParts builds a complex batch from its real and imaginary
// parts.
func ComplexFromParts[T Floats, A Arch](re, im Batch[T, A]) ComplexBatch[T, A] {
	return ComplexBatch[T, A]{re, im}
}

// Real returns the batch of real parts.
func (c ComplexBatch[T, A]) Real() Batch[T, A] { return c.re }

// Imag returns the batch of imaginary parts.
func (c ComplexBatch[T, A]) Imag() Batch[T, A] { return c.im }

// NumLanes returns the number of complex lanes.
func (c ComplexBatch[T, A]) NumLanes() int { return c.re.NumLanes() }

// GetLane returns the real and imaginary parts of lane i.
func (c ComplexBatch[T, A]) GetLane(i int) (re, im T) {
	return c.re.Get(i), c.im.Get(i)
}

// LoadComplexInterleaved reads NumLanes complex values stored as
// alternating (re, im) pairs: src must hold at least 2*NumLanes elements.
// The first register's worth of pairs is the "hi" operand of the
// deinterleave sequence and the second the "lo", matching the native
// shuffle sequences the kernels model.
func LoadComplexInterleaved[T Floats, A Arch](src []T) ComplexBatch[T, A] {
	var a A
	l := laneFor[T](a)
	n := l.count()
	if len(src) < 2*n {
		panic("simd: complex load from a slice shorter than the batch")
	}
	hi := Load[T, A](src[:n])
	lo := Load[T, A](src[n : 2*n])
	re, im := a.loadComplex(l, hi.r, lo.r)
	return ComplexBatch[T, A]{Batch[T, A]{re}, Batch[T, A]{im}}
}

// StoreInterleaved writes the batch as alternating (re, im) pairs: dst
// must hold at least 2*NumLanes elements.
func (c ComplexBatch[T, A]) StoreInterleaved(dst []T) {
	var a A
	l := laneFor[T](a)
	n := l.count()
	if len(dst) < 2*n {
		panic("simd: complex store into a slice shorter than the batch")
	}
	low := Batch[T, A]{a.complexLow(l, c.re.r, c.im.r)}
	high := Batch[T, A]{a.complexHigh(l, c.re.r, c.im.r)}
	Store(low, dst[:n])
	Store(high, dst[n:2*n])
}

// LoadComplexSplit reads the real and imaginary parts from separate
// slices.
func LoadComplexSplit[T Floats, A Arch](re, im []T) ComplexBatch[T, A] {
	return ComplexBatch[T, A]{Load[T, A](re), Load[T, A](im)}
}

// StoreSplit writes the real and imaginary parts to separate slices.
func (c ComplexBatch[T, A]) StoreSplit(re, im []T) {
	Store(c.re, re)
	Store(c.im, im)
}

// LoadComplex64 reads NumLanes complex64 values. complex64 memory is
// already the interleaved (re, im) layout.
func LoadComplex64[A Arch](src []complex64) ComplexBatch[float32, A] {
	lanes := MaxLanes[float32, A]()
	if len(src) < lanes {
		panic("simd: complex load from a slice shorter than the batch")
	}
	buf := make([]float32, 2*lanes)
	for i, v := range src[:lanes] {
		buf[2*i] = real(v)
		buf[2*i+1] = imag(v)
	}
	return LoadComplexInterleaved[float32, A](buf)
}

// StoreComplex64 writes the batch to complex64 memory.
func StoreComplex64[A Arch](c ComplexBatch[float32, A], dst []complex64) {
	lanes := c.NumLanes()
	if len(dst) < lanes {
		panic("simd: complex store into a slice shorter than the batch")
	}
	buf := make([]float32, 2*lanes)
	c.StoreInterleaved(buf)
	for i := 0; i < lanes; i++ {
		dst[i] = complex(buf[2*i], buf[2*i+1])
	}
}

// LoadComplex128 reads NumLanes complex128 values.
func LoadComplex128[A Arch](src []complex128) ComplexBatch[float64, A] {
	lanes := MaxLanes[float64, A]()
	if len(src) < lanes {
		panic("simd: complex load from a slice shorter than the batch")
	}
	buf := make([]float64, 2*lanes)
	for i, v := range src[:lanes] {
		buf[2*i] = real(v)
		buf[2*i+1] = imag(v)
	}
	return LoadComplexInterleaved[float64, A](buf)
}

// StoreComplex128 writes the batch to complex128 memory.
func StoreComplex128[A Arch](c ComplexBatch[float64, A], dst []complex128) {
	lanes := c.NumLanes()
	if len(dst) < lanes {
		panic("simd: complex store into a slice shorter than the batch")
	}
	buf := make([]float64, 2*lanes)
	c.StoreInterleaved(buf)
	for i := 0; i < lanes; i++ {
		dst[i] = complex(buf[2*i], buf[2*i+1])
	}
}

// AddComplex returns lane-wise a + b.
func AddComplex[T Floats, A Arch](a, b ComplexBatch[T, A]) ComplexBatch[T, A] {
	return ComplexBatch[T, A]{Add(a.re, b.re), Add(a.im, b.im)}
}

// SubComplex returns lane-wise a - b.
func SubComplex[T Floats, A Arch](a, b ComplexBatch[T, A]) ComplexBatch[T, A] {
	return ComplexBatch[T, A]{Sub(a.re, b.re), Sub(a.im, b.im)}
}

// MulComplex returns the lane-wise complex product.
func MulComplex[T Floats, A Arch](a, b ComplexBatch[T, A]) ComplexBatch[T, A] {
	re := Sub(Mul(a.re, b.re), Mul(a.im, b.im))
	im := Add(Mul(a.re, b.im), Mul(a.im, b.re))
	return ComplexBatch[T, A]{re, im}
}

// NegComplex returns lane-wise -a.
func NegComplex[T Floats, A Arch](a ComplexBatch[T, A]) ComplexBatch[T, A] {
	return ComplexBatch[T, A]{Neg(a.re), Neg(a.im)}
}

// Conj returns the lane-wise complex conjugate.
func Conj[T Floats, A Arch](a ComplexBatch[T, A]) ComplexBatch[T, A] {
	return ComplexBatch[T, A]{a.re, Neg(a.im)}
}
