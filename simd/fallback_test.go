package simd

import (
	"math"
	"testing"
)

// Every architecture must produce the same lane values; only the
// instruction path differs. These tests run the wide-register paths
// against the Scalar kernels over the same data, chunked to the Scalar
// lane count.

// scalarChunks applies op to x and y one Scalar batch at a time.
func scalarChunks[T Lanes](op func(a, b Batch[T, Scalar]) Batch[T, Scalar], x, y []T) []T {
	n := MaxLanes[T, Scalar]()
	out := make([]T, len(x))
	for i := 0; i+n <= len(x); i += n {
		Store(op(Load[T, Scalar](x[i:]), Load[T, Scalar](y[i:])), out[i:])
	}
	return out
}

// xorshift gives a cheap deterministic value stream for lane data.
func xorshift(state *uint64) uint64 {
	x := *state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	*state = x
	return x
}

func randomLanes[T Integers](n int, seed uint64) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(xorshift(&seed))
	}
	return out
}

func TestAddMatchesScalarUint8(t *testing.T) {
	x := randomLanes[uint8](32, 1)
	y := randomLanes[uint8](32, 2)
	got := Add(Load[uint8, AVX2](x), Load[uint8, AVX2](y)).Slice()
	want := scalarChunks(Add[uint8, Scalar], x, y)
	sameLanes(t, "Add uint8 avx2 vs scalar", got, want)
}

func TestMulMatchesScalarInt64(t *testing.T) {
	x := randomLanes[int64](4, 3)
	y := randomLanes[int64](4, 4)
	got := Mul(Load[int64, AVX2](x), Load[int64, AVX2](y)).Slice()
	want := scalarChunks(Mul[int64, Scalar], x, y)
	sameLanes(t, "Mul int64 avx2 vs scalar", got, want)
}

func TestShiftRightMatchesScalarInt8(t *testing.T) {
	x := randomLanes[int8](32, 5)
	v := Load[int8, AVX2](x)
	for count := 0; count < 8; count++ {
		got := ShiftRight(v, count).Slice()
		want := scalarChunks(func(a, _ Batch[int8, Scalar]) Batch[int8, Scalar] {
			return ShiftRight(a, count)
		}, x, x)
		sameLanes(t, "ShiftRight int8 avx2 vs scalar", got, want)
	}
}

func TestMinMatchesScalarUint32(t *testing.T) {
	x := randomLanes[uint32](8, 6)
	y := randomLanes[uint32](8, 7)
	got := Min(Load[uint32, AVX2](x), Load[uint32, AVX2](y)).Slice()
	want := scalarChunks(Min[uint32, Scalar], x, y)
	sameLanes(t, "Min uint32 avx2 vs scalar", got, want)
}

func TestSaturatedMatchesScalarInt16(t *testing.T) {
	x := randomLanes[int16](16, 8)
	y := randomLanes[int16](16, 9)
	gotAdd := AddSaturated(Load[int16, AVX2](x), Load[int16, AVX2](y)).Slice()
	sameLanes(t, "AddSaturated int16 avx2 vs scalar", gotAdd,
		scalarChunks(AddSaturated[int16, Scalar], x, y))
	gotSub := SubSaturated(Load[int16, AVX2](x), Load[int16, AVX2](y)).Slice()
	sameLanes(t, "SubSaturated int16 avx2 vs scalar", gotSub,
		scalarChunks(SubSaturated[int16, Scalar], x, y))
}

func TestGreaterMatchesScalarUint64(t *testing.T) {
	// Unsigned 64-bit compare has no native instruction anywhere in the
	// chain; the whole chain must agree with the per-lane predicate.
	x := randomLanes[uint64](4, 10)
	y := randomLanes[uint64](4, 11)
	x[0], y[0] = math.MaxUint64, 1
	m := Greater(Load[uint64, AVX2](x), Load[uint64, AVX2](y))
	for i := 0; i < 4; i++ {
		want := x[i] > y[i]
		if m.Get(i) != want {
			t.Errorf("Greater uint64: lane %d: got %v, want %v (x=%d y=%d)", i, m.Get(i), want, x[i], y[i])
		}
	}
}

func TestReduceSumMatchesScalarInt32(t *testing.T) {
	x := randomLanes[int32](8, 12)
	got := ReduceSum(Load[int32, AVX2](x))
	var want int32
	for _, v := range x {
		want += v
	}
	if got != want {
		t.Errorf("ReduceSum int32 avx2: got %d, want %d", got, want)
	}

	// SSE42 and AVX take different horizontal-add sequences to the same
	// integer sum.
	for i := 0; i < 8; i += 4 {
		g := ReduceSum(Load[int32, SSE42](x[i:]))
		var w int32
		for _, v := range x[i : i+4] {
			w += v
		}
		if g != w {
			t.Errorf("ReduceSum int32 sse4.2: got %d, want %d", g, w)
		}
	}
}

func TestReduceSumFloatTreeExact(t *testing.T) {
	// Sums of small integers are exact in every association order, so the
	// pairwise trees of all levels must agree with the plain loop.
	x := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	var want float32
	for _, v := range x {
		want += v
	}
	if got := ReduceSum(Load[float32, AVX2](x)); got != want {
		t.Errorf("ReduceSum float32 avx2: got %f, want %f", got, want)
	}
	if got := ReduceSum(Load[float32, Scalar](x[:4])); got != 10 {
		t.Errorf("ReduceSum float32 scalar: got %f, want 10", got)
	}
}

func TestSelectMatchesScalarInt8(t *testing.T) {
	x := randomLanes[int8](32, 13)
	y := randomLanes[int8](32, 14)
	m := Greater(Load[int8, AVX2](x), Load[int8, AVX2](y))
	got := Select(m, Load[int8, AVX2](x), Load[int8, AVX2](y)).Slice()
	for i := range got {
		want := y[i]
		if x[i] > y[i] {
			want = x[i]
		}
		if got[i] != want {
			t.Errorf("Select int8: lane %d: got %d, want %d", i, got[i], want)
		}
	}
}

func TestAbsMatchesScalarInt32(t *testing.T) {
	x := randomLanes[int32](8, 15)
	x[0] = math.MinInt32
	got := Abs(Load[int32, AVX2](x)).Slice()
	want := scalarChunks(func(a, _ Batch[int32, Scalar]) Batch[int32, Scalar] {
		return Abs(a)
	}, x, x)
	sameLanes(t, "Abs int32 avx2 vs scalar", got, want)
}

func TestForwardedWidthsMatchParent(t *testing.T) {
	// AVX and AVX2 share the 256-bit register, so operations a level
	// forwards must give the very lanes the parent computes directly.
	x := randomLanes[int8](32, 20)
	y := randomLanes[int8](32, 21)

	// 8-bit multiply has no AVX2 case and forwards.
	got := Mul(Load[int8, AVX2](x), Load[int8, AVX2](y)).Slice()
	want := Mul(Load[int8, AVX](x), Load[int8, AVX](y)).Slice()
	sameLanes(t, "Mul int8 avx2 vs avx", got, want)

	// 64-bit division forwards everywhere above Scalar.
	qx := randomLanes[int64](4, 22)
	qy := []int64{3, -7, 11, -13}
	gq := Div(Load[int64, AVX2](qx), Load[int64, AVX2](qy)).Slice()
	wq := Div(Load[int64, AVX](qx), Load[int64, AVX](qy)).Slice()
	sameLanes(t, "Div int64 avx2 vs avx", gq, wq)
}

func TestDeterminism(t *testing.T) {
	x := randomLanes[uint32](8, 23)
	y := randomLanes[uint32](8, 24)
	a := Load[uint32, AVX2](x)
	b := Load[uint32, AVX2](y)
	first := Mul(Add(a, b), Max(a, b)).Slice()
	for run := 0; run < 3; run++ {
		again := Mul(Add(a, b), Max(a, b)).Slice()
		sameLanes(t, "repeated invocation", again, first)
	}
}

func TestParentChain(t *testing.T) {
	steps := 0
	var a Arch = AVX2{}
	names := []string{"avx2"}
	for {
		p, ok := Parent(a)
		if !ok {
			break
		}
		a = p
		names = append(names, a.Name())
		steps++
		if steps > 8 {
			t.Fatal("Parent chain does not terminate")
		}
	}
	if a.Name() != "scalar" {
		t.Errorf("Parent chain ends at %q, want scalar", a.Name())
	}
	want := []string{"avx2", "avx", "sse4.2", "scalar"}
	sameLanes(t, "Parent chain", names, want)
}

func TestMaxLanes(t *testing.T) {
	if got := MaxLanes[float32, AVX2](); got != 8 {
		t.Errorf("MaxLanes float32 avx2: got %d, want 8", got)
	}
	if got := MaxLanes[int8, AVX2](); got != 32 {
		t.Errorf("MaxLanes int8 avx2: got %d, want 32", got)
	}
	if got := MaxLanes[float64, SSE42](); got != 2 {
		t.Errorf("MaxLanes float64 sse4.2: got %d, want 2", got)
	}
	if got := MaxLanes[uint64, Scalar](); got != 2 {
		t.Errorf("MaxLanes uint64 scalar: got %d, want 2", got)
	}
}

func TestSupportedAndPreferred(t *testing.T) {
	if !Supported(Scalar{}) {
		t.Error("Scalar must always be supported")
	}
	if !Supported(Preferred()) {
		t.Errorf("Preferred() returned unsupported architecture %s", Preferred().Name())
	}
	// Capability is monotone down the chain.
	if Supported(AVX2{}) && !Supported(AVX{}) {
		t.Error("AVX2 supported but AVX not")
	}
	if Supported(AVX{}) && !Supported(SSE42{}) {
		t.Error("AVX supported but SSE4.2 not")
	}
}
