package simd

import "testing"

func TestRamp(t *testing.T) {
	sameLanes(t, "Ramp int32", Ramp[int32, AVX2]().Batch().Slice(),
		[]int32{0, 1, 2, 3, 4, 5, 6, 7})
	sameLanes(t, "Ramp float64", Ramp[float64, SSE42]().Batch().Slice(),
		[]float64{0, 1})
}

func TestMakeConst(t *testing.T) {
	c := MakeConst[uint16, AVX2](func(i, n int) uint16 { return uint16(n - i) })
	got := c.Batch().Slice()
	for i, v := range got {
		if v != uint16(16-i) {
			t.Errorf("MakeConst: lane %d: got %d, want %d", i, v, 16-i)
		}
	}
	if c.Get(3) != 13 {
		t.Errorf("Const.Get(3): got %d, want 13", c.Get(3))
	}
}

func TestBoolConstBits(t *testing.T) {
	c := MakeBoolConst[int32, AVX2](func(i, _ int) bool { return i%2 == 0 })
	if c.Bits() != 0b01010101 {
		t.Errorf("BoolConst.Bits: got %#b, want 0b01010101", c.Bits())
	}
	for i := 0; i < 8; i++ {
		if c.Get(i) != (i%2 == 0) {
			t.Errorf("BoolConst.Get(%d): got %v", i, c.Get(i))
		}
	}
	if got := c.Mask().Bits(); got != c.Bits() {
		t.Errorf("BoolConst.Mask round trip: got %#b, want %#b", got, c.Bits())
	}
}

func TestSelectConstMatchesSelect(t *testing.T) {
	a := Load[int32, AVX2]([]int32{1, 2, 3, 4, 5, 6, 7, 8})
	b := Load[int32, AVX2]([]int32{-1, -2, -3, -4, -5, -6, -7, -8})
	c := MakeBoolConst[int32, AVX2](func(i, _ int) bool { return i >= 3 })

	got := SelectConst(c, a, b).Slice()
	want := Select(c.Mask(), a, b).Slice()
	sameLanes(t, "SelectConst int32 vs Select", got, want)
	sameLanes(t, "SelectConst int32", got, []int32{-1, -2, -3, 4, 5, 6, 7, 8})
}

func TestSelectConstInt64(t *testing.T) {
	// 64-bit lanes drive a 32-bit-granularity blend through the doubled
	// immediate; both halves of each lane must follow the lane's bit.
	a := Load[int64, AVX2]([]int64{0x1111111111111111, 0x2222222222222222, 3, 4})
	b := Load[int64, AVX2]([]int64{-1, -2, -3, -4})
	c := MakeBoolConst[int64, AVX2](func(i, _ int) bool { return i == 0 || i == 3 })
	got := SelectConst(c, a, b).Slice()
	sameLanes(t, "SelectConst int64", got,
		[]int64{0x1111111111111111, -2, -3, 4})
}

func TestSelectConstFloat(t *testing.T) {
	a := Broadcast[float32, AVX2](1)
	b := Broadcast[float32, AVX2](2)
	c := MakeBoolConst[float32, AVX2](func(i, _ int) bool { return i < 4 })
	sameLanes(t, "SelectConst float32", SelectConst(c, a, b).Slice(),
		[]float32{1, 1, 1, 1, 2, 2, 2, 2})
}

func TestFirstNTrue(t *testing.T) {
	f := FirstNTrue[float64, AVX2]{N: 3}
	if f.BoolConst().Bits() != 0b0111 {
		t.Errorf("FirstNTrue.BoolConst: got %#b, want 0b0111", f.BoolConst().Bits())
	}
	m := f.Mask()
	want := []bool{true, true, true, false}
	for i, w := range want {
		if m.Get(i) != w {
			t.Errorf("FirstNTrue.Mask: lane %d: got %v, want %v", i, m.Get(i), w)
		}
	}

	// N at or beyond the lane count is all-true; zero is all-false.
	full := FirstNTrue[int8, AVX2]{N: 32}
	if !full.Mask().All() {
		t.Error("FirstNTrue with N = lanes is not all true")
	}
	empty := FirstNTrue[int8, AVX2]{N: 0}
	if empty.Mask().Any() {
		t.Error("FirstNTrue with N = 0 is not all false")
	}
}
