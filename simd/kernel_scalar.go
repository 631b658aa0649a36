package simd

import "math"

// This file holds the Scalar kernel table, the root of the forwarding chain.
// Every operation is handled here for every element width and signedness
// with a per-lane loop, so a chain started at any architecture is guaranteed
// to terminate. The per-lane helpers are shared with the wider architectures
// for the widths where the native instruction is a plain lane-wise operation.
//
// Numeric edge cases reproduce the x86 instruction semantics, not Go's:
// shift counts at or beyond the element width zero logical shifts and
// saturate arithmetic right shifts to the sign fill, float min/max return
// the second operand when either input is NaN, and integer overflow wraps.

// intLanes2 applies f to the raw zero-extended bits of each lane pair.
func intLanes2(l lane, a, b reg, f func(x, y uint64) uint64) reg {
	var r reg
	for i := 0; i < l.count(); i++ {
		r.setLane(l, i, f(a.lane(l, i), b.lane(l, i)))
	}
	return r
}

// intLanes1 applies f to the raw zero-extended bits of each lane.
func intLanes1(l lane, a reg, f func(x uint64) uint64) reg {
	var r reg
	for i := 0; i < l.count(); i++ {
		r.setLane(l, i, f(a.lane(l, i)))
	}
	return r
}

// floatLanes2 applies the size-matched function to each lane pair.
func floatLanes2(l lane, a, b reg, f32 func(x, y float32) float32, f64 func(x, y float64) float64) reg {
	var r reg
	if l.size == 4 {
		for i := 0; i < l.count(); i++ {
			v := f32(math.Float32frombits(a.u32(i)), math.Float32frombits(b.u32(i)))
			r.setU32(i, math.Float32bits(v))
		}
		return r
	}
	for i := 0; i < l.count(); i++ {
		v := f64(math.Float64frombits(a.u64(i)), math.Float64frombits(b.u64(i)))
		r.setU64(i, math.Float64bits(v))
	}
	return r
}

func addLanes(l lane, a, b reg) reg {
	if l.float {
		return floatLanes2(l, a, b,
			func(x, y float32) float32 { return x + y },
			func(x, y float64) float64 { return x + y })
	}
	return intLanes2(l, a, b, func(x, y uint64) uint64 { return x + y })
}

func subLanes(l lane, a, b reg) reg {
	if l.float {
		return floatLanes2(l, a, b,
			func(x, y float32) float32 { return x - y },
			func(x, y float64) float64 { return x - y })
	}
	return intLanes2(l, a, b, func(x, y uint64) uint64 { return x - y })
}

func mulLanes(l lane, a, b reg) reg {
	if l.float {
		return floatLanes2(l, a, b,
			func(x, y float32) float32 { return x * y },
			func(x, y float64) float64 { return x * y })
	}
	// Truncating multiply: the low l.size bytes of the full product are the
	// same for signed and unsigned operands.
	return intLanes2(l, a, b, func(x, y uint64) uint64 { return x * y })
}

func divLanes(l lane, a, b reg) reg {
	switch {
	case l.float:
		return floatLanes2(l, a, b,
			func(x, y float32) float32 { return x / y },
			func(x, y float64) float64 { return x / y })
	case l.signed:
		// Division by zero panics, matching the hardware trap of the
		// scalar divide the lane loop models.
		return intLanes2(l, a, b, func(x, y uint64) uint64 {
			return uint64(signExtend(x, l.size) / signExtend(y, l.size))
		})
	default:
		return intLanes2(l, a, b, func(x, y uint64) uint64 { return x / y })
	}
}

func saddLanes(l lane, a, b reg) reg {
	if l.signed {
		lo, hi := signedRange(l.size)
		return intLanes2(l, a, b, func(x, y uint64) uint64 {
			return uint64(clampAdd(signExtend(x, l.size), signExtend(y, l.size), lo, hi))
		})
	}
	ones := laneOnes(l.size)
	return intLanes2(l, a, b, func(x, y uint64) uint64 {
		s := (x + y) & ones
		if s < x {
			return ones
		}
		return s
	})
}

func ssubLanes(l lane, a, b reg) reg {
	if l.signed {
		lo, hi := signedRange(l.size)
		return intLanes2(l, a, b, func(x, y uint64) uint64 {
			return uint64(clampSub(signExtend(x, l.size), signExtend(y, l.size), lo, hi))
		})
	}
	return intLanes2(l, a, b, func(x, y uint64) uint64 {
		if y > x {
			return 0
		}
		return x - y
	})
}

// signedRange returns the value range of a signed element of the given size.
func signedRange(size int) (lo, hi int64) {
	hi = int64(laneOnes(size) >> 1)
	return -hi - 1, hi
}

// clampAdd adds x and y with saturation at [lo, hi]. For 8-byte lanes the
// int64 sum itself can wrap, so overflow is detected from the operand signs
// before the range clamp.
func clampAdd(x, y, lo, hi int64) int64 {
	s := x + y
	switch {
	case x > 0 && y > 0 && s < x:
		return hi
	case x < 0 && y < 0 && s > x:
		return lo
	case s < lo:
		return lo
	case s > hi:
		return hi
	}
	return s
}

// clampSub subtracts y from x with saturation at [lo, hi]. Subtraction is
// done directly rather than as clampAdd(x, -y): negating y == MinInt64
// would itself wrap.
func clampSub(x, y, lo, hi int64) int64 {
	s := x - y
	switch {
	case x >= 0 && y < 0 && s < x:
		return hi
	case x < 0 && y > 0 && s > x:
		return lo
	case s < lo:
		return lo
	case s > hi:
		return hi
	}
	return s
}

func absLanes(l lane, a reg) reg {
	if l.float {
		var r reg
		if l.size == 4 {
			for i := 0; i < l.count(); i++ {
				r.setU32(i, a.u32(i)&0x7FFFFFFF)
			}
		} else {
			for i := 0; i < l.count(); i++ {
				r.setU64(i, a.u64(i)&^(uint64(1)<<63))
			}
		}
		return r
	}
	if !l.signed {
		// Unsigned values are already non-negative.
		return a
	}
	// The minimum value negates to itself, as the native PABS family does.
	return intLanes1(l, a, func(x uint64) uint64 {
		v := signExtend(x, l.size)
		if v < 0 {
			v = -v
		}
		return uint64(v)
	})
}

func negLanes(l lane, a reg) reg {
	if l.float {
		var r reg
		if l.size == 4 {
			for i := 0; i < l.count(); i++ {
				r.setU32(i, a.u32(i)^0x80000000)
			}
		} else {
			for i := 0; i < l.count(); i++ {
				r.setU64(i, a.u64(i)^(uint64(1)<<63))
			}
		}
		return r
	}
	return intLanes1(l, a, func(x uint64) uint64 { return -x })
}

func minLanes(l lane, a, b reg) reg {
	if l.float {
		// MINPS semantics: the second operand wins when either is NaN.
		return floatLanes2(l, a, b,
			func(x, y float32) float32 {
				if x < y {
					return x
				}
				return y
			},
			func(x, y float64) float64 {
				if x < y {
					return x
				}
				return y
			})
	}
	if l.signed {
		return intLanes2(l, a, b, func(x, y uint64) uint64 {
			if signExtend(x, l.size) < signExtend(y, l.size) {
				return x
			}
			return y
		})
	}
	return intLanes2(l, a, b, func(x, y uint64) uint64 {
		if x < y {
			return x
		}
		return y
	})
}

func maxLanes(l lane, a, b reg) reg {
	if l.float {
		return floatLanes2(l, a, b,
			func(x, y float32) float32 {
				if x > y {
					return x
				}
				return y
			},
			func(x, y float64) float64 {
				if x > y {
					return x
				}
				return y
			})
	}
	if l.signed {
		return intLanes2(l, a, b, func(x, y uint64) uint64 {
			if signExtend(x, l.size) > signExtend(y, l.size) {
				return x
			}
			return y
		})
	}
	return intLanes2(l, a, b, func(x, y uint64) uint64 {
		if x > y {
			return x
		}
		return y
	})
}

func andBytes(a, b reg) reg {
	var r reg
	for i := range r {
		r[i] = a[i] & b[i]
	}
	return r
}

func orBytes(a, b reg) reg {
	var r reg
	for i := range r {
		r[i] = a[i] | b[i]
	}
	return r
}

func xorBytes(a, b reg) reg {
	var r reg
	for i := range r {
		r[i] = a[i] ^ b[i]
	}
	return r
}

func notBytes(a reg) reg {
	var r reg
	for i := range r {
		r[i] = ^a[i]
	}
	return r
}

// andnotBytes computes ^a & b, the PANDN operand order.
func andnotBytes(a, b reg) reg {
	var r reg
	for i := range r {
		r[i] = ^a[i] & b[i]
	}
	return r
}

// lshiftLanes models the PSLL immediate family: counts at or beyond the
// element width produce zero.
func lshiftLanes(l lane, a reg, count int) reg {
	if count >= l.bits() {
		return reg{}
	}
	return intLanes1(l, a, func(x uint64) uint64 { return x << uint(count) })
}

// rshiftLanes models PSRL for unsigned lanes and PSRA for signed ones:
// logical shifts zero out past the width, arithmetic shifts saturate to the
// sign fill.
func rshiftLanes(l lane, a reg, count int) reg {
	if l.signed {
		if count >= l.bits() {
			count = l.bits() - 1
		}
		return intLanes1(l, a, func(x uint64) uint64 {
			return uint64(signExtend(x, l.size) >> uint(count))
		})
	}
	if count >= l.bits() {
		return reg{}
	}
	return intLanes1(l, a, func(x uint64) uint64 { return x >> uint(count) })
}

// lshiftvLanes models VPSLLV: per-lane unsigned counts, zero past the width.
func lshiftvLanes(l lane, a, counts reg) reg {
	return intLanes2(l, a, counts, func(x, c uint64) uint64 {
		if c >= uint64(l.bits()) {
			return 0
		}
		return x << c
	})
}

// rshiftvLanes models VPSRLV / VPSRAV per-lane counts.
func rshiftvLanes(l lane, a, counts reg) reg {
	if l.signed {
		return intLanes2(l, a, counts, func(x, c uint64) uint64 {
			if c >= uint64(l.bits()) {
				c = uint64(l.bits() - 1)
			}
			return uint64(signExtend(x, l.size) >> c)
		})
	}
	return intLanes2(l, a, counts, func(x, c uint64) uint64 {
		if c >= uint64(l.bits()) {
			return 0
		}
		return x >> c
	})
}

// eqLanes produces the canonical all-ones/all-zeros comparison mask.
// Floats compare by value (so -0 == +0 and NaN != NaN); integers by bits.
func eqLanes(l lane, a, b reg) reg {
	ones := laneOnes(l.size)
	if l.float {
		return intLanes2(l, a, b, func(x, y uint64) uint64 {
			var equal bool
			if l.size == 4 {
				equal = math.Float32frombits(uint32(x)) == math.Float32frombits(uint32(y))
			} else {
				equal = math.Float64frombits(x) == math.Float64frombits(y)
			}
			if equal {
				return ones
			}
			return 0
		})
	}
	return intLanes2(l, a, b, func(x, y uint64) uint64 {
		if x == y {
			return ones
		}
		return 0
	})
}

func gtLanes(l lane, a, b reg) reg {
	ones := laneOnes(l.size)
	pred := func(x, y uint64) bool { return x > y }
	switch {
	case l.float && l.size == 4:
		pred = func(x, y uint64) bool {
			return math.Float32frombits(uint32(x)) > math.Float32frombits(uint32(y))
		}
	case l.float:
		pred = func(x, y uint64) bool {
			return math.Float64frombits(x) > math.Float64frombits(y)
		}
	case l.signed:
		pred = func(x, y uint64) bool {
			return signExtend(x, l.size) > signExtend(y, l.size)
		}
	}
	return intLanes2(l, a, b, func(x, y uint64) uint64 {
		if pred(x, y) {
			return ones
		}
		return 0
	})
}

// haddLanes sums all lanes with a plain left-to-right loop. Exact for
// integers; the floating-point reduction order of the wider architectures
// is their own fixed pairwise tree (see haddPairs).
func haddLanes(l lane, a reg) uint64 {
	switch {
	case l.float && l.size == 4:
		var s float32
		for i := 0; i < l.count(); i++ {
			s += math.Float32frombits(a.u32(i))
		}
		return uint64(math.Float32bits(s))
	case l.float:
		var s float64
		for i := 0; i < l.count(); i++ {
			s += math.Float64frombits(a.u64(i))
		}
		return math.Float64bits(s)
	default:
		var s uint64
		for i := 0; i < l.count(); i++ {
			s += a.lane(l, i)
		}
		return s & laneOnes(l.size)
	}
}

// haddPairs reduces with a pairwise-halving tree: adjacent lanes are
// combined two at a time until one value remains. This is the fixed
// reduction order of the native horizontal-add sequences.
func haddPairs(l lane, a reg) uint64 {
	if l.size == 4 {
		var v [8]float32
		n := l.count()
		for i := 0; i < n; i++ {
			v[i] = math.Float32frombits(a.u32(i))
		}
		for n > 1 {
			for i := 0; i < n/2; i++ {
				v[i] = v[2*i] + v[2*i+1]
			}
			n /= 2
		}
		return uint64(math.Float32bits(v[0]))
	}
	var v [4]float64
	n := l.count()
	for i := 0; i < n; i++ {
		v[i] = math.Float64frombits(a.u64(i))
	}
	for n > 1 {
		for i := 0; i < n/2; i++ {
			v[i] = v[2*i] + v[2*i+1]
		}
		n /= 2
	}
	return math.Float64bits(v[0])
}

// selLanes models the BLENDV family: the sign bit of each mask lane picks
// the true operand. Canonical masks make this equivalent to a lane test.
func selLanes(l lane, cond, t, f reg) reg {
	var r reg
	top := uint64(1) << (uint(l.bits()) - 1)
	for i := 0; i < l.count(); i++ {
		if cond.lane(l, i)&top != 0 {
			r.setLane(l, i, t.lane(l, i))
		} else {
			r.setLane(l, i, f.lane(l, i))
		}
	}
	return r
}

// selImmLanes picks the true operand for every lane whose bit is set in the
// immediate, lane 0 at the least significant bit.
func selImmLanes(l lane, imm uint64, t, f reg) reg {
	var r reg
	for i := 0; i < l.count(); i++ {
		if imm&(uint64(1)<<uint(i)) != 0 {
			r.setLane(l, i, t.lane(l, i))
		} else {
			r.setLane(l, i, f.lane(l, i))
		}
	}
	return r
}

// gatherLanes is the elementwise reference gather: lane i loads l.size bytes
// at byte offset offsets[i]*scale. Offsets are signed; an offset outside src
// panics via the slice bounds check instead of reading wild memory.
func gatherLanes(l lane, src []byte, offsets reg, osize, scale int) reg {
	ol := lane{size: osize, width: l.width}
	var r reg
	for i := 0; i < l.count(); i++ {
		off := signExtend(offsets.lane(ol, i), osize) * int64(scale)
		var bits uint64
		switch l.size {
		case 1:
			bits = uint64(src[off])
		case 2:
			bits = uint64(src[off]) | uint64(src[off+1])<<8
		case 4:
			bits = uint64(src[off]) | uint64(src[off+1])<<8 |
				uint64(src[off+2])<<16 | uint64(src[off+3])<<24
		default:
			for b := 7; b >= 0; b-- {
				bits = bits<<8 | uint64(src[off+int64(b)])
			}
		}
		r.setLane(l, i, bits)
	}
	return r
}

// complexLowLanes interleaves the first half of the lanes of re and im into
// (re, im) pairs: [re0, im0, re1, im1, ...].
func complexLowLanes(l lane, re, im reg) reg {
	var r reg
	for i := 0; i < l.count()/2; i++ {
		r.setLane(l, 2*i, re.lane(l, i))
		r.setLane(l, 2*i+1, im.lane(l, i))
	}
	return r
}

// complexHighLanes interleaves the second half of the lanes of re and im.
func complexHighLanes(l lane, re, im reg) reg {
	var r reg
	h := l.count() / 2
	for i := 0; i < h; i++ {
		r.setLane(l, 2*i, re.lane(l, h+i))
		r.setLane(l, 2*i+1, im.lane(l, h+i))
	}
	return r
}

// loadComplexLanes deinterleaves two registers of (re, im) pairs, hi holding
// the first half of the pairs in memory order and lo the second.
func loadComplexLanes(l lane, hi, lo reg) (re, im reg) {
	h := l.count() / 2
	for i := 0; i < l.count(); i++ {
		src, j := &hi, i
		if i >= h {
			src, j = &lo, i-h
		}
		re.setLane(l, i, src.lane(l, 2*j))
		im.setLane(l, i, src.lane(l, 2*j+1))
	}
	return re, im
}

// Scalar kernel table: every case terminal, no forwarding.

func (Scalar) add(l lane, a, b reg) reg  { return addLanes(l, a, b) }
func (Scalar) sub(l lane, a, b reg) reg  { return subLanes(l, a, b) }
func (Scalar) mul(l lane, a, b reg) reg  { return mulLanes(l, a, b) }
func (Scalar) div(l lane, a, b reg) reg  { return divLanes(l, a, b) }
func (Scalar) sadd(l lane, a, b reg) reg { return saddLanes(l, a, b) }
func (Scalar) ssub(l lane, a, b reg) reg { return ssubLanes(l, a, b) }
func (Scalar) abs(l lane, a reg) reg     { return absLanes(l, a) }
func (Scalar) neg(l lane, a reg) reg     { return negLanes(l, a) }
func (Scalar) min(l lane, a, b reg) reg  { return minLanes(l, a, b) }
func (Scalar) max(l lane, a, b reg) reg  { return maxLanes(l, a, b) }

func (Scalar) and(a, b reg) reg    { return andBytes(a, b) }
func (Scalar) or(a, b reg) reg     { return orBytes(a, b) }
func (Scalar) xor(a, b reg) reg    { return xorBytes(a, b) }
func (Scalar) not(a reg) reg       { return notBytes(a) }
func (Scalar) andnot(a, b reg) reg { return andnotBytes(a, b) }

func (Scalar) lshift(l lane, a reg, count int) reg { return lshiftLanes(l, a, count) }
func (Scalar) rshift(l lane, a reg, count int) reg { return rshiftLanes(l, a, count) }
func (Scalar) lshiftv(l lane, a, counts reg) reg   { return lshiftvLanes(l, a, counts) }
func (Scalar) rshiftv(l lane, a, counts reg) reg   { return rshiftvLanes(l, a, counts) }

func (Scalar) eq(l lane, a, b reg) reg { return eqLanes(l, a, b) }
func (Scalar) gt(l lane, a, b reg) reg { return gtLanes(l, a, b) }

func (Scalar) hadd(l lane, a reg) uint64 { return haddLanes(l, a) }

func (Scalar) sel(l lane, cond, t, f reg) reg { return selLanes(l, cond, t, f) }

func (Scalar) selImm(l lane, imm uint64, t, f reg) reg { return selImmLanes(l, imm, t, f) }

func (Scalar) gather(l lane, src []byte, offsets reg, osize, scale int) reg {
	return gatherLanes(l, src, offsets, osize, scale)
}

func (Scalar) complexLow(l lane, re, im reg) reg  { return complexLowLanes(l, re, im) }
func (Scalar) complexHigh(l lane, re, im reg) reg { return complexHighLanes(l, re, im) }

func (Scalar) loadComplex(l lane, hi, lo reg) (re, im reg) {
	return loadComplexLanes(l, hi, lo)
}
