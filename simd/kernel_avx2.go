// Copyright 2026 xsimd Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simd

// AVX2 kernel table: 256-bit integer instructions on top of the AVX float
// baseline. Instruction availability is irregular here: 16/32/64-bit
// immediate shifts but no 8-bit ones, 32/64-bit variable shifts only,
// signed compares but no unsigned ones, no 64-bit low multiply. Several
// kernels therefore either synthesize the missing instruction from narrower
// ones or forward to AVX.

func (AVX2) abs(l lane, a reg) reg {
	if l.float {
		return AVX{}.abs(l, a)
	}
	if !l.signed {
		// Unsigned values are already non-negative.
		return a
	}
	switch l.size {
	case 1, 2, 4: // VPABSB/W/D
		return absLanes(l, a)
	default:
		return AVX{}.abs(l, a)
	}
}

func (AVX2) add(l lane, a, b reg) reg {
	if l.float {
		return AVX{}.add(l, a, b)
	}
	switch l.size {
	case 1, 2, 4, 8: // VPADDB/W/D/Q
		return addLanes(l, a, b)
	default:
		return AVX{}.add(l, a, b)
	}
}

func (AVX2) sub(l lane, a, b reg) reg {
	if l.float {
		return AVX{}.sub(l, a, b)
	}
	switch l.size {
	case 1, 2, 4, 8: // VPSUBB/W/D/Q
		return subLanes(l, a, b)
	default:
		return AVX{}.sub(l, a, b)
	}
}

func (AVX2) mul(l lane, a, b reg) reg {
	if l.float {
		return AVX{}.mul(l, a, b)
	}
	switch l.size {
	case 2, 4: // VPMULLW, VPMULLD
		return mulLanes(l, a, b)
	case 8:
		// No VPMULLQ below AVX-512. Decompose each 64-bit lane into
		// 32-bit halves: swap the halves of b, take the two cross
		// products with a 32-bit low multiply, combine them with a
		// horizontal add, shift into the high half, and add the full
		// unsigned low*low product. Overflow past 64 bits is discarded,
		// matching native truncating multiply for either signedness.
		l32 := lane{size: 4, width: l.width}
		l64 := lane{size: 8, width: l.width}
		bswap := shuffleEpi32(b, 0xB1, l.width)
		prodlh := mulLanes(l32, a, bswap)
		prodlh2 := haddEpi32(prodlh, reg{}, l.width)
		prodlh3 := shuffleEpi32(prodlh2, 0x73, l.width)
		prodll := mulEpu32(a, b, l.width)
		return addLanes(l64, prodll, prodlh3)
	default:
		return AVX{}.mul(l, a, b)
	}
}

func (AVX2) div(l lane, a, b reg) reg {
	return AVX{}.div(l, a, b)
}

func (AVX2) sadd(l lane, a, b reg) reg {
	switch l.size {
	case 1, 2: // VPADDSB/W, VPADDUSB/W
		return saddLanes(l, a, b)
	default:
		return AVX{}.sadd(l, a, b)
	}
}

func (AVX2) ssub(l lane, a, b reg) reg {
	switch l.size {
	case 1, 2: // VPSUBSB/W, VPSUBUSB/W
		return ssubLanes(l, a, b)
	default:
		return AVX{}.ssub(l, a, b)
	}
}

func (AVX2) neg(l lane, a reg) reg {
	return AVX{}.neg(l, a)
}

func (AVX2) min(l lane, a, b reg) reg {
	if l.float {
		return AVX{}.min(l, a, b)
	}
	switch l.size {
	case 1, 2, 4: // VPMINSB..VPMINUD
		return minLanes(l, a, b)
	default:
		return AVX{}.min(l, a, b)
	}
}

func (AVX2) max(l lane, a, b reg) reg {
	if l.float {
		return AVX{}.max(l, a, b)
	}
	switch l.size {
	case 1, 2, 4:
		return maxLanes(l, a, b)
	default:
		return AVX{}.max(l, a, b)
	}
}

func (AVX2) and(a, b reg) reg    { return andBytes(a, b) }    // VPAND
func (AVX2) or(a, b reg) reg     { return orBytes(a, b) }     // VPOR
func (AVX2) xor(a, b reg) reg    { return xorBytes(a, b) }    // VPXOR
func (AVX2) not(a reg) reg       { return notBytes(a) }       // VPXOR with all-ones
func (AVX2) andnot(a, b reg) reg { return andnotBytes(a, b) } // VPANDN

func (AVX2) lshift(l lane, a reg, count int) reg {
	switch l.size {
	case 2, 4, 8: // VPSLLW/D/Q; no 8-bit shift exists
		return lshiftLanes(l, a, count)
	default:
		return AVX{}.lshift(l, a, count)
	}
}

func (AVX2) lshiftv(l lane, a, counts reg) reg {
	switch l.size {
	case 4, 8: // VPSLLVD/Q
		return lshiftvLanes(l, a, counts)
	default:
		return AVX{}.lshiftv(l, a, counts)
	}
}

func (AVX2) rshift(l lane, a reg, count int) reg {
	if l.signed {
		switch l.size {
		case 1:
			// No 8-bit arithmetic shift. Shift 16-bit lanes instead,
			// then patch the bits each byte received from its neighbor:
			// sign_mask marks those bit positions, and they are filled
			// with the byte's own sign (from a compare against zero)
			// instead of the shifted-in garbage. Bit-exact with a true
			// 8-bit arithmetic shift for counts 0..7.
			l8 := lane{size: 1, width: l.width, signed: true}
			l16 := lane{size: 2, width: l.width, signed: true}
			signMask := set1Epi16(uint16((0xFF00>>uint(count))&0x00FF), l.width)
			isNeg := gtLanes(l8, reg{}, a)
			res := rshiftLanes(l16, a, count)
			masked := fwdToSSE2(l, signMask, isNeg,
				func(_ lane, x, y reg) reg { return SSE42{}.and(x, y) })
			return orBytes(masked, andnotBytes(signMask, res))
		case 2, 4: // VPSRAW/D; no VPSRAQ below AVX-512
			return rshiftLanes(l, a, count)
		default:
			return AVX{}.rshift(l, a, count)
		}
	}
	switch l.size {
	case 2, 4, 8: // VPSRLW/D/Q
		return rshiftLanes(l, a, count)
	default:
		return AVX{}.rshift(l, a, count)
	}
}

func (AVX2) rshiftv(l lane, a, counts reg) reg {
	if l.signed {
		switch l.size {
		case 4: // VPSRAVD is the only variable arithmetic shift
			return rshiftvLanes(l, a, counts)
		default:
			return AVX{}.rshiftv(l, a, counts)
		}
	}
	switch l.size {
	case 4, 8: // VPSRLVD/Q
		return rshiftvLanes(l, a, counts)
	default:
		return AVX{}.rshiftv(l, a, counts)
	}
}

func (AVX2) eq(l lane, a, b reg) reg {
	if l.float {
		return AVX{}.eq(l, a, b)
	}
	switch l.size {
	case 1, 2, 4, 8: // VPCMPEQB/W/D/Q
		return eqLanes(l, a, b)
	default:
		return AVX{}.eq(l, a, b)
	}
}

func (AVX2) gt(l lane, a, b reg) reg {
	if l.float {
		return AVX{}.gt(l, a, b)
	}
	if l.signed {
		switch l.size {
		case 1, 2, 4, 8: // VPCMPGTB/W/D/Q
			return gtLanes(l, a, b)
		default:
			return AVX{}.gt(l, a, b)
		}
	}
	// Unsigned compare always defers to the parent.
	return AVX{}.gt(l, a, b)
}

func (AVX2) hadd(l lane, a reg) uint64 {
	if l.float {
		return AVX{}.hadd(l, a)
	}
	switch l.size {
	case 4:
		// Two VPHADDD rounds collapse each 128-bit half to its sum,
		// then one cross-half add finishes the reduction.
		tmp1 := haddEpi32(a, a, l.width)
		tmp2 := haddEpi32(tmp1, tmp1, l.width)
		lo, hi := split256(tmp2)
		return uint64(lo.u32(0) + hi.u32(0))
	case 8:
		// Swap the qwords of each half with VPSHUFD, add, then combine
		// the two halves.
		l64 := lane{size: 8, width: l.width}
		tmp1 := shuffleEpi32(a, 0x0E, l.width)
		tmp2 := addLanes(l64, a, tmp1)
		lo, hi := split256(tmp2)
		return lo.u64(0) + hi.u64(0)
	default:
		return AVX{}.hadd(l, a)
	}
}

func (AVX2) sel(l lane, cond, t, f reg) reg {
	if l.float {
		return AVX{}.sel(l, cond, t, f)
	}
	// VPBLENDVB serves every integer width: canonical masks make the
	// per-byte sign-bit select equivalent to a per-lane select.
	return blendvEpi8(f, t, cond, l.width)
}

func (AVX2) selImm(l lane, imm uint64, t, f reg) reg {
	if l.float {
		return AVX{}.selImm(l, imm, t, f)
	}
	switch l.size {
	case 4:
		return blendEpi32(f, t, imm, l.width)
	case 8:
		// VPBLENDD works at 32-bit granularity, so each 64-bit lane's
		// mask bit drives an adjacent pair of immediate bits.
		return blendEpi32(f, t, interleaveMask(imm, l.count()), l.width)
	default:
		return AVX2{}.sel(l, maskFromImm(l, imm), t, f)
	}
}

func (AVX2) gather(l lane, src []byte, offsets reg, osize, scale int) reg {
	if (l.size == 4 && osize == 4) || (l.size == 8 && osize == 8) {
		// VPGATHERDD/VPGATHERQQ and the float forms: byte address is
		// offset*scale with scale restricted to the instruction's legal
		// set. The facade's prescaler guarantees the restriction.
		switch scale {
		case 1, 2, 4, 8:
			return gatherLanes(l, src, offsets, osize, scale)
		default:
			panic("simd: gather scale must be 1, 2, 4 or 8")
		}
	}
	return AVX{}.gather(l, src, offsets, osize, scale)
}

func (AVX2) complexLow(l lane, re, im reg) reg {
	if l.size == 4 {
		return AVX{}.complexLow(l, re, im)
	}
	// VPERMPD both inputs so the first two (re, im) pairs line up, then
	// VBLENDPD the imaginary lanes in. The permutation indices are part
	// of the contract; do not re-derive them.
	tmp0 := permute4x64(re, mmShuffle(3, 1, 1, 0))
	tmp1 := permute4x64(im, mmShuffle(1, 2, 0, 0))
	return blendPd(tmp0, tmp1, 10, l.width)
}

func (AVX2) complexHigh(l lane, re, im reg) reg {
	if l.size == 4 {
		return AVX{}.complexHigh(l, re, im)
	}
	tmp0 := permute4x64(re, mmShuffle(3, 3, 1, 2))
	tmp1 := permute4x64(im, mmShuffle(3, 2, 2, 0))
	return blendPd(tmp0, tmp1, 10, l.width)
}

func (AVX2) loadComplex(l lane, hi, lo reg) (re, im reg) {
	if l.size == 4 {
		// VSHUFPS splits pairs per half; VPERMPD fixes the half-crossed
		// ordering.
		re = permute4x64(shufflePs(hi, lo, mmShuffle(2, 0, 2, 0), l.width), mmShuffle(3, 1, 2, 0))
		im = permute4x64(shufflePs(hi, lo, mmShuffle(3, 1, 3, 1), l.width), mmShuffle(3, 1, 2, 0))
		return re, im
	}
	re = permute4x64(unpackloPd(hi, lo, l.width), mmShuffle(3, 1, 2, 0))
	im = permute4x64(unpackhiPd(hi, lo, l.width), mmShuffle(3, 1, 2, 0))
	return re, im
}
