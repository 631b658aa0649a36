package simd

// SSE42 kernel table: the 128-bit x86 baseline (SSE through SSE4.2).
// Element widths this level has instructions for are computed directly;
// everything else forwards to Scalar with identical arguments. The notable
// gaps at this level: no 8-bit shifts, no 64-bit low multiply, no variable
// shifts, no unsigned compares, no gather.

// maskFromImm materializes a bit-packed lane mask as a canonical
// all-ones/all-zeros mask register.
func maskFromImm(l lane, imm uint64) reg {
	var r reg
	ones := laneOnes(l.size)
	for i := 0; i < l.count(); i++ {
		if imm&(uint64(1)<<uint(i)) != 0 {
			r.setLane(l, i, ones)
		}
	}
	return r
}

func (SSE42) add(l lane, a, b reg) reg {
	// ADDPS/ADDPD and PADDB/W/D/Q cover every width.
	return addLanes(l, a, b)
}

func (SSE42) sub(l lane, a, b reg) reg {
	return subLanes(l, a, b)
}

func (SSE42) mul(l lane, a, b reg) reg {
	if l.float {
		return mulLanes(l, a, b)
	}
	switch l.size {
	case 2, 4: // PMULLW, PMULLD
		return mulLanes(l, a, b)
	default:
		return Scalar{}.mul(l, a, b)
	}
}

func (SSE42) div(l lane, a, b reg) reg {
	if l.float {
		return divLanes(l, a, b)
	}
	return Scalar{}.div(l, a, b)
}

func (SSE42) sadd(l lane, a, b reg) reg {
	switch l.size {
	case 1, 2: // PADDSB/PADDSW, PADDUSB/PADDUSW
		return saddLanes(l, a, b)
	default:
		return Scalar{}.sadd(l, a, b)
	}
}

func (SSE42) ssub(l lane, a, b reg) reg {
	switch l.size {
	case 1, 2:
		return ssubLanes(l, a, b)
	default:
		return Scalar{}.ssub(l, a, b)
	}
}

func (SSE42) abs(l lane, a reg) reg {
	if l.float {
		return absLanes(l, a)
	}
	if !l.signed {
		return a
	}
	switch l.size {
	case 1, 2, 4: // PABSB/W/D
		return absLanes(l, a)
	default:
		return Scalar{}.abs(l, a)
	}
}

func (SSE42) neg(l lane, a reg) reg {
	if l.float {
		// XORPS/XORPD against the sign-bit mask.
		return negLanes(l, a)
	}
	// PSUB from zero.
	return subLanes(l, reg{}, a)
}

func (SSE42) min(l lane, a, b reg) reg {
	if l.float {
		return minLanes(l, a, b)
	}
	switch l.size {
	case 1, 2, 4: // PMINSB..PMINUD (SSE4.1)
		return minLanes(l, a, b)
	default:
		return Scalar{}.min(l, a, b)
	}
}

func (SSE42) max(l lane, a, b reg) reg {
	if l.float {
		return maxLanes(l, a, b)
	}
	switch l.size {
	case 1, 2, 4:
		return maxLanes(l, a, b)
	default:
		return Scalar{}.max(l, a, b)
	}
}

func (SSE42) and(a, b reg) reg    { return andBytes(a, b) }
func (SSE42) or(a, b reg) reg     { return orBytes(a, b) }
func (SSE42) xor(a, b reg) reg    { return xorBytes(a, b) }
func (SSE42) not(a reg) reg       { return notBytes(a) }
func (SSE42) andnot(a, b reg) reg { return andnotBytes(a, b) }

func (SSE42) lshift(l lane, a reg, count int) reg {
	switch l.size {
	case 2, 4, 8: // PSLLW/D/Q
		return lshiftLanes(l, a, count)
	default:
		return Scalar{}.lshift(l, a, count)
	}
}

func (SSE42) rshift(l lane, a reg, count int) reg {
	if l.signed {
		switch l.size {
		case 2, 4: // PSRAW/D; there is no PSRAQ before AVX-512
			return rshiftLanes(l, a, count)
		default:
			return Scalar{}.rshift(l, a, count)
		}
	}
	switch l.size {
	case 2, 4, 8: // PSRLW/D/Q
		return rshiftLanes(l, a, count)
	default:
		return Scalar{}.rshift(l, a, count)
	}
}

func (SSE42) lshiftv(l lane, a, counts reg) reg {
	return Scalar{}.lshiftv(l, a, counts)
}

func (SSE42) rshiftv(l lane, a, counts reg) reg {
	return Scalar{}.rshiftv(l, a, counts)
}

func (SSE42) eq(l lane, a, b reg) reg {
	// CMPEQPS/PD and PCMPEQB/W/D/Q (the latter in SSE4.1).
	return eqLanes(l, a, b)
}

func (SSE42) gt(l lane, a, b reg) reg {
	if l.float {
		return gtLanes(l, a, b)
	}
	if l.signed {
		// PCMPGTB/W/D and PCMPGTQ (SSE4.2).
		return gtLanes(l, a, b)
	}
	// No unsigned compare at this level.
	return Scalar{}.gt(l, a, b)
}

func (SSE42) hadd(l lane, a reg) uint64 {
	if l.float {
		// HADDPS/HADDPD pairwise tree.
		return haddPairs(l, a)
	}
	switch l.size {
	case 4, 8:
		return haddLanes(l, a)
	default:
		return Scalar{}.hadd(l, a)
	}
}

func (SSE42) sel(l lane, cond, t, f reg) reg {
	if l.float {
		// BLENDVPS/BLENDVPD select by lane sign bit.
		return selLanes(l, cond, t, f)
	}
	return blendvEpi8(f, t, cond, l.width)
}

func (SSE42) selImm(l lane, imm uint64, t, f reg) reg {
	// No usable immediate blend across all widths here; materialize the
	// mask register and select on this same architecture.
	return SSE42{}.sel(l, maskFromImm(l, imm), t, f)
}

func (SSE42) gather(l lane, src []byte, offsets reg, osize, scale int) reg {
	return Scalar{}.gather(l, src, offsets, osize, scale)
}

func (SSE42) complexLow(l lane, re, im reg) reg {
	if l.size == 4 {
		return unpackloPs(re, im, l.width)
	}
	return unpackloPd(re, im, l.width)
}

func (SSE42) complexHigh(l lane, re, im reg) reg {
	if l.size == 4 {
		return unpackhiPs(re, im, l.width)
	}
	return unpackhiPd(re, im, l.width)
}

func (SSE42) loadComplex(l lane, hi, lo reg) (re, im reg) {
	if l.size == 4 {
		re = shufflePs(hi, lo, mmShuffle(2, 0, 2, 0), l.width)
		im = shufflePs(hi, lo, mmShuffle(3, 1, 3, 1), l.width)
		return re, im
	}
	re = unpackloPd(hi, lo, l.width)
	im = unpackhiPd(hi, lo, l.width)
	return re, im
}
