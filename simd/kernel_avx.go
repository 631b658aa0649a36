package simd

// AVX kernel table: the 256-bit floating-point baseline. Float kernels are
// native at this width; AVX has no 256-bit integer arithmetic, so integer
// kernels split the register into two 128-bit halves, run the SSE42 kernel
// on each, and recombine. Bitwise operations are native at 256 bits for any
// element type (VANDPS and friends operate on raw bits).

// fwdToSSE2 runs a two-operand SSE42 kernel on each 128-bit half.
func fwdToSSE2(l lane, a, b reg, op func(lane, reg, reg) reg) reg {
	h := l.half()
	alo, ahi := split256(a)
	blo, bhi := split256(b)
	return merge256(op(h, alo, blo), op(h, ahi, bhi))
}

// fwdToSSE1 runs a one-operand SSE42 kernel on each 128-bit half.
func fwdToSSE1(l lane, a reg, op func(lane, reg) reg) reg {
	h := l.half()
	alo, ahi := split256(a)
	return merge256(op(h, alo), op(h, ahi))
}

// fwdToSSE3 runs a three-operand SSE42 kernel on each 128-bit half.
func fwdToSSE3(l lane, a, b, c reg, op func(lane, reg, reg, reg) reg) reg {
	h := l.half()
	alo, ahi := split256(a)
	blo, bhi := split256(b)
	clo, chi := split256(c)
	return merge256(op(h, alo, blo, clo), op(h, ahi, bhi, chi))
}

func (AVX) add(l lane, a, b reg) reg {
	if l.float {
		return addLanes(l, a, b) // VADDPS/VADDPD
	}
	return fwdToSSE2(l, a, b, SSE42{}.add)
}

func (AVX) sub(l lane, a, b reg) reg {
	if l.float {
		return subLanes(l, a, b)
	}
	return fwdToSSE2(l, a, b, SSE42{}.sub)
}

func (AVX) mul(l lane, a, b reg) reg {
	if l.float {
		return mulLanes(l, a, b)
	}
	return fwdToSSE2(l, a, b, SSE42{}.mul)
}

func (AVX) div(l lane, a, b reg) reg {
	if l.float {
		return divLanes(l, a, b)
	}
	return fwdToSSE2(l, a, b, SSE42{}.div)
}

func (AVX) sadd(l lane, a, b reg) reg {
	return fwdToSSE2(l, a, b, SSE42{}.sadd)
}

func (AVX) ssub(l lane, a, b reg) reg {
	return fwdToSSE2(l, a, b, SSE42{}.ssub)
}

func (AVX) abs(l lane, a reg) reg {
	if l.float {
		return absLanes(l, a)
	}
	return fwdToSSE1(l, a, SSE42{}.abs)
}

func (AVX) neg(l lane, a reg) reg {
	if l.float {
		return negLanes(l, a)
	}
	return fwdToSSE1(l, a, SSE42{}.neg)
}

func (AVX) min(l lane, a, b reg) reg {
	if l.float {
		return minLanes(l, a, b)
	}
	return fwdToSSE2(l, a, b, SSE42{}.min)
}

func (AVX) max(l lane, a, b reg) reg {
	if l.float {
		return maxLanes(l, a, b)
	}
	return fwdToSSE2(l, a, b, SSE42{}.max)
}

func (AVX) and(a, b reg) reg    { return andBytes(a, b) }
func (AVX) or(a, b reg) reg     { return orBytes(a, b) }
func (AVX) xor(a, b reg) reg    { return xorBytes(a, b) }
func (AVX) not(a reg) reg       { return notBytes(a) }
func (AVX) andnot(a, b reg) reg { return andnotBytes(a, b) }

func (AVX) lshift(l lane, a reg, count int) reg {
	h := l.half()
	lo, hi := split256(a)
	return merge256(SSE42{}.lshift(h, lo, count), SSE42{}.lshift(h, hi, count))
}

func (AVX) rshift(l lane, a reg, count int) reg {
	h := l.half()
	lo, hi := split256(a)
	return merge256(SSE42{}.rshift(h, lo, count), SSE42{}.rshift(h, hi, count))
}

func (AVX) lshiftv(l lane, a, counts reg) reg {
	return fwdToSSE2(l, a, counts, SSE42{}.lshiftv)
}

func (AVX) rshiftv(l lane, a, counts reg) reg {
	return fwdToSSE2(l, a, counts, SSE42{}.rshiftv)
}

func (AVX) eq(l lane, a, b reg) reg {
	if l.float {
		return eqLanes(l, a, b) // VCMPPS/VCMPPD EQ_OQ
	}
	return fwdToSSE2(l, a, b, SSE42{}.eq)
}

func (AVX) gt(l lane, a, b reg) reg {
	if l.float {
		return gtLanes(l, a, b)
	}
	return fwdToSSE2(l, a, b, SSE42{}.gt)
}

func (AVX) hadd(l lane, a reg) uint64 {
	if l.float {
		// VHADDPS/VHADDPD pairwise tree over the full width.
		return haddPairs(l, a)
	}
	h := l.half()
	lo, hi := split256(a)
	return (SSE42{}.hadd(h, lo) + SSE42{}.hadd(h, hi)) & laneOnes(l.size)
}

func (AVX) sel(l lane, cond, t, f reg) reg {
	if l.float {
		return selLanes(l, cond, t, f) // VBLENDVPS/VBLENDVPD
	}
	return fwdToSSE3(l, cond, t, f, SSE42{}.sel)
}

func (AVX) selImm(l lane, imm uint64, t, f reg) reg {
	if l.float {
		// VBLENDPS/VBLENDPD take the lane mask as an immediate directly.
		return selImmLanes(l, imm, t, f)
	}
	return AVX{}.sel(l, maskFromImm(l, imm), t, f)
}

func (AVX) gather(l lane, src []byte, offsets reg, osize, scale int) reg {
	return SSE42{}.gather(l, src, offsets, osize, scale)
}

func (AVX) complexLow(l lane, re, im reg) reg {
	return complexLowLanes(l, re, im)
}

func (AVX) complexHigh(l lane, re, im reg) reg {
	return complexHighLanes(l, re, im)
}

func (AVX) loadComplex(l lane, hi, lo reg) (re, im reg) {
	return loadComplexLanes(l, hi, lo)
}
