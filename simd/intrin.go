package simd

// Models of the individual x86 instructions the kernel tables are written
// in terms of. Each helper reproduces the exact lane movement of the named
// instruction, including the per-128-bit-half behavior of the 256-bit
// shuffle and unpack forms. Kernels compose these the same way the native
// instruction sequences do, so results are bit-identical to hardware.

// mmShuffle builds the standard 2-bit-per-lane shuffle immediate,
// equivalent to _MM_SHUFFLE(z, y, x, w).
func mmShuffle(z, y, x, w int) uint8 {
	return uint8(z<<6 | y<<4 | x<<2 | w)
}

// shuffleEpi32 models PSHUFD / VPSHUFD: each 128-bit half is permuted
// independently, lane j of a half taking dword (imm >> 2j) & 3 of that half.
func shuffleEpi32(a reg, imm uint8, width int) reg {
	var r reg
	for half := 0; half < width/16; half++ {
		base := half * 4
		for j := 0; j < 4; j++ {
			src := base + int(imm>>(2*j))&3
			r.setU32(base+j, a.u32(src))
		}
	}
	return r
}

// haddEpi32 models PHADDD / VPHADDD: within each 128-bit half, the result
// is [a0+a1, a2+a3, b0+b1, b2+b3] for that half's dwords.
func haddEpi32(a, b reg, width int) reg {
	var r reg
	for half := 0; half < width/16; half++ {
		base := half * 4
		r.setU32(base+0, a.u32(base+0)+a.u32(base+1))
		r.setU32(base+1, a.u32(base+2)+a.u32(base+3))
		r.setU32(base+2, b.u32(base+0)+b.u32(base+1))
		r.setU32(base+3, b.u32(base+2)+b.u32(base+3))
	}
	return r
}

// mulEpu32 models PMULUDQ / VPMULUDQ: each 64-bit lane is the full unsigned
// product of the even dwords of its operands.
func mulEpu32(a, b reg, width int) reg {
	var r reg
	for i := 0; i < width/8; i++ {
		r.setU64(i, uint64(a.u32(2*i))*uint64(b.u32(2*i)))
	}
	return r
}

// set1Epi16 models _mm*_set1_epi16: broadcast one 16-bit value.
func set1Epi16(v uint16, width int) reg {
	var r reg
	for i := 0; i < width/2; i++ {
		r.setU16(i, v)
	}
	return r
}

// blendvEpi8 models PBLENDVB / VPBLENDVB: the sign bit of each mask byte
// selects the corresponding byte of t over f.
func blendvEpi8(f, t, mask reg, width int) reg {
	var r reg
	for i := 0; i < width; i++ {
		if mask[i]&0x80 != 0 {
			r[i] = t[i]
		} else {
			r[i] = f[i]
		}
	}
	return r
}

// blendEpi32 models VPBLENDD: bit j of the immediate selects dword j of t.
func blendEpi32(f, t reg, imm uint64, width int) reg {
	return selImmLanes(lane{size: 4, width: width}, imm, t, f)
}

// permute4x64 models VPERMQ / VPERMPD: a full-width permute of the four
// 64-bit lanes (256-bit form only).
func permute4x64(a reg, imm uint8) reg {
	var r reg
	for j := 0; j < 4; j++ {
		r.setU64(j, a.u64(int(imm>>(2*j))&3))
	}
	return r
}

// blendPd models VBLENDPD: bit j of the immediate selects qword j of t.
func blendPd(f, t reg, imm uint64, width int) reg {
	return selImmLanes(lane{size: 8, width: width}, imm, t, f)
}

// shufflePs models SHUFPS / VSHUFPS: within each 128-bit half, the low two
// result dwords come from a and the high two from b, indexed by the
// immediate two bits at a time.
func shufflePs(a, b reg, imm uint8, width int) reg {
	var r reg
	for half := 0; half < width/16; half++ {
		base := half * 4
		r.setU32(base+0, a.u32(base+int(imm)&3))
		r.setU32(base+1, a.u32(base+int(imm>>2)&3))
		r.setU32(base+2, b.u32(base+int(imm>>4)&3))
		r.setU32(base+3, b.u32(base+int(imm>>6)&3))
	}
	return r
}

// unpackloPs models UNPCKLPS: per half, [a0, b0, a1, b1].
func unpackloPs(a, b reg, width int) reg {
	var r reg
	for half := 0; half < width/16; half++ {
		base := half * 4
		r.setU32(base+0, a.u32(base+0))
		r.setU32(base+1, b.u32(base+0))
		r.setU32(base+2, a.u32(base+1))
		r.setU32(base+3, b.u32(base+1))
	}
	return r
}

// unpackhiPs models UNPCKHPS: per half, [a2, b2, a3, b3].
func unpackhiPs(a, b reg, width int) reg {
	var r reg
	for half := 0; half < width/16; half++ {
		base := half * 4
		r.setU32(base+0, a.u32(base+2))
		r.setU32(base+1, b.u32(base+2))
		r.setU32(base+2, a.u32(base+3))
		r.setU32(base+3, b.u32(base+3))
	}
	return r
}

// unpackloPd models UNPCKLPD: per half, [a0, b0] of that half's qwords.
func unpackloPd(a, b reg, width int) reg {
	var r reg
	for half := 0; half < width/16; half++ {
		base := half * 2
		r.setU64(base+0, a.u64(base+0))
		r.setU64(base+1, b.u64(base+0))
	}
	return r
}

// unpackhiPd models UNPCKHPD: per half, [a1, b1] of that half's qwords.
func unpackhiPd(a, b reg, width int) reg {
	var r reg
	for half := 0; half < width/16; half++ {
		base := half * 2
		r.setU64(base+0, a.u64(base+1))
		r.setU64(base+1, b.u64(base+1))
	}
	return r
}

// interleaveMask doubles each of the low n mask bits into an adjacent pair:
// bit i becomes bits 2i and 2i+1. Used to drive a 32-bit-granularity blend
// with a 64-bit-lane mask.
func interleaveMask(mask uint64, n int) uint64 {
	var out uint64
	for i := 0; i < n; i++ {
		if mask&(uint64(1)<<uint(i)) != 0 {
			out |= 3 << uint(2*i)
		}
	}
	return out
}
