package kyber768

import "io"

// Arithmetic over the ring R_q = Z_3329[X]/(X^256+1), on coefficients kept in
// [0, prime). All reductions are branchless.

// fieldReduceOnce brings x from [0, 2*prime) into [0, prime).
func fieldReduceOnce(x uint16) uint16 {
	subtracted := x - prime
	mask := 0 - (subtracted >> 15)
	return (mask & x) | (^mask & subtracted)
}

// fieldReduce brings x from [0, prime+2*prime*prime) into [0, prime) using a
// Barrett reduction.
func fieldReduce(x uint32) uint16 {
	product := uint64(x) * barrettMultiplier
	quotient := uint32(product >> barrettShift)
	remainder := x - quotient*prime
	return fieldReduceOnce(uint16(remainder))
}

// lt returns 0xffffffff if a < b and 0 otherwise.
func lt(a, b uint32) uint32 {
	return uint32(0 - int32(a^((a^b)|((a-b)^a)))>>31)
}

type poly [degree]uint16

func (p *poly) zero() {
	clear(p[:])
}

// nttRoots[i] = 17^bitreverse7(i) mod 3329.
var nttRoots = [128]uint16{
	1, 1729, 2580, 3289, 2642, 630, 1897, 848, 1062, 1919, 193, 797,
	2786, 3260, 569, 1746, 296, 2447, 1339, 1476, 3046, 56, 2240, 1333,
	1426, 2094, 535, 2882, 2393, 2879, 1974, 821, 289, 331, 3253, 1756,
	1197, 2304, 2277, 2055, 650, 1977, 2513, 632, 2865, 33, 1320, 1915,
	2319, 1435, 807, 452, 1438, 2868, 1534, 2402, 2647, 2617, 1481, 648,
	2474, 3110, 1227, 910, 17, 2761, 583, 2649, 1637, 723, 2288, 1100,
	1409, 2662, 3281, 233, 756, 2156, 3015, 3050, 1703, 1651, 2789, 1789,
	1847, 952, 1461, 2687, 939, 2308, 2437, 2388, 733, 2337, 268, 641,
	1584, 2298, 2037, 3220, 375, 2549, 2090, 1645, 1063, 319, 2773, 757,
	2099, 561, 2466, 2594, 2804, 1092, 403, 1026, 1143, 2150, 2775, 886,
	1722, 1212, 1874, 1029, 2110, 2935, 885, 2154,
}

func (p *poly) ntt() {
	offset := degree
	for step := 1; step < degree/2; step <<= 1 {
		offset >>= 1
		k := 0
		for i := 0; i < step; i++ {
			stepRoot := uint32(nttRoots[i+step])
			for j := k; j < k+offset; j++ {
				odd := fieldReduce(stepRoot * uint32(p[j+offset]))
				even := p[j]
				p[j] = fieldReduceOnce(odd + even)
				p[j+offset] = fieldReduceOnce(even - odd + prime)
			}
			k += 2 * offset
		}
	}
}

// inverseNTTRoots[i] = 17^-bitreverse7(i) mod 3329.
var inverseNTTRoots = [128]uint16{
	1, 1600, 40, 749, 2481, 1432, 2699, 687, 1583, 2760, 69, 543,
	2532, 3136, 1410, 2267, 2508, 1355, 450, 936, 447, 2794, 1235, 1903,
	1996, 1089, 3273, 283, 1853, 1990, 882, 3033, 2419, 2102, 219, 855,
	2681, 1848, 712, 682, 927, 1795, 461, 1891, 2877, 2522, 1894, 1010,
	1414, 2009, 3296, 464, 2697, 816, 1352, 2679, 1274, 1052, 1025, 2132,
	1573, 76, 2998, 3040, 1175, 2444, 394, 1219, 2300, 1455, 2117, 1607,
	2443, 554, 1179, 2186, 2303, 2926, 2237, 525, 735, 863, 2768, 1230,
	2572, 556, 3010, 2266, 1684, 1239, 780, 2954, 109, 1292, 1031, 1745,
	2688, 3061, 992, 2596, 941, 892, 1021, 2390, 642, 1868, 2377, 1482,
	1540, 540, 1678, 1626, 279, 314, 1173, 2573, 3096, 48, 667, 1920,
	2229, 1041, 2606, 1692, 680, 2746, 568, 3312,
}

func (p *poly) invNTT() {
	step := degree / 2
	for offset := 2; offset < degree; offset <<= 1 {
		step >>= 1
		k := 0
		for i := 0; i < step; i++ {
			stepRoot := uint32(inverseNTTRoots[i+step])
			for j := k; j < k+offset; j++ {
				odd := p[j+offset]
				even := p[j]
				p[j] = fieldReduceOnce(odd + even)
				p[j+offset] = fieldReduce(stepRoot * uint32(even-odd+prime))
			}
			k += 2 * offset
		}
	}
	for i := range p {
		p[i] = fieldReduce(uint32(p[i]) * inverseDegree)
	}
}

func (p *poly) add(b *poly) {
	for i := range p {
		p[i] = fieldReduceOnce(p[i] + b[i])
	}
}

func (p *poly) sub(b *poly) {
	for i := range p {
		p[i] = fieldReduceOnce(p[i] - b[i] + prime)
	}
}

// modRoots[i] = 17^(2*bitreverse7(i)+1) mod 3329, the twiddle factors of the
// degree-2 base multiplications.
var modRoots = [128]uint16{
	17, 3312, 2761, 568, 583, 2746, 2649, 680, 1637, 1692, 723, 2606,
	2288, 1041, 1100, 2229, 1409, 1920, 2662, 667, 3281, 48, 233, 3096,
	756, 2573, 2156, 1173, 3015, 314, 3050, 279, 1703, 1626, 1651, 1678,
	2789, 540, 1789, 1540, 1847, 1482, 952, 2377, 1461, 1868, 2687, 642,
	939, 2390, 2308, 1021, 2437, 892, 2388, 941, 733, 2596, 2337, 992,
	268, 3061, 641, 2688, 1584, 1745, 2298, 1031, 2037, 1292, 3220, 109,
	375, 2954, 2549, 780, 2090, 1239, 1645, 1684, 1063, 2266, 319, 3010,
	2773, 556, 757, 2572, 2099, 1230, 561, 2768, 2466, 863, 2594, 735,
	2804, 525, 1092, 2237, 403, 2926, 1026, 2303, 1143, 2186, 2150, 1179,
	2775, 554, 886, 2443, 1722, 1607, 1212, 2117, 1874, 1455, 1029, 2300,
	2110, 1219, 2935, 394, 885, 2444, 2154, 1175,
}

// mul sets p to the product of a and b in the NTT domain.
func (p *poly) mul(a, b *poly) {
	for i := 0; i < degree/2; i++ {
		realReal := uint32(a[2*i]) * uint32(b[2*i])
		imgImg := uint32(a[2*i+1]) * uint32(b[2*i+1])
		realImg := uint32(a[2*i]) * uint32(b[2*i+1])
		imgReal := uint32(a[2*i+1]) * uint32(b[2*i])
		p[2*i] = fieldReduce(realReal + uint32(fieldReduce(imgImg))*uint32(modRoots[i]))
		p[2*i+1] = fieldReduce(imgReal + realImg)
	}
}

// innerProduct sets p to the inner product of left and right, both in the NTT
// domain.
func (p *poly) innerProduct(left, right *polyVec) {
	p.zero()
	var product poly
	for i := range left {
		product.mul(&left[i], &right[i])
		p.add(&product)
	}
}

// sampleUniform fills p with coefficients drawn from the XOF stream by
// rejection sampling. The output position of each coefficient depends on how
// many candidates were rejected, but only public values (the matrix seed) are
// ever sampled this way.
func (p *poly) sampleUniform(stream io.Reader) {
	var buf [3]byte
	for i := 0; i < len(p); {
		stream.Read(buf[:])
		d1 := uint16(buf[0]) + 256*uint16(buf[1]%16)
		d2 := uint16(buf[1])/16 + 16*uint16(buf[2])
		if d1 < prime {
			p[i] = d1
			i++
		}
		if d2 < prime && i < len(p) {
			p[i] = d2
			i++
		}
	}
}

// sampleCBD fills p with coefficients from the centered binomial distribution
// with eta = 2, keyed by PRF(seed, nonce).
func (p *poly) sampleCBD(seed []byte, nonce byte) {
	var entropy [128]byte
	prf(entropy[:], seed, nonce)

	for i := 0; i < len(p); i += 2 {
		b := uint16(entropy[i/2])

		value := uint16(prime)
		value += (b & 1) + ((b >> 1) & 1)
		value -= ((b >> 2) & 1) + ((b >> 3) & 1)
		p[i] = fieldReduceOnce(value)

		b >>= 4
		value = prime
		value += (b & 1) + ((b >> 1) & 1)
		value -= ((b >> 2) & 1) + ((b >> 3) & 1)
		p[i+1] = fieldReduceOnce(value)
	}
}

type polyVec [rank]poly

func (v *polyVec) zero() {
	for i := range v {
		v[i].zero()
	}
}

func (v *polyVec) ntt() {
	for i := range v {
		v[i].ntt()
	}
}

func (v *polyVec) invNTT() {
	for i := range v {
		v[i].invNTT()
	}
}

func (v *polyVec) add(b *polyVec) {
	for i := range v {
		v[i].add(&b[i])
	}
}

func (v *polyVec) mul(m *polyMat, b *polyVec) {
	v.zero()
	var product poly
	for i := 0; i < rank; i++ {
		for j := 0; j < rank; j++ {
			product.mul(&m[i][j], &b[j])
			v[i].add(&product)
		}
	}
}

func (v *polyVec) mulTranspose(m *polyMat, b *polyVec) {
	v.zero()
	var product poly
	for i := 0; i < rank; i++ {
		for j := 0; j < rank; j++ {
			product.mul(&m[j][i], &b[j])
			v[i].add(&product)
		}
	}
}

// sampleNoise fills v with CBD noise, consuming one nonce per polynomial.
func (v *polyVec) sampleNoise(seed []byte, nonce *byte) {
	for i := range v {
		v[i].sampleCBD(seed, *nonce)
		*nonce++
	}
}

type polyMat [rank][rank]poly

// expand derives the public matrix from rho by SHAKE128 rejection sampling.
func (m *polyMat) expand(rho []byte) {
	for i := 0; i < rank; i++ {
		for j := 0; j < rank; j++ {
			m[i][j].sampleUniform(xof(rho, byte(i), byte(j)))
		}
	}
}
