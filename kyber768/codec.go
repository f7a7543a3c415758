package kyber768

// A codec converts polynomials to and from their wire encodings. Backends
// provide different implementations with bit-identical outputs; the generic
// codec packs bit by bit, the fast codec uses width-specialized routines.
type codec interface {
	polyToBytes(out []byte, p *poly)
	polyFromBytes(p *poly, in []byte)
	compressU(out []byte, v *polyVec)
	decompressU(v *polyVec, in []byte)
	compressV(out []byte, p *poly)
	decompressV(p *poly, in []byte)
	polyToMsg(msg []byte, p *poly)
	polyFromMsg(p *poly, msg []byte)
}

// fieldCompress maps x in [0, prime) to round(2^bits/prime * x) mod 2^bits.
// A direct Barrett reduction yields both quotient and remainder, so the
// rounding can be adjusted without dividing.
func fieldCompress(x uint16, bits uint) uint16 {
	product := uint32(x) << bits
	quotient := uint32((uint64(product) * barrettMultiplier) >> barrettShift)
	remainder := product - quotient*prime

	// The quotient may undershoot by up to two:
	//   0 <= remainder <= halfPrime rounds to 0
	//   halfPrime < remainder <= prime + halfPrime rounds to 1
	//   prime + halfPrime < remainder < 2 * prime rounds to 2
	quotient += 1 & lt(halfPrime, remainder)
	quotient += 1 & lt(prime+halfPrime, remainder)
	return uint16(quotient) & ((1 << bits) - 1)
}

// fieldDecompress maps x in [0, 2^bits) to round(prime/2^bits * x).
func fieldDecompress(x uint16, bits uint) uint16 {
	product := uint32(x) * prime
	power := uint32(1) << bits
	remainder := product & (power - 1)
	lower := product >> bits
	return uint16(lower + (remainder >> (bits - 1)))
}

var bitMasks = [8]uint16{0x01, 0x03, 0x07, 0x0f, 0x1f, 0x3f, 0x7f, 0xff}

// packPoly serializes the 256 values load(0)..load(255) into out, bits bits
// per value, least significant bits first.
func packPoly(out []byte, bits uint, load func(int) uint16) {
	var acc byte
	accBits := uint(0)

	for i := 0; i < degree; i++ {
		v := load(i)
		done := uint(0)
		for done < bits {
			chunk := bits - done
			if room := 8 - accBits; chunk >= room {
				chunk = room
				acc |= byte(v&bitMasks[chunk-1]) << accBits
				out[0] = acc
				out = out[1:]
				acc, accBits = 0, 0
			} else {
				acc |= byte(v&bitMasks[chunk-1]) << accBits
				accBits += chunk
			}
			done += chunk
			v >>= chunk
		}
	}

	if accBits > 0 {
		out[0] = acc
	}
}

// unpackPoly deserializes 256 values of bits bits each from in, passing each
// to store.
func unpackPoly(in []byte, bits uint, store func(int, uint16)) {
	var cur byte
	curBits := uint(0)

	for i := 0; i < degree; i++ {
		var v uint16
		done := uint(0)
		for done < bits {
			if curBits == 0 {
				cur = in[0]
				in = in[1:]
				curBits = 8
			}

			chunk := bits - done
			if chunk > curBits {
				chunk = curBits
			}

			v |= (uint16(cur) & bitMasks[chunk-1]) << done
			curBits -= chunk
			cur >>= chunk
			done += chunk
		}
		store(i, v)
	}
}

type genericCodec struct{}

func (genericCodec) polyToBytes(out []byte, p *poly) {
	packPoly(out, log2Prime, func(i int) uint16 { return p[i] })
}

func (genericCodec) polyFromBytes(p *poly, in []byte) {
	unpackPoly(in, log2Prime, func(i int, v uint16) { p[i] = fieldReduceOnce(v) })
}

func (genericCodec) compressU(out []byte, v *polyVec) {
	for i := range v {
		p := &v[i]
		packPoly(out[i*du*degree/8:], du, func(j int) uint16 { return fieldCompress(p[j], du) })
	}
}

func (genericCodec) decompressU(v *polyVec, in []byte) {
	for i := range v {
		p := &v[i]
		unpackPoly(in[i*du*degree/8:], du, func(j int, x uint16) { p[j] = fieldDecompress(x, du) })
	}
}

func (genericCodec) compressV(out []byte, p *poly) {
	packPoly(out, dv, func(i int) uint16 { return fieldCompress(p[i], dv) })
}

func (genericCodec) decompressV(p *poly, in []byte) {
	unpackPoly(in, dv, func(i int, x uint16) { p[i] = fieldDecompress(x, dv) })
}

func (genericCodec) polyToMsg(msg []byte, p *poly) {
	packPoly(msg, 1, func(i int) uint16 { return fieldCompress(p[i], 1) })
}

func (genericCodec) polyFromMsg(p *poly, msg []byte) {
	unpackPoly(msg, 1, func(i int, x uint16) { p[i] = fieldDecompress(x, 1) })
}
