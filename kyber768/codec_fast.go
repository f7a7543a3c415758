package kyber768

// fastCodec implements the codec with packing routines specialized per bit
// width, so each output byte is assembled with a fixed shift pattern instead
// of the generic accumulator loop.
type fastCodec struct{}

func (fastCodec) polyToBytes(out []byte, p *poly) {
	for i := 0; i < degree; i += 2 {
		t0, t1 := p[i], p[i+1]
		out[0] = byte(t0)
		out[1] = byte(t0>>8) | byte(t1<<4)
		out[2] = byte(t1 >> 4)
		out = out[3:]
	}
}

func (fastCodec) polyFromBytes(p *poly, in []byte) {
	for i := 0; i < degree; i += 2 {
		d0 := uint16(in[0]) | uint16(in[1]&0x0f)<<8
		d1 := uint16(in[1]>>4) | uint16(in[2])<<4
		p[i] = fieldReduceOnce(d0)
		p[i+1] = fieldReduceOnce(d1)
		in = in[3:]
	}
}

func (fastCodec) compressU(out []byte, v *polyVec) {
	for i := range v {
		p := &v[i]
		for j := 0; j < degree; j += 4 {
			y0 := fieldCompress(p[j], du)
			y1 := fieldCompress(p[j+1], du)
			y2 := fieldCompress(p[j+2], du)
			y3 := fieldCompress(p[j+3], du)
			out[0] = byte(y0)
			out[1] = byte(y0>>8) | byte(y1<<2)
			out[2] = byte(y1>>6) | byte(y2<<4)
			out[3] = byte(y2>>4) | byte(y3<<6)
			out[4] = byte(y3 >> 2)
			out = out[5:]
		}
	}
}

func (fastCodec) decompressU(v *polyVec, in []byte) {
	for i := range v {
		p := &v[i]
		for j := 0; j < degree; j += 4 {
			x0 := uint16(in[0]) | uint16(in[1]&0x03)<<8
			x1 := uint16(in[1]>>2) | uint16(in[2]&0x0f)<<6
			x2 := uint16(in[2]>>4) | uint16(in[3]&0x3f)<<4
			x3 := uint16(in[3]>>6) | uint16(in[4])<<2
			p[j] = fieldDecompress(x0, du)
			p[j+1] = fieldDecompress(x1, du)
			p[j+2] = fieldDecompress(x2, du)
			p[j+3] = fieldDecompress(x3, du)
			in = in[5:]
		}
	}
}

func (fastCodec) compressV(out []byte, p *poly) {
	for i := 0; i < degree; i += 2 {
		out[i/2] = byte(fieldCompress(p[i], dv)) | byte(fieldCompress(p[i+1], dv))<<4
	}
}

func (fastCodec) decompressV(p *poly, in []byte) {
	for i := 0; i < degree; i += 2 {
		p[i] = fieldDecompress(uint16(in[i/2]&0x0f), dv)
		p[i+1] = fieldDecompress(uint16(in[i/2]>>4), dv)
	}
}

func (fastCodec) polyToMsg(msg []byte, p *poly) {
	for i := 0; i < degree/8; i++ {
		var b byte
		for j := 0; j < 8; j++ {
			b |= byte(fieldCompress(p[8*i+j], 1)) << j
		}
		msg[i] = b
	}
}

func (fastCodec) polyFromMsg(p *poly, msg []byte) {
	for i := 0; i < degree/8; i++ {
		for j := 0; j < 8; j++ {
			p[8*i+j] = fieldDecompress(uint16(msg[i]>>j)&1, 1)
		}
	}
}
