package kyber768

// The IND-CPA public-key encryption scheme underneath the KEM
// (Kyber768.CPAPKE). Key generation is deterministic in the seed d; encryption
// is deterministic in the message and coins, which is what makes the
// re-encryption check of the FO transform possible.

func cpaKeyGen(d *[symSize]byte, cdc codec) (pk [cpaPublicKeySize]byte, sk [cpaSecretKeySize]byte) {
	g := hashG(d[:])
	rho, sigma := g[:symSize], g[symSize:]

	var a polyMat
	a.expand(rho)

	var s, e polyVec
	nonce := byte(0)
	s.sampleNoise(sigma, &nonce)
	e.sampleNoise(sigma, &nonce)
	s.ntt()
	e.ntt()

	var t polyVec
	t.mulTranspose(&a, &s)
	t.add(&e)

	for i := range t {
		cdc.polyToBytes(pk[i*encodedPolySize:], &t[i])
	}
	copy(pk[encodedVecSize:], rho)

	for i := range s {
		cdc.polyToBytes(sk[i*encodedPolySize:], &s[i])
	}
	return pk, sk
}

func cpaEncrypt(ct *[CiphertextSize]byte, msg *[msgSize]byte, pk []byte, coins *[symSize]byte, cdc codec) {
	var t polyVec
	for i := range t {
		cdc.polyFromBytes(&t[i], pk[i*encodedPolySize:])
	}
	rho := pk[encodedVecSize:cpaPublicKeySize]

	var a polyMat
	a.expand(rho)

	var r, e1 polyVec
	var e2 poly
	nonce := byte(0)
	r.sampleNoise(coins[:], &nonce)
	e1.sampleNoise(coins[:], &nonce)
	e2.sampleCBD(coins[:], nonce)
	r.ntt()

	var u polyVec
	u.mul(&a, &r)
	u.invNTT()
	u.add(&e1)

	var v poly
	v.innerProduct(&t, &r)
	v.invNTT()
	v.add(&e2)

	var m poly
	cdc.polyFromMsg(&m, msg[:])
	v.add(&m)

	cdc.compressU(ct[:compressedUSize], &u)
	cdc.compressV(ct[compressedUSize:], &v)
}

func cpaDecrypt(msg *[msgSize]byte, ct []byte, sk []byte, cdc codec) {
	var u polyVec
	cdc.decompressU(&u, ct[:compressedUSize])
	u.ntt()

	var v poly
	cdc.decompressV(&v, ct[compressedUSize:compressedUSize+compressedVSize])

	var s polyVec
	for i := range s {
		cdc.polyFromBytes(&s[i], sk[i*encodedPolySize:])
	}

	var mask poly
	mask.innerProduct(&s, &u)
	mask.invNTT()
	v.sub(&mask)

	cdc.polyToMsg(msg[:], &v)
}
