package kyber768

import "golang.org/x/crypto/sha3"

// The symmetric primitives of the Kyber768 parameter set: H and G for hashing,
// SHAKE256 as both PRF and KDF, SHAKE128 as the matrix-expansion XOF.

func hashH(data []byte) [32]byte {
	return sha3.Sum256(data)
}

func hashG(data []byte) [64]byte {
	return sha3.Sum512(data)
}

func kdf(out, in []byte) {
	sha3.ShakeSum256(out, in)
}

func prf(out, seed []byte, nonce byte) {
	h := sha3.NewShake256()
	h.Write(seed)
	h.Write([]byte{nonce})
	h.Read(out)
}

func xof(rho []byte, i, j byte) sha3.ShakeHash {
	h := sha3.NewShake128()
	h.Write(rho)
	h.Write([]byte{i, j})
	return h
}
