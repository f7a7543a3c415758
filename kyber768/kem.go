package kyber768

import (
	"crypto/rand"
	"errors"
	"io"
)

type (
	PublicKey    [PublicKeySize]byte
	SecretKey    [SecretKeySize]byte
	Ciphertext   [CiphertextSize]byte
	SharedSecret [SharedSecretSize]byte
)

// ErrNotSupported is returned by operations that need a backend capability not
// present in this build or on this machine.
var ErrNotSupported = errors.New("kyber768: operation not supported by any available backend")

// Offsets of the values embedded in the secret key: the IND-CPA secret key,
// a copy of the public key, H(public key), and the implicit-rejection seed z.
const (
	skPublicKeyOffset = cpaSecretKeySize
	skHashOffset      = SecretKeySize - 2*symSize
	skRejectionOffset = SecretKeySize - symSize
)

// GenerateKey generates a keypair, reading randomness from rng, or from
// crypto/rand if rng is nil.
func GenerateKey(rng io.Reader) (*PublicKey, *SecretKey, error) {
	if rng == nil {
		rng = rand.Reader
	}
	var d, z [symSize]byte
	if _, err := io.ReadFull(rng, d[:]); err != nil {
		return nil, nil, err
	}
	if _, err := io.ReadFull(rng, z[:]); err != nil {
		return nil, nil, err
	}
	pk, sk := generateKeyDerand(backendFor(opKeypair), &d, &z)
	return pk, sk, nil
}

// GenerateKeyFromSeed generates a keypair whose implicit-rejection seed z is
// seed rather than random, making the shared secret derived from a rejected
// ciphertext reproducible for this key. The primitive key material is still
// drawn from rng (or crypto/rand if rng is nil).
//
// The seeded variant is a backend extension; GenerateKeyFromSeed returns
// [ErrNotSupported] when no available backend carries it.
func GenerateKeyFromSeed(rng io.Reader, seed *[SeedSize]byte) (*PublicKey, *SecretKey, error) {
	b, ok := seedKeygenBackend()
	if !ok {
		return nil, nil, ErrNotSupported
	}
	if rng == nil {
		rng = rand.Reader
	}
	var d [symSize]byte
	if _, err := io.ReadFull(rng, d[:]); err != nil {
		return nil, nil, err
	}
	z := *seed
	pk, sk := generateKeyDerand(b, &d, &z)
	return pk, sk, nil
}

func generateKeyDerand(b *backend, d, z *[symSize]byte) (*PublicKey, *SecretKey) {
	cpaPK, cpaSK := cpaKeyGen(d, b.codec)

	pk := PublicKey(cpaPK)
	var sk SecretKey
	copy(sk[:], cpaSK[:])
	copy(sk[skPublicKeyOffset:], cpaPK[:])
	pkHash := hashH(cpaPK[:])
	copy(sk[skHashOffset:], pkHash[:])
	copy(sk[skRejectionOffset:], z[:])
	return &pk, &sk
}

// Encapsulate generates a fresh shared secret and a ciphertext carrying it,
// reading randomness from rng, or from crypto/rand if rng is nil.
func Encapsulate(rng io.Reader, pk *PublicKey) (*Ciphertext, *SharedSecret, error) {
	if rng == nil {
		rng = rand.Reader
	}
	var m0 [symSize]byte
	if _, err := io.ReadFull(rng, m0[:]); err != nil {
		return nil, nil, err
	}
	ct, ss := encapsulateDerand(backendFor(opEncapsulate), &m0, pk)
	return ct, ss, nil
}

// encapsulateDerand runs the FO encapsulation with m0 in place of the random
// draw: m = H(m0), (K', coins) = G(m || H(pk)), ct = Enc(m, pk, coins),
// ss = KDF(K' || H(ct)).
func encapsulateDerand(b *backend, m0 *[symSize]byte, pk *PublicKey) (*Ciphertext, *SharedSecret) {
	var buf [2 * symSize]byte
	m := hashH(m0[:])
	copy(buf[:symSize], m[:])
	pkHash := hashH(pk[:])
	copy(buf[symSize:], pkHash[:])

	kr := hashG(buf[:])

	var ct Ciphertext
	cpaEncrypt((*[CiphertextSize]byte)(&ct), (*[msgSize]byte)(buf[:msgSize]), pk[:], (*[symSize]byte)(kr[symSize:]), b.codec)

	ctHash := hashH(ct[:])
	copy(kr[symSize:], ctHash[:])

	var ss SharedSecret
	kdf(ss[:], kr[:])
	return &ct, &ss
}

// Decapsulate recovers the shared secret carried by ct. It never fails: if ct
// was not produced for this key, the returned secret is a pseudorandom value
// bound to ct and the key's rejection seed, indistinguishable from a
// successful result.
func Decapsulate(ct *Ciphertext, sk *SecretKey) *SharedSecret {
	return decapsulateDerand(backendFor(opDecapsulate), ct, sk)
}

func decapsulateDerand(b *backend, ct *Ciphertext, sk *SecretKey) *SharedSecret {
	cpaSK := sk[:cpaSecretKeySize]
	pk := sk[skPublicKeyOffset : skPublicKeyOffset+cpaPublicKeySize]

	var buf [2 * symSize]byte
	cpaDecrypt((*[msgSize]byte)(buf[:msgSize]), ct[:], cpaSK, b.codec)
	copy(buf[symSize:], sk[skHashOffset:skRejectionOffset])

	kr := hashG(buf[:])

	var expected Ciphertext
	cpaEncrypt((*[CiphertextSize]byte)(&expected), (*[msgSize]byte)(buf[:msgSize]), pk, (*[symSize]byte)(kr[symSize:]), b.codec)

	mismatch := 1 - ctEqual(ct[:], expected[:])

	ctHash := hashH(ct[:])
	copy(kr[symSize:], ctHash[:])

	// On mismatch, replace the pre-key with the rejection seed z.
	ctMov(mismatch, kr[:symSize], sk[skRejectionOffset:])

	var ss SharedSecret
	kdf(ss[:], kr[:])
	return &ss
}

// EncapsulateCustomCCA is Encapsulate with the random draw replaced by input.
// The input receives the full FO chaining, so the ciphertext and secret are
// deterministic in (input, pk) and decapsulation verifies ciphertext
// integrity exactly as in the standard mode.
func EncapsulateCustomCCA(input *[CustomSecretSize]byte, pk *PublicKey) (*Ciphertext, *SharedSecret) {
	m0 := *input
	return encapsulateDerand(backendFor(opEncapsulate), &m0, pk)
}

// DecapsulateCustomCCA recovers the secret produced by EncapsulateCustomCCA.
// It is the standard decapsulation, implicit rejection included.
func DecapsulateCustomCCA(ct *Ciphertext, sk *SecretKey) *SharedSecret {
	return decapsulateDerand(backendFor(opDecapsulate), ct, sk)
}

// EncapsulateCustomCPA encrypts input as the literal message, bypassing the
// FO chaining: the returned secret is the raw message buffer, input in its
// first half and zeros in its second. The encryption coins are drawn fresh
// from rng (or crypto/rand if rng is nil). Confidentiality of input rests on
// the primitive alone and the ciphertext is malleable; decapsulation performs
// no integrity check.
func EncapsulateCustomCPA(rng io.Reader, input *[CustomSecretSize]byte, pk *PublicKey) (*Ciphertext, *[PlaintextSecretSize]byte, error) {
	if rng == nil {
		rng = rand.Reader
	}
	var coins [symSize]byte
	if _, err := io.ReadFull(rng, coins[:]); err != nil {
		return nil, nil, err
	}

	b := backendFor(opEncapsulate)
	msg := *input
	var ct Ciphertext
	cpaEncrypt((*[CiphertextSize]byte)(&ct), &msg, pk[:], &coins, b.codec)

	var ss [PlaintextSecretSize]byte
	copy(ss[:CustomSecretSize], input[:])
	return &ct, &ss, nil
}

// DecapsulateCustomCPA decrypts ct and returns the raw message buffer, the
// decrypted message in its first half and zeros in its second. No
// re-encryption check is performed, so the ciphertext's integrity is not
// verified.
func DecapsulateCustomCPA(ct *Ciphertext, sk *SecretKey) *[PlaintextSecretSize]byte {
	b := backendFor(opDecapsulate)
	var ss [PlaintextSecretSize]byte
	cpaDecrypt((*[msgSize]byte)(ss[:msgSize]), ct[:], sk[:cpaSecretKeySize], b.codec)
	return &ss
}
