package kyber768

import (
	"bytes"
	"testing"

	circl "github.com/cloudflare/circl/kem/kyber/kyber768"
	circlpke "github.com/cloudflare/circl/pke/kyber/kyber768"
)

// Differential tests against cloudflare/circl's independent round-3 Kyber768
// implementation. Every byte that crosses the wire must match.

func circlKeyPair(t *testing.T, d, z *[symSize]byte) ([]byte, []byte) {
	t.Helper()
	seed := make([]byte, circl.Scheme().SeedSize())
	copy(seed, d[:])
	copy(seed[symSize:], z[:])
	pk, sk := circl.Scheme().DeriveKeyPair(seed)
	pkBytes, err := pk.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	skBytes, err := sk.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	return pkBytes, skBytes
}

func TestKeyGenMatchesCircl(t *testing.T) {
	var d, z [symSize]byte
	copy(d[:], seq(symSize))
	copy(z[:], bytes.Repeat([]byte{0x77}, symSize))

	wantPK, wantSK := circlKeyPair(t, &d, &z)
	pk, sk := generateKeyDerand(genericBackend, &d, &z)

	if !bytes.Equal(pk[:], wantPK) {
		t.Error("public keys differ")
	}
	if !bytes.Equal(sk[:], wantSK) {
		t.Error("secret keys differ")
	}
}

func TestEncapsMatchesCircl(t *testing.T) {
	var d, z, m0 [symSize]byte
	copy(d[:], seq(symSize))
	copy(m0[:], bytes.Repeat([]byte{0x33}, symSize))

	wantPKBytes, _ := circlKeyPair(t, &d, &z)
	circlPK, err := circl.Scheme().UnmarshalBinaryPublicKey(wantPKBytes)
	if err != nil {
		t.Fatal(err)
	}
	wantCT, wantSS, err := circl.Scheme().EncapsulateDeterministically(circlPK, m0[:])
	if err != nil {
		t.Fatal(err)
	}

	pk, _ := generateKeyDerand(genericBackend, &d, &z)
	ct, ss := encapsulateDerand(genericBackend, &m0, pk)

	if !bytes.Equal(ct[:], wantCT) {
		t.Error("ciphertexts differ")
	}
	if !bytes.Equal(ss[:], wantSS) {
		t.Error("shared secrets differ")
	}
}

func TestDecapsMatchesCircl(t *testing.T) {
	var d, z, m0 [symSize]byte
	copy(z[:], seq(symSize))
	copy(m0[:], bytes.Repeat([]byte{0xee}, symSize))

	_, wantSKBytes := circlKeyPair(t, &d, &z)
	circlSK, err := circl.Scheme().UnmarshalBinaryPrivateKey(wantSKBytes)
	if err != nil {
		t.Fatal(err)
	}

	pk, sk := generateKeyDerand(genericBackend, &d, &z)
	ct, ss := encapsulateDerand(genericBackend, &m0, pk)

	wantSS, err := circl.Scheme().Decapsulate(circlSK, ct[:])
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ss[:], wantSS) {
		t.Error("honest decapsulations differ")
	}

	// The implicit-rejection output must match byte-for-byte as well.
	bad := *ct
	bad[42] ^= 0x04
	wantRej, err := circl.Scheme().Decapsulate(circlSK, bad[:])
	if err != nil {
		t.Fatal(err)
	}
	rej := decapsulateDerand(genericBackend, &bad, sk)
	if !bytes.Equal(rej[:], wantRej) {
		t.Error("rejection outputs differ")
	}
}

// The reference exchange (z = 0x00..0x1f, custom CCA input 0x00..0x1f),
// cross-checked against circl end to end.
func TestReferenceExchangeMatchesCircl(t *testing.T) {
	var d, z [symSize]byte
	copy(d[:], bytes.Repeat([]byte{0x42}, symSize))
	copy(z[:], seq(symSize))

	_, wantSKBytes := circlKeyPair(t, &d, &z)
	circlSK, err := circl.Scheme().UnmarshalBinaryPrivateKey(wantSKBytes)
	if err != nil {
		t.Fatal(err)
	}

	pk, sk := generateKeyDerand(genericBackend, &d, &z)

	var input [CustomSecretSize]byte
	copy(input[:], seq(CustomSecretSize))
	ct, ssE := EncapsulateCustomCCA(&input, pk)

	wantSS, err := circl.Scheme().Decapsulate(circlSK, ct[:])
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ssE[:], wantSS) {
		t.Error("encapsulation secret differs from circl decapsulation")
	}
	if ssD := Decapsulate(ct, sk); !bytes.Equal(ssD[:], wantSS) {
		t.Error("decapsulations differ")
	}

	bad := *ct
	bad[100] ^= 0x10
	wantRej, err := circl.Scheme().Decapsulate(circlSK, bad[:])
	if err != nil {
		t.Fatal(err)
	}
	if rej := Decapsulate(&bad, sk); !bytes.Equal(rej[:], wantRej) {
		t.Error("rejection outputs differ")
	}
}

func TestCPAMatchesCirclPKE(t *testing.T) {
	var d, coins, msg [symSize]byte
	copy(d[:], seq(symSize))
	copy(coins[:], bytes.Repeat([]byte{0x11}, symSize))
	copy(msg[:], bytes.Repeat([]byte{0xf0}, symSize))

	circlPK, circlSK := circlpke.NewKeyFromSeed(d[:])
	wantPK := make([]byte, circlpke.PublicKeySize)
	circlPK.Pack(wantPK)

	pk, sk := cpaKeyGen(&d, genericCodec{})
	if !bytes.Equal(pk[:], wantPK) {
		t.Error("PKE public keys differ")
	}

	wantCT := make([]byte, circlpke.CiphertextSize)
	circlPK.EncryptTo(wantCT, msg[:], coins[:])

	var ct [CiphertextSize]byte
	cpaEncrypt(&ct, &msg, pk[:], &coins, genericCodec{})
	if !bytes.Equal(ct[:], wantCT) {
		t.Error("PKE ciphertexts differ")
	}

	wantPT := make([]byte, circlpke.PlaintextSize)
	circlSK.DecryptTo(wantPT, wantCT)

	var got [msgSize]byte
	cpaDecrypt(&got, ct[:], sk[:], genericCodec{})
	if !bytes.Equal(got[:], wantPT) {
		t.Error("PKE decryptions differ")
	}
}
