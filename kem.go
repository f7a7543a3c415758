package brake

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	sntrup "github.com/companyzero/sntrup4591761"

	"github.com/MatejPoljuha/liboqs-PQ-BRAKE/kyber768"
)

// ErrNotSupported is returned by operations an algorithm does not implement,
// either at all or on the current machine.
var ErrNotSupported = errors.New("brake: operation not supported by this algorithm")

// Registered algorithm names, accepted by NewKEM.
const (
	AlgKyber768      = "Kyber768"
	AlgSntrup4591761 = "sntrup4591761"
)

// A KEM describes a registered key encapsulation mechanism: its parameters
// and the operations it implements. Optional operations are nil when the
// algorithm does not carry them; the corresponding methods then return
// [ErrNotSupported].
//
// All methods take and return byte slices of exactly the lengths the size
// fields announce, and fail fast on any other length.
type KEM struct {
	// Name is the registered algorithm name, as accepted by NewKEM.
	Name string
	// Version identifies the parameter set revision.
	Version string

	// ClaimedNISTLevel is the security category claimed by the submission.
	ClaimedNISTLevel int
	// INDCCA reports whether the standard encapsulation mode provides
	// IND-CCA2 security.
	INDCCA bool

	PublicKeySize    int
	SecretKeySize    int
	CiphertextSize   int
	SharedSecretSize int
	// SeedSize is the length of the seed accepted by KeypairFromSeed, 0 if
	// the operation is absent.
	SeedSize int
	// CustomSecretSize is the length of the caller-chosen input to the
	// custom-secret modes, 0 if they are absent.
	CustomSecretSize int
	// PlaintextSecretSize is the length of the secret returned by the
	// custom CPA mode, 0 if it is absent.
	PlaintextSecretSize int

	keypair         func(rng io.Reader) (pk, sk []byte, err error)
	keypairFromSeed func(rng io.Reader, seed []byte) (pk, sk []byte, err error)
	encaps          func(rng io.Reader, pk []byte) (ct, ss []byte, err error)
	decaps          func(ct, sk []byte) ([]byte, error)
	encapsCustomCCA func(input, pk []byte) (ct, ss []byte, err error)
	encapsCustomCPA func(rng io.Reader, input, pk []byte) (ct, ss []byte, err error)
	decapsCustomCPA func(ct, sk []byte) ([]byte, error)
}

// NewKEM returns the registration record for the named algorithm, or an error
// if name is not registered.
func NewKEM(name string) (*KEM, error) {
	switch name {
	case AlgKyber768:
		return newKyber768(), nil
	case AlgSntrup4591761:
		return newSntrup4591761(), nil
	default:
		return nil, fmt.Errorf("brake: unknown KEM %q", name)
	}
}

// SupportedKEMs returns the names of the registered algorithms.
func SupportedKEMs() []string {
	return []string{AlgKyber768, AlgSntrup4591761}
}

// IsKEMSupported reports whether name is a registered algorithm.
func IsKEMSupported(name string) bool {
	_, err := NewKEM(name)
	return err == nil
}

func checkLen(what string, buf []byte, want int) error {
	if len(buf) != want {
		return fmt.Errorf("brake: %s has length %d, want %d", what, len(buf), want)
	}
	return nil
}

// Keypair generates a keypair, reading randomness from rng, or from
// crypto/rand if rng is nil.
func (k *KEM) Keypair(rng io.Reader) (publicKey, secretKey []byte, err error) {
	return k.keypair(rng)
}

// KeypairFromSeed generates a keypair deterministically bound to seed, so
// that the secrets derived from rejected ciphertexts are reproducible. It
// returns [ErrNotSupported] if the algorithm, or the current machine, does
// not carry the seeded variant.
func (k *KEM) KeypairFromSeed(rng io.Reader, seed []byte) (publicKey, secretKey []byte, err error) {
	if k.keypairFromSeed == nil {
		return nil, nil, ErrNotSupported
	}
	if err := checkLen("seed", seed, k.SeedSize); err != nil {
		return nil, nil, err
	}
	return k.keypairFromSeed(rng, seed)
}

// Encaps generates a fresh shared secret and a ciphertext carrying it.
func (k *KEM) Encaps(rng io.Reader, publicKey []byte) (ciphertext, sharedSecret []byte, err error) {
	if err := checkLen("public key", publicKey, k.PublicKeySize); err != nil {
		return nil, nil, err
	}
	return k.encaps(rng, publicKey)
}

// Decaps recovers the shared secret carried by ciphertext.
func (k *KEM) Decaps(ciphertext, secretKey []byte) (sharedSecret []byte, err error) {
	if err := checkLen("ciphertext", ciphertext, k.CiphertextSize); err != nil {
		return nil, err
	}
	if err := checkLen("secret key", secretKey, k.SecretKeySize); err != nil {
		return nil, err
	}
	return k.decaps(ciphertext, secretKey)
}

// EncapsCustomCCA encapsulates the caller-chosen input instead of a random
// draw, keeping the full CCA transform. It returns [ErrNotSupported] if the
// algorithm has no custom-secret mode.
func (k *KEM) EncapsCustomCCA(input, publicKey []byte) (ciphertext, sharedSecret []byte, err error) {
	if k.encapsCustomCCA == nil {
		return nil, nil, ErrNotSupported
	}
	if err := checkLen("input", input, k.CustomSecretSize); err != nil {
		return nil, nil, err
	}
	if err := checkLen("public key", publicKey, k.PublicKeySize); err != nil {
		return nil, nil, err
	}
	return k.encapsCustomCCA(input, publicKey)
}

// DecapsCustomCCA recovers the secret produced by EncapsCustomCCA. For
// algorithms with a custom-secret mode it is identical to Decaps.
func (k *KEM) DecapsCustomCCA(ciphertext, secretKey []byte) (sharedSecret []byte, err error) {
	if k.encapsCustomCCA == nil {
		return nil, ErrNotSupported
	}
	return k.Decaps(ciphertext, secretKey)
}

// EncapsCustomCPA encrypts input as the literal message, without the CCA
// transform. The returned secret is PlaintextSecretSize bytes, input in its
// first CustomSecretSize bytes and zeros after. It returns [ErrNotSupported]
// if the algorithm has no custom-secret mode.
func (k *KEM) EncapsCustomCPA(rng io.Reader, input, publicKey []byte) (ciphertext, sharedSecret []byte, err error) {
	if k.encapsCustomCPA == nil {
		return nil, nil, ErrNotSupported
	}
	if err := checkLen("input", input, k.CustomSecretSize); err != nil {
		return nil, nil, err
	}
	if err := checkLen("public key", publicKey, k.PublicKeySize); err != nil {
		return nil, nil, err
	}
	return k.encapsCustomCPA(rng, input, publicKey)
}

// DecapsCustomCPA decrypts a ciphertext produced by EncapsCustomCPA. The
// ciphertext's integrity is not verified.
func (k *KEM) DecapsCustomCPA(ciphertext, secretKey []byte) (sharedSecret []byte, err error) {
	if k.decapsCustomCPA == nil {
		return nil, ErrNotSupported
	}
	if err := checkLen("ciphertext", ciphertext, k.CiphertextSize); err != nil {
		return nil, err
	}
	if err := checkLen("secret key", secretKey, k.SecretKeySize); err != nil {
		return nil, err
	}
	return k.decapsCustomCPA(ciphertext, secretKey)
}

func newKyber768() *KEM {
	return &KEM{
		Name:    AlgKyber768,
		Version: "NIST Round 3 submission",

		ClaimedNISTLevel: 3,
		INDCCA:           true,

		PublicKeySize:       kyber768.PublicKeySize,
		SecretKeySize:       kyber768.SecretKeySize,
		CiphertextSize:      kyber768.CiphertextSize,
		SharedSecretSize:    kyber768.SharedSecretSize,
		SeedSize:            kyber768.SeedSize,
		CustomSecretSize:    kyber768.CustomSecretSize,
		PlaintextSecretSize: kyber768.PlaintextSecretSize,

		keypair: func(rng io.Reader) ([]byte, []byte, error) {
			pk, sk, err := kyber768.GenerateKey(rng)
			if err != nil {
				return nil, nil, err
			}
			return pk[:], sk[:], nil
		},
		keypairFromSeed: func(rng io.Reader, seed []byte) ([]byte, []byte, error) {
			pk, sk, err := kyber768.GenerateKeyFromSeed(rng, (*[kyber768.SeedSize]byte)(seed))
			if err != nil {
				if errors.Is(err, kyber768.ErrNotSupported) {
					err = ErrNotSupported
				}
				return nil, nil, err
			}
			return pk[:], sk[:], nil
		},
		encaps: func(rng io.Reader, pk []byte) ([]byte, []byte, error) {
			ct, ss, err := kyber768.Encapsulate(rng, (*kyber768.PublicKey)(pk))
			if err != nil {
				return nil, nil, err
			}
			return ct[:], ss[:], nil
		},
		decaps: func(ct, sk []byte) ([]byte, error) {
			ss := kyber768.Decapsulate((*kyber768.Ciphertext)(ct), (*kyber768.SecretKey)(sk))
			return ss[:], nil
		},
		encapsCustomCCA: func(input, pk []byte) ([]byte, []byte, error) {
			ct, ss := kyber768.EncapsulateCustomCCA((*[kyber768.CustomSecretSize]byte)(input), (*kyber768.PublicKey)(pk))
			return ct[:], ss[:], nil
		},
		encapsCustomCPA: func(rng io.Reader, input, pk []byte) ([]byte, []byte, error) {
			ct, ss, err := kyber768.EncapsulateCustomCPA(rng, (*[kyber768.CustomSecretSize]byte)(input), (*kyber768.PublicKey)(pk))
			if err != nil {
				return nil, nil, err
			}
			return ct[:], ss[:], nil
		},
		decapsCustomCPA: func(ct, sk []byte) ([]byte, error) {
			ss := kyber768.DecapsulateCustomCPA((*kyber768.Ciphertext)(ct), (*kyber768.SecretKey)(sk))
			return ss[:], nil
		},
	}
}

func newSntrup4591761() *KEM {
	return &KEM{
		Name:    AlgSntrup4591761,
		Version: "sntrup4591761",

		ClaimedNISTLevel: 2,
		INDCCA:           true,

		PublicKeySize:    sntrup.PublicKeySize,
		SecretKeySize:    sntrup.PrivateKeySize,
		CiphertextSize:   sntrup.CiphertextSize,
		SharedSecretSize: sntrup.SharedKeySize,

		keypair: func(rng io.Reader) ([]byte, []byte, error) {
			if rng == nil {
				rng = rand.Reader
			}
			pk, sk, err := sntrup.GenerateKey(rng)
			if err != nil {
				return nil, nil, err
			}
			return pk[:], sk[:], nil
		},
		encaps: func(rng io.Reader, pk []byte) ([]byte, []byte, error) {
			if rng == nil {
				rng = rand.Reader
			}
			ct, ss, err := sntrup.Encapsulate(rng, (*sntrup.PublicKey)(pk))
			if err != nil {
				return nil, nil, err
			}
			return ct[:], ss[:], nil
		},
		decaps: func(ct, sk []byte) ([]byte, error) {
			ss, ok := sntrup.Decapsulate((*sntrup.Ciphertext)(ct), (*sntrup.PrivateKey)(sk))
			if ok != 1 {
				return nil, errors.New("brake: sntrup4591761 ciphertext is invalid")
			}
			return ss[:], nil
		},
	}
}
