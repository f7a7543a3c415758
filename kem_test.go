package brake

import (
	"bytes"
	"errors"
	"testing"

	"github.com/MatejPoljuha/liboqs-PQ-BRAKE/kyber768"
)

func TestSupportedKEMs(t *testing.T) {
	for _, name := range SupportedKEMs() {
		if !IsKEMSupported(name) {
			t.Errorf("%s listed but not supported", name)
		}
		kem, err := NewKEM(name)
		if err != nil {
			t.Fatal(err)
		}
		if kem.Name != name {
			t.Errorf("record for %s carries name %s", name, kem.Name)
		}
	}
	if IsKEMSupported("Kyber1024") {
		t.Error("unregistered algorithm reported as supported")
	}
	if _, err := NewKEM("Kyber1024"); err == nil {
		t.Error("NewKEM accepted an unregistered algorithm")
	}
}

func TestKyber768Record(t *testing.T) {
	kem, err := NewKEM(AlgKyber768)
	if err != nil {
		t.Fatal(err)
	}
	if !kem.INDCCA {
		t.Error("Kyber768 not marked IND-CCA")
	}
	if kem.ClaimedNISTLevel != 3 {
		t.Errorf("claimed NIST level %d, want 3", kem.ClaimedNISTLevel)
	}
	if kem.PublicKeySize != kyber768.PublicKeySize ||
		kem.SecretKeySize != kyber768.SecretKeySize ||
		kem.CiphertextSize != kyber768.CiphertextSize ||
		kem.SharedSecretSize != kyber768.SharedSecretSize {
		t.Error("record sizes do not match the implementation")
	}
}

func TestRoundTrips(t *testing.T) {
	for _, name := range SupportedKEMs() {
		t.Run(name, func(t *testing.T) {
			kem, err := NewKEM(name)
			if err != nil {
				t.Fatal(err)
			}
			pk, sk, err := kem.Keypair(nil)
			if err != nil {
				t.Fatal(err)
			}
			if len(pk) != kem.PublicKeySize || len(sk) != kem.SecretKeySize {
				t.Fatalf("keypair sizes %d/%d, want %d/%d",
					len(pk), len(sk), kem.PublicKeySize, kem.SecretKeySize)
			}
			ct, ssE, err := kem.Encaps(nil, pk)
			if err != nil {
				t.Fatal(err)
			}
			if len(ct) != kem.CiphertextSize || len(ssE) != kem.SharedSecretSize {
				t.Fatalf("encaps sizes %d/%d, want %d/%d",
					len(ct), len(ssE), kem.CiphertextSize, kem.SharedSecretSize)
			}
			ssD, err := kem.Decaps(ct, sk)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(ssE, ssD) {
				t.Errorf("shared secrets differ: %x vs %x", ssE, ssD)
			}
		})
	}
}

func TestCustomSecretModes(t *testing.T) {
	kem, err := NewKEM(AlgKyber768)
	if err != nil {
		t.Fatal(err)
	}
	pk, sk, err := kem.Keypair(nil)
	if err != nil {
		t.Fatal(err)
	}
	input := make([]byte, kem.CustomSecretSize)
	for i := range input {
		input[i] = byte(i)
	}

	ct, ssE, err := kem.EncapsCustomCCA(input, pk)
	if err != nil {
		t.Fatal(err)
	}
	ssD, err := kem.DecapsCustomCCA(ct, sk)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ssE, ssD) {
		t.Error("CCA custom secrets differ")
	}

	ct, ssE, err = kem.EncapsCustomCPA(nil, input, pk)
	if err != nil {
		t.Fatal(err)
	}
	if len(ssE) != kem.PlaintextSecretSize {
		t.Fatalf("CPA secret length %d, want %d", len(ssE), kem.PlaintextSecretSize)
	}
	ssD, err = kem.DecapsCustomCPA(ct, sk)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ssE, ssD) {
		t.Error("CPA custom secrets differ")
	}
	if !bytes.Equal(ssD[:kem.CustomSecretSize], input) {
		t.Error("decapsulated CPA secret does not start with the input")
	}
}

func TestLengthValidation(t *testing.T) {
	kem, err := NewKEM(AlgKyber768)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := kem.Encaps(nil, make([]byte, kem.PublicKeySize-1)); err == nil {
		t.Error("Encaps accepted a truncated public key")
	}
	if _, err := kem.Decaps(make([]byte, kem.CiphertextSize+1), make([]byte, kem.SecretKeySize)); err == nil {
		t.Error("Decaps accepted an oversized ciphertext")
	}
	if _, err := kem.Decaps(make([]byte, kem.CiphertextSize), nil); err == nil {
		t.Error("Decaps accepted a nil secret key")
	}
	if _, _, err := kem.EncapsCustomCCA(make([]byte, 16), make([]byte, kem.PublicKeySize)); err == nil {
		t.Error("EncapsCustomCCA accepted a short input")
	}
	if _, _, err := kem.KeypairFromSeed(nil, make([]byte, kem.SeedSize-1)); err == nil || errors.Is(err, ErrNotSupported) {
		t.Error("KeypairFromSeed did not reject a short seed")
	}
}

func TestSntrupOptionalOps(t *testing.T) {
	kem, err := NewKEM(AlgSntrup4591761)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := kem.KeypairFromSeed(nil, nil); !errors.Is(err, ErrNotSupported) {
		t.Errorf("KeypairFromSeed: got %v, want ErrNotSupported", err)
	}
	if _, _, err := kem.EncapsCustomCCA(nil, nil); !errors.Is(err, ErrNotSupported) {
		t.Errorf("EncapsCustomCCA: got %v, want ErrNotSupported", err)
	}
	if _, err := kem.DecapsCustomCCA(nil, nil); !errors.Is(err, ErrNotSupported) {
		t.Errorf("DecapsCustomCCA: got %v, want ErrNotSupported", err)
	}
	if _, _, err := kem.EncapsCustomCPA(nil, nil, nil); !errors.Is(err, ErrNotSupported) {
		t.Errorf("EncapsCustomCPA: got %v, want ErrNotSupported", err)
	}
	if _, err := kem.DecapsCustomCPA(nil, nil); !errors.Is(err, ErrNotSupported) {
		t.Errorf("DecapsCustomCPA: got %v, want ErrNotSupported", err)
	}
}

func TestInitDestroy(t *testing.T) {
	Init()
	Init()
	Destroy()
	Destroy()
}

func TestWipe(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	Wipe(buf)
	if !bytes.Equal(buf, make([]byte, 4)) {
		t.Errorf("buffer not wiped: %x", buf)
	}
}
