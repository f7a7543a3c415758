// Package kyber768 implements the Kyber768 key encapsulation mechanism as
// submitted to round 3 of the NIST PQC competition, extended with
// custom-secret encapsulation variants.
//
// The standard operations ([GenerateKey], [Encapsulate], [Decapsulate]) form
// an IND-CCA2-secure KEM built from the Kyber IND-CPA encryption scheme with
// the Fujisaki-Okamoto transform. Decapsulation uses implicit rejection: a
// ciphertext that fails the re-encryption check yields a pseudorandom secret
// rather than an error, so callers cannot be used as a decryption-failure
// oracle.
//
// The custom-secret variants let the caller choose the value a ciphertext
// carries. The CCA variants ([EncapsulateCustomCCA], [DecapsulateCustomCCA])
// feed the chosen input through the full FO chaining and keep the integrity
// check. The CPA variants ([EncapsulateCustomCPA], [DecapsulateCustomCPA])
// transport the input bits verbatim and skip the transform entirely, trading
// ciphertext integrity for exact recovery of the encapsulated bytes.
//
// Each operation dispatches to the fastest compiled-in backend whose CPU
// requirements the machine meets; all backends are bit-compatible.
package kyber768
