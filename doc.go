// Package brake provides post-quantum key encapsulation with caller-chosen
// secrets.
//
// Algorithms are exposed through registration records: NewKEM returns a [KEM]
// describing the named algorithm's parameters and operations over plain byte
// slices. Kyber768 additionally implements the custom-secret encapsulation
// modes, in a CCA variant that keeps the full transform and a CPA variant
// that transports the chosen bytes verbatim; see the kyber768 package for the
// typed API and the security trade-offs.
//
// Operations an algorithm does not implement return [ErrNotSupported].
package brake
