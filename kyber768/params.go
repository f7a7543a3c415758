package kyber768

const (
	// Sizes of the wire-format buffers, in bytes.
	PublicKeySize    = 1184
	SecretKeySize    = 2400
	CiphertextSize   = 1088
	SharedSecretSize = 32

	// SeedSize is the size of the implicit-rejection seed accepted by
	// [GenerateKeyFromSeed].
	SeedSize = 32

	// CustomSecretSize is the size of the caller-chosen input to the
	// custom-secret encapsulation variants.
	CustomSecretSize = 32

	// PlaintextSecretSize is the size of the raw message buffer returned by
	// the CPA custom-secret variants.
	PlaintextSecretSize = 64
)

// Kyber768 parameter set.
const (
	degree = 256
	rank   = 3
	prime  = 3329

	log2Prime = 12
	halfPrime = (prime - 1) / 2
	du        = 10
	dv        = 4

	// 256^-1 mod 3329, for the final scaling of the inverse NTT.
	inverseDegree = 3303

	barrettMultiplier = 5039
	barrettShift      = 24

	symSize = 32
	msgSize = symSize

	encodedPolySize = log2Prime * degree / 8          // 384
	encodedVecSize  = rank * encodedPolySize          // 1152
	compressedUSize = du * rank * degree / 8          // 960
	compressedVSize = dv * degree / 8                 // 128

	cpaPublicKeySize = encodedVecSize + symSize // 1184
	cpaSecretKeySize = encodedVecSize           // 1152
)
