package kyber768

import "crypto/subtle"

// ctEqual returns 1 if a and b have the same contents, 0 otherwise. The time
// taken depends only on the length of the inputs.
func ctEqual(a, b []byte) int {
	return subtle.ConstantTimeCompare(a, b)
}

// ctMov copies src into dst if v == 1 and leaves dst untouched if v == 0,
// without branching on v.
func ctMov(v int, dst, src []byte) {
	subtle.ConstantTimeCopy(v, dst, src)
}
