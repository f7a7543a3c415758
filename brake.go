package brake

import (
	"sync"

	"github.com/MatejPoljuha/liboqs-PQ-BRAKE/kyber768"
)

var initOnce sync.Once

// Init performs process-wide setup. Calling it is optional: every operation
// works without it, but calling it once at application start moves the CPU
// capability probe out of the first encapsulation. Init is idempotent and
// safe for concurrent use.
func Init() {
	initOnce.Do(func() {
		kyber768.AvailableBackends()
	})
}

// Destroy releases process-wide state. It exists for symmetry with Init at
// application shutdown; the library holds no resources that outlive the
// process, so it is a no-op. Idempotent.
func Destroy() {}

// Wipe overwrites buf with zeros. Call it on buffers holding key material
// before releasing them, on failure paths included.
func Wipe(buf []byte) {
	clear(buf)
}
