package kyber768

import "sync"

// A backend is one compiled-in implementation of the primitive operations.
// All backends produce bit-identical results; they differ only in how fast
// they get there and in which extended operations they carry. Resolution picks
// the first available backend in priority order, falling back to the generic
// one, which is always available.

type operation int

const (
	opKeypair operation = iota
	opEncapsulate
	opDecapsulate
	numOperations
)

type backend struct {
	name      string
	available func() bool
	codec     codec

	// seedKeygen marks backends that carry the deterministic
	// keypair-from-seed extension.
	seedKeygen bool
}

var genericBackend = &backend{
	name:      "generic",
	available: func() bool { return true },
	codec:     genericCodec{},
}

// archBackends is populated at init time by the GOARCH-specific files, most
// specialized first. It stays empty under the purego build tag.
var archBackends []*backend

func compiledBackends() []*backend {
	return append(append([]*backend(nil), archBackends...), genericBackend)
}

// The capability probe is constant for the lifetime of the process, so each
// operation's backend is resolved once and cached.
var resolvedBackends = sync.OnceValue(func() [numOperations]*backend {
	var resolved [numOperations]*backend
	for op := range resolved {
		for _, b := range compiledBackends() {
			if b.available() {
				resolved[op] = b
				break
			}
		}
	}
	return resolved
})

func backendFor(op operation) *backend {
	return resolvedBackends()[op]
}

// seedKeygenBackend returns the first available backend carrying the
// keypair-from-seed extension, if any.
var seedKeygenBackend = sync.OnceValues(func() (*backend, bool) {
	for _, b := range compiledBackends() {
		if b.seedKeygen && b.available() {
			return b, true
		}
	}
	return nil, false
})

// AvailableBackends returns the names of the compiled-in backends usable on
// this machine, in resolution priority order. The last entry is always
// "generic".
func AvailableBackends() []string {
	var names []string
	for _, b := range compiledBackends() {
		if b.available() {
			names = append(names, b.name)
		}
	}
	return names
}
