//go:build arm64 && !purego

package kyber768

import "golang.org/x/sys/cpu"

func init() {
	archBackends = append(archBackends, &backend{
		name:      "neon",
		available: func() bool { return cpu.ARM64.HasASIMD },
		codec:     fastCodec{},
	})
}
