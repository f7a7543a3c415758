//go:build amd64 && !purego

package kyber768

import "golang.org/x/sys/cpu"

func init() {
	archBackends = append(archBackends, &backend{
		name: "avx2",
		available: func() bool {
			return cpu.X86.HasAVX2 && cpu.X86.HasBMI2 && cpu.X86.HasPOPCNT
		},
		codec:      fastCodec{},
		seedKeygen: true,
	})
}
