package sha256

import (
	"encoding/binary"
	"math/bits"
)

func sigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
}

func sigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
}

// schedule expands one block into the 64 word message schedule. All
// additions wrap mod 2^32.
func schedule(block *[64]byte, w *[64]uint32) {
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i:])
	}
	for i := 16; i < 64; i++ {
		w[i] = sigma0(w[i-15]) + w[i-16] + sigma1(w[i-2]) + w[i-7]
	}
}
