// Package ref contains the portable SHA-256 compression rounds. It is the
// reference every other implementation is checked against.
package ref

import (
	"math/bits"

	"github.com/kmolski/sha256/internal/consts"
)

func round(a, b, c, d, e, f, g, h, k, w uint32) (uint32, uint32) {
	t1 := h +
		(bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)) +
		((e & f) ^ (^e & g)) +
		k + w
	t2 := (bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)) +
		((a & b) ^ (a & c) ^ (b & c))
	return d + t1, t1 + t2
}

// Rounds runs the 64 rounds of the compression function over the working
// variables in state using the expanded message schedule w. On return state
// holds the final working variables; adding them to the previous hash state
// is left to the caller.
func Rounds(state *[8]uint32, w *[64]uint32) {
	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	k := &consts.K
	for i := 0; i < 64; i += 8 {
		d, h = round(a, b, c, d, e, f, g, h, k[i+0], w[i+0])
		c, g = round(h, a, b, c, d, e, f, g, k[i+1], w[i+1])
		b, f = round(g, h, a, b, c, d, e, f, k[i+2], w[i+2])
		a, e = round(f, g, h, a, b, c, d, e, k[i+3], w[i+3])
		h, d = round(e, f, g, h, a, b, c, d, k[i+4], w[i+4])
		g, c = round(d, e, f, g, h, a, b, c, k[i+5], w[i+5])
		f, b = round(c, d, e, f, g, h, a, b, k[i+6], w[i+6])
		e, a = round(b, c, d, e, f, g, h, a, k[i+7], w[i+7])
	}

	*state = [8]uint32{a, b, c, d, e, f, g, h}
}
