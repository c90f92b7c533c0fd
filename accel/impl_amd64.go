//go:build !purego

package accel

import "github.com/kmolski/sha256/internal/consts"

// Available reports whether Rounds runs the assembly routine on this
// machine. Rounds must not be called when it is false.
var Available = consts.HasBMI2

// Rounds runs the 64 compression rounds in assembly. state is read and
// overwritten with the final working variables and w is only read. The
// routine keeps no state between calls and does not allocate.
func Rounds(state *[8]uint32, w *[64]uint32) {
	rounds(state, w)
}
