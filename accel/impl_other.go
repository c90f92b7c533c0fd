//go:build !amd64 || purego

package accel

import "github.com/kmolski/sha256/ref"

const Available = false

func Rounds(state *[8]uint32, w *[64]uint32) {
	ref.Rounds(state, w)
}
