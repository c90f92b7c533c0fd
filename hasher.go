package sha256

import (
	"encoding/binary"

	"github.com/kmolski/sha256/internal/consts"
)

//
// hasher contains the streaming state for a sha256 hash
//

type hasher struct {
	state  [8]uint32
	len    uint64 // bytes written so far
	buf    [consts.BlockLen]byte
	bufn   int
	w      [64]uint32
	rounds roundsFunc
	done   bool
}

func (a *hasher) reset() {
	a.state = consts.IV
	a.len = 0
	a.bufn = 0
	a.done = false
}

func (a *hasher) update(p []byte) {
	if a.done {
		panic("sha256: write to finalized Hasher")
	}

	a.len += uint64(len(p))

	if a.bufn > 0 {
		n := copy(a.buf[a.bufn:], p)
		a.bufn += n
		p = p[n:]
		if a.bufn < consts.BlockLen {
			return
		}
		a.block(&a.buf)
		a.bufn = 0
	}

	for len(p) >= consts.BlockLen {
		a.block((*[consts.BlockLen]byte)(p))
		p = p[consts.BlockLen:]
	}

	a.bufn = copy(a.buf[:], p)
}

// block compresses one full block into the hash state.
func (a *hasher) block(b *[consts.BlockLen]byte) {
	schedule(b, &a.w)

	tmp := a.state
	a.rounds(&tmp, &a.w)

	a.state[0] += tmp[0]
	a.state[1] += tmp[1]
	a.state[2] += tmp[2]
	a.state[3] += tmp[3]
	a.state[4] += tmp[4]
	a.state[5] += tmp[5]
	a.state[6] += tmp[6]
	a.state[7] += tmp[7]
}

// finalize pads the buffered tail, compresses the last one or two blocks and
// writes the big-endian state to out.
func (a *hasher) finalize(out *[consts.Size]byte) {
	if a.done {
		panic("sha256: finalize of finalized Hasher")
	}
	a.done = true

	// the length field holds the message length in bits mod 2^64
	bitLen := a.len << 3

	var last [consts.BlockLen]byte
	n := copy(last[:], a.buf[:a.bufn])
	last[n] = 0x80

	if n+1 > consts.LenOffset {
		a.block(&last)
		last = [consts.BlockLen]byte{}
	}

	binary.BigEndian.PutUint64(last[consts.LenOffset:], bitLen)
	a.block(&last)

	for i, s := range a.state {
		binary.BigEndian.PutUint32(out[4*i:], s)
	}
}
