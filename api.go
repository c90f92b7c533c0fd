package sha256

import (
	"io"
	"sync"

	"github.com/kmolski/sha256/internal/consts"
	"github.com/kmolski/sha256/ref"
)

const (
	// Size is the size of a SHA-256 digest in bytes.
	Size = consts.Size

	// BlockSize is the block size of SHA-256 in bytes.
	BlockSize = consts.BlockLen
)

// readBufferSize is how much ReadFrom asks a reader for at once.
const readBufferSize = 1024 * consts.BlockLen

var readBuffers = sync.Pool{
	New: func() interface{} { return new([readBufferSize]byte) },
}

// Hasher is a hash.Hash for SHA-256 whose compression rounds are run by the
// Backend it was created with.
//
// A Hasher accepts data through Write and ReadFrom until Finalize is called.
// After Finalize it must not be written to, summed or finalized again until
// Reset is called.
type Hasher struct {
	backend Backend
	h       hasher
}

// New returns a new Hasher using the portable backend.
func New() *Hasher {
	h := &Hasher{
		backend: Portable,
		h: hasher{
			rounds: ref.Rounds,
		},
	}
	h.h.reset()
	return h
}

// NewBackend returns a new Hasher using the given backend. It returns
// ErrNativeUnavailable if the backend cannot run on this machine.
func NewBackend(b Backend) (*Hasher, error) {
	fn, err := b.rounds()
	if err != nil {
		return nil, err
	}
	h := &Hasher{
		backend: b,
		h: hasher{
			rounds: fn,
		},
	}
	h.h.reset()
	return h, nil
}

// Backend returns the backend the Hasher was created with.
func (h *Hasher) Backend() Backend { return h.backend }

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.h.update(p)
	return len(p), nil
}

// ReadFrom implements io.ReaderFrom. It hashes everything read from r until
// io.EOF and returns the number of bytes consumed. Any other error from r is
// returned as is, and the Hasher should then be discarded or Reset.
func (h *Hasher) ReadFrom(r io.Reader) (n int64, err error) {
	if h.h.done {
		panic("sha256: read into finalized Hasher")
	}

	buf := readBuffers.Get().(*[readBufferSize]byte)
	defer readBuffers.Put(buf)

	for {
		m, err := r.Read(buf[:])
		if m > 0 {
			h.h.update(buf[:m])
			n += int64(m)
		}
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}

// Finalize pads the message, compresses the remaining blocks and returns the
// digest. The Hasher is unusable afterwards until Reset is called.
func (h *Hasher) Finalize() (out [Size]byte) {
	h.h.finalize(&out)
	return out
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created with the same backend.
func (h *Hasher) Reset() {
	h.h.reset()
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize implements part of the hash.Hash interface. It returns the most
// natural size to write to the Hasher.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the data written so far to the provided buffer and returns it. Unlike
// Finalize it leaves the Hasher usable.
func (h *Hasher) Sum(b []byte) []byte {
	var out [Size]byte
	c := h.h
	c.finalize(&out)
	return append(b, out[:]...)
}

// Sum256 returns the SHA-256 digest of data using the portable backend.
func Sum256(data []byte) [Size]byte {
	var a hasher
	a.rounds = ref.Rounds
	a.reset()
	a.update(data)

	var out [Size]byte
	a.finalize(&out)
	return out
}

// SumReader returns the SHA-256 digest of everything read from r using the
// given backend. No digest is returned if reading fails.
func SumReader(b Backend, r io.Reader) ([Size]byte, error) {
	h, err := NewBackend(b)
	if err != nil {
		return [Size]byte{}, err
	}
	if _, err := h.ReadFrom(r); err != nil {
		return [Size]byte{}, err
	}
	return h.Finalize(), nil
}
