package sha256

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/zeebo/assert"
)

func TestAPI_Vectors(t *testing.T) {
	check := func(t *testing.T, h *Hasher, input []byte, hash string) {
		n, err := h.Write(input)
		assert.NoError(t, err)
		assert.Equal(t, n, len(input))

		digest := h.Finalize()
		assert.Equal(t, hash, hex.EncodeToString(digest[:]))
	}

	for _, b := range availableBackends() {
		t.Run(b.String(), func(t *testing.T) {
			for _, tv := range vectors {
				h, err := NewBackend(b)
				assert.NoError(t, err)
				check(t, h, []byte(tv.input), tv.hash)
			}
		})
	}

	t.Run("Sum256", func(t *testing.T) {
		for _, tv := range vectors {
			digest := Sum256([]byte(tv.input))
			assert.Equal(t, tv.hash, hex.EncodeToString(digest[:]))
		}
	})
}

func TestAPI(t *testing.T) {
	const data = "some data"
	const result = "1307990e6ba5ca145eb35e99182a9bec46531bc54ddf656a602c780fa0240dee"

	for _, b := range availableBackends() {
		t.Run(b.String(), func(t *testing.T) {
			h, err := NewBackend(b)
			assert.NoError(t, err)
			assert.Equal(t, h.Backend(), b)

			n, err := h.Write([]byte(data))
			assert.NoError(t, err)
			assert.Equal(t, n, len(data))

			t.Run("Size", func(t *testing.T) {
				assert.Equal(t, h.Size(), 32)
				assert.Equal(t, h.BlockSize(), 64)
			})

			// check that we can sum multiple times, and that it does an append
			t.Run("Sum", func(t *testing.T) {
				assert.Equal(t, hex.EncodeToString(h.Sum(nil)), result)
				for i := 0; i < 64; i++ {
					assert.Equal(t, hex.EncodeToString(h.Sum(make([]byte, i)[:0])), result)
				}
				assert.Equal(t, hex.EncodeToString(h.Sum(make([]byte, 1))), "00"+result)
			})

			// ensure that reset works by issuing the write again
			t.Run("Reset", func(t *testing.T) {
				_, _ = h.Write([]byte("some fake wrong data"))
				h.Reset()
				n, err := h.Write([]byte(data))
				assert.NoError(t, err)
				assert.Equal(t, n, len(data))
				assert.Equal(t, hex.EncodeToString(h.Sum(nil)), result)
			})

			t.Run("Finalize", func(t *testing.T) {
				h.Reset()
				_, _ = h.Write([]byte(data))
				digest := h.Finalize()
				assert.Equal(t, hex.EncodeToString(digest[:]), result)

				assert.That(t, panics(func() { _, _ = h.Write([]byte("x")) }))
				assert.That(t, panics(func() { _, _ = h.ReadFrom(strings.NewReader("x")) }))
				assert.That(t, panics(func() { h.Finalize() }))
				assert.That(t, panics(func() { h.Sum(nil) }))

				h.Reset()
				_, _ = h.Write([]byte(data))
				digest = h.Finalize()
				assert.Equal(t, hex.EncodeToString(digest[:]), result)
			})
		})
	}
}

func TestAPI_Incremental(t *testing.T) {
	// every split point of a message spanning a few blocks must give the
	// same digest as writing it at once
	input := make([]byte, 3*BlockSize+7)
	for i := range input {
		input[i] = byte(i+1) % 251
	}
	want := Sum256(input)

	for i := 0; i <= len(input); i++ {
		for j := i; j <= len(input); j += 13 {
			h := New()
			_, _ = h.Write(input[:i])
			_, _ = h.Write(input[i:j])
			_, _ = h.Write(input[j:])
			assert.Equal(t, h.Finalize(), want)
		}
	}
}

func TestAPI_ReadFrom(t *testing.T) {
	input := make([]byte, 3*readBufferSize+BlockSize/2)
	for i := range input {
		input[i] = byte(i+3) % 253
	}

	readers := map[string]func(io.Reader) io.Reader{
		"Plain":    func(r io.Reader) io.Reader { return r },
		"OneByte":  iotest.OneByteReader,
		"Half":     iotest.HalfReader,
		"DataErr":  iotest.DataErrReader,
		"NoReadTo": func(r io.Reader) io.Reader { return struct{ io.Reader }{r} },
	}

	for _, b := range availableBackends() {
		for name, wrap := range readers {
			t.Run(b.String()+"/"+name, func(t *testing.T) {
				for _, size := range []int{0, 1, 55, 56, 63, 64, 65, readBufferSize, len(input)} {
					h1, err := NewBackend(b)
					assert.NoError(t, err)
					_, _ = h1.Write(input[:size])

					h2, err := NewBackend(b)
					assert.NoError(t, err)
					n, err := h2.ReadFrom(wrap(bytes.NewReader(input[:size])))
					assert.NoError(t, err)
					assert.Equal(t, n, int64(size))

					assert.Equal(t, h1.Finalize(), h2.Finalize())
				}
			})
		}
	}
}

func TestAPI_ReadFromFile(t *testing.T) {
	input := bytes.Repeat([]byte("0123456789abcdef"), 10000)
	path := filepath.Join(t.TempDir(), "input")
	assert.NoError(t, os.WriteFile(path, input, 0o644))

	for _, b := range availableBackends() {
		fh, err := os.Open(path)
		assert.NoError(t, err)

		got, err := SumReader(b, fh)
		assert.NoError(t, err)
		assert.NoError(t, fh.Close())

		assert.Equal(t, got, Sum256(input))
	}
}

func TestAPI_ReadFromError(t *testing.T) {
	boom := errors.New("boom")

	h := New()
	n, err := h.ReadFrom(io.MultiReader(strings.NewReader("abc"), iotest.ErrReader(boom)))
	assert.That(t, errors.Is(err, boom))
	assert.Equal(t, n, int64(3))

	digest, err := SumReader(Portable, iotest.ErrReader(boom))
	assert.That(t, errors.Is(err, boom))
	assert.Equal(t, digest, [Size]byte{})
}

func TestAPI_Backends(t *testing.T) {
	for _, b := range Backends() {
		parsed, err := ParseBackend(b.String())
		assert.NoError(t, err)
		assert.Equal(t, parsed, b)
	}

	_, err := ParseBackend("rust")
	assert.That(t, errors.Is(err, ErrUnknownBackend))

	_, err = ParseBackend("")
	assert.That(t, errors.Is(err, ErrUnknownBackend))

	_, err = NewBackend(Backend(7))
	assert.That(t, errors.Is(err, ErrUnknownBackend))
	assert.Equal(t, Backend(7).String(), "Backend(7)")
	assert.That(t, !Backend(7).Available())

	assert.That(t, Portable.Available())
	assert.NoError(t, Portable.Check())

	if !Accelerated.Available() {
		_, err := NewBackend(Accelerated)
		assert.That(t, errors.Is(err, ErrNativeUnavailable))
		assert.That(t, errors.Is(Accelerated.Check(), ErrNativeUnavailable))
	}
}

func panics(fn func()) (ok bool) {
	defer func() { ok = recover() != nil }()
	fn()
	return false
}
