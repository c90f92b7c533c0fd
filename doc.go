// Package sha256 implements the SHA-256 hash function as a streaming
// hasher whose 64-round compression function is supplied by a selectable
// backend.
//
// Two backends exist. Portable runs the rounds in Go and works everywhere.
// Accelerated runs them in amd64 assembly and is only available when
// Backend.Available reports true; asking for it anywhere else is an error
// rather than a silent fallback. Both produce identical digests.
//
// The Hasher only keeps a single partially filled block between writes, so
// hashing a file of any size uses constant memory:
//
//	h, err := sha256.NewBackend(sha256.Accelerated)
//	if err != nil {
//		return err
//	}
//	if _, err := h.ReadFrom(f); err != nil {
//		return err
//	}
//	digest := h.Finalize()
//
// The message length is tracked in bytes as a uint64 and encoded in the
// padding as bits mod 2^64, which is what FIPS 180-4 specifies. Messages of
// 2^61 bytes or more are not rejected; their length field wraps.
package sha256
