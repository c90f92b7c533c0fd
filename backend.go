package sha256

import (
	"fmt"

	"github.com/kmolski/sha256/accel"
	"github.com/kmolski/sha256/ref"
)

// Backend selects the implementation of the compression rounds. It is fixed
// when a Hasher is created.
type Backend uint8

const (
	// Portable runs the rounds in pure Go.
	Portable Backend = iota

	// Accelerated runs the rounds in amd64 assembly.
	Accelerated
)

type roundsFunc = func(state *[8]uint32, w *[64]uint32)

var backendNames = [...]string{
	Portable:    "portable",
	Accelerated: "accelerated",
}

// Backends returns every backend in a stable order.
func Backends() []Backend {
	return []Backend{Portable, Accelerated}
}

// ParseBackend returns the backend with the given name.
func ParseBackend(name string) (Backend, error) {
	for b, n := range backendNames {
		if n == name {
			return Backend(b), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

func (b Backend) String() string {
	if int(b) < len(backendNames) {
		return backendNames[b]
	}
	return fmt.Sprintf("Backend(%d)", uint8(b))
}

// Available reports whether the backend can run on this machine.
func (b Backend) Available() bool {
	switch b {
	case Portable:
		return true
	case Accelerated:
		return accel.Available
	default:
		return false
	}
}

func (b Backend) rounds() (roundsFunc, error) {
	switch b {
	case Portable:
		return ref.Rounds, nil
	case Accelerated:
		if !accel.Available {
			return nil, ErrNativeUnavailable
		}
		return accel.Rounds, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownBackend, b)
	}
}

// Check returns an error if the backend cannot be used to create a Hasher.
func (b Backend) Check() error {
	_, err := b.rounds()
	return err
}
