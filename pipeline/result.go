package pipeline

import (
	"fmt"
	"sort"
	"time"
)

// Job names one file to hash. Index identifies the Job among those passed to
// a single Run and is copied unchanged into its Result.
type Job struct {
	Path  string
	Index int
}

// Result is the outcome of one Job. Exactly one of Digest and Err is set.
type Result struct {
	Index int
	Path  string

	// Digest is the lowercase hex encoding of the file's SHA-256 digest.
	Digest string

	// Elapsed is the time spent hashing the open file.
	Elapsed time.Duration

	Err error
}

// IOError reports that a file could not be opened or read.
type IOError struct {
	Index int
	Path  string
	Op    string // "open" or "read"
	Err   error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Collect drains results and returns them ordered by Index.
func Collect(results <-chan Result) []Result {
	var out []Result
	for res := range results {
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}
