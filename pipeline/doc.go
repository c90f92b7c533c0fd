// Package pipeline hashes many files concurrently on a bounded pool of
// workers.
//
// Every Job handed to Run produces exactly one Result. A file that cannot be
// opened or read fails only its own Result with an *IOError; the other jobs
// are unaffected. Results arrive in completion order and carry the Index of
// their Job so callers can restore submission order, for example with
// Collect.
//
//	pool, err := pipeline.New(pipeline.WithWorkers(4))
//	if err != nil {
//		return err
//	}
//	for _, res := range pipeline.Collect(pool.Run(ctx, jobs)) {
//		fmt.Println(res.Digest, res.Path)
//	}
package pipeline
