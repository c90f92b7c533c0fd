package pipeline

import (
	"context"
	"encoding/hex"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"github.com/kmolski/sha256"
	"github.com/kmolski/sha256/internal/clock"
)

// Pool hashes files with a fixed backend on at most a fixed number of
// goroutines. A Pool holds no per-run state and may be used for several
// concurrent runs.
type Pool struct {
	workers int
	backend sha256.Backend
	logger  *slog.Logger
	clock   clock.Clock
}

// New returns a Pool configured by opts. Configuration errors, including an
// accelerated backend that cannot run on this machine, are reported here
// rather than per job.
func New(opts ...Option) (*Pool, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Pool{
		workers: cfg.workers,
		backend: cfg.backend,
		logger:  cfg.logger,
		clock:   cfg.clock,
	}, nil
}

// Workers returns the maximum number of files hashed at once.
func (p *Pool) Workers() int { return p.workers }

// Backend returns the backend files are hashed with.
func (p *Pool) Backend() sha256.Backend { return p.backend }

// Run hashes every job and sends one Result per job on the returned channel,
// which is closed after the last one. The channel has room for every result,
// so workers never wait on the consumer.
//
// Once ctx is done, jobs that have not started yet are reported with the
// context's error; jobs already being hashed run to completion.
func (p *Pool) Run(ctx context.Context, jobs []Job) <-chan Result {
	results := make(chan Result, len(jobs))
	if len(jobs) == 0 {
		close(results)
		return results
	}

	queue := make(chan Job, len(jobs))
	for _, job := range jobs {
		queue <- job
	}
	close(queue)

	workers := min(p.workers, len(jobs))
	p.logger.Debug("starting run", "jobs", len(jobs), "workers", workers, "backend", p.backend)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				results <- p.hash(ctx, job)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

func (p *Pool) hash(ctx context.Context, job Job) Result {
	res := Result{Index: job.Index, Path: job.Path}

	if err := ctx.Err(); err != nil {
		p.logger.Debug("skipping job", "index", job.Index, "path", job.Path, "error", err)
		res.Err = err
		return res
	}

	fh, err := os.Open(job.Path)
	if err != nil {
		res.Err = p.ioError(job, "open", err)
		return res
	}
	defer fh.Close()

	start := p.clock.Now()
	digest, err := sha256.SumReader(p.backend, fh)
	if err != nil {
		res.Err = p.ioError(job, "read", err)
		return res
	}
	res.Elapsed = p.clock.Now().Sub(start)
	res.Digest = hex.EncodeToString(digest[:])

	p.logger.Debug("hashed file", "index", job.Index, "path", job.Path, "elapsed", res.Elapsed)
	return res
}

func (p *Pool) ioError(job Job, op string, err error) *IOError {
	// os already names the path, IOError does too
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	p.logger.Warn("hashing failed", "index", job.Index, "path", job.Path, "op", op, "error", err)
	return &IOError{Index: job.Index, Path: job.Path, Op: op, Err: err}
}
