package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/kmolski/sha256"
	"github.com/kmolski/sha256/internal/config"
	"github.com/kmolski/sha256/internal/version"
	"github.com/kmolski/sha256/pipeline"
)

// envDebug enables debug logging when set to a non-empty value.
const envDebug = "SHA256SUM_DEBUG"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

// exitError carries the process exit status for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }

// usageError reports a problem with the command line or config file.
func usageError(err error) error {
	return &exitError{code: 2, err: err}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var (
		backendName string
		workers     int
		output      string
		configPath  string
		verbose     bool
		showVersion bool
		help        bool
	)

	flagSet := pflag.NewFlagSet("sha256sum", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&backendName, "backend", sha256.Portable.String(), "compression backend: portable or accelerated")
	flagSet.IntVarP(&workers, "workers", "j", 0, "number of files hashed at once (default: one per CPU)")
	flagSet.StringVarP(&output, "output", "o", "", "write results to this file instead of stdout")
	flagSet.StringVar(&configPath, "config", "", "path to a YAML config file (default: $"+config.EnvPath+")")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flagSet.BoolVar(&showVersion, "version", false, "print version information")
	flagSet.BoolVarP(&help, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		return usageError(err)
	}

	if help {
		printUsage(stdout, flagSet)
		return nil
	}
	if showVersion {
		fmt.Fprintf(stdout, "sha256sum %s\n", version.Full())
		return nil
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return usageError(err)
	}
	if flagSet.Changed("backend") {
		cfg.Backend = backendName
	}
	if flagSet.Changed("workers") {
		if workers <= 0 {
			return usageError(fmt.Errorf("--workers: %w: got %d", pipeline.ErrInvalidWorkers, workers))
		}
		cfg.Workers = workers
	}
	if flagSet.Changed("output") {
		cfg.Output = output
	}

	backend, err := sha256.ParseBackend(cfg.Backend)
	if err != nil {
		return usageError(err)
	}

	paths := flagSet.Args()
	if len(paths) == 0 {
		return usageError(errors.New("no files given"))
	}

	logLevel := slog.LevelInfo
	if verbose || os.Getenv(envDebug) != "" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	opts := []pipeline.Option{
		pipeline.WithBackend(backend),
		pipeline.WithLogger(logger),
	}
	if cfg.Workers > 0 {
		opts = append(opts, pipeline.WithWorkers(cfg.Workers))
	}
	pool, err := pipeline.New(opts...)
	if err != nil {
		return usageError(err)
	}

	jobs := make([]pipeline.Job, len(paths))
	for i, path := range paths {
		jobs[i] = pipeline.Job{Path: path, Index: i}
	}

	logger.Info("hashing files", "files", len(jobs), "backend", backend, "workers", pool.Workers())
	results := pipeline.Collect(pool.Run(ctx, jobs))

	if err := writeResults(cfg.Output, stdout, results); err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be hashed", failed, len(results))
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

// writeResults writes the report to the named file, or to stdout when name
// is empty.
func writeResults(name string, stdout io.Writer, results []pipeline.Result) error {
	if name == "" {
		return writeReport(stdout, results)
	}

	fh, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := writeReport(fh, results); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `sha256sum - hash files in parallel with SHA-256

USAGE
    sha256sum [flags] <file>...

FLAGS
%s
CONFIG
    A YAML file given by --config or $%s may set backend, workers
    and output. Flags override values from the file.

EXAMPLES
    # Hash every log file with the assembly backend on 4 workers
    sha256sum --backend accelerated -j 4 /var/log/*.log

    # Write the results to a file
    sha256sum -o results.txt *.iso
`, flagSet.FlagUsages(), config.EnvPath)
}
