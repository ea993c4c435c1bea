// Package batch runs the tagging pipeline over a set of music files.
// Every file is an independent unit of work: files fan out over a
// bounded worker group, and the only state they share is the read-only
// configuration and the serialized console output.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/etiq/internal/config"
	"github.com/llehouerou/etiq/internal/console"
	"github.com/llehouerou/etiq/internal/errmsg"
)

// Summary is what a run did: how many files went through, how many were
// skipped over errors, and how long the whole batch took.
type Summary struct {
	Processed int
	Skipped   int
	Elapsed   time.Duration
}

// Run processes every file through the pipeline and returns the batch
// summary. With stop-on-error the first failure cancels the remaining
// work and is returned; otherwise failures are reported, counted as
// skipped, and the batch continues.
func Run(files []string, cfg *config.Config) (Summary, error) {
	start := time.Now()
	out := newOutput(!cfg.DetailOff)

	// A progress bar replaces the per-file detail lines; during a dry
	// run the lines are the whole point, so the bar stays off.
	var bar *pb.ProgressBar
	if cfg.DetailOff && !cfg.DryRun {
		bar = pb.StartNew(len(files))
	}

	workers := runtime.NumCPU()
	if cfg.SingleThread {
		workers = 1
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	var processed, skipped atomic.Int64
	for _, path := range files {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			defer func() {
				if bar != nil {
					bar.Increment()
				}
			}()

			if err := processFile(path, cfg, out); err != nil {
				if cfg.StopOnError {
					return fmt.Errorf("%s: %w", path, err)
				}
				console.Error.Println(errmsg.FormatWith(errmsg.OpProcessFile, path, err))
				skipped.Add(1)
				return nil
			}
			processed.Add(1)
			return nil
		})
	}

	err := g.Wait()
	if bar != nil {
		bar.Finish()
	}

	return Summary{
		Processed: int(processed.Load()),
		Skipped:   int(skipped.Load()),
		Elapsed:   time.Since(start),
	}, err
}
