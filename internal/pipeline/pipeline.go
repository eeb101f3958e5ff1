// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"nmsa-core/engine"
)

// Config controls the alignment pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)

	// Tracker optionally supplies a fill progress sink per job label.
	Tracker func(label string) engine.Progress
}

// Result is one finished job.
type Result struct {
	Job       Job
	Alignment engine.Result
	Elapsed   time.Duration
}

type outcome struct {
	idx int
	res Result
	err error
}

// ForEachResult aligns every job on cfg.Threads workers and calls visit
// with results in job order. The first failure in job order (alignment or
// visit) stops the run and is returned, wrapped with the job label.
// Context cancellation wins over other errors.
func ForEachResult(
	ctx context.Context,
	cfg Config,
	jobs []Job,
	al Aligner,
	visit func(Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	work := make(chan int, cfg.Threads*2)
	results := make(chan outcome, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-work:
					if !ok {
						return
					}
					o := run(ctx, cfg, jobs[i], al)
					o.idx = i
					select {
					case results <- o:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: reorder by job index.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]outcome)
		next := 0
		for o := range results {
			pending[o.idx] = o
			for {
				cur, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if cerr != nil {
					continue
				}
				err := cur.err
				if err == nil {
					err = visit(cur.res)
				}
				if err != nil {
					cerr = errors.Wrap(err, cur.res.Job.Label)
					cancel()
				}
			}
		}
	}()

	// Feed work
feed:
	for i := range jobs {
		select {
		case <-ctx.Done():
			break feed
		case work <- i:
		}
	}

	close(work)
	wg.Wait()
	close(results)
	cwg.Wait()

	if cerr == nil && ctx.Err() != nil {
		return ctx.Err()
	}
	if cerr != nil && errors.Is(cerr, context.Canceled) {
		return context.Canceled
	}
	return cerr
}

func run(ctx context.Context, cfg Config, j Job, al Aligner) outcome {
	if cfg.Tracker != nil {
		if pa, ok := al.(progressAligner); ok {
			if tr := cfg.Tracker(j.Label); tr != nil {
				al = pa.WithProgress(tr)
			}
		}
	}
	start := time.Now()
	res, err := al.AlignContext(ctx, j.Seqs)
	return outcome{
		res: Result{Job: j, Alignment: res, Elapsed: time.Since(start)},
		err: err,
	}
}
