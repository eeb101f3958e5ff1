// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"
	"runtime"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"

	"nmsa-core/engine"
	"nmsa/internal/cmdutil"
	"nmsa/internal/output"
	"nmsa/internal/pipeline"
	"nmsa/internal/progress"
	"nmsa/internal/writers"
)

type Options struct {
	Threads       int
	Progress      bool
	EmptyExitCode int
}

type VisitorFunc func(pipeline.Result) (keep bool, out output.Alignment, err error)

type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- output.Alignment, <-chan error)
}

// Run aligns every job, streams results through the writer, and maps the
// outcome to an exit code: 0 ok, EmptyExitCode when a local alignment came
// back empty, 2 invalid input, 3 I/O or internal failure, 130 canceled.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	logger *log.Logger,
	o Options,
	jobs []pipeline.Job,
	eng *engine.Engine,
	visit VisitorFunc,
	wf WriterFactory,
) int {
	outw := bufio.NewWriter(stdout)

	for _, j := range jobs {
		for _, id := range j.Skipped {
			logger.Warnf("%s: skipping empty record %q", j.Label, id)
		}
		if err := eng.Validate(j.Seqs); err != nil {
			logger.Errorf("%s: %v", j.Label, err)
			return 2
		}
		dims := make([]int, len(j.Seqs))
		for i, s := range j.Seqs {
			dims[i] = len(s) + 1
		}
		cells, _ := engine.CellCount(dims)
		logger.WithField("job", j.Label).Infof("aligning %d sequences, %s cells", len(j.Seqs), humanize.Comma(int64(cells)))
		logger.WithField("job", j.Label).Debugf("table dims %v, %d directions per cell", dims, len(engine.Directions(len(dims))))
	}

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	if thr > len(jobs) {
		thr = len(jobs)
	}

	bars := progress.New(stderr, o.Progress)
	cfg := pipeline.Config{Threads: thr}
	if o.Progress {
		cfg.Tracker = bars.Tracker
	}

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	empty := 0
	_, perr := cmdutil.RunStream[output.Alignment](
		ctx,
		cfg,
		jobs,
		eng,
		func(r pipeline.Result) (bool, output.Alignment, error) {
			keep, a, err := visit(r)
			if keep && a.Mode == engine.Local && a.Empty() {
				empty++
			}
			return keep, a, err
		},
		func(a output.Alignment) error {
			select {
			case inCh <- a:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)
	bars.Wait()

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		logger.Error(werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		logger.Error(e)
		return 3
	}

	if perr != nil {
		switch {
		case errors.Is(perr, context.Canceled):
			return 130
		case errors.Is(perr, engine.ErrInvalidInput):
			logger.Error(perr)
			return 2
		}
		logger.Error(perr)
		return 3
	}
	if empty > 0 {
		return o.EmptyExitCode
	}
	return 0
}
