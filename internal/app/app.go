// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"nmsa-core/alphabet"
	"nmsa-core/engine"
	"nmsa/internal/appcore"
	"nmsa/internal/cli"
	"nmsa/internal/cmdutil"
	"nmsa/internal/output"
	"nmsa/internal/pipeline"
	"nmsa/internal/pretty"
	"nmsa/internal/version"
	"nmsa/internal/writers"
)

const name = "nmsa"

// filler pads local-mode rows outside the aligned window.
const filler = ' '

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	flush := func(ok int) int {
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return ok
	}

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flush(0)
		case errors.Is(err, cli.ErrExamples):
			cli.PrintExamples(outw, name)
			return flush(0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(0)
	}

	logger := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)

	jobs, err := pipeline.LoadJobs(parent, opts.SeqFiles, opts.PerFile, opts.Gap())
	if err != nil {
		if parent.Err() != nil {
			return 130
		}
		logger.Error(err)
		return 2
	}

	sub := engine.MatchMismatch(opts.Scoring.Match, opts.Scoring.Mismatch)
	if opts.IUPAC {
		sub = alphabet.IUPAC(opts.Scoring.Match, opts.Scoring.Mismatch)
	}
	mode := engine.Global
	if !opts.Scoring.Global {
		mode = engine.Local
	}
	eng := engine.New(engine.Config{
		Indel:    opts.Scoring.Indel,
		GapGap:   opts.Scoring.GapGap,
		Sub:      sub,
		Mode:     mode,
		Gap:      opts.Gap(),
		Filler:   filler,
		MaxCells: opts.MaxCells,
	})
	logger.Debugf("scoring: match=%g mismatch=%g indel=%g gapgap=%g mode=%s iupac=%t",
		opts.Scoring.Match, opts.Scoring.Mismatch, opts.Scoring.Indel, opts.Scoring.GapGap, mode, opts.IUPAC)

	coreOpts := appcore.Options{
		Threads:       opts.Threads,
		Progress:      opts.Progress,
		EmptyExitCode: opts.EmptyExitCode,
	}
	writer := appcore.NewAlignmentWriterFactory(opts.Output, writers.Options{
		Gap:    opts.Gap(),
		Filler: filler,
		Pretty: pretty.DefaultOptions,
	})
	visit := func(r pipeline.Result) (bool, output.Alignment, error) {
		a := output.Alignment{Source: r.Job.Label, IDs: r.Job.IDs, Result: r.Alignment}
		l := logger.WithField("job", r.Job.Label)
		if a.Mode == engine.Local && a.Empty() {
			l.Warn("no positive-scoring local alignment")
		} else {
			l.Infof("score %g over %d columns", a.Score, len(a.Aligned[0]))
		}
		l.Debugf("aligned in %s", r.Elapsed)
		return true, a, nil
	}
	return appcore.Run(parent, stdout, stderr, logger, coreOpts, jobs, eng, visit, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
