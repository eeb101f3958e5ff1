// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"nmsa/internal/cliutil"
	"nmsa/internal/output"
	"nmsa/internal/params"
)

// DefaultMaxCells bounds the DP table unless --max-cells says otherwise.
const DefaultMaxCells = 50_000_000

// ErrExamples is returned by ParseArgs after --examples; callers print
// the quickstart and exit 0.
var ErrExamples = errors.New("examples requested")

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles   []string
	ParamsFile string
	PerFile    bool

	// Scoring (resolved: defaults < --params < explicit flags)
	Scoring params.Scoring
	IUPAC   bool

	// Layout
	GapChar  string
	MaxCells int

	// Performance
	Threads int

	// Output
	Output        string
	Progress      bool
	EmptyExitCode int

	// Misc
	Quiet    bool
	Verbose  bool
	Version  bool
	Examples bool
}

// Gap returns the gap placeholder byte.
func (o Options) Gap() byte { return o.GapChar[0] }

// sliceValue appends each value to a *[]string (for --sequences/-s)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// scoringFlags holds raw flag values before precedence is applied.
type scoringFlags struct {
	match, mismatch, indel, gapGap float64
	local                          bool
}

func register(fs *flag.FlagSet, o *Options, sf *scoringFlags, help *bool) {
	d := params.Defaults

	// Input
	seqVal := &sliceValue{dst: &o.SeqFiles}
	fs.Var(seqVal, "sequences", "FASTA file(s) (repeatable) or '-'")
	fs.Var(seqVal, "s", "alias of --sequences")
	fs.StringVar(&o.ParamsFile, "params", "", "scoring parameter file (key value per line)")
	fs.BoolVar(&o.PerFile, "per-file", false, "align each FASTA file separately [false]")

	// Scoring
	fs.Float64Var(&sf.match, "match", d.Match, "score for identical symbols")
	fs.Float64Var(&sf.mismatch, "mismatch", d.Mismatch, "score for differing symbols")
	fs.Float64Var(&sf.indel, "indel", d.Indel, "score for a symbol against a gap")
	fs.Float64Var(&sf.gapGap, "gap-gap", d.GapGap, "score for a gap against a gap")
	fs.BoolVar(&sf.local, "local", !d.Global, "local alignment instead of global")
	fs.BoolVar(&o.IUPAC, "iupac", false, "score compatible IUPAC codes as matches [false]")

	// Layout
	fs.StringVar(&o.GapChar, "gap-char", "-", "gap placeholder in aligned rows")
	fs.IntVar(&o.MaxCells, "max-cells", DefaultMaxCells, "refuse tables larger than N cells (0=unlimited)")

	// Performance
	fs.IntVar(&o.Threads, "threads", 0, "worker threads for --per-file (0=all CPUs) [0]")
	fs.IntVar(&o.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&o.Output, "output", output.FormatText, "output: text | json | jsonl | fasta")
	fs.StringVar(&o.Output, "o", output.FormatText, "alias of --output")
	fs.BoolVar(&o.Progress, "progress", false, "show a fill progress bar on stderr [false]")
	fs.IntVar(&o.EmptyExitCode, "empty-exit-code", 1, "exit code when a local alignment is empty")

	// Misc
	fs.BoolVar(&o.Quiet, "quiet", false, "only log warnings and errors [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Verbose, "verbose", false, "debug logging [false]")
	fs.BoolVar(&o.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&o.Examples, "examples", false, "print quickstart examples and exit [false]")
	fs.BoolVar(help, "h", false, "show this help message")
	fs.BoolVar(help, "help", false, "show this help message")
}

// Parse is the top-level call for CLI parsing.
func Parse(argv []string) (Options, error) { return ParseArgs(NewFlagSet("nmsa"), argv) }

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments are FASTA paths or globs.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var (
		opt  Options
		sf   scoringFlags
		help bool
	)
	register(fs, &opt, &sf, &help)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Examples {
		return opt, ErrExamples
	}
	if opt.Version {
		return opt, nil
	}
	posArgs = append(posArgs, fs.Args()...)
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return opt, err
		}
		opt.SeqFiles = append(opt.SeqFiles, exp...)
	}

	sc := params.Defaults
	if opt.ParamsFile != "" {
		var err error
		if sc, err = params.Load(opt.ParamsFile, sc); err != nil {
			return opt, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "match":
			sc.Match = sf.match
		case "mismatch":
			sc.Mismatch = sf.mismatch
		case "indel":
			sc.Indel = sf.indel
		case "gap-gap":
			sc.GapGap = sf.gapGap
		case "local":
			sc.Global = !sf.local
		}
	})
	opt.Scoring = sc

	return opt, Validate(&opt)
}

// Validate applies CLI invariants.
func Validate(o *Options) error {
	if len(o.SeqFiles) == 0 {
		return errors.New("at least one sequence file is required")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.MaxCells < 0 {
		return errors.New("--max-cells must be ≥ 0")
	}
	switch o.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL, output.FormatFASTA:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if len(o.GapChar) != 1 {
		return fmt.Errorf("--gap-char must be a single character, got %q", o.GapChar)
	}
	if c := o.GapChar[0]; c <= ' ' || c > '~' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '*' {
		return fmt.Errorf("--gap-char %q must be a printable non-letter", o.GapChar)
	}
	if o.EmptyExitCode < 0 || o.EmptyExitCode > 255 {
		return errors.New("--empty-exit-code must be between 0 and 255")
	}
	return nil
}
