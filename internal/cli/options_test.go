// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"nmsa/internal/output"
	"nmsa/internal/params"
)

func newFS() *flag.FlagSet {
	fs := NewFlagSet("test")
	fs.SetOutput(io.Discard)
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "in.fa")
	if o.Scoring != params.Defaults {
		t.Errorf("scoring = %+v, want %+v", o.Scoring, params.Defaults)
	}
	if o.Output != output.FormatText || o.Gap() != '-' || o.MaxCells != DefaultMaxCells || o.EmptyExitCode != 1 {
		t.Errorf("bad defaults %+v", o)
	}
	if len(o.SeqFiles) != 1 || o.SeqFiles[0] != "in.fa" {
		t.Errorf("positional not collected: %v", o.SeqFiles)
	}
}

func TestRepeatableSequencesAndAliases(t *testing.T) {
	o := mustParse(t, "-s", "a.fa", "--sequences", "b.fa", "c.fa", "-o", "json", "-t", "3", "-q")
	if len(o.SeqFiles) != 3 || o.Output != output.FormatJSON || o.Threads != 3 || !o.Quiet {
		t.Errorf("bad parse %+v", o)
	}
}

func TestScoringFlags(t *testing.T) {
	o := mustParse(t, "--match", "2", "--mismatch", "-1", "--indel", "-3", "--gap-gap", "0.5", "--local", "x.fa")
	want := params.Scoring{Match: 2, Mismatch: -1, Indel: -3, GapGap: 0.5, Global: false}
	if o.Scoring != want {
		t.Errorf("scoring = %+v, want %+v", o.Scoring, want)
	}
}

func TestParamsFilePrecedence(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "p.txt")
	if err := os.WriteFile(fn, []byte("match 9\nindel -9\nglobal false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	o := mustParse(t, "--params", fn, "--indel", "-1", "x.fa")
	if o.Scoring.Match != 9 {
		t.Errorf("file value lost: match=%g", o.Scoring.Match)
	}
	if o.Scoring.Indel != -1 {
		t.Errorf("explicit flag must win over file: indel=%g", o.Scoring.Indel)
	}
	if o.Scoring.Global {
		t.Errorf("global=false from file not applied")
	}
	if o.Scoring.Mismatch != params.Defaults.Mismatch {
		t.Errorf("unset key must keep default: mismatch=%g", o.Scoring.Mismatch)
	}

	o = mustParse(t, "--params", fn, "--local=false", "x.fa")
	if !o.Scoring.Global {
		t.Errorf("explicit --local=false must restore global")
	}
}

func TestHelpVersionExamples(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h: %v", err)
	}
	if _, err := ParseArgs(newFS(), []string{"--help"}); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("--help: %v", err)
	}
	if _, err := ParseArgs(newFS(), []string{"--examples"}); !errors.Is(err, ErrExamples) {
		t.Errorf("--examples: %v", err)
	}
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Errorf("--version without inputs must parse: %v", err)
	}
}

func TestValidationErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"--threads", "-1", "x.fa"},
		{"--max-cells", "-5", "x.fa"},
		{"--output", "xml", "x.fa"},
		{"--gap-char", "--", "x.fa"},
		{"--gap-char", "N", "x.fa"},
		{"--gap-char", " ", "x.fa"},
		{"--empty-exit-code", "300", "x.fa"},
		{"--params", "/nonexistent/params.txt", "x.fa"},
		{"--bogus", "x.fa"},
	}
	for _, args := range cases {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}
