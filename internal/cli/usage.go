// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"nmsa/internal/version"
)

// NewFlagSet returns a ContinueOnError FlagSet with the grouped help text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – N-dimensional multiple sequence alignment\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s [flags] FASTA [FASTA...]\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --sequences file        FASTA file(s) (repeatable) or '-' for STDIN")
		fmt.Fprintln(out, "      --params file           Scoring file: match, mismatch, indel, gapgap, global")
		fmt.Fprintf(out, "      --per-file              Align each FASTA file as its own set [%s]\n", def("per-file"))

		fmt.Fprintln(out, "\nScoring:")
		fmt.Fprintf(out, "      --match float           Identical symbols [%s]\n", def("match"))
		fmt.Fprintf(out, "      --mismatch float        Differing symbols [%s]\n", def("mismatch"))
		fmt.Fprintf(out, "      --indel float           Symbol against gap [%s]\n", def("indel"))
		fmt.Fprintf(out, "      --gap-gap float         Gap against gap [%s]\n", def("gap-gap"))
		fmt.Fprintf(out, "      --local                 Local instead of global alignment [%s]\n", def("local"))
		fmt.Fprintf(out, "      --iupac                 Compatible IUPAC codes score as match [%s]\n", def("iupac"))

		fmt.Fprintln(out, "\nLayout & limits:")
		fmt.Fprintf(out, "      --gap-char char         Gap placeholder [%s]\n", def("gap-char"))
		fmt.Fprintf(out, "      --max-cells int         Largest DP table allowed (0=unlimited) [%s]\n", def("max-cells"))
		fmt.Fprintf(out, "  -t, --threads int           Worker threads for --per-file (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl | fasta [%s]\n", def("output"))
		fmt.Fprintf(out, "      --progress              Fill progress bar on STDERR [%s]\n", def("progress"))
		fmt.Fprintf(out, "      --empty-exit-code int   Exit code when a local alignment is empty [%s]\n", def("empty-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Only log warnings and errors [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Debug logging [%s]\n", def("verbose"))
		fmt.Fprintln(out, "      --examples              Print quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}
