// internal/cli/examples.go
package cli

import (
	"fmt"
	"io"
)

// PrintExamples prints a short quickstart followed by a tip to discover full help.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s: quickstart\n\n", name)
	_, _ = fmt.Fprintf(out, "  # global alignment of every record in one file\n  %s seqs.fa\n\n", name)
	_, _ = fmt.Fprintf(out, "  # local alignment with custom scores\n  %s --local --match 2 --mismatch -1 --indel -2 seqs.fa\n\n", name)
	_, _ = fmt.Fprintf(out, "  # scoring from a file, gapped FASTA out\n  %s --params scores.txt -o fasta seqs.fa > aln.fa\n\n", name)
	_, _ = fmt.Fprintf(out, "  # one alignment per file on 4 threads, JSONL out\n  %s --per-file -t 4 -o jsonl 'families/*.fa.gz'\n", name)
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
