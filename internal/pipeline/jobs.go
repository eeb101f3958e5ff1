// internal/pipeline/jobs.go
package pipeline

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"nmsa-core/alphabet"
	"nmsa-core/fasta"
)

// Job is one alignment: a set of sequences aligned together.
type Job struct {
	Index int
	Label string // source file, or the joined file list for a pooled job
	IDs   []string
	Seqs  []string

	Skipped []string // IDs of empty records left out
}

// LoadJobs reads seqFiles into jobs: one per file when perFile is set,
// otherwise a single job pooling every record. Sequences are normalized
// and validated against gap; empty records are skipped and listed.
func LoadJobs(ctx context.Context, seqFiles []string, perFile bool, gap byte) ([]Job, error) {
	var jobs []Job
	pooled := Job{Label: strings.Join(seqFiles, ",")}
	for _, fn := range seqFiles {
		recs, err := fasta.ReadFile(ctx, fn)
		if err != nil {
			return nil, err
		}
		j := &pooled
		if perFile {
			jobs = append(jobs, Job{Index: len(jobs), Label: fn})
			j = &jobs[len(jobs)-1]
		}
		for _, r := range recs {
			if len(r.Seq) == 0 {
				j.Skipped = append(j.Skipped, r.ID)
				continue
			}
			s, err := alphabet.Validate(string(r.Seq), gap)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: record %s", fn, r.ID)
			}
			j.IDs = append(j.IDs, r.ID)
			j.Seqs = append(j.Seqs, s)
		}
	}
	if !perFile {
		jobs = append(jobs, pooled)
	}
	return jobs, nil
}
