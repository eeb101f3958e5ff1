package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"nmsa-core/engine"
)

// fakeAligner echoes the joined input and sleeps longer for earlier jobs so
// completion order differs from job order.
type fakeAligner struct {
	calls atomic.Int32
	fail  string
}

func (f *fakeAligner) AlignContext(ctx context.Context, seqs []string) (engine.Result, error) {
	f.calls.Add(1)
	joined := strings.Join(seqs, "+")
	if joined == f.fail {
		return engine.Result{}, errors.New("boom")
	}
	time.Sleep(time.Duration(10-len(joined)%10) * time.Millisecond)
	return engine.Result{Aligned: []string{joined}}, ctx.Err()
}

func mkJobs(seqs ...string) []Job {
	jobs := make([]Job, len(seqs))
	for i, s := range seqs {
		jobs[i] = Job{Index: i, Label: "job" + s, Seqs: []string{s}}
	}
	return jobs
}

func TestForEachResult_Ordered(t *testing.T) {
	jobs := mkJobs("A", "AC", "ACG", "ACGT", "ACGTA", "ACGTAC")
	var got []string
	err := ForEachResult(context.Background(), Config{Threads: 4}, jobs, &fakeAligner{}, func(r Result) error {
		got = append(got, r.Alignment.Aligned[0])
		return nil
	})
	if err != nil {
		t.Fatalf("pipeline err: %v", err)
	}
	want := "A,AC,ACG,ACGT,ACGTA,ACGTAC"
	if strings.Join(got, ",") != want {
		t.Fatalf("order = %v, want %s", got, want)
	}
}

func TestForEachResult_FirstErrorInOrder(t *testing.T) {
	jobs := mkJobs("A", "AC", "ACG")
	var visited int
	err := ForEachResult(context.Background(), Config{Threads: 2}, jobs, &fakeAligner{fail: "AC"}, func(Result) error {
		visited++
		return nil
	})
	if err == nil || !strings.Contains(err.Error(), "jobAC") || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("want labelled error, got %v", err)
	}
	if visited != 1 {
		t.Fatalf("results after the failure must not be visited; visited=%d", visited)
	}
}

func TestForEachResult_VisitError(t *testing.T) {
	stop := errors.New("stop")
	err := ForEachResult(context.Background(), Config{Threads: 1}, mkJobs("A", "C"), &fakeAligner{}, func(Result) error {
		return stop
	})
	if !errors.Is(err, stop) {
		t.Fatalf("want visit error, got %v", err)
	}
}

func TestForEachResult_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEachResult(ctx, Config{Threads: 2}, mkJobs("A", "C", "G"), &fakeAligner{}, func(Result) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestForEachResult_RealEngineWithTracker(t *testing.T) {
	eng := engine.New(engine.Config{Indel: -4, Sub: engine.MatchMismatch(5, -2)})
	var labels []string
	cfg := Config{Threads: 1, Tracker: func(label string) engine.Progress {
		labels = append(labels, label)
		return nil
	}}
	jobs := []Job{{Label: "pair", Seqs: []string{"ACGT", "AGT"}}}
	var res Result
	if err := ForEachResult(context.Background(), cfg, jobs, eng, func(r Result) error { res = r; return nil }); err != nil {
		t.Fatalf("pipeline err: %v", err)
	}
	if len(labels) != 1 || labels[0] != "pair" {
		t.Fatalf("tracker labels = %v", labels)
	}
	if got := res.Alignment.Aligned; len(got) != 2 || got[0] != "ACGT" || got[1] != "A-GT" {
		t.Fatalf("aligned = %q", got)
	}
}

func writeFA(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return fn
}

func TestLoadJobs(t *testing.T) {
	dir := t.TempDir()
	a := writeFA(t, dir, "a.fa", ">a1\nacgt\n>empty\n>a2\nAC\nGT\n")
	b := writeFA(t, dir, "b.fa", ">b1\nTTT\n")

	pooled, err := LoadJobs(context.Background(), []string{a, b}, false, '-')
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(pooled) != 1 {
		t.Fatalf("want 1 pooled job, got %d", len(pooled))
	}
	j := pooled[0]
	if strings.Join(j.IDs, ",") != "a1,a2,b1" || strings.Join(j.Seqs, ",") != "ACGT,ACGT,TTT" {
		t.Fatalf("pooled job = %+v", j)
	}
	if len(j.Skipped) != 1 || j.Skipped[0] != "empty" {
		t.Fatalf("skipped = %v", j.Skipped)
	}

	per, err := LoadJobs(context.Background(), []string{a, b}, true, '-')
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(per) != 2 || per[1].Index != 1 || per[1].Label != b || len(per[0].Seqs) != 2 {
		t.Fatalf("per-file jobs = %+v", per)
	}
}

func TestLoadJobs_RejectsGapAndBadSymbols(t *testing.T) {
	dir := t.TempDir()
	gapped := writeFA(t, dir, "g.fa", ">g\nAC-GT\n")
	if _, err := LoadJobs(context.Background(), []string{gapped}, false, '-'); err == nil {
		t.Fatal("expected error for gap character in input")
	}
	digits := writeFA(t, dir, "d.fa", ">d\nAC1GT\n")
	if _, err := LoadJobs(context.Background(), []string{digits}, false, '-'); err == nil {
		t.Fatal("expected error for invalid symbol")
	}
}
