package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"nmsa-core/engine"
	"nmsa/internal/pretty"
	"nmsa/pkg/api"
)

func localAlignment() Alignment {
	return Alignment{
		Source: "in.fa",
		IDs:    []string{"x", "y"},
		Result: engine.Result{
			Mode:    engine.Local,
			Score:   20,
			Aligned: []string{"TTACGT  ", "  ACGTCC"},
			LeftPad: 2, RightPad: 2,
			Path:  engine.Path{{}},
			Cells: 49,
		},
	}
}

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" || FormatJSONL != "jsonl" || FormatFASTA != "fasta" {
		t.Fatalf("output format constants changed")
	}
}

func TestToAPIAlignment(t *testing.T) {
	v := ToAPIAlignment(localAlignment())
	if v.Mode != "local" || v.Score != 20 || v.Length != 8 || v.LeftPad != 2 || v.RightPad != 2 || v.Empty {
		t.Fatalf("bad conversion %+v", v)
	}
	if len(v.Rows) != 2 || v.Rows[0].ID != "x" || v.Rows[1].Aligned != "  ACGTCC" {
		t.Fatalf("bad rows %+v", v.Rows)
	}

	g := ToAPIAlignment(Alignment{Result: engine.Result{Mode: engine.Global, Aligned: []string{"A", "C"}, LeftPad: 9}})
	if g.LeftPad != 0 || g.Rows[0].ID != "s1" || g.Rows[1].ID != "s2" {
		t.Fatalf("global conversion %+v", g)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, []Alignment{localAlignment()}); err != nil {
		t.Fatalf("json write: %v", err)
	}
	var got []api.AlignmentV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 1 || got[0].Rows[1].ID != "y" {
		t.Fatalf("json decode failed: %v %+v", err, got)
	}
	if !strings.Contains(buf.String(), "\"left_pad\": 2") {
		t.Fatalf("expected indented snake_case output:\n%s", buf.String())
	}
}

func TestFASTARecords(t *testing.T) {
	got := FASTARecords(localAlignment(), '-', ' ')
	want := ">x mode=local score=20 window=3-6 source_file=in.fa\nTTACGT--\n" +
		">y mode=local score=20 window=3-6 source_file=in.fa\n--ACGTCC\n"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}

	empty := Alignment{Result: engine.Result{Mode: engine.Local, Aligned: []string{"AAA", "CCC"}, RightPad: 3}}
	if s := FASTARecords(empty, '-', ' '); s != "" {
		t.Fatalf("empty local alignment must produce no FASTA, got %q", s)
	}
}

func TestStreamText(t *testing.T) {
	in := make(chan Alignment, 2)
	in <- localAlignment()
	in <- Alignment{Result: engine.Result{Mode: engine.Global, Score: -3, Aligned: []string{"A-", "AC"}}}
	close(in)
	var buf bytes.Buffer
	if err := StreamText(&buf, in, pretty.DefaultOptions); err != nil {
		t.Fatalf("stream: %v", err)
	}
	want := strings.Join([]string{
		"# source: in.fa",
		"# mode: local",
		"# score: 20",
		"     [  ]",
		"x: TTACGT  ",
		"     ||||",
		"y:   ACGTCC",
		"",
		"# mode: global",
		"# score: -3",
		"s1: A-",
		"s2: AC",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("text mismatch:\n got:\n%q\n want:\n%q", buf.String(), want)
	}
}

func TestTextBlockEmptyLocal(t *testing.T) {
	a := Alignment{Result: engine.Result{Mode: engine.Local, Aligned: []string{"AAA", "CCC"}, RightPad: 3}}
	got := TextBlock(a, pretty.DefaultOptions)
	if !strings.Contains(got, "# no positive-scoring local alignment") {
		t.Fatalf("missing empty marker:\n%s", got)
	}
}
