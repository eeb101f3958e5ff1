package pretty

import (
	"strings"
	"testing"
)

func TestRenderLocal(t *testing.T) {
	got := Render(Block{
		Rows:    []string{"TTACGT  ", "  ACGTCC"},
		Local:   true,
		LeftPad: 2, RightPad: 2,
	})
	want := strings.Join([]string{
		"      [  ]",
		"s1: TTACGT  ",
		"      ||||",
		"s2:   ACGTCC",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("render mismatch:\n got:\n%q\n want:\n%q", got, want)
	}
}

func TestRenderLocalMismatchColumns(t *testing.T) {
	got := Render(Block{
		Labels:  []string{"a", "bb", ""},
		Rows:    []string{"ACGT", "AGGT", "AGGA"},
		Local:   true,
		LeftPad: 0, RightPad: 0,
	})
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("want indicator + 3 rows + 2 match lines, got %d:\n%s", len(lines), got)
	}
	if lines[0] != "    [  ]" {
		t.Errorf("indicator = %q", lines[0])
	}
	if lines[1] != "a:  ACGT" || lines[3] != "bb: AGGT" || lines[5] != "s3: AGGA" {
		t.Errorf("labels not aligned:\n%s", got)
	}
	if lines[2] != "    | ||" || lines[4] != "    |||" {
		t.Errorf("match lines = %q / %q", lines[2], lines[4])
	}
}

func TestRenderGlobalHasNoIndicator(t *testing.T) {
	got := Render(Block{Rows: []string{"ACTG", "A-TG"}})
	want := "s1: ACTG\ns2: A-TG\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	got = RenderWithOptions(Block{Rows: []string{"ACTG", "A-TG"}}, Options{GlobalMatches: true, MatchGlyph: "*"})
	if !strings.Contains(got, "\n    * **\n") {
		t.Fatalf("global match line missing: %q", got)
	}
}

func TestRenderEmptyLocalWindow(t *testing.T) {
	got := Render(Block{Rows: []string{"AAA", "CCC"}, Local: true, LeftPad: 0, RightPad: 3})
	if strings.Contains(got, "[") || strings.Contains(got, "|") {
		t.Fatalf("empty window must not draw indicator or matches: %q", got)
	}
}

func TestDefaultOptions_Stable(t *testing.T) {
	d := DefaultOptions
	if d.OpenGlyph != "[" || d.CloseGlyph != "]" || d.MatchGlyph != "|" || d.GlobalMatches {
		t.Fatalf("DefaultOptions visual defaults changed")
	}
}
