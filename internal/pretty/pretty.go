package pretty

import (
	"strconv"
	"strings"
)

// Block is one alignment ready for rendering.
type Block struct {
	Labels []string // one per row; empty entries become s<i>
	Rows   []string // equal-length aligned rows

	// Local marks a windowed alignment: rows carry residue outside
	// [LeftPad, len-RightPad) and the window is bracketed.
	Local    bool
	LeftPad  int
	RightPad int
}

// Options control the ASCII rendering.
type Options struct {
	OpenGlyph  string // default "["
	CloseGlyph string // default "]"
	MatchGlyph string // default "|"

	// Draw match lines between consecutive rows in global mode too.
	GlobalMatches bool
}

// DefaultOptions matches the classic report layout.
var DefaultOptions = Options{
	OpenGlyph:  "[",
	CloseGlyph: "]",
	MatchGlyph: "|",
}

// Labels returns the row labels padded to a common width, each followed by
// ": ". Missing labels become s1, s2, ...
func Labels(ids []string, n int) []string {
	out := make([]string, n)
	w := 0
	for i := 0; i < n; i++ {
		l := ""
		if i < len(ids) {
			l = ids[i]
		}
		if l == "" {
			l = "s" + strconv.Itoa(i+1)
		}
		out[i] = l
		if len(l) > w {
			w = len(l)
		}
	}
	for i := range out {
		out[i] = out[i] + ": " + strings.Repeat(" ", w-len(out[i]))
	}
	return out
}

// Render draws the rows with labels. Local blocks get a bracket indicator
// spanning the window and, between consecutive rows, a match line with a
// glyph wherever the two rows agree inside the window.
func Render(b Block) string { return RenderWithOptions(b, DefaultOptions) }

// RenderWithOptions is Render with custom glyphs.
func RenderWithOptions(b Block, opt Options) string {
	if len(b.Rows) == 0 {
		return ""
	}
	opt = withDefaults(opt)
	labels := Labels(b.Labels, len(b.Rows))
	indent := len(labels[0])
	width := len(b.Rows[0])

	from, to := 0, width
	if b.Local {
		from, to = b.LeftPad, width-b.RightPad
	}
	matches := (b.Local || opt.GlobalMatches) && to > from

	var sb strings.Builder
	if b.Local && to > from {
		sb.WriteString(strings.Repeat(" ", indent+from))
		sb.WriteString(opt.OpenGlyph)
		if inner := to - from - 2; inner > 0 {
			sb.WriteString(strings.Repeat(" ", inner))
		}
		sb.WriteString(opt.CloseGlyph)
		sb.WriteByte('\n')
	}
	for i, row := range b.Rows {
		sb.WriteString(labels[i])
		sb.WriteString(row)
		sb.WriteByte('\n')
		if !matches || i == len(b.Rows)-1 {
			continue
		}
		line := matchLine(row, b.Rows[i+1], from, to, opt.MatchGlyph)
		sb.WriteString(strings.TrimRight(strings.Repeat(" ", indent+from)+line, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func matchLine(a, b string, from, to int, glyph string) string {
	var sb strings.Builder
	for j := from; j < to && j < len(a) && j < len(b); j++ {
		if a[j] == b[j] {
			sb.WriteString(glyph)
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func withDefaults(o Options) Options {
	if o.OpenGlyph == "" {
		o.OpenGlyph = DefaultOptions.OpenGlyph
	}
	if o.CloseGlyph == "" {
		o.CloseGlyph = DefaultOptions.CloseGlyph
	}
	if o.MatchGlyph == "" {
		o.MatchGlyph = DefaultOptions.MatchGlyph
	}
	return o
}
