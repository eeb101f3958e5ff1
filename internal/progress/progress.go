// internal/progress/progress.go
package progress

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"nmsa-core/engine"
)

// Bars renders one fill bar per alignment job. The zero value and a nil
// *Bars are disabled and hand out nil trackers.
type Bars struct {
	p *mpb.Progress
}

// New returns Bars drawing to w, or a disabled Bars when enabled is false.
func New(w io.Writer, enabled bool) *Bars {
	if !enabled {
		return &Bars{}
	}
	return &Bars{p: mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))}
}

// Tracker returns an engine.Progress for one job, or nil when disabled.
func (b *Bars) Tracker(label string) engine.Progress {
	if b == nil || b.p == nil {
		return nil
	}
	return &tracker{p: b.p, label: label}
}

// Wait blocks until every bar has rendered its final state.
func (b *Bars) Wait() {
	if b == nil || b.p == nil {
		return
	}
	b.p.Wait()
}

type tracker struct {
	p     *mpb.Progress
	label string
	bar   *mpb.Bar
	total int64
	done  int64
}

func (t *tracker) Start(total int) {
	t.total = int64(total)
	name := t.label + " (" + humanize.Comma(int64(total)) + " cells): "
	t.bar = t.p.AddBar(t.total,
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name), C: decor.DindentRight}),
			decor.Percentage(decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
			decor.AverageETA(decor.ET_STYLE_GO),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
}

func (t *tracker) Advance(n int) {
	if t.bar != nil && n > 0 {
		t.bar.IncrBy(n)
		t.done += int64(n)
	}
}

// Done completes the bar; on early exit it is aborted in place.
func (t *tracker) Done() {
	if t.bar == nil {
		return
	}
	if t.done < t.total {
		t.bar.Abort(false)
		return
	}
	t.bar.SetTotal(-1, true)
}

var _ engine.Progress = (*tracker)(nil)
