package ui

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const barWidth = 30

// Bar renders a single-line textual progress indicator. It redraws in place
// with a carriage return; callers decide when and where the percentage moves,
// the bar only pins values into the displayable 0..100 range.
type Bar struct {
	out     io.Writer
	label   string
	percent int
	stage   string
}

func NewBar(out io.Writer) *Bar {
	return &Bar{out: out}
}

func (b *Bar) Start(label string, estimate time.Duration) {
	b.label = label
	b.percent = 0
	b.stage = ""
	if estimate > 0 {
		fmt.Fprintf(b.out, "%s (~%s)\n", label, formatEstimate(estimate))
	} else {
		fmt.Fprintln(b.out, label)
	}
	b.render()
}

func (b *Bar) Update(percent int, stage string) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	b.percent = percent
	b.stage = stage
	b.render()
}

func (b *Bar) Done() {
	fmt.Fprintln(b.out)
}

func (b *Bar) render() {
	filled := b.percent * barWidth / 100
	fmt.Fprintf(
		b.out,
		"\r[%s%s] %3d%% %s",
		strings.Repeat("#", filled),
		strings.Repeat("-", barWidth-filled),
		b.percent,
		b.stage,
	)
}

func formatEstimate(estimate time.Duration) string {
	if estimate >= time.Minute {
		return fmt.Sprintf("%dmin", int(estimate.Minutes()))
	}
	return fmt.Sprintf("%ds", int(estimate.Seconds()))
}
