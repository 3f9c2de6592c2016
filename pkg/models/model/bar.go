package model

import (
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
	"github.com/zeromicro/go-zero/core/logx"
)

// Bar is a counting progress bar drawn on w. Render errors are logged and
// never interrupt the caller.
type Bar struct {
	bar *progressbar.ProgressBar
}

func NewBar(w io.Writer, total int, description string) *Bar {
	return &Bar{
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(description),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        aurora.Yellow("█").String(),
				SaucerHead:    aurora.Yellow("█").String(),
				SaucerPadding: " ",
				BarStart:      "|",
				BarEnd:        "|",
			}),
		),
	}
}

func (b *Bar) Add(n int) {
	if err := b.bar.Add(n); err != nil {
		logx.Errorf("progress bar add: %v", err)
	}
}

func (b *Bar) Describe(description string) {
	b.bar.Describe(description)
}

// Close fills the bar and moves past it.
func (b *Bar) Close() {
	if err := b.bar.Finish(); err != nil {
		logx.Errorf("progress bar finish: %v", err)
	}
	if err := b.bar.Close(); err != nil {
		logx.Errorf("progress bar close: %v", err)
	}
}
