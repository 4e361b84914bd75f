package tui

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/term"
)

// ProgressBar adapts a pb/v3 bar to sampler.Progress.
type ProgressBar struct {
	w   io.Writer
	bar *pb.ProgressBar
}

// NewProgressBar creates a bar drawing on w.
func NewProgressBar(w io.Writer) *ProgressBar {
	return &ProgressBar{w: w}
}

// Start creates and starts the bar for total draws.
func (p *ProgressBar) Start(total int) {
	p.bar = pb.New(total).SetWriter(p.w).Start()
}

// Add advances the bar.
func (p *ProgressBar) Add(n int) {
	if p.bar != nil {
		p.bar.Add(n)
	}
}

// Finish stops the bar.
func (p *ProgressBar) Finish() {
	if p.bar != nil {
		p.bar.Finish()
		p.bar = nil
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
