package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/montepi/pkg/domain"
	"github.com/muesli/termenv"
)

// PlotHint is the external plotting command for data files in the working directory.
const PlotHint = "xmgrace -nxy inside.dat outside.dat"

// Reporter prints run summaries. Colors are used only when the writer is a
// color-capable terminal.
type Reporter struct {
	out *termenv.Output
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, opts ...termenv.OutputOption) *Reporter {
	return &Reporter{out: termenv.NewOutput(w, opts...)}
}

func (r *Reporter) accent(s string) termenv.Style {
	return r.out.String(s).Foreground(r.out.Color("#818cf8")).Bold()
}

func (r *Reporter) muted(s string) termenv.Style {
	return r.out.String(s).Foreground(r.out.Color("#a78bfa"))
}

// PrintResult writes the estimate, error bound, count ratio and relative error.
func (r *Reporter) PrintResult(res domain.Result) {
	fmt.Fprintf(r.out, "π ≈ %s ± %s\n",
		r.accent(fmt.Sprintf("%.6f", res.PiEstimate)),
		fmt.Sprintf("%.6f", res.HalfWidth),
	)
	fmt.Fprintf(r.out, "inside: %d/%d (ratio %.6f)\n", res.Inside, res.Samples, res.Ratio())
	fmt.Fprintf(r.out, "relative error: %.6f%%\n", res.RelativeError()*100)
}

// PrintFiles lists the written data files and how to plot them.
func (r *Reporter) PrintFiles(inside, outside string) {
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "files written: %s, %s\n", inside, outside)
	hint := PlotHint
	if inside != "inside.dat" || outside != "outside.dat" {
		hint = fmt.Sprintf("xmgrace -nxy %s %s", inside, outside)
	}
	fmt.Fprintf(r.out, "plot with: %s\n", r.muted(hint))
}

// PrintSeed shows the seed needed to reproduce the run.
func (r *Reporter) PrintSeed(seed uint64) {
	fmt.Fprintf(r.out, "%s\n", r.muted(fmt.Sprintf("seed: %d", seed)))
}

// PrintVerification summarizes a check of existing data files.
func (r *Reporter) PrintVerification(v Verification) {
	fmt.Fprintf(r.out, "inside rows: %d, outside rows: %d, total: %d\n", v.Inside, v.Outside, v.Inside+v.Outside)
	if v.Misclassified == 0 {
		fmt.Fprintf(r.out, "classification: %s\n", r.accent("ok"))
	} else {
		fmt.Fprintf(r.out, "classification: %d misclassified rows\n", v.Misclassified)
	}
}

// Verification is the outcome of re-reading data files.
type Verification struct {
	Inside        int
	Outside       int
	Misclassified int
}
