// Package report renders experiment results as plain text tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/0xSalik/statsproject/internal/combinatorics"
	"github.com/0xSalik/statsproject/internal/entities"
	"github.com/0xSalik/statsproject/internal/errors"
)

// BarWidth is the length of the bar drawn for an observed count equal to the
// largest expected count
const BarWidth = 30

const rule = "================================================================================="

// Interpretation is printed below every results table
const Interpretation = `Interpretation: A smaller Chi-Squared value indicates a better fit between
the observed results and the theoretical probabilities. As the number of
trials increases, this value should approach the degrees of freedom.`

// Report is everything needed to render one simulation run
type Report struct {
	RunID    string
	Config   entities.SimulationConfig
	Expected *entities.ExpectedDistribution
	Observed *entities.ObservedDistribution
	Fit      *entities.GoodnessOfFitResult
}

// Validate ensures the report can be rendered
func (r *Report) Validate() error {
	vb := errors.NewValidationBuilder()

	if r.Expected == nil {
		vb.RequiredField("Expected")
	}
	if r.Observed == nil {
		vb.RequiredField("Observed")
	}
	if r.Fit == nil {
		vb.RequiredField("Fit")
	}
	if r.Expected != nil && r.Observed != nil && r.Expected.Range != r.Observed.Range {
		vb.Fieldf("Observed", "range %d..%d does not match expected range %d..%d",
			r.Observed.Range.Min, r.Observed.Range.Max, r.Expected.Range.Min, r.Expected.Range.Max)
	}

	return vb.Build()
}

// TheoryReport is an exact outcome table ready for rendering
type TheoryReport struct {
	Table  *combinatorics.Table
	Cached bool
}

// Bar returns the '#' bar for an observed count scaled against maxExpected.
// It is empty when maxExpected is not positive.
func Bar(observed int64, maxExpected float64) string {
	if maxExpected <= 0 || observed <= 0 {
		return ""
	}
	return strings.Repeat("#", int(float64(observed)/maxExpected*BarWidth))
}

// Render writes the results table, the statistic and the interpretation
func Render(w io.Writer, r *Report) error {
	if r == nil {
		return errors.InvalidArgument("report is required")
	}
	if err := r.Validate(); err != nil {
		return err
	}

	styles := newStyles(w)
	p := &printer{w: w}

	p.println()
	p.println(styles.title.Render(fmt.Sprintf("--- Simulation Results for %d trials of rolling %s ---",
		r.Config.TrialCount, r.Config.Notation())))
	if r.RunID != "" {
		p.println(styles.muted.Render("Run: " + r.RunID))
	}
	p.println(rule)
	p.printf("| %-4s | %-18s | %-18s | %s\n", "Sum", "Expected Count", "Observed Count", "Distribution Bar")
	p.println("|------|--------------------|--------------------|--------------------------------")

	maxExpected := r.Expected.Max()
	for _, sum := range r.Expected.Range.Sums() {
		observed := r.Observed.At(sum)
		p.printf("| %-4d | %-18.2f | %-18d | %s\n",
			sum, r.Expected.At(sum), observed, Bar(observed, maxExpected))
	}

	p.println(rule)
	p.println(styles.heading.Render("Statistical Analysis:"))
	p.printf("  - Chi-Squared (χ²) Statistic: %.4f\n", r.Fit.ChiSquared)
	p.printf("  - Degrees of Freedom: %d\n", r.Fit.DegreesOfFreedom)
	p.println()
	p.println(Interpretation)

	return p.err
}

// RenderTheory writes the exact number of ways and the probability of every sum
func RenderTheory(w io.Writer, r *TheoryReport) error {
	if r == nil || r.Table == nil {
		return errors.InvalidArgument("outcome table is required")
	}

	styles := newStyles(w)
	p := &printer{w: w}
	table := r.Table
	notation := fmt.Sprintf("%dd%d", table.DiceCount(), table.SidesCount())

	p.println()
	p.println(styles.title.Render(fmt.Sprintf("--- Exact Outcomes for %s (%s total) ---",
		notation, table.Total().String())))
	if r.Cached {
		p.println(styles.muted.Render("Loaded from outcome table cache"))
	}
	p.println(rule)
	p.printf("| %-4s | %-24s | %s\n", "Sum", "Ways", "Probability")
	p.println("|------|--------------------------|--------------------------------")

	for _, sum := range table.Range().Sums() {
		p.printf("| %-4d | %-24s | %.8f\n", sum, table.Ways(sum).String(), table.Probability(sum))
	}

	p.println(rule)

	return p.err
}

type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
}

// newStyles binds the styles to w so colour is only emitted for terminals
func newStyles(w io.Writer) styles {
	renderer := lipgloss.NewRenderer(w)
	return styles{
		title:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		heading: renderer.NewStyle().Bold(true),
		muted:   renderer.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// printer remembers the first write error so rendering code stays linear
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}
