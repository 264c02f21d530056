package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/fastrenamer/fastrenamer/pkg/models"
)

// HumanFormatter renders plans and reports as readable text
type HumanFormatter struct {
	writer io.Writer

	arrow     *color.Color
	unchanged *color.Color
	failed    *color.Color
}

// NewHumanFormatter creates a human-readable formatter writing to w.
// Colors follow the fatih/color global NO_COLOR / tty handling unless
// disabled here explicitly.
func NewHumanFormatter(w io.Writer, useColor bool) *HumanFormatter {
	f := &HumanFormatter{
		writer:    w,
		arrow:     color.New(color.FgGreen),
		unchanged: color.New(color.FgYellow),
		failed:    color.New(color.FgRed),
	}
	if !useColor {
		f.arrow.DisableColor()
		f.unchanged.DisableColor()
		f.failed.DisableColor()
	}
	return f
}

// Plan renders each proposed rename on its own line
func (f *HumanFormatter) Plan(plan *models.RenamePlan) error {
	fmt.Fprintf(f.writer, "Rename plan for %s (%d file(s)):\n\n", plan.Dir, plan.Len())

	width := 0
	for _, pair := range plan.Pairs {
		if len(pair.Source) > width {
			width = len(pair.Source)
		}
	}

	for _, pair := range plan.Pairs {
		if pair.IsNoOp() {
			fmt.Fprintf(f.writer, "  %-*s    %s\n", width, pair.Source,
				f.unchanged.Sprint("(unchanged)"))
			continue
		}
		fmt.Fprintf(f.writer, "  %-*s %s %s\n", width, pair.Source,
			f.arrow.Sprint("->"), pair.Proposed)
	}

	fmt.Fprintln(f.writer)
	if n := plan.NoOpCount(); n > 0 {
		fmt.Fprintf(f.writer, "%s\n",
			f.unchanged.Sprintf("Warning: %d file(s) would keep their current name.", n))
	}
	fmt.Fprintf(f.writer, "%d file(s) will be renamed.\n", plan.ChangeCount())

	return nil
}

// Start is a no-op; the human formatter prints outcomes as they arrive
func (f *HumanFormatter) Start(total int) error {
	return nil
}

// Progress prints one processed entry
func (f *HumanFormatter) Progress(update ProgressUpdate) error {
	r := update.Result
	switch r.Outcome {
	case models.OutcomeRenamed:
		fmt.Fprintf(f.writer, "[%d/%d] %s %s %s %s\n",
			update.Current, update.Total,
			f.arrow.Sprint("ok"), r.Source, f.arrow.Sprint("->"), r.Proposed)
	case models.OutcomeSkipped:
		fmt.Fprintf(f.writer, "[%d/%d] skip %s (%s)\n",
			update.Current, update.Total, r.Source, r.Error)
	default:
		fmt.Fprintf(f.writer, "[%d/%d] %s %s: %s\n",
			update.Current, update.Total,
			f.failed.Sprint("fail"), r.Source, r.Error)
	}
	return nil
}

// Complete renders the execution summary
func (f *HumanFormatter) Complete(report *models.RenameReport) error {
	fmt.Fprintln(f.writer)
	fmt.Fprintf(f.writer, "Completed in %s\n", report.Duration.Round(time.Millisecond))
	fmt.Fprintf(f.writer, "  Renamed: %d\n", report.Stats.Renamed)
	fmt.Fprintf(f.writer, "  Skipped: %d\n", report.Stats.Skipped)
	fmt.Fprintf(f.writer, "  Failed:  %d\n", report.Stats.Failed)

	if report.Stats.Failed > 0 {
		fmt.Fprintf(f.writer, "\n%s\n", f.failed.Sprint("Failures:"))
		for _, r := range report.Results {
			if r.Failed() {
				fmt.Fprintf(f.writer, "  %s -> %s: %s (%s)\n",
					r.Source, r.Proposed, r.Error, r.Outcome)
			}
		}
	}

	fmt.Fprintf(f.writer, "\nStatus: %s\n", report.Status)
	return nil
}

// Error reports an error
func (f *HumanFormatter) Error(err error) error {
	fmt.Fprintf(f.writer, "%s %v\n", f.failed.Sprint("Error:"), err)
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}
