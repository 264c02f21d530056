package output

import (
	"io"

	"github.com/cheggaaa/pb/v3"

	"github.com/fastrenamer/fastrenamer/pkg/models"
)

// ProgressFormatter renders a progress bar while a plan executes and
// defers plan and summary rendering to the human formatter. Useful for
// large selections on slow filesystems (network shares).
type ProgressFormatter struct {
	human  *HumanFormatter
	writer io.Writer
	bar    *pb.ProgressBar
}

// NewProgressFormatter creates a progress-bar formatter writing to w
func NewProgressFormatter(w io.Writer, useColor bool) *ProgressFormatter {
	return &ProgressFormatter{
		human:  NewHumanFormatter(w, useColor),
		writer: w,
	}
}

// Plan renders the proposed renames via the human formatter
func (f *ProgressFormatter) Plan(plan *models.RenamePlan) error {
	return f.human.Plan(plan)
}

// Start begins the progress bar
func (f *ProgressFormatter) Start(total int) error {
	f.bar = pb.New(total)
	f.bar.SetWriter(f.writer)
	f.bar.Start()
	return nil
}

// Progress advances the bar by one entry
func (f *ProgressFormatter) Progress(update ProgressUpdate) error {
	if f.bar != nil {
		f.bar.Increment()
	}
	return nil
}

// Complete stops the bar and renders the summary
func (f *ProgressFormatter) Complete(report *models.RenameReport) error {
	if f.bar != nil {
		f.bar.Finish()
		f.bar = nil
	}
	return f.human.Complete(report)
}

// Error stops the bar and reports the error
func (f *ProgressFormatter) Error(err error) error {
	if f.bar != nil {
		f.bar.Finish()
		f.bar = nil
	}
	return f.human.Error(err)
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string {
	return "progress"
}
