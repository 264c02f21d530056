package output

import (
	"github.com/fastrenamer/fastrenamer/pkg/models"
)

// ProgressUpdate notifies a formatter that one plan entry was processed
type ProgressUpdate struct {
	Result  models.RenameResult
	Current int
	Total   int
}

// Formatter renders plans and execution reports. Implementations include
// human-readable, JSON, and progress-bar formatters.
type Formatter interface {
	// Plan renders the proposed renames for confirmation
	Plan(plan *models.RenamePlan) error

	// Start signals that execution of total entries is beginning
	Start(total int) error

	// Progress reports one processed entry
	Progress(update ProgressUpdate) error

	// Complete finalizes output and renders the report
	Complete(report *models.RenameReport) error

	// Error reports a failure that prevented planning or execution
	Error(err error) error

	// Name returns the formatter name
	Name() string
}
