package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/fastrenamer/fastrenamer/pkg/models"
)

// JSONFormatter emits machine-readable output for scripting. Progress
// events are not streamed; only the plan and the final report are printed.
type JSONFormatter struct {
	writer io.Writer
}

// JSONPlanData is the wire shape of a rename plan
type JSONPlanData struct {
	ID       string         `json:"id,omitempty"`
	Dir      string         `json:"dir"`
	HasNoOps bool           `json:"has_no_ops"`
	Pairs    []JSONPairData `json:"pairs"`
}

// JSONPairData is one proposed rename
type JSONPairData struct {
	Source   string `json:"source"`
	Proposed string `json:"proposed"`
	NoOp     bool   `json:"no_op,omitempty"`
}

// JSONReportData is the wire shape of an execution report
type JSONReportData struct {
	PlanID     string                `json:"plan_id"`
	Dir        string                `json:"dir"`
	Status     string                `json:"status"`
	Duration   string                `json:"duration"`
	DurationMs int64                 `json:"duration_ms"`
	Stats      models.RenameStats    `json:"stats"`
	Results    []models.RenameResult `json:"results"`
}

// NewJSONFormatter creates a JSON formatter writing to w
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// Plan encodes the plan as a single JSON document
func (f *JSONFormatter) Plan(plan *models.RenamePlan) error {
	data := JSONPlanData{
		ID:       plan.ID,
		Dir:      plan.Dir,
		HasNoOps: plan.HasNoOps,
		Pairs:    make([]JSONPairData, 0, len(plan.Pairs)),
	}
	for _, pair := range plan.Pairs {
		data.Pairs = append(data.Pairs, JSONPairData{
			Source:   pair.Source,
			Proposed: pair.Proposed,
			NoOp:     pair.IsNoOp(),
		})
	}
	return f.encode(map[string]any{"plan": data})
}

// Start does nothing
func (f *JSONFormatter) Start(total int) error {
	return nil
}

// Progress does nothing; per-entry outcomes appear in the final report
func (f *JSONFormatter) Progress(update ProgressUpdate) error {
	return nil
}

// Complete encodes the final report
func (f *JSONFormatter) Complete(report *models.RenameReport) error {
	return f.encode(map[string]any{"report": JSONReportData{
		PlanID:     report.PlanID,
		Dir:        report.Dir,
		Status:     string(report.Status),
		Duration:   report.Duration.Round(time.Millisecond).String(),
		DurationMs: report.Duration.Milliseconds(),
		Stats:      report.Stats,
		Results:    report.Results,
	}})
}

// Error encodes the error as JSON
func (f *JSONFormatter) Error(err error) error {
	return f.encode(map[string]string{"error": err.Error()})
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}

func (f *JSONFormatter) encode(v any) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
