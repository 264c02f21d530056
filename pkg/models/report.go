package models

import (
	"time"
)

// RenameOutcome is the per-entry result of executing a plan
type RenameOutcome string

const (
	// OutcomeRenamed indicates the file was renamed successfully
	OutcomeRenamed RenameOutcome = "renamed"
	// OutcomeSkipped indicates the entry was not attempted (no-op name,
	// or the batch was aborted before reaching it)
	OutcomeSkipped RenameOutcome = "skipped"
	// OutcomeAlreadyExists indicates the destination name was taken by a
	// file outside the plan at execution time
	OutcomeAlreadyExists RenameOutcome = "already-exists"
	// OutcomeNotFound indicates the source file vanished before execution
	OutcomeNotFound RenameOutcome = "not-found"
	// OutcomePermissionDenied indicates the rename was refused by the OS
	OutcomePermissionDenied RenameOutcome = "permission-denied"
	// OutcomeIOError covers any other filesystem failure
	OutcomeIOError RenameOutcome = "io-error"
)

// RenameResult records what happened to a single plan entry
type RenameResult struct {
	Source   string        `json:"source"`
	Proposed string        `json:"proposed"`
	Outcome  RenameOutcome `json:"outcome"`
	Error    string        `json:"error,omitempty"`
}

// Failed returns true for outcomes that count as errors
func (r RenameResult) Failed() bool {
	switch r.Outcome {
	case OutcomeRenamed, OutcomeSkipped:
		return false
	}
	return true
}

// RenameStats summarizes a report
type RenameStats struct {
	Renamed int `json:"renamed"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// RenameStatus is the overall result of executing a plan
type RenameStatus string

const (
	// StatusSuccess indicates every attempted rename succeeded
	StatusSuccess RenameStatus = "success"
	// StatusPartial indicates some renames failed and some succeeded
	StatusPartial RenameStatus = "partial"
	// StatusFailed indicates no rename succeeded
	StatusFailed RenameStatus = "failed"
)

// ExitCode maps a status to a process exit code
func (s RenameStatus) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusPartial:
		return 1
	case StatusFailed:
		return 2
	default:
		return 2
	}
}

// RenameReport is the outcome of executing one plan. Results are in plan
// order, one per entry, so partial success is reported item by item.
type RenameReport struct {
	PlanID    string         `json:"plan_id"`
	Dir       string         `json:"dir"`
	StartTime time.Time      `json:"start_time"`
	EndTime   time.Time      `json:"end_time"`
	Duration  time.Duration  `json:"-"`
	Results   []RenameResult `json:"results"`
	Stats     RenameStats    `json:"stats"`
	Status    RenameStatus   `json:"status"`
}

// Finalize computes the stats and overall status from the results
func (r *RenameReport) Finalize() {
	r.Stats = RenameStats{}
	for _, res := range r.Results {
		switch {
		case res.Outcome == OutcomeRenamed:
			r.Stats.Renamed++
		case res.Outcome == OutcomeSkipped:
			r.Stats.Skipped++
		default:
			r.Stats.Failed++
		}
	}

	switch {
	case r.Stats.Failed == 0:
		r.Status = StatusSuccess
	case r.Stats.Renamed > 0:
		r.Status = StatusPartial
	default:
		r.Status = StatusFailed
	}

	if !r.EndTime.IsZero() {
		r.Duration = r.EndTime.Sub(r.StartTime)
	}
}
