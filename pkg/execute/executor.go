// Package execute performs confirmed rename plans against a storage
// backend. Renames run in two phases through unique temporary names so
// that plans may shift files onto names vacated within the same batch.
package execute

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/fastrenamer/fastrenamer/internal/platform"
	"github.com/fastrenamer/fastrenamer/pkg/logging"
	"github.com/fastrenamer/fastrenamer/pkg/models"
	"github.com/fastrenamer/fastrenamer/pkg/output"
	"github.com/fastrenamer/fastrenamer/pkg/storage"
)

const tmpPattern = ".~renametmp~%d"

// Executor applies a rename plan entry by entry
type Executor struct {
	backend   storage.Backend
	formatter output.Formatter
	logger    logging.Logger
}

// NewExecutor creates an executor. formatter and logger may not be nil;
// use the null logger and a discard-backed formatter to silence them.
func NewExecutor(backend storage.Backend, formatter output.Formatter, logger logging.Logger) *Executor {
	return &Executor{
		backend:   backend,
		formatter: formatter,
		logger:    logger,
	}
}

// entry tracks one plan pair through the two phases
type entry struct {
	index int
	pair  models.RenamePair
	tmp   string
}

// Execute runs the plan and reports a per-entry outcome for every pair,
// in plan order. Failures during the second phase do not stop the batch;
// a first-phase failure rolls everything back and fails the batch.
func (e *Executor) Execute(ctx context.Context, plan *models.RenamePlan) (*models.RenameReport, error) {
	report := &models.RenameReport{
		PlanID:    plan.ID,
		Dir:       plan.Dir,
		StartTime: time.Now(),
		Results:   make([]models.RenameResult, plan.Len()),
	}

	e.logger.Info(ctx, "executing rename plan", logging.Fields{
		"plan_id": plan.ID,
		"dir":     plan.Dir,
		"entries": plan.Len(),
	})

	e.formatter.Start(plan.Len())
	done := 0

	active := e.precheck(ctx, plan, report, &done)

	// Phase one: move every active source to a unique temporary name.
	// A failure here aborts the batch and undoes prior moves.
	moved, abortErr := e.phaseOne(ctx, active, plan)
	if abortErr != nil {
		e.abort(ctx, plan, report, active, abortErr, &done)
		e.finish(ctx, report)
		return report, nil
	}

	// Phase two: settle temporaries onto their final names, continuing
	// past per-entry failures.
	for _, ent := range moved {
		result := e.settle(ctx, ent)
		report.Results[ent.index] = result
		done++
		e.formatter.Progress(output.ProgressUpdate{
			Result: result, Current: done, Total: plan.Len(),
		})
	}

	e.finish(ctx, report)
	return report, nil
}

// precheck resolves entries that cannot or need not be attempted and
// returns the remaining active ones
func (e *Executor) precheck(ctx context.Context, plan *models.RenamePlan, report *models.RenameReport, done *int) []entry {
	activeSources := make(map[string]bool)
	for _, pair := range plan.Pairs {
		if !pair.IsNoOp() {
			activeSources[platform.FoldName(pair.Source)] = true
		}
	}

	var active []entry
	for i, pair := range plan.Pairs {
		var result models.RenameResult

		switch {
		case pair.IsNoOp():
			result = models.RenameResult{
				Source: pair.Source, Proposed: pair.Proposed,
				Outcome: models.OutcomeSkipped, Error: "name unchanged",
			}

		case !e.exists(ctx, pair.Source):
			result = models.RenameResult{
				Source: pair.Source, Proposed: pair.Proposed,
				Outcome: models.OutcomeNotFound, Error: "source file no longer exists",
			}

		case e.exists(ctx, pair.Proposed) && !activeSources[platform.FoldName(pair.Proposed)]:
			// Destination appeared since planning and nothing in this
			// batch is moving it out of the way
			result = models.RenameResult{
				Source: pair.Source, Proposed: pair.Proposed,
				Outcome: models.OutcomeAlreadyExists, Error: "destination name is already taken",
			}

		default:
			active = append(active, entry{index: i, pair: pair})
			continue
		}

		report.Results[i] = result
		*done++
		e.formatter.Progress(output.ProgressUpdate{
			Result: result, Current: *done, Total: plan.Len(),
		})
		if result.Failed() {
			e.logger.Warn(ctx, "entry not attempted", logging.Fields{
				"source": pair.Source, "outcome": string(result.Outcome),
			})
		}
	}

	return active
}

// phaseOne renames each active source to a temporary name. On failure it
// rolls back every prior move and returns the failure.
func (e *Executor) phaseOne(ctx context.Context, active []entry, plan *models.RenamePlan) ([]entry, error) {
	var moved []entry
	nonce := time.Now().UnixNano()

	for _, ent := range active {
		tmp := ent.pair.Source + fmt.Sprintf(tmpPattern, nonce)
		for i := 0; e.exists(ctx, tmp); i++ {
			tmp = ent.pair.Source + fmt.Sprintf(tmpPattern, nonce) + fmt.Sprintf(".%d", i)
		}

		if err := e.backend.Rename(ctx, ent.pair.Source, tmp); err != nil {
			for i := len(moved) - 1; i >= 0; i-- {
				if rbErr := e.backend.Rename(ctx, moved[i].tmp, moved[i].pair.Source); rbErr != nil {
					e.logger.Error(ctx, "rollback failed", rbErr, logging.Fields{
						"source": moved[i].pair.Source,
					})
				}
			}
			return nil, fmt.Errorf("failed to stage %s: %w", ent.pair.Source, err)
		}

		ent.tmp = tmp
		moved = append(moved, ent)
	}

	return moved, nil
}

// settle renames one staged temporary to its final name, rolling it back
// to the original name on failure
func (e *Executor) settle(ctx context.Context, ent entry) models.RenameResult {
	result := models.RenameResult{
		Source:   ent.pair.Source,
		Proposed: ent.pair.Proposed,
	}

	if err := e.backend.Rename(ctx, ent.tmp, ent.pair.Proposed); err != nil {
		result.Outcome = classify(err)
		result.Error = err.Error()
		e.logger.Error(ctx, "rename failed", err, logging.Fields{
			"source": ent.pair.Source, "proposed": ent.pair.Proposed,
		})
		if rbErr := e.backend.Rename(ctx, ent.tmp, ent.pair.Source); rbErr != nil {
			e.logger.Error(ctx, "rollback failed", rbErr, logging.Fields{
				"source": ent.pair.Source, "tmp": ent.tmp,
			})
		}
		return result
	}

	result.Outcome = models.OutcomeRenamed
	e.logger.Info(ctx, "renamed", logging.Fields{
		"source": ent.pair.Source, "proposed": ent.pair.Proposed,
	})
	return result
}

// abort records a phase-one failure: the failing batch was rolled back,
// so every pending entry is reported rather than silently dropped
func (e *Executor) abort(ctx context.Context, plan *models.RenamePlan, report *models.RenameReport, active []entry, cause error, done *int) {
	e.logger.Error(ctx, "batch aborted", cause, logging.Fields{"plan_id": plan.ID})

	for _, ent := range active {
		result := models.RenameResult{
			Source:   ent.pair.Source,
			Proposed: ent.pair.Proposed,
			Outcome:  classify(cause),
			Error:    cause.Error(),
		}
		if report.Results[ent.index].Outcome == "" {
			report.Results[ent.index] = result
			*done++
			e.formatter.Progress(output.ProgressUpdate{
				Result: result, Current: *done, Total: plan.Len(),
			})
		}
	}
}

func (e *Executor) finish(ctx context.Context, report *models.RenameReport) {
	report.EndTime = time.Now()
	report.Finalize()
	e.formatter.Complete(report)
	e.logger.Info(ctx, "plan finished", logging.Fields{
		"status":  string(report.Status),
		"renamed": report.Stats.Renamed,
		"skipped": report.Stats.Skipped,
		"failed":  report.Stats.Failed,
	})
}

func (e *Executor) exists(ctx context.Context, name string) bool {
	ok, err := e.backend.Exists(ctx, name)
	return err == nil && ok
}

// classify maps a filesystem error to a per-entry outcome
func classify(err error) models.RenameOutcome {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return models.OutcomeNotFound
	case errors.Is(err, fs.ErrPermission):
		return models.OutcomePermissionDenied
	case errors.Is(err, fs.ErrExist):
		return models.OutcomeAlreadyExists
	default:
		return models.OutcomeIOError
	}
}
