// Package plan computes and validates batch rename plans. The engine is a
// pure function of its inputs: it performs no filesystem I/O and keeps no
// state between calls. Callers supply the directory listing and selection
// explicitly, execute the plan elsewhere, and discard it afterwards.
package plan

import (
	"github.com/fastrenamer/fastrenamer/internal/platform"
	"github.com/fastrenamer/fastrenamer/pkg/models"
)

// Request carries everything the engine needs for one planning pass.
type Request struct {
	// Selected are the chosen file names, in the user's selection order.
	// Sequential numbering follows this order.
	Selected []string

	// Existing is the full listing of the working directory, used for
	// collision checks against files that are not being renamed
	Existing []string

	// DirName is the base name of the working directory, consumed by the
	// folder-name transformation
	DirName string

	// Spec selects and parameterizes the transformation
	Spec models.TransformSpec
}

// Compute builds a validated rename plan from req. On success the returned
// plan preserves selection order and is guaranteed collision-free, both
// internally and against unselected directory entries. On failure the error
// is a *models.PlanError naming the offending entries; the whole plan is
// rejected as a unit and nothing is partially applied.
func Compute(req Request) (*models.RenamePlan, error) {
	if len(req.Selected) == 0 {
		return nil, &models.PlanError{
			Kind:    models.ErrEmptySelection,
			Message: "no files selected",
		}
	}

	if err := req.Spec.Validate(); err != nil {
		return nil, err
	}

	existing := make(map[string]bool, len(req.Existing))
	for _, name := range req.Existing {
		existing[platform.FoldName(name)] = true
	}

	var missing []string
	for _, name := range req.Selected {
		if !existing[platform.FoldName(name)] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &models.PlanError{
			Kind:    models.ErrInvalidParameter,
			Names:   missing,
			Message: "selected file is not in the directory listing",
		}
	}

	seen := make(map[string]bool, len(req.Selected))
	var duplicates []string
	for _, name := range req.Selected {
		key := platform.FoldName(name)
		if seen[key] {
			duplicates = append(duplicates, name)
			continue
		}
		seen[key] = true
	}
	if len(duplicates) > 0 {
		return nil, &models.PlanError{
			Kind:    models.ErrInvalidParameter,
			Names:   duplicates,
			Message: "file selected more than once",
		}
	}

	pairs := make([]models.RenamePair, len(req.Selected))
	for i, name := range req.Selected {
		pairs[i] = models.RenamePair{
			Source:   name,
			Proposed: proposedName(name, i, req),
		}
	}

	if err := validatePairs(pairs, req); err != nil {
		return nil, err
	}

	p := &models.RenamePlan{
		DirName: req.DirName,
		Pairs:   pairs,
	}
	for _, pair := range pairs {
		if pair.IsNoOp() {
			p.HasNoOps = true
			break
		}
	}

	return p, nil
}
