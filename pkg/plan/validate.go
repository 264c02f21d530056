package plan

import (
	"fmt"

	"github.com/fastrenamer/fastrenamer/internal/platform"
	"github.com/fastrenamer/fastrenamer/pkg/models"
)

// validatePairs checks the generated names in a fixed order; the first
// violated rule rejects the plan, listing every source name that violates
// that rule.
func validatePairs(pairs []models.RenamePair, req Request) error {
	if err := checkInvalidNames(pairs); err != nil {
		return err
	}
	if err := checkIllegalChars(pairs); err != nil {
		return err
	}
	if err := checkSelfCollisions(pairs); err != nil {
		return err
	}
	return checkExternalCollisions(pairs, req)
}

func checkInvalidNames(pairs []models.RenamePair) error {
	var offenders []string
	for _, p := range pairs {
		if invalidName(p.Proposed) {
			offenders = append(offenders, p.Source)
		}
	}
	if len(offenders) > 0 {
		return &models.PlanError{
			Kind:    models.ErrInvalidName,
			Names:   offenders,
			Message: "proposed name is not a valid file name",
		}
	}
	return nil
}

func invalidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return true
	}
	if platform.HasUnsafeEdge(name) || len(name) > platform.MaxNameLength {
		return true
	}
	base, _ := SplitName(name)
	return platform.IsReservedDeviceName(base)
}

func checkIllegalChars(pairs []models.RenamePair) error {
	var offenders []string
	var char rune
	for _, p := range pairs {
		if c := platform.IllegalCharIn(p.Proposed); c != 0 {
			if char == 0 {
				char = c
			}
			offenders = append(offenders, p.Source)
		}
	}
	if len(offenders) > 0 {
		return &models.PlanError{
			Kind:    models.ErrIllegalCharacter,
			Names:   offenders,
			Message: fmt.Sprintf("proposed name contains illegal character %q", char),
		}
	}
	return nil
}

func checkSelfCollisions(pairs []models.RenamePair) error {
	seen := make(map[string]string, len(pairs))
	var offenders []string
	for _, p := range pairs {
		key := platform.FoldName(p.Proposed)
		if _, dup := seen[key]; dup {
			offenders = append(offenders, p.Source)
			continue
		}
		seen[key] = p.Source
	}
	if len(offenders) > 0 {
		return &models.PlanError{
			Kind:    models.ErrCollision,
			Names:   offenders,
			Message: "two or more files map to the same proposed name",
		}
	}
	return nil
}

// checkExternalCollisions rejects proposed names that are taken by an
// existing entry outside the selection. A proposed name matching another
// selected file is fine: that file is being renamed away in the same plan.
func checkExternalCollisions(pairs []models.RenamePair, req Request) error {
	selected := make(map[string]bool, len(req.Selected))
	for _, name := range req.Selected {
		selected[platform.FoldName(name)] = true
	}

	untouched := make(map[string]bool, len(req.Existing))
	for _, name := range req.Existing {
		if key := platform.FoldName(name); !selected[key] {
			untouched[key] = true
		}
	}

	var offenders []string
	for _, p := range pairs {
		if p.IsNoOp() {
			continue
		}
		if untouched[platform.FoldName(p.Proposed)] {
			offenders = append(offenders, p.Source)
		}
	}
	if len(offenders) > 0 {
		return &models.PlanError{
			Kind:    models.ErrCollision,
			Names:   offenders,
			Message: "proposed name is taken by a file that is not being renamed",
		}
	}
	return nil
}
