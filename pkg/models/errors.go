package models

import (
	"strings"
)

// PlanErrorKind categorizes why a plan was rejected
type PlanErrorKind string

const (
	// ErrEmptySelection indicates no files were chosen
	ErrEmptySelection PlanErrorKind = "empty-selection"
	// ErrInvalidParameter indicates malformed transformation parameters
	ErrInvalidParameter PlanErrorKind = "invalid-parameter"
	// ErrInvalidName indicates a proposed name would be empty or a
	// reserved token
	ErrInvalidName PlanErrorKind = "invalid-name"
	// ErrIllegalCharacter indicates a proposed name would contain
	// characters forbidden by common filesystem conventions
	ErrIllegalCharacter PlanErrorKind = "illegal-character"
	// ErrCollision indicates two proposed names coincide, or a proposed
	// name matches an existing entry that is not being renamed
	ErrCollision PlanErrorKind = "collision"
)

// PlanError rejects a whole plan. Names lists the offending source file
// names in selection order so a caller can highlight them; it is empty for
// selection and parameter errors, which are not tied to a particular name.
type PlanError struct {
	Kind    PlanErrorKind
	Names   []string
	Message string
}

func (e *PlanError) Error() string {
	if len(e.Names) == 0 {
		return string(e.Kind) + ": " + e.Message
	}
	return string(e.Kind) + ": " + e.Message + " (" + strings.Join(e.Names, ", ") + ")"
}

// IsPlanError extracts a *PlanError from err, if it is one
func IsPlanError(err error) (*PlanError, bool) {
	pe, ok := err.(*PlanError)
	return pe, ok
}

// ValidationError describes an invalid configuration value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
