package models

import (
	"time"
)

// RenamePlan is the full ordered set of proposed renames for one
// confirmation cycle. Pairs preserve the user's selection order, which
// sequential numbering depends on. A plan is computed fresh for every
// cycle and discarded afterwards; it is never persisted.
type RenamePlan struct {
	// ID uniquely identifies this planning cycle
	ID string

	// Dir is the absolute path of the working directory
	Dir string

	// DirName is the base name of the working directory
	// (used by the folder-name transformation)
	DirName string

	// Pairs are the proposed renames in selection order
	Pairs []RenamePair

	// HasNoOps is set when at least one pair leaves its name unchanged.
	// Advisory only; the caller may warn the user before executing.
	HasNoOps bool

	// CreatedAt is when the plan was computed
	CreatedAt time.Time
}

// Len returns the number of entries in the plan
func (p *RenamePlan) Len() int {
	return len(p.Pairs)
}

// ChangeCount returns the number of entries that actually change a name
func (p *RenamePlan) ChangeCount() int {
	n := 0
	for _, pair := range p.Pairs {
		if !pair.IsNoOp() {
			n++
		}
	}
	return n
}

// NoOpCount returns the number of entries whose name is unchanged
func (p *RenamePlan) NoOpCount() int {
	return len(p.Pairs) - p.ChangeCount()
}
