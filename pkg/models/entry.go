package models

// FileEntry is a file name known to exist in the working directory at the
// time a plan is computed. Entries never carry path components; the working
// directory is tracked separately on the plan.
type FileEntry = string

// RenamePair maps one selected file to its proposed new name.
type RenamePair struct {
	// Source is the current file name
	Source FileEntry

	// Proposed is the new file name computed by the plan engine
	Proposed string
}

// IsNoOp returns true if the proposed name equals the source name
func (p RenamePair) IsNoOp() bool {
	return p.Source == p.Proposed
}
