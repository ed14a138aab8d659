package models

// CommitState says how a reconciled commit relates to the upstream branch
type CommitState string

const (
	// CommitIncluded means the commit will be added by the merge request
	CommitIncluded CommitState = "+"
	// CommitEquivalent means a patch-equivalent commit already exists upstream
	CommitEquivalent CommitState = "-"
)

// CommitEntry is one commit from a patch-equivalence diff between two refs
type CommitEntry struct {
	// Hash is the full commit hash
	Hash string
	// Message is the commit message remainder after the state and hash fields
	Message string
	// State marks the commit as new ("+") or already present upstream ("-")
	State CommitState
}

// NewCommitEntry creates a new CommitEntry
func NewCommitEntry(hash, message string, state CommitState) CommitEntry {
	return CommitEntry{
		Hash:    hash,
		Message: message,
		State:   state,
	}
}

// ShortHash returns the hash truncated to 8 characters for display
func (c CommitEntry) ShortHash() string {
	if len(c.Hash) > 8 {
		return c.Hash[:8]
	}
	return c.Hash
}
