package models

// Draft is the in-memory merge request being prepared for one invocation.
// The edit dialog replaces Title, Assignee and Description in place; the
// other fields are fixed once the session has resolved them.
type Draft struct {
	// SourceBranch is the branch name as known on the source remote
	SourceBranch string
	// TargetBranch is the branch the merge request targets
	TargetBranch string
	// TargetProjectID is the resolved id of the target project
	TargetProjectID int
	// Title is required and must be non-empty at submission time
	Title string
	// Assignee is the reviewer username; resolved to an id just before
	// submission and never sent as-is
	Assignee string
	// Description is optional free text
	Description string
	// RemoveSourceBranch asks the server to delete the branch after merge
	RemoveSourceBranch bool
}
