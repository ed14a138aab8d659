package models

// MergeRequestPayload is the submission body for creating a merge request.
// There is no assignee-by-username field on purpose: the username is resolved
// to AssigneeID before submission, so the payload can never carry both.
type MergeRequestPayload struct {
	SourceBranch       string `json:"source_branch"`
	TargetBranch       string `json:"target_branch"`
	TargetProjectID    int    `json:"target_project_id"`
	Title              string `json:"title"`
	Description        string `json:"description,omitempty"`
	AssigneeID         int    `json:"assignee_id,omitempty"`
	RemoveSourceBranch bool   `json:"remove_source_branch"`
}
