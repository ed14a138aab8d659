package models

// AcceptOptions controls how an existing merge request is accepted
type AcceptOptions struct {
	MergeWhenPipelineSucceeds bool `json:"merge_when_pipeline_succeeds"`
	ShouldRemoveSourceBranch  bool `json:"should_remove_source_branch"`
}
