package models

// StatusFailed is the build/pipeline state that blocks an automatic merge
const StatusFailed = "failed"

// CommitStatus is one build/pipeline status attached to a commit
type CommitStatus struct {
	Name         string `json:"name"`
	Status       string `json:"status"`
	AllowFailure bool   `json:"allow_failure"`
}

// Blocking reports whether this status should prevent an automatic merge
func (s CommitStatus) Blocking() bool {
	return s.Status == StatusFailed && !s.AllowFailure
}
