package models

// Branch is a repository branch as returned by the API
type Branch struct {
	Name   string       `json:"name"`
	Commit BranchCommit `json:"commit"`
}

// BranchCommit is the tip commit of a branch
type BranchCommit struct {
	ID string `json:"id"`
}
