package mr

import (
	"errors"
	"fmt"
)

// PushRequiredError means the source branch is unknown to the source remote;
// the message carries the exact push command to run
type PushRequiredError struct {
	Remote string
	Branch string
}

func (e *PushRequiredError) Error() string {
	return fmt.Sprintf(
		"you must push [%s] branch before creating a merge request:\n\tgit push %s %s",
		e.Branch, e.Remote, e.Branch,
	)
}

// ProjectNotFoundError means the remote URL resolved to a path the server
// does not know
type ProjectNotFoundError struct {
	Path string
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("cannot find project [%s]", e.Path)
}

// BranchNotFoundError means a branch is missing on the server-side project
type BranchNotFoundError struct {
	Branch  string
	Project string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("cannot find branch [%s] for project [%s]", e.Branch, e.Project)
}

// NoCommitsError means the equivalence diff between source and target found
// nothing to merge
type NoCommitsError struct {
	Outline string
}

func (e *NoCommitsError) Error() string {
	return "cannot find commits for merge request: " + e.Outline
}

// EmptyTitleError means the draft reached submission without a title
type EmptyTitleError struct{}

func (e *EmptyTitleError) Error() string {
	return "empty [title], specify the title of the merge request"
}

// UserNotFoundError means no user matched the assignee username exactly
type UserNotFoundError struct {
	Username string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("cannot find user [%s]", e.Username)
}

// MalformedCommitLineError means the equivalence diff produced a line that
// does not decompose into state, hash and message. This is a collaborator
// contract violation, not a user error.
type MalformedCommitLineError struct {
	Line string
}

func (e *MalformedCommitLineError) Error() string {
	return fmt.Sprintf("malformed equivalence-diff line: %q", e.Line)
}

// notFounder is implemented by host errors that represent a missing resource
type notFounder interface {
	NotFound() bool
}

func isNotFound(err error) bool {
	var nf notFounder
	return errors.As(err, &nf) && nf.NotFound()
}
