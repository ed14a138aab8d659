package git

import "strings"

// GitError provides better context for git command failures
type GitError struct {
	Command string
	Output  string
}

func (e *GitError) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		out = "command failed"
	}
	return "git " + e.Command + ": " + out
}

// DetachedHeadError indicates HEAD does not point at a named branch
type DetachedHeadError struct{}

func (e *DetachedHeadError) Error() string {
	return "the repo is in detached state, cannot find out source branch"
}

// RemoteNotFoundError indicates the repository has no remote with this name
type RemoteNotFoundError struct {
	Name string
}

func (e *RemoteNotFoundError) Error() string {
	return "cannot find remote [" + e.Name + "]"
}
