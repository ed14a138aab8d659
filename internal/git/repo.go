package git

import (
	"errors"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Repository wraps a local working copy and answers the queries the
// merge-request session needs.
type Repository struct {
	repo *gogit.Repository
	path string
}

// Open opens the repository containing path (walking up to the git root)
func Open(path string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, err
	}
	return &Repository{repo: repo, path: path}, nil
}

// CurrentBranch returns the branch HEAD points at, or DetachedHeadError
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", err
	}
	if !head.Name().IsBranch() {
		return "", &DetachedHeadError{}
	}
	return head.Name().Short(), nil
}

// IsDirty reports whether the working tree has uncommitted changes
func (r *Repository) IsDirty() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, err
	}
	status, err := wt.Status()
	if err != nil {
		return false, err
	}
	return !status.IsClean(), nil
}

// RemoteURL returns the fetch URL of the named remote
func (r *Repository) RemoteURL(name string) (string, error) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return "", &RemoteNotFoundError{Name: name}
		}
		return "", err
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", &RemoteNotFoundError{Name: name}
	}
	return urls[0], nil
}

// TrackingBranch returns the remote-relative name of the upstream configured
// for a local branch, or "" when the branch has no upstream
func (r *Repository) TrackingBranch(local string) string {
	cfg, err := r.repo.Config()
	if err != nil {
		return ""
	}
	branch, ok := cfg.Branches[local]
	if !ok || branch.Merge == "" {
		return ""
	}
	return branch.Merge.Short()
}

// RemoteRefExists checks whether the remote-tracking ref remote/branch is
// known to the local repository
func (r *Repository) RemoteRefExists(remote, branch string) (bool, error) {
	_, err := r.repo.Reference(plumbing.NewRemoteReferenceName(remote, branch), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
