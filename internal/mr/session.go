// Package mr implements the merge-request workflow: reconciling commits
// between branches, collecting the request data through a prompt or editor,
// and submitting it to the host.
package mr

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/wahlandcase/glmr/internal/models"
	"github.com/wahlandcase/glmr/internal/ui"
)

// DefaultRemote is used when neither a flag nor the config names a remote
const DefaultRemote = "origin"

// Repository is the version-control access the session needs
type Repository interface {
	CurrentBranch() (string, error)
	IsDirty() (bool, error)
	RemoteURL(name string) (string, error)
	TrackingBranch(local string) string
	RemoteRefExists(remote, branch string) (bool, error)
	Differ
}

// Host is the server-side surface the session needs. Implementations report
// missing resources with errors exposing NotFound() bool.
type Host interface {
	Project(path string) (*models.Project, error)
	Branch(projectID int, name string) (*models.Branch, error)
	UserByUsername(username string) (*models.User, error)
	CreateMergeRequest(projectID int, payload models.MergeRequestPayload) (*models.MergeRequest, error)
	CommitStatuses(projectID int, sha string) ([]models.CommitStatus, error)
	AcceptMergeRequest(projectID, iid int, opts models.AcceptOptions) error
}

// Options carries the per-invocation settings, already merged from flags and
// config by the caller
type Options struct {
	SourceBranch string
	SourceRemote string
	TargetBranch string
	TargetRemote string
	Message      string
	Edit         bool
	Assignee     string
	AcceptMerge  bool
	RemoveBranch bool
}

// Session drives one merge-request creation from branch resolution through
// submission and the optional auto-merge. It is single-use: Run consumes the
// draft exactly once.
type Session struct {
	repo   Repository
	host   Host
	editor Editor
	opts   Options
	in     *bufio.Reader
	out    io.Writer
}

// NewSession wires a session with explicit collaborators. Prompt input and
// output are injected so tests can script the dialog.
func NewSession(repo Repository, host Host, editor Editor, opts Options, in io.Reader, out io.Writer) *Session {
	if opts.SourceRemote == "" {
		opts.SourceRemote = DefaultRemote
	}
	if opts.TargetRemote == "" {
		opts.TargetRemote = DefaultRemote
	}
	return &Session{
		repo:   repo,
		host:   host,
		editor: editor,
		opts:   opts,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Run executes the workflow. It returns (1, nil) when the user declines a
// confirmation or cancels the preview: that is a normal early return, not an
// error. Fatal failures come back as a non-nil error and the caller maps
// them to a non-zero exit.
func (s *Session) Run() (int, error) {
	sourcePath, err := s.projectPath(s.opts.SourceRemote)
	if err != nil {
		return 1, err
	}
	targetPath, err := s.projectPath(s.opts.TargetRemote)
	if err != nil {
		return 1, err
	}

	dirty, err := s.repo.IsDirty()
	if err != nil {
		return 1, err
	}
	if dirty {
		if !s.confirm("There are uncommitted changes. Do you want to continue? [y/N]: ") {
			return 1, nil
		}
	}

	sourceBranch := s.opts.SourceBranch
	if sourceBranch == "" {
		if sourceBranch, err = s.repo.CurrentBranch(); err != nil {
			return 1, err
		}
	}

	sourceProject, err := s.host.Project(sourcePath)
	if err != nil {
		if isNotFound(err) {
			return 1, &ProjectNotFoundError{Path: sourcePath}
		}
		return 1, err
	}

	remoteBranch := s.repo.TrackingBranch(sourceBranch)
	if remoteBranch == "" {
		remoteBranch = sourceBranch
	}

	pushed, err := s.repo.RemoteRefExists(s.opts.SourceRemote, remoteBranch)
	if err != nil {
		return 1, err
	}
	if !pushed {
		return 1, &PushRequiredError{Remote: s.opts.SourceRemote, Branch: remoteBranch}
	}
	if err := s.checkBranch(sourceProject, remoteBranch); err != nil {
		return 1, err
	}

	code, err := s.checkLocalCommits(sourceBranch, remoteBranch)
	if code != 0 || err != nil {
		return code, err
	}

	targetProject, err := s.host.Project(targetPath)
	if err != nil {
		if isNotFound(err) {
			return 1, &ProjectNotFoundError{Path: targetPath}
		}
		return 1, err
	}
	targetBranch := s.opts.TargetBranch
	if targetBranch == "" {
		targetBranch = targetProject.DefaultBranch
	}

	draft := models.Draft{
		SourceBranch:       remoteBranch,
		TargetBranch:       targetBranch,
		TargetProjectID:    targetProject.ID,
		Assignee:           s.opts.Assignee,
		RemoveSourceBranch: s.opts.RemoveBranch,
	}
	outline := Outline(draft, *sourceProject, *targetProject)

	commits, err := Reconcile(s.repo, s.opts.SourceRemote+"/"+remoteBranch, targetBranch)
	if err != nil {
		return 1, err
	}
	if len(commits) == 0 {
		return 1, &NoCommitsError{Outline: outline}
	}

	draft.Title = defaultTitle(s.opts.Message, commits, remoteBranch)

	if s.opts.Edit {
		if err := s.editor.Edit(&draft, outline, commits); err != nil {
			return 1, err
		}
	} else {
		answer := s.preview(draft, commits, outline)
		switch {
		case isEdit(answer):
			if err := s.editor.Edit(&draft, outline, commits); err != nil {
				return 1, err
			}
		case !isYes(answer):
			return 1, nil
		}
	}

	created, err := s.submit(&draft, sourceProject, targetProject)
	if err != nil {
		return 1, err
	}

	if s.opts.AcceptMerge {
		if err := s.acceptMerge(sourceProject, remoteBranch, created); err != nil {
			return 1, err
		}
	}
	return 0, nil
}

// projectPath resolves a remote name to its namespace/project path
func (s *Session) projectPath(remote string) (string, error) {
	url, err := s.repo.RemoteURL(remote)
	if err != nil {
		return "", err
	}
	return ProjectPathFromURL(url)
}

// checkBranch verifies a branch exists on a host project
func (s *Session) checkBranch(project *models.Project, branch string) error {
	if _, err := s.host.Branch(project.ID, branch); err != nil {
		if isNotFound(err) {
			return &BranchNotFoundError{Branch: branch, Project: project.PathWithNamespace}
		}
		return err
	}
	return nil
}

// checkLocalCommits warns about commits that exist locally but not on the
// source remote yet; the user may want to push before continuing
func (s *Session) checkLocalCommits(sourceBranch, remoteBranch string) (int, error) {
	local, err := Reconcile(s.repo, sourceBranch, s.opts.SourceRemote+"/"+remoteBranch)
	if err != nil {
		return 1, err
	}
	if len(local) == 0 {
		return 0, nil
	}

	lines := make([]string, 0, len(local))
	for _, c := range local {
		lines = append(lines, fmt.Sprintf("\t%s %s", ui.Hash(c.ShortHash()), c.Message))
	}
	fmt.Fprintf(s.out, "%s\n%s\n%s\n",
		ui.Notice("Found local commits:"),
		strings.Join(lines, "\n"),
		ui.Notice("Possibly you want to push them."),
	)
	if !s.confirm("Do you want to continue? [y/N]: ") {
		return 1, nil
	}
	return 0, nil
}

// defaultTitle picks the draft title: explicit message, else the single
// commit's message, else the remote branch name
func defaultTitle(message string, commits []models.CommitEntry, remoteBranch string) string {
	if message != "" {
		return message
	}
	if len(commits) == 1 {
		return commits[0].Message
	}
	return remoteBranch
}

// preview renders the draft and reads one confirmation line; an empty answer
// counts as yes
func (s *Session) preview(draft models.Draft, commits []models.CommitEntry, outline string) string {
	var b strings.Builder
	b.WriteString("\n# You are creating a merge request:\n")
	b.WriteString("#\t" + ui.Outline(outline) + "\n")
	b.WriteString("#\n")
	b.WriteString("# Title:\n")
	b.WriteString("# " + draft.Title + "\n")
	b.WriteString("#\n")
	if draft.Assignee != "" {
		b.WriteString("# Assignee:\n")
		b.WriteString("# " + draft.Assignee + "\n")
		b.WriteString("#\n")
	}
	if draft.Description != "" {
		b.WriteString("# Description:\n")
		b.WriteString("# " + draft.Description + "\n")
		b.WriteString("#\n")
	}
	b.WriteString("# Next commits will be included in the merge request:\n")
	b.WriteString("#\n")
	b.WriteString(formatCommitsStyled(commits, "#\t") + "\n")
	b.WriteString("#\n\n")
	fmt.Fprint(s.out, b.String())

	answer := s.prompt("Do you really want to create the merge request? [Y/n/e]: ")
	if answer == "" {
		return "y"
	}
	return answer
}

// submit resolves the assignee, validates the draft and creates the merge
// request on the host
func (s *Session) submit(draft *models.Draft, sourceProject, targetProject *models.Project) (*models.MergeRequest, error) {
	var assigneeID int
	if draft.Assignee != "" {
		user, err := s.host.UserByUsername(draft.Assignee)
		if err != nil {
			if isNotFound(err) {
				return nil, &UserNotFoundError{Username: draft.Assignee}
			}
			return nil, err
		}
		assigneeID = user.ID
		draft.Assignee = ""
	}

	if err := s.checkBranch(sourceProject, draft.SourceBranch); err != nil {
		return nil, err
	}
	if err := s.checkBranch(targetProject, draft.TargetBranch); err != nil {
		return nil, err
	}
	if draft.Title == "" {
		return nil, &EmptyTitleError{}
	}

	payload := models.MergeRequestPayload{
		SourceBranch:       draft.SourceBranch,
		TargetBranch:       draft.TargetBranch,
		TargetProjectID:    draft.TargetProjectID,
		Title:              draft.Title,
		Description:        draft.Description,
		AssigneeID:         assigneeID,
		RemoveSourceBranch: draft.RemoveSourceBranch,
	}
	created, err := s.host.CreateMergeRequest(sourceProject.ID, payload)
	if err != nil {
		return nil, fmt.Errorf("error creating merge request: %w", err)
	}

	fmt.Fprintf(s.out, "%s\n\t%s %s\n\n",
		ui.Success("Successfully created merge request:"),
		ui.Label("Merge request URL:"), created.WebURL,
	)
	return created, nil
}

// acceptMerge asks the host to merge the created request, unless the tip of
// the source branch carries a failed status that is not allowed to fail. The
// merge request already exists at this point, so a skipped or failed merge
// leaves the created URL usable.
func (s *Session) acceptMerge(sourceProject *models.Project, remoteBranch string, created *models.MergeRequest) error {
	branch, err := s.host.Branch(sourceProject.ID, remoteBranch)
	if err != nil {
		return fmt.Errorf("error accepting merge request: %w", err)
	}
	statuses, err := s.host.CommitStatuses(sourceProject.ID, branch.Commit.ID)
	if err != nil {
		return fmt.Errorf("error accepting merge request: %w", err)
	}
	for _, status := range statuses {
		if status.Blocking() {
			fmt.Fprintln(s.out, ui.Notice("Cannot accept the merge request because there are failed builds."))
			return nil
		}
	}

	opts := models.AcceptOptions{
		MergeWhenPipelineSucceeds: true,
		ShouldRemoveSourceBranch:  s.opts.RemoveBranch,
	}
	if err := s.host.AcceptMergeRequest(sourceProject.ID, created.IID, opts); err != nil {
		return fmt.Errorf("error accepting merge request: %w", err)
	}

	fmt.Fprintf(s.out, "%s\n\tAutomatic merge: %t\n\tRemove source branch: %t\n",
		ui.Success("Merge request was successfully updated:"),
		true, s.opts.RemoveBranch,
	)
	return nil
}

// prompt writes the question and reads one trimmed line; EOF reads as empty
func (s *Session) prompt(question string) string {
	fmt.Fprint(s.out, question)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func (s *Session) confirm(question string) bool {
	return isYes(s.prompt(question))
}

func isYes(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	return a == "y" || a == "yes"
}

func isEdit(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	return a == "e" || a == "edit"
}
