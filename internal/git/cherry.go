package git

import (
	"os/exec"
	"strings"
)

// Cherry runs the patch-equivalence diff between two refs using the git CLI
// (go-git has no cherry primitive). It returns one raw output line per commit
// of head that has no patch-equivalent commit reachable from upstream,
// preserving git's output order. An empty slice means there is nothing to
// merge.
func (r *Repository) Cherry(head, upstream string) ([]string, error) {
	cmd := exec.Command("git", "cherry", "-v", upstream, head)
	cmd.Dir = r.path

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, &GitError{Command: "cherry", Output: string(output)}
	}

	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return nil, nil
	}
	return strings.Split(trimmed, "\n"), nil
}
