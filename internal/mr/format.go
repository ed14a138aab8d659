package mr

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/glmr/internal/models"
	"github.com/wahlandcase/glmr/internal/ui"
)

// Outline renders the human-readable summary of where a draft goes:
// "namespace/project:branch -> namespace/project:branch"
func Outline(d models.Draft, source, target models.Project) string {
	return fmt.Sprintf("%s:%s -> %s:%s",
		source.PathWithNamespace, d.SourceBranch,
		target.PathWithNamespace, d.TargetBranch,
	)
}

// FormatCommits renders one commit per line as "<state> <hash8> <message>",
// each line starting with prefix. Output is unstyled so it can go into the
// edit buffer.
func FormatCommits(entries []models.CommitEntry, prefix string) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s%s %s %s", prefix, e.State, e.ShortHash(), e.Message))
	}
	return strings.Join(lines, "\n")
}

// formatCommitsStyled is FormatCommits with the hashes colored, for prompts
func formatCommitsStyled(entries []models.CommitEntry, prefix string) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s%s %s %s", prefix, e.State, ui.Hash(e.ShortHash()), e.Message))
	}
	return strings.Join(lines, "\n")
}
