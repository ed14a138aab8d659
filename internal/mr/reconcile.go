package mr

import (
	"strings"

	"github.com/wahlandcase/glmr/internal/models"
)

// Differ produces raw patch-equivalence diff lines between two refs: the
// commits reachable from head that have no content-equivalent commit
// reachable from upstream, one line per commit.
type Differ interface {
	Cherry(head, upstream string) ([]string, error)
}

// Reconcile computes the commits a merge request from head into upstream
// would contain. Each diff line must decompose into a state marker, a hash
// and the message remainder; anything else is a defect in the collaborator
// output and fails loudly instead of being dropped. An empty diff is a valid
// result meaning "nothing to merge".
func Reconcile(d Differ, head, upstream string) ([]models.CommitEntry, error) {
	lines, err := d.Cherry(head, upstream)
	if err != nil {
		return nil, err
	}

	entries := make([]models.CommitEntry, 0, len(lines))
	for _, line := range lines {
		state, hash, message, ok := splitCommitLine(line)
		if !ok {
			return nil, &MalformedCommitLineError{Line: line}
		}
		entries = append(entries, models.NewCommitEntry(hash, message, models.CommitState(state)))
	}
	return entries, nil
}

// splitCommitLine splits on runs of spaces and tabs, keeping everything after
// the second separator as the message
func splitCommitLine(line string) (state, hash, message string, ok bool) {
	rest := strings.TrimLeft(line, " \t")
	var fields []string
	for len(fields) < 2 {
		i := strings.IndexAny(rest, " \t")
		if i < 0 {
			return "", "", "", false
		}
		fields = append(fields, rest[:i])
		rest = strings.TrimLeft(rest[i:], " \t")
	}
	if rest == "" {
		return "", "", "", false
	}
	return fields[0], fields[1], rest, true
}
