package mr

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/wahlandcase/glmr/internal/models"
)

// Editor runs the edit sub-dialog against a draft
type Editor interface {
	Edit(d *models.Draft, outline string, commits []models.CommitEntry) error
}

// ExternalEditor edits the draft by rendering it into a temp file, running a
// terminal editor on it and re-parsing the result
type ExternalEditor struct {
	// Command is the editor executable to run with the file path appended
	Command string
}

func (e *ExternalEditor) Edit(d *models.Draft, outline string, commits []models.CommitEntry) error {
	tf, err := os.CreateTemp("", "glmr-mr-*.txt")
	if err != nil {
		return fmt.Errorf("cannot create edit buffer: %w", err)
	}
	defer os.Remove(tf.Name())

	if _, err := tf.WriteString(EditBuffer(*d, outline, commits)); err != nil {
		tf.Close()
		return fmt.Errorf("cannot write edit buffer: %w", err)
	}
	if err := tf.Close(); err != nil {
		return err
	}

	cmd := exec.Command(e.Command, tf.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s failed: %w", e.Command, err)
	}

	f, err := os.Open(tf.Name())
	if err != nil {
		return fmt.Errorf("cannot read edit buffer back: %w", err)
	}
	defer f.Close()

	fields, err := ParseBuffer(f)
	if err != nil {
		return err
	}
	fields.ApplyTo(d)
	return nil
}

// EditBuffer renders the draft into the labeled plain-text form shown in the
// editor. Lines starting with "#" are comments and survive a round trip.
func EditBuffer(d models.Draft, outline string, commits []models.CommitEntry) string {
	var b strings.Builder
	b.WriteString("Title:\n")
	if d.Title != "" {
		b.WriteString(d.Title + "\n")
	}
	b.WriteString("Assignee:\n")
	if d.Assignee != "" {
		b.WriteString(d.Assignee + "\n")
	}
	b.WriteString("Description:\n")
	if d.Description != "" {
		b.WriteString(d.Description + "\n")
	}
	b.WriteString("\n")
	b.WriteString("# You are creating a merge request:\n")
	b.WriteString("#\t" + outline + "\n")
	b.WriteString("#\n")
	b.WriteString("# Next commits will be included in the merge request:\n")
	b.WriteString("#\n")
	b.WriteString(FormatCommits(commits, "#\t") + "\n")
	b.WriteString("#\n")
	b.WriteString("# Empty title will cancel the merge request.\n")
	return b.String()
}

// BufferFields is the result of parsing an edited buffer
type BufferFields struct {
	Title       string
	Assignee    string
	Description string
}

// ApplyTo overwrites the editable fields of a draft; a label with no content
// lines maps to an empty field (an empty title fails validation later)
func (f BufferFields) ApplyTo(d *models.Draft) {
	d.Title = f.Title
	d.Assignee = f.Assignee
	d.Description = f.Description
}

// ParseBuffer parses the labeled micro-format back out of an edited buffer.
// Grammar: a label line ("Title:", "Assignee:", "Description:", exact match
// after trimming) starts a section collecting every following line until the
// next label or EOF; blank lines and "#" comments are skipped everywhere.
func ParseBuffer(r io.Reader) (BufferFields, error) {
	var fields BufferFields
	targets := map[string]*string{
		"Title:":       &fields.Title,
		"Assignee:":    &fields.Assignee,
		"Description:": &fields.Description,
	}

	var current *string
	var lines []string
	flush := func() {
		if current != nil {
			*current = strings.Join(lines, "\n")
		}
		lines = nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if target, ok := targets[line]; ok {
			flush()
			current = target
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return BufferFields{}, fmt.Errorf("cannot parse edit buffer: %w", err)
	}
	flush()
	return fields, nil
}
