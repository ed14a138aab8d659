package mr

import (
	"fmt"
	"net/url"
	"strings"
)

// ProjectPathFromURL derives the namespace/project path from a remote URL.
// SSH shorthand ("git@host:group/project.git") takes everything after the
// colon; any other form is parsed as a URL and its path component is used.
// Only the last two path segments count, and a single trailing ".git" is
// stripped, so "group/project.git.git" keeps one ".git" in its name.
func ProjectPathFromURL(remoteURL string) (string, error) {
	var path string
	switch {
	case strings.Contains(remoteURL, "://"):
		parsed, err := url.Parse(remoteURL)
		if err != nil {
			return "", fmt.Errorf("cannot parse remote url [%s]: %w", remoteURL, err)
		}
		path = parsed.Path
	case strings.Contains(remoteURL, ":"):
		path = remoteURL[strings.Index(remoteURL, ":")+1:]
	default:
		path = remoteURL
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) > 2 {
		segments = segments[len(segments)-2:]
	}
	path = strings.TrimSuffix(strings.Join(segments, "/"), ".git")
	if path == "" {
		return "", fmt.Errorf("cannot derive project path from remote url [%s]", remoteURL)
	}
	return path, nil
}
