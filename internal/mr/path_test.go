package mr

import "testing"

func TestProjectPathFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"git@example.com:group/project.git", "group/project"},
		{"git@example.com:group/project.git.git", "group/project.git"},
		{"http://example.com/group/project.git", "group/project"},
		{"https://example.com/group/project.git", "group/project"},
		{"ssh://git@example.com:2222/var/git/group/project.git", "group/project"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := ProjectPathFromURL(tt.url)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestProjectPathFromURL_Empty(t *testing.T) {
	if _, err := ProjectPathFromURL(""); err == nil {
		t.Fatal("expected error for empty url")
	}
}
