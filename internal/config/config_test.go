package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GitLab.SourceRemote != "origin" || cfg.GitLab.TargetRemote != "origin" {
		t.Errorf("expected origin remotes, got %+v", cfg.GitLab)
	}
	if !cfg.GitLab.MrRemoveBranch {
		t.Error("removing the source branch should default to true")
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.Timeout())
	}
	if cfg.GitLab.URL != "" || cfg.GitLab.PrivateToken != "" {
		t.Errorf("url and token have no defaults, got %+v", cfg.GitLab)
	}
}

func TestLoad_SharedFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, SharedFile), `
[gitlab]
url = "https://gitlab.example.com"
source_remote = "upstream"
timeout_seconds = 30
mr_edit = true
`)

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GitLab.URL != "https://gitlab.example.com" {
		t.Errorf("expected url from file, got %q", cfg.GitLab.URL)
	}
	if cfg.GitLab.SourceRemote != "upstream" {
		t.Errorf("expected source_remote override, got %q", cfg.GitLab.SourceRemote)
	}
	if cfg.GitLab.TargetRemote != "origin" {
		t.Errorf("untouched keys keep defaults, got %q", cfg.GitLab.TargetRemote)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.Timeout())
	}
	if !cfg.GitLab.MrEdit {
		t.Error("expected mr_edit override")
	}
}

func TestLoad_PrivateOverlay(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, SharedFile), `
[gitlab]
url = "https://gitlab.example.com"
`)
	writeFile(t, filepath.Join(root, PrivateFile), `
[gitlab]
private_token = "secret"
url = "https://internal.example.com"
`)

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GitLab.PrivateToken != "secret" {
		t.Errorf("expected token from the private overlay, got %q", cfg.GitLab.PrivateToken)
	}
	if cfg.GitLab.URL != "https://internal.example.com" {
		t.Errorf("the private overlay wins, got %q", cfg.GitLab.URL)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, SharedFile), "not toml {{{")

	if _, err := Load(root); err == nil {
		t.Fatal("expected an error for malformed toml")
	}
}

func TestTimeout_NonPositiveFallsBack(t *testing.T) {
	cfg := Default()
	cfg.GitLab.TimeoutSeconds = 0
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("expected fallback timeout, got %v", cfg.Timeout())
	}
	cfg.GitLab.TimeoutSeconds = -1
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("expected fallback timeout, got %v", cfg.Timeout())
	}
}

func TestTokenPageURL(t *testing.T) {
	cfg := Default()
	cfg.GitLab.URL = "https://gitlab.example.com"
	if got := cfg.TokenPageURL(); got != "https://gitlab.example.com/profile" {
		t.Errorf("unexpected token page: %q", got)
	}
}

func TestEditorCommand(t *testing.T) {
	cfg := Default()
	cfg.GitLab.Editor = "vim"
	t.Setenv("EDITOR", "emacs")
	if got := cfg.EditorCommand(); got != "vim" {
		t.Errorf("config editor wins, got %q", got)
	}

	cfg.GitLab.Editor = ""
	if got := cfg.EditorCommand(); got != "emacs" {
		t.Errorf("$EDITOR is the fallback, got %q", got)
	}

	t.Setenv("EDITOR", "")
	if got := cfg.EditorCommand(); got != "nano" {
		t.Errorf("nano is the last resort, got %q", got)
	}
}

func TestSaveShared(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, SharedFile)

	if err := SaveShared(path, "https://gitlab.example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GitLab.URL != "https://gitlab.example.com" {
		t.Errorf("expected the saved url, got %q", cfg.GitLab.URL)
	}
	if !cfg.GitLab.MrRemoveBranch {
		t.Error("the saved file should carry the defaults")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "private_token") {
		t.Error("the shared file must never carry a token")
	}
}

func TestSavePrivateToken(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, PrivateFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}

	if err := SavePrivateToken(path, "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GitLab.PrivateToken != "secret" {
		t.Errorf("expected the saved token, got %q", cfg.GitLab.PrivateToken)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("the token file must be private, got %v", info.Mode().Perm())
	}
}

func TestSavePrivateToken_PreservesOtherKeys(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, PrivateFile)
	writeFile(t, path, `
[gitlab]
editor = "vim"
`)

	if err := SavePrivateToken(path, "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GitLab.PrivateToken != "secret" {
		t.Errorf("expected the saved token, got %q", cfg.GitLab.PrivateToken)
	}
	if cfg.GitLab.Editor != "vim" {
		t.Errorf("existing keys must survive, got %q", cfg.GitLab.Editor)
	}
}
