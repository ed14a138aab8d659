// Package config loads the per-repository settings. The shared file lives in
// the repository root and is meant to be committed; the private overlay under
// .git/ carries the token and never enters the index.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	// SharedFile is the committed per-repository config
	SharedFile = "gitlab.toml"
	// PrivateFile holds the private token, kept under .git so it cannot be
	// committed by accident
	PrivateFile = ".git/gitlab.toml"
)

const defaultTimeoutSeconds = 5

type Config struct {
	GitLab GitLabConfig `toml:"gitlab"`
}

type GitLabConfig struct {
	URL            string `toml:"url"`
	PrivateToken   string `toml:"private_token,omitempty"`
	SourceRemote   string `toml:"source_remote"`
	TargetRemote   string `toml:"target_remote"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	MrEdit         bool   `toml:"mr_edit"`
	MrAcceptMerge  bool   `toml:"mr_accept_merge"`
	MrRemoveBranch bool   `toml:"mr_remove_branch"`
	Editor         string `toml:"editor"`
}

func Default() *Config {
	return &Config{
		GitLab: GitLabConfig{
			SourceRemote:   "origin",
			TargetRemote:   "origin",
			TimeoutSeconds: defaultTimeoutSeconds,
			MrRemoveBranch: true,
		},
	}
}

// Load reads the shared file and the private overlay from the repository
// root, in that order, over the defaults. Missing files are fine; the caller
// decides whether an absent URL or token needs bootstrapping.
func Load(root string) (*Config, error) {
	cfg := Default()
	for _, name := range []string{SharedFile, PrivateFile} {
		data, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Timeout is the connect/read timeout for host API calls
func (c *Config) Timeout() time.Duration {
	seconds := c.GitLab.TimeoutSeconds
	if seconds <= 0 {
		seconds = defaultTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}

// TokenPageURL is where the user can copy their private token from
func (c *Config) TokenPageURL() string {
	return c.GitLab.URL + "/profile"
}

// EditorCommand resolves the editor: config, then $EDITOR, then nano
func (c *Config) EditorCommand() string {
	if c.GitLab.Editor != "" {
		return c.GitLab.Editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "nano"
}

// SaveShared writes a fresh shared config with the given server URL and the
// default merge-request settings
func SaveShared(path, url string) error {
	cfg := Default()
	cfg.GitLab.URL = url
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SavePrivateToken writes the token into the private overlay, preserving any
// other keys already present in the file
func SavePrivateToken(path, token string) error {
	raw := map[string]any{}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	section, _ := raw["gitlab"].(map[string]any)
	if section == nil {
		section = map[string]any{}
	}
	section["private_token"] = token
	raw["gitlab"] = section

	out, err := toml.Marshal(raw)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0600)
}
