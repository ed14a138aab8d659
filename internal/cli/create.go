package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wahlandcase/glmr/internal/config"
	"github.com/wahlandcase/glmr/internal/git"
	"github.com/wahlandcase/glmr/internal/gitlab"
	"github.com/wahlandcase/glmr/internal/mr"
)

type createOptions struct {
	sourceBranch   string
	sourceRemote   string
	targetBranch   string
	targetRemote   string
	message        string
	title          string
	edit           bool
	assignee       string
	acceptMerge    bool
	autoMerge      bool
	noAcceptMerge  bool
	removeBranch   bool
	noRemoveBranch bool
}

func newCreateCmd() *cobra.Command {
	var opts createOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a merge request",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.sourceBranch, "source-branch", "s", "", "Source branch for the merge request")
	f.StringVar(&opts.sourceRemote, "source-remote", "", "Source remote for the merge request")
	f.StringVarP(&opts.targetBranch, "target-branch", "t", "", "Target branch for the merge request")
	f.StringVar(&opts.targetRemote, "target-remote", "", "Target remote for the merge request")
	f.StringVarP(&opts.message, "message", "m", "", "Title of the merge request")
	f.StringVar(&opts.title, "title", "", "Alias for --message")
	f.BoolVarP(&opts.edit, "edit", "e", false, "Run an editor on the merge request data before submitting")
	f.StringVarP(&opts.assignee, "assignee", "A", "", "Assign the merge request to a reviewer")
	f.BoolVarP(&opts.acceptMerge, "accept-merge", "a", false, "Merge automatically when the pipeline succeeds")
	f.BoolVar(&opts.autoMerge, "auto-merge", false, "Alias for --accept-merge")
	f.BoolVar(&opts.noAcceptMerge, "no-accept-merge", false, "Disable automatic merge (overrides config and --accept-merge)")
	f.BoolVarP(&opts.removeBranch, "remove-branch", "R", false, "Delete the source branch after merge")
	f.BoolVar(&opts.noRemoveBranch, "no-remove-branch", false, "Keep the source branch after merge (overrides config and --remove-branch)")

	return cmd
}

func runCreate(opts createOptions) error {
	repo, err := git.Open(".")
	if err != nil {
		return fmt.Errorf("not a git repository: %w", err)
	}

	in := bufio.NewReader(os.Stdin)
	cfg, err := bootstrap(in, ".")
	if err != nil {
		return err
	}

	client := gitlab.NewClient(cfg.GitLab.URL, cfg.GitLab.PrivateToken, cfg.Timeout())
	editor := &mr.ExternalEditor{Command: cfg.EditorCommand()}

	session := mr.NewSession(repo, client, editor, sessionOptions(opts, cfg), in, os.Stdout)
	code, err := session.Run()
	if err != nil {
		return err
	}
	if code != 0 {
		return exitCodeError{code: code}
	}
	return nil
}

// sessionOptions merges the flags over the config defaults; a negation flag
// wins over its positive counterpart
func sessionOptions(opts createOptions, cfg *config.Config) mr.Options {
	message := opts.message
	if message == "" {
		message = opts.title
	}

	acceptMerge := cfg.GitLab.MrAcceptMerge || opts.acceptMerge || opts.autoMerge
	if opts.noAcceptMerge {
		acceptMerge = false
	}
	removeBranch := cfg.GitLab.MrRemoveBranch || opts.removeBranch
	if opts.noRemoveBranch {
		removeBranch = false
	}

	sourceRemote := opts.sourceRemote
	if sourceRemote == "" {
		sourceRemote = cfg.GitLab.SourceRemote
	}
	targetRemote := opts.targetRemote
	if targetRemote == "" {
		targetRemote = cfg.GitLab.TargetRemote
	}

	return mr.Options{
		SourceBranch: opts.sourceBranch,
		SourceRemote: sourceRemote,
		TargetBranch: opts.targetBranch,
		TargetRemote: targetRemote,
		Message:      message,
		Edit:         cfg.GitLab.MrEdit || opts.edit,
		Assignee:     opts.assignee,
		AcceptMerge:  acceptMerge,
		RemoveBranch: removeBranch,
	}
}

// bootstrap makes sure the shared config and the private token exist,
// prompting for whatever is missing, and returns the loaded config
func bootstrap(in *bufio.Reader, root string) (*config.Config, error) {
	sharedPath := filepath.Join(root, config.SharedFile)
	if _, err := os.Stat(sharedPath); errors.Is(err, fs.ErrNotExist) {
		url := promptLine(in, "Enter gitlab server url: ")
		if url == "" {
			return nil, errors.New("a gitlab server url is required")
		}
		if err := config.SaveShared(sharedPath, url); err != nil {
			return nil, err
		}
		fmt.Printf("Config was successfully saved into %s file.\n"+
			"Do not forget to include it into the git index.\n", config.SharedFile)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	if cfg.GitLab.URL == "" {
		return nil, errors.New("no gitlab url configured, set [gitlab] url in " + config.SharedFile)
	}

	if cfg.GitLab.PrivateToken == "" {
		fmt.Printf("Copy your private token from this page:\n\t%s\n\n", cfg.TokenPageURL())
		token := promptLine(in, "And paste it here: ")
		if token == "" {
			return nil, errors.New("a private token is required")
		}
		if err := config.SavePrivateToken(filepath.Join(root, config.PrivateFile), token); err != nil {
			return nil, err
		}
		fmt.Printf("Config file %s was successfully written.\n", config.PrivateFile)
		cfg.GitLab.PrivateToken = token
	}

	return cfg, nil
}

func promptLine(in *bufio.Reader, question string) string {
	fmt.Print(question)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
