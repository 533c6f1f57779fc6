package setup

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	gogit "github.com/go-git/go-git/v5"

	"github.com/eduardo/groundwork/internal/domain"
)

// GitPhase initializes a git repository in the target directory. A
// directory that is already a repository counts as success.
type GitPhase struct {
	location string
	runner   domain.CommandRunnerPort
}

func NewGitPhase(location string, runner domain.CommandRunnerPort) *GitPhase {
	return &GitPhase{location: location, runner: runner}
}

func (p *GitPhase) Name() string { return "git" }

func (p *GitPhase) Create(ctx context.Context) error {
	if _, err := gogit.PlainOpen(p.location); err == nil {
		log.Debug("target is already a git repository", "dir", p.location)
		return nil
	}

	result, err := p.runner.Run(ctx, p.location, "git", "init")
	if err != nil {
		return domain.SubprocessError(result.Output(), fmt.Errorf("failed to run git init: %w", err))
	}
	if result.ExitCode != 0 {
		return domain.SubprocessError(result.Output(),
			fmt.Errorf("git init exited with code %d", result.ExitCode))
	}
	return nil
}
