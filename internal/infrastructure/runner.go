package infrastructure

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/charmbracelet/log"

	"github.com/eduardo/groundwork/internal/domain"
)

// ExecRunner implements domain.CommandRunnerPort using os/exec
type ExecRunner struct{}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes name with args in dir and waits for it to finish. A
// non-zero exit status is reported through CommandResult, not as an
// error; the error return is reserved for processes that never started.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (domain.CommandResult, error) {
	log.Debug("running command", "dir", dir, "cmd", name, "args", args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := domain.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		result.ExitCode = -1
		return result, err
	}
	return result, nil
}
