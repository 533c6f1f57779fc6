// Package setup contains the ordered phases that build a new project:
// directory structure, package markers, git, virtual environment, file
// contents, and the database branch.
package setup

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/eduardo/groundwork/internal/domain"
)

// Pipeline executes phases in order against one target directory and
// stops at the first failure. Partial output stays on disk; callers
// wanting atomicity should scaffold into a staging directory and move it
// into place themselves.
type Pipeline struct {
	phases   []domain.Phase
	progress domain.ProgressFunc
}

func NewPipeline(phases ...domain.Phase) *Pipeline {
	return &Pipeline{phases: phases}
}

// WithProgress registers a callback invoked once per attempted phase.
func (p *Pipeline) WithProgress(fn domain.ProgressFunc) *Pipeline {
	p.progress = fn
	return p
}

// Names returns the phase names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.phases))
	for i, ph := range p.phases {
		names[i] = ph.Name()
	}
	return names
}

// Run configures and creates each phase in order. The returned error is
// always a *domain.PhaseError naming the phase that failed; phases after
// it are never attempted.
func (p *Pipeline) Run(ctx context.Context, cfg domain.ProjectConfig) error {
	for _, phase := range p.phases {
		if c, ok := phase.(domain.Configurable); ok {
			if err := c.Configure(cfg); err != nil {
				p.report(phase.Name(), err)
				return wrapPhaseError(phase.Name(), err)
			}
		}

		log.Debug("running phase", "phase", phase.Name())
		err := phase.Create(ctx)
		p.report(phase.Name(), err)
		if err != nil {
			return wrapPhaseError(phase.Name(), err)
		}
	}
	return nil
}

func (p *Pipeline) report(name string, err error) {
	if p.progress != nil {
		p.progress(name, err)
	}
}

func wrapPhaseError(phase string, err error) error {
	perr := &domain.PhaseError{Phase: phase, Kind: domain.FailureFilesystem, Err: err}
	var ferr *domain.FailureError
	if errors.As(err, &ferr) {
		perr.Kind = ferr.Kind
		perr.Output = ferr.Output
	}
	return perr
}
