package domain

import "fmt"

// FailureKind classifies a pipeline failure.
type FailureKind string

const (
	FailureConfig     FailureKind = "config"
	FailureFilesystem FailureKind = "filesystem"
	FailureSubprocess FailureKind = "subprocess"
)

// FailureError is a classified error raised inside a phase. The pipeline
// wraps it with the phase name; anything unclassified is reported as a
// filesystem failure.
type FailureError struct {
	Kind   FailureKind
	Output string
	Err    error
}

func (e *FailureError) Error() string { return e.Err.Error() }
func (e *FailureError) Unwrap() error { return e.Err }

// ConfigErrorf builds a configuration failure.
func ConfigErrorf(format string, args ...interface{}) error {
	return &FailureError{Kind: FailureConfig, Err: fmt.Errorf(format, args...)}
}

// SubprocessError builds a subprocess failure carrying the captured output.
func SubprocessError(output string, err error) error {
	return &FailureError{Kind: FailureSubprocess, Output: output, Err: err}
}

// PhaseError reports which phase failed and why. There is no rollback:
// whatever earlier phases wrote stays on disk.
type PhaseError struct {
	Phase  string
	Kind   FailureKind
	Output string
	Err    error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("phase %s: %s", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error { return e.Err }
