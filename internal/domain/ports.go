package domain

import "context"

// FileSystemPort defines the interface for file and directory operations
type FileSystemPort interface {
	// MkdirAll creates path and any missing ancestors; it is a no-op if
	// the directory already exists.
	MkdirAll(path string) error
	// EnsureFile creates an empty file at path (and any missing ancestor
	// directories); it is a no-op if the file already exists.
	EnsureFile(path string) error
	WriteFile(path string, data []byte) error
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]string, error)
}

// TemplatePort defines the interface for rendering templates
type TemplatePort interface {
	Render(name, tmpl string, data interface{}) ([]byte, error)
}

// CommandResult carries the outcome of one subprocess invocation.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Output returns the combined captured output for diagnostics.
func (r CommandResult) Output() string {
	if r.Stderr == "" {
		return r.Stdout
	}
	if r.Stdout == "" {
		return r.Stderr
	}
	return r.Stdout + "\n" + r.Stderr
}

// CommandRunnerPort runs an external command synchronously with the given
// working directory. A non-zero exit status is not an error; callers
// interpret ExitCode. The returned error is non-nil only when the process
// could not be started at all.
type CommandRunnerPort interface {
	Run(ctx context.Context, dir, name string, args ...string) (CommandResult, error)
}

// Phase is one ordered unit of work in the scaffolding pipeline, bound to
// a target directory at construction time.
type Phase interface {
	Name() string
	Create(ctx context.Context) error
}

// Configurable is implemented by phases that need values from the project
// config before Create runs. The pipeline skips it for phases that don't.
type Configurable interface {
	Configure(cfg ProjectConfig) error
}

// ProgressFunc receives the outcome of each phase as the pipeline runs.
// err is nil when the phase succeeded.
type ProgressFunc func(phase string, err error)

// ConfigLoaderPort loads a project config from an external file.
type ConfigLoaderPort interface {
	Load(path string) (ProjectConfig, error)
}

// ScaffoldServicePort defines the interface for the core scaffolding logic
type ScaffoldServicePort interface {
	Scaffold(ctx context.Context, targetDir string, cfg ProjectConfig) error
	PhaseNames() []string
}
