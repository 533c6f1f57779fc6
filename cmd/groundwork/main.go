package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/eduardo/groundwork/internal/application"
	"github.com/eduardo/groundwork/internal/config"
	"github.com/eduardo/groundwork/internal/domain"
	"github.com/eduardo/groundwork/internal/infrastructure"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "groundwork",
		Short:        "Scaffold FastAPI backend-service projects",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newNewCmd())
	return root
}

func newNewCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "new [directory]",
		Short: "Scaffold a new project in the given directory",
		Long: `Scaffold a new FastAPI backend-service project: directory skeleton,
package markers, git repository, virtual environment with installed
dependencies, parameterized source files, and database wiring.

Without --config an interactive wizard collects the project settings.
The directory defaults to the project name under the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := collectConfig(configPath)
			if err != nil {
				return err
			}

			target := cfg.Name
			if len(args) > 0 {
				target = args[0]
			}
			targetDir, err := filepath.Abs(target)
			if err != nil {
				return fmt.Errorf("failed to resolve target directory: %w", err)
			}

			service := application.NewScaffoldService(
				infrastructure.NewOSFileSystem(),
				infrastructure.NewGoTemplateEngine(),
				infrastructure.NewExecRunner(),
			).WithProgress(renderPhase(cmd))

			if err := service.Scaffold(cmd.Context(), targetDir, cfg); err != nil {
				var perr *domain.PhaseError
				if errors.As(err, &perr) && perr.Output != "" {
					fmt.Fprintln(cmd.ErrOrStderr(), perr.Output)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nProject %s created in %s\n", cfg.Name, targetDir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "project config file (skips the wizard)")
	return cmd
}

func collectConfig(path string) (domain.ProjectConfig, error) {
	if path != "" {
		return config.NewLoader().Load(path)
	}
	return runWizard()
}

func renderPhase(cmd *cobra.Command) domain.ProgressFunc {
	return func(phase string, err error) {
		mark := okStyle.Render("✓")
		if err != nil {
			mark = failStyle.Render("✗")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, phase)
	}
}
