package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/devbrain/neutrino-new/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " <project_name>",
		Short: branding.Description(),
		Long: `Generate a new ` + branding.DisplayName() + ` ecosystem C++ project skeleton: CMake build files
wired to neutrino-cmake, header and source stubs, doctest tests, examples,
README, LICENSE, clang-format settings and a GitHub Actions workflow.

Options are resolved in this order (later wins): built-in defaults, user
config (` + branding.CLIName() + ` config) and ` + branding.EnvPrefix() + `_* environment variables, a project
manifest given with --from, command-line flags.`,
		Example: `  ` + branding.CLIName() + ` mylib --type=header-only --std=17
  ` + branding.CLIName() + ` mylib --type=compiled --std=20 --with-tests --with-examples
  ` + branding.CLIName() + ` myapp --type=executable --std=20
  ` + branding.CLIName() + ` mylib --type=header-only --deps failsafe euler
  ` + branding.CLIName() + ` --from neutrino.yaml`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), f.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, f)
		},
	}

	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "Print debug logging to stderr")
	f.register(cmd)

	cmd.AddCommand(
		newTemplatesCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

// setupLogging installs the process-wide slog handler. Diagnostics go to w;
// user-facing output never goes through slog.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	if w == nil {
		w = os.Stderr
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
