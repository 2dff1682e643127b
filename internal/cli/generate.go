package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/devbrain/neutrino-new/internal/config"
	"github.com/devbrain/neutrino-new/internal/manifest"
	"github.com/devbrain/neutrino-new/internal/project"
	"github.com/devbrain/neutrino-new/internal/scaffold"
	"github.com/spf13/cobra"
)

// now is replaced in tests to pin the LICENSE year.
var now = time.Now

type generateFlags struct {
	typ          string
	std          string
	description  string
	author       string
	output       string
	version      string
	withTests    bool
	noTests      bool
	withExamples bool
	noExamples   bool
	deps         []string
	force        bool
	from         string
	dryRun       bool
	interactive  bool
	quiet        bool
	verbose      bool
}

func (f *generateFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.typ, "type", "t", string(project.DefaultType), "Project type: header-only, compiled or executable")
	fl.StringVarP(&f.std, "std", "s", fmt.Sprint(project.DefaultStd), "C++ standard: 11, 14, 17, 20 or 23")
	fl.StringVarP(&f.description, "description", "d", "", "Project description")
	fl.StringVarP(&f.author, "author", "a", "", "Author name for LICENSE (default from config, else devbrain)")
	fl.StringVarP(&f.output, "output", "o", project.DefaultOutput, "Output directory; the project is created in <output>/<name>")
	fl.StringVar(&f.version, "project-version", project.DefaultVersion, "Initial project version (semantic version)")
	fl.BoolVar(&f.withTests, "with-tests", true, "Include test directory")
	fl.BoolVar(&f.noTests, "no-tests", false, "Don't include test directory")
	fl.BoolVar(&f.withExamples, "with-examples", true, "Include examples directory")
	fl.BoolVar(&f.noExamples, "no-examples", false, "Don't include examples directory")
	fl.StringSliceVar(&f.deps, "deps", nil, "Dependencies to include (e.g., --deps failsafe,euler)")
	fl.BoolVarP(&f.force, "force", "f", false, "Overwrite existing directory")
	fl.StringVar(&f.from, "from", "", "Read project options from a manifest file (e.g., "+manifest.DefaultFileName+")")
	fl.BoolVar(&f.dryRun, "dry-run", false, "Print what would be created without writing anything")
	fl.BoolVarP(&f.interactive, "interactive", "i", false, "Ask for options not given on the command line")
	fl.BoolVarP(&f.quiet, "quiet", "q", false, "Only print errors and the final summary")
}

// resolveOptions applies defaults, user config, manifest, positional name
// and changed flags, in that order.
func resolveOptions(cmd *cobra.Command, args []string, f *generateFlags) (project.Options, error) {
	config.Load()
	opts := project.DefaultOptions()
	if err := config.ApplyDefaults(&opts); err != nil {
		return opts, err
	}

	if f.from != "" {
		m, err := manifest.Load(f.from)
		if err != nil {
			return opts, err
		}
		if err := m.Apply(&opts); err != nil {
			return opts, fmt.Errorf("applying manifest %s: %w", f.from, err)
		}
	}

	if len(args) > 0 {
		opts.Name = args[0]
	}

	changed := cmd.Flags().Changed
	if changed("type") {
		t, err := project.ParseType(f.typ)
		if err != nil {
			return opts, err
		}
		opts.Type = t
	}
	if changed("std") {
		std, err := project.ParseStd(f.std)
		if err != nil {
			return opts, err
		}
		opts.Std = std
	}
	if changed("description") {
		opts.Description = f.description
	}
	if changed("author") {
		opts.Author = f.author
	}
	if changed("output") {
		opts.OutputDir = f.output
	}
	if changed("project-version") {
		opts.Version = f.version
	}
	if changed("with-tests") {
		opts.WithTests = f.withTests
	}
	if changed("no-tests") && f.noTests {
		opts.WithTests = false
	}
	if changed("with-examples") {
		opts.WithExamples = f.withExamples
	}
	if changed("no-examples") && f.noExamples {
		opts.WithExamples = false
	}
	if changed("deps") {
		opts.Deps = project.SplitDeps(f.deps)
	}
	opts.Force = f.force

	return opts, nil
}

func runGenerate(cmd *cobra.Command, args []string, f *generateFlags) error {
	// "--deps a b c" leaves b and c as positional args after the name.
	if len(args) > 1 {
		if !cmd.Flags().Changed("deps") {
			return fmt.Errorf("unexpected arguments: %s", strings.Join(args[1:], " "))
		}
		f.deps = append(f.deps, args[1:]...)
		args = args[:1]
	}

	opts, err := resolveOptions(cmd, args, f)
	if err != nil {
		return err
	}

	if f.interactive {
		if err := askOptions(newPrompter(), cmd, &opts); err != nil {
			return fmt.Errorf("interactive mode: %w", err)
		}
	}

	if opts.Name == "" {
		return fmt.Errorf("%w: project name is required (pass it as an argument or set name in --from)", project.ErrInvalidOption)
	}

	out := cmd.OutOrStdout()

	if f.dryRun {
		plan, err := scaffold.PlanFor(opts, now())
		if err != nil {
			return err
		}
		printPlan(out, opts, plan)
		return nil
	}

	if !f.quiet {
		printHeader(out, opts)
	}

	result, err := scaffold.Generate(opts, now())
	if result != nil && !f.quiet {
		printResult(out, result)
	}
	if err != nil {
		if errors.Is(err, scaffold.ErrTargetExists) {
			return fmt.Errorf("directory '%s' already exists. Use --force to overwrite", opts.Root())
		}
		return err
	}

	printNextSteps(out, opts)
	return nil
}

func printHeader(w io.Writer, opts project.Options) {
	fmt.Fprintf(w, "\nGenerating %s project: %s\n", opts.Type, opts.Name)
	fmt.Fprintf(w, "  Location: %s\n", opts.Root())
	fmt.Fprintf(w, "  C++ Standard: C++%d\n", opts.Std)
	if len(opts.Deps) > 0 {
		fmt.Fprintf(w, "  Dependencies: %s\n", strings.Join(opts.Deps, ", "))
	}
	fmt.Fprintln(w)
}

func printResult(w io.Writer, result *scaffold.Result) {
	fmt.Fprintf(w, "  Created: %s/\n", result.OutputDir)
	for _, d := range result.Dirs {
		fmt.Fprintf(w, "  Created: %s/\n", filepath.Join(result.OutputDir, filepath.FromSlash(d)))
	}
	for _, f := range result.Files {
		fmt.Fprintf(w, "  Created: %s\n", filepath.Join(result.OutputDir, filepath.FromSlash(f)))
	}
}

func printNextSteps(w io.Writer, opts project.Options) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Project '%s' created successfully!\n", opts.Name)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintf(w, "  cd %s\n", opts.Root())
	fmt.Fprintln(w, "  cmake -B build")
	fmt.Fprintln(w, "  cmake --build build")
}

func printPlan(w io.Writer, opts project.Options, plan *scaffold.Plan) {
	root := opts.Root()
	fmt.Fprintf(w, "Would generate %s project %s in %s:\n", opts.Type, opts.Name, root)
	for _, d := range plan.Dirs {
		fmt.Fprintf(w, "  %s/\n", filepath.Join(root, filepath.FromSlash(d)))
	}
	for _, f := range plan.Files {
		fmt.Fprintf(w, "  %s (%d bytes, from %s)\n", filepath.Join(root, filepath.FromSlash(f.Path)), len(f.Content), f.Template)
	}
}
