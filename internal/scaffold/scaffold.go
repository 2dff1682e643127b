package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/devbrain/neutrino-new/internal/project"
)

var (
	// ErrTargetExists is returned when the project root already exists and
	// overwriting was not requested.
	ErrTargetExists = errors.New("target directory already exists")
	// ErrMissingTemplate is returned when a table entry has no embedded source.
	ErrMissingTemplate = errors.New("template not found")
)

var funcs = template.FuncMap{
	"trimSuffix": strings.TrimSuffix,
	"upper":      strings.ToUpper,
}

// File is one rendered template ready to be written.
type File struct {
	Template string // table entry name
	Path     string // slash-separated, relative to the project root
	Content  []byte
}

// Plan is the full set of directories and files for one project.
type Plan struct {
	Dirs  []string
	Files []File
}

// Result holds the outcome of writing a plan.
type Result struct {
	OutputDir string
	Dirs      []string
	Files     []string
}

// Render renders the selected templates for ctx without touching the disk.
func Render(ctx *project.Context) (*Plan, error) {
	plan := &Plan{Dirs: directories(ctx)}

	for _, e := range table {
		if !e.When(ctx) {
			continue
		}

		target, err := execute(e.Name+" target", e.Target, "", "", ctx)
		if err != nil {
			return nil, err
		}

		src, err := fs.ReadFile(templateFS, path.Join("templates", e.Source))
		if err != nil {
			return nil, fmt.Errorf("%w: %s (%s): %v", ErrMissingTemplate, e.Name, e.Source, err)
		}

		content, err := execute(e.Name, string(src), e.LeftDelim, e.RightDelim, ctx)
		if err != nil {
			return nil, err
		}

		plan.Files = append(plan.Files, File{
			Template: e.Name,
			Path:     target,
			Content:  []byte(content),
		})
	}

	return plan, nil
}

func execute(name, text, left, right string, ctx *project.Context) (string, error) {
	tmpl := template.New(name).Funcs(funcs).Option("missingkey=error")
	if left != "" {
		tmpl = tmpl.Delims(left, right)
	}
	tmpl, err := tmpl.Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// Emit writes plan under root. It refuses to touch an existing root unless
// force is set, in which case files in the plan are overwritten and anything
// else already in root is left alone. On failure the returned Result lists
// what was written before the error.
func Emit(root string, plan *Plan, force bool) (*Result, error) {
	if _, err := os.Stat(root); err == nil {
		if !force {
			return nil, fmt.Errorf("%w: %s (use --force to overwrite)", ErrTargetExists, root)
		}
		slog.Debug("overwriting existing directory", "root", root)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking %s: %w", root, err)
	}

	result := &Result{OutputDir: root}

	if err := os.MkdirAll(root, 0755); err != nil {
		return result, fmt.Errorf("creating project directory: %w", err)
	}

	for _, dir := range plan.Dirs {
		full := filepath.Join(root, filepath.FromSlash(dir))
		if err := os.MkdirAll(full, 0755); err != nil {
			return result, fmt.Errorf("creating directory %s: %w", full, err)
		}
		slog.Debug("created directory", "path", full)
		result.Dirs = append(result.Dirs, dir)
	}

	for _, f := range plan.Files {
		full := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			return result, fmt.Errorf("creating directory for %s: %w", full, err)
		}
		if err := os.WriteFile(full, f.Content, 0644); err != nil {
			return result, fmt.Errorf("writing %s: %w", full, err)
		}
		slog.Debug("wrote file", "path", full, "template", f.Template, "bytes", len(f.Content))
		result.Files = append(result.Files, f.Path)
	}

	return result, nil
}

// Generate validates opts, renders the project and writes it to opts.Root().
// now supplies the copyright year.
func Generate(opts project.Options, now time.Time) (*Result, error) {
	plan, err := PlanFor(opts, now)
	if err != nil {
		return nil, err
	}
	return Emit(opts.Root(), plan, opts.Force)
}

// PlanFor validates opts and renders the project without writing it.
func PlanFor(opts project.Options, now time.Time) (*Plan, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	ctx := project.NewContext(opts, now)
	slog.Debug("rendering project",
		"name", ctx.ProjectName,
		"type", ctx.Type,
		"std", ctx.Std,
		"deps", len(ctx.Deps))
	return Render(ctx)
}
