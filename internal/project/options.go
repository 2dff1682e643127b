package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/devbrain/neutrino-new/internal/branding"
)

// ErrInvalidOption is wrapped by every option validation failure.
var ErrInvalidOption = errors.New("invalid option")

// Type is the kind of project being generated.
type Type string

const (
	TypeHeaderOnly Type = "header-only"
	TypeCompiled   Type = "compiled"
	TypeExecutable Type = "executable"
)

// Types lists the supported project types in display order.
var Types = []Type{TypeHeaderOnly, TypeCompiled, TypeExecutable}

// Standards lists the supported C++ standards.
var Standards = []int{11, 14, 17, 20, 23}

const (
	DefaultType    = TypeHeaderOnly
	DefaultStd     = 20
	DefaultVersion = "0.1.0"
	DefaultOutput  = "."
)

var (
	namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
	depPattern  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)
)

// IsLibrary reports whether the type produces an installable library.
func (t Type) IsLibrary() bool {
	return t == TypeHeaderOnly || t == TypeCompiled
}

func (t Type) String() string { return string(t) }

// ParseType converts a command-line value into a Type.
func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: project type %q (choose from %s)", ErrInvalidOption, s, joinTypes())
}

// ParseStd converts a command-line value such as "20" or "c++20" into a
// supported C++ standard.
func ParseStd(s string) (int, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "c++")
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: C++ standard %q is not a number", ErrInvalidOption, s)
	}
	if !validStd(n) {
		return 0, fmt.Errorf("%w: C++ standard %d (choose from %s)", ErrInvalidOption, n, joinStandards())
	}
	return n, nil
}

// Options are the user's choices for a single generator invocation.
type Options struct {
	Name         string
	Type         Type
	Std          int
	Description  string // empty selects a per-type default
	Author       string
	OutputDir    string // parent directory; the project is created at OutputDir/Name
	WithTests    bool
	WithExamples bool
	Deps         []string
	Force        bool
	Version      string
}

// DefaultOptions returns the options used when nothing else is specified.
func DefaultOptions() Options {
	return Options{
		Type:         DefaultType,
		Std:          DefaultStd,
		Author:       branding.DefaultAuthor(),
		OutputDir:    DefaultOutput,
		WithTests:    true,
		WithExamples: true,
		Version:      DefaultVersion,
	}
}

// Root returns the directory the project is generated into.
func (o Options) Root() string {
	out := o.OutputDir
	if out == "" {
		out = DefaultOutput
	}
	return filepath.Join(out, o.Name)
}

// Validate checks every option and returns the first problem found.
func (o Options) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("%w: project name is required", ErrInvalidOption)
	}
	if !namePattern.MatchString(o.Name) {
		return fmt.Errorf("%w: project name %q must start with a letter and contain only letters, digits, '-' and '_'", ErrInvalidOption, o.Name)
	}
	if _, err := ParseType(string(o.Type)); err != nil {
		return err
	}
	if !validStd(o.Std) {
		return fmt.Errorf("%w: C++ standard %d (choose from %s)", ErrInvalidOption, o.Std, joinStandards())
	}
	if _, err := semver.StrictNewVersion(o.Version); err != nil {
		return fmt.Errorf("%w: project version %q: %v", ErrInvalidOption, o.Version, err)
	}

	seen := make(map[string]bool, len(o.Deps))
	for _, dep := range o.Deps {
		if !depPattern.MatchString(dep) {
			return fmt.Errorf("%w: dependency name %q", ErrInvalidOption, dep)
		}
		if seen[dep] {
			return fmt.Errorf("%w: dependency %q listed more than once", ErrInvalidOption, dep)
		}
		seen[dep] = true
	}
	return nil
}

// SplitDeps flattens repeated and comma separated dependency values,
// dropping empty entries and keeping first-seen order.
func SplitDeps(values []string) []string {
	var deps []string
	seen := make(map[string]bool)
	for _, v := range values {
		for _, part := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' }) {
			if part == "" || seen[part] {
				continue
			}
			seen[part] = true
			deps = append(deps, part)
		}
	}
	return deps
}

func validStd(n int) bool {
	for _, s := range Standards {
		if s == n {
			return true
		}
	}
	return false
}

func joinTypes() string {
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func joinStandards() string {
	names := make([]string, len(Standards))
	for i, s := range Standards {
		names[i] = strconv.Itoa(s)
	}
	return strings.Join(names, ", ")
}
