package project

import (
	"fmt"
	"strings"
	"time"

	"github.com/devbrain/neutrino-new/internal/branding"
)

// Dependency is a neutrino ecosystem dependency as referenced from CMake.
type Dependency struct {
	// Name is the name as given. Recipe files (deps/<Name>.cmake) and
	// find_dependency() calls use it verbatim.
	Name string
	// Ident is Name with hyphens removed, a valid CMake function and
	// target identifier (e.g., "mz-explode" → "mzexplode").
	Ident string
}

// Context is the substitution context shared by all templates.
type Context struct {
	ProjectName      string
	ProjectNameUpper string
	Namespace        string
	Description      string
	Author           string
	Year             int
	Std              int
	Type             Type
	Version          string
	HeaderExt        string
	Guard            string
	ExportInclude    string // empty unless compiled
	TargetLink       string // what tests and examples link against
	LinkScope        string // INTERFACE or PUBLIC
	Deps             []Dependency
	WithTests        bool
	WithExamples     bool
	CMakeRepoURL     string
	ProjectURL       string
}

// IsLibrary reports whether the project is a header-only or compiled library.
func (c *Context) IsLibrary() bool { return c.Type.IsLibrary() }

// IsCompiled reports whether the project is a compiled library.
func (c *Context) IsCompiled() bool { return c.Type == TypeCompiled }

// IsHeaderOnly reports whether the project is a header-only library.
func (c *Context) IsHeaderOnly() bool { return c.Type == TypeHeaderOnly }

// IsExecutable reports whether the project is an executable.
func (c *Context) IsExecutable() bool { return c.Type == TypeExecutable }

// HasDeps reports whether any dependency was requested.
func (c *Context) HasDeps() bool { return len(c.Deps) > 0 }

// NewContext derives the substitution context from validated options.
// now supplies the copyright year.
func NewContext(opts Options, now time.Time) *Context {
	upper := UpperIdent(opts.Name)
	ext := HeaderExt(opts.Std)

	c := &Context{
		ProjectName:      opts.Name,
		ProjectNameUpper: upper,
		Namespace:        strings.ReplaceAll(opts.Name, "-", "_"),
		Description:      opts.Description,
		Author:           opts.Author,
		Year:             now.Year(),
		Std:              opts.Std,
		Type:             opts.Type,
		Version:          opts.Version,
		HeaderExt:        ext,
		Guard:            fmt.Sprintf("%s_%s_%s_", upper, upper, strings.ToUpper(ext)),
		WithTests:        opts.WithTests && opts.Type.IsLibrary(),
		WithExamples:     opts.WithExamples && opts.Type.IsLibrary(),
		CMakeRepoURL:     branding.CMakeRepoURL(),
		ProjectURL:       strings.TrimSuffix(branding.ProjectURLBase(), "/") + "/" + opts.Name + ".git",
	}

	if c.Description == "" {
		c.Description = DefaultDescription(opts.Type)
	}
	if c.Author == "" {
		c.Author = branding.DefaultAuthor()
	}
	if c.Version == "" {
		c.Version = DefaultVersion
	}

	switch opts.Type {
	case TypeHeaderOnly:
		c.TargetLink = "neutrino::" + opts.Name
		c.LinkScope = "INTERFACE"
	case TypeCompiled:
		c.TargetLink = opts.Name
		c.LinkScope = "PUBLIC"
		c.ExportInclude = fmt.Sprintf("#include <%s/%s_export.h>", opts.Name, opts.Name)
	default:
		c.TargetLink = opts.Name
		c.LinkScope = "PUBLIC"
	}

	for _, dep := range opts.Deps {
		c.Deps = append(c.Deps, Dependency{Name: dep, Ident: NormalizeDep(dep)})
	}

	return c
}

// DefaultDescription returns the description used when none is given.
func DefaultDescription(t Type) string {
	if t == TypeExecutable {
		return "A neutrino ecosystem executable"
	}
	return fmt.Sprintf("A neutrino ecosystem %s library", t)
}

// UpperIdent turns a project name into the upper-case identifier used in
// CMake option names and include guards.
func UpperIdent(name string) string {
	r := strings.NewReplacer("-", "_", " ", "_")
	return r.Replace(strings.ToUpper(name))
}

// NormalizeDep removes hyphens so a dependency name can be used as a CMake
// identifier.
func NormalizeDep(dep string) string {
	return strings.ReplaceAll(dep, "-", "")
}

// HeaderExt returns the public header extension for a C++ standard.
func HeaderExt(std int) string {
	if std >= 11 {
		return "hpp"
	}
	return "h"
}
