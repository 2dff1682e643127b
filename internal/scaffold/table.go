package scaffold

import (
	"embed"

	"github.com/devbrain/neutrino-new/internal/project"
)

//go:embed templates
var templateFS embed.FS

// Entry is one row of the template table.
type Entry struct {
	// Name identifies the template (e.g., "CMakeLists.txt.compiled").
	Name string
	// Source is the embedded file under templates/.
	Source string
	// Target is the output path relative to the project root. It is itself
	// rendered against the context.
	Target string
	// Condition describes When for listings.
	Condition string
	// When reports whether the entry applies to a context.
	When func(*project.Context) bool
	// LeftDelim and RightDelim override the default {{ }} delimiters for
	// sources that contain literal double braces.
	LeftDelim, RightDelim string
}

func always(*project.Context) bool { return true }

func isType(t project.Type) func(*project.Context) bool {
	return func(c *project.Context) bool { return c.Type == t }
}

func isLibrary(c *project.Context) bool { return c.IsLibrary() }

func withTests(c *project.Context) bool { return c.IsLibrary() && c.WithTests }

func withExamples(c *project.Context) bool { return c.IsLibrary() && c.WithExamples }

// table is ordered: files are rendered and written in this order.
var table = []Entry{
	{
		Name:      "CMakeLists.txt.header_only",
		Source:    "CMakeLists.txt.header_only.tmpl",
		Target:    "CMakeLists.txt",
		Condition: "type = header-only",
		When:      isType(project.TypeHeaderOnly),
	},
	{
		Name:      "CMakeLists.txt.compiled",
		Source:    "CMakeLists.txt.compiled.tmpl",
		Target:    "CMakeLists.txt",
		Condition: "type = compiled",
		When:      isType(project.TypeCompiled),
	},
	{
		Name:      "CMakeLists.txt.executable",
		Source:    "CMakeLists.txt.executable.tmpl",
		Target:    "CMakeLists.txt",
		Condition: "type = executable",
		When:      isType(project.TypeExecutable),
	},
	{
		Name:      "header.hpp",
		Source:    "header.hpp.tmpl",
		Target:    "include/{{.ProjectName}}/{{.ProjectName}}.{{.HeaderExt}}",
		Condition: "library",
		When:      isLibrary,
	},
	{
		Name:      "source.cpp",
		Source:    "source.cpp.tmpl",
		Target:    "src/{{.ProjectName}}.cpp",
		Condition: "type = compiled",
		When:      isType(project.TypeCompiled),
	},
	{
		Name:      "main.cpp",
		Source:    "main.cpp.tmpl",
		Target:    "src/main.cpp",
		Condition: "type = executable",
		When:      isType(project.TypeExecutable),
	},
	{
		Name:      "test/CMakeLists.txt",
		Source:    "test/CMakeLists.txt.tmpl",
		Target:    "test/CMakeLists.txt",
		Condition: "library with tests",
		When:      withTests,
	},
	{
		Name:      "test/test_main.cpp",
		Source:    "test/test_main.cpp.tmpl",
		Target:    "test/test_main.cpp",
		Condition: "library with tests",
		When:      withTests,
	},
	{
		Name:      "test/test_project.cpp",
		Source:    "test/test_project.cpp.tmpl",
		Target:    "test/test_{{.ProjectName}}.cpp",
		Condition: "library with tests",
		When:      withTests,
	},
	{
		Name:      "examples/CMakeLists.txt",
		Source:    "examples/CMakeLists.txt.tmpl",
		Target:    "examples/CMakeLists.txt",
		Condition: "library with examples",
		When:      withExamples,
	},
	{
		Name:      "examples/example.cpp",
		Source:    "examples/example.cpp.tmpl",
		Target:    "examples/example.cpp",
		Condition: "library with examples",
		When:      withExamples,
	},
	{
		Name:      ".gitignore",
		Source:    "gitignore.tmpl",
		Target:    ".gitignore",
		Condition: "always",
		When:      always,
	},
	{
		Name:      ".clang-format",
		Source:    "clang-format.tmpl",
		Target:    ".clang-format",
		Condition: "always",
		When:      always,
	},
	{
		Name:      "README.md",
		Source:    "README.md.tmpl",
		Target:    "README.md",
		Condition: "always",
		When:      always,
	},
	{
		Name:      "docs/NEUTRINO_CMAKE.md",
		Source:    "docs/NEUTRINO_CMAKE.md.tmpl",
		Target:    "docs/NEUTRINO_CMAKE.md",
		Condition: "always",
		When:      always,
	},
	{
		Name:      "LICENSE",
		Source:    "LICENSE.tmpl",
		Target:    "LICENSE",
		Condition: "always",
		When:      always,
	},
	{
		// GitHub expressions use ${{ }}, so this source uses [[ ]].
		Name:       ".github/workflows/ci.yml",
		Source:     "github/workflows/ci.yml.tmpl",
		Target:     ".github/workflows/ci.yml",
		Condition:  "library with tests",
		When:       withTests,
		LeftDelim:  "[[",
		RightDelim: "]]",
	},
}

// Templates returns a copy of the template table in render order.
func Templates() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// directories lists the directories created for a context, including ones
// that receive no files (src/ of a header-only library, for instance).
func directories(c *project.Context) []string {
	dirs := []string{}
	if c.IsLibrary() {
		dirs = append(dirs, "include/"+c.ProjectName)
	}
	dirs = append(dirs, "src", "docs")
	if c.WithTests && c.IsLibrary() {
		dirs = append(dirs, "test")
	}
	if c.WithExamples && c.IsLibrary() {
		dirs = append(dirs, "examples")
	}
	return dirs
}
