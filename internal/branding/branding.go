// Package branding provides compile-time identity values for the CLI.
//
// Forks edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes it into the binary. Values missing from the file keep the hard
// defaults below.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	EnvPrefix      string `yaml:"env_prefix"`
	GoModule       string `yaml:"go_module"`
	CMakeRepoURL   string `yaml:"cmake_repo_url"`
	ProjectURLBase string `yaml:"project_url_base"`
	DefaultAuthor  string `yaml:"default_author"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:        "neutrino-new",
			DisplayName:    "Neutrino",
			Description:    "Generate a new neutrino ecosystem project skeleton",
			HomeDir:        ".neutrino",
			EnvPrefix:      "NEUTRINO",
			GoModule:       "github.com/devbrain/neutrino-new",
			CMakeRepoURL:   "https://github.com/devbrain/neutrino-cmake.git",
			ProjectURLBase: "https://github.com/devbrain",
			DefaultAuthor:  "devbrain",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "neutrino-new").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable ecosystem name (e.g., "Neutrino").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".neutrino").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "NEUTRINO").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// CMakeRepoURL returns the git URL of the neutrino-cmake tooling repository
// that generated CMakeLists.txt files fetch.
func CMakeRepoURL() string { load(); return defaults.CMakeRepoURL }

// ProjectURLBase returns the URL prefix used for a generated project's own
// repository in its README (e.g., "https://github.com/devbrain").
func ProjectURLBase() string { load(); return defaults.ProjectURLBase }

// DefaultAuthor returns the copyright holder used when no author is given.
func DefaultAuthor() string { load(); return defaults.DefaultAuthor }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "NEUTRINO_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
