package manifest

import (
	"fmt"
	"os"
	"strconv"

	"github.com/devbrain/neutrino-new/internal/project"
	"go.yaml.in/yaml/v3"
)

// Parse reads a manifest file without validating it.
func Parse(path string) (*ProjectManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data, path)
}

// Load reads a manifest file, validates it against the schema and returns
// it. Schema violations are reported as a single error listing every issue.
func Load(path string) (*ProjectManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Path: path, Issues: result.Issues}
	}

	return parse(data, path)
}

func parse(data []byte, path string) (*ProjectManifest, error) {
	var m ProjectManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// Apply overlays the fields set in the manifest onto opts.
func (m *ProjectManifest) Apply(opts *project.Options) error {
	if m.Name != "" {
		opts.Name = m.Name
	}
	if m.Type != "" {
		t, err := project.ParseType(m.Type)
		if err != nil {
			return err
		}
		opts.Type = t
	}
	if m.Std != nil {
		std, err := project.ParseStd(strconv.Itoa(*m.Std))
		if err != nil {
			return err
		}
		opts.Std = std
	}
	if m.Description != "" {
		opts.Description = m.Description
	}
	if m.Author != "" {
		opts.Author = m.Author
	}
	if m.Version != "" {
		opts.Version = m.Version
	}
	if m.Output != "" {
		opts.OutputDir = m.Output
	}
	if m.Tests != nil {
		opts.WithTests = *m.Tests
	}
	if m.Examples != nil {
		opts.WithExamples = *m.Examples
	}
	if len(m.Deps) > 0 {
		opts.Deps = append([]string(nil), m.Deps...)
	}
	return nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
