//go:build integration

package integration_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/devbrain/neutrino-new/internal/config"
	"github.com/devbrain/neutrino-new/internal/manifest"
	"github.com/devbrain/neutrino-new/internal/project"
	"github.com/devbrain/neutrino-new/internal/scaffold"
)

var fixedNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

// TestFullFlowConfigManifestGenerate tests the complete flow:
// user config -> manifest -> generate -> verify tree.
func TestFullFlowConfigManifestGenerate(t *testing.T) {
	env := setupTestEnv(t)

	// Step 1: Persist user defaults.
	config.Load()
	if err := config.Set(config.KeyAuthor, "Config Author"); err != nil {
		t.Fatalf("config.Set: %v", err)
	}
	if err := config.Set(config.KeyStd, "17"); err != nil {
		t.Fatalf("config.Set: %v", err)
	}
	assertFileExists(t, config.FilePath())

	// Step 2: Write a manifest that overrides some of them.
	manifestPath := filepath.Join(env.OutputDir, manifest.DefaultFileName)
	writeFile(t, manifestPath, `name: signal-kit
type: compiled
description: Signal processing toolkit
version: 1.2.0
examples: false
deps:
  - failsafe
  - mz-explode
`)

	// Step 3: Resolve options in precedence order.
	opts := project.DefaultOptions()
	opts.OutputDir = env.OutputDir
	if err := config.ApplyDefaults(&opts); err != nil {
		t.Fatalf("ApplyDefaults: %v", err)
	}
	m, err := manifest.Load(manifestPath)
	if err != nil {
		t.Fatalf("manifest.Load: %v", err)
	}
	if err := m.Apply(&opts); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// Step 4: Generate.
	result, err := scaffold.Generate(opts, fixedNow)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	root := filepath.Join(env.OutputDir, "signal-kit")
	if result.OutputDir != root {
		t.Errorf("OutputDir = %q, want %q", result.OutputDir, root)
	}

	// Step 5: Verify the tree.
	for _, dir := range []string{"include/signal-kit", "src", "docs", "test"} {
		assertDirExists(t, filepath.Join(root, filepath.FromSlash(dir)))
	}
	assertFileNotExists(t, filepath.Join(root, "examples"))
	for _, f := range result.Files {
		assertFileExists(t, filepath.Join(root, filepath.FromSlash(f)))
	}

	cmake := filepath.Join(root, "CMakeLists.txt")
	assertFileContains(t, cmake, "VERSION 1.2.0")
	assertFileContains(t, cmake, "cxx_std_17")
	assertFileContains(t, cmake, "include(${NEUTRINO_CMAKE_DIR}/deps/mz-explode.cmake)")
	assertFileContains(t, cmake, "neutrino_fetch_mzexplode()")
	assertFileContains(t, cmake, `"find_dependency(failsafe REQUIRED)"`)
	assertFileContains(t, filepath.Join(root, "include/signal-kit/signal-kit.hpp"), "#include <signal-kit/signal-kit_export.h>")
	assertFileContains(t, filepath.Join(root, "LICENSE"), "Copyright (c) 2026 Config Author")
	assertFileContains(t, filepath.Join(root, ".github/workflows/ci.yml"), "${{ matrix.os }}")
	assertNoPlaceholders(t, root)
}

// TestAllProjectTypesRender generates every type and checks that nothing is
// left unrendered.
func TestAllProjectTypesRender(t *testing.T) {
	env := setupTestEnv(t)

	for _, typ := range project.Types {
		for _, std := range project.Standards {
			opts := project.DefaultOptions()
			opts.Name = fmt.Sprintf("%s-%d", typ, std)
			opts.Type = typ
			opts.Std = std
			opts.Deps = []string{"euler"}
			opts.OutputDir = env.OutputDir

			if _, err := scaffold.Generate(opts, fixedNow); err != nil {
				t.Fatalf("Generate(%s, C++%d): %v", typ, std, err)
			}
			assertNoPlaceholders(t, opts.Root())
		}
	}
}

// TestRegenerateRequiresForce tests that a second run over the same target
// fails without force and succeeds with it.
func TestRegenerateRequiresForce(t *testing.T) {
	env := setupTestEnv(t)

	opts := project.DefaultOptions()
	opts.Name = "again"
	opts.OutputDir = env.OutputDir

	if _, err := scaffold.Generate(opts, fixedNow); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	if _, err := scaffold.Generate(opts, fixedNow); !errors.Is(err, scaffold.ErrTargetExists) {
		t.Fatalf("second Generate error = %v, want ErrTargetExists", err)
	}

	keep := filepath.Join(opts.Root(), "notes.txt")
	writeFile(t, keep, "mine")

	opts.Force = true
	opts.Type = project.TypeCompiled
	if _, err := scaffold.Generate(opts, fixedNow); err != nil {
		t.Fatalf("forced Generate: %v", err)
	}
	assertFileContains(t, keep, "mine")
	assertFileExists(t, filepath.Join(opts.Root(), "src", "again.cpp"))
}
