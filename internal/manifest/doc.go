// Package manifest reads project manifests: small YAML files (neutrino.yaml
// by convention) that pre-fill the generator options for a project so the
// same skeleton can be recreated without retyping flags. Manifests are
// validated against an embedded JSON Schema before they are applied.
package manifest
