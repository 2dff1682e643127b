package manifest

// DefaultFileName is the conventional manifest file name.
const DefaultFileName = "neutrino.yaml"

// ProjectManifest mirrors the generator options. Pointer and empty fields
// are treated as unset and leave the corresponding option untouched.
type ProjectManifest struct {
	Name        string   `yaml:"name,omitempty" json:"name,omitempty"`
	Type        string   `yaml:"type,omitempty" json:"type,omitempty"`
	Std         *int     `yaml:"std,omitempty" json:"std,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Author      string   `yaml:"author,omitempty" json:"author,omitempty"`
	Version     string   `yaml:"version,omitempty" json:"version,omitempty"`
	Output      string   `yaml:"output,omitempty" json:"output,omitempty"`
	Tests       *bool    `yaml:"tests,omitempty" json:"tests,omitempty"`
	Examples    *bool    `yaml:"examples,omitempty" json:"examples,omitempty"`
	Deps        []string `yaml:"deps,omitempty" json:"deps,omitempty"`
}
