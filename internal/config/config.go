package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/devbrain/neutrino-new/internal/branding"
	"github.com/devbrain/neutrino-new/internal/project"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known keys.
const (
	KeyAuthor   = "author"
	KeyStd      = "std"
	KeyType     = "type"
	KeyOutput   = "output"
	KeyDeps     = "deps"
	KeyTests    = "tests"
	KeyExamples = "examples"
)

var keys = map[string]string{
	KeyAuthor:   "copyright holder written into LICENSE",
	KeyStd:      "default C++ standard (11, 14, 17, 20, 23)",
	KeyType:     "default project type (header-only, compiled, executable)",
	KeyOutput:   "default parent directory for new projects",
	KeyDeps:     "comma separated dependencies added to every project",
	KeyTests:    "generate test scaffolding (true/false)",
	KeyExamples: "generate example scaffolding (true/false)",
}

// Keys returns the supported configuration keys in sorted order.
func Keys() []string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Describe returns the help text for a key.
func Describe(key string) string { return keys[key] }

// Dir returns the config directory: $NEUTRINO_HOME when set, ~/.neutrino
// otherwise.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// All returns every known key with its current value, set or not.
func All() map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range Keys() {
		out[k] = Get(k)
	}
	return out
}

// Set validates and writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := checkValue(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func checkValue(key, value string) error {
	if _, ok := keys[key]; !ok {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}

	switch key {
	case KeyStd:
		_, err := project.ParseStd(value)
		return err
	case KeyType:
		_, err := project.ParseType(value)
		return err
	case KeyTests, KeyExamples:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("config key %q expects true or false, got %q", key, value)
		}
	}
	return nil
}

// ApplyDefaults overlays the configured defaults onto opts. Unset keys
// leave opts untouched; malformed values are reported.
func ApplyDefaults(opts *project.Options) error {
	if v := Get(KeyAuthor); v != "" {
		opts.Author = v
	}
	if v := Get(KeyType); v != "" {
		t, err := project.ParseType(v)
		if err != nil {
			return fmt.Errorf("config %s: %w", KeyType, err)
		}
		opts.Type = t
	}
	if v := Get(KeyStd); v != "" {
		std, err := project.ParseStd(v)
		if err != nil {
			return fmt.Errorf("config %s: %w", KeyStd, err)
		}
		opts.Std = std
	}
	if v := Get(KeyOutput); v != "" {
		opts.OutputDir = v
	}
	if v := Get(KeyDeps); v != "" {
		opts.Deps = project.SplitDeps([]string{v})
	}
	for key, dst := range map[string]*bool{KeyTests: &opts.WithTests, KeyExamples: &opts.WithExamples} {
		v := Get(key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config %s: expects true or false, got %q", key, v)
		}
		*dst = b
	}
	return nil
}
