// Package config manages layered user preferences: built-in defaults, a
// global file under the user's config directory, and a per-project file.
// Later layers win per field; list fields accumulate.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFileName is the per-project preference file, relative to the
// project root.
const ProjectFileName = ".stackscout.yaml"

// Preferences holds everything a user can tune about detection and
// generation output.
type Preferences struct {
	// IgnoreDirs are directory names skipped during source scans.
	IgnoreDirs []string `yaml:"ignore_dirs,omitempty"`
	// PackageManagers overrides the detected tool per ecosystem,
	// e.g. {"js": "pnpm"}.
	PackageManagers map[string]string `yaml:"package_managers,omitempty"`
	// ExtraGitignore entries are appended to every generated gitignore.
	ExtraGitignore []string `yaml:"extra_gitignore,omitempty"`
	// Commands overrides generated commands by name (dev, build, test, lint).
	Commands map[string]string `yaml:"commands,omitempty"`
}

// Defaults returns the built-in base layer.
func Defaults() Preferences {
	return Preferences{
		IgnoreDirs:      []string{".git", "node_modules", ".venv", "venv", "dist", "build", "target"},
		PackageManagers: map[string]string{},
		Commands:        map[string]string{},
	}
}

// GlobalPath returns the location of the global preference file.
func GlobalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "stackscout", "config.yaml"), nil
}

// Load assembles the effective preferences for a project: defaults, then the
// global file, then the project's own file.
func Load(projectPath string) (Preferences, error) {
	var layers []string
	if global, err := GlobalPath(); err == nil {
		layers = append(layers, global)
	}
	layers = append(layers, filepath.Join(projectPath, ProjectFileName))
	return LoadFrom(layers...)
}

// LoadFrom merges defaults with the given preference files in order.
// Missing files are fine; a malformed file is reported since the user wrote
// it on purpose.
func LoadFrom(paths ...string) (Preferences, error) {
	prefs := Defaults()
	for _, path := range paths {
		if err := mergeFile(&prefs, path); err != nil {
			return prefs, err
		}
	}
	return prefs, nil
}

// SaveGlobal writes preferences to the global layer, creating the config
// directory if needed.
func SaveGlobal(prefs Preferences) error {
	path, err := GlobalPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func mergeFile(prefs *Preferences, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var layer Preferences
	if err := yaml.Unmarshal(data, &layer); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	merge(prefs, layer)
	return nil
}

// merge applies one layer on top of the accumulated preferences.
func merge(base *Preferences, layer Preferences) {
	for _, dir := range layer.IgnoreDirs {
		if !containsString(base.IgnoreDirs, dir) {
			base.IgnoreDirs = append(base.IgnoreDirs, dir)
		}
	}
	for _, entry := range layer.ExtraGitignore {
		if !containsString(base.ExtraGitignore, entry) {
			base.ExtraGitignore = append(base.ExtraGitignore, entry)
		}
	}
	if base.PackageManagers == nil {
		base.PackageManagers = map[string]string{}
	}
	for eco, pm := range layer.PackageManagers {
		base.PackageManagers[eco] = pm
	}
	if base.Commands == nil {
		base.Commands = map[string]string{}
	}
	for name, cmd := range layer.Commands {
		base.Commands[name] = cmd
	}
}

func containsString(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
