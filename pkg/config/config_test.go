package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromDefaultsOnly(t *testing.T) {
	prefs, err := LoadFrom()
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if len(prefs.IgnoreDirs) == 0 {
		t.Error("expected default ignore dirs")
	}
}

func TestLoadFromLayering(t *testing.T) {
	dir := t.TempDir()
	global := writeFile(t, dir, "global.yaml", `
package_managers:
  js: yarn
commands:
  test: make test
extra_gitignore:
  - "*.log"
`)
	project := writeFile(t, dir, "project.yaml", `
package_managers:
  js: pnpm
extra_gitignore:
  - ".cache/"
`)

	prefs, err := LoadFrom(global, project)
	if err != nil {
		t.Fatalf("LoadFrom error: %v", err)
	}

	// later layer wins per key
	if prefs.PackageManagers["js"] != "pnpm" {
		t.Errorf("expected project layer to win, got %q", prefs.PackageManagers["js"])
	}
	// untouched keys survive from earlier layers
	if prefs.Commands["test"] != "make test" {
		t.Errorf("expected global command kept, got %q", prefs.Commands["test"])
	}
	// list fields accumulate
	for _, want := range []string{"*.log", ".cache/"} {
		if !containsString(prefs.ExtraGitignore, want) {
			t.Errorf("expected %q in extra gitignore, got %v", want, prefs.ExtraGitignore)
		}
	}
}

func TestLoadFromMissingFilesIgnored(t *testing.T) {
	prefs, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing layer should not error, got %v", err)
	}
	if len(prefs.IgnoreDirs) == 0 {
		t.Error("expected defaults to survive missing layers")
	}
}

func TestLoadFromMalformedFileErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.yaml", "commands: [not: a: map\n")

	if _, err := LoadFrom(bad); err == nil {
		t.Fatal("expected error for malformed preference file")
	}
}

func TestLoadReadsProjectFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ProjectFileName, "package_managers:\n  python: uv\n")

	prefs, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if prefs.PackageManagers["python"] != "uv" {
		t.Errorf("expected project file applied, got %v", prefs.PackageManagers)
	}
}
