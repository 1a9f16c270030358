package match

import (
	"testing"
	"testing/fstest"
)

func TestFindConfigFilesExactName(t *testing.T) {
	fsys := fstest.MapFS{
		"package.json": {Data: []byte("{}"), Mode: 0o644},
		"README.md":    {Data: []byte("#"), Mode: 0o644},
	}

	found := FindConfigFiles(fsys, ".", []string{"package.json", "Cargo.toml"})
	if len(found) != 1 || found[0] != "package.json" {
		t.Fatalf("expected [package.json], got %v", found)
	}
}

func TestFindConfigFilesNestedPath(t *testing.T) {
	fsys := fstest.MapFS{
		"config/settings.py": {Data: []byte(""), Mode: 0o644},
	}

	found := FindConfigFiles(fsys, ".", []string{"config/settings.py", "config/missing.py"})
	if len(found) != 1 || found[0] != "config/settings.py" {
		t.Fatalf("expected nested pattern hit, got %v", found)
	}
}

func TestFindConfigFilesGlob(t *testing.T) {
	fsys := fstest.MapFS{
		"app.csproj":   {Data: []byte(""), Mode: 0o644},
		"other.csproj": {Data: []byte(""), Mode: 0o644},
		"main.go":      {Data: []byte(""), Mode: 0o644},
	}

	found := FindConfigFiles(fsys, ".", []string{"*.csproj"})
	if len(found) != 2 {
		t.Fatalf("expected 2 glob matches, got %v", found)
	}
}

func TestFindConfigFilesMissingDir(t *testing.T) {
	fsys := fstest.MapFS{}

	found := FindConfigFiles(fsys, "nope", []string{"*.json", "package.json", "a/b.txt"})
	if len(found) != 0 {
		t.Fatalf("expected empty result for missing dir, got %v", found)
	}
}

func TestBatchFileExists(t *testing.T) {
	fsys := fstest.MapFS{
		"yarn.lock": {Data: []byte(""), Mode: 0o644},
	}

	got := BatchFileExists(fsys, []string{"yarn.lock", "pnpm-lock.yaml"})
	if !got["yarn.lock"] || got["pnpm-lock.yaml"] {
		t.Fatalf("unexpected existence map: %v", got)
	}
}
