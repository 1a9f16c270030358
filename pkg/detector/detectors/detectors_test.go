package detectors

import (
	"io"
	"io/fs"
	"reflect"
	"testing"
	"testing/fstest"
)

// mapReader adapts fstest.MapFS to the FSReader interface.
type mapReader struct {
	fstest.MapFS
}

func (r mapReader) Has(path string) bool {
	_, err := fs.Stat(r.MapFS, path)
	return err == nil
}

func (r mapReader) Read(path string) string {
	f, err := r.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()
	data, _ := io.ReadAll(f)
	return string(data)
}

func (r mapReader) DirExists(path string) bool {
	fi, err := fs.Stat(r.MapFS, path)
	return err == nil && fi.IsDir()
}

func TestResultAppendUnique(t *testing.T) {
	r := NewResult()
	r.AddLanguage("javascript")
	r.AddLanguage("typescript")
	r.AddLanguage("javascript")

	want := []string{"javascript", "typescript"}
	if !reflect.DeepEqual(r.Languages, want) {
		t.Fatalf("expected insertion-ordered unique languages %v, got %v", want, r.Languages)
	}
}

func TestEcosystemOf(t *testing.T) {
	tests := []struct {
		language string
		want     string
	}{
		{"javascript", "js"},
		{"typescript", "js"},
		{"python", "python"},
		{"rust", "rust"},
		{"elixir", "elixir"}, // unknown languages map to themselves
	}

	for _, tt := range tests {
		if got := EcosystemOf(tt.language); got != tt.want {
			t.Errorf("EcosystemOf(%q) = %q, want %q", tt.language, got, tt.want)
		}
	}
}

func TestRegistryOrderIsStable(t *testing.T) {
	want := []string{"js", "python", "rust", "swift", "go"}

	var got []string
	for _, d := range Registry() {
		got = append(got, d.Ecosystem())
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("registration order changed: got %v, want %v", got, want)
	}
}

func TestPythonDetectorPoetryProject(t *testing.T) {
	fsys := mapReader{fstest.MapFS{
		"pyproject.toml": {
			Data: []byte(`[tool.poetry.dependencies]
django = "^5.0"

[tool.poetry.dev-dependencies]
pytest = "^8.0"
`),
			Mode: 0o644,
		},
		"poetry.lock": {Data: []byte(""), Mode: 0o644},
	}}

	d := &PythonDetector{}
	r := NewResult()
	d.DetectLanguage(fsys, r)
	d.DetectTools(fsys, r)
	d.DetectFrameworks(fsys, r)
	d.ResolvePrimary(fsys, r)

	if !reflect.DeepEqual(r.Languages, []string{"python"}) {
		t.Errorf("expected [python], got %v", r.Languages)
	}
	if !reflect.DeepEqual(r.Tools, []string{"poetry"}) {
		t.Errorf("expected [poetry], got %v", r.Tools)
	}
	if !reflect.DeepEqual(r.Frameworks, []string{"django"}) {
		t.Errorf("expected [django], got %v", r.Frameworks)
	}
	if !reflect.DeepEqual(r.TestFrameworks, []string{"pytest"}) {
		t.Errorf("expected [pytest], got %v", r.TestFrameworks)
	}
	if r.Primary != "django" {
		t.Errorf("expected primary django, got %q", r.Primary)
	}
}

func TestSwiftDetectorVaporProject(t *testing.T) {
	fsys := mapReader{fstest.MapFS{
		"Package.swift": {
			Data: []byte(`let package = Package(
    name: "api",
    dependencies: [
        .package(url: "https://github.com/vapor/vapor.git", from: "4.0.0"),
    ]
)
`),
			Mode: 0o644,
		},
	}}

	d := &SwiftDetector{}
	r := NewResult()
	d.DetectLanguage(fsys, r)
	d.DetectTools(fsys, r)
	d.DetectFrameworks(fsys, r)
	d.ResolvePrimary(fsys, r)

	if r.Primary != "vapor" {
		t.Errorf("expected primary vapor, got %q", r.Primary)
	}
	if !reflect.DeepEqual(r.Tools, []string{"spm"}) {
		t.Errorf("expected [spm], got %v", r.Tools)
	}
}

func TestGoDetectorGinProject(t *testing.T) {
	fsys := mapReader{fstest.MapFS{
		"go.mod": {
			Data: []byte("module api\n\ngo 1.24\n\nrequire github.com/gin-gonic/gin v1.10.0\n"),
			Mode: 0o644,
		},
	}}

	d := &GoDetector{}
	r := NewResult()
	d.DetectLanguage(fsys, r)
	d.DetectTools(fsys, r)
	d.DetectFrameworks(fsys, r)
	d.ResolvePrimary(fsys, r)

	if r.Primary != "gin" {
		t.Errorf("expected primary gin, got %q", r.Primary)
	}
}

func TestJavaScriptDetectorDoesNotOverwritePrimary(t *testing.T) {
	fsys := mapReader{fstest.MapFS{
		"package.json": {Data: []byte(`{"dependencies": {"react": "18"}}`), Mode: 0o644},
	}}

	d := &JavaScriptDetector{}
	r := NewResult()
	r.Primary = "django"
	d.DetectFrameworks(fsys, r)
	d.ResolvePrimary(fsys, r)

	if r.Primary != "django" {
		t.Errorf("detectors must not overwrite an existing primary, got %q", r.Primary)
	}
}
