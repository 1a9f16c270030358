package frameworks

import (
	"reflect"
	"testing"

	"stackscout/pkg/detector/parsers"
)

func depMap(deps map[string]string) *parsers.DependencyMap {
	m := parsers.NewDependencyMap()
	for k, v := range deps {
		m.Dependencies[k] = v
	}
	return m
}

var jsPatterns = []Pattern{
	{Dependency: "react", Framework: "react", Primary: true},
	{Dependency: "next", Framework: "nextjs", Primary: true, Requires: []string{"react"}},
	{Dependency: "express", Framework: "express"},
}

func TestMetaFrameworkTieBreak(t *testing.T) {
	deps := depMap(map[string]string{"react": "18.2.0", "next": "14.0.0"})

	got := Detect(deps, jsPatterns, nil)

	if got.Primary != "nextjs" {
		t.Fatalf("expected nextjs to beat react via requires tie-break, got %q", got.Primary)
	}
	if !reflect.DeepEqual(got.Frameworks, []string{"react", "nextjs"}) {
		t.Fatalf("expected pattern-table order, got %v", got.Frameworks)
	}
}

func TestRequirementGating(t *testing.T) {
	deps := depMap(map[string]string{"next": "14.0.0"})

	got := Detect(deps, jsPatterns, nil)

	for _, fw := range got.Frameworks {
		if fw == "nextjs" {
			t.Fatal("nextjs without react must be skipped entirely")
		}
	}
	if got.Primary == "nextjs" {
		t.Fatal("gated framework must not become primary")
	}
}

func TestSinglePrimaryCandidate(t *testing.T) {
	deps := depMap(map[string]string{"react": "18.2.0", "express": "4.19.0"})

	got := Detect(deps, jsPatterns, nil)

	if got.Primary != "react" {
		t.Fatalf("expected react, got %q", got.Primary)
	}
}

func TestNoPrimaryWithoutCandidates(t *testing.T) {
	deps := depMap(map[string]string{"express": "4.19.0"})

	got := Detect(deps, jsPatterns, nil)

	if got.Primary != "" {
		t.Fatalf("expected empty primary, got %q", got.Primary)
	}
	if !reflect.DeepEqual(got.Frameworks, []string{"express"}) {
		t.Fatalf("expected [express], got %v", got.Frameworks)
	}
}

func TestFirstPrimaryWinsWithoutRequires(t *testing.T) {
	patterns := []Pattern{
		{Dependency: "flask", Framework: "flask", Primary: true},
		{Dependency: "fastapi", Framework: "fastapi", Primary: true},
	}
	deps := depMap(map[string]string{"flask": "3.0", "fastapi": "0.110"})

	got := Detect(deps, patterns, nil)

	if got.Primary != "flask" {
		t.Fatalf("expected first-encountered primary, got %q", got.Primary)
	}
}

func TestTestFrameworkDetection(t *testing.T) {
	testPatterns := []NamedPattern{
		{Dependency: "jest", Name: "jest"},
		{Dependency: "vitest", Name: "vitest"},
	}
	deps := parsers.NewDependencyMap()
	deps.DevDependencies["jest"] = "^29.0.0"

	got := Detect(deps, jsPatterns, testPatterns)

	if !reflect.DeepEqual(got.TestFrameworks, []string{"jest"}) {
		t.Fatalf("expected [jest], got %v", got.TestFrameworks)
	}
}

func TestValidateRequirements(t *testing.T) {
	deps := depMap(map[string]string{"vue": "3.4"})

	if !ValidateRequirements(nil, deps) {
		t.Error("empty requires must be satisfied")
	}
	if !ValidateRequirements([]string{"vue"}, deps) {
		t.Error("declared requirement must be satisfied")
	}
	if ValidateRequirements([]string{"vue", "nuxt"}, deps) {
		t.Error("partially declared requires must fail")
	}
}
