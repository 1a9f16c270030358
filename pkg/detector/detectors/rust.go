package detectors

import (
	"stackscout/pkg/detector/frameworks"
	"stackscout/pkg/detector/parsers"
)

// RustDetector reads Cargo.toml through the section parser.
type RustDetector struct {
	detection frameworks.Detection
	own       []string
}

func (d *RustDetector) Ecosystem() string { return "rust" }

func (d *RustDetector) ConfigFiles() []string {
	return []string{"Cargo.toml"}
}

func (d *RustDetector) DetectLanguage(fsys FSReader, r *Result) {
	r.AddLanguage("rust")
}

func (d *RustDetector) DetectTools(fsys FSReader, r *Result) {
	r.AddTool("cargo")
}

func (d *RustDetector) DetectFrameworks(fsys FSReader, r *Result) {
	deps := parseManifest(fsys, parsers.FormatCargoTOML, "Cargo.toml")

	d.detection = frameworks.Detect(deps, rustFrameworkPatterns, rustTestPatterns)
	for _, fw := range d.detection.Frameworks {
		r.AddFramework(fw)
		d.own = append(d.own, fw)
	}
	for _, tf := range d.detection.TestFrameworks {
		r.AddTestFramework(tf)
	}
}

func (d *RustDetector) ResolvePrimary(fsys FSReader, r *Result) {
	if r.Primary != "" {
		return
	}
	switch {
	case d.detection.Primary != "":
		r.Primary = d.detection.Primary
	case len(d.own) > 0:
		r.Primary = d.own[0]
	default:
		r.Primary = "rust"
	}
}

var rustFrameworkPatterns = []frameworks.Pattern{
	{Dependency: "actix-web", Framework: "actix-web", Primary: true, Type: "web"},
	// axum without a tokio runtime is not a running service
	{Dependency: "axum", Framework: "axum", Primary: true, Requires: []string{"tokio"}, Type: "web"},
	{Dependency: "rocket", Framework: "rocket", Primary: true, Type: "web"},
	{Dependency: "tokio", Framework: "tokio", Type: "runtime"},
	{Dependency: "serde", Framework: "serde", Type: "serialization"},
}

var rustTestPatterns = []frameworks.NamedPattern{
	{Dependency: "criterion", Name: "criterion"},
	{Dependency: "proptest", Name: "proptest"},
}
