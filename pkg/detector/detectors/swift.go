package detectors

import (
	"stackscout/pkg/detector/frameworks"
	"stackscout/pkg/detector/parsers"
)

// SwiftDetector reads Package.swift through the declarative-call parser.
type SwiftDetector struct {
	detection frameworks.Detection
	own       []string
}

func (d *SwiftDetector) Ecosystem() string { return "swift" }

func (d *SwiftDetector) ConfigFiles() []string {
	return []string{"Package.swift"}
}

func (d *SwiftDetector) DetectLanguage(fsys FSReader, r *Result) {
	r.AddLanguage("swift")
}

func (d *SwiftDetector) DetectTools(fsys FSReader, r *Result) {
	r.AddTool("spm")
}

func (d *SwiftDetector) DetectFrameworks(fsys FSReader, r *Result) {
	deps := parseManifest(fsys, parsers.FormatSwiftPM, "Package.swift")

	d.detection = frameworks.Detect(deps, swiftFrameworkPatterns, swiftTestPatterns)
	for _, fw := range d.detection.Frameworks {
		r.AddFramework(fw)
		d.own = append(d.own, fw)
	}
	for _, tf := range d.detection.TestFrameworks {
		r.AddTestFramework(tf)
	}
}

func (d *SwiftDetector) ResolvePrimary(fsys FSReader, r *Result) {
	if r.Primary != "" {
		return
	}
	switch {
	case d.detection.Primary != "":
		r.Primary = d.detection.Primary
	case len(d.own) > 0:
		r.Primary = d.own[0]
	default:
		r.Primary = "swift"
	}
}

var swiftFrameworkPatterns = []frameworks.Pattern{
	{Dependency: "vapor", Framework: "vapor", Primary: true, Type: "web"},
	{Dependency: "kitura", Framework: "kitura", Primary: true, Type: "web"},
	{Dependency: "swift-nio", Framework: "swift-nio", Type: "networking"},
}

var swiftTestPatterns = []frameworks.NamedPattern{
	{Dependency: "quick", Name: "quick"},
	{Dependency: "nimble", Name: "nimble"},
}
