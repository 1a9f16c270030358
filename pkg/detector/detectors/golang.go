package detectors

import (
	"stackscout/pkg/detector/frameworks"
	"stackscout/pkg/detector/parsers"
)

// GoDetector reads go.mod require directives.
type GoDetector struct {
	detection frameworks.Detection
	own       []string
}

func (d *GoDetector) Ecosystem() string { return "go" }

func (d *GoDetector) ConfigFiles() []string {
	return []string{"go.mod"}
}

func (d *GoDetector) DetectLanguage(fsys FSReader, r *Result) {
	r.AddLanguage("go")
}

func (d *GoDetector) DetectTools(fsys FSReader, r *Result) {
	r.AddTool("go")
}

func (d *GoDetector) DetectFrameworks(fsys FSReader, r *Result) {
	deps := parseManifest(fsys, parsers.FormatGoMod, "go.mod")

	d.detection = frameworks.Detect(deps, goFrameworkPatterns, goTestPatterns)
	for _, fw := range d.detection.Frameworks {
		r.AddFramework(fw)
		d.own = append(d.own, fw)
	}
	for _, tf := range d.detection.TestFrameworks {
		r.AddTestFramework(tf)
	}
}

func (d *GoDetector) ResolvePrimary(fsys FSReader, r *Result) {
	if r.Primary != "" {
		return
	}
	switch {
	case d.detection.Primary != "":
		r.Primary = d.detection.Primary
	case len(d.own) > 0:
		r.Primary = d.own[0]
	default:
		r.Primary = "go"
	}
}

var goFrameworkPatterns = []frameworks.Pattern{
	{Dependency: "gin", Framework: "gin", Primary: true, Type: "web"},
	{Dependency: "echo", Framework: "echo", Primary: true, Type: "web"},
	{Dependency: "fiber", Framework: "fiber", Primary: true, Type: "web"},
	{Dependency: "chi", Framework: "chi", Primary: true, Type: "web"},
	{Dependency: "cobra", Framework: "cobra", Type: "cli"},
}

var goTestPatterns = []frameworks.NamedPattern{
	{Dependency: "testify", Name: "testify"},
	{Dependency: "gomega", Name: "gomega"},
	{Dependency: "ginkgo", Name: "ginkgo"},
}
