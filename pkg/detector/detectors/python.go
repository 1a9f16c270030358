package detectors

import (
	"stackscout/pkg/detector/frameworks"
	"stackscout/pkg/detector/parsers"
)

// PythonDetector reads requirements.txt and pyproject.toml; both feed one
// merged dependency map since projects routinely carry either or both.
type PythonDetector struct {
	detection frameworks.Detection
	own       []string
}

func (d *PythonDetector) Ecosystem() string { return "python" }

func (d *PythonDetector) ConfigFiles() []string {
	return []string{"requirements.txt", "pyproject.toml", "setup.py", "Pipfile"}
}

func (d *PythonDetector) DetectLanguage(fsys FSReader, r *Result) {
	r.AddLanguage("python")
}

func (d *PythonDetector) DetectTools(fsys FSReader, r *Result) {
	switch {
	case fsys.Has("poetry.lock"):
		r.AddTool("poetry")
	case fsys.Has("uv.lock"):
		r.AddTool("uv")
	case fsys.Has("Pipfile") || fsys.Has("Pipfile.lock"):
		r.AddTool("pipenv")
	default:
		r.AddTool("pip")
	}
}

func (d *PythonDetector) DetectFrameworks(fsys FSReader, r *Result) {
	reqs := parseManifest(fsys, parsers.FormatRequirements, "requirements.txt")
	pyproject := parseManifest(fsys, parsers.FormatCargoTOML, "pyproject.toml")
	deps := mergeDeps(reqs, pyproject)

	d.detection = frameworks.Detect(deps, pythonFrameworkPatterns, pythonTestPatterns)
	for _, fw := range d.detection.Frameworks {
		r.AddFramework(fw)
		d.own = append(d.own, fw)
	}
	for _, tf := range d.detection.TestFrameworks {
		r.AddTestFramework(tf)
	}
}

func (d *PythonDetector) ResolvePrimary(fsys FSReader, r *Result) {
	if r.Primary != "" {
		return
	}
	switch {
	case d.detection.Primary != "":
		r.Primary = d.detection.Primary
	case len(d.own) > 0:
		r.Primary = d.own[0]
	default:
		r.Primary = "python"
	}
}

var pythonFrameworkPatterns = []frameworks.Pattern{
	{Dependency: "django", Framework: "django", Primary: true, Type: "web"},
	{Dependency: "flask", Framework: "flask", Primary: true, Type: "web"},
	{Dependency: "fastapi", Framework: "fastapi", Primary: true, Type: "web"},
	{Dependency: "django-rest-framework", Framework: "drf", Requires: []string{"django"}, Type: "web"},
	{Dependency: "djangorestframework", Framework: "drf", Requires: []string{"django"}, Type: "web"},
	{Dependency: "celery", Framework: "celery", Type: "worker"},
	{Dependency: "sqlalchemy", Framework: "sqlalchemy", Type: "orm"},
}

var pythonTestPatterns = []frameworks.NamedPattern{
	{Dependency: "pytest", Name: "pytest"},
	{Dependency: "nose2", Name: "nose2"},
	{Dependency: "tox", Name: "tox"},
	{Dependency: "hypothesis", Name: "hypothesis"},
}
