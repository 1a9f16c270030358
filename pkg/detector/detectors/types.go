package detectors

import "io/fs"

// FSReader is the filesystem view a language detector works against.
// The concrete reader lives in the parent detector package.
type FSReader interface {
	fs.FS
	Has(path string) bool
	Read(path string) string
	DirExists(path string) bool
}

// Result is the shared detection state for one run. Detectors mutate it
// additively: entries are appended, never removed or overwritten.
type Result struct {
	Primary        string   `json:"primary"`
	Languages      []string `json:"languages"`
	Frameworks     []string `json:"frameworks"`
	Tools          []string `json:"tools"`
	TestFrameworks []string `json:"test_frameworks"`
	Bundlers       []string `json:"bundlers"`
}

// NewResult returns an empty result with all sets initialized, so JSON
// output renders arrays instead of null.
func NewResult() *Result {
	return &Result{
		Languages:      []string{},
		Frameworks:     []string{},
		Tools:          []string{},
		TestFrameworks: []string{},
		Bundlers:       []string{},
	}
}

func (r *Result) AddLanguage(name string)  { r.Languages = appendUnique(r.Languages, name) }
func (r *Result) AddFramework(name string) { r.Frameworks = appendUnique(r.Frameworks, name) }
func (r *Result) AddTool(name string)      { r.Tools = appendUnique(r.Tools, name) }
func (r *Result) AddTestFramework(name string) {
	r.TestFrameworks = appendUnique(r.TestFrameworks, name)
}
func (r *Result) AddBundler(name string) { r.Bundlers = appendUnique(r.Bundlers, name) }

// HasLanguage reports whether a language was already recorded.
func (r *Result) HasLanguage(name string) bool {
	for _, l := range r.Languages {
		if l == name {
			return true
		}
	}
	return false
}

func appendUnique(list []string, name string) []string {
	for _, existing := range list {
		if existing == name {
			return list
		}
	}
	return append(list, name)
}

// LanguageDetector is one ecosystem's detection logic. The four phases run
// in fixed order; the driver in the parent package skips the detector
// entirely when none of its config files exist.
type LanguageDetector interface {
	Ecosystem() string
	ConfigFiles() []string
	DetectLanguage(fsys FSReader, r *Result)
	DetectTools(fsys FSReader, r *Result)
	DetectFrameworks(fsys FSReader, r *Result)
	ResolvePrimary(fsys FSReader, r *Result)
}

// Registry returns fresh detector instances in registration order. The order
// is semantically meaningful: it decides the multi-ecosystem primary
// tie-break, so it must stay stable.
func Registry() []LanguageDetector {
	return []LanguageDetector{
		&JavaScriptDetector{},
		&PythonDetector{},
		&RustDetector{},
		&SwiftDetector{},
		&GoDetector{},
	}
}

// ecosystems maps a detected language to its toolchain family. JavaScript
// and TypeScript share one toolchain and count as a single ecosystem.
var ecosystems = map[string]string{
	"javascript": "js",
	"typescript": "js",
	"python":     "python",
	"rust":       "rust",
	"swift":      "swift",
	"go":         "go",
}

// EcosystemOf returns the ecosystem a language belongs to; unknown languages
// map to themselves.
func EcosystemOf(language string) string {
	if eco, ok := ecosystems[language]; ok {
		return eco
	}
	return language
}
