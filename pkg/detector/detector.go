// Package detector inspects a project directory and classifies its language
// ecosystems, package managers, frameworks, test frameworks, and bundlers.
package detector

import (
	"fmt"
	"io/fs"
	"os"

	"stackscout/pkg/detector/detectors"
	"stackscout/pkg/detector/match"
)

// Result is the normalized detection output consumed by the configuration
// generator.
type Result = detectors.Result

// Detect runs every language detector against the project root and merges
// their findings. It is a total function: nonexistent paths, empty
// directories, and corrupted manifests all produce a valid result with
// primary "generic" rather than an error.
func Detect(root string) Result {
	return DetectFS(os.DirFS(root))
}

// DetectFS is Detect over an explicit filesystem, which is what the tests
// drive with fstest.MapFS.
func DetectFS(fsys fs.FS) (out Result) {
	out = *detectors.NewResult()
	out.Primary = "generic"

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "detection aborted: %v\n", r)
			empty := detectors.NewResult()
			empty.Primary = "generic"
			out = *empty
		}
	}()

	reader := NewFSReader(fsys)
	result := detectors.NewResult()

	// Registration order is load-bearing: it decides the multi-ecosystem
	// primary override below.
	for _, d := range detectors.Registry() {
		runDetector(d, reader, result)
	}

	resolvePrimary(result)
	out = *result
	return out
}

// runDetector drives one detector through its fixed four-phase pipeline,
// skipping it entirely when none of its config files exist.
func runDetector(d detectors.LanguageDetector, fsys detectors.FSReader, r *detectors.Result) bool {
	if !match.AnyExists(fsys, ".", d.ConfigFiles()) {
		return false
	}
	d.DetectLanguage(fsys, r)
	d.DetectTools(fsys, r)
	d.DetectFrameworks(fsys, r)
	d.ResolvePrimary(fsys, r)
	return true
}

// resolvePrimary applies the cross-ecosystem arbitration rule: when more
// than one ecosystem is present, the first detected language wins over any
// framework-level primary, because cross-ecosystem ambiguity defers to
// detection order, not framework specificity. A single-ecosystem project
// (even JS+TS) keeps its detector-chosen primary.
func resolvePrimary(r *detectors.Result) {
	seen := map[string]bool{}
	count := 0
	for _, lang := range r.Languages {
		eco := detectors.EcosystemOf(lang)
		if !seen[eco] {
			seen[eco] = true
			count++
		}
	}
	if count > 1 {
		r.Primary = r.Languages[0]
	}
	if r.Primary == "" {
		r.Primary = "generic"
	}
}
