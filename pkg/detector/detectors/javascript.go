package detectors

import (
	"stackscout/pkg/detector/frameworks"
	"stackscout/pkg/detector/match"
	"stackscout/pkg/detector/parsers"
)

// JavaScriptDetector covers the js ecosystem: javascript plus typescript,
// npm-family package managers, and the package.json framework tables.
type JavaScriptDetector struct {
	deps      *parsers.DependencyMap
	detection frameworks.Detection
	own       []string
}

func (d *JavaScriptDetector) Ecosystem() string { return "js" }

func (d *JavaScriptDetector) ConfigFiles() []string {
	return []string{"package.json"}
}

func (d *JavaScriptDetector) DetectLanguage(fsys FSReader, r *Result) {
	r.AddLanguage("javascript")

	deps := parseManifest(fsys, parsers.FormatPackageJSON, "package.json")
	if deps.Has("typescript") || fsys.Has("tsconfig.json") {
		r.AddLanguage("typescript")
	}
}

func (d *JavaScriptDetector) DetectTools(fsys FSReader, r *Result) {
	switch {
	case fsys.Has("bun.lockb") || fsys.Has("bun.lock"):
		r.AddTool("bun")
	case fsys.Has(".yarnrc.yml"):
		r.AddTool("yarn-berry")
	case fsys.Has("pnpm-lock.yaml"):
		r.AddTool("pnpm")
	case fsys.Has("yarn.lock"):
		r.AddTool("yarn")
	default:
		r.AddTool("npm")
	}
}

func (d *JavaScriptDetector) DetectFrameworks(fsys FSReader, r *Result) {
	d.deps = parseManifest(fsys, parsers.FormatPackageJSON, "package.json")
	d.detection = frameworks.Detect(d.deps, jsFrameworkPatterns, jsTestPatterns)

	for _, fw := range d.detection.Frameworks {
		r.AddFramework(fw)
		d.own = append(d.own, fw)
	}
	for _, tf := range d.detection.TestFrameworks {
		r.AddTestFramework(tf)
	}
	for _, b := range frameworks.MatchNamed(d.deps, jsBundlerPatterns) {
		r.AddBundler(b)
	}

	// react is usable from source without being a declared dependency
	if !d.deps.Has("react") && hasReactSources(fsys) {
		r.AddFramework("react")
		d.own = append(d.own, "react")
	}
}

func (d *JavaScriptDetector) ResolvePrimary(fsys FSReader, r *Result) {
	if r.Primary != "" {
		return
	}
	switch {
	case d.detection.Primary != "":
		r.Primary = d.detection.Primary
	case len(d.own) > 0:
		r.Primary = d.own[0]
	default:
		r.Primary = "javascript"
	}
}

func hasReactSources(fsys FSReader) bool {
	globs := []string{"*.jsx", "*.tsx"}
	return match.AnyExists(fsys, ".", globs) || match.AnyExists(fsys, "src", globs)
}

var jsFrameworkPatterns = []frameworks.Pattern{
	{Dependency: "react", Framework: "react", Primary: true, Type: "ui"},
	{Dependency: "next", Framework: "nextjs", Primary: true, Requires: []string{"react"}, Type: "meta"},
	{Dependency: "@remix-run/react", Framework: "remix", Primary: true, Requires: []string{"react"}, Type: "meta"},
	{Dependency: "gatsby", Framework: "gatsby", Primary: true, Requires: []string{"react"}, Type: "meta"},
	{Dependency: "vue", Framework: "vue", Primary: true, Type: "ui"},
	{Dependency: "nuxt", Framework: "nuxtjs", Primary: true, Requires: []string{"vue"}, Type: "meta"},
	{Dependency: "svelte", Framework: "svelte", Primary: true, Type: "ui"},
	{Dependency: "@sveltejs/kit", Framework: "sveltekit", Primary: true, Requires: []string{"svelte"}, Type: "meta"},
	{Dependency: "@angular/core", Framework: "angular", Primary: true, Type: "ui"},
	{Dependency: "astro", Framework: "astro", Primary: true, Type: "meta"},
	{Dependency: "@nestjs/core", Framework: "nestjs", Primary: true, Type: "backend"},
	{Dependency: "express", Framework: "express", Type: "backend"},
	{Dependency: "fastify", Framework: "fastify", Type: "backend"},
	{Dependency: "koa", Framework: "koa", Type: "backend"},
}

var jsTestPatterns = []frameworks.NamedPattern{
	{Dependency: "jest", Name: "jest"},
	{Dependency: "vitest", Name: "vitest"},
	{Dependency: "mocha", Name: "mocha"},
	{Dependency: "jasmine", Name: "jasmine"},
	{Dependency: "cypress", Name: "cypress"},
	{Dependency: "@playwright/test", Name: "playwright"},
}

var jsBundlerPatterns = []frameworks.NamedPattern{
	{Dependency: "webpack", Name: "webpack"},
	{Dependency: "vite", Name: "vite"},
	{Dependency: "rollup", Name: "rollup"},
	{Dependency: "esbuild", Name: "esbuild"},
	{Dependency: "parcel", Name: "parcel"},
}
