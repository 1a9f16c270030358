// Package frameworks classifies a project's declared dependencies against
// static framework pattern tables.
package frameworks

import "stackscout/pkg/detector/parsers"

// Pattern activates a framework when its Dependency key is declared and every
// entry of Requires is declared too. Patterns flagged Primary compete to name
// the project's primary framework. Type is informational metadata only.
type Pattern struct {
	Dependency string
	Framework  string
	Primary    bool
	Requires   []string
	Type       string
}

// NamedPattern is a plain dependency→name mapping used for test-framework
// and bundler tables, where no gating or primary selection applies.
type NamedPattern struct {
	Dependency string
	Name       string
}

// Detection is the engine's output for one dependency map.
type Detection struct {
	Frameworks     []string
	TestFrameworks []string
	Primary        string
}

// Detect runs the pattern tables against a dependency map. Framework order
// follows the pattern table; duplicates are suppressed. The primary follows
// the meta-framework rule: with several primary candidates, the first one
// carrying a non-empty Requires list wins, because a framework that requires
// another framework is the more specific signal.
func Detect(deps *parsers.DependencyMap, patterns []Pattern, testPatterns []NamedPattern) Detection {
	var out Detection
	seen := map[string]bool{}
	var primaries []Pattern

	for _, p := range patterns {
		if !deps.Has(p.Dependency) {
			continue
		}
		if !ValidateRequirements(p.Requires, deps) {
			continue
		}
		if !seen[p.Framework] {
			seen[p.Framework] = true
			out.Frameworks = append(out.Frameworks, p.Framework)
		}
		if p.Primary {
			primaries = append(primaries, p)
		}
	}

	out.Primary = pickPrimary(primaries)
	out.TestFrameworks = MatchNamed(deps, testPatterns)
	return out
}

// ValidateRequirements reports whether every required dependency is declared.
// An empty requirement list is trivially satisfied.
func ValidateRequirements(requires []string, deps *parsers.DependencyMap) bool {
	for _, name := range requires {
		if !deps.Has(name) {
			return false
		}
	}
	return true
}

// MatchNamed returns the names whose dependency key is declared, in table
// order, deduplicated.
func MatchNamed(deps *parsers.DependencyMap, patterns []NamedPattern) []string {
	var names []string
	seen := map[string]bool{}
	for _, p := range patterns {
		if deps.Has(p.Dependency) && !seen[p.Name] {
			seen[p.Name] = true
			names = append(names, p.Name)
		}
	}
	return names
}

func pickPrimary(candidates []Pattern) string {
	switch len(candidates) {
	case 0:
		return ""
	case 1:
		return candidates[0].Framework
	}
	for _, c := range candidates {
		if len(c.Requires) > 0 {
			return c.Framework
		}
	}
	return candidates[0].Framework
}
