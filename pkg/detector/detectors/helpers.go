package detectors

import "stackscout/pkg/detector/parsers"

// parseManifest parses one manifest, degrading to an empty map so callers
// never branch on nil. The format constants are static, so For cannot fail
// here; a nil parser would be a bug in the tables, not the environment.
func parseManifest(fsys FSReader, format parsers.Format, path string) *parsers.DependencyMap {
	p, err := parsers.For(format)
	if err != nil {
		return parsers.NewDependencyMap()
	}
	deps := p.Parse(fsys, path)
	if deps == nil {
		return parsers.NewDependencyMap()
	}
	return deps
}

// mergeDeps folds b into a copy of a; a's entries win on collision.
func mergeDeps(a, b *parsers.DependencyMap) *parsers.DependencyMap {
	merged := parsers.NewDependencyMap()
	for k, v := range b.Dependencies {
		merged.Dependencies[k] = v
	}
	for k, v := range b.DevDependencies {
		merged.DevDependencies[k] = v
	}
	for k, v := range a.Dependencies {
		merged.Dependencies[k] = v
	}
	for k, v := range a.DevDependencies {
		merged.DevDependencies[k] = v
	}
	return merged
}
