package parsers

import (
	"io/fs"
	"strings"

	"gopkg.in/ini.v1"
)

// sectionParser reads Cargo.toml-shaped manifests. This is deliberately not a
// grammar-aware TOML parser: the file is treated as ini-style [section]
// headers over key = value pairs, which is all the dependency sections use.
// Multi-line arrays and other nested structures are skipped, not errors.
type sectionParser struct{}

func (sectionParser) Parse(fsys fs.FS, path string) *DependencyMap {
	data := readFile(fsys, path)
	if data == nil {
		return nil
	}

	file, err := ini.LoadSources(ini.LoadOptions{
		SkipUnrecognizableLines: true,
		AllowBooleanKeys:        true,
	}, data)
	if err != nil {
		return nil
	}

	deps := NewDependencyMap()
	for _, section := range file.Sections() {
		target := classifySection(section.Name())
		if target == "" {
			continue
		}
		for _, key := range section.Keys() {
			name := strings.ToLower(strings.Trim(key.Name(), `"'`))
			if name == "" {
				continue
			}
			value := strings.Trim(key.Value(), `"'`)
			if target == "dev" {
				deps.DevDependencies[name] = value
			} else {
				deps.Dependencies[name] = value
			}
		}
	}
	return deps
}

// classifySection maps a [section] header to a dependency bucket. Suffix
// matching covers dotted and target-qualified forms like
// [tool.poetry.dev-dependencies] and [target.'cfg(unix)'.dependencies].
func classifySection(name string) string {
	name = strings.ToLower(name)
	switch {
	case strings.HasSuffix(name, "dev-dependencies"), strings.HasSuffix(name, "dev_dependencies"):
		return "dev"
	case strings.HasSuffix(name, "dependencies"):
		return "deps"
	default:
		return ""
	}
}
