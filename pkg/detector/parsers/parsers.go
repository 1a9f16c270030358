package parsers

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Format identifies a manifest file format.
type Format string

const (
	FormatPackageJSON  Format = "package.json"
	FormatCargoTOML    Format = "cargo.toml"
	FormatRequirements Format = "requirements.txt"
	FormatSwiftPM      Format = "package.swift"
	FormatGoMod        Format = "go.mod"
)

// ErrUnsupportedFormat is returned by For when asked for a parser that does
// not exist. Unlike every other failure in detection, this one is a
// programming error and is surfaced instead of swallowed.
var ErrUnsupportedFormat = errors.New("unsupported manifest format")

// DependencyMap holds the dependencies declared by a single manifest file.
// Keys are lower-cased package names; values are opaque version strings.
type DependencyMap struct {
	Dependencies    map[string]string
	DevDependencies map[string]string
}

// NewDependencyMap returns an empty, initialized DependencyMap.
func NewDependencyMap() *DependencyMap {
	return &DependencyMap{
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
	}
}

// Has reports whether a dependency is declared in either section.
func (m *DependencyMap) Has(name string) bool {
	if m == nil {
		return false
	}
	name = strings.ToLower(name)
	if _, ok := m.Dependencies[name]; ok {
		return true
	}
	_, ok := m.DevDependencies[name]
	return ok
}

// Len returns the total number of declared dependencies.
func (m *DependencyMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Dependencies) + len(m.DevDependencies)
}

// Parser extracts a DependencyMap from one manifest file. Parse returns nil
// when the file is missing, unreadable, or malformed; a broken manifest never
// aborts detection.
type Parser interface {
	Parse(fsys fs.FS, path string) *DependencyMap
}

// For returns the parser for a manifest format.
func For(format Format) (Parser, error) {
	switch format {
	case FormatPackageJSON:
		return packageJSONParser{}, nil
	case FormatCargoTOML:
		return sectionParser{}, nil
	case FormatRequirements:
		return requirementsParser{}, nil
	case FormatSwiftPM:
		return swiftPMParser{}, nil
	case FormatGoMod:
		return goModParser{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// readFile reads a manifest, returning nil data on any filesystem error.
func readFile(fsys fs.FS, path string) []byte {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil
	}
	return data
}
