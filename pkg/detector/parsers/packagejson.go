package parsers

import (
	"io/fs"
	"strings"

	"github.com/tidwall/gjson"
)

// packageJSONParser reads package.json-shaped manifests: a single JSON object
// with "dependencies" and "devDependencies" name→version maps.
type packageJSONParser struct{}

func (packageJSONParser) Parse(fsys fs.FS, path string) *DependencyMap {
	data := readFile(fsys, path)
	if data == nil || !gjson.ValidBytes(data) {
		return nil
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil
	}

	deps := NewDependencyMap()
	collectObject(doc.Get("dependencies"), deps.Dependencies)
	collectObject(doc.Get("devDependencies"), deps.DevDependencies)
	return deps
}

func collectObject(obj gjson.Result, into map[string]string) {
	if !obj.IsObject() {
		return
	}
	obj.ForEach(func(key, value gjson.Result) bool {
		name := strings.ToLower(key.String())
		if name != "" {
			into[name] = value.String()
		}
		return true
	})
}
