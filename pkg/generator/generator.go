// Package generator turns a detection result into tool configuration:
// gitignore entries, lint hooks, and dev/build/test commands.
package generator

import (
	"stackscout/pkg/config"
	"stackscout/pkg/detector"
	"stackscout/pkg/detector/detectors"
)

// Hook is a named check to run before commits.
type Hook struct {
	Name    string `yaml:"name"`
	Command string `yaml:"command"`
}

// Bundle is the configuration produced for one project.
type Bundle struct {
	GitignoreEntries []string          `yaml:"gitignore"`
	Hooks            []Hook            `yaml:"hooks,omitempty"`
	Commands         map[string]string `yaml:"commands,omitempty"`
}

// Generate builds the configuration bundle for a detection result.
// Preferences override generated commands and append gitignore entries.
// There is no feedback into detection: the result is read, never changed.
func Generate(result detector.Result, prefs config.Preferences) Bundle {
	bundle := Bundle{Commands: map[string]string{}}
	seen := map[string]bool{}

	addIgnore := func(entries ...string) {
		for _, e := range entries {
			if !seen[e] {
				seen[e] = true
				bundle.GitignoreEntries = append(bundle.GitignoreEntries, e)
			}
		}
	}

	for _, lang := range result.Languages {
		addIgnore(gitignoreByLanguage[lang]...)
		if hook, ok := lintHooks[lang]; ok {
			bundle.Hooks = append(bundle.Hooks, hook)
		}
	}
	for _, fw := range result.Frameworks {
		addIgnore(gitignoreByFramework[fw]...)
	}

	// first-detected ecosystem supplies the commands
	for _, lang := range result.Languages {
		eco := detectors.EcosystemOf(lang)
		for name, cmd := range commandsFor(eco, result, prefs) {
			if _, exists := bundle.Commands[name]; !exists {
				bundle.Commands[name] = cmd
			}
		}
	}

	addIgnore(prefs.ExtraGitignore...)
	for name, cmd := range prefs.Commands {
		bundle.Commands[name] = cmd
	}
	return bundle
}

func commandsFor(eco string, result detector.Result, prefs config.Preferences) map[string]string {
	switch eco {
	case "js":
		pm := prefs.PackageManagers["js"]
		if pm == "" {
			pm = jsTool(result.Tools)
		}
		return map[string]string{
			"dev":   runCommand(pm, "dev"),
			"build": runCommand(pm, "build"),
			"test":  runCommand(pm, "test"),
		}
	case "python":
		return pythonCommands(result, prefs)
	case "rust":
		return map[string]string{
			"dev":   "cargo run",
			"build": "cargo build",
			"test":  "cargo test",
		}
	case "swift":
		return map[string]string{
			"dev":   "swift run",
			"build": "swift build",
			"test":  "swift test",
		}
	case "go":
		return map[string]string{
			"dev":   "go run .",
			"build": "go build ./...",
			"test":  "go test ./...",
		}
	default:
		return nil
	}
}

func pythonCommands(result detector.Result, prefs config.Preferences) map[string]string {
	prefix := ""
	tool := prefs.PackageManagers["python"]
	if tool == "" {
		tool = pythonTool(result.Tools)
	}
	switch tool {
	case "poetry":
		prefix = "poetry run "
	case "pipenv":
		prefix = "pipenv run "
	case "uv":
		prefix = "uv run "
	}

	cmds := map[string]string{}
	switch {
	case hasName(result.Frameworks, "django"):
		cmds["dev"] = prefix + "python manage.py runserver"
	case hasName(result.Frameworks, "flask"):
		cmds["dev"] = prefix + "flask run"
	case hasName(result.Frameworks, "fastapi"):
		cmds["dev"] = prefix + "uvicorn main:app --reload"
	}
	if hasName(result.TestFrameworks, "pytest") {
		cmds["test"] = prefix + "pytest"
	} else {
		cmds["test"] = prefix + "python -m unittest"
	}
	return cmds
}

// jsTool picks the package manager recorded by the js detector; npm is the
// detector's own default, so it doubles as the fallback here.
func jsTool(tools []string) string {
	for _, tool := range tools {
		switch tool {
		case "npm", "yarn", "yarn-berry", "pnpm", "bun":
			return tool
		}
	}
	return "npm"
}

func pythonTool(tools []string) string {
	for _, tool := range tools {
		switch tool {
		case "pip", "poetry", "pipenv", "uv":
			return tool
		}
	}
	return "pip"
}

func runCommand(pm, script string) string {
	switch pm {
	case "yarn", "yarn-berry":
		return "yarn " + script
	case "npm":
		return "npm run " + script
	default:
		return pm + " run " + script
	}
}

func hasName(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}

var gitignoreByLanguage = map[string][]string{
	"javascript": {"node_modules/", "dist/", ".env"},
	"typescript": {"*.tsbuildinfo"},
	"python":     {"__pycache__/", "*.pyc", ".venv/"},
	"rust":       {"target/"},
	"swift":      {".build/", "*.xcodeproj"},
	"go":         {"bin/", "*.test"},
}

var gitignoreByFramework = map[string][]string{
	"nextjs": {".next/"},
	"nuxtjs": {".nuxt/", ".output/"},
	"gatsby": {".cache/", "public/"},
	"astro":  {".astro/"},
	"remix":  {".cache/"},
	"django": {"db.sqlite3", "staticfiles/"},
}

var lintHooks = map[string]Hook{
	"javascript": {Name: "eslint", Command: "npx eslint ."},
	"typescript": {Name: "typecheck", Command: "npx tsc --noEmit"},
	"python":     {Name: "ruff", Command: "ruff check ."},
	"rust":       {Name: "clippy", Command: "cargo clippy -- -D warnings"},
	"swift":      {Name: "swiftlint", Command: "swiftlint"},
	"go":         {Name: "vet", Command: "go vet ./..."},
}
