package cmd

import (
	"fmt"
	"os"

	"stackscout/pkg/config"
	"stackscout/pkg/detector"
	"stackscout/pkg/generator"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var generateOutput string

// generateCmd runs detection and emits the resulting configuration bundle.
var generateCmd = &cobra.Command{
	Use:   "generate [PROJECT_PATH]",
	Short: "Generate tool configuration from the detected stack",
	Long: `Detects the project's stack, applies layered user preferences, and emits
the generated configuration (gitignore entries, lint hooks, commands) as YAML.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) {
	projectPath := resolveProjectPath(args)

	result := detector.Detect(projectPath)
	prefs, err := config.Load(projectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading preferences: %v\n", err)
		os.Exit(1)
	}

	bundle := generator.Generate(result, prefs)
	data, err := yaml.Marshal(bundle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding configuration: %v\n", err)
		os.Exit(1)
	}

	if generateOutput == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(generateOutput, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", generateOutput, err)
		os.Exit(1)
	}
	fmt.Printf("%s\n", endingMsgStyle.Render("Configuration written to "+generateOutput))
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write configuration to a file instead of stdout")
}
