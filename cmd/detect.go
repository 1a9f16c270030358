package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"stackscout/pkg/detector"

	"github.com/spf13/cobra"
)

// detectCmd prints the raw detection result without any generation step.
var detectCmd = &cobra.Command{
	Use:   "detect [PROJECT_PATH]",
	Short: "Detect languages, frameworks, and tools for a project",
	Long: `Runs every language detector against the project and prints the merged
detection result as JSON. Detection is read-only and always succeeds: an
unrecognized or empty directory reports the primary "generic".`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDetect,
}

func runDetect(cmd *cobra.Command, args []string) {
	projectPath := resolveProjectPath(args)

	result := detector.Detect(projectPath)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
