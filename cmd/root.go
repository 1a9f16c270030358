package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"stackscout/cmd/ui/detection"
	"stackscout/pkg/config"
	"stackscout/pkg/detector"
	"stackscout/pkg/generator"
	"stackscout/pkg/util"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const Version = "0.1.0"

var (
	jsonOutput      bool
	skipInteractive bool

	logoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	endingMsgStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	tipMsgStyle    = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("190")).Italic(true)
)

const Logo = `
███████╗████████╗ █████╗  ██████╗██╗  ██╗███████╗ ██████╗ ██████╗ ██╗   ██╗████████╗
██╔════╝╚══██╔══╝██╔══██╗██╔════╝██║ ██╔╝██╔════╝██╔════╝██╔═══██╗██║   ██║╚══██╔══╝
███████╗   ██║   ███████║██║     █████╔╝ ███████╗██║     ██║   ██║██║   ██║   ██║
╚════██║   ██║   ██╔══██║██║     ██╔═██╗ ╚════██║██║     ██║   ██║██║   ██║   ██║
███████║   ██║   ██║  ██║╚██████╗██║  ██╗███████║╚██████╗╚██████╔╝╚██████╔╝   ██║
╚══════╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚══════╝ ╚═════╝ ╚═════╝  ╚═════╝    ╚═╝
`

var rootCmd = &cobra.Command{
	Use:   "stackscout [PROJECT_PATH]",
	Short: "Detect a project's language stack and generate tool configuration",
	Long: Logo + `
Stackscout inspects a project directory, identifies its languages, package
managers, frameworks, test frameworks, and bundlers, and generates matching
tool configuration: gitignore entries, lint hooks, and dev/build/test commands.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	Run:     runRootCommand,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRootCommand(cmd *cobra.Command, args []string) {
	projectPath := resolveProjectPath(args)

	result := detector.Detect(projectPath)

	if jsonOutput || skipInteractive || !isTerminal() {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
		return
	}

	fmt.Printf("%s\n", logoStyle.Render(Logo))

	wantsConfig, err := detection.ShowResult(result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error showing detection results: %v\n", err)
		os.Exit(1)
	}
	if !wantsConfig {
		fmt.Println("Skipping configuration generation.")
		return
	}

	if err := emitConfiguration(projectPath, result, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating configuration: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\n%s\n", tipMsgStyle.Render("Tip: Use --json flag for CI/automation mode"))
}

// resolveProjectPath validates the positional path argument, defaulting to
// the current directory.
func resolveProjectPath(args []string) string {
	projectPath := "."
	if len(args) > 0 {
		projectPath = args[0]
	}

	validated, err := util.ValidateProjectPath(projectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return validated
}

func emitConfiguration(projectPath string, result detector.Result, out *os.File) error {
	prefs, err := config.Load(projectPath)
	if err != nil {
		return err
	}
	bundle := generator.Generate(result, prefs)

	data, err := yaml.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return err
	}
	return nil
}

func isTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return os.Getenv("TERM") != ""
}

func init() {
	rootCmd.SetVersionTemplate("stackscout version {{.Version}}\n")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output detection result as JSON")
	rootCmd.Flags().BoolVar(&skipInteractive, "no-input", false, "Skip interactive prompts")
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(generateCmd)
}
