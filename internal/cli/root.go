package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes.
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitUsageError   = 2
)

var rootCmd = &cobra.Command{
	Use:   "prprompt",
	Short: "Generate structured LLM prompts from git diffs",
	Long: "prprompt turns the diff, commit history, and context files of a branch\n" +
		"comparison into one structured text document for LLM code review or\n" +
		"pull request description generation.",
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(descriptionCmd)
	rootCmd.AddCommand(customCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print prprompt version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "prprompt version %s\n", version)
	},
}
