package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prprompt/prprompt/internal/config"
	"github.com/prprompt/prprompt/internal/gitrepo"
	"github.com/prprompt/prprompt/internal/promptgen"
)

// Shared generation flags
var (
	flagBaseRef      string
	flagHeadRef      string
	flagOutput       string
	flagStdout       bool
	flagBlacklist    []string
	flagContext      []string
	flagNoCommits    bool
	flagDiffContext  int
	flagTitle        string
	flagDescription  string
	flagInstructions string
)

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagBaseRef, "base-ref", "b", "", "Base branch/commit to compare against (e.g. origin/main)")
	cmd.Flags().StringVar(&flagHeadRef, "head-ref", "", "Head branch/commit with the changes (default: current branch)")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file path (default: <command>_prompt.md)")
	cmd.Flags().BoolVar(&flagStdout, "stdout", false, "Write the prompt to stdout instead of a file")
	cmd.Flags().StringSliceVar(&flagBlacklist, "blacklist", nil, "Additional file patterns to exclude (repeatable)")
	cmd.Flags().StringSliceVar(&flagContext, "context", nil, "Additional context file patterns (repeatable)")
	cmd.Flags().BoolVar(&flagNoCommits, "no-commits", false, "Exclude commit messages from the prompt")
	cmd.Flags().IntVar(&flagDiffContext, "diff-context", 0, "Context lines around changes (default: full file)")
	cmd.Flags().StringVar(&flagTitle, "title", "", "Pull request title")
	_ = cmd.MarkFlagRequired("base-ref")
}

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Generate a code review prompt",
	Long: "Generate a structured prompt for LLM code review of the changes the\n" +
		"head ref introduces over the base ref.",
	Run: func(cmd *cobra.Command, args []string) {
		runGenerate(cmd, "review")
	},
}

var descriptionCmd = &cobra.Command{
	Use:   "description",
	Short: "Generate a PR description prompt",
	Long:  "Generate a structured prompt for writing the pull request description.",
	Run: func(cmd *cobra.Command, args []string) {
		runGenerate(cmd, "description")
	},
}

var customCmd = &cobra.Command{
	Use:   "custom",
	Short: "Generate a prompt with custom instructions",
	Long: "Generate a prompt whose Instructions section is the caller-supplied\n" +
		"text, inserted verbatim.",
	Run: func(cmd *cobra.Command, args []string) {
		runGenerate(cmd, "custom")
	},
}

func init() {
	addGenerateFlags(reviewCmd)
	reviewCmd.Flags().StringVar(&flagDescription, "description", "", "Pull request description")

	addGenerateFlags(descriptionCmd)

	addGenerateFlags(customCmd)
	customCmd.Flags().StringVar(&flagDescription, "description", "", "Pull request description")
	customCmd.Flags().StringVarP(&flagInstructions, "instructions", "i", "", "Custom instructions for the LLM")
	_ = customCmd.MarkFlagRequired("instructions")
}

func runGenerate(cmd *cobra.Command, kind string) {
	repo, err := gitrepo.Open(".")
	if err != nil {
		fail("Error: %v", err)
		exitCode = ExitRuntimeError
		return
	}

	cfg, err := config.Load(repo.Root())
	if err != nil {
		fail("Error: %v", err)
		exitCode = ExitRuntimeError
		return
	}
	cfg.BlacklistPatterns = append(cfg.BlacklistPatterns, flagBlacklist...)
	cfg.ContextPatterns = append(cfg.ContextPatterns, flagContext...)
	if flagNoCommits {
		cfg.IncludeCommitMessages = false
	}
	if cmd.Flags().Changed("diff-context") {
		cfg.DiffContextLines = flagDiffContext
	}

	head := flagHeadRef
	if head == "" {
		head = "current branch"
	}
	info("Generating %s prompt (base: %s, head: %s)...", kind, flagBaseRef, head)

	gen := promptgen.New(repo, cfg.Generator())

	var prompt string
	switch kind {
	case "review":
		prompt, err = gen.Review(flagBaseRef, flagHeadRef, flagTitle, flagDescription)
	case "description":
		prompt, err = gen.Description(flagBaseRef, flagHeadRef, flagTitle)
	case "custom":
		prompt, err = gen.Custom(flagInstructions, flagBaseRef, flagHeadRef, flagTitle, flagDescription)
	}
	if err != nil {
		fail("Failed to generate %s prompt: %v", kind, err)
		exitCode = ExitRuntimeError
		return
	}

	if err := writeOutput(prompt, kind); err != nil {
		fail("Error writing output: %v", err)
		exitCode = ExitRuntimeError
	}
}

func writeOutput(prompt, kind string) error {
	if flagStdout {
		fmt.Fprintln(os.Stdout, prompt)
		return nil
	}

	path := flagOutput
	if path == "" {
		path = kind + "_prompt.md"
	}
	if err := os.WriteFile(path, []byte(prompt), 0o644); err != nil {
		return err
	}
	success("Wrote %s prompt to %s", kind, path)
	info("File size: %d characters", len(prompt))
	return nil
}
