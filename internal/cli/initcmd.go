package cli

import (
	"github.com/spf13/cobra"

	"github.com/prprompt/prprompt/internal/config"
	"github.com/prprompt/prprompt/internal/gitrepo"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .prprompt.toml at the repository root",
	Run: func(cmd *cobra.Command, args []string) {
		repo, err := gitrepo.Open(".")
		if err != nil {
			fail("Error: %v", err)
			exitCode = ExitRuntimeError
			return
		}
		path, err := config.Init(repo.Root())
		if err != nil {
			fail("Error: %v", err)
			exitCode = ExitRuntimeError
			return
		}
		success("Initialized prprompt configuration at %s", path)
	},
}
