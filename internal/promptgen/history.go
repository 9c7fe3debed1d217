package promptgen

import (
	"fmt"
	"strings"

	"github.com/prprompt/prprompt/internal/gitrepo"
)

// formatCommitList renders commits as a bullet list, one line per commit,
// in the order given (newest first from the interface).
func formatCommitList(commits []gitrepo.CommitRecord) string {
	var b strings.Builder
	for i, c := range commits {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- %s %s (%s)", c.ShortHash, collapseMessage(c.Message), c.Author)
	}
	return b.String()
}

// collapseMessage joins a multi-line commit message into one line.
func collapseMessage(msg string) string {
	var parts []string
	for _, line := range strings.Split(strings.TrimSpace(msg), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, ". ")
}
