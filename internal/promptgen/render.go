package promptgen

import (
	"fmt"
	"strings"

	"github.com/prprompt/prprompt/internal/gitrepo"
)

// renderFileDiff produces the text block for one changed file: a header
// naming the path and change kind, then the hunk body exactly as the
// version-control interface returned it. Binary files get a one-line
// placeholder instead of a diff body.
func renderFileDiff(f gitrepo.ChangedFile) string {
	var b strings.Builder

	if f.Kind == gitrepo.KindRenamed && f.OldPath != "" {
		fmt.Fprintf(&b, "### `%s` -> `%s` (%s)\n\n", f.OldPath, f.Path, f.Kind.Label())
	} else {
		fmt.Fprintf(&b, "### `%s` (%s)\n\n", f.Path, f.Kind.Label())
	}

	switch {
	case f.Binary:
		b.WriteString("Binary file; diff omitted.")
	case f.Diff == "":
		b.WriteString("No content changes.")
	default:
		fmt.Fprintf(&b, "```diff\n%s\n```", f.Diff)
	}

	return b.String()
}
