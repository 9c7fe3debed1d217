package promptgen

import (
	"strings"
	"testing"

	"github.com/prprompt/prprompt/internal/gitrepo"
)

func TestRenderFileDiff_Added(t *testing.T) {
	got := renderFileDiff(gitrepo.ChangedFile{
		Path: "src/a.py",
		Kind: gitrepo.KindAdded,
		Diff: "@@ -0,0 +1,1 @@\n+print(\"hi\")",
	})
	if !strings.HasPrefix(got, "### `src/a.py` (Added)") {
		t.Errorf("header wrong: %q", got)
	}
	if !strings.Contains(got, "```diff\n@@ -0,0 +1,1 @@\n+print(\"hi\")\n```") {
		t.Errorf("body should hold the raw hunks in a diff fence: %q", got)
	}
}

func TestRenderFileDiff_Renamed(t *testing.T) {
	got := renderFileDiff(gitrepo.ChangedFile{
		Path:    "new/name.go",
		OldPath: "old/name.go",
		Kind:    gitrepo.KindRenamed,
	})
	if !strings.Contains(got, "`old/name.go` -> `new/name.go` (Renamed)") {
		t.Errorf("rename header should show old and new path: %q", got)
	}
	if !strings.Contains(got, "No content changes.") {
		t.Errorf("pure rename should note the empty body: %q", got)
	}
}

func TestRenderFileDiff_Binary(t *testing.T) {
	got := renderFileDiff(gitrepo.ChangedFile{
		Path:   "logo.png",
		Kind:   gitrepo.KindAdded,
		Binary: true,
	})
	if !strings.Contains(got, "Binary file; diff omitted.") {
		t.Errorf("binary file should render a placeholder: %q", got)
	}
	if strings.Contains(got, "```diff") {
		t.Errorf("binary file should not render a diff fence: %q", got)
	}
}

func TestRenderFileDiff_Deleted(t *testing.T) {
	got := renderFileDiff(gitrepo.ChangedFile{
		Path: "gone.go",
		Kind: gitrepo.KindDeleted,
		Diff: "@@ -1,2 +0,0 @@\n-package app\n-func gone() {}",
	})
	if !strings.HasPrefix(got, "### `gone.go` (Deleted)") {
		t.Errorf("header wrong: %q", got)
	}
	if !strings.Contains(got, "-func gone() {}") {
		t.Errorf("deleted file should show the removal hunks: %q", got)
	}
}

func TestFenceLang(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", "go"},
		{"app.py", "python"},
		{"notes.md", "markdown"},
		{"config.TOML", "toml"},
		{"Makefile", "text"},
	}
	for _, tt := range tests {
		if got := fenceLang(tt.path); got != tt.want {
			t.Errorf("fenceLang(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestRenderContextFile_MarkdownUsesTildeFence(t *testing.T) {
	got := renderContextFile(ContextFile{Path: "NOTES.md", Content: "# Title\n\n```go\ncode\n```"})
	if !strings.Contains(got, "~~~markdown") {
		t.Errorf("markdown context should use tilde fences: %q", got)
	}
	if !strings.Contains(got, "```go\ncode\n```") {
		t.Errorf("content should be preserved verbatim: %q", got)
	}
}

func TestRenderContextFile_Code(t *testing.T) {
	got := renderContextFile(ContextFile{Path: "conf/app.yaml", Content: "key: value"})
	if !strings.Contains(got, "### `conf/app.yaml`") {
		t.Errorf("header wrong: %q", got)
	}
	if !strings.Contains(got, "```yaml\nkey: value\n```") {
		t.Errorf("yaml fence wrong: %q", got)
	}
}
