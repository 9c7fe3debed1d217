package promptgen

import (
	"fmt"
	"path/filepath"
	"strings"
)

// section is one named block of the final document.
type section struct {
	title   string
	level   int
	content string
}

// document is an ordered list of sections. Sections are rendered in the
// order they were added and joined with blank lines; there is no other
// structure.
type document struct {
	sections []section
}

func (d *document) add(title string, level int, content string) {
	d.sections = append(d.sections, section{title: title, level: level, content: content})
}

func (d *document) build() string {
	parts := make([]string, 0, len(d.sections))
	for _, s := range d.sections {
		heading := strings.Repeat("#", s.level)
		parts = append(parts, fmt.Sprintf("%s %s\n\n%s", heading, s.title, s.content))
	}
	return strings.Join(parts, "\n\n")
}

// ContextFile is a file included for background knowledge, read at the
// target ref regardless of whether it changed.
type ContextFile struct {
	Path    string
	Content string
}

// renderContextFile wraps a context file's content in a fenced block with
// a language tag derived from its extension. Markdown files use tilde
// fences so backtick fences in the content survive.
func renderContextFile(f ContextFile) string {
	lang := fenceLang(f.Path)
	if lang == "markdown" {
		return fmt.Sprintf("### `%s`\n\n~~~markdown\n%s\n~~~", f.Path, f.Content)
	}
	return fmt.Sprintf("### `%s`\n\n```%s\n%s\n```", f.Path, lang, f.Content)
}

var fenceLangs = map[string]string{
	".py":    "python",
	".js":    "javascript",
	".ts":    "typescript",
	".jsx":   "jsx",
	".tsx":   "tsx",
	".java":  "java",
	".go":    "go",
	".rs":    "rust",
	".cpp":   "cpp",
	".c":     "c",
	".cs":    "csharp",
	".rb":    "ruby",
	".php":   "php",
	".swift": "swift",
	".kt":    "kotlin",
	".scala": "scala",
	".sh":    "bash",
	".yml":   "yaml",
	".yaml":  "yaml",
	".json":  "json",
	".toml":  "toml",
	".xml":   "xml",
	".html":  "html",
	".css":   "css",
	".sql":   "sql",
	".md":    "markdown",
}

func fenceLang(path string) string {
	if lang, ok := fenceLangs[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	return "text"
}
