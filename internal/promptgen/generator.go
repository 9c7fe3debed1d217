package promptgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prprompt/prprompt/internal/gitrepo"
)

// FullFileContext is the sentinel context-line count that makes every hunk
// carry the whole surrounding file.
const FullFileContext = 999999

// Repo is the version-control surface the generator needs. The concrete
// implementation lives in internal/gitrepo; tests supply fakes.
type Repo interface {
	Name() string
	CurrentBranch() (string, error)
	Resolve(ref string) (string, error)
	Diff(target, feature string, contextLines int) ([]gitrepo.ChangedFile, error)
	ReadFile(ref, path string) (string, error)
	ListTree(ref string) ([]string, error)
	CommitsUniqueTo(feature, target string) ([]gitrepo.CommitRecord, error)
}

// Config controls one generator instance. It is read-only for the
// instance's lifetime and shared across all of its generation calls.
type Config struct {
	BlacklistPatterns     []string
	ContextPatterns       []string
	DiffContextLines      int
	IncludeCommitMessages bool
}

// DefaultConfig returns the stock configuration: lock files excluded,
// LLM.md collected as context, whole-file diff context, commits included.
func DefaultConfig() Config {
	return Config{
		BlacklistPatterns:     []string{"*.lock"},
		ContextPatterns:       []string{"LLM.md"},
		DiffContextLines:      FullFileContext,
		IncludeCommitMessages: true,
	}
}

// Generator assembles prompt documents for one repository.
type Generator struct {
	repo Repo
	cfg  Config
}

// New returns a Generator over repo with cfg.
func New(repo Repo, cfg Config) *Generator {
	return &Generator{repo: repo, cfg: cfg}
}

// Review generates a code-review prompt for the changes feature introduces
// over target. An empty feature means the currently checked-out ref.
func (g *Generator) Review(target, feature, title, description string) (string, error) {
	return g.generate(reviewInstructions, target, feature, title, description)
}

// Description generates a prompt for writing the pull request description.
func (g *Generator) Description(target, feature, title string) (string, error) {
	return g.generate(descriptionInstructions, target, feature, title, "")
}

// Custom generates a prompt with caller-supplied instructions, inserted
// verbatim.
func (g *Generator) Custom(instructions, target, feature, title, description string) (string, error) {
	return g.generate(instructions, target, feature, title, description)
}

func (g *Generator) generate(instructions, target, feature, title, description string) (string, error) {
	if _, err := g.repo.Resolve(target); err != nil {
		return "", fmt.Errorf("resolving target ref %q: %w", target, err)
	}
	if feature == "" {
		branch, err := g.repo.CurrentBranch()
		if err != nil {
			return "", fmt.Errorf("defaulting feature ref: %w", err)
		}
		feature = branch
	}
	if _, err := g.repo.Resolve(feature); err != nil {
		return "", fmt.Errorf("resolving feature ref %q: %w", feature, err)
	}

	filter := NewPathFilter(g.cfg.BlacklistPatterns, g.cfg.ContextPatterns)

	var doc document
	doc.add("Instructions", 2, instructions)

	details, err := g.pullRequestDetails(target, feature, title, description)
	if err != nil {
		return "", err
	}
	doc.add("Pull Request Details", 2, details)

	contextFiles, err := g.collectContext(filter, target)
	if err != nil {
		return "", err
	}
	if len(contextFiles) > 0 {
		blocks := make([]string, 0, len(contextFiles))
		for _, f := range contextFiles {
			blocks = append(blocks, renderContextFile(f))
		}
		doc.add("Context Files", 2, strings.Join(blocks, "\n\n"))
	}

	changed, err := g.repo.Diff(target, feature, g.cfg.DiffContextLines)
	if err != nil {
		return "", fmt.Errorf("diffing %s...%s: %w", target, feature, err)
	}
	included := changed[:0:0]
	for _, f := range changed {
		if filter.IsExcluded(f.Path) {
			continue
		}
		included = append(included, f)
	}

	if len(included) == 0 {
		doc.add("Changed Files", 2, "No files changed.")
		doc.add("File Diffs", 2, "No changes to display.")
		return doc.build(), nil
	}

	paths := make([]string, 0, len(included))
	for _, f := range included {
		paths = append(paths, f.Path)
	}
	doc.add("Changed Files", 2, BuildFileTree(paths))

	sort.SliceStable(included, func(i, j int) bool { return included[i].Path < included[j].Path })
	diffs := make([]string, 0, len(included))
	for _, f := range included {
		diffs = append(diffs, renderFileDiff(f))
	}
	doc.add("File Diffs", 2, strings.Join(diffs, "\n\n"))

	return doc.build(), nil
}

// pullRequestDetails builds the one section that always appears: it anchors
// the document with repository identity, branch names, metadata, and the
// commit list.
func (g *Generator) pullRequestDetails(target, feature, title, description string) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "**Repository:** %s\n\n", g.repo.Name())
	fmt.Fprintf(&b, "**Target branch:** `%s`\n\n", target)
	fmt.Fprintf(&b, "**Feature branch:** `%s`\n\n", feature)

	if title != "" {
		fmt.Fprintf(&b, "**Title:** %s\n\n", title)
	} else {
		b.WriteString("**Title:** (no title provided)\n\n")
	}
	if description != "" {
		fmt.Fprintf(&b, "**Description:**\n\n%s\n\n", description)
	} else {
		b.WriteString("**Description:** (no description provided)\n\n")
	}

	if g.cfg.IncludeCommitMessages {
		commits, err := g.repo.CommitsUniqueTo(feature, target)
		if err != nil {
			return "", fmt.Errorf("collecting commits: %w", err)
		}
		if len(commits) == 0 {
			fmt.Fprintf(&b, "**Commits:** no commits unique to `%s`.", feature)
		} else {
			fmt.Fprintf(&b, "**Commits (newest first):**\n\n%s", formatCommitList(commits))
		}
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// collectContext gathers context files from the target ref's tree: every
// non-blacklisted path matching a context pattern, in lexicographic order.
// Unreadable (binary) files are skipped; context is advisory.
func (g *Generator) collectContext(filter *PathFilter, ref string) ([]ContextFile, error) {
	paths, err := g.repo.ListTree(ref)
	if err != nil {
		return nil, fmt.Errorf("listing tree at %q: %w", ref, err)
	}

	var matched []string
	for _, p := range paths {
		if filter.IsContextCandidate(p) && !filter.IsExcluded(p) {
			matched = append(matched, p)
		}
	}
	sort.Strings(matched)

	var files []ContextFile
	for _, p := range matched {
		content, err := g.repo.ReadFile(ref, p)
		if err != nil {
			continue
		}
		files = append(files, ContextFile{Path: p, Content: content})
	}
	return files, nil
}
