package promptgen

import "path/filepath"

// PathFilter decides whether a path is excluded from the document and
// whether it qualifies as a context file. The two checks are independent;
// exclusion always wins where both apply.
type PathFilter struct {
	blacklist []string
	context   []string
}

// NewPathFilter builds a filter from blacklist and context glob patterns.
// Patterns match against the full relative path, so "dist/*" matches
// "dist/app.js" but not "src/dist/app.js". An empty set excludes or
// selects nothing.
func NewPathFilter(blacklist, context []string) *PathFilter {
	return &PathFilter{blacklist: blacklist, context: context}
}

// IsExcluded reports whether path matches at least one blacklist pattern.
func (f *PathFilter) IsExcluded(path string) bool {
	return matchesAny(path, f.blacklist)
}

// IsContextCandidate reports whether path matches at least one context
// pattern.
func (f *PathFilter) IsContextCandidate(path string) bool {
	return matchesAny(path, f.context)
}

func matchesAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		// Malformed patterns never match.
		if ok, err := filepath.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}
