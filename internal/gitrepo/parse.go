package gitrepo

import "strings"

// parseDiff splits raw git diff output into per-file ChangedFile records.
// Each record keeps its hunk text verbatim from the first @@ marker on;
// metadata lines before it are consumed to classify the change.
func parseDiff(diff string) []ChangedFile {
	var files []ChangedFile
	for _, section := range splitDiffSections(diff) {
		if f, ok := parseSection(section); ok {
			files = append(files, f)
		}
	}
	return files
}

// splitDiffSections splits combined diff output on "diff --git" boundaries.
func splitDiffSections(diff string) []string {
	var sections []string
	var current strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "diff --git") && current.Len() > 0 {
			sections = append(sections, current.String())
			current.Reset()
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	if s := current.String(); strings.HasPrefix(s, "diff --git") {
		sections = append(sections, s)
	}
	return sections
}

func parseSection(section string) (ChangedFile, bool) {
	lines := strings.Split(section, "\n")
	oldPath, newPath := parseGitHeader(lines[0])
	if newPath == "" {
		return ChangedFile{}, false
	}

	f := ChangedFile{Path: newPath, Kind: KindModified}
	hunkStart := -1
	for i, line := range lines[1:] {
		switch {
		case strings.HasPrefix(line, "new file mode"):
			f.Kind = KindAdded
		case strings.HasPrefix(line, "deleted file mode"):
			f.Kind = KindDeleted
			f.Path = oldPath
		case strings.HasPrefix(line, "rename from "):
			f.Kind = KindRenamed
			f.OldPath = strings.TrimPrefix(line, "rename from ")
		case strings.HasPrefix(line, "rename to "):
			f.Path = strings.TrimPrefix(line, "rename to ")
		case strings.HasPrefix(line, "Binary files ") || line == "GIT binary patch":
			f.Binary = true
		case strings.HasPrefix(line, "@@"):
			hunkStart = i + 1
		}
		if hunkStart >= 0 {
			break
		}
	}
	if hunkStart >= 0 {
		f.Diff = strings.TrimRight(strings.Join(lines[hunkStart:], "\n"), "\n")
	}
	return f, true
}

// parseGitHeader extracts the a/ and b/ paths from a line of the form
// "diff --git a/old/path b/new/path".
func parseGitHeader(header string) (oldPath, newPath string) {
	rest := strings.TrimPrefix(header, "diff --git ")
	if rest == header {
		return "", ""
	}
	idx := strings.Index(rest, " b/")
	if idx < 0 {
		return "", ""
	}
	oldPath = strings.TrimPrefix(rest[:idx], "a/")
	newPath = rest[idx+len(" b/"):]
	return oldPath, newPath
}
