package promptgen

import (
	"sort"
	"strings"
)

// BuildFileTree renders paths as an indented directory tree. Entries are
// sorted lexicographically at every level, so the output is deterministic
// regardless of input order. Directories carry a trailing slash.
func BuildFileTree(paths []string) string {
	root := make(treeNode)
	for _, p := range paths {
		node := root
		for _, part := range strings.Split(p, "/") {
			if part == "" {
				continue
			}
			child, ok := node[part]
			if !ok {
				child = make(treeNode)
				node[part] = child
			}
			node = child
		}
	}

	var lines []string
	renderTreeNode(root, &lines, "", true)
	return strings.Join(lines, "\n")
}

type treeNode map[string]treeNode

func renderTreeNode(node treeNode, lines *[]string, prefix string, isRoot bool) {
	names := make([]string, 0, len(node))
	for name := range node {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		child := node[name]
		label := name
		if len(child) > 0 {
			label += "/"
		}

		var nextPrefix string
		if isRoot {
			*lines = append(*lines, label)
			nextPrefix = ""
		} else {
			connector := "├── "
			childPrefix := "│   "
			if i == len(names)-1 {
				connector = "└── "
				childPrefix = "    "
			}
			*lines = append(*lines, prefix+connector+label)
			nextPrefix = prefix + childPrefix
		}

		if len(child) > 0 {
			renderTreeNode(child, lines, nextPrefix, false)
		}
	}
}
