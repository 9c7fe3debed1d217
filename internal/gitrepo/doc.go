// Package gitrepo extracts diffs, commit history, and file contents from a
// git repository by shelling out to the git CLI.
//
// It provides the narrow version-control surface the prompt pipeline needs:
// resolving refs, diffing two refs into per-file [ChangedFile] records,
// reading a file at a ref, listing a ref's tree, and listing the commits
// unique to the feature side of a comparison.
//
// Structural failures (unknown refs, uncomputable diffs) are reported with
// the sentinel errors [ErrRefNotFound] and [ErrDiffUnavailable]; binary
// content is reported with [ErrFileUnreadable] so callers can degrade to
// placeholders instead of aborting.
package gitrepo
