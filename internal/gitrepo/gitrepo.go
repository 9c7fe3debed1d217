package gitrepo

import (
	"errors"
	"time"
)

// Sentinel errors for the version-control surface. Callers distinguish
// structural failures, which abort prompt generation, from per-file
// unreadability, which degrades to a placeholder.
var (
	ErrRefNotFound     = errors.New("ref not found")
	ErrDiffUnavailable = errors.New("diff unavailable")
	ErrPathNotFound    = errors.New("path not found at ref")
	ErrFileUnreadable  = errors.New("file content is not readable as text")
)

// ChangeKind classifies how a file changed between two refs.
type ChangeKind string

const (
	KindAdded    ChangeKind = "added"
	KindModified ChangeKind = "modified"
	KindDeleted  ChangeKind = "deleted"
	KindRenamed  ChangeKind = "renamed"
)

// Label returns the human-readable form used in diff headers.
func (k ChangeKind) Label() string {
	switch k {
	case KindAdded:
		return "Added"
	case KindDeleted:
		return "Deleted"
	case KindRenamed:
		return "Renamed"
	default:
		return "Modified"
	}
}

// ChangedFile is one file's change between two refs. Diff holds the hunk
// text exactly as git produced it, starting at the first @@ marker; it is
// empty for pure renames and for binary files.
type ChangedFile struct {
	Path    string
	OldPath string // set for renames
	Kind    ChangeKind
	Diff    string
	Binary  bool
}

// CommitRecord is one commit's summary line.
type CommitRecord struct {
	ShortHash string
	Author    string
	Message   string
	When      time.Time
}
