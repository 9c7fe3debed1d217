package gitrepo

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Client runs git commands against a single repository.
type Client struct {
	root string
}

// Open locates the repository containing dir and returns a Client bound to
// its root.
func Open(dir string) (*Client, error) {
	out, err := rawGitOutput(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return &Client{root: strings.TrimSpace(out)}, nil
}

// Root returns the repository root directory.
func (c *Client) Root() string {
	return c.root
}

// Name returns the repository's directory name, used as its identity in
// generated documents.
func (c *Client) Name() string {
	return filepath.Base(c.root)
}

// Resolve resolves a ref to a full commit hash. Returns ErrRefNotFound if
// the ref does not name a commit.
func (c *Client) Resolve(ref string) (string, error) {
	out, err := c.git("rev-parse", "--verify", "--quiet", ref+"^{commit}")
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrRefNotFound, ref)
	}
	return strings.TrimSpace(out), nil
}

// CurrentBranch returns the ref currently checked out.
func (c *Client) CurrentBranch() (string, error) {
	out, err := c.git("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("determining current branch: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// Diff returns the per-file changes between target and feature using the
// merge-base comparison (target...feature), with contextLines lines of
// unchanged context around each hunk. Rename detection and the histogram
// algorithm are always on.
func (c *Client) Diff(target, feature string, contextLines int) ([]ChangedFile, error) {
	if contextLines < 0 {
		contextLines = 0
	}
	out, err := c.git("diff",
		fmt.Sprintf("-U%d", contextLines),
		"--find-renames",
		"--diff-algorithm=histogram",
		target+"..."+feature,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s...%s: %v", ErrDiffUnavailable, target, feature, err)
	}
	return parseDiff(out), nil
}

// ReadFile returns the content of path in ref's tree. Returns
// ErrPathNotFound if the path is absent at that ref and ErrFileUnreadable
// if the content is binary.
func (c *Client) ReadFile(ref, path string) (string, error) {
	out, err := c.git("show", ref+":"+path)
	if err != nil {
		return "", fmt.Errorf("%w: %s at %s", ErrPathNotFound, path, ref)
	}
	if strings.ContainsRune(out, '\x00') {
		return "", fmt.Errorf("%w: %s", ErrFileUnreadable, path)
	}
	return strings.TrimRight(out, "\n"), nil
}

// ListTree returns every file path in ref's tree.
func (c *Client) ListTree(ref string) ([]string, error) {
	out, err := c.git("ls-tree", "-r", "--name-only", "-z", ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRefNotFound, ref)
	}
	var paths []string
	for _, p := range strings.Split(out, "\x00") {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths, nil
}

// CommitsUniqueTo returns the commits reachable from feature but not from
// target, newest first.
func (c *Client) CommitsUniqueTo(feature, target string) ([]CommitRecord, error) {
	out, err := c.git("log", "--format=%h%x1f%an%x1f%at%x1f%B%x1e", target+".."+feature)
	if err != nil {
		return nil, fmt.Errorf("listing commits %s..%s: %w", target, feature, err)
	}
	var commits []CommitRecord
	for _, entry := range strings.Split(out, "\x1e") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		fields := strings.SplitN(entry, "\x1f", 4)
		if len(fields) != 4 {
			continue
		}
		rec := CommitRecord{
			ShortHash: fields[0],
			Author:    fields[1],
			Message:   strings.TrimSpace(fields[3]),
		}
		if secs, err := strconv.ParseInt(fields[2], 10, 64); err == nil {
			rec.When = time.Unix(secs, 0).UTC()
		}
		commits = append(commits, rec)
	}
	return commits, nil
}

func (c *Client) git(args ...string) (string, error) {
	return rawGitOutput(c.root, args...)
}

func rawGitOutput(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return string(out), nil
}
