// Package promptgen assembles the state of a git comparison (two refs,
// their unique commits, and the file-level diff between them) into one
// deterministic structured text document for LLM code review or pull
// request description generation.
//
// A [Generator] is constructed once with a [Config] and a [Repo] and can
// serve any number of generation calls. Each call resolves the ref pair,
// filters changed files through the blacklist, renders a changed-files
// tree and per-file diff blocks, collects context files from the target
// ref's tree, and concatenates everything in a fixed section order:
// Instructions, Pull Request Details, Context Files, Changed Files, File
// Diffs.
//
// Caller-supplied metadata (title, description, custom instructions) is
// inserted verbatim with no escaping; that is a deliberate contract, not
// an oversight.
package promptgen
