// Prprompt generates structured LLM prompts from git branch comparisons.
//
// It assembles the diff between two refs, the commits unique to the
// feature side, a changed-files tree, and configured context files into
// one deterministic text document for code review or pull request
// description generation.
//
// Usage:
//
//	prprompt review -b origin/main              # review prompt vs main
//	prprompt description -b origin/main         # PR description prompt
//	prprompt custom -b main -i "Audit for SQL injection"
//	prprompt init                               # write .prprompt.toml
//
// The document goes to <command>_prompt.md by default, or stdout with
// --stdout. prprompt never contacts a model; the output is plain text.
package main
