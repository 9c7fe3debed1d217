// Package cli implements the prprompt command-line interface.
//
// Commands: review, description, and custom generate prompt documents;
// init writes a starter .prprompt.toml; version prints the build version.
// Generated documents go to a file (default <command>_prompt.md) or to
// stdout with --stdout.
package cli
