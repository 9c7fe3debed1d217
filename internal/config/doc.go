// Package config loads and merges prprompt configuration.
//
// Precedence (highest to lowest):
//  1. CLI flags (applied by the cli package)
//  2. Environment variables (PRPROMPT_BLACKLIST, PRPROMPT_CONTEXT,
//     PRPROMPT_DIFF_CONTEXT_LINES, PRPROMPT_INCLUDE_COMMITS)
//  3. Repo config file (.prprompt.toml at the repository root)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config] and [Init] to write a starter
// config file.
package config
