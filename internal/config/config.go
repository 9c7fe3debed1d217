package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/prprompt/prprompt/internal/promptgen"
)

// FileName is the repo-level config file, looked up at the repository root.
const FileName = ".prprompt.toml"

// Config holds the generator settings that can come from the config file.
type Config struct {
	BlacklistPatterns     []string `toml:"blacklist_patterns"`
	ContextPatterns       []string `toml:"context_patterns"`
	DiffContextLines      int      `toml:"diff_context_lines"`
	IncludeCommitMessages bool     `toml:"include_commit_messages"`
}

// Default returns the built-in defaults, matching promptgen.DefaultConfig.
func Default() Config {
	gen := promptgen.DefaultConfig()
	return Config{
		BlacklistPatterns:     gen.BlacklistPatterns,
		ContextPatterns:       gen.ContextPatterns,
		DiffContextLines:      gen.DiffContextLines,
		IncludeCommitMessages: gen.IncludeCommitMessages,
	}
}

// Generator converts the merged config into a promptgen.Config.
func (c Config) Generator() promptgen.Config {
	return promptgen.Config{
		BlacklistPatterns:     c.BlacklistPatterns,
		ContextPatterns:       c.ContextPatterns,
		DiffContextLines:      c.DiffContextLines,
		IncludeCommitMessages: c.IncludeCommitMessages,
	}
}

// Load builds the effective config: defaults <- repo file <- env. Flag
// overrides are applied by the caller on top. A missing config file is not
// an error.
func Load(repoRoot string) (Config, error) {
	cfg := Default()

	path := filepath.Join(repoRoot, FileName)
	if _, err := os.Stat(path); err == nil {
		var fileCfg Config
		md, err := toml.DecodeFile(path, &fileCfg)
		if err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		mergeFile(&cfg, fileCfg, md)
	}

	mergeEnv(&cfg)
	return cfg, nil
}

// mergeFile applies only the keys the file actually set, so an absent
// boolean does not clobber the default.
func mergeFile(dst *Config, src Config, md toml.MetaData) {
	if md.IsDefined("blacklist_patterns") {
		dst.BlacklistPatterns = src.BlacklistPatterns
	}
	if md.IsDefined("context_patterns") {
		dst.ContextPatterns = src.ContextPatterns
	}
	if md.IsDefined("diff_context_lines") {
		dst.DiffContextLines = src.DiffContextLines
	}
	if md.IsDefined("include_commit_messages") {
		dst.IncludeCommitMessages = src.IncludeCommitMessages
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("PRPROMPT_BLACKLIST"); v != "" {
		cfg.BlacklistPatterns = splitPatterns(v)
	}
	if v := os.Getenv("PRPROMPT_CONTEXT"); v != "" {
		cfg.ContextPatterns = splitPatterns(v)
	}
	if v := os.Getenv("PRPROMPT_DIFF_CONTEXT_LINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.DiffContextLines = n
		}
	}
	if v := os.Getenv("PRPROMPT_INCLUDE_COMMITS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.IncludeCommitMessages = b
		}
	}
}

func splitPatterns(s string) []string {
	var patterns []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// Init writes a starter config file at the repository root. It refuses to
// overwrite an existing file.
func Init(repoRoot string) (string, error) {
	path := filepath.Join(repoRoot, FileName)
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%s already exists", path)
	}

	var buf bytes.Buffer
	buf.WriteString("# prprompt configuration\n\n")
	if err := toml.NewEncoder(&buf).Encode(Default()); err != nil {
		return path, fmt.Errorf("encoding default config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return path, fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
