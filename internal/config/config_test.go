package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prprompt/prprompt/internal/promptgen"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if len(cfg.BlacklistPatterns) != 1 || cfg.BlacklistPatterns[0] != "*.lock" {
		t.Errorf("BlacklistPatterns = %v", cfg.BlacklistPatterns)
	}
	if cfg.DiffContextLines != promptgen.FullFileContext {
		t.Errorf("DiffContextLines = %d", cfg.DiffContextLines)
	}
	if !cfg.IncludeCommitMessages {
		t.Error("IncludeCommitMessages should default to true")
	}
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ContextPatterns[0] != "LLM.md" {
		t.Errorf("expected defaults, got %v", cfg.ContextPatterns)
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `blacklist_patterns = ["*.lock", "dist/*"]
include_commit_messages = false
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(cfg.BlacklistPatterns) != 2 || cfg.BlacklistPatterns[1] != "dist/*" {
		t.Errorf("BlacklistPatterns = %v", cfg.BlacklistPatterns)
	}
	if cfg.IncludeCommitMessages {
		t.Error("file set include_commit_messages = false")
	}
	// Keys the file did not set keep their defaults
	if cfg.DiffContextLines != promptgen.FullFileContext {
		t.Errorf("DiffContextLines = %d, want default", cfg.DiffContextLines)
	}
	if cfg.ContextPatterns[0] != "LLM.md" {
		t.Errorf("ContextPatterns = %v, want default", cfg.ContextPatterns)
	}
}

func TestLoad_BadFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("not [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("Load should fail on malformed TOML")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PRPROMPT_BLACKLIST", "*.min.js, build/*")
	t.Setenv("PRPROMPT_DIFF_CONTEXT_LINES", "5")
	t.Setenv("PRPROMPT_INCLUDE_COMMITS", "false")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(cfg.BlacklistPatterns) != 2 || cfg.BlacklistPatterns[0] != "*.min.js" {
		t.Errorf("BlacklistPatterns = %v", cfg.BlacklistPatterns)
	}
	if cfg.DiffContextLines != 5 {
		t.Errorf("DiffContextLines = %d, want 5", cfg.DiffContextLines)
	}
	if cfg.IncludeCommitMessages {
		t.Error("PRPROMPT_INCLUDE_COMMITS=false should disable commits")
	}
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	path, err := Init(dir)
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "blacklist_patterns") {
		t.Errorf("starter config missing keys:\n%s", data)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load after Init error: %v", err)
	}
	if cfg.DiffContextLines != promptgen.FullFileContext {
		t.Errorf("round-tripped DiffContextLines = %d", cfg.DiffContextLines)
	}

	if _, err := Init(dir); err == nil {
		t.Error("Init must refuse to overwrite an existing config")
	}
}

func TestGenerator(t *testing.T) {
	cfg := Default()
	gen := cfg.Generator()
	if gen.DiffContextLines != cfg.DiffContextLines {
		t.Error("Generator() should mirror the merged config")
	}
	if !gen.IncludeCommitMessages {
		t.Error("Generator() lost IncludeCommitMessages")
	}
}
