package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "worker_count: 8\nmin_sentence_len: 20\ncategory_map: categories.txt\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.WorkerCount != 8 {
		t.Errorf("WorkerCount = %d, want 8", cfg.WorkerCount)
	}
	if cfg.MinSentenceLen != 20 {
		t.Errorf("MinSentenceLen = %d, want 20", cfg.MinSentenceLen)
	}
	if cfg.TinyDocBytes != defaultTinyDocBytes {
		t.Errorf("TinyDocBytes = %d, want default %d", cfg.TinyDocBytes, defaultTinyDocBytes)
	}
	if cfg.CategoryMap != "categories.txt" {
		t.Errorf("CategoryMap = %q, want categories.txt", cfg.CategoryMap)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
