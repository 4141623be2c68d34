package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PipelineConfig holds runtime configuration for the convert pipeline.
// Values omitted from the file fall back to the defaults below.
type PipelineConfig struct {
	WorkerCount    int    `yaml:"worker_count"`
	MinSentenceLen int    `yaml:"min_sentence_len"`
	TinyDocBytes   int    `yaml:"tiny_doc_bytes"`
	CategoryMap    string `yaml:"category_map"`
}

const (
	defaultWorkerCount    = 4
	defaultMinSentenceLen = 10
	defaultTinyDocBytes   = 100
)

// DefaultPipelineConfig returns the configuration used when no file is
// given.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		WorkerCount:    defaultWorkerCount,
		MinSentenceLen: defaultMinSentenceLen,
		TinyDocBytes:   defaultTinyDocBytes,
	}
}

// LoadConfig reads a PipelineConfig from a YAML file, filling in defaults
// for omitted values.
func LoadConfig(path string) (*PipelineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := DefaultPipelineConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = defaultWorkerCount
	}
	if cfg.MinSentenceLen <= 0 {
		cfg.MinSentenceLen = defaultMinSentenceLen
	}
	if cfg.TinyDocBytes <= 0 {
		cfg.TinyDocBytes = defaultTinyDocBytes
	}
	return cfg, nil
}
