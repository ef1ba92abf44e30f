package config_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"pravenc_scrap/internal/config"
)

func TestLoadConfig(t *testing.T) {
	data := []byte(`{
  "url": "https://pravenc.ru/text/71893.html",
  "base_url": "https://pravenc.ru",
  "output_dir": "articles/test",
  "timeout_seconds": 42,
  "delay_seconds": 1.5,
  "user_agent": "test-agent",
  "mapping_file": "mapping.json",
  "body_selector": "div.article_text",
  "refs_selector": "div.refs"
}`)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	expected := config.Config{
		URL:            "https://pravenc.ru/text/71893.html",
		BaseURL:        "https://pravenc.ru",
		OutputDir:      "articles/test",
		TimeoutSeconds: 42,
		DelaySeconds:   1.5,
		UserAgent:      "test-agent",
		MappingFile:    "mapping.json",
		BodySelector:   "div.article_text",
		RefsSelector:   "div.refs",
	}

	if !reflect.DeepEqual(cfg, expected) {
		t.Fatalf("config mismatch\nexpected: %#v\ngot:      %#v", expected, cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for malformed json")
	}
}
