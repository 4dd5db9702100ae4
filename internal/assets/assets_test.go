package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteDefaultConfigIfMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "minigrep")

	// First call creates the directory and config.yaml with embedded contents
	wrote, err := WriteDefaultConfigIfMissing(dir)
	if err != nil {
		t.Fatalf("WriteDefaultConfigIfMissing: %v", err)
	}
	if !wrote {
		t.Fatalf("expected file to be written")
	}
	p := filepath.Join(dir, ConfigFileName)
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(b) == 0 || string(b) != string(DefaultConfig) {
		t.Fatalf("unexpected contents written")
	}

	// If file exists, it must not overwrite
	if err := os.WriteFile(p, []byte("modified"), 0o644); err != nil {
		t.Fatalf("pre-write: %v", err)
	}
	wrote, err = WriteDefaultConfigIfMissing(dir)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if wrote {
		t.Fatalf("reported write for existing file")
	}
	b2, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read2: %v", err)
	}
	if string(b2) != "modified" {
		t.Fatalf("existing file was overwritten")
	}
}

func TestWriteDefaultConfig_Overwrites(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(p, []byte("modified"), 0o644); err != nil {
		t.Fatalf("pre-write: %v", err)
	}
	if err := WriteDefaultConfig(dir); err != nil {
		t.Fatalf("WriteDefaultConfig: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != string(DefaultConfig) {
		t.Fatalf("file was not replaced")
	}
}

func TestWriteDefaultConfig_EmptyDir(t *testing.T) {
	if err := WriteDefaultConfig(""); err == nil {
		t.Fatalf("expected error for empty dir")
	}
	if _, err := WriteDefaultConfigIfMissing(""); err == nil {
		t.Fatalf("expected error for empty dir")
	}
}

func TestConfigSchemaEmbedded(t *testing.T) {
	if len(ConfigSchema) == 0 {
		t.Fatalf("schema not embedded")
	}
}
