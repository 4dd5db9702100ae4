package assets

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
)

// ConfigFileName is the settings file written into the config directory.
const ConfigFileName = "config.yaml"

//go:embed default-config.yaml
var DefaultConfig []byte

//go:embed config.schema.json
var ConfigSchema []byte

// WriteDefaultConfigIfMissing writes config.yaml to targetDir if it does not
// exist. It reports whether a file was written.
func WriteDefaultConfigIfMissing(targetDir string) (bool, error) {
	p, err := configPath(targetDir)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(p); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := os.WriteFile(p, DefaultConfig, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// WriteDefaultConfig writes config.yaml to targetDir, replacing any existing file.
func WriteDefaultConfig(targetDir string) error {
	p, err := configPath(targetDir)
	if err != nil {
		return err
	}
	return os.WriteFile(p, DefaultConfig, 0o644)
}

func configPath(targetDir string) (string, error) {
	if targetDir == "" {
		return "", errors.New("empty targetDir")
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(targetDir, ConfigFileName), nil
}
