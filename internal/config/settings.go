package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings are user defaults read from YAML files in the config directory.
type Settings struct {
	CaseInsensitive bool   `yaml:"case_insensitive" json:"case_insensitive"`
	LogFile         string `yaml:"log_file" json:"log_file"`
	Verbose         bool   `yaml:"verbose" json:"verbose"`
}

// settingsFile is one file's view of Settings; nil fields were not set.
type settingsFile struct {
	CaseInsensitive *bool   `yaml:"case_insensitive"`
	LogFile         *string `yaml:"log_file"`
	Verbose         *bool   `yaml:"verbose"`
}

var current Settings

func Get() Settings { return current }

// DefaultDir is the directory searched for settings when --config is not given.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "minigrep"), nil
}

// Discover returns the settings files to load: every *.yaml and *.yml in the
// directory of explicit, or in dir when explicit is empty. An explicit file
// must exist; a missing default dir yields no files.
func Discover(explicit, dir string) ([]string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		dir = filepath.Dir(explicit)
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return sortedYAML(files), nil
}

// LoadFromFiles merges files in lexical order; a key set in a later file
// overrides the same key from an earlier one. Each file is validated against
// the settings schema before it is merged.
func LoadFromFiles(files []string) (Settings, error) {
	merged := Settings{}
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Settings{}, err
		}
		if err := ValidateDocument(b); err != nil {
			return Settings{}, fmt.Errorf("%s: %w", f, err)
		}
		var part settingsFile
		if err := yaml.Unmarshal(b, &part); err != nil {
			return Settings{}, fmt.Errorf("%s: %w", f, err)
		}
		merged = mergeSettings(merged, part)
	}
	current = merged
	return merged, nil
}

func mergeSettings(base Settings, overlay settingsFile) Settings {
	out := base
	if overlay.CaseInsensitive != nil {
		out.CaseInsensitive = *overlay.CaseInsensitive
	}
	if overlay.LogFile != nil {
		out.LogFile = *overlay.LogFile
	}
	if overlay.Verbose != nil {
		out.Verbose = *overlay.Verbose
	}
	return out
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}
