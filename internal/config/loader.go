package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/kbridge"
	configFileName = "configurations.yaml"
)

// DefaultPath returns the user-level configurations file path.
func DefaultPath() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

// Load reads the configurations file at path. A missing file is not an
// error; it yields an empty File.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("error reading configurations from %s: %w", path, err)
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("error parsing configurations from %s: %w", path, err)
	}
	return file, nil
}

// Save writes the configurations file to path, creating parent
// directories as needed.
func Save(path string, file File) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("error serializing configurations: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating configuration directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing configurations to %s: %w", path, err)
	}
	return nil
}
