package config

import (
	"fmt"

	"kbridge/pkg/logging"
)

// Store is a file-backed run-configuration store. The wizard consumes
// it read-only except for CreateNew, which appends a skeleton entry
// for the user to finish editing.
type Store struct {
	path string
}

// NewStore returns a Store over the given file path. An empty path
// resolves to the default user-level file.
func NewStore(path string) (*Store, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return &Store{path: path}, nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// List returns all persisted run configurations.
func (s *Store) List() ([]RunConfiguration, error) {
	file, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	return file.Configurations, nil
}

// CreateNew appends a skeleton configuration for the user to edit and
// saves the file. The new entry carries a name unique within the file.
func (s *Store) CreateNew() error {
	file, err := Load(s.path)
	if err != nil {
		return err
	}

	name := "New configuration"
	for n := 2; nameTaken(file.Configurations, name); n++ {
		name = fmt.Sprintf("New configuration (%d)", n)
	}
	file.Configurations = append(file.Configurations, RunConfiguration{Name: name})

	if err := Save(s.path, file); err != nil {
		return err
	}
	logging.Info("Config", "Created skeleton run configuration %q in %s", name, s.path)
	return nil
}

func nameTaken(configs []RunConfiguration, name string) bool {
	for _, cfg := range configs {
		if cfg.Name == name {
			return true
		}
	}
	return false
}
