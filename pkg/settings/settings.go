// Package settings persists per-user values that outlive a single session,
// such as the solution new columns and relationships are added to.
package settings

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/pseudomuto/tablectl/pkg/config"
	"github.com/pseudomuto/tablectl/pkg/consts"
	"gopkg.in/yaml.v3"
)

type (
	// Settings is the content of the settings file.
	Settings struct {
		DefaultSolution string `yaml:"default_solution,omitempty"`
	}

	// Store reads and writes the settings file.
	Store struct {
		path func() string
	}
)

// NewStore returns a Store for the settings file named by cfg. The path is
// read on every access so later config changes are honored.
func NewStore(cfg *config.Config) *Store {
	return &Store{path: func() string { return cfg.SettingsFile }}
}

// NewFileStore returns a Store backed by path.
func NewFileStore(path string) *Store {
	return &Store{path: func() string { return path }}
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return config.ExpandHome(s.path())
}

// Load reads the settings file. A missing file yields empty settings.
func (s *Store) Load() (*Settings, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return new(Settings), nil
		}
		return nil, errors.Wrap(err, "failed to read settings")
	}

	var st Settings
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, errors.Wrapf(err, "failed to parse settings file %s", s.Path())
	}

	return &st, nil
}

// Save writes st to the settings file, creating its directory if needed.
func (s *Store) Save(st *Settings) error {
	path := s.Path()
	if err := os.MkdirAll(filepath.Dir(path), consts.ModeDir); err != nil {
		return errors.Wrap(err, "failed to create settings directory")
	}

	data, err := yaml.Marshal(st)
	if err != nil {
		return errors.Wrap(err, "failed to marshal settings")
	}

	if err := os.WriteFile(path, data, consts.ModePrivateFile); err != nil {
		return errors.Wrap(err, "failed to write settings")
	}

	return nil
}

// DefaultSolution returns the stored default solution, or "" when unset.
func (s *Store) DefaultSolution() (string, error) {
	st, err := s.Load()
	if err != nil {
		return "", err
	}
	return st.DefaultSolution, nil
}

// SetDefaultSolution stores name as the default solution.
func (s *Store) SetDefaultSolution(name string) error {
	st, err := s.Load()
	if err != nil {
		return err
	}

	st.DefaultSolution = name
	return s.Save(st)
}
