// Package plain persists settings in an unencrypted TOML file. It is the
// legacy backend; new sessions land here only when the encrypted store
// cannot be opened.
package plain

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/qoocca/parent-pay/internal/ports"
)

const (
	storeDirMode  = 0o700
	storeFileMode = 0o600

	currentSchemaVersion = 1
)

type fileSchema struct {
	Version int               `toml:"version"`
	Values  map[string]string `toml:"values"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Values == nil {
		s.Values = map[string]string{}
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported settings schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.SettingsStore = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

func (s *Store) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	schema, err := s.read()
	if err != nil {
		return "", false, err
	}

	value, ok := schema.Values[key]
	return value, ok, nil
}

func (s *Store) Put(values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	schema, err := s.read()
	if err != nil {
		return err
	}
	schema.applyDefaults()
	for key, value := range values {
		schema.Values[key] = value
	}

	return s.write(schema)
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear settings file: %w", err)
	}

	return nil
}

func (s *Store) read() (fileSchema, error) {
	var schema fileSchema

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			schema.applyDefaults()
			return schema, nil
		}
		return schema, fmt.Errorf("read settings file: %w", err)
	}

	if err := toml.Unmarshal(data, &schema); err != nil {
		return schema, fmt.Errorf("parse settings file: %w", err)
	}
	schema.applyDefaults()
	if err := schema.validateVersion(); err != nil {
		return schema, err
	}

	return schema, nil
}

func (s *Store) write(schema fileSchema) error {
	data, err := toml.Marshal(schema)
	if err != nil {
		return fmt.Errorf("encode settings file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, storeDirMode); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.toml.tmp")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp settings file: %w", err)
	}
	if err := tmp.Chmod(storeFileMode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp settings file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace settings file: %w", err)
	}

	return nil
}
