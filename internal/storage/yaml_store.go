package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const storeFileName = "store.yaml"

type yamlDocument struct {
	Bools   map[string]bool    `yaml:"bools,omitempty"`
	Floats  map[string]float64 `yaml:"floats,omitempty"`
	Strings map[string]string  `yaml:"strings,omitempty"`
}

// YAMLStore keeps all keys in a single YAML file. Every setter rewrites the
// file through a temporary file and rename, so readers never see a partial
// document.
type YAMLStore struct {
	mu   sync.Mutex
	path string
}

// OpenYAMLStore returns a store backed by path. The file is created on the
// first write.
func OpenYAMLStore(path string) (*YAMLStore, error) {
	if path == "" {
		return nil, errors.New("yaml store path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &YAMLStore{path: path}, nil
}

// DefaultStorePath resolves the per-user store file for appName.
func DefaultStorePath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, storeFileName), nil
}

// Path returns the backing file.
func (store *YAMLStore) Path() string {
	return store.path
}

func (store *YAMLStore) Bool(key string) (bool, bool) {
	doc, err := store.read()
	if err != nil {
		return false, false
	}
	value, ok := doc.Bools[key]
	return value, ok
}

func (store *YAMLStore) SetBool(key string, value bool) error {
	return store.update(func(doc *yamlDocument) {
		if doc.Bools == nil {
			doc.Bools = map[string]bool{}
		}
		doc.Bools[key] = value
	})
}

func (store *YAMLStore) Float(key string) (float64, bool) {
	doc, err := store.read()
	if err != nil {
		return 0, false
	}
	value, ok := doc.Floats[key]
	return value, ok
}

func (store *YAMLStore) SetFloat(key string, value float64) error {
	return store.update(func(doc *yamlDocument) {
		if doc.Floats == nil {
			doc.Floats = map[string]float64{}
		}
		doc.Floats[key] = value
	})
}

func (store *YAMLStore) String(key string) (string, bool) {
	doc, err := store.read()
	if err != nil {
		return "", false
	}
	value, ok := doc.Strings[key]
	return value, ok
}

func (store *YAMLStore) SetString(key string, value string) error {
	return store.update(func(doc *yamlDocument) {
		if doc.Strings == nil {
			doc.Strings = map[string]string{}
		}
		doc.Strings[key] = value
	})
}

func (store *YAMLStore) read() (yamlDocument, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.readLocked()
}

func (store *YAMLStore) readLocked() (yamlDocument, error) {
	var doc yamlDocument
	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, nil
		}
		return doc, fmt.Errorf("read store file: %w", err)
	}
	if err := yaml.Unmarshal(rawData, &doc); err != nil {
		return doc, fmt.Errorf("parse store yaml: %w", err)
	}
	return doc, nil
}

func (store *YAMLStore) update(apply func(*yamlDocument)) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	doc, err := store.readLocked()
	if err != nil {
		return err
	}
	apply(&doc)

	serialized, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal store yaml: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(store.path), "."+storeFileName+".*")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(serialized); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close store file: %w", err)
	}
	if err := os.Rename(tmpPath, store.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
