package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists the whole mapping as a single JSON file. Every Put
// rewrites the entire file; there is no batching and no atomic rename, so a
// crash between load and save loses the last update.
type FileStore struct {
	path    string
	entries map[string]string
}

// OpenFile opens a file-backed store at path. A missing, unreadable, or
// syntactically invalid file yields an empty mapping; the three cases are
// deliberately indistinguishable. A leading ~/ is expanded to the home
// directory and parent directories are created on demand.
func OpenFile(path string) (*FileStore, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	s := &FileStore{
		path:    path,
		entries: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		s.entries = make(map[string]string)
	}

	return s, nil
}

// Get returns the cached value for key.
func (s *FileStore) Get(key string) (string, bool, error) {
	value, ok := s.entries[key]
	return value, ok, nil
}

// Put stores value under key and rewrites the whole file.
func (s *FileStore) Put(key, value string) error {
	s.entries[key] = value

	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}
	return nil
}

// Keys returns all cached keys.
func (s *FileStore) Keys() ([]string, error) {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys, nil
}

// Size returns the number of cached entries.
func (s *FileStore) Size() int {
	return len(s.entries)
}

// Close is a no-op for the file backend.
func (s *FileStore) Close() error {
	return nil
}
