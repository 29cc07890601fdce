package file

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JSONStore is a whole-document collection kept in one indented JSON file.
// Every write replaces the file; there is no partial update.
type JSONStore[T any] struct {
	mu       sync.Mutex
	path     string
	defaults []T
}

func NewJSONStore[T any](path string, defaults []T) *JSONStore[T] {
	return &JSONStore[T]{path: path, defaults: defaults}
}

func (s *JSONStore[T]) Path() string {
	return s.path
}

// EnsureExists writes the defaults when the file is missing.
func (s *JSONStore[T]) EnsureExists() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return s.write(s.defaultCopy())
}

// Load returns the stored collection, or the defaults if the file is absent.
func (s *JSONStore[T]) Load() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *JSONStore[T]) Replace(items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(items)
}

// Update runs a load-modify-replace cycle under the store lock.
func (s *JSONStore[T]) Update(fn func([]T) []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return err
	}
	return s.write(fn(items))
}

func (s *JSONStore[T]) read() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s.defaultCopy(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *JSONStore[T]) write(items []T) error {
	if items == nil {
		items = []T{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func (s *JSONStore[T]) defaultCopy() []T {
	return append([]T{}, s.defaults...)
}
