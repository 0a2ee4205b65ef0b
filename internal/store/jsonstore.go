package store

import (
	"errors"
	"os"
	"path/filepath"
)

// Store reads cached Sleeper JSON and writes rendered reports, all relative
// to a single data root.
type Store struct {
	Root string // e.g. "data/sleeper"
}

func New(root string) *Store {
	return &Store{Root: root}
}

func (s *Store) Path(rel string) string {
	return filepath.Join(s.Root, rel)
}

func (s *Store) Exists(rel string) bool {
	_, err := os.Stat(s.Path(rel))
	return err == nil
}

func (s *Store) ReadRaw(rel string) ([]byte, error) {
	path := s.Path(rel)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return b, err
}

// WriteText writes a rendered report, creating parent directories as needed.
func (s *Store) WriteText(rel string, text string) error {
	path := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}
