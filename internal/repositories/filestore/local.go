// Package filestore provides a local-disk implementation of the artifact
// store used for generated statements and profile images.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	portsrepo "github.com/casherapp/casher_backend/internal/core/ports/repositories"
)

type localStore struct {
	dir string
}

// NewLocalStore creates a disk-backed artifact store rooted at dir, creating
// the directory if needed.
func NewLocalStore(dir string) (portsrepo.ArtifactStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory %s: %w", dir, err)
	}
	return &localStore{dir: dir}, nil
}

var _ portsrepo.ArtifactStore = (*localStore)(nil)

// Save writes the artifact and returns its path. An existing artifact of the
// same name is overwritten; the write is exclusive for its duration.
func (s *localStore) Save(_ context.Context, name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact %s: %w", name, err)
	}
	return path, nil
}

func (s *localStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func (s *localStore) Remove(_ context.Context, name string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove artifact %s: %w", name, err)
	}
	return nil
}
