package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/degreeplan-cli/internal/domain"
	"github.com/bnema/degreeplan-cli/internal/ports"
)

const (
	storeDirMode     = 0o700
	snapshotFileMode = 0o600
	snapshotExt      = ".plan"
)

// Store keeps one text file per named snapshot under root.
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.SnapshotStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) Put(ctx context.Context, name string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForName(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.root, storeDirMode); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(value), snapshotFileMode); err != nil {
		return fmt.Errorf("write snapshot %q: %w", name, err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.pathForName(name)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("snapshot %q: %w", name, domain.ErrSnapshotNotFound)
		}
		return "", fmt.Errorf("read snapshot %q: %w", name, err)
	}

	return string(data), nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForName(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("snapshot %q: %w", name, domain.ErrSnapshotNotFound)
		}
		return fmt.Errorf("delete snapshot %q: %w", name, err)
	}

	return nil
}

// List returns snapshot names in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), snapshotExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), snapshotExt))
	}
	sort.Strings(names)

	return names, nil
}

func (s *Store) pathForName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", errors.New("snapshot name is empty")
	}

	if strings.ContainsAny(trimmed, `/\`) || strings.HasPrefix(trimmed, ".") {
		return "", fmt.Errorf("invalid snapshot name %q", name)
	}

	return filepath.Join(s.root, trimmed+snapshotExt), nil
}
