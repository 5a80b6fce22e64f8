package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryInterval = 50 * time.Millisecond

// JSONFileAdapter stores each key as a JSON file in a config directory,
// guarded by a cross-process file lock so two CLI invocations cannot
// interleave partial writes.
type JSONFileAdapter struct {
	dir      string
	fileLock *flock.Flock
}

// NewJSONFileAdapter creates an adapter rooted at dir, creating the directory
// if needed.
func NewJSONFileAdapter(dir string) (*JSONFileAdapter, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	return &JSONFileAdapter{
		dir:      dir,
		fileLock: flock.New(filepath.Join(dir, ".habitkeep.lock")),
	}, nil
}

func (a *JSONFileAdapter) path(key string) string {
	return filepath.Join(a.dir, key+".json")
}

func (a *JSONFileAdapter) withLock(ctx context.Context, fn func() error) error {
	locked, err := a.fileLock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return fmt.Errorf("failed to acquire storage lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("storage is locked by another process")
	}
	defer func() { _ = a.fileLock.Unlock() }()
	return fn()
}

func (a *JSONFileAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := a.withLock(ctx, func() error {
		b, err := os.ReadFile(a.path(key))
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		data = b
		return nil
	})
	return data, err
}

func (a *JSONFileAdapter) Set(ctx context.Context, key string, value []byte) error {
	return a.withLock(ctx, func() error {
		// Write to a temp file first so a crash mid-write cannot corrupt the
		// previous value.
		tmp := a.path(key) + ".tmp"
		if err := os.WriteFile(tmp, value, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", key, err)
		}
		if err := os.Rename(tmp, a.path(key)); err != nil {
			return fmt.Errorf("failed to replace %s: %w", key, err)
		}
		return nil
	})
}

func (a *JSONFileAdapter) Close() error {
	return nil
}
