// Package backup writes timestamped export snapshots next to the config
// directory and rotates old ones away.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"habitkeep/internal/constants"
)

// Info describes one snapshot file
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles snapshot operations for a config directory
type Manager struct {
	backupDir string
}

// NewManager creates a manager writing under configDir/backups
func NewManager(configDir string) *Manager {
	return &Manager{
		backupDir: filepath.Join(configDir, constants.BackupDirName),
	}
}

// Dir returns the snapshot directory path
func (m *Manager) Dir() string {
	return m.backupDir
}

// Write stores an export payload as a new timestamped snapshot and rotates
// old snapshots beyond the retention limit.
func (m *Manager) Write(payload string) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	// Minute precision first; refine on collision
	timestamp := time.Now().Format("20060102-1504")
	path := m.pathFor(timestamp)
	if _, err := os.Stat(path); err == nil {
		timestamp = time.Now().Format("20060102-150405")
		path = m.pathFor(timestamp)
		counter := 1
		for {
			if _, err := os.Stat(path); os.IsNotExist(err) {
				break
			}
			path = m.pathFor(fmt.Sprintf("%s-%d", timestamp, counter))
			counter++
			if counter > 100 {
				return "", fmt.Errorf("failed to generate unique backup filename")
			}
		}
	}

	if err := os.WriteFile(path, []byte(payload), 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if err := m.rotate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
	}

	return path, nil
}

func (m *Manager) pathFor(timestamp string) string {
	name := fmt.Sprintf("%s%s%s", constants.BackupFilePrefix, timestamp, constants.BackupFileSuffix)
	return filepath.Join(m.backupDir, name)
}

// List returns available snapshots, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: info.ModTime(),
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// Read returns the contents of the snapshot at path.
func (m *Manager) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read backup: %w", err)
	}
	return string(data), nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}
