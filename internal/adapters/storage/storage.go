// Package storage provides plain-text file implementations of the
// storage ports. Everything lives in one data directory: tasks.txt,
// sessions.csv, meta, and settings.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkaski/focusforge/internal/ports"
)

// File names inside the data directory.
const (
	tasksFileName    = "tasks.txt"
	sessionsFileName = "sessions.csv"
	metaFileName     = "meta"
	settingsFileName = "settings"
)

// fileStorage implements the ports.Storage interface on plain files.
type fileStorage struct {
	dir      string
	tasks    ports.TaskStore
	sessions ports.SessionLog
	streak   ports.StreakStore
}

// Ensure fileStorage implements ports.Storage.
var _ ports.Storage = (*fileStorage)(nil)

// New creates a file storage instance rooted at dir, creating the
// directory and any missing data files on first run.
func New(dir string) (ports.Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	files := []string{tasksFileName, sessionsFileName, metaFileName, settingsFileName}
	for _, name := range files {
		if err := ensureFile(filepath.Join(dir, name)); err != nil {
			return nil, err
		}
	}

	return &fileStorage{
		dir:      dir,
		tasks:    newTaskStore(filepath.Join(dir, tasksFileName)),
		sessions: newSessionLog(filepath.Join(dir, sessionsFileName)),
		streak:   newStreakStore(filepath.Join(dir, metaFileName)),
	}, nil
}

// ensureFile creates an empty file if it does not exist, leaving an
// existing file untouched.
func ensureFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// Tasks returns the task list store.
func (s *fileStorage) Tasks() ports.TaskStore {
	return s.tasks
}

// Sessions returns the session log.
func (s *fileStorage) Sessions() ports.SessionLog {
	return s.sessions
}

// Streak returns the streak counter store.
func (s *fileStorage) Streak() ports.StreakStore {
	return s.streak
}
