// Package ports defines the interfaces (driven and driving ports)
// for the FocusForge application following hexagonal architecture
// principles. These interfaces define the contracts between the domain
// layer and external infrastructure.
package ports

import (
	"context"

	"github.com/mkaski/focusforge/internal/domain"
)

// TaskStore defines the interface for task list persistence.
// This is a driven port (implemented by adapters).
type TaskStore interface {
	// Load reads the full task list from storage. Malformed entries are
	// skipped, never surfaced as errors.
	Load(ctx context.Context) ([]domain.Task, error)

	// Save rewrites the full task list to storage.
	Save(ctx context.Context, tasks []domain.Task) error
}

// SessionLog defines the interface for the append-only session history.
// This is a driven port (implemented by adapters).
type SessionLog interface {
	// Append adds one completed session record to the end of the log.
	Append(ctx context.Context, record domain.SessionRecord) error

	// All reads every parseable record from the log, oldest first.
	All(ctx context.Context) ([]domain.SessionRecord, error)

	// ForDate reads the records for one calendar date (YYYY-MM-DD).
	ForDate(ctx context.Context, date string) ([]domain.SessionRecord, error)

	// CountForDate counts the records for one calendar date.
	CountForDate(ctx context.Context, date string) (int, error)

	// HasDate reports whether at least one record exists for a date.
	HasDate(ctx context.Context, date string) (bool, error)
}

// StreakStore defines the interface for streak counter persistence.
// This is a driven port (implemented by adapters).
type StreakStore interface {
	// Load reads the streak counters. A missing or malformed entry
	// yields zero, never an error.
	Load(ctx context.Context) (domain.StreakState, error)

	// Save rewrites the streak counters.
	Save(ctx context.Context, state domain.StreakState) error
}

// Storage is the combined persistence interface.
// This is a driven port (implemented by adapters).
type Storage interface {
	// Tasks provides access to the task list file.
	Tasks() TaskStore

	// Sessions provides access to the session log file.
	Sessions() SessionLog

	// Streak provides access to the streak counters.
	Streak() StreakStore
}
