package storage

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mkaski/focusforge/internal/domain"
	"github.com/mkaski/focusforge/internal/ports"
)

// streakStore implements ports.StreakStore on a key=value meta file
// holding streak_max and streak_current.
type streakStore struct {
	path string
}

// newStreakStore creates a streak store backed by the file at path.
func newStreakStore(path string) ports.StreakStore {
	return &streakStore{path: path}
}

// Load reads the streak counters. Missing or malformed values are zero.
func (s *streakStore) Load(ctx context.Context) (domain.StreakState, error) {
	var state domain.StreakState

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, fmt.Errorf("failed to open meta file: %w", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if v, ok := strings.CutPrefix(line, "streak_max="); ok {
			state.Max, _ = strconv.Atoi(strings.TrimSpace(v))
		} else if v, ok := strings.CutPrefix(line, "streak_current="); ok {
			state.Current, _ = strconv.Atoi(strings.TrimSpace(v))
		}
	}
	if err := scanner.Err(); err != nil {
		return state, fmt.Errorf("failed to read meta file: %w", err)
	}

	return state, nil
}

// Save rewrites the streak counters.
func (s *streakStore) Save(ctx context.Context, state domain.StreakState) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open meta file: %w", err)
	}

	_, err = fmt.Fprintf(f, "streak_max=%d\nstreak_current=%d\n", state.Max, state.Current)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write meta file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close meta file: %w", err)
	}

	return nil
}
