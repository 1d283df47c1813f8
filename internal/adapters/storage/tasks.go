package storage

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/mkaski/focusforge/internal/domain"
	"github.com/mkaski/focusforge/internal/ports"
)

// taskStore implements ports.TaskStore on a line-oriented text file.
// Each line is "[X] text" for a done task or "[ ] text" for an open one.
type taskStore struct {
	path string
}

// newTaskStore creates a task store backed by the file at path.
func newTaskStore(path string) ports.TaskStore {
	return &taskStore{path: path}
}

// Load reads the task file. Lines that do not match the expected shape
// are skipped so one corrupt line never loses the rest of the list.
// Stops at capacity; extra lines are ignored.
func (s *taskStore) Load(ctx context.Context) ([]domain.Task, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open task file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var tasks []domain.Task
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if len(tasks) >= domain.MaxTasks {
			break
		}
		line := scanner.Text()
		if len(line) < 4 || line[0] != '[' || line[2] != ']' {
			continue
		}
		tasks = append(tasks, domain.Task{
			Text: domain.TruncateText(line[4:]),
			Done: line[1] == 'X',
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}

	return tasks, nil
}

// Save rewrites the task file with the full list, preserving order.
func (s *taskStore) Save(ctx context.Context, tasks []domain.Task) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open task file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, task := range tasks {
		mark := ' '
		if task.Done {
			mark = 'X'
		}
		if _, err := fmt.Fprintf(w, "[%c] %s\n", mark, task.Text); err != nil {
			_ = f.Close()
			return fmt.Errorf("failed to write task file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to flush task file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close task file: %w", err)
	}

	return nil
}
