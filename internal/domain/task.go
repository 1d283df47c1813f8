// Package domain contains the core business entities for FocusForge.
// These entities represent the task list, the session timer, and the
// session log records, independent of any storage or UI framework.
package domain

import (
	"errors"
	"strconv"
	"strings"
)

// Common domain errors.
var (
	ErrEmptyTaskText     = errors.New("task text cannot be empty")
	ErrTaskListFull      = errors.New("maximum number of tasks reached")
	ErrInvalidTaskNumber = errors.New("invalid task number")
	ErrSessionActive     = errors.New("session already active")
	ErrNoActiveSession   = errors.New("no active session")
)

const (
	// MaxTasks is the task list capacity.
	MaxTasks = 100

	// MaxTaskLen is the maximum task or focus description length. Longer
	// input is silently truncated, matching the persisted format.
	MaxTaskLen = 255
)

// Task is a single entry in the task list. Its identity is its position:
// insertion order is display order is persisted order.
type Task struct {
	Text string
	Done bool
}

// TaskList is a bounded, ordered collection of tasks with a selection
// cursor. The cursor is always within [0, Len()) while the list is
// non-empty; an empty list has no valid selection.
type TaskList struct {
	tasks    []Task
	selected int
}

// NewTaskList creates an empty task list.
func NewTaskList() *TaskList {
	return &TaskList{}
}

// NewTaskListFrom creates a task list seeded with loaded tasks. Anything
// beyond the capacity is dropped.
func NewTaskListFrom(tasks []Task) *TaskList {
	if len(tasks) > MaxTasks {
		tasks = tasks[:MaxTasks]
	}
	l := &TaskList{tasks: make([]Task, len(tasks))}
	copy(l.tasks, tasks)
	return l
}

// TruncateText clamps s to MaxTaskLen bytes.
func TruncateText(s string) string {
	if len(s) > MaxTaskLen {
		return s[:MaxTaskLen]
	}
	return s
}

// Add appends a new undone task.
func (l *TaskList) Add(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyTaskText
	}
	if len(l.tasks) >= MaxTasks {
		return ErrTaskListFull
	}
	l.tasks = append(l.tasks, Task{Text: TruncateText(text)})
	return nil
}

// MarkDone sets the done flag on the task at index. Idempotent.
func (l *TaskList) MarkDone(index int) error {
	if index < 0 || index >= len(l.tasks) {
		return ErrInvalidTaskNumber
	}
	l.tasks[index].Done = true
	return nil
}

// Unmark clears the done flag on the task at index. Idempotent.
func (l *TaskList) Unmark(index int) error {
	if index < 0 || index >= len(l.tasks) {
		return ErrInvalidTaskNumber
	}
	l.tasks[index].Done = false
	return nil
}

// Remove deletes the task at index, shifting later tasks left. If the
// selection falls past the new end it moves to the last valid index.
func (l *TaskList) Remove(index int) error {
	if index < 0 || index >= len(l.tasks) {
		return ErrInvalidTaskNumber
	}
	l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	if l.selected >= len(l.tasks) && l.selected > 0 {
		l.selected = len(l.tasks) - 1
	}
	if len(l.tasks) == 0 {
		l.selected = 0
	}
	return nil
}

// SelectPrev moves the cursor up one task, clamping at the top.
func (l *TaskList) SelectPrev() {
	if l.selected > 0 {
		l.selected--
	}
}

// SelectNext moves the cursor down one task, clamping at the bottom.
func (l *TaskList) SelectNext() {
	if l.selected < len(l.tasks)-1 {
		l.selected++
	}
}

// Selected returns the cursor index, or false when the list is empty.
func (l *TaskList) Selected() (int, bool) {
	if len(l.tasks) == 0 {
		return 0, false
	}
	return l.selected, true
}

// SelectedTask returns the task under the cursor, or false when empty.
func (l *TaskList) SelectedTask() (Task, bool) {
	if len(l.tasks) == 0 {
		return Task{}, false
	}
	return l.tasks[l.selected], true
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the ordered task sequence.
func (l *TaskList) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// ParseTaskNumber validates a 1-based task number argument and converts it
// to a 0-based index. The argument must be a positive integer no greater
// than the capacity and no greater than count.
func ParseTaskNumber(arg string, count int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, ErrInvalidTaskNumber
	}
	if n <= 0 || n > MaxTasks || n > count {
		return 0, ErrInvalidTaskNumber
	}
	return n - 1, nil
}
