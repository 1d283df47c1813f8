// Package services contains the application use cases, wiring the
// domain state machines to the storage ports.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mkaski/focusforge/internal/domain"
	"github.com/mkaski/focusforge/internal/ports"
	"github.com/mkaski/focusforge/internal/timeutil"
)

// defaultFocusTask is shown and logged until the user sets a real one.
const defaultFocusTask = "???"

// Controller owns the running application state: the timer, the task
// list, the focus task, and the cached streak counters. All mutations
// go through it so every change is persisted immediately, the way a
// crash can never lose more than the in-flight operation.
type Controller struct {
	storage  ports.Storage
	notifier ports.Notifier

	timer     *domain.TimerSession
	tasks     *domain.TaskList
	focusTask string

	// Cached so the view never rescans the log on every frame. The
	// count is re-derived when the calendar date rolls over.
	streak     domain.StreakState
	todayDate  string
	todayCount int

	now func() time.Time
}

// Result is the user-visible outcome of one command.
type Result struct {
	Message  string
	Quit     bool
	ShowHelp bool
}

// Snapshot is a read-only view of the controller state for rendering.
type Snapshot struct {
	Phase      domain.Phase
	Remaining  int
	FocusTask  string
	Tasks      []domain.Task
	Selected   int
	HasTasks   bool
	Streak     domain.StreakState
	TodayCount int
}

// NewController loads persisted state and returns a ready controller.
func NewController(ctx context.Context, storage ports.Storage, notifier ports.Notifier) (*Controller, error) {
	c := &Controller{
		storage:   storage,
		notifier:  notifier,
		timer:     domain.NewTimerSession(),
		focusTask: defaultFocusTask,
		now:       time.Now,
	}

	tasks, err := storage.Tasks().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	c.tasks = domain.NewTaskListFrom(tasks)

	streak, err := storage.Streak().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}
	c.streak = streak

	c.todayDate = timeutil.Today(c.now())
	count, err := storage.Sessions().CountForDate(ctx, c.todayDate)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's sessions: %w", err)
	}
	c.todayCount = count

	return c, nil
}

// Execute runs one interpreted command against the application state.
func (c *Controller) Execute(ctx context.Context, cmd domain.Command) Result {
	switch cmd.Type {
	case domain.CommandNone:
		return Result{}

	case domain.CommandQuit:
		return Result{Quit: true}

	case domain.CommandHelp:
		return Result{ShowHelp: true}

	case domain.CommandAddTask:
		return c.addTask(ctx, cmd.Arg)

	case domain.CommandSetFocusTask:
		return c.setFocusTask(cmd.Arg)

	case domain.CommandMarkDone:
		return c.taskByNumber(ctx, cmd.Arg, c.tasks.MarkDone, "Task marked as done")

	case domain.CommandUnmark:
		return c.taskByNumber(ctx, cmd.Arg, c.tasks.Unmark, "Task unmarked")

	case domain.CommandRemove:
		return c.taskByNumber(ctx, cmd.Arg, c.tasks.Remove, "Task removed")

	case domain.CommandStartFocus:
		if err := c.timer.StartFocus(); err != nil {
			return Result{Message: "Session already active"}
		}
		return Result{Message: "Focus session started"}

	case domain.CommandStartBreak:
		if err := c.timer.StartBreak(); err != nil {
			return Result{Message: "Session already active"}
		}
		return Result{Message: "Break session started"}

	case domain.CommandStop:
		result, err := c.timer.Stop()
		if err != nil {
			return Result{Message: "No active session"}
		}
		if result != nil {
			if msg := c.commitSession(ctx, result); msg != "" {
				return Result{Message: msg}
			}
		}
		return Result{Message: "Session stopped"}

	case domain.CommandSkip:
		result, err := c.timer.Skip()
		if err != nil {
			return Result{Message: "No active session"}
		}
		if result != nil {
			if msg := c.commitSession(ctx, result); msg != "" {
				return Result{Message: msg}
			}
			return Result{Message: "Focus session completed. Break started."}
		}
		return Result{Message: "Break completed. Ready for next focus session."}
	}

	return Result{}
}

// Tick consumes one elapsed second. When a phase expires on this tick
// the transition is committed and announced.
func (c *Controller) Tick(ctx context.Context) Result {
	result, ended := c.timer.Tick()
	if !ended {
		return Result{}
	}

	if result != nil {
		if msg := c.commitSession(ctx, result); msg != "" {
			return Result{Message: msg}
		}
		if c.notifier != nil && c.notifier.IsEnabled() {
			_ = c.notifier.NotifyFocusComplete(c.focusTask)
		}
		return Result{Message: "Focus session completed! Break started."}
	}

	if c.notifier != nil && c.notifier.IsEnabled() {
		_ = c.notifier.NotifyBreakComplete()
	}
	return Result{Message: "Break completed! Ready for next focus session."}
}

// SelectNext moves the task cursor down.
func (c *Controller) SelectNext() {
	c.tasks.SelectNext()
}

// SelectPrev moves the task cursor up.
func (c *Controller) SelectPrev() {
	c.tasks.SelectPrev()
}

// MarkSelectedDone marks the task under the cursor as done.
func (c *Controller) MarkSelectedDone(ctx context.Context) Result {
	return c.selectedOp(ctx, c.tasks.MarkDone, "Task marked as done")
}

// UnmarkSelected clears the done flag on the task under the cursor.
func (c *Controller) UnmarkSelected(ctx context.Context) Result {
	return c.selectedOp(ctx, c.tasks.Unmark, "Task unmarked")
}

// RemoveSelected deletes the task under the cursor.
func (c *Controller) RemoveSelected(ctx context.Context) Result {
	return c.selectedOp(ctx, c.tasks.Remove, "Task removed")
}

// FocusFromSelected sets the focus task from the task under the cursor.
func (c *Controller) FocusFromSelected() Result {
	task, ok := c.tasks.SelectedTask()
	if !ok {
		return Result{}
	}
	c.focusTask = task.Text
	return Result{Message: "Focus task updated"}
}

// Snapshot returns the current state for rendering.
func (c *Controller) Snapshot() Snapshot {
	selected, hasTasks := c.tasks.Selected()
	return Snapshot{
		Phase:      c.timer.Phase,
		Remaining:  c.timer.Remaining,
		FocusTask:  c.focusTask,
		Tasks:      c.tasks.Tasks(),
		Selected:   selected,
		HasTasks:   hasTasks,
		Streak:     c.streak,
		TodayCount: c.todayCount,
	}
}

// addTask appends a task and persists the list.
func (c *Controller) addTask(ctx context.Context, text string) Result {
	switch err := c.tasks.Add(text); err {
	case nil:
	case domain.ErrTaskListFull:
		return Result{Message: "Maximum number of tasks reached"}
	case domain.ErrEmptyTaskText:
		return Result{Message: "Task text cannot be empty"}
	default:
		return Result{}
	}
	if msg := c.saveTasks(ctx); msg != "" {
		return Result{Message: msg}
	}
	return Result{Message: "Task added"}
}

// setFocusTask replaces the focus task label. Not persisted; it resets
// on restart like it always has.
func (c *Controller) setFocusTask(text string) Result {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{}
	}
	c.focusTask = domain.TruncateText(trimmed)
	return Result{Message: "Focus task updated"}
}

// taskByNumber runs a 1-based numbered task operation and persists.
func (c *Controller) taskByNumber(ctx context.Context, arg string, op func(int) error, okMsg string) Result {
	index, err := domain.ParseTaskNumber(arg, c.tasks.Len())
	if err != nil {
		return Result{Message: "Invalid task number"}
	}
	if err := op(index); err != nil {
		return Result{Message: "Invalid task number"}
	}
	if msg := c.saveTasks(ctx); msg != "" {
		return Result{Message: msg}
	}
	return Result{Message: okMsg}
}

// selectedOp runs a cursor-based task operation and persists.
func (c *Controller) selectedOp(ctx context.Context, op func(int) error, okMsg string) Result {
	index, ok := c.tasks.Selected()
	if !ok {
		return Result{}
	}
	if err := op(index); err != nil {
		return Result{}
	}
	if msg := c.saveTasks(ctx); msg != "" {
		return Result{Message: msg}
	}
	return Result{Message: okMsg}
}

// saveTasks rewrites the task file, returning a message on failure.
// Task operations never abort on a write error; the in-memory list
// stays authoritative for the rest of the run.
func (c *Controller) saveTasks(ctx context.Context) string {
	if err := c.storage.Tasks().Save(ctx, c.tasks.Tasks()); err != nil {
		return "Error writing to tasks file"
	}
	return ""
}

// commitSession logs one finished focus phase and updates the streak.
// Whether today and yesterday already had sessions is decided before
// the append, so committing twice on the same day credits the streak
// exactly once. Returns a message only on failure.
func (c *Controller) commitSession(ctx context.Context, result *domain.FocusResult) string {
	c.refreshToday(ctx)

	hadToday := c.todayCount > 0
	hadYesterday, err := c.storage.Sessions().HasDate(ctx, timeutil.Yesterday(c.now()))
	if err != nil {
		hadYesterday = false
	}

	record := domain.SessionRecord{
		Date:        timeutil.FormatDate(result.Start),
		Time:        timeutil.FormatTimeOfDay(result.Start),
		Duration:    result.ElapsedSeconds(),
		Description: c.focusTask,
	}
	if err := c.storage.Sessions().Append(ctx, record); err != nil {
		return "Error writing to sessions file"
	}
	c.todayCount++

	if !hadToday {
		if hadYesterday {
			c.streak.Current++
		} else {
			c.streak.Current = 1
		}
		if c.streak.Current > c.streak.Max {
			c.streak.Max = c.streak.Current
		}
		if err := c.storage.Streak().Save(ctx, c.streak); err != nil {
			return "Error writing to meta file"
		}
	}

	return ""
}

// refreshToday re-derives the cached per-day count when the calendar
// date has rolled over since it was last computed.
func (c *Controller) refreshToday(ctx context.Context) {
	today := timeutil.Today(c.now())
	if today == c.todayDate {
		return
	}
	c.todayDate = today
	count, err := c.storage.Sessions().CountForDate(ctx, today)
	if err != nil {
		count = 0
	}
	c.todayCount = count
}
