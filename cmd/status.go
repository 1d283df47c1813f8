package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/mkaski/focusforge/internal/timeutil"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a one-screen summary",
	Long:  `Show the streak, today's session count, and the pending tasks.`,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	today := timeutil.Today(time.Now())

	streak, err := storageAdapter.Streak().Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load streak: %w", err)
	}
	todayCount, err := storageAdapter.Sessions().CountForDate(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to count today's sessions: %w", err)
	}
	tasks, err := storageAdapter.Tasks().Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	pending := 0
	for _, task := range tasks {
		if !task.Done {
			pending++
		}
	}

	branch := ""
	if gitDetector != nil {
		if wd, err := os.Getwd(); err == nil && gitDetector.IsAvailable(wd) {
			branch, _ = gitDetector.Branch(ctx, wd)
		}
	}

	if jsonOutput {
		output := map[string]interface{}{
			"date":           today,
			"streak_current": streak.Current,
			"streak_max":     streak.Max,
			"today_sessions": todayCount,
			"task_count":     len(tasks),
			"pending_tasks":  pending,
		}
		if branch != "" {
			output["git_branch"] = branch
		}
		jsonData, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	}

	fmt.Printf("Streak: %d day(s) | Today: %d session(s)\n", streak.Current, todayCount)
	if branch != "" {
		fmt.Printf("Branch: %s\n", branch)
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}
	fmt.Printf("Tasks: %d pending of %d\n", pending, len(tasks))
	for i, task := range tasks {
		if task.Done {
			continue
		}
		fmt.Printf("  %d. %s\n", i+1, task.Text)
	}
	return nil
}
