package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/mkaski/focusforge/internal/timeutil"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the consecutive-day streak",
	RunE:  runStreak,
}

func runStreak(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	streak, err := storageAdapter.Streak().Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load streak: %w", err)
	}
	todayCount, err := storageAdapter.Sessions().CountForDate(ctx, timeutil.Today(time.Now()))
	if err != nil {
		return fmt.Errorf("failed to count today's sessions: %w", err)
	}

	if jsonOutput {
		output := map[string]interface{}{
			"current":        streak.Current,
			"max":            streak.Max,
			"today_sessions": todayCount,
		}
		jsonData, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	}

	fmt.Printf("Current streak: %d day(s)\n", streak.Current)
	fmt.Printf("Best streak:    %d day(s)\n", streak.Max)
	fmt.Printf("Today:          %d session(s)\n", todayCount)
	return nil
}
