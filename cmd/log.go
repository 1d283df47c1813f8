package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/mkaski/focusforge/internal/timeutil"
)

var logDate string

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show completed focus sessions",
	Long: `Show the focus sessions completed today, or on another day
with --date YYYY-MM-DD.`,
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "Day to show (YYYY-MM-DD, default: today)")
}

func runLog(cmd *cobra.Command, args []string) error {
	date := logDate
	if date == "" {
		date = timeutil.Today(time.Now())
	}
	if !timeutil.ValidDate(date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	records, err := storageAdapter.Sessions().ForDate(cmd.Context(), date)
	if err != nil {
		return fmt.Errorf("failed to read session log: %w", err)
	}

	if jsonOutput {
		sessions := make([]map[string]interface{}, 0, len(records))
		totalSeconds := 0
		for _, r := range records {
			sessions = append(sessions, map[string]interface{}{
				"time":             r.Time,
				"duration_seconds": r.Duration,
				"description":      r.Description,
			})
			totalSeconds += r.Duration
		}
		output := map[string]interface{}{
			"date":          date,
			"sessions":      sessions,
			"total_count":   len(records),
			"total_seconds": totalSeconds,
		}
		jsonData, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	}

	if len(records) == 0 {
		fmt.Printf("No sessions on %s.\n", date)
		return nil
	}

	fmt.Printf("Sessions on %s:\n", date)
	totalSeconds := 0
	for _, r := range records {
		fmt.Printf("  %s-%s  %s\n", r.Time, endOfSession(r.Time, r.Duration), r.Description)
		totalSeconds += r.Duration
	}
	fmt.Printf("Total: %d session(s), %s\n", len(records), timeutil.FormatClock(totalSeconds))
	return nil
}

// endOfSession adds the session duration to its HH:MM start time. Rows
// with an unreadable start time show the start unchanged.
func endOfSession(start string, durationSeconds int) string {
	t, err := time.Parse(timeutil.ClockLayout, start)
	if err != nil {
		return start
	}
	return timeutil.FormatTimeOfDay(t.Add(time.Duration(durationSeconds) * time.Second))
}
