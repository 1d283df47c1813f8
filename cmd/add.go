package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/mkaski/focusforge/internal/domain"
)

var addCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a task to the list",
	Long: `Add a task to the list without opening the timer.

The task text is everything after "add", so quoting is optional:

  focusforge add Write the weekly report`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	ctx := cmd.Context()

	tasks, err := storageAdapter.Tasks().Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	list := domain.NewTaskListFrom(tasks)
	if err := list.Add(text); err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}
	if err := storageAdapter.Tasks().Save(ctx, list.Tasks()); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}

	added := list.Tasks()[list.Len()-1]

	if jsonOutput {
		output := map[string]interface{}{
			"number": list.Len(),
			"text":   added.Text,
			"done":   false,
		}
		jsonData, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	}

	fmt.Printf("Added task %d: %s\n", list.Len(), added.Text)
	return nil
}
