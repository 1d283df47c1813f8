package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

var (
	listPending bool
	listSearch  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks with their 1-based numbers and done marks.

Use --pending to hide completed tasks and --search to fuzzy-match
against the task text.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listPending, "pending", false, "Show only tasks that are not done")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Fuzzy-search tasks by text")
}

// numberedTask pairs a task with its stable 1-based number so that
// filtering never renumbers the list.
type numberedTask struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
	Done   bool   `json:"done"`
}

func runList(cmd *cobra.Command, args []string) error {
	tasks, err := storageAdapter.Tasks().Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	numbered := make([]numberedTask, 0, len(tasks))
	for i, task := range tasks {
		numbered = append(numbered, numberedTask{Number: i + 1, Text: task.Text, Done: task.Done})
	}

	if listSearch != "" {
		numbered = fuzzyFilter(numbered, listSearch)
	}
	if listPending {
		kept := numbered[:0]
		for _, task := range numbered {
			if !task.Done {
				kept = append(kept, task)
			}
		}
		numbered = kept
	}

	if jsonOutput {
		output := map[string]interface{}{
			"tasks":       numbered,
			"total_count": len(numbered),
		}
		jsonData, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	}

	if len(numbered) == 0 {
		fmt.Println("No tasks.")
		return nil
	}

	for _, task := range numbered {
		mark := " "
		if task.Done {
			mark = "X"
		}
		fmt.Printf("%d. [%s] %s\n", task.Number, mark, task.Text)
	}
	return nil
}

// fuzzyFilter keeps the tasks whose text fuzzy-matches the query,
// ordered by match quality.
func fuzzyFilter(tasks []numberedTask, query string) []numberedTask {
	texts := make([]string, len(tasks))
	for i, task := range tasks {
		texts[i] = task.Text
	}

	matches := fuzzy.Find(query, texts)
	filtered := make([]numberedTask, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, tasks[match.Index])
	}
	return filtered
}
