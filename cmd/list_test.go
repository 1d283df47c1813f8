package cmd

import (
	"context"
	"testing"

	"github.com/mkaski/focusforge/internal/domain"
)

func TestListCmd_Flags(t *testing.T) {
	if listCmd.Flags().Lookup("pending") == nil {
		t.Error("listCmd should have --pending flag")
	}
	if listCmd.Flags().Lookup("search") == nil {
		t.Error("listCmd should have --search flag")
	}
}

func TestFuzzyFilter(t *testing.T) {
	tasks := []numberedTask{
		{Number: 1, Text: "write weekly report"},
		{Number: 2, Text: "buy groceries"},
		{Number: 3, Text: "review pull request"},
	}

	tests := []struct {
		name        string
		query       string
		wantNumbers []int
	}{
		{"exact word", "groceries", []int{2}},
		{"abbreviation", "wwr", []int{1}},
		{"no match", "zzzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fuzzyFilter(tasks, tt.query)
			if len(got) != len(tt.wantNumbers) {
				t.Fatalf("fuzzyFilter(%q) returned %d tasks, want %d", tt.query, len(got), len(tt.wantNumbers))
			}
			for i, want := range tt.wantNumbers {
				if got[i].Number != want {
					t.Errorf("result[%d].Number = %d, want %d", i, got[i].Number, want)
				}
			}
		})
	}
}

func TestListCmd_NumbersAreStable(t *testing.T) {
	setupTestStorage(t)
	listCmd.SetContext(context.Background())

	_ = storageAdapter.Tasks().Save(context.Background(), []domain.Task{
		{Text: "done already", Done: true},
		{Text: "still open", Done: false},
	})

	// Filtering must not renumber: "still open" stays task 2.
	listPending = true
	defer func() { listPending = false }()

	if err := runList(listCmd, nil); err != nil {
		t.Fatalf("runList() error = %v", err)
	}
}
