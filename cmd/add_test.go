package cmd

import (
	"context"
	"testing"

	"github.com/mkaski/focusforge/internal/adapters/storage"
)

// setupTestStorage points the shared storage adapter at a temp
// directory so command RunE functions can be exercised directly.
func setupTestStorage(t *testing.T) {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	storageAdapter = store
	jsonOutput = false
}

func TestAddCmd(t *testing.T) {
	t.Run("command structure", func(t *testing.T) {
		if addCmd.Use != "add [text]" {
			t.Errorf("addCmd.Use = %q, want %q", addCmd.Use, "add [text]")
		}
		if addCmd.Args == nil {
			t.Error("addCmd.Args should be set")
		}
	})

	t.Run("adds and persists a task", func(t *testing.T) {
		setupTestStorage(t)
		addCmd.SetContext(context.Background())

		if err := runAdd(addCmd, []string{"write", "the", "report"}); err != nil {
			t.Fatalf("runAdd() error = %v", err)
		}

		tasks, err := storageAdapter.Tasks().Load(context.Background())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(tasks) != 1 || tasks[0].Text != "write the report" {
			t.Errorf("tasks = %+v", tasks)
		}
	})
}

func TestAddCmd_ValidateArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"no args", []string{}, true},
		{"single word", []string{"task"}, false},
		{"multi word", []string{"my", "task", "name"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := addCmd.Args(addCmd, tt.args)
			if tt.wantErr && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
