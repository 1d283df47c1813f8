package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mkaski/focusforge/internal/adapters/storage"
	"github.com/mkaski/focusforge/internal/domain"
	"github.com/mkaski/focusforge/internal/ports"
)

func newTestServer(t *testing.T) (*Server, ports.Storage) {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	return NewServer(store), store
}

func request(args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

// resultText extracts the text payload from a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("tool returned empty result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return text.Text
}

func TestNewServer(t *testing.T) {
	s, _ := newTestServer(t)
	if s == nil {
		t.Fatal("NewServer() returned nil")
	}
	if s.server == nil {
		t.Error("NewServer() did not create MCP server")
	}
}

func TestServer_StartHonorsContext(t *testing.T) {
	s, _ := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after context cancellation")
	}
}

func TestServer_handleGetState(t *testing.T) {
	s, store := newTestServer(t)
	ctx := context.Background()

	_ = store.Streak().Save(ctx, domain.StreakState{Max: 4, Current: 2})
	_ = store.Tasks().Save(ctx, []domain.Task{
		{Text: "open", Done: false},
		{Text: "closed", Done: true},
	})

	result, err := s.handleGetState(ctx, request(nil))
	if err != nil {
		t.Fatalf("handleGetState() error = %v", err)
	}

	text := resultText(t, result)
	for _, want := range []string{`"streak_current": 2`, `"streak_max": 4`, `"task_count": 2`, `"pending_tasks": 1`} {
		if !strings.Contains(text, want) {
			t.Errorf("result missing %q:\n%s", want, text)
		}
	}
}

func TestServer_handleListTasks(t *testing.T) {
	s, store := newTestServer(t)
	ctx := context.Background()

	_ = store.Tasks().Save(ctx, []domain.Task{
		{Text: "first", Done: true},
		{Text: "second", Done: false},
	})

	t.Run("all tasks", func(t *testing.T) {
		result, err := s.handleListTasks(ctx, request(nil))
		if err != nil {
			t.Fatalf("handleListTasks() error = %v", err)
		}
		text := resultText(t, result)
		if !strings.Contains(text, `"total_count": 2`) {
			t.Errorf("result missing total:\n%s", text)
		}
	})

	t.Run("pending only", func(t *testing.T) {
		result, err := s.handleListTasks(ctx, request(map[string]interface{}{"pending_only": true}))
		if err != nil {
			t.Fatalf("handleListTasks() error = %v", err)
		}
		text := resultText(t, result)
		if strings.Contains(text, "first") {
			t.Errorf("done task should be filtered out:\n%s", text)
		}
		if !strings.Contains(text, "second") {
			t.Errorf("pending task missing:\n%s", text)
		}
	})
}

func TestServer_handleAddTask(t *testing.T) {
	s, store := newTestServer(t)
	ctx := context.Background()

	result, err := s.handleAddTask(ctx, request(map[string]interface{}{"text": "from mcp"}))
	if err != nil {
		t.Fatalf("handleAddTask() error = %v", err)
	}
	if !strings.Contains(resultText(t, result), `"number": 1`) {
		t.Error("new task should be number 1")
	}

	tasks, _ := store.Tasks().Load(ctx)
	if len(tasks) != 1 || tasks[0].Text != "from mcp" {
		t.Errorf("persisted tasks = %+v", tasks)
	}
}

func TestServer_handleAddTask_MissingText(t *testing.T) {
	s, _ := newTestServer(t)

	result, err := s.handleAddTask(context.Background(), request(nil))
	if err != nil {
		t.Fatalf("handleAddTask() error = %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("missing text should produce a tool error result")
	}
}

func TestServer_handleCompleteTask(t *testing.T) {
	s, store := newTestServer(t)
	ctx := context.Background()

	_ = store.Tasks().Save(ctx, []domain.Task{{Text: "finish me"}})

	result, err := s.handleCompleteTask(ctx, request(map[string]interface{}{"number": float64(1)}))
	if err != nil {
		t.Fatalf("handleCompleteTask() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}

	tasks, _ := store.Tasks().Load(ctx)
	if !tasks[0].Done {
		t.Error("task should be done after complete_task")
	}

	bad, err := s.handleCompleteTask(ctx, request(map[string]interface{}{"number": float64(9)}))
	if err != nil {
		t.Fatalf("handleCompleteTask() error = %v", err)
	}
	if !bad.IsError {
		t.Error("out-of-range number should produce a tool error result")
	}
}

func TestServer_handleTodayLogAndStreak(t *testing.T) {
	s, store := newTestServer(t)
	ctx := context.Background()

	_ = store.Streak().Save(ctx, domain.StreakState{Max: 3, Current: 3})

	result, err := s.handleGetStreak(ctx, request(nil))
	if err != nil {
		t.Fatalf("handleGetStreak() error = %v", err)
	}
	if !strings.Contains(resultText(t, result), `"current": 3`) {
		t.Error("streak result missing current value")
	}

	// Empty log: today_log still answers with a zero total.
	logResult, err := s.handleTodayLog(ctx, request(nil))
	if err != nil {
		t.Fatalf("handleTodayLog() error = %v", err)
	}
	if !strings.Contains(resultText(t, logResult), `"total_count": 0`) {
		t.Error("empty log should report zero sessions")
	}
}
