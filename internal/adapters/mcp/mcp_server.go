// Package mcp provides the MCP (Model Context Protocol) server
// implementation, exposing the task list and session history to
// external tools over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mkaski/focusforge/internal/domain"
	"github.com/mkaski/focusforge/internal/ports"
	"github.com/mkaski/focusforge/internal/timeutil"
)

// Server implements the MCP server using mark3labs/mcp-go. It operates
// on the data files directly; the interactive timer never runs in the
// same process.
type Server struct {
	server  *server.MCPServer
	storage ports.Storage
}

// NewServer creates a new MCP server instance.
func NewServer(storage ports.Storage) *Server {
	s := &Server{
		storage: storage,
	}

	s.server = server.NewMCPServer(
		"focusforge",
		"1.0.0",
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	// Tool: get_state
	s.server.AddTool(
		mcp.NewTool(
			"get_state",
			mcp.WithDescription("Get the current FocusForge state: streak counters, today's session count, and task totals"),
		),
		s.handleGetState,
	)

	// Tool: list_tasks
	listTasksTool := mcp.NewTool(
		"list_tasks",
		mcp.WithDescription("List all tasks with their 1-based numbers and done flags"),
		mcp.WithBoolean(
			"pending_only",
			mcp.Description("When true, list only tasks that are not done"),
		),
	)
	s.server.AddTool(listTasksTool, s.handleListTasks)

	// Tool: add_task
	addTaskTool := mcp.NewTool(
		"add_task",
		mcp.WithDescription("Add a new task to the list"),
		mcp.WithString(
			"text",
			mcp.Required(),
			mcp.Description("The task text"),
		),
	)
	s.server.AddTool(addTaskTool, s.handleAddTask)

	// Tool: complete_task
	completeTaskTool := mcp.NewTool(
		"complete_task",
		mcp.WithDescription("Mark a task as done by its 1-based number"),
		mcp.WithNumber(
			"number",
			mcp.Required(),
			mcp.Description("The task number as shown by list_tasks"),
		),
	)
	s.server.AddTool(completeTaskTool, s.handleCompleteTask)

	// Tool: today_log
	s.server.AddTool(
		mcp.NewTool(
			"today_log",
			mcp.WithDescription("Get today's completed focus sessions"),
		),
		s.handleTodayLog,
	)

	// Tool: get_streak
	s.server.AddTool(
		mcp.NewTool(
			"get_streak",
			mcp.WithDescription("Get the current and maximum consecutive-day streaks"),
		),
		s.handleGetStreak,
	)
}

// Start begins serving MCP requests via stdio. It runs until the
// context is cancelled or stdin closes.
func (s *Server) Start(ctx context.Context) error {
	return server.NewStdioServer(s.server).Listen(ctx, os.Stdin, os.Stdout)
}

// handleGetState handles the get_state tool.
func (s *Server) handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	streak, err := s.storage.Streak().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}

	today := timeutil.Today(time.Now())
	todayCount, err := s.storage.Sessions().CountForDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's sessions: %w", err)
	}

	tasks, err := s.storage.Tasks().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	pending := 0
	for _, task := range tasks {
		if !task.Done {
			pending++
		}
	}

	result := map[string]interface{}{
		"date":           today,
		"streak_current": streak.Current,
		"streak_max":     streak.Max,
		"today_sessions": todayCount,
		"task_count":     len(tasks),
		"pending_tasks":  pending,
	}

	return textResult(result)
}

// handleListTasks handles the list_tasks tool.
func (s *Server) handleListTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pendingOnly := request.GetBool("pending_only", false)

	tasks, err := s.storage.Tasks().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	var list []map[string]interface{}
	for i, task := range tasks {
		if pendingOnly && task.Done {
			continue
		}
		list = append(list, map[string]interface{}{
			"number": i + 1,
			"text":   task.Text,
			"done":   task.Done,
		})
	}

	result := map[string]interface{}{
		"tasks":       list,
		"total_count": len(list),
	}

	return textResult(result)
}

// handleAddTask handles the add_task tool.
func (s *Server) handleAddTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text is required: " + err.Error()), nil
	}

	tasks, err := s.storage.Tasks().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	list := domain.NewTaskListFrom(tasks)
	if err := list.Add(text); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add task: %v", err)), nil
	}
	if err := s.storage.Tasks().Save(ctx, list.Tasks()); err != nil {
		return nil, fmt.Errorf("failed to save tasks: %w", err)
	}

	result := map[string]interface{}{
		"number": list.Len(),
		"text":   list.Tasks()[list.Len()-1].Text,
		"done":   false,
	}

	return textResult(result)
}

// handleCompleteTask handles the complete_task tool.
func (s *Server) handleCompleteTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	number := int(request.GetFloat("number", 0))
	if number == 0 {
		if raw := request.GetString("number", ""); raw != "" {
			number, _ = strconv.Atoi(raw)
		}
	}

	tasks, err := s.storage.Tasks().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	list := domain.NewTaskListFrom(tasks)
	index, err := domain.ParseTaskNumber(strconv.Itoa(number), list.Len())
	if err != nil {
		return mcp.NewToolResultError("invalid task number"), nil
	}
	if err := list.MarkDone(index); err != nil {
		return mcp.NewToolResultError("invalid task number"), nil
	}
	if err := s.storage.Tasks().Save(ctx, list.Tasks()); err != nil {
		return nil, fmt.Errorf("failed to save tasks: %w", err)
	}

	result := map[string]interface{}{
		"number": number,
		"text":   list.Tasks()[index].Text,
		"done":   true,
	}

	return textResult(result)
}

// handleTodayLog handles the today_log tool.
func (s *Server) handleTodayLog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	today := timeutil.Today(time.Now())
	records, err := s.storage.Sessions().ForDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to read session log: %w", err)
	}

	var sessions []map[string]interface{}
	totalSeconds := 0
	for _, r := range records {
		sessions = append(sessions, map[string]interface{}{
			"time":             r.Time,
			"duration_seconds": r.Duration,
			"description":      r.Description,
		})
		totalSeconds += r.Duration
	}

	result := map[string]interface{}{
		"date":          today,
		"sessions":      sessions,
		"total_count":   len(records),
		"total_seconds": totalSeconds,
	}

	return textResult(result)
}

// handleGetStreak handles the get_streak tool.
func (s *Server) handleGetStreak(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	streak, err := s.storage.Streak().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}

	result := map[string]interface{}{
		"current": streak.Current,
		"max":     streak.Max,
	}

	return textResult(result)
}

// textResult marshals a value as indented JSON into a tool result.
func textResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
