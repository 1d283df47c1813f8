package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/mkaski/focusforge/internal/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the MCP (Model Context Protocol) server over stdio.

The server exposes the task list, the session log, and the streak to
MCP clients. It reads and writes the same plain-text files as the
timer, so run it while the timer is closed.`,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx := setupSignalHandler()

	fmt.Fprintln(cmd.ErrOrStderr(), "Starting FocusForge MCP server on stdio...")

	server := mcp.NewServer(storageAdapter)
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}

	return nil
}
