// Package cmd provides the CLI commands for the FocusForge application.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/mkaski/focusforge/internal/adapters/git"
	"github.com/mkaski/focusforge/internal/adapters/notification"
	"github.com/mkaski/focusforge/internal/adapters/storage"
	"github.com/mkaski/focusforge/internal/adapters/tui"
	"github.com/mkaski/focusforge/internal/config"
	"github.com/mkaski/focusforge/internal/ports"
	"github.com/mkaski/focusforge/internal/services"
)

// Minimum terminal size for the fullscreen timer.
const (
	minTermWidth  = 80
	minTermHeight = 24
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	dataDir    string
	jsonOutput bool

	// Global dependencies
	storageAdapter ports.Storage
	gitDetector    ports.GitDetector
	notifier       *notification.Notifier
	appConfig      *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "focusforge",
	Short: "FocusForge - a Pomodoro focus timer with a plain-text task list",
	Long: `FocusForge is a terminal Pomodoro timer that tracks focus sessions,
keeps a task list, and maintains a daily streak. Everything is stored
as plain text under ~/.focusforge so the data stays greppable.

Run "focusforge" with no arguments to open the interactive timer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	RunE: runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Path to the data directory (default: ~/.focusforge)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("FocusForge\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(mcpCmd)
}

// initializeServices sets up configuration, storage, and the adapters
// shared by all commands.
func initializeServices() error {
	var err error
	appConfig, err = config.Load()
	if err != nil {
		// A broken config file should not lock the user out, so fall
		// back to defaults. The default data dir still needs its ~
		// expanded; when that fails the home directory is unresolvable
		// and there is nowhere safe to put the data files.
		appConfig = config.DefaultConfig()
		appConfig.Storage.DataDir, err = config.ExpandDataDir(appConfig.Storage.DataDir)
		if err != nil && dataDir == "" {
			return fmt.Errorf("failed to resolve data directory: %w", err)
		}
	}

	notifier = notification.New(&appConfig.Notifications)
	gitDetector = git.NewDetector()

	dir := dataDir
	if dir == "" {
		dir = appConfig.Storage.DataDir
	}

	storageAdapter, err = storage.New(dir)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}

// runTimer launches the fullscreen interactive timer.
func runTimer(cmd *cobra.Command, args []string) error {
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil {
		if w < minTermWidth || h < minTermHeight {
			return fmt.Errorf("terminal too small: %dx%d (minimum %dx%d)", w, h, minTermWidth, minTermHeight)
		}
	}

	ctx := setupSignalHandler()

	controller, err := services.NewController(ctx, storageAdapter, notifier)
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	branch := ""
	if wd, err := os.Getwd(); err == nil && gitDetector.IsAvailable(wd) {
		branch, _ = gitDetector.Branch(ctx, wd)
	}

	return tui.Run(ctx, controller, &appConfig.Theme, branch)
}
