package ports

import (
	"context"
)

// GitDetector defines the interface for git branch detection, used to
// show the working branch alongside the timer. This is a driven port
// (implemented by adapters).
type GitDetector interface {
	// Branch returns the current branch name for the repository
	// containing workingDir. It returns an error when workingDir is
	// not inside a repository; call IsAvailable first to avoid that.
	Branch(ctx context.Context, workingDir string) (string, error)

	// IsAvailable checks whether workingDir is inside a git repository.
	IsAvailable(workingDir string) bool
}
