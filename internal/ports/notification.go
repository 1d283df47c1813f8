package ports

// Notifier defines the interface for desktop notifications raised when
// a timer phase expires. This is a driven port (implemented by adapters).
type Notifier interface {
	// NotifyFocusComplete announces the end of a focus phase.
	NotifyFocusComplete(taskText string) error

	// NotifyBreakComplete announces the end of a break phase.
	NotifyBreakComplete() error

	// IsEnabled reports whether notifications are turned on.
	IsEnabled() bool
}
