// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/mkaski/focusforge/internal/config"
	"github.com/mkaski/focusforge/internal/ports"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg *config.NotificationConfig
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// NotifyFocusComplete displays a notification when a focus session ends.
func (n *Notifier) NotifyFocusComplete(taskText string) error {
	title := "Focus session complete"
	message := fmt.Sprintf("Finished: %s. Break started.", taskText)
	return n.Notify(title, message)
}

// NotifyBreakComplete displays a notification when a break ends.
func (n *Notifier) NotifyBreakComplete() error {
	title := "Break over"
	message := "Ready for the next focus session."
	return n.Notify(title, message)
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
