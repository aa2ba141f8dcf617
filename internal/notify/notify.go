// Package notify delivers phase-complete alerts to the user.
package notify

import (
	"errors"
	"log/slog"

	"pomotray/internal/core/model"

	"fyne.io/fyne/v2"
)

// Notifier announces that a phase finished.
type Notifier interface {
	Notify(finished model.Phase, message string) error
}

// Desktop posts an OS notification through the fyne app.
type Desktop struct {
	app   fyne.App
	title string
}

// NewDesktop creates a desktop notifier.
func NewDesktop(app fyne.App, title string) *Desktop {
	return &Desktop{app: app, title: title}
}

// Notify sends the message as a desktop notification.
func (desktop *Desktop) Notify(_ model.Phase, message string) error {
	desktop.app.SendNotification(fyne.NewNotification(desktop.title, message))
	return nil
}

// Fanout delivers to every notifier and logs failures. One failing
// surface does not stop the others.
type Fanout struct {
	notifiers []Notifier
	logger    *slog.Logger
}

// NewFanout combines notifiers. Nil entries are skipped.
func NewFanout(logger *slog.Logger, notifiers ...Notifier) *Fanout {
	if logger == nil {
		logger = slog.Default()
	}
	fanout := &Fanout{logger: logger.With("component", "notify")}
	for _, notifier := range notifiers {
		if notifier != nil {
			fanout.notifiers = append(fanout.notifiers, notifier)
		}
	}
	return fanout
}

// Notify calls every notifier and returns the joined errors.
func (fanout *Fanout) Notify(finished model.Phase, message string) error {
	var errs []error
	for _, notifier := range fanout.notifiers {
		if err := notifier.Notify(finished, message); err != nil {
			fanout.logger.Warn("notification failed", "finished", finished, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
