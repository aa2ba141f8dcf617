package tray

import (
	"context"
	"fmt"
	"log/slog"

	"pomotray/internal/core/model"
	"pomotray/internal/ui/animation"
	"pomotray/resources"

	"fyne.io/fyne/v2"
)

// Host is the part of desktop.App the tray needs.
type Host interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow  func()
	OnStart func()
	OnPause func()
	OnReset func()
	OnQuit  func()
}

// Manager handles system tray state.
type Manager struct {
	host       Host
	logger     *slog.Logger
	callbacks  Callbacks
	menu       *fyne.Menu
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	engine     *animation.Engine
	last       model.Display
	icon       fyne.Resource
}

// New creates a tray manager with the provided callbacks.
func New(host Host, callbacks Callbacks, flash animation.Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	manager := &Manager{
		host:      host,
		logger:    logger.With("component", "tray"),
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	show := fyne.NewMenuItem("Show", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})
	manager.startItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnStart != nil {
			manager.callbacks.OnStart()
		}
	})
	manager.pauseItem = fyne.NewMenuItem("Pause", func() {
		if manager.callbacks.OnPause != nil {
			manager.callbacks.OnPause()
		}
	})
	manager.pauseItem.Disabled = true
	reset := fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true

	manager.menu = fyne.NewMenu("Pomotray", manager.statusItem, show, fyne.NewMenuItemSeparator(),
		manager.startItem, manager.pauseItem, reset, fyne.NewMenuItemSeparator(), quit)
	manager.engine = animation.New(flash, func(icon fyne.Resource) {
		fyne.Do(func() {
			manager.setIcon(icon)
		})
	})

	host.SetSystemTrayMenu(manager.menu)
	return manager
}

// Render redraws status, affordances and icon for a display.
// It must run on the UI goroutine.
func (manager *Manager) Render(display model.Display) {
	manager.last = display
	manager.statusItem.Label = statusLabel(display)
	manager.startItem.Disabled = !display.CanStart
	manager.pauseItem.Disabled = !display.CanPause
	manager.menu.Refresh()
	manager.host.SetSystemTrayMenu(manager.menu)

	if manager.engine.Active() {
		return
	}
	icon, err := resources.Icon(display.TrayColor)
	if err != nil {
		manager.logger.Warn("tray icon unavailable", "error", err)
		return
	}
	manager.setIcon(icon)
}

// Flash alternates the alert colour with the resting colour of the new
// phase, then restores the latest rendered display.
func (manager *Manager) Flash(phase model.Phase) {
	alert, err := resources.Icon(model.AlertColor)
	if err != nil {
		manager.logger.Warn("tray flash unavailable", "error", err)
		return
	}
	resting, err := resources.Icon(model.RestingColor(phase))
	if err != nil {
		manager.logger.Warn("tray flash unavailable", "error", err)
		return
	}
	manager.engine.StartFlash(context.Background(), animation.FlashSpec{
		Alert:   alert,
		Resting: resting,
	}, func() {
		fyne.Do(func() {
			manager.Render(manager.last)
		})
	})
}

// Close stops any flash in progress.
func (manager *Manager) Close() {
	manager.engine.Stop()
}

// Icon returns the icon most recently pushed to the tray.
func (manager *Manager) Icon() fyne.Resource {
	return manager.icon
}

func (manager *Manager) setIcon(icon fyne.Resource) {
	if manager.icon == icon {
		return
	}
	manager.icon = icon
	manager.host.SetSystemTrayIcon(icon)
}

func statusLabel(display model.Display) string {
	state := "paused"
	if display.Running {
		state = "running"
	}
	return fmt.Sprintf("%s %s (%s)", model.PhaseLabel(display.Phase), display.Clock, state)
}
