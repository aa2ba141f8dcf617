package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"pomotray/internal/core/countdown"
	"pomotray/internal/core/model"
	"pomotray/internal/notify"
	"pomotray/internal/platform"
	"pomotray/internal/storage"
	"pomotray/internal/ui/preferences"
	"pomotray/internal/ui/tray"
	"pomotray/internal/ui/window"
	"pomotray/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "Pomotray"

func main() {
	configPath := flag.String("config", "", "settings file (default: <user config dir>/Pomotray/settings.yaml)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := newLogger(*debug)
	slog.SetDefault(logger)

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		logger.Error("single instance", "error", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := loadSettings(*configPath)
	if err != nil {
		logger.Warn("using default settings", "error", err)
	}

	controller := countdown.New(settings.TimerConfig(), countdown.Config{
		TickInterval: time.Second,
		Logger:       logger,
	})

	fyneApp := app.NewWithID("com.pomotray.app")
	fyneApp.SetIcon(resources.MustIcon(model.WorkColor))

	mainWindow := window.New(fyneApp, controller, settings)

	notifiers := []notify.Notifier{notify.NewDesktop(fyneApp, "Pomodoro")}
	if settings.Chime {
		notifiers = append(notifiers, notify.NewChime())
	}
	notifier := notify.NewFanout(logger, notifiers...)

	var trayManager *tray.Manager
	quit := func() {
		logger.Info("quit requested")
		controller.Stop()
		if trayManager != nil {
			trayManager.Close()
		}
		fyneApp.Quit()
	}

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:  mainWindow.Show,
			OnStart: controller.Start,
			OnPause: controller.Pause,
			OnReset: controller.Reset,
			OnQuit:  quit,
		}, settings.FlashConfig(), logger)
	} else {
		logger.Warn("system tray unsupported on this platform, closing the window quits")
		mainWindow.SetOnClose(quit)
	}

	render := func(display model.Display) {
		mainWindow.Render(display)
		if trayManager != nil {
			trayManager.Render(display)
		}
	}

	events := controller.Subscribe(32)
	go func() {
		for event := range events {
			handleEvent(event, render, mainWindow, trayManager, notifier)
		}
	}()

	render(controller.Display())
	mainWindow.Show()
	logger.Info("started", "work", settings.TimerConfig().Work, "break", settings.TimerConfig().Break)
	fyneApp.Run()
}

func handleEvent(event countdown.Event, render func(model.Display), mainWindow *window.Window, trayManager *tray.Manager, notifier notify.Notifier) {
	switch event.Type {
	case countdown.EventStateChange:
		fyne.Do(func() {
			render(event.Display)
		})
	case countdown.EventPhaseComplete:
		fyne.Do(func() {
			mainWindow.ShowMessage("Pomodoro", event.Message)
			if trayManager != nil {
				trayManager.Flash(event.State.Phase)
			}
		})
		_ = notifier.Notify(event.Finished, event.Message)
	}
}

func loadSettings(configPath string) (preferences.Settings, error) {
	if configPath != "" {
		return storage.LoadSettingsFile(configPath)
	}
	return storage.LoadSettings(appName)
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
