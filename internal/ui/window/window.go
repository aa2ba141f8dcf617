package window

import (
	"image/color"

	"pomotray/internal/core/model"
	"pomotray/internal/ui/preferences"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Commands are the timer operations the window triggers.
type Commands interface {
	Start()
	Pause()
	Reset()
	ApplySettings(workMinutes, breakMinutes string) error
}

// Window manages the main timer UI.
type Window struct {
	window      fyne.Window
	commands    Commands
	timeLabel   *canvas.Text
	statusLabel *canvas.Text
	startButton *widget.Button
	pauseButton *widget.Button
	resetButton *widget.Button
	form        *preferences.Form
	onClose     func()
}

// New creates the timer window. It starts hidden.
func New(app fyne.App, commands Commands, settings preferences.Settings) *Window {
	window := app.NewWindow("Pomodoro Timer")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	timeLabel := canvas.NewText("--:--", theme.Color(theme.ColorNameForeground))
	timeLabel.Alignment = fyne.TextAlignCenter
	timeLabel.TextStyle = fyne.TextStyle{Bold: true}
	timeLabel.TextSize = 40

	statusLabel := canvas.NewText("", theme.Color(theme.ColorNameForeground))
	statusLabel.Alignment = fyne.TextAlignCenter
	statusLabel.TextSize = 14

	view := &Window{
		window:      window,
		commands:    commands,
		timeLabel:   timeLabel,
		statusLabel: statusLabel,
	}

	view.startButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), commands.Start)
	view.startButton.Importance = widget.HighImportance
	view.pauseButton = widget.NewButtonWithIcon("Pause", theme.MediaPauseIcon(), commands.Pause)
	view.pauseButton.Disable()
	view.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), commands.Reset)
	view.form = preferences.NewForm(window, settings, commands.ApplySettings)

	buttons := container.NewGridWithColumns(3, view.startButton, view.pauseButton, view.resetButton)
	window.SetContent(container.NewPadded(container.NewVBox(
		timeLabel,
		statusLabel,
		buttons,
		view.form.Content(),
	)))
	window.Resize(fyne.NewSize(320, 260))

	window.SetCloseIntercept(view.handleClose)

	return view
}

// Render updates labels, title and button states. It must run on the UI
// goroutine.
func (view *Window) Render(display model.Display) {
	view.timeLabel.Text = display.Clock
	view.timeLabel.Color = phaseTextColor(display)
	view.timeLabel.Refresh()
	view.statusLabel.Text = display.Status
	view.statusLabel.Refresh()
	view.window.SetTitle(display.Title)

	if display.CanStart {
		view.startButton.Enable()
	} else {
		view.startButton.Disable()
	}
	if display.CanPause {
		view.pauseButton.Enable()
	} else {
		view.pauseButton.Disable()
	}
}

// ShowMessage opens an information dialog over the window.
func (view *Window) ShowMessage(title, message string) {
	dialog.ShowInformation(title, message, view.window)
}

// Show displays the window and focuses it.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Hide hides the window.
func (view *Window) Hide() {
	view.window.Hide()
}

// SetOnClose replaces the default hide-on-close behaviour.
func (view *Window) SetOnClose(handler func()) {
	view.onClose = handler
}

// Fyne returns the underlying fyne window.
func (view *Window) Fyne() fyne.Window {
	return view.window
}

func (view *Window) handleClose() {
	if view.onClose != nil {
		view.onClose()
		return
	}
	view.window.Hide()
}

func phaseTextColor(display model.Display) color.Color {
	if display.Running && display.Remaining <= model.UrgentThreshold {
		return model.UrgentColor
	}
	return theme.Color(theme.ColorNameForeground)
}
