package preferences

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Form is the work/break minutes editor.
type Form struct {
	window      fyne.Window
	onApply     func(workMinutes, breakMinutes string) error
	workEntry   *widget.Entry
	breakEntry  *widget.Entry
	applyButton *widget.Button
	content     fyne.CanvasObject
}

// NewForm builds the settings form. Dialogs are shown on window.
func NewForm(window fyne.Window, settings Settings, onApply func(workMinutes, breakMinutes string) error) *Form {
	workEntry := widget.NewEntry()
	breakEntry := widget.NewEntry()

	form := &Form{
		window:     window,
		onApply:    onApply,
		workEntry:  workEntry,
		breakEntry: breakEntry,
	}
	form.UpdateSettings(settings)

	form.applyButton = widget.NewButton("Apply", form.handleApply)
	form.content = widget.NewCard("Settings", "", container.NewVBox(
		container.NewGridWithColumns(2,
			widget.NewLabel("Work (min)"), workEntry,
			widget.NewLabel("Break (min)"), breakEntry,
		),
		form.applyButton,
	))
	return form
}

// Content returns the form's canvas object.
func (form *Form) Content() fyne.CanvasObject {
	return form.content
}

// UpdateSettings replaces the entry values.
func (form *Form) UpdateSettings(settings Settings) {
	form.workEntry.SetText(strconv.Itoa(settings.WorkMinutes))
	form.breakEntry.SetText(strconv.Itoa(settings.BreakMinutes))
}

func (form *Form) handleApply() {
	if form.onApply == nil {
		return
	}
	if err := form.onApply(form.workEntry.Text, form.breakEntry.Text); err != nil {
		dialog.ShowError(err, form.window)
		return
	}
	dialog.ShowInformation("Settings", "Settings applied!", form.window)
}
