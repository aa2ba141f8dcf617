package preferences

import (
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestForm_ApplyPassesEntries(t *testing.T) {
	app := test.NewTempApp(t)
	window := app.NewWindow("test")

	var gotWork, gotBreak string
	form := NewForm(window, DefaultSettings(), func(workMinutes, breakMinutes string) error {
		gotWork, gotBreak = workMinutes, breakMinutes
		return nil
	})
	window.SetContent(form.Content())

	if form.workEntry.Text != "25" || form.breakEntry.Text != "5" {
		t.Fatalf("seeded entries = %q/%q", form.workEntry.Text, form.breakEntry.Text)
	}

	form.workEntry.SetText("")
	test.Type(form.workEntry, "50")
	form.breakEntry.SetText("10")
	test.Tap(form.applyButton)

	if gotWork != "50" || gotBreak != "10" {
		t.Fatalf("applied %q/%q", gotWork, gotBreak)
	}
}

func TestForm_ApplyErrorKeepsEntries(t *testing.T) {
	app := test.NewTempApp(t)
	window := app.NewWindow("test")

	calls := 0
	form := NewForm(window, DefaultSettings(), func(string, string) error {
		calls++
		return errors.New("invalid settings input")
	})
	window.SetContent(form.Content())

	form.workEntry.SetText("abc")
	test.Tap(form.applyButton)

	if calls != 1 {
		t.Fatalf("calls = %d", calls)
	}
	if form.workEntry.Text != "abc" {
		t.Fatalf("entry reset to %q", form.workEntry.Text)
	}
}

func TestSettingsConversions(t *testing.T) {
	settings := Settings{WorkMinutes: 25, BreakMinutes: 5, FlashCount: 4, FlashInterval: time.Second}
	config := settings.TimerConfig()
	if config.Work != 1500*time.Second || config.Break != 300*time.Second {
		t.Fatalf("timer config = %+v", config)
	}
	flash := settings.FlashConfig()
	if flash.FlashCount != 4 || flash.FlashInterval != time.Second {
		t.Fatalf("flash config = %+v", flash)
	}
}
