package notify

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"pomotray/internal/core/model"

	"fyne.io/fyne/v2/test"
	"github.com/faiface/beep"
)

type recordingNotifier struct {
	calls []string
	err   error
}

func (notifier *recordingNotifier) Notify(finished model.Phase, message string) error {
	notifier.calls = append(notifier.calls, string(finished)+":"+message)
	return notifier.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFanout_ContinuesAfterFailure(t *testing.T) {
	failing := &recordingNotifier{err: errors.New("no display")}
	working := &recordingNotifier{}
	fanout := NewFanout(discardLogger(), failing, nil, working)

	err := fanout.Notify(model.PhaseWork, model.FinishedMessage(model.PhaseWork))
	if err == nil {
		t.Fatal("expected joined error")
	}
	if len(working.calls) != 1 || working.calls[0] != "work:Work finished! Time for a break." {
		t.Fatalf("working calls = %v", working.calls)
	}
}

func TestDesktop_Notify(t *testing.T) {
	app := test.NewTempApp(t)
	desktop := NewDesktop(app, "Pomodoro")
	if err := desktop.Notify(model.PhaseBreak, model.FinishedMessage(model.PhaseBreak)); err != nil {
		t.Fatalf("notify: %v", err)
	}
}

func TestChime_InitFailureIsReported(t *testing.T) {
	played := 0
	chime := &Chime{
		init: func(beep.SampleRate, int) error { return errors.New("no audio") },
		play: func(...beep.Streamer) { played++ },
	}
	for i := 0; i < 2; i++ {
		if err := chime.Notify(model.PhaseWork, ""); err == nil {
			t.Fatal("expected error")
		}
	}
	if played != 0 {
		t.Fatalf("played = %d", played)
	}
}

func TestChime_PlaysMelody(t *testing.T) {
	inits := 0
	var streamers []beep.Streamer
	chime := &Chime{
		init: func(beep.SampleRate, int) error { inits++; return nil },
		play: func(s ...beep.Streamer) { streamers = append(streamers, s...) },
	}
	_ = chime.Notify(model.PhaseWork, "")
	_ = chime.Notify(model.PhaseBreak, "")
	if inits != 1 {
		t.Fatalf("speaker initialised %d times", inits)
	}
	if len(streamers) != 2 {
		t.Fatalf("played %d streamers", len(streamers))
	}
}

func TestMelody_Length(t *testing.T) {
	rate := beep.SampleRate(8000)
	melody := Melody(rate, 440, 880)

	buf := make([][2]float64, 256)
	total := 0
	peak := 0.0
	for {
		n, ok := melody.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			break
		}
	}
	if want := 2 * rate.N(chimeNote); total != want {
		t.Fatalf("samples = %d, want %d", total, want)
	}
	if peak <= 0 || peak > chimeAmplitude+1e-9 {
		t.Fatalf("peak = %f", peak)
	}
}
