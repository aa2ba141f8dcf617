package notify

import (
	"fmt"
	"math"
	"sync"
	"time"

	"pomotray/internal/core/model"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeNote       = 180 * time.Millisecond
	chimeAmplitude  = 0.3
)

// Tone frequencies in Hz. A rising pair ends work, a falling pair ends a break.
var (
	workFinishedTones  = []float64{660, 880}
	breakFinishedTones = []float64{880, 660}
)

// Chime plays a short two-note sound through the default audio device.
type Chime struct {
	once    sync.Once
	initErr error
	init    func(beep.SampleRate, int) error
	play    func(...beep.Streamer)
}

// NewChime creates a chime. The speaker is opened on first use.
func NewChime() *Chime {
	return &Chime{
		init: speaker.Init,
		play: speaker.Play,
	}
}

// Notify plays the chime for the finished phase.
func (chime *Chime) Notify(finished model.Phase, _ string) error {
	chime.once.Do(func() {
		chime.initErr = chime.init(chimeSampleRate, chimeSampleRate.N(time.Second/10))
	})
	if chime.initErr != nil {
		return fmt.Errorf("open audio device: %w", chime.initErr)
	}

	chime.play(&effects.Volume{
		Streamer: Melody(chimeSampleRate, tonesFor(finished)...),
		Base:     2,
	})
	return nil
}

// Melody returns the given tones played one after another.
func Melody(rate beep.SampleRate, frequencies ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(frequencies))
	for _, frequency := range frequencies {
		notes = append(notes, beep.Take(rate.N(chimeNote), sineTone(rate, frequency)))
	}
	return beep.Seq(notes...)
}

func tonesFor(finished model.Phase) []float64 {
	if finished == model.PhaseBreak {
		return breakFinishedTones
	}
	return workFinishedTones
}

func sineTone(rate beep.SampleRate, frequency float64) beep.Streamer {
	step := 2 * math.Pi * frequency / float64(rate)
	var position float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			value := chimeAmplitude * math.Sin(position)
			samples[i][0] = value
			samples[i][1] = value
			position += step
		}
		return len(samples), true
	})
}
