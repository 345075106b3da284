package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sounds plays short generated tones for game events.
type Sounds struct {
	enabled bool
}

// NewSounds initializes the speaker. With enabled false every play is
// a no-op, so -mute runs need no audio device.
func NewSounds(enabled bool) (*Sounds, error) {
	if enabled {
		if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
			return nil, err
		}
	}
	return &Sounds{enabled: enabled}, nil
}

func (s *Sounds) play(freq int, d time.Duration) {
	if !s.enabled {
		return
	}
	tone, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), tone))
}

// PaddleHit is the high blip on a paddle bounce.
func (s *Sounds) PaddleHit() { s.play(880, 60*time.Millisecond) }

// WallHit is the lower blip on a wall bounce.
func (s *Sounds) WallHit() { s.play(440, 60*time.Millisecond) }

// Score is a longer low tone when a point lands.
func (s *Sounds) Score() { s.play(220, 300*time.Millisecond) }
