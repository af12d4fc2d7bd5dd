package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/devour/arena"
	"github.com/pthm-cable/devour/powerup"
)

const sampleRate = beep.SampleRate(44100)

// sound plays short tones for arena events. A zero sound is silent.
type sound struct {
	enabled    bool
	controlled func() (uuid.UUID, bool)
}

var _ arena.Listener = (*sound)(nil)

// newSound initializes the speaker. Failure leaves the sound muted.
func newSound(controlled func() (uuid.UUID, bool)) (*sound, error) {
	s := &sound{controlled: controlled}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return s, err
	}
	s.enabled = true
	return s, nil
}

func (s *sound) tone(freq float64, d time.Duration) {
	if !s.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (s *sound) isControlled(id uuid.UUID) bool {
	cid, ok := s.controlled()
	return ok && cid == id
}

func (s *sound) OnConsumed(eaterID, _ uuid.UUID, _ int) {
	if s.isControlled(eaterID) {
		s.tone(880, 50*time.Millisecond)
	}
}

func (s *sound) OnGameOver(int) {
	s.tone(110, 400*time.Millisecond)
}

func (s *sound) OnPowerUpGranted(uuid.UUID, powerup.Kind) {
	s.tone(660, 120*time.Millisecond)
}

func (s *sound) OnPowerUpExpired(uuid.UUID, powerup.Kind) {
	s.tone(330, 80*time.Millisecond)
}

func (s *sound) Close() {
	if s.enabled {
		speaker.Close()
	}
}
