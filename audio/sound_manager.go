// Package audio plays contact clicks through the system speaker
package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/marbles/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager mixes contact clicks into a single speaker stream
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayContact queues a click whose loudness grows with the number of new contacts
func (sm *SoundManager) PlayContact(newContacts int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || newContacts <= 0 {
		return
	}

	click := beep.Take(sampleRate.N(parameter.ClickDuration), NewClickGenerator(sampleRate, ClickVolume(newContacts)))
	speaker.Lock()
	sm.mixer.Add(click)
	speaker.Unlock()
}

// ClickVolume maps a contact burst to an amplitude, capped at ClickMaxVolume
func ClickVolume(newContacts int) float64 {
	return math.Min(float64(newContacts)*parameter.ClickVolumePerContact, parameter.ClickMaxVolume)
}
