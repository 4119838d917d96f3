package parameter

import "time"

// Audio
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// ClickDuration is the length of one contact click
	ClickDuration = 30 * time.Millisecond

	// ClickFrequency is the base pitch of the click in Hz
	ClickFrequency = 1200.0

	// ClickDecay is the exponential envelope rate per second
	ClickDecay = 120.0

	// ClickMaxVolume caps the summed amplitude for bursts of contacts
	ClickMaxVolume = 0.6

	// ClickVolumePerContact is the amplitude added per new contact
	ClickVolumePerContact = 0.1

	// ClickCooldownTicks suppresses retriggering within this many ticks
	ClickCooldownTicks = 3
)
