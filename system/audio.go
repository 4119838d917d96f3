package system

import (
	"github.com/lixenwraith/marbles/parameter"
	"github.com/lixenwraith/marbles/physics"
)

// ContactSound plays feedback for fresh contacts
type ContactSound interface {
	PlayContact(newContacts int)
}

// AudioSystem turns rising contact counts into clicks
// Decouples the solver from direct audio access
type AudioSystem struct {
	solver *physics.Solver
	player ContactSound

	lastContacts int
	cooldown     int
	enabled      bool
}

// NewAudioSystem creates an audio system; player may be nil if audio is disabled
func NewAudioSystem(solver *physics.Solver, player ContactSound) *AudioSystem {
	s := &AudioSystem{
		solver: solver,
		player: player,
	}
	s.Init()
	return s
}

// Init resets session state
func (s *AudioSystem) Init() {
	s.lastContacts = 0
	s.cooldown = 0
	s.enabled = s.player != nil
}

// Name returns system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// Update compares this tick's contacts with the last and clicks on growth
func (s *AudioSystem) Update() {
	if !s.enabled {
		return
	}

	contacts := s.solver.ContactCount()
	fresh := contacts - s.lastContacts
	s.lastContacts = contacts

	if s.cooldown > 0 {
		s.cooldown--
		return
	}
	if fresh > 0 {
		s.player.PlayContact(fresh)
		s.cooldown = parameter.ClickCooldownTicks
	}
}
