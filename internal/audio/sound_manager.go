package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager mixes cues onto the local speaker. Every method is safe to
// call before Initialize or after Cleanup; cues are then dropped.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	last        [numCues]time.Time
	gap         time.Duration
}

// NewSoundManager creates a sound manager. Call Initialize to open the
// speaker.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		gap:   40 * time.Millisecond,
	}
}

// Initialize opens the speaker. It fails on machines without an audio
// device; the game runs silently then.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the speaker.
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

// SetMuted toggles output without closing the speaker.
func (sm *SoundManager) SetMuted(m bool) {
	sm.mu.Lock()
	sm.muted = m
	sm.mu.Unlock()
}

// Muted reports whether output is muted.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues cue c. Repeats of the same cue closer together than the
// manager's gap are dropped so a swarm of hits does not clip.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || c >= numCues {
		return
	}
	now := time.Now()
	if now.Sub(sm.last[c]) < sm.gap {
		return
	}
	s := cueStreamer(c, sampleRate)
	if s == nil {
		return
	}
	sm.last[c] = now

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
