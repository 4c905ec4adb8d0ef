// Package audio plays short synthesized cues for game events.
package audio

// Cue names a sound the game can request.
type Cue uint8

const (
	CueShot Cue = iota
	CueHit
	CueHurt
	CueKill
	CuePickup
	CueGameOver
	numCues
)

func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueHit:
		return "hit"
	case CueHurt:
		return "hurt"
	case CueKill:
		return "kill"
	case CuePickup:
		return "pickup"
	case CueGameOver:
		return "game-over"
	}
	return "unknown"
}

// Player is anything that can voice a cue. Implementations must not block.
type Player interface {
	Play(Cue)
}

// Nop discards every cue. Remote sessions use it since the server's
// speaker is not theirs.
type Nop struct{}

func (Nop) Play(Cue) {}

// Recorder remembers requested cues in order.
type Recorder struct {
	Cues []Cue
}

func (r *Recorder) Play(c Cue) { r.Cues = append(r.Cues, c) }
