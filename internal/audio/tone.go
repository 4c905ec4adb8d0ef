package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// sweep is a sine whose pitch slides linearly from one frequency to another.
type sweep struct {
	rate     beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	total    int
}

func newSweep(rate beep.SampleRate, from, to float64, d time.Duration) *sweep {
	return &sweep{rate: rate, from: from, to: to, total: rate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		f := s.from + (s.to-s.from)*float64(s.pos)/float64(s.total)
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.phase += f / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise is a burst of white noise.
type noise struct {
	rng   *rand.Rand
	pos   int
	total int
}

func newNoise(rate beep.SampleRate, d time.Duration) *noise {
	return &noise{rng: rand.New(rand.NewSource(time.Now().UnixNano())), total: rate.N(d)}
}

func (g *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		v := g.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *noise) Err() error { return nil }

// decay fades a stream out exponentially.
type decay struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	speed    float64
	pos      int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.pos) / float64(d.rate)
		env := math.Exp(-t * d.speed)
		samples[i][0] *= env
		samples[i][1] *= env
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

func quiet(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}
}

// cueStreamer synthesizes the sound for c. It returns nil for unknown cues.
func cueStreamer(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueShot:
		return quiet(newSweep(rate, 1400, 700, 60*time.Millisecond), -4)
	case CueHit:
		return quiet(&decay{streamer: newNoise(rate, 50*time.Millisecond), rate: rate, speed: 40}, -3)
	case CueHurt:
		return quiet(newSweep(rate, 220, 110, 120*time.Millisecond), -2)
	case CueKill:
		return quiet(&decay{streamer: newNoise(rate, 200*time.Millisecond), rate: rate, speed: 12}, -2)
	case CuePickup:
		tone, err := generators.SineTone(rate, 1320)
		if err != nil {
			return nil
		}
		return quiet(beep.Seq(
			beep.Take(rate.N(40*time.Millisecond), newSweep(rate, 880, 880, time.Second)),
			beep.Take(rate.N(60*time.Millisecond), tone),
		), -3)
	case CueGameOver:
		return quiet(beep.Seq(
			newSweep(rate, 440, 330, 250*time.Millisecond),
			newSweep(rate, 330, 220, 250*time.Millisecond),
			newSweep(rate, 220, 110, 500*time.Millisecond),
		), -1)
	}
	return nil
}
