package game

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"arcade-survivors/internal/audio"
	"arcade-survivors/internal/factory"
	"arcade-survivors/internal/tuning"

	"github.com/gdamore/tcell/v2"
)

// newSimScreen creates an initialized 80×24 simulation screen.
func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(80, 24)
	return ss
}

func seeded() tuning.Config {
	cfg := tuning.Default()
	cfg.Clock.Seed = 11
	return cfg
}

func screenHas(ss tcell.Screen, glyph string) bool {
	w, h := ss.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if ch, _, _, _ := ss.GetContent(x, y); string(ch) == glyph {
				return true
			}
		}
	}
	return false
}

func TestNewWithScreenRejectsBadConfig(t *testing.T) {
	cfg := tuning.Default()
	cfg.Clock.TickRate = 0
	if _, err := NewWithScreen(newSimScreen(t), Options{Config: cfg}); err == nil {
		t.Fatal("expected an error for a zero tick rate")
	}
}

func TestTickDrawsWorld(t *testing.T) {
	ss := newSimScreen(t)
	g, err := NewWithScreen(ss, Options{Config: seeded(), Name: "ada"})
	if err != nil {
		t.Fatal(err)
	}
	over, err := g.tick(1.0/60, time.Now())
	if err != nil || over {
		t.Fatalf("tick = %v, %v", over, err)
	}
	if !screenHas(ss, factory.GlyphPlayer) {
		t.Fatal("player not drawn")
	}
}

func TestGameOverRecordsRun(t *testing.T) {
	cfg := seeded()
	cfg.Player.Health = 1
	cfg.Enemy.HalfSize = 200
	path := filepath.Join(t.TempDir(), "runs.jsonl")

	var ended []RunLog
	sound := &audio.Recorder{}
	g, err := NewWithScreen(newSimScreen(t), Options{
		Config:     cfg,
		Sound:      sound,
		RunLogPath: path,
		OnRunEnd:   func(r RunLog) { ended = append(ended, r) },
	})
	if err != nil {
		t.Fatal(err)
	}

	over, err := g.tick(1.0/60, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if !over {
		t.Fatal("player with 1 health inside two enemies should die")
	}
	g.finishRun(false)
	g.finishRun(true) // second call is ignored

	if len(ended) != 1 || ended[0].Quit {
		t.Fatalf("OnRunEnd calls = %+v; want one finished run", ended)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "\n"); n != 1 {
		t.Errorf("run log has %d lines; want 1", n)
	}

	heardGameOver := false
	for _, c := range sound.Cues {
		if c == audio.CueGameOver {
			heardGameOver = true
		}
	}
	if !heardGameOver {
		t.Errorf("cues = %v; want game over", sound.Cues)
	}

	s := g.summary()
	if s.NewBest != (ended[0].Kills > 0) {
		t.Errorf("NewBest = %v with %d kills and no prior best", s.NewBest, ended[0].Kills)
	}
}

func TestHandleEventPauseAndMute(t *testing.T) {
	g, err := NewWithScreen(newSimScreen(t), Options{Config: seeded()})
	if err != nil {
		t.Fatal(err)
	}
	now := time.Now()
	g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), now)
	if !g.paused {
		t.Fatal("p should pause")
	}
	g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), now)
	if !g.muted || !g.hud().Muted {
		t.Fatal("m should mute")
	}
	if a := g.handleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), now); a != ActionMoveLeft {
		t.Fatalf("left arrow mapped to %v", a)
	}
	if !g.keys.input(now).Left {
		t.Fatal("left arrow should hold left")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.jsonl")
	g, err := NewWithScreen(newSimScreen(t), Options{Config: seeded(), RunLogPath: path})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("no run log after a cancelled run: %v", err)
	}
	if !strings.Contains(string(data), `"quit":true`) {
		t.Errorf("cancelled run should be marked quit: %s", data)
	}
}
