// Package game runs the real-time loop: it feeds held keys into the
// simulation at a fixed tick rate, draws every tick and plays sound cues.
package game

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"arcade-survivors/internal/audio"
	"arcade-survivors/internal/render"
	"arcade-survivors/internal/sim"
	"arcade-survivors/internal/tuning"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

const helpLine = "arrows/hjkl/wasd move · space stop · p pause · m mute · q quit"

// Options configure a Game.
type Options struct {
	Config     tuning.Config
	Logger     logrus.FieldLogger
	Sound      audio.Player // nil plays nothing
	Name       string       // shown in the HUD and the run log
	Best       int          // best kill count so far, shown in the HUD
	RunLogPath string       // empty disables the run history file
	OnRunEnd   func(RunLog)
}

// Game is the top-level orchestrator for one terminal.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	opts     Options
	log      logrus.FieldLogger
	sound    audio.Player

	sim     *sim.Simulation
	seed    int64
	started time.Time
	logged  bool

	keys    keyState
	paused  bool
	muted   bool
	message string
}

// New creates a Game on the local terminal.
func New(opts Options) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g, err := NewWithScreen(screen, opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a Game on an initialized screen. Run finalizes the
// screen when it returns.
func NewWithScreen(screen tcell.Screen, opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}
	if opts.Sound == nil {
		opts.Sound = audio.Nop{}
	}

	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		opts:     opts,
		log:      opts.Logger.WithField("player", opts.Name),
		sound:    opts.Sound,
	}
	if err := g.newRun(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) newRun() error {
	seed := g.opts.Config.Clock.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := sim.New(g.opts.Config, rand.New(rand.NewSource(seed)), g.log)
	if err != nil {
		return fmt.Errorf("new run: %w", err)
	}
	g.sim = s
	g.seed = seed
	g.started = time.Now()
	g.logged = false
	g.paused = false
	g.keys.release()
	g.message = helpLine
	g.log.WithField("seed", seed).Info("run started")
	return nil
}

// Run drives the game until the player quits or ctx is cancelled. Finished
// runs end on a summary screen offering another go.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()

	events := make(chan tcell.Event, 16)
	stop := make(chan struct{})
	defer close(stop)
	go pollEvents(g.screen, events, stop)

	ticker := time.NewTicker(time.Second / time.Duration(g.opts.Config.Clock.TickRate))
	defer ticker.Stop()

	last := time.Now()
	g.draw()
	for {
		select {
		case <-ctx.Done():
			g.finishRun(true)
			return nil

		case ev, ok := <-events:
			if !ok || g.handleEvent(ev, time.Now()) == ActionQuit {
				g.finishRun(true)
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if g.paused {
				continue
			}
			over, err := g.tick(dt, now)
			if err != nil {
				g.log.WithError(err).Error("simulation failed")
				return err
			}
			if !over {
				continue
			}
			g.finishRun(false)
			if !g.endScreen(ctx, events) {
				return nil
			}
			if err := g.newRun(); err != nil {
				return err
			}
			last = time.Now()
			g.draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized.
func pollEvents(s tcell.Screen, out chan<- tcell.Event, stop <-chan struct{}) {
	defer close(out)
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-stop:
			return
		}
	}
}

// handleEvent applies one input event and returns the action it mapped to.
func (g *Game) handleEvent(ev tcell.Event, now time.Time) Action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
		g.draw()
	case *tcell.EventKey:
		a := keyToAction(ev)
		switch a {
		case ActionPause:
			g.paused = !g.paused
			g.message = helpLine
			if g.paused {
				g.message = "paused · p to resume"
			}
			g.draw()
		case ActionMute:
			g.setMuted(!g.muted)
			g.draw()
		default:
			g.keys.press(a, now)
		}
		return a
	}
	return ActionNone
}

type muter interface {
	SetMuted(bool)
}

func (g *Game) setMuted(m bool) {
	g.muted = m
	if sm, ok := g.sound.(muter); ok {
		sm.SetMuted(m)
	}
}

// tick advances the simulation by dt and redraws. It reports whether the
// player died this tick.
func (g *Game) tick(dt float64, now time.Time) (bool, error) {
	rep, err := g.sim.Step(dt, g.keys.input(now))
	if err != nil {
		return false, err
	}
	g.playCues(rep)
	g.draw()
	return rep.GameOver, nil
}

func (g *Game) playCues(rep sim.Report) {
	if rep.Fired > 0 {
		g.sound.Play(audio.CueShot)
	}
	if rep.DamageDealt > 0 {
		g.sound.Play(audio.CueHit)
	}
	if rep.DamageTaken > 0 {
		g.sound.Play(audio.CueHurt)
	}
	if rep.Kills() > 0 {
		g.sound.Play(audio.CueKill)
	}
	if len(rep.Collected) > 0 {
		g.sound.Play(audio.CuePickup)
	}
	if rep.GameOver {
		g.sound.Play(audio.CueGameOver)
	}
}

func (g *Game) hud() render.HUD {
	st := g.sim.Stats()
	cur, maxHP := g.sim.PlayerHealth()
	return render.HUD{
		Name:      g.opts.Name,
		Health:    cur,
		MaxHealth: maxHP,
		Elapsed:   st.Elapsed,
		Kills:     st.Kills,
		Coins:     st.Coins,
		Gems:      st.Gems,
		Best:      g.opts.Best,
		Muted:     g.muted,
		Message:   g.message,
	}
}

func (g *Game) draw() {
	g.renderer.DrawFrame(g.sim.World(), g.sim.Player())
	g.renderer.DrawHUD(g.hud())
	g.renderer.Show()
}

// finishRun records the current run once. Runs that never ticked are not
// recorded.
func (g *Game) finishRun(quit bool) {
	st := g.sim.Stats()
	if g.logged || st.Ticks == 0 {
		return
	}
	g.logged = true

	entry := newRunLog(g.opts.Name, g.seed, g.started, st)
	entry.Quit = quit
	g.log.WithFields(logrus.Fields{
		"kills":   entry.Kills,
		"coins":   entry.Coins,
		"seconds": fmt.Sprintf("%.1f", entry.Seconds),
		"quit":    quit,
	}).Info("run finished")

	if g.opts.RunLogPath != "" {
		if err := saveRunLog(g.opts.RunLogPath, entry); err != nil {
			g.log.WithError(err).Warn("run log not saved")
		}
	}
	if g.opts.OnRunEnd != nil {
		g.opts.OnRunEnd(entry)
	}
}

// summary builds the end screen and bumps the best score.
func (g *Game) summary() render.Summary {
	st := g.sim.Stats()
	s := render.Summary{
		Elapsed:  st.Elapsed,
		Kills:    st.Kills,
		Coins:    st.Coins,
		Gems:     st.Gems,
		Shots:    st.ShotsFired,
		Dealt:    st.DamageDealt,
		Taken:    st.DamageTaken,
		NewBest:  st.Kills > g.opts.Best,
		Continue: "r to play again · q to quit",
	}
	if s.NewBest {
		g.opts.Best = st.Kills
	}
	return s
}

// endScreen shows the run summary and reports whether to play again.
func (g *Game) endScreen(ctx context.Context, events <-chan tcell.Event) bool {
	s := g.summary()
	g.renderer.DrawGameOver(s)
	for {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.screen.Sync()
				g.renderer.Resize()
				g.renderer.DrawGameOver(s)
			case *tcell.EventKey:
				switch keyToAction(ev) {
				case ActionRestart:
					return true
				case ActionQuit:
					return false
				}
			}
		}
	}
}

// Best returns the best kill count seen by this game, including runs it
// played itself.
func (g *Game) Best() int { return g.opts.Best }
