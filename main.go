// arcade-survivors is a terminal survivors game: dodge the swarm while your
// wand fires at the nearest enemy, and collect what they drop.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"arcade-survivors/internal/audio"
	"arcade-survivors/internal/game"
	"arcade-survivors/internal/logging"
	"arcade-survivors/internal/tuning"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf(".env: %w", err)
	}

	configPath := flag.String("config", "", "Tuning file (default: survivors.{yaml,toml,json} in the working directory)")
	seed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	mute := flag.Bool("mute", false, "Start with sound off")
	noAudio := flag.Bool("no-audio", false, "Do not open the audio device")
	logLevel := flag.String("log-level", "info", "Log level")
	logFile := flag.String("log-file", logging.DefaultPath(), "Log file")
	runLog := flag.String("runs", game.DefaultRunLogPath(), "Run history file (empty disables)")
	flag.Parse()

	opts := logging.DefaultOptions()
	opts.Path = *logFile
	opts.Level = *logLevel
	log, closer, err := logging.New(opts)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := tuning.Load(*configPath)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Clock.Seed = *seed
	}

	var sound audio.Player = audio.Nop{}
	if !*noAudio {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.WithError(err).Warn("audio unavailable, playing silently")
		} else {
			defer sm.Cleanup()
			sm.SetMuted(*mute)
			sound = sm
		}
	}

	g, err := game.New(game.Options{
		Config:     cfg,
		Logger:     log,
		Sound:      sound,
		Name:       os.Getenv("USER"),
		RunLogPath: *runLog,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return g.Run(ctx)
}
