// survivors-server hosts the game over SSH. Every connection plays its own
// independent run. Build:
//
//	go build -o survivors-server ./cmd/server
//
// Usage:
//
//	./survivors-server [--port 2222] [--key server_host_key] [--max-sessions 32]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"unicode"

	"arcade-survivors/internal/audio"
	"arcade-survivors/internal/game"
	"arcade-survivors/internal/logging"
	internalssh "arcade-survivors/internal/ssh"
	"arcade-survivors/internal/tuning"

	gossh "github.com/gliderlabs/ssh"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"
)

// maxNameBytes bounds the SSH user name shown in the HUD and logs.
const maxNameBytes = 16

// allowedTerms lists the terminal types we have terminfo for and have
// tested against.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: .env: %v\n", err)
	}

	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	maxSessions := flag.Int("max-sessions", 32, "Maximum concurrent games")
	configPath := flag.String("config", "", "Tuning file (default: survivors.{yaml,toml,json} in the working directory)")
	logLevel := flag.String("log-level", "info", "Log level")
	logFile := flag.String("log-file", "", "Also log to this file")
	flag.Parse()

	opts := logging.Options{Path: *logFile, Level: *logLevel, Stderr: true, MaxSizeMB: 50, MaxBackups: 5, MaxAgeDays: 28}
	log, closer, err := logging.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg, err := tuning.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("load tuning")
	}
	scores, err := newScoreboard()
	if err != nil {
		log.WithError(err).Fatal("score cache")
	}
	defer scores.close()

	h := &handler{
		cfg:    cfg,
		log:    log,
		scores: scores,
		slots:  make(chan struct{}, *maxSessions),
	}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication; add gossh.PublicKeyAuth for real auth.
		HostSigners: []gossh.Signer{loadOrCreateHostKey(*keyFile, log)},
	}

	log.Infof("arcade-survivors SSH server listening on :%d", *port)
	log.Infof("connect with:  ssh -t -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

type handler struct {
	cfg    tuning.Config
	log    logrus.FieldLogger
	scores *scoreboard
	slots  chan struct{}
}

// handleSession runs one game for one connection. It blocks for the
// duration of the game so the SSH session stays open.
func (h *handler) handleSession(s gossh.Session) {
	name := sanitizeName(s.User())
	if name == "" {
		name = "anon"
	}
	log := h.log.WithFields(logrus.Fields{"user": name, "remote": s.RemoteAddr().String()})

	select {
	case h.slots <- struct{}{}:
		defer func() { <-h.slots }()
	default:
		fmt.Fprintln(s, "The arena is full. Try again in a minute.")
		_ = s.Exit(1)
		return
	}

	screen, err := internalssh.NewScreen(s, allowedTerms)
	switch {
	case errors.Is(err, internalssh.ErrNoPTY):
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		_ = s.Exit(1)
		return
	case errors.Is(err, internalssh.ErrTermNotAllowed):
		fmt.Fprintf(s, "Unsupported terminal %q. Try TERM=xterm-256color.\n", internalssh.SessionTerm(s))
		_ = s.Exit(1)
		return
	case err != nil:
		log.WithError(err).Warn("screen setup failed")
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		_ = s.Exit(1)
		return
	}

	g, err := game.NewWithScreen(screen, game.Options{
		Config: h.cfg,
		Logger: log,
		Sound:  audio.Nop{},
		Name:   name,
		Best:   h.scores.best(name),
		OnRunEnd: func(r game.RunLog) {
			if h.scores.record(name, r.Kills) {
				log.WithField("kills", r.Kills).Info("new best")
			}
		},
	})
	if err != nil {
		screen.Fini()
		log.WithError(err).Error("game setup failed")
		_ = s.Exit(1)
		return
	}

	log.Info("session started")
	if err := g.Run(s.Context()); err != nil {
		log.WithError(err).Error("game crashed")
		_ = s.Exit(1)
		return
	}
	log.Info("session ended")
	_ = s.Exit(0)
}

// sanitizeName drops control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log logrus.FieldLogger) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Infof("loaded host key from %s", path)
			return signer
		}
	}

	log.Infof("generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.WithError(err).Fatal("generate host key")
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.WithError(err).Fatal("create signer")
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "arcade-survivors server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			log.WithError(err).Warn("host key not saved")
		}
	}
	return signer
}
