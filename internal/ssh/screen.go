package ssh

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

var (
	// ErrNoPTY is returned for sessions opened without a terminal.
	ErrNoPTY = errors.New("session has no PTY")

	// ErrTermNotAllowed is returned when the client's TERM is not on the
	// allow list.
	ErrTermNotAllowed = errors.New("terminal type not supported")
)

// DefaultTerm is assumed when the client sends no TERM.
const DefaultTerm = "xterm-256color"

// termMu serializes os.Setenv("TERM") around terminfo lookup, which reads
// TERM from the process environment.
var termMu sync.Mutex

// SessionTerm returns the TERM the client asked for, or DefaultTerm.
func SessionTerm(s gossh.Session) string {
	for _, env := range s.Environ() {
		if v, ok := strings.CutPrefix(env, "TERM="); ok && v != "" {
			return v
		}
	}
	if pty, _, ok := s.Pty(); ok && pty.Term != "" {
		return pty.Term
	}
	return DefaultTerm
}

// NewScreen builds and initializes a tcell screen drawing to the session.
// allowed gates which terminal types are accepted; nil accepts any.
func NewScreen(s gossh.Session, allowed map[string]bool) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	term := SessionTerm(s)
	if allowed != nil && !allowed[term] {
		return nil, fmt.Errorf("%q: %w", term, ErrTermNotAllowed)
	}

	tty := NewSessionTty(s, pty, winCh)
	termMu.Lock()
	prev, had := os.LookupEnv("TERM")
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	if had {
		_ = os.Setenv("TERM", prev)
	} else {
		_ = os.Unsetenv("TERM")
	}
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}
