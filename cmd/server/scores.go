package main

import (
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

const scoreTTL = 24 * time.Hour

// scoreboard remembers each SSH user's best kill count for a day.
type scoreboard struct {
	mu    sync.Mutex // serializes read-compare-write in record
	cache *ristretto.Cache[string, int]
}

func newScoreboard() (*scoreboard, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, int]{
		NumCounters: 10000,
		MaxCost:     1000,
		BufferItems: 64,
		// Cost counts users, not bytes.
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &scoreboard{cache: cache}, nil
}

// best returns the user's best kill count, 0 if unknown.
func (b *scoreboard) best(user string) int {
	v, _ := b.cache.Get(user)
	return v
}

// record stores kills if it beats the user's best and reports whether it did.
func (b *scoreboard) record(user string, kills int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if kills <= b.best(user) {
		return false
	}
	b.cache.SetWithTTL(user, kills, 1, scoreTTL)
	b.cache.Wait()
	return true
}

func (b *scoreboard) close() { b.cache.Close() }
