package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"arcade-survivors/internal/logging"
	"arcade-survivors/internal/sim"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	Player      string    `json:"player,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	Seed        int64     `json:"seed"`
	Seconds     float64   `json:"seconds"`
	Ticks       uint64    `json:"ticks"`
	Kills       int       `json:"kills"`
	Coins       int       `json:"coins"`
	Gems        [3]int    `json:"gems"` // low, medium, high
	ShotsFired  int       `json:"shots_fired"`
	DamageDealt int       `json:"damage_dealt"`
	DamageTaken int       `json:"damage_taken"`
	Quit        bool      `json:"quit,omitempty"` // left before dying
}

func newRunLog(player string, seed int64, started time.Time, st sim.Stats) RunLog {
	return RunLog{
		Player:      player,
		StartedAt:   started.UTC(),
		Seed:        seed,
		Seconds:     st.Elapsed,
		Ticks:       st.Ticks,
		Kills:       st.Kills,
		Coins:       st.Coins,
		Gems:        st.Gems,
		ShotsFired:  st.ShotsFired,
		DamageDealt: st.DamageDealt,
		DamageTaken: st.DamageTaken,
	}
}

// DefaultRunLogPath is runs.jsonl in the per-user data directory.
func DefaultRunLogPath() string {
	return filepath.Join(logging.DataDir(), "runs.jsonl")
}

// saveRunLog appends the completed run as a single JSON line to path.
func saveRunLog(path string, log RunLog) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("run log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encode run log: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}
