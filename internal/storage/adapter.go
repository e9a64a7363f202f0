// Package storage is the persistence adapter between the application state
// and the key-value store. Writes are retried and surface errors to the
// caller; reads never fail, they degrade to type-appropriate defaults so a
// broken store cannot block startup.
package storage

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/punchtrack/punch/internal/kv"
	"github.com/punchtrack/punch/internal/models"
	"github.com/punchtrack/punch/internal/validate"
)

// Store keys. These are load-bearing: existing databases depend on them.
const (
	KeyClockState   = "CLOCK_STATE"
	KeyWorkSessions = "WORK_SESSIONS"
	KeyHourlyRate   = "HOURLY_RATE"
)

// DefaultHistoryCap bounds the session history to the most recent entries.
const DefaultHistoryCap = 100

// Adapter reads and writes clock state and session history against a
// kv.Store. It does not serialize concurrent calls; callers must not issue
// overlapping writes for the same key.
type Adapter struct {
	store  kv.Store
	cap    int
	policy Policy
}

// NewAdapter wraps a store. A non-positive historyCap falls back to
// DefaultHistoryCap, a zero policy to DefaultPolicy.
func NewAdapter(store kv.Store, historyCap int, policy Policy) *Adapter {
	if historyCap <= 0 {
		historyCap = DefaultHistoryCap
	}
	if policy.Attempts == 0 {
		policy = DefaultPolicy
	}
	return &Adapter{store: store, cap: historyCap, policy: policy}
}

// SaveCurrentState persists the clock state, retried per policy.
func (a *Adapter) SaveCurrentState(state models.ClockState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode clock state: %w", err)
	}
	return Retry(a.policy, func() error {
		return a.store.Set(KeyClockState, string(data))
	})
}

// LoadStoredData reads both keys. Each read is independent: a failure or
// malformed value on one key never prevents loading the other, and neither
// read can fail — bad data resolves to the closed state / empty history.
// This is the only place raw store bytes meet the validate package.
func (a *Adapter) LoadStoredData() (models.ClockState, []models.Session) {
	return a.loadClockState(), a.loadSessions()
}

// SaveSession prepends a session to the history, evicting the oldest entries
// beyond the cap, and writes the list back with retries.
func (a *Adapter) SaveSession(session models.Session) error {
	return a.writeSessions(a.prepend(session))
}

// BatchSaveClockOut persists a clock-state reset and a session append as one
// atomic multi-key write, so a crash between "stop the session" and "record
// its history" cannot leave the two keys disagreeing.
func (a *Adapter) BatchSaveClockOut(state models.ClockState, session models.Session) error {
	stateData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode clock state: %w", err)
	}
	sessionsData, err := json.Marshal(a.prepend(session))
	if err != nil {
		return fmt.Errorf("failed to encode sessions: %w", err)
	}
	return Retry(a.policy, func() error {
		return a.store.MultiSet(map[string]string{
			KeyClockState:   string(stateData),
			KeyWorkSessions: string(sessionsData),
		})
	})
}

// ClearStoredData removes clock state and session history in one batch.
func (a *Adapter) ClearStoredData() error {
	return Retry(a.policy, func() error {
		return a.store.MultiRemove(KeyClockState, KeyWorkSessions)
	})
}

// DeleteSession removes a single history entry by ID and rewrites the list.
func (a *Adapter) DeleteSession(id string) error {
	sessions := a.loadSessions()
	kept := sessions[:0]
	for _, s := range sessions {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(sessions) {
		return fmt.Errorf("session %q not found", id)
	}
	return a.writeSessions(kept)
}

// SaveHourlyRate persists the rate as a decimal string.
func (a *Adapter) SaveHourlyRate(rate float64) error {
	value := strconv.FormatFloat(rate, 'f', 2, 64)
	return Retry(a.policy, func() error {
		return a.store.Set(KeyHourlyRate, value)
	})
}

// LoadHourlyRate reads the configured rate. The bool is false when no valid
// rate is stored.
func (a *Adapter) LoadHourlyRate() (float64, bool) {
	raw, ok, err := a.store.Get(KeyHourlyRate)
	if err != nil || !ok {
		return 0, false
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate < 0 {
		log.Warn().Str("value", raw).Msg("ignoring malformed hourly rate")
		return 0, false
	}
	return rate, true
}

func (a *Adapter) loadClockState() models.ClockState {
	raw, ok, err := a.store.Get(KeyClockState)
	if err != nil {
		log.Warn().Err(err).Msg("clock state unreadable, assuming clocked out")
		return models.ClockState{}
	}
	if !ok {
		return models.ClockState{}
	}
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		log.Warn().Err(err).Msg("clock state corrupt, assuming clocked out")
		return models.ClockState{}
	}
	return validate.ClockState(decoded)
}

func (a *Adapter) loadSessions() []models.Session {
	raw, ok, err := a.store.Get(KeyWorkSessions)
	if err != nil {
		log.Warn().Err(err).Msg("session history unreadable, starting empty")
		return []models.Session{}
	}
	if !ok {
		return []models.Session{}
	}
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		log.Warn().Err(err).Msg("session history corrupt, starting empty")
		return []models.Session{}
	}
	sessions := validate.Sessions(decoded)
	if arr, isArr := decoded.([]any); isArr && len(sessions) < len(arr) {
		log.Warn().Int("dropped", len(arr)-len(sessions)).Msg("dropped invalid session entries")
	}
	return sessions
}

func (a *Adapter) prepend(session models.Session) []models.Session {
	sessions := append([]models.Session{session}, a.loadSessions()...)
	if len(sessions) > a.cap {
		sessions = sessions[:a.cap]
	}
	return sessions
}

func (a *Adapter) writeSessions(sessions []models.Session) error {
	data, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("failed to encode sessions: %w", err)
	}
	return Retry(a.policy, func() error {
		return a.store.Set(KeyWorkSessions, string(data))
	})
}
