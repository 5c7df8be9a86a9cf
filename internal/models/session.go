package models

import (
	"time"
)

// Mode represents the lifecycle phase of a session
type Mode string

const (
	// ModeSetup indicates the roster may be edited and no round data exists
	ModeSetup Mode = "setup"

	// ModeActive indicates the roster is frozen and round progression is underway
	ModeActive Mode = "active"
)

// Session is the authoritative state of one score-tracking session
type Session struct {
	// Mode is the current lifecycle phase
	Mode Mode `json:"mode"`

	// Round is the current 1-based round number, meaningful only in active mode
	Round int `json:"round"`

	// Players is the ordered roster; seating order determines turn rotation
	Players []*Player `json:"players"`

	// Current maps player ID to that player's in-progress round entry
	Current map[string]*RoundEntry `json:"current"`

	// History is the append-only ledger of completed rounds
	History []*RoundRecord `json:"history"`

	// UpdatedAt is when the session was last mutated
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewSession returns a fresh all-defaults session in setup mode
func NewSession() *Session {
	return &Session{
		Mode:    ModeSetup,
		Round:   1,
		Players: []*Player{},
		Current: map[string]*RoundEntry{},
		History: []*RoundRecord{},
	}
}

// EnsureEntry guarantees the session has a current entry for the given player
func (s *Session) EnsureEntry(playerID string) *RoundEntry {
	if s.Current == nil {
		s.Current = map[string]*RoundEntry{}
	}
	entry, ok := s.Current[playerID]
	if !ok {
		entry = NewRoundEntry()
		s.Current[playerID] = entry
	}
	return entry
}

// TurnIndex returns the seating index of the player on turn for the current
// round, or -1 when the roster is empty. Informational only; it gates nothing.
func (s *Session) TurnIndex() int {
	if len(s.Players) == 0 {
		return -1
	}
	return (s.Round - 1) % len(s.Players)
}
