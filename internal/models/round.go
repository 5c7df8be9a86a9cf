package models

import (
	"time"
)

// RoundEntry holds a player's in-progress inputs for the current round
type RoundEntry struct {
	// Bid is the declared number of tricks, 0..current round number
	Bid int `json:"bid"`

	// Won is the number of tricks actually won, 0..current round number
	Won int `json:"won"`

	// Pirates is the count of pirate-capture bonus events this round
	Pirates int `json:"pirates"`

	// Mermaid indicates the player captured the mermaid bonus this round
	Mermaid bool `json:"mermaid"`
}

// NewRoundEntry returns an entry with all inputs at their defaults
func NewRoundEntry() *RoundEntry {
	return &RoundEntry{}
}

// RoundResult is a frozen round entry plus its computed point delta
type RoundResult struct {
	// Bid is the declared number of tricks at the moment the round closed
	Bid int `json:"bid"`

	// Won is the number of tricks won at the moment the round closed
	Won int `json:"won"`

	// Pirates is the pirate-capture count at the moment the round closed
	Pirates int `json:"pirates"`

	// Mermaid indicates the mermaid bonus at the moment the round closed
	Mermaid bool `json:"mermaid"`

	// Pts is the point delta computed for this player for this round
	Pts int `json:"pts"`
}

// RoundRecord is an immutable ledger entry for one completed round
type RoundRecord struct {
	// Round is the 1-based round number this record covers
	Round int `json:"round"`

	// Entries maps player ID to the frozen inputs and computed points
	Entries map[string]*RoundResult `json:"entries"`

	// Totals maps player ID to the running total immediately after this round
	Totals map[string]int `json:"totals"`

	// RecordedAt is when the round was closed
	RecordedAt time.Time `json:"recordedAt"`
}
