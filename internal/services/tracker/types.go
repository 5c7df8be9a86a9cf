package tracker

import (
	"github.com/KirkDiggler/skullking/internal/common/clock"
	"github.com/KirkDiggler/skullking/internal/common/uuid"
	"github.com/KirkDiggler/skullking/internal/models"
	sessionRepo "github.com/KirkDiggler/skullking/internal/repositories/session"
)

// Config holds the dependencies for the tracker service
type Config struct {
	// SessionRepo persists the session after every mutation
	SessionRepo sessionRepo.Repository

	// UUIDGenerator mints player ids
	UUIDGenerator uuid.UUID

	// Clock stamps mutations and closed rounds
	Clock clock.Clock
}

// EntryField identifies which field of a round entry an edit targets
type EntryField string

const (
	// FieldBid is the declared trick count, clamped to 0..current round
	FieldBid EntryField = "bid"

	// FieldWon is the won trick count, clamped to 0..current round
	FieldWon EntryField = "won"

	// FieldPirates is the pirate-capture count, clamped to >= 0
	FieldPirates EntryField = "pirates"

	// FieldMermaid is the mermaid bonus flag
	FieldMermaid EntryField = "mermaid"
)

// PlayerView is a render-ready snapshot of one player's live round
type PlayerView struct {
	// Player is a copy of the player's roster row
	Player *models.Player

	// Entry is a copy of the player's current round inputs
	Entry *models.RoundEntry

	// RoundPoints is the uncommitted point preview for the current round,
	// recomputed from the raw inputs on every read
	RoundPoints int

	// OnTurn marks the player whose seat matches the turn rotation
	OnTurn bool
}

type AddPlayerInput struct {
	Name string
}

type AddPlayerOutput struct {
	// Player is the newly registered player, nil when Added is false
	Player *models.Player

	// Added is false when the operation was a silent no-op (wrong mode,
	// empty name, or case-insensitive duplicate)
	Added bool
}

type RemovePlayerInput struct {
	PlayerID string
}

type RemovePlayerOutput struct {
	Removed bool
}

type ReorderPlayerInput struct {
	// Index is the seating position of the player to move
	Index int

	// Delta is the seat offset, -1 for up and +1 for down
	Delta int
}

type ReorderPlayerOutput struct {
	Moved bool
}

type StartGameInput struct {
}

type StartGameOutput struct {
	Round int
}

type EditEntryInput struct {
	PlayerID string
	Field    EntryField

	// Value is the raw edit as submitted by the consumer; it is coerced and
	// clamped per field rules, never rejected
	Value string
}

type EditEntryOutput struct {
	// Entry is a copy of the entry after the edit, nil when Updated is false
	Entry *models.RoundEntry

	Updated bool
}

type CloseRoundInput struct {
}

type CloseRoundOutput struct {
	// Record is the ledger entry appended for the closed round
	Record *models.RoundRecord

	// NextRound is the round number now in progress
	NextRound int

	Closed bool
}

type ResetToSetupInput struct {
}

type ResetToSetupOutput struct {
}

type GetSessionInput struct {
}

type GetSessionOutput struct {
	Mode  models.Mode
	Round int

	// TurnIndex is the seating index on turn, -1 with an empty roster
	TurnIndex int

	Players []*PlayerView
}

type GetStandingsInput struct {
}

type GetStandingsOutput struct {
	Standings []*models.Standing
}

type GetHistoryInput struct {
}

type GetHistoryOutput struct {
	Records []*models.RoundRecord
}
