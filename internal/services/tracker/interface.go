package tracker

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/skullking/internal/services/tracker Service

import "context"

// Service defines the interface for score-tracking operations
type Service interface {
	// AddPlayer registers a player during setup
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// RemovePlayer removes a player during setup
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error)

	// ReorderPlayer swaps a player with an adjacent seat during setup
	ReorderPlayer(ctx context.Context, input *ReorderPlayerInput) (*ReorderPlayerOutput, error)

	// StartGame freezes the roster and begins round progression
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// EditEntry stores a raw field edit into a player's current round entry
	EditEntry(ctx context.Context, input *EditEntryInput) (*EditEntryOutput, error)

	// CloseRound freezes the current round into the ledger and advances
	CloseRound(ctx context.Context, input *CloseRoundInput) (*CloseRoundOutput, error)

	// ResetToSetup discards all progress and returns to an empty setup
	ResetToSetup(ctx context.Context, input *ResetToSetupInput) (*ResetToSetupOutput, error)

	// GetSession returns a snapshot of the live session for rendering
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// GetStandings returns players ranked by total, ties by seating order
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)

	// GetHistory returns the ledger of completed rounds
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
}
